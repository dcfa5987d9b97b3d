package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	NER      NERConfig      `mapstructure:"ner"`
	Task     TaskConfig     `mapstructure:"task" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// LLMConfig contains all settings for the external rewriting collaborator.
// The API key may be empty, in which case text adaptation is disabled and
// the rest of the engine runs normally.
type LLMConfig struct {
	GeminiAPIKey  string `mapstructure:"gemini_api_key"`
	ModelName     string `mapstructure:"model_name" validate:"required"`
	MaxRetries    int    `mapstructure:"max_retries" validate:"gte=0,lte=10"`
	PromptTimeout int    `mapstructure:"prompt_timeout_seconds" validate:"gt=0,lte=600"`
}

// NERConfig controls the optional named entity recognition collaborator
// used by the text classifier's proper noun exclusion. When disabled, or
// when no endpoint is configured, classification falls back to surface
// capitalization heuristics.
type NERConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	EndpointURL    string `mapstructure:"endpoint_url" validate:"omitempty,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0,lte=60"`
}

// TaskConfig contains settings for the background task runner used by
// bulk vocabulary imports.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"required,gt=0,lte=100"`
	QueueSize   int `mapstructure:"queue_size" validate:"required,gt=0"`
}
