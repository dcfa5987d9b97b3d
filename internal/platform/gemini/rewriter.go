package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/guvenchemy/MerkutY-BTK/internal/adaptation"
	"github.com/guvenchemy/MerkutY-BTK/internal/config"
)

// Rewriter implements the adaptation.Rewriter interface using Google's
// Gemini API to rewrite texts at a target CEFR level.
type Rewriter struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
	model  string
}

// NewRewriter creates a Rewriter from LLM configuration.
// Returns ErrInvalidConfig if the API key or model name is missing.
func NewRewriter(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*Rewriter, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrInvalidConfig, err)
	}

	return &Rewriter{
		logger: logger.With(slog.String("component", "gemini_rewriter")),
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Ensure Rewriter implements adaptation.Rewriter interface
var _ adaptation.Rewriter = (*Rewriter)(nil)

// Rewrite implements adaptation.Rewriter.Rewrite
// It renders the rewrite directive into a prompt and calls the Gemini API
// with exponential backoff for transient failures.
func (r *Rewriter) Rewrite(ctx context.Context, req adaptation.RewriteRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", ErrEmptyText
	}

	prompt := adaptation.BuildPrompt(req)

	timeout := time.Duration(r.config.PromptTimeout) * time.Second
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return r.callWithRetry(ctx, prompt)
}

// callWithRetry makes the API call up to MaxRetries+1 times, using
// exponential backoff with jitter between attempts for transient errors.
// Permanent errors (blocked content, unusable responses) return immediately.
func (r *Rewriter) callWithRetry(ctx context.Context, prompt string) (string, error) {
	maxRetries := r.config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	for attempt := 0; ; attempt++ {
		r.logger.InfoContext(ctx, "calling Gemini API",
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", maxRetries+1))

		text, err := r.generate(ctx, contents)
		if err == nil {
			return text, nil
		}

		r.logger.ErrorContext(ctx, "Gemini API call failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))

		if errors.Is(err, ErrContentBlocked) || errors.Is(err, ErrInvalidResponse) {
			return "", err
		}
		if attempt >= maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %v",
				ErrTransientFailure, maxRetries, err)
		}

		// delay = 2^attempt seconds scaled by a jitter factor in [0.5, 1.0)
		backoffSeconds := math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", ErrTransientFailure, ctx.Err())
		}
	}
}

// generate performs a single API call and extracts the rewritten text.
func (r *Rewriter) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	resp, err := r.client.Models.GenerateContent(ctx, r.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", ErrContentBlocked)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty text in response", ErrInvalidResponse)
	}
	return text, nil
}
