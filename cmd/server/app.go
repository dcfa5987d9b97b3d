package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/guvenchemy/MerkutY-BTK/internal/adaptation"
	"github.com/guvenchemy/MerkutY-BTK/internal/analysis"
	"github.com/guvenchemy/MerkutY-BTK/internal/config"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar"
	"github.com/guvenchemy/MerkutY-BTK/internal/grammar/progress"
	"github.com/guvenchemy/MerkutY-BTK/internal/importer"
	"github.com/guvenchemy/MerkutY-BTK/internal/ner"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/gemini"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/postgres"
	"github.com/guvenchemy/MerkutY-BTK/internal/service"
	"github.com/guvenchemy/MerkutY-BTK/internal/store"
	"github.com/guvenchemy/MerkutY-BTK/internal/task"
)

// application holds the shared application dependencies to simplify wiring
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	learnerStore store.LearnerStore
	wordStore    store.WordStatusStore
	patternStore store.PatternStatusStore

	// Services
	learnerService    service.LearnerService
	vocabularyService service.VocabularyService
	grammarService    service.GrammarService
	assessmentService service.AssessmentService
	analysisService   service.AnalysisService
	adaptationService service.AdaptationService

	// Task handling
	taskRunner *task.Runner
}

// newApplication creates an application instance with all dependencies
// initialized and the background task runner started.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.learnerStore = postgres.NewPostgresLearnerStore(db, logger)
	app.wordStore = postgres.NewPostgresWordStatusStore(db, logger)
	app.patternStore = postgres.NewPostgresPatternStatusStore(db, logger)

	catalog, err := grammar.NewDefaultCatalog(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build grammar catalog: %w", err)
	}

	detector, err := grammar.NewDetector(catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern detector: %w", err)
	}

	calculator, err := progress.NewCalculator(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build level calculator: %w", err)
	}

	classifier := analysis.NewClassifier(app.setupTagger(), logger)
	planner, err := adaptation.NewPlanner(catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build adaptation planner: %w", err)
	}

	// The rewriter is optional; without an API key the adaptation endpoint
	// reports unavailable and everything else works.
	var rewriter adaptation.Rewriter
	if cfg.LLM.GeminiAPIKey != "" {
		geminiRewriter, err := gemini.NewRewriter(ctx, logger, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rewriter: %w", err)
		}
		rewriter = geminiRewriter
		logger.Info("text rewriter initialized", "model", cfg.LLM.ModelName)
	} else {
		logger.Info("no LLM API key configured, text adaptation disabled")
	}

	app.taskRunner = task.NewRunner(task.RunnerConfig{
		WorkerCount: cfg.Task.WorkerCount,
		QueueSize:   cfg.Task.QueueSize,
	}, logger)
	app.taskRunner.Start()

	app.learnerService, err = service.NewLearnerService(app.learnerStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize learner service: %w", err)
	}

	app.vocabularyService, err = service.NewVocabularyService(
		app.learnerStore, app.wordStore, importer.NewImporter(logger), app.taskRunner, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize vocabulary service: %w", err)
	}

	app.grammarService, err = service.NewGrammarService(
		app.learnerStore, app.patternStore, catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize grammar service: %w", err)
	}

	app.assessmentService, err = service.NewAssessmentService(
		db, app.learnerStore, app.wordStore, app.patternStore, calculator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize assessment service: %w", err)
	}

	app.analysisService, err = service.NewAnalysisService(
		app.learnerStore, app.vocabularyService, classifier, detector, catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize analysis service: %w", err)
	}

	app.adaptationService, err = service.NewAdaptationService(
		app.learnerStore, app.wordStore, app.patternStore,
		app.assessmentService, app.analysisService, planner, rewriter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize adaptation service: %w", err)
	}

	return app, nil
}

// setupTagger selects the entity tagger for proper noun exclusion. Without a
// configured endpoint the classifier runs on capitalization heuristics alone.
func (app *application) setupTagger() ner.Tagger {
	if !app.config.NER.Enabled || app.config.NER.EndpointURL == "" {
		return ner.NoopTagger{}
	}

	tagger, err := ner.NewHTTPTagger(
		app.config.NER.EndpointURL,
		time.Duration(app.config.NER.TimeoutSeconds)*time.Second,
		app.logger,
	)
	if err != nil {
		app.logger.Warn("failed to initialize NER tagger, falling back to heuristics",
			"error", err)
		return ner.NoopTagger{}
	}

	app.logger.Info("NER tagger initialized", "endpoint", app.config.NER.EndpointURL)
	return tagger
}

// cleanup releases application resources in reverse initialization order.
func (app *application) cleanup() {
	app.logger.Info("stopping task runner")
	app.taskRunner.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	} else {
		app.logger.Info("database connection closed")
	}
}
