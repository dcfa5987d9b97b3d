package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/guvenchemy/MerkutY-BTK/internal/api"
	apimiddleware "github.com/guvenchemy/MerkutY-BTK/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	learnerHandler := api.NewLearnerHandler(app.learnerService, app.logger)
	vocabularyHandler := api.NewVocabularyHandler(app.vocabularyService, app.logger)
	grammarHandler := api.NewGrammarHandler(app.grammarService, app.logger)
	assessmentHandler := api.NewAssessmentHandler(app.assessmentService, app.logger)
	analysisHandler := api.NewAnalysisHandler(app.analysisService, app.logger)
	adaptationHandler := api.NewAdaptationHandler(app.adaptationService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/learners", learnerHandler.RegisterLearner)
		r.Get("/learners/{username}", learnerHandler.GetLearner)

		r.Get("/levels/{username}", assessmentHandler.AssessLevel)

		r.Post("/vocabulary/words", vocabularyHandler.SetWordStatus)
		r.Get("/vocabulary/words/{username}", vocabularyHandler.ListWords)
		r.Post("/vocabulary/import", vocabularyHandler.ImportWorkbook)

		r.Post("/grammar/status", grammarHandler.SetPatternStatus)
		r.Get("/grammar/overview/{username}", grammarHandler.Overview)

		r.Post("/analysis/classify", analysisHandler.ClassifyText)
		r.Post("/analysis/patterns", analysisHandler.DetectPatterns)

		r.Post("/adaptation/rewrite", adaptationHandler.AdaptText)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
