package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "mathflow/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Problem  *ProblemHandler
	Speech   *SpeechHandler
	Settings *SettingsHandler
	Journal  *JournalHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers, allowedOrigins []string, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.Problem.HandleRoot)

	// Liveness probe for container orchestration.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// JSON routes get a deadline so a stuck provider cannot hold the connection.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(requestTimeout))

			r.Post("/process-problem", h.Problem.HandleProcessProblem)
			r.Post("/extract-latex", h.Problem.HandleExtractLatex)
			r.Post("/generate-speech", h.Speech.HandleGenerateSpeech)

			r.Get("/settings", h.Settings.HandleGetSettings)
			r.Post("/settings", h.Settings.HandleUpdateSettings)
			r.Get("/models", h.Settings.HandleListModels)

			r.Get("/journal", h.Journal.HandleListJournal)
			r.Get("/journal/{entryID}", h.Journal.HandleGetJournalEntry)
		})
	})

	return r
}
