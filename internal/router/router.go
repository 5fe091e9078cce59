package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "livestock-registry/internal/adapters/storage/memory"
	_ "livestock-registry/internal/docs"
	"livestock-registry/internal/domain/breedchat"
	"livestock-registry/internal/domain/breeds"
	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/domain/wizard"
	"livestock-registry/internal/middleware"
	"livestock-registry/internal/platform/config"
	"livestock-registry/internal/platform/logger"
	"livestock-registry/internal/platform/metrics"
	"livestock-registry/internal/ports/ai"
	"livestock-registry/internal/ports/auth"
)

type Options struct {
	Config config.Config
	Logger logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si no viene, in-memory. Ver OpenRepository.
	Repo      registrations.Repository
	Publisher registrations.Publisher

	// IA: nil = no configurada (la identificación falla como servicio no disponible).
	Identifier ai.Identifier
	Detector   ai.Detector
	Chat       ai.ChatStarter

	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(m.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewRegistrationsRepo()
	}
	repo = registrations.WithPublisher(repo, opts.Publisher, log.With(map[string]any{"module": "registrations"}))

	// Services por módulo
	regsSvc := registrations.NewService(repo)
	wizardSvc := wizard.NewService(wizard.Deps{
		Identifier: opts.Identifier,
		Detector:   opts.Detector,
		Repo:       repo,
		Observer:   m,
	}, wizard.Options{
		SessionTTL: opts.Config.Wizard.SessionTTL,
		Logger:     log,
	})
	chatSvc := breedchat.NewService(opts.Chat, opts.Config.Chat.TTL)

	// Rutas por módulo
	breeds.RegisterRoutes(r, breeds.Default())
	wizard.RegisterRoutes(r, wizardSvc)
	registrations.RegisterRoutes(r, regsSvc)
	breedchat.RegisterRoutes(r, chatSvc)

	return r
}
