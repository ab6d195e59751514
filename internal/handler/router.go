package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ugochukwu16henry/foundationprototype/internal/analysis/counter"
	"github.com/ugochukwu16henry/foundationprototype/internal/handler/chat"
	"github.com/ugochukwu16henry/foundationprototype/internal/handler/consent"
	"github.com/ugochukwu16henry/foundationprototype/internal/handler/events"
	"github.com/ugochukwu16henry/foundationprototype/internal/handler/forms"
	"github.com/ugochukwu16henry/foundationprototype/internal/handler/giving"
	"github.com/ugochukwu16henry/foundationprototype/internal/handler/stats"
	middlewarePkg "github.com/ugochukwu16henry/foundationprototype/internal/middleware"
	givingModel "github.com/ugochukwu16henry/foundationprototype/internal/model/giving"
	"github.com/ugochukwu16henry/foundationprototype/internal/observability"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/analytics"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/assistant"
	chatService "github.com/ugochukwu16henry/foundationprototype/internal/service/chat"
	consentService "github.com/ugochukwu16henry/foundationprototype/internal/service/consent"
	"github.com/ugochukwu16henry/foundationprototype/pkg/utils"
)

// Deps bundles the services exposed over HTTP. Analytics may be nil.
type Deps struct {
	Assistant      *assistant.Service
	Chat           *chatService.Service
	Consent        *consentService.Service
	Analytics      *analytics.Service
	Limiter        *analytics.Limiter
	GivingLevels   givingModel.Store
	Stats          []counter.Stat
	StatsTick      time.Duration
	AllowedOrigins []string
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewarePkg.PeerAddr)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(deps.AllowedOrigins))
	r.Use(observability.MetricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		chat.New(deps.Assistant, deps.Chat).RegisterRoutes(api)
		chat.NewWebSocketHandler(deps.Assistant, deps.Chat).RegisterWebSocketRoutes(api)

		consent.New(deps.Consent).RegisterRoutes(api)
		forms.New().RegisterRoutes(api)
		stats.New(deps.Stats, deps.StatsTick).RegisterRoutes(api)
		giving.New(deps.GivingLevels).RegisterRoutes(api)

		if deps.Analytics != nil {
			events.New(deps.Analytics, deps.Limiter).RegisterRoutes(api)
		} else {
			api.Post("/events/*", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
		}
	})

	return r
}
