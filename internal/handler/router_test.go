package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ugochukwu16henry/foundationprototype/internal/analysis/counter"
	"github.com/ugochukwu16henry/foundationprototype/internal/engine"
	givingModel "github.com/ugochukwu16henry/foundationprototype/internal/model/giving"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/analytics"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/assistant"
	chatService "github.com/ugochukwu16henry/foundationprototype/internal/service/chat"
	consentService "github.com/ugochukwu16henry/foundationprototype/internal/service/consent"
)

func newTestRouter(t *testing.T, withAnalytics bool) http.Handler {
	t.Helper()
	chatSvc := chatService.NewService()

	deps := Deps{
		Assistant:      assistant.NewService(engine.Default(), chatSvc, assistant.Config{Greeting: engine.Greeting}),
		Chat:           chatSvc,
		Consent:        consentService.NewService(time.Hour, time.Second),
		GivingLevels:   givingModel.NewMemoryStore(givingModel.Seed()),
		Stats:          counter.SeedStats(),
		AllowedOrigins: []string{"*"},
	}
	if withAnalytics {
		deps.Analytics = analytics.NewService(analytics.LogSink{}, 8)
		t.Cleanup(func() { deps.Analytics.Close(context.Background()) })
	}
	return NewRouter(deps)
}

func TestRouterRoutes(t *testing.T) {
	r := newTestRouter(t, true)

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodPost, "/api/session", "", http.StatusCreated},
		{http.MethodGet, "/api/respond?q=hello", "", http.StatusOK},
		{http.MethodGet, "/api/consent/v1", "", http.StatusOK},
		{http.MethodGet, "/api/stats", "", http.StatusOK},
		{http.MethodGet, "/api/giving-levels", "", http.StatusOK},
		{http.MethodPost, "/api/events/pageview", `{"path":"/"}`, http.StatusAccepted},
		{http.MethodPost, "/api/forms/validate", `{"fields":[]}`, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			if resp.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestRouterWithoutAnalytics(t *testing.T) {
	r := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/events/click", strings.NewReader(`{"text":"Donate"}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}
