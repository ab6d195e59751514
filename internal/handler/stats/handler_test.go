package stats

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/analysis/counter"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New([]counter.Stat{{Name: "volunteers", Label: "Volunteers", Count: 40, Suffix: "+"}}, 0).RegisterRoutes(r)
	return r
}

func TestAnimateStreamsFrames(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stats/volunteers/animate", nil)
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type: %s", got)
	}

	body := resp.Body.String()
	frames := strings.Count(body, "event: frame\n")
	if frames != len(counter.Frames(40, "+")) {
		t.Fatalf("expected %d frames, got %d", len(counter.Frames(40, "+")), frames)
	}
	if !strings.HasSuffix(body, "event: end\ndata: {\"text\":\"40+\"}\n\n") {
		t.Fatalf("missing end event: %q", body[len(body)-60:])
	}
}

func TestAnimateUnknownStat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stats/missing/animate", nil)
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListStats(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"volunteers"`) {
		t.Fatalf("unexpected response: %d %s", resp.Code, resp.Body.String())
	}
}
