package consent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	consentService "github.com/ugochukwu16henry/foundationprototype/internal/service/consent"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(consentService.NewService(time.Hour, 2*time.Second)).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string) (*httptest.ResponseRecorder, consentResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var body consentResponse
	if resp.Code == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode err: %v", err)
		}
	}
	return resp, body
}

func TestConsentLifecycle(t *testing.T) {
	r := setupRouter()

	resp, body := doRequest(t, r, http.MethodGet, "/consent/visitor-1")
	if resp.Code != http.StatusOK || body.Accepted || !body.ShowBanner {
		t.Fatalf("expected banner for new visitor, got %d %+v", resp.Code, body)
	}
	if body.BannerDelayMs != 2000 {
		t.Fatalf("unexpected banner delay: %d", body.BannerDelayMs)
	}

	resp, body = doRequest(t, r, http.MethodPost, "/consent/visitor-1")
	if resp.Code != http.StatusOK || !body.Accepted || body.ShowBanner {
		t.Fatalf("expected accepted consent, got %d %+v", resp.Code, body)
	}

	_, body = doRequest(t, r, http.MethodGet, "/consent/visitor-1")
	if !body.Accepted {
		t.Fatal("expected consent to persist")
	}

	resp, _ = doRequest(t, r, http.MethodDelete, "/consent/visitor-1")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	_, body = doRequest(t, r, http.MethodGet, "/consent/visitor-1")
	if body.Accepted {
		t.Fatal("expected consent revoked")
	}
}
