package giving

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/model/giving"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(giving.NewMemoryStore(giving.Seed())).RegisterRoutes(r)
	return r
}

func TestSelectLevel(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/giving/select", strings.NewReader(`{"levelId":"advocate"}`))
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if body.Amount != 50 {
		t.Fatalf("unexpected amount: %d", body.Amount)
	}
}

func TestSelectLevelErrors(t *testing.T) {
	cases := map[string]int{
		`{"levelId":"missing"}`: http.StatusNotFound,
		`{}`:                    http.StatusBadRequest,
		`[`:                     http.StatusBadRequest,
	}

	for body, want := range cases {
		req := httptest.NewRequest(http.MethodPost, "/giving/select", strings.NewReader(body))
		resp := httptest.NewRecorder()

		setupRouter().ServeHTTP(resp, req)

		if resp.Code != want {
			t.Fatalf("body %s: expected %d, got %d", body, want, resp.Code)
		}
	}
}

func TestListLevels(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/giving-levels", nil)
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	var levels []giving.Level
	if err := json.NewDecoder(resp.Body).Decode(&levels); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if len(levels) != len(giving.Seed()) {
		t.Fatalf("expected %d levels, got %d", len(giving.Seed()), len(levels))
	}
}
