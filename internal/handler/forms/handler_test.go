package forms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ugochukwu16henry/foundationprototype/internal/validation"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New().RegisterRoutes(r)
	return r
}

func TestValidateValidForm(t *testing.T) {
	body := `{"fields":[{"name":"email","type":"email","value":"a@b.org","required":true}]}`
	req := httptest.NewRequest(http.MethodPost, "/forms/validate", strings.NewReader(body))
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestValidateInvalidForm(t *testing.T) {
	body := `{"fields":[{"name":"name","value":" ","required":true},{"name":"email","type":"email","value":"nope","required":true}]}`
	req := httptest.NewRequest(http.MethodPost, "/forms/validate", strings.NewReader(body))
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}

	var result validation.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if result.Errors["name"] != validation.ReasonRequired || result.Errors["email"] != validation.ReasonInvalidEmail {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestValidateBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/forms/validate", strings.NewReader(`not json`))
	resp := httptest.NewRecorder()

	setupRouter().ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
