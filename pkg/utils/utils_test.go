package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeJSONRejectsTrailingData(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}{"b":2}`))
	rec := httptest.NewRecorder()

	var dst map[string]int
	if err := DecodeJSON(rec, req, &dst); err == nil {
		t.Fatal("expected error for trailing object")
	}
}

func TestDecodeJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	rec := httptest.NewRecorder()

	var dst map[string]int
	if err := DecodeJSON(rec, req, &dst); err != nil {
		t.Fatalf("DecodeJSON err: %v", err)
	}
	if dst["a"] != 1 {
		t.Fatalf("unexpected payload: %v", dst)
	}
}

func TestSendSSEEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	SetupSSEHeaders(rec)

	if err := SendSSEEvent(rec, rec, "frame", map[string]string{"text": "10+"}); err != nil {
		t.Fatalf("SendSSEEvent err: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type: %s", got)
	}
	if body := rec.Body.String(); body != "event: frame\ndata: {\"text\":\"10+\"}\n\n" {
		t.Fatalf("unexpected body: %q", body)
	}
	if !rec.Flushed {
		t.Fatal("expected flush")
	}
}
