package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondErrorUsesMessageKey(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusBadRequest, "method must be one of: face, self")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"method must be one of: face, self"}` {
		t.Fatalf("unexpected body %s", got)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	var dst struct {
		Method string `json:"method"`
	}

	cases := map[string]string{
		"":                "request body is required",
		`{"method":`:      "invalid request body",
		`{"method": 5}`:   `invalid type for field "method"`,
		`{"method": x}`:   "malformed JSON",
		`{"method":"ok"}`: "",
	}
	for body, want := range cases {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := DecodeJSON(req, &dst)
		if want == "" {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", body, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Fatalf("%q: expected error containing %q, got %v", body, want, err)
		}
	}
}
