package utility

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	t.Run("sets correct headers and status", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteJSON(rr, http.StatusOK, map[string]string{"key": "value"})

		if rr.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected Content-Type application/json, got %q", ct)
		}
	})

	t.Run("encodes struct correctly", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteJSON(rr, http.StatusBadRequest, ErrorRes{
			Status:  "ERROR",
			Error:   "MISSING_FIELD",
			Message: "[code] is required",
		})

		expected := `{"status":"ERROR","error":"MISSING_FIELD","message":"[code] is required"}`
		// Response includes newline from json.Encoder
		got := rr.Body.String()
		if got != expected+"\n" {
			t.Errorf("expected body %q, got %q", expected+"\n", got)
		}
	})

	t.Run("handles nil value", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteJSON(rr, http.StatusOK, nil)

		if rr.Body.String() != "null\n" {
			t.Errorf("expected null, got %q", rr.Body.String())
		}
	})
}
