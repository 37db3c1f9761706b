package placeholder

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClient_ErrorBodyCutOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("é", 300)
	client := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(body))
	}))

	_, err := client.Get(context.Background(), "/posts")
	if err == nil {
		t.Fatalf("expected error for 500 response")
	}
	msg := err.Error()
	if !utf8.ValidString(msg) {
		t.Fatalf("error message is not valid UTF-8: %q", msg)
	}
	if !strings.Contains(msg, "returned 500") {
		t.Fatalf("expected status in error, got %q", msg)
	}
	if got := strings.Count(msg, "é"); got != maxErrorBody {
		t.Fatalf("expected body cut to %d runes, got %d", maxErrorBody, got)
	}
}
