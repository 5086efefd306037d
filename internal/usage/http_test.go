package usage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestHTTPClientDeliver проверяет заголовки и успешную доставку.
func TestHTTPClientDeliver(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret-key", 5*time.Second)
	err := client.Deliver(context.Background(), ReportPayload{SessionID: "abc", HealthScore: 80})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotAuth != "Bearer secret-key" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotPath != "/reports" {
		t.Fatalf("expected /reports path, got %q", gotPath)
	}
}

// TestHTTPClientDeliverError проверяет разбор ошибки сборщика.
func TestHTTPClientDeliverError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret-key", 5*time.Second)
	err := client.Deliver(context.Background(), ReportPayload{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected collector message, got %v", err)
	}
}
