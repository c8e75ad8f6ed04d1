package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"8080", "127.0.0.1:8080"},
		{":8080", "127.0.0.1:8080"},
		{"0.0.0.0:9000", "0.0.0.0:9000"},
		{" localhost:1 ", "localhost:1"},
	}
	for _, tc := range tests {
		if got := normalizeAddr(tc.in); got != tc.want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestServer_RunAndShutdown(t *testing.T) {
	s := New()
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	errCh := make(chan error, 1)
	go func() { errCh <- s.Run("127.0.0.1:0", h) }()

	select {
	case <-s.Ready():
	case err := <-errCh:
		t.Fatalf("Run: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server not ready")
	}

	resp, err := http.Get("http://" + s.Addr().String())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("body = %q", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Run after shutdown: %v", err)
	}
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	if err := New().Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestServer_EmptyAddr(t *testing.T) {
	if err := New().Run("", http.NotFoundHandler()); err == nil {
		t.Fatal("expected error")
	}
}
