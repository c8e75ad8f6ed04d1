package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
	ready      chan struct{}
	addr       net.Addr
}

const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second

	defaultHost = "127.0.0.1"
)

// newHTTPServer builds a configured *http.Server for the given address and handler.
// No WriteTimeout: /ws connections stay open for the whole workout.
func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// normalizeAddr accepts "8080", ":8080" or "host:port". A bare port binds
// to loopback only.
func normalizeAddr(addr string) string {
	addr = strings.TrimSpace(addr)
	switch {
	case addr == "":
		return ""
	case strings.HasPrefix(addr, ":"):
		return defaultHost + addr
	case !strings.Contains(addr, ":"):
		return net.JoinHostPort(defaultHost, addr)
	}
	return addr
}

// New prepares a server; call Run to start serving.
func New() *Server {
	return &Server{ready: make(chan struct{})}
}

// Run listens on addr and serves handler until Shutdown. It returns nil
// after a graceful shutdown.
func (s *Server) Run(addr string, handler http.Handler) error {
	addr = normalizeAddr(addr)
	if addr == "" {
		return errors.New("server: empty listen address")
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.httpServer = newHTTPServer(addr, handler)
	s.addr = ln.Addr()
	if s.ready != nil {
		close(s.ready)
	}
	if err := s.httpServer.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr is the bound address, valid after Ready.
func (s *Server) Addr() net.Addr { return s.addr }

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
