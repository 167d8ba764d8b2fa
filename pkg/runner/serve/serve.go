// Package serve runs the JSON HTTP API until its context is cancelled.
package serve

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/pokedex/pkg/dex"
	"tableflip.dev/pokedex/pkg/server"
)

// DefaultListenAddr is used when ListenAddr is empty.
const DefaultListenAddr = "127.0.0.1:8080"

// Serve coordinates HTTP API startup and shutdown.
type Serve struct {
	Service        *dex.Service
	Logger         *zap.Logger
	ListenAddr     string
	AllowedOrigins []string
	OnListening    func(net.Addr)
}

// Do listens and serves until ctx is done.
func (s *Serve) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("serve requires a catalog service")
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handler := server.New(s.Service,
		server.WithLogger(logger),
		server.WithAllowedOrigins(s.AllowedOrigins...),
	)

	addr := s.ListenAddr
	if addr == "" {
		addr = DefaultListenAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if s.OnListening != nil {
		s.OnListening(ln.Addr())
	}

	httpSrv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	err = httpSrv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
