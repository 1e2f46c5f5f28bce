// Package server exposes the cipher over HTTP and manages the server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"shifter/internal/ctxlog"
	"shifter/internal/db"
	"shifter/internal/shift"
	"time"

	"golang.org/x/sync/errgroup"
)

type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration
	maxBodyBytes    int64
	history         bool
	anti            *antidos
}

func New(config Config, cipher *shift.Cipher) *Server {
	if config.Port == 0 {
		panic("server: port is required")
	}
	if config.AntidosBuckets <= 0 {
		panic("server: antidosBuckets must be positive")
	}
	if config.AntidosPeriod <= 0 {
		panic("server: antidosPeriod must be positive")
	}
	if config.ShutdownTimeout == 0 {
		panic("server: shutdownTimeout is required")
	}
	if cipher == nil {
		panic("server: cipher is required")
	}
	if config.History && !db.Opened() {
		panic("server: history requires an opened db")
	}

	s := &Server{
		addr:            fmt.Sprintf("0.0.0.0:%d", config.Port),
		shutdownTimeout: config.ShutdownTimeout,
		maxBodyBytes:    config.MaxBodyBytes,
		history:         config.History,
		anti:            newAntidos(config.AntidosBuckets, config.AntidosPeriod),
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = defaultMaxBodyBytes
	}

	mux := http.NewServeMux()

	slog.Info("registering handler", "path", "/")
	mux.Handle("/", notFoundHandler)

	slog.Info("registering handler", "path", "/encode", "offset", cipher.Offset())
	mux.Handle("POST /encode", s.anti.middleware(s.convertHandler(db.Encode, cipher)))

	inverse := cipher.Inverse()
	slog.Info("registering handler", "path", "/decode", "offset", inverse.Offset())
	mux.Handle("POST /decode", s.anti.middleware(s.convertHandler(db.Decode, inverse)))

	if config.AdminKey != "" {
		if !db.Opened() {
			panic("server: adminKey requires an opened db")
		}
		adm := newAdmin(config.AdminKey, notFoundHandler)
		slog.Info("registering handler", "path", "/history")
		mux.Handle("GET /history", adm.middleware(s.anti.middleware(historyHandler())))
	}

	handler := http.Handler(mux)
	handler = headersMiddleware(handler)
	handler = newRecover(handler, internalServerErrorHandler)
	handler = logMiddleware(handler)
	s.handler = handler

	return s
}

func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	logger := ctxlog.Get(ctx)
	defer s.anti.stop()

	srv := &http.Server{
		Handler:     s.handler,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server is running", "addr", ln.Addr().String())
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("server is shutting down")

		stopCtx, stopCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer stopCancel()

		err := srv.Shutdown(stopCtx)
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("server shutdown timeout exceeded")
		} else if err == nil {
			logger.Info("all clients closed successfully")
		}
		return err
	})

	return g.Wait()
}
