package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"shifter/internal/config"
	"shifter/internal/ctxlog"
	"shifter/internal/db"
	"shifter/internal/rec"
	"shifter/internal/server"
	"shifter/internal/shift"
	"syscall"
)

func run(ctx context.Context, configFile string) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	c, err := config.Load(ctx, configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cipher, err := shift.New(c.CipherConfig())
	if err != nil {
		return fmt.Errorf("cipher: %w", err)
	}

	if c.DB.File != "" {
		logger.Info("opening db")
		db.Open(c.DB)
		defer ctxlog.Close(ctx, "db", db.Closer())
	}

	logger.Info("starting server", "alphabet", cipher.Alphabet().String(), "separator", cipher.Separator(), "offset", cipher.Offset())
	srv := server.New(c.Server, cipher)

	return srv.Run(ctx)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = ctxlog.Setup(ctx, "shiftd")

	logger := ctxlog.Get(ctx)

	configFile := "config.yaml"
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	err := run(ctx, configFile)
	if err != nil {
		logger.Error("server stopped unexpectedly", "error", err)
		os.Exit(1)
	}
	logger.Info("server gracefully stopped")
}
