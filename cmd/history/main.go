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
	"syscall"
)

func run(ctx context.Context, configFile string) (err error) {
	defer rec.Error(&err)

	logger := ctxlog.Get(ctx)

	c, err := config.Load(ctx, configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Info("opening db")
	db.Open(c.DB)
	defer ctxlog.Close(ctx, "db", db.Closer())

	for seq, conv := range db.All() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Info("conversion",
			"seq", seq,
			"time", conv.Time,
			"direction", conv.Direction,
			"offset", conv.Offset,
			"input", conv.Input,
			"output", conv.Output,
			"remote", conv.Remote,
		)
	}

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ctx = ctxlog.Setup(ctx, "history")

	logger := ctxlog.Get(ctx)

	configFile := "config.yaml"
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	err := run(ctx, configFile)
	if err != nil {
		logger.Error("stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}
