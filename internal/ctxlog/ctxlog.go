// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const dir = "log"

var setup = false

// Setup installs a JSON logger writing to stderr and to a new file in the log
// directory, prefixed with app. Only the first call creates a logger.
func Setup(ctx context.Context, app string) context.Context {
	if setup {
		return Store(ctx, slog.Default())
	}

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		panic(fmt.Errorf("create log dir: %w", err))
	}

	logFile, err := os.Create(filepath.Join(dir, app+"-"+time.Now().Format("2006-01-02-15-04-05.log")))
	if err != nil {
		panic(fmt.Errorf("create log file: %w", err))
	}

	logger := New(io.MultiWriter(os.Stderr, logFile)).With("app", app)
	slog.SetDefault(logger)

	setup = true

	return Store(ctx, logger)
}

func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, nil))
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

// Close closes closer and logs the failure under name.
func Close(ctx context.Context, name string, closer io.Closer) error {
	err := closer.Close()
	if err != nil {
		Get(ctx).Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
