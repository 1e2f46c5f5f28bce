package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return m
}

func TestGetDefault(t *testing.T) {
	if Get(context.Background()) != slog.Default() {
		t.Fatal("Get without a stored logger must return slog.Default")
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := Store(context.Background(), New(buf))
	ctx = With(ctx, "offset", 3)

	Get(ctx).Info("converted")

	m := decode(t, buf)
	if have, want := m["msg"], "converted"; have != want {
		t.Fatalf("msg %v, want %v", have, want)
	}
	if have, want := m["offset"], float64(3); have != want {
		t.Fatalf("offset %v, want %v", have, want)
	}
}

func TestClose(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := Store(context.Background(), New(buf))

	if err := Close(ctx, "ok", closerFunc(func() error { return nil })); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log output %q", buf.String())
	}

	fail := errors.New("boom")
	if err := Close(ctx, "broken", closerFunc(func() error { return fail })); !errors.Is(err, fail) {
		t.Fatalf("Close error = %v, want %v", err, fail)
	}

	m := decode(t, buf)
	if have, want := m["closer"], "broken"; have != want {
		t.Fatalf("closer %v, want %v", have, want)
	}
	if have, want := m["level"], "ERROR"; have != want {
		t.Fatalf("level %v, want %v", have, want)
	}
}
