package db

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func open(t *testing.T) {
	t.Helper()
	Open(Config{File: filepath.Join(t.TempDir(), "data", "shifter.db")})
	t.Cleanup(func() {
		if err := Close(); err != nil {
			t.Error(err)
		}
	})
}

func TestAddAll(t *testing.T) {
	open(t)

	now := time.Now().UTC().Truncate(time.Second)
	for i := range 5 {
		err := Add(Conversion{
			Time:      now.Add(time.Duration(i) * time.Second),
			Direction: Encode,
			Input:     fmt.Sprintf("in %d", i),
			Output:    fmt.Sprintf("jo %d", i),
			Offset:    1,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	var i int
	for seq, c := range All() {
		if have, want := seq, uint64(i+1); have != want {
			t.Fatalf("sequence %d, want %d", have, want)
		}
		if have, want := c.Input, fmt.Sprintf("in %d", i); have != want {
			t.Fatalf("input %q, want %q", have, want)
		}
		if !c.Time.Equal(now.Add(time.Duration(i) * time.Second)) {
			t.Fatalf("time %s not preserved", c.Time)
		}
		i++
	}
	if have, want := i, 5; have != want {
		t.Fatalf("iterated %d conversions, want %d", have, want)
	}

	for range All() {
		break
	}
}

func TestRecent(t *testing.T) {
	open(t)

	empty, err := Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("Recent on empty db returned %d conversions", len(empty))
	}

	for i := range 4 {
		if err := Add(Conversion{Direction: Decode, Input: fmt.Sprint(i)}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := len(recent), 2; have != want {
		t.Fatalf("Recent returned %d conversions, want %d", have, want)
	}
	if have, want := recent[0].Input, "3"; have != want {
		t.Fatalf("newest input %q, want %q", have, want)
	}
	if have, want := recent[1].Input, "2"; have != want {
		t.Fatalf("second input %q, want %q", have, want)
	}
}

func TestReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "shifter.db")

	Open(Config{File: file})
	if err := Add(Conversion{Input: "kept"}); err != nil {
		t.Fatal(err)
	}
	if err := Closer().Close(); err != nil {
		t.Fatal(err)
	}
	if Opened() {
		t.Fatal("db still opened after Close")
	}

	Open(Config{File: file})
	defer Close()

	recent, err := Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 1 || recent[0].Input != "kept" {
		t.Fatalf("Recent after reopen = %+v", recent)
	}
}
