// Package db records conversions served by the cipher in a BoltDB file.
package db

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketConversions = []byte("conversions")
)

type Config struct {
	File string `yaml:"file"`
}

var db *bbolt.DB

func Open(config Config) {
	if db != nil {
		panic("db: already opened")
	}
	if config.File == "" {
		panic("db: file is required")
	}

	err := os.MkdirAll(filepath.Dir(config.File), 0755)
	if err != nil {
		panic(fmt.Errorf("db: create db dir: %w", err))
	}

	db, err = bbolt.Open(config.File, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		panic(fmt.Errorf("db: open bbolt db: %w", err))
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketConversions)
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucketConversions, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		db = nil
		panic(fmt.Errorf("db: initialize buckets: %w", err))
	}
}

func Opened() bool {
	return db != nil
}

func Close() error {
	if db == nil {
		panic("db: not opened")
	}

	err := db.Close()
	db = nil
	if err != nil {
		return fmt.Errorf("db: close bbolt db: %w", err)
	}
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func Closer() io.Closer {
	return closerFunc(Close)
}

type Direction string

const (
	Encode Direction = "encode"
	Decode Direction = "decode"
)

type Conversion struct {
	Time      time.Time `json:"time"`
	Direction Direction `json:"direction"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Offset    int       `json:"offset"`
	Remote    string    `json:"remote,omitempty"`
}

func key(seq uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, seq)
}

func Add(c Conversion) error {
	if db == nil {
		panic("db: not opened")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("db: marshal conversion: %w", err)
	}

	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketConversions)
		if b == nil {
			return fmt.Errorf("db: conversions bucket not found")
		}

		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("db: next sequence: %w", err)
		}
		return b.Put(key(seq), data)
	})
}

var errStop = fmt.Errorf("stop iteration")

// All yields every stored conversion, oldest first, keyed by its sequence number.
func All() iter.Seq2[uint64, Conversion] {
	if db == nil {
		panic("db: not opened")
	}

	return func(yield func(uint64, Conversion) bool) {
		err := db.View(func(tx *bbolt.Tx) error {
			b := tx.Bucket(bucketConversions)
			if b == nil {
				return fmt.Errorf("db: conversions bucket not found")
			}

			return b.ForEach(func(k, v []byte) error {
				var c Conversion
				err := json.Unmarshal(v, &c)
				if err != nil {
					return fmt.Errorf("db: unmarshal conversion %x: %w", k, err)
				}

				if !yield(binary.BigEndian.Uint64(k), c) {
					return errStop
				}
				return nil
			})
		})

		if err != nil {
			if errors.Is(err, errStop) {
				return
			}
			panic(fmt.Errorf("db: get all conversions: %w", err))
		}
	}
}

// Recent returns up to n conversions, newest first.
func Recent(n int) ([]Conversion, error) {
	if db == nil {
		panic("db: not opened")
	}

	var conversions []Conversion
	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketConversions)
		if b == nil {
			return fmt.Errorf("db: conversions bucket not found")
		}

		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(conversions) < n; k, v = c.Prev() {
			var conv Conversion
			err := json.Unmarshal(v, &conv)
			if err != nil {
				return fmt.Errorf("db: unmarshal conversion %x: %w", k, err)
			}
			conversions = append(conversions, conv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conversions, nil
}
