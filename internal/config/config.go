// Package config loads the YAML configuration shared by the shifter commands.
package config

import (
	"context"
	"fmt"
	"os"
	"shifter/internal/ctxlog"
	"shifter/internal/db"
	"shifter/internal/rec"
	"shifter/internal/server"
	"shifter/internal/shift"

	"github.com/goccy/go-yaml"
)

type Config struct {
	Cipher *shift.Config `yaml:"cipher"`
	Server server.Config `yaml:"server"`
	DB     db.Config     `yaml:"db"`
}

// CipherConfig returns the configured cipher, or shift.Default when the file has none.
func (c Config) CipherConfig() shift.Config {
	if c.Cipher == nil {
		return shift.Default
	}
	return *c.Cipher
}

func Load(ctx context.Context, filename string) (config Config, err error) {
	defer rec.Wrap(&err, "load %q: %w", filename)

	file, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	return config, nil
}
