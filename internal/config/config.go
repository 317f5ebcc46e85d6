// Package config loads optional TOML defaults for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is looked up in the working directory when --config is not given.
const DefaultPath = "probsift.toml"

// File holds defaults applied before CLI flags. Terms accumulate with the
// flag-provided ones; boolean and width settings are overridden by flags.
type File struct {
	IgnoreCase bool     `toml:"ignore-case"`
	Include    []string `toml:"include"`
	Exclude    []string `toml:"exclude"`
	Table      Table    `toml:"table"`
}

// Table holds text-output tuning.
type Table struct {
	// MaxWidth overrides the detected terminal width when sizing the
	// message column. Zero keeps autodetection.
	MaxWidth int `toml:"max-width"`
}

// Load reads a TOML defaults file. A missing file at the default path is
// fine; an explicitly given path must exist and parse.
func Load(path string, explicit bool) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return f, nil
}
