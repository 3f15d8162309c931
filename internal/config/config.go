// Package config loads the compiler's few overridable settings from an
// optional cplc.toml file, grounded on the same "small flat settings
// struct decoded from TOML" shape the arm-emulator example pack uses for
// its own settings file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the driver's overridable constants. The default suffixes
// reproduce cpq.py's hard-coded .ou/.qud (spec.md §6, §9); the default
// signature is the placeholder DefaultSignature, not cpq.py's text.
type Config struct {
	InputSuffix  string `toml:"input_suffix"`
	OutputSuffix string `toml:"output_suffix"`
	Signature    string `toml:"signature"`
}

// DefaultSignature is the opaque trailing line cpq.py appends to every
// successful compilation. spec.md §6 treats the exact text as external
// and unspecified; this value is a placeholder kept out of internal/quad
// so the emitter never needs to know about it.
const DefaultSignature = "cplc compiler :)"

// Default returns the built-in settings used when no cplc.toml is found.
func Default() *Config {
	return &Config{
		InputSuffix:  ".ou",
		OutputSuffix: ".qud",
		Signature:    DefaultSignature,
	}
}

// Load decodes a cplc.toml file at path, filling in defaults for any
// field the file doesn't set.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
