// Package config holds the maze generator options and loads them from TOML
// or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for options that cannot produce a maze.
var ErrInvalid = errors.New("config: invalid options")

// Defaults used when neither a file nor a flag sets a value.
const (
	DefaultSize  = 8
	DefaultSeed  = 123456789
	DefaultCount = 1
)

// Options configure maze generation.
type Options struct {
	Width    int    `toml:"width" yaml:"width"`
	Height   int    `toml:"height" yaml:"height"`
	Seed     uint32 `toml:"seed" yaml:"seed"`
	Params   int    `toml:"params" yaml:"params"`
	Count    int    `toml:"count" yaml:"count"`
	MemLimit int    `toml:"mem_limit" yaml:"mem_limit"`
	Frame    bool   `toml:"frame" yaml:"frame"`
	Solve    bool   `toml:"solve" yaml:"solve"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		Width:  DefaultSize,
		Height: DefaultSize,
		Seed:   DefaultSeed,
		Count:  DefaultCount,
	}
}

// Load reads path over the defaults. The format follows the extension:
// .yaml and .yml are YAML, anything else is TOML. Unknown keys are errors.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: %w", err)
	}
	opts := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &opts)
	default:
		err = decodeTOML(data, &opts)
	}
	if err != nil {
		return Options{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return opts, nil
}

func decodeTOML(data []byte, opts *Options) error {
	meta, err := toml.Decode(string(data), opts)
	if err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, opts *Options) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Validate reports the first option that cannot be used.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return fmt.Errorf("%w: width must be greater than zero, got %d", ErrInvalid, o.Width)
	case o.Height <= 0:
		return fmt.Errorf("%w: height must be greater than zero, got %d", ErrInvalid, o.Height)
	case o.Count <= 0:
		return fmt.Errorf("%w: count must be greater than zero, got %d", ErrInvalid, o.Count)
	case o.MemLimit < 0:
		return fmt.Errorf("%w: mem_limit must not be negative, got %d", ErrInvalid, o.MemLimit)
	}
	return nil
}
