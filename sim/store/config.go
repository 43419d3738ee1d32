package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grocery-sim/grocery-sim/sim"
)

// Config describes the checkout lines of a store.
type Config struct {
	RegularCount        int   `yaml:"regular_count"`
	ExpressCount        int   `yaml:"express_count"`
	SelfServeCount      int   `yaml:"self_serve_count"`
	LineCapacity        int   `yaml:"line_capacity"`
	ExpressItemLimit    int   `yaml:"express_item_limit"`
	SelfServeMultiplier int64 `yaml:"self_serve_multiplier"`
}

// DefaultConfig returns a store with a single regular line.
func DefaultConfig() Config {
	return Config{
		RegularCount:        1,
		LineCapacity:        10,
		ExpressItemLimit:    7,
		SelfServeMultiplier: 2,
	}
}

// NumLines returns the total number of lines cfg describes.
func (c Config) NumLines() int {
	return c.RegularCount + c.ExpressCount + c.SelfServeCount
}

// Validate checks line counts and parameter ranges.
func (c Config) Validate() error {
	if c.RegularCount < 0 || c.ExpressCount < 0 || c.SelfServeCount < 0 {
		return fmt.Errorf("line counts must be non-negative, got regular=%d express=%d self_serve=%d",
			c.RegularCount, c.ExpressCount, c.SelfServeCount)
	}
	if c.NumLines() == 0 {
		return fmt.Errorf("store must have at least one line")
	}
	if c.LineCapacity < 1 {
		return fmt.Errorf("line_capacity must be >= 1, got %d", c.LineCapacity)
	}
	if c.ExpressCount > 0 && c.ExpressItemLimit < 1 {
		return fmt.Errorf("express_item_limit must be >= 1, got %d", c.ExpressItemLimit)
	}
	if c.SelfServeCount > 0 && c.SelfServeMultiplier < 1 {
		return fmt.Errorf("self_serve_multiplier must be >= 1, got %d", c.SelfServeMultiplier)
	}
	return nil
}

// Bundle is the full configuration file: the store layout plus the
// simulation policy. Keys absent from the file keep their defaults.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Bundle struct {
	Store      Config     `yaml:"store"`
	Simulation sim.Config `yaml:"simulation"`
}

// DefaultBundle returns the configuration used when no file is given.
func DefaultBundle() *Bundle {
	return &Bundle{Store: DefaultConfig(), Simulation: sim.DefaultConfig()}
}

// LoadBundle reads and parses a YAML configuration file.
// Unknown keys are errors so that typos do not silently fall back to defaults.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading store config: %w", err)
	}
	return ParseBundle(data)
}

// ParseBundle parses YAML configuration data on top of DefaultBundle and validates it.
func ParseBundle(data []byte) (*Bundle, error) {
	b := DefaultBundle()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(b); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing store config: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks both sections.
func (b *Bundle) Validate() error {
	if err := b.Store.Validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := b.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}
