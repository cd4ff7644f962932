// Package config provides the benchmark suite configuration for pixbench.
//
// A configuration names the square buffer sizes to measure and the buffer
// kinds to measure them with. With no file and no flags the suite matches
// the default report: every kind, sizes 256 through 4096.
//
// Configuration can be loaded from a YAML or JSON file and then overridden
// by command line flags:
//
//	cfg, err := config.LoadFile("./pixbench.yaml")
//	if err != nil {
//	    return err
//	}
//	cfg.Merge(config.Overrides{Sizes: []int{256, 512}})
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import "github.com/containifyci/pixbench/pkg/pixbuf"

// Config describes one benchmark suite.
type Config struct {
	// Square buffer edge lengths, run in the given order.
	Sizes []int `yaml:"sizes" json:"sizes"`

	// Buffer kinds, reported in the given order.
	Kinds []string `yaml:"kinds" json:"kinds"`
}

// DefaultSizes are the edge lengths measured when nothing else is configured.
var DefaultSizes = []int{256, 512, 1024, 2048, 4096}

// DefaultKinds is the default report order.
var DefaultKinds = []string{pixbuf.SliceKind, pixbuf.StringKind, pixbuf.RawKind}

// DefaultConfig returns the default suite.
func DefaultConfig() *Config {
	return &Config{
		Sizes: append([]int(nil), DefaultSizes...),
		Kinds: append([]string(nil), DefaultKinds...),
	}
}

// Overrides carries values set on the command line. Empty fields leave the
// configuration untouched.
type Overrides struct {
	Sizes []int
	Kinds []string
}

// Merge applies overrides on top of c.
func (c *Config) Merge(o Overrides) {
	if len(o.Sizes) > 0 {
		c.Sizes = append([]int(nil), o.Sizes...)
	}
	if len(o.Kinds) > 0 {
		c.Kinds = append([]string(nil), o.Kinds...)
	}
}

// fillDefaults sets every empty field to its default.
func (c *Config) fillDefaults() {
	if len(c.Sizes) == 0 {
		c.Sizes = append([]int(nil), DefaultSizes...)
	}
	if len(c.Kinds) == 0 {
		c.Kinds = append([]string(nil), DefaultKinds...)
	}
}
