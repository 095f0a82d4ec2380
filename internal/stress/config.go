// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Stress session configuration, defaults and validation.

package stress

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("stress: invalid config")

// Mix weights the operation kinds drawn each step. Zero disables a kind.
type Mix struct {
	CreateNode int `mapstructure:"create_node"`
	RemoveNode int `mapstructure:"remove_node"`
	CreateEdge int `mapstructure:"create_edge"`
	RemoveEdge int `mapstructure:"remove_edge"`
	Probe      int `mapstructure:"probe"`
}

func (m Mix) total() int {
	return m.CreateNode + m.RemoveNode + m.CreateEdge + m.RemoveEdge + m.Probe
}

// Config drives one Run.
type Config struct {
	Seed  int64 `mapstructure:"seed"`
	Steps int   `mapstructure:"steps"`

	// CheckEvery runs the full consistency check every n steps; 1 checks
	// after every step. The final state is always checked.
	CheckEvery int `mapstructure:"check_every"`

	// InitialNodes and InitialDensity seed the graph with a random sparse
	// fixture of mixed directedness before the session starts.
	InitialNodes   int     `mapstructure:"initial_nodes"`
	InitialDensity float64 `mapstructure:"initial_density"`

	// MaxNodes turns node creation into node removal once reached; 0 means no cap.
	MaxNodes int `mapstructure:"max_nodes"`

	Mix Mix `mapstructure:"mix"`
}

// DefaultConfig returns a short, edge-heavy session.
func DefaultConfig() Config {
	return Config{
		Seed:           1,
		Steps:          10_000,
		CheckEvery:     100,
		InitialNodes:   32,
		InitialDensity: 0.1,
		MaxNodes:       512,
		Mix: Mix{
			CreateNode: 20,
			RemoveNode: 5,
			CreateEdge: 45,
			RemoveEdge: 20,
			Probe:      10,
		},
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Steps < 0:
		return fmt.Errorf("%w: steps=%d < 0", ErrInvalidConfig, c.Steps)
	case c.CheckEvery < 1:
		return fmt.Errorf("%w: check_every=%d < 1", ErrInvalidConfig, c.CheckEvery)
	case c.InitialNodes < 0:
		return fmt.Errorf("%w: initial_nodes=%d < 0", ErrInvalidConfig, c.InitialNodes)
	case c.InitialDensity < 0 || c.InitialDensity > 1:
		return fmt.Errorf("%w: initial_density=%g not in [0,1]", ErrInvalidConfig, c.InitialDensity)
	case c.MaxNodes < 0:
		return fmt.Errorf("%w: max_nodes=%d < 0", ErrInvalidConfig, c.MaxNodes)
	case c.Mix.CreateNode < 0 || c.Mix.RemoveNode < 0 || c.Mix.CreateEdge < 0 ||
		c.Mix.RemoveEdge < 0 || c.Mix.Probe < 0:
		return fmt.Errorf("%w: negative mix weight %+v", ErrInvalidConfig, c.Mix)
	case c.Mix.total() == 0:
		return fmt.Errorf("%w: mix weights are all zero", ErrInvalidConfig)
	}

	return nil
}
