// SPDX-License-Identifier: MIT

package stress_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MachineryHealth/cytoscape-sub002/internal/stress"
)

func shortConfig(seed int64) stress.Config {
	cfg := stress.DefaultConfig()
	cfg.Seed = seed
	cfg.Steps = 2_000
	cfg.CheckEvery = 25
	cfg.MaxNodes = 64

	return cfg
}

func TestRun_Passes(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		r, err := stress.Run(context.Background(), shortConfig(seed), zaptest.NewLogger(t, zaptest.Level(zapcore.InfoLevel)))
		require.NoError(t, err, "seed %d", seed)

		assert.Equal(t, 2_000, r.Steps)
		total := 0
		for _, op := range stress.Ops() {
			total += r.Ops[op]
		}
		assert.Equal(t, r.Steps, total)
		assert.Equal(t, 2_000/25+1, r.Checks)
		assert.Positive(t, r.SelfEdges)
		assert.Positive(t, r.Parallel)
		assert.Positive(t, r.Rejected)
		assert.LessOrEqual(t, r.PeakNodes, 64)
	}
}

func TestRun_Deterministic(t *testing.T) {
	for _, seed := range []int64{5, 11} {
		want, err := stress.Run(context.Background(), shortConfig(seed), nil)
		require.NoError(t, err)
		require.Positive(t, want.Cascaded)
		for i := 0; i < 4; i++ {
			got, err := stress.Run(context.Background(), shortConfig(seed), nil)
			require.NoError(t, err)
			assert.Equal(t, want, got, "seed %d run %d", seed, i)
		}
	}
}

func TestRun_EveryStepChecked(t *testing.T) {
	cfg := shortConfig(8)
	cfg.Steps = 300
	cfg.CheckEvery = 1
	cfg.InitialNodes = 0
	cfg.Mix = stress.Mix{CreateNode: 1, RemoveNode: 1, CreateEdge: 3, RemoveEdge: 2, Probe: 1}

	r, err := stress.Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 301, r.Checks)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := stress.Run(ctx, shortConfig(1), nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, r.Steps)
	assert.Equal(t, 32, r.FinalStats.NodeCount, "initial fixture only")
}

func TestRun_InvalidConfig(t *testing.T) {
	mutations := map[string]func(*stress.Config){
		"negative steps":  func(c *stress.Config) { c.Steps = -1 },
		"zero check":      func(c *stress.Config) { c.CheckEvery = 0 },
		"bad density":     func(c *stress.Config) { c.InitialDensity = 1.5 },
		"negative nodes":  func(c *stress.Config) { c.InitialNodes = -2 },
		"negative cap":    func(c *stress.Config) { c.MaxNodes = -1 },
		"negative weight": func(c *stress.Config) { c.Mix.Probe = -1 },
		"empty mix":       func(c *stress.Config) { c.Mix = stress.Mix{} },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := stress.DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), stress.ErrInvalidConfig)
			_, err := stress.Run(context.Background(), cfg, nil)
			require.ErrorIs(t, err, stress.ErrInvalidConfig)
		})
	}
	require.NoError(t, stress.DefaultConfig().Validate())
}

func TestRun_Logs(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	cfg := shortConfig(4)
	cfg.Steps = 100

	_, err := stress.Run(context.Background(), cfg, zap.New(obsCore))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("stress session started").Len())
	assert.Equal(t, 1, logs.FilterMessage("stress session finished").Len())
	assert.Equal(t, 100/25+1, logs.FilterMessage("consistency check passed").Len())
	assert.NotZero(t, logs.FilterLoggerName("core").Len(), "engine events go to the named child logger")
}

func TestOp_String(t *testing.T) {
	want := []string{"create_node", "remove_node", "create_edge", "remove_edge", "probe"}
	for i, op := range stress.Ops() {
		assert.Equal(t, want[i], op.String())
	}
}
