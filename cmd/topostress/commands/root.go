// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MachineryHealth/cytoscape-sub002/internal/stress"
)

// EnvPrefix namespaces environment overrides, e.g. TOPOSTRESS_STEPS.
const EnvPrefix = "TOPOSTRESS"

// flag name → config key
var flagKeys = map[string]string{
	"seed":            "seed",
	"steps":           "steps",
	"check-every":     "check_every",
	"initial-nodes":   "initial_nodes",
	"initial-density": "initial_density",
	"max-nodes":       "max_nodes",
	"timeout":         "timeout",
	"verbose":         "verbose",
}

// NewRootCmd builds the topostress command with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "topostress",
		Short: "Randomized edit-session checker for the topology engine",
		Long: `topostress mutates a multigraph with a seeded mix of node and edge
edits, checks every answer against a shadow model and runs the engine's
consistency check along the way.

Settings resolve as flags, then TOPOSTRESS_* environment, then the
optional YAML config file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(v, cfgFile); err != nil {
				return err
			}
			cfg, err := resolve(v)
			if err != nil {
				return err
			}

			log, err := newLogger(v.GetBool("verbose"))
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if d := v.GetDuration("timeout"); d > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, d)
				defer cancel()
			}

			report, runErr := stress.Run(ctx, cfg, log)
			printReport(cmd.OutOrStdout(), cfg, report)
			if runErr != nil {
				log.Error("stress session failed", zap.Error(runErr))
			}

			return runErr
		},
	}

	def := stress.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.Int64("seed", def.Seed, "RNG seed")
	flags.Int("steps", def.Steps, "number of edit steps")
	flags.Int("check-every", def.CheckEvery, "run the full consistency check every n steps")
	flags.Int("initial-nodes", def.InitialNodes, "nodes in the initial random fixture")
	flags.Float64("initial-density", def.InitialDensity, "edge probability of the initial fixture")
	flags.Int("max-nodes", def.MaxNodes, "node cap; 0 disables")
	flags.Duration("timeout", 0, "stop after this long; 0 disables")
	flags.BoolP("verbose", "v", false, "development logging at debug level")

	setDefaults(v, def)
	bindFlags(v, flags)

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func setDefaults(v *viper.Viper, def stress.Config) {
	v.SetDefault("mix.create_node", def.Mix.CreateNode)
	v.SetDefault("mix.remove_node", def.Mix.RemoveNode)
	v.SetDefault("mix.create_edge", def.Mix.CreateEdge)
	v.SetDefault("mix.remove_edge", def.Mix.RemoveEdge)
	v.SetDefault("mix.probe", def.Mix.Probe)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})
}

func loadConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}

	return nil
}

func resolve(v *viper.Viper) (stress.Config, error) {
	var cfg stress.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

func printReport(w io.Writer, cfg stress.Config, r stress.Report) {
	fmt.Fprintf(w, "seed:        %d\n", cfg.Seed)
	fmt.Fprintf(w, "steps:       %d/%d\n", r.Steps, cfg.Steps)
	for _, op := range stress.Ops() {
		fmt.Fprintf(w, "  %-11s %d\n", op, r.Ops[op])
	}
	fmt.Fprintf(w, "checks:      %d\n", r.Checks)
	fmt.Fprintf(w, "rejected:    %d\n", r.Rejected)
	fmt.Fprintf(w, "self-edges:  %d\n", r.SelfEdges)
	fmt.Fprintf(w, "parallel:    %d\n", r.Parallel)
	fmt.Fprintf(w, "cascaded:    %d\n", r.Cascaded)
	fmt.Fprintf(w, "peak:        %d nodes, %d edges\n", r.PeakNodes, r.PeakEdges)
	fmt.Fprintf(w, "final:       %d nodes, %d edges (%d directed, %d undirected, %d self)\n",
		r.FinalStats.NodeCount, r.FinalStats.EdgeCount,
		r.FinalStats.DirectedEdgeCount, r.FinalStats.UndirectedEdgeCount, r.FinalStats.SelfEdgeCount)
	fmt.Fprintf(w, "capacity:    %d nodes, %d edges\n", r.FinalStats.NodeCapacity, r.FinalStats.EdgeCapacity)
}
