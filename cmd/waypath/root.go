// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "waypath",
		Short: "Plan marker tours with simulated annealing",
		Long: `waypath reads markers from a YAML file, keeps the ones that pass the
configured filter, and orders them into a short closed tour. Edges that
cross a blocked segment cost 100 times their length (configurable), so the
tour steers around them.

Examples:
  waypath solve --config waypath.yaml --out tour.geojson
  waypath route import --names "flower_1, flower_2" --save
  waypath route export --toggle coin_3`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "waypath.yaml", "path to the YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(a), newRouteCmd(a))

	return root
}

// loadConfig reads a.configPath and logs what it found.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	a.logger.Debug("config loaded",
		slog.String("path", a.configPath),
		slog.Int("markers", len(cfg.Markers)),
		slog.Int("blocked", len(cfg.Segments())))

	return cfg, nil
}
