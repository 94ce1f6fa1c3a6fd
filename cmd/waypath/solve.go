package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/internal/config"
	"github.com/katalvlaran/waypath/internal/export"
	"github.com/katalvlaran/waypath/internal/progress"
	"github.com/katalvlaran/waypath/internal/waypoint"
	"github.com/katalvlaran/waypath/tsp"
)

const connectTimeout = 5 * time.Second

type solveFlags struct {
	out   string
	seed  int64
	coeff float64
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Order the eligible markers into a tour",
		Long: `Solve filters the configured markers, anneals a closed tour over them and
prints the visiting order as a comma-separated route. With --out the tour is
also written as GeoJSON. When mqtt.broker (or MQTT_BROKER) and mqtt.every
are set, intermediate orders are published while the search runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			opts := cfg.Options()
			if cmd.Flags().Changed("seed") {
				opts.Seed = f.seed
			}
			if cmd.Flags().Changed("coeff") {
				opts.TempCoeff = f.coeff
			}

			return a.solve(cmd, cfg, opts, f.out)
		},
	}

	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write the tour as GeoJSON to this file")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (overrides anneal.seed)")
	cmd.Flags().Float64Var(&f.coeff, "coeff", 0, "cooling coefficient in (0,1), 0 for adaptive (overrides anneal.temp_coeff)")

	return cmd
}

func (a *app) solve(cmd *cobra.Command, cfg *config.Config, opts tsp.Options, out string) error {
	markers := cfg.Eligible()
	points := waypoint.Points(markers)

	pub, closeFn := a.progressPublisher(cfg)
	defer closeFn()
	if pub != nil {
		opts.OnIteration = pub.Callback(cfg.MQTT.Every)
	}

	start := time.Now()
	res, err := tsp.Solve(points, cfg.Model(), opts)
	if err != nil {
		return fmt.Errorf("solving tour: %w", err)
	}
	a.logger.Info("tour solved",
		slog.Int("stops", len(res.Order)),
		slog.Int("iterations", res.Iterations),
		slog.Float64("length", res.Length),
		slog.Duration("elapsed", time.Since(start)))

	if pub != nil {
		if err := pub.PublishResult(res); err != nil {
			a.logger.Warn("final progress publish failed", slog.Any("error", err))
		}
		sent, dropped := pub.Stats()
		a.logger.Debug("progress stats", slog.Int64("published", sent), slog.Int64("dropped", dropped))
	}

	ordered := waypoint.Ordered(markers, res.Order)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), waypoint.FormatRoute(waypoint.Names(ordered))); err != nil {
		return fmt.Errorf("writing route: %w", err)
	}

	if out == "" {
		return nil
	}
	fc, err := export.TourFeatureCollection(points, waypoint.Names(markers), res)
	if err != nil {
		return fmt.Errorf("building GeoJSON: %w", err)
	}

	return writeGeoJSON(out, fc)
}

// progressPublisher connects to the configured broker. It returns a nil
// publisher when publishing is off or the broker is unreachable; the solve
// still runs in that case.
func (a *app) progressPublisher(cfg *config.Config) (*progress.Publisher, func()) {
	noop := func() {}
	if cfg.MQTT.Broker == "" || cfg.MQTT.Every == 0 {
		return nil, noop
	}

	client, err := progress.Connect(cfg.MQTT.Broker, cfg.MQTT.ClientID, connectTimeout)
	if err != nil {
		a.logger.Warn("progress publishing disabled", slog.String("broker", cfg.MQTT.Broker), slog.Any("error", err))
		return nil, noop
	}
	a.logger.Info("publishing progress",
		slog.String("broker", cfg.MQTT.Broker),
		slog.String("topic", cfg.MQTT.Topic),
		slog.Int("every", cfg.MQTT.Every))

	return progress.NewPublisher(client, cfg.MQTT.Topic, a.logger), func() { client.Disconnect(250) }
}

// writeGeoJSON writes fc to a new file at path.
func writeGeoJSON(path string, fc *geojson.FeatureCollection) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.Write(fh, fc); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
