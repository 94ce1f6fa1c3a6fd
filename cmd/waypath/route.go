package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/waypath/internal/config"
	"github.com/katalvlaran/waypath/internal/export"
	"github.com/katalvlaran/waypath/internal/waypoint"
)

func newRouteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Import, edit and export custom routes",
		Long: `A custom route is a comma-separated list of marker names visited in the
given order. It is stored under "route" in the config file.

Subcommands:
  import  - parse a pasted route, report unknown names, optionally save it
  export  - print the saved route, optionally toggling markers first`,
	}
	cmd.AddCommand(newRouteImportCmd(a), newRouteExportCmd(a))

	return cmd
}

func newRouteImportCmd(a *app) *cobra.Command {
	var (
		names string
		out   string
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Parse a comma-separated route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			route := waypoint.ParseRoute(names)
			if len(route) == 0 {
				return errors.New("route is empty")
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			found, missing := cfg.Resolve(route)
			for _, n := range missing {
				a.logger.Warn("item not found on map", slog.String("name", n))
			}
			a.logger.Info("route imported", slog.Int("stops", len(found)), slog.Int("missing", len(missing)))

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), waypoint.FormatRoute(waypoint.Names(found))); err != nil {
				return fmt.Errorf("writing route: %w", err)
			}
			if save {
				if err := a.saveRoute(cfg, waypoint.Names(found)); err != nil {
					return err
				}
			}
			if out != "" {
				fc := geojson.NewFeatureCollection().Append(export.CustomRouteFeature(waypoint.Points(found)))
				return writeGeoJSON(out, fc)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&names, "names", "n", "", "comma-separated marker names")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the route as GeoJSON to this file")
	cmd.Flags().BoolVar(&save, "save", false, "store the resolved route in the config file")
	_ = cmd.MarkFlagRequired("names")

	return cmd
}

func newRouteExportCmd(a *app) *cobra.Command {
	var (
		toggle []string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the saved custom route",
		Long: `Export prints the saved route in comma-separated form. Each --toggle name
is appended to the route, or removed if it is already on it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			route := cfg.Route
			for _, n := range toggle {
				route = waypoint.Toggle(route, n)
			}
			if _, missing := cfg.Resolve(route); len(missing) > 0 {
				a.logger.Warn("route names not on map", slog.Any("names", missing))
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), waypoint.FormatRoute(route)); err != nil {
				return fmt.Errorf("writing route: %w", err)
			}
			if save && len(toggle) > 0 {
				return a.saveRoute(cfg, route)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&toggle, "toggle", "t", nil, "marker names to add or remove")
	cmd.Flags().BoolVar(&save, "save", false, "store the edited route in the config file")

	return cmd
}

func (a *app) saveRoute(cfg *config.Config, route []string) error {
	cfg.Route = route
	if err := config.Save(a.configPath, cfg); err != nil {
		return fmt.Errorf("saving route: %w", err)
	}
	a.logger.Debug("route saved", slog.String("path", a.configPath), slog.Int("stops", len(route)))

	return nil
}
