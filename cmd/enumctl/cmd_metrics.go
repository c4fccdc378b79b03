package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/enumerated/catalog"
)

func (cli *CLI) addMetricsCommand() {
	metricsCmd := &cobra.Command{
		Use:   "metrics <file>...",
		Short: "Print catalog gauges in Prometheus text format",
		Long: `Register every file's enum in a catalog and print the catalog gauges in the
Prometheus text exposition format, as a scrape would see them.

Examples:
  enumctl metrics defs/*.yaml > enumerated.prom`,

		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.executeMetricsCommand(cmd, args)
		},
	}

	cli.rootCmd.AddCommand(metricsCmd)
}

func (cli *CLI) executeMetricsCommand(cmd *cobra.Command, paths []string) error {
	c := catalog.New(catalog.WithLogger(cli.logger))
	if err := c.LoadFiles(cli.commandContext(cmd), cli.newLoader(), paths...); err != nil {
		return NewDefinitionError("collect metrics", err)
	}

	registry := prometheus.NewRegistry()
	if err := registry.Register(catalog.NewCollector(c)); err != nil {
		return WrapError("collect metrics", err)
	}

	families, err := registry.Gather()
	if err != nil {
		return WrapError("collect metrics", err)
	}

	out := cli.out(cmd)
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(out, family); err != nil {
			return err
		}
	}
	return nil
}
