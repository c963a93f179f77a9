// Command forecastctl runs the forecasting pipeline from the command line
// and inspects historical datasets.
//
// Usage:
//
//	forecastctl genmock --rows 500 --out data/weather.csv
//	forecastctl validate --data data/weather.csv
//	forecastctl predict --data data/weather.csv --temp 31 --humidity 48 --pressure 1009 --wind-speed 13 --wind-degree 200
//	forecastctl predict --data data/weather.csv --live --city Pune
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "forecastctl",
		Short:        "Rain and short-horizon weather forecasting tools",
		SilenceUsage: true,
	}
	cmd.AddCommand(predictCommand(), validateCommand(), genmockCommand())
	return cmd
}
