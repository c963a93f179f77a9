package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Utkarsh-0805/weather-prediction-project/internal/adapter/weatherstack"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/dataset"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/domain"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/observability"
	"github.com/Utkarsh-0805/weather-prediction-project/internal/pipeline"
	"github.com/spf13/cobra"
)

type liveParameters struct {
	Enabled bool
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func predictCommand() *cobra.Command {
	var dataFile string
	var timezone string
	var reading domain.LiveReading
	var live liveParameters

	cmd := &cobra.Command{
		Use:   "predict --data file [--live --city name | --temp t --humidity h ...]",
		Short: "Trains on a historical dataset and forecasts from one reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", timezone, err)
			}

			if live.Enabled {
				if reading.City == "" {
					return fmt.Errorf("%w: --city is required with --live", domain.ErrInputValidation)
				}
				if live.APIKey == "" {
					return fmt.Errorf("%w: --api-key or WEATHERSTACK_API_KEY is required with --live", domain.ErrInputValidation)
				}
				logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
				client := weatherstack.NewClient(live.APIKey, live.BaseURL, live.Timeout, observability.NewUnregisteredMetrics(), logger)
				reading, err = client.CurrentReading(cmd.Context(), reading.City)
				if err != nil {
					return err
				}
			}

			table, err := dataset.LoadFile(dataFile)
			if err != nil {
				return err
			}

			result, err := pipeline.RunForecast(reading, table, pipeline.Options{Location: loc})
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "historical dataset CSV")
	cmd.Flags().StringVar(&timezone, "timezone", "Asia/Kolkata", "timezone of the hourly forecast labels")

	cmd.Flags().StringVarP(&reading.City, "city", "c", "", "location name")
	cmd.Flags().Float64Var(&reading.Temperature, "temp", 0, "current temperature (C)")
	cmd.Flags().Float64Var(&reading.Humidity, "humidity", 0, "current relative humidity (%)")
	cmd.Flags().Float64Var(&reading.Pressure, "pressure", 0, "current pressure (hPa)")
	cmd.Flags().Float64Var(&reading.WindSpeed, "wind-speed", 0, "current wind speed (km/h)")
	cmd.Flags().Float64Var(&reading.WindDegree, "wind-degree", 0, "current wind bearing (degrees)")

	cmd.Flags().BoolVar(&live.Enabled, "live", false, "fetch the reading for --city from Weatherstack")
	cmd.Flags().StringVar(&live.APIKey, "api-key", os.Getenv("WEATHERSTACK_API_KEY"), "Weatherstack access key")
	cmd.Flags().StringVar(&live.BaseURL, "base-url", "http://api.weatherstack.com", "Weatherstack base URL")
	cmd.Flags().DurationVar(&live.Timeout, "timeout", 5*time.Second, "Weatherstack request timeout")

	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func writeResult(w io.Writer, result domain.PredictionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
