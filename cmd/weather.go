package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TRX-1000/Weatherly-v2/internal/weather"
)

var currentCmd = &cobra.Command{
	Use:   "current [city]",
	Short: "Current conditions for a city",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		city, err := a.resolveCity(cmd.Context(), args)
		if err != nil {
			return err
		}
		wc, err := a.weatherClient()
		if err != nil {
			return err
		}

		cur, err := wc.Current(cmd.Context(), city)
		if err != nil {
			return fmt.Errorf("current weather: %w", err)
		}
		renderCurrent(cmd.OutOrStdout(), cur, a.units)
		return nil
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast [city]",
	Short: "5-day forecast for a city",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		city, err := a.resolveCity(cmd.Context(), args)
		if err != nil {
			return err
		}
		wc, err := a.weatherClient()
		if err != nil {
			return err
		}

		slots, err := wc.Forecast(cmd.Context(), city)
		if err != nil {
			return fmt.Errorf("forecast: %w", err)
		}
		renderForecast(cmd.OutOrStdout(), city, weather.DailySummary(slots, 5), a.units)
		return nil
	},
}
