package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TRX-1000/Weatherly-v2/internal/weather"
)

// runDashboard renders the full view for one city: current conditions, the
// 5-day forecast and weather news.
func runDashboard(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()

	cur, err := wc.Current(cmd.Context(), city)
	if err != nil {
		return fmt.Errorf("current weather: %w", err)
	}
	renderCurrent(out, cur, a.units)
	fmt.Fprintln(out)

	// Forecast and news are secondary panels; a failure in one should not
	// blank the dashboard.
	slots, err := wc.Forecast(cmd.Context(), city)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "  [warn] forecast unavailable: %v\n", err)
	} else {
		renderForecast(out, city, weather.DailySummary(slots, 5), a.units)
	}
	fmt.Fprintln(out)

	items, err := a.newsPipeline().FetchWeatherNews(cmd.Context(), city, a.cfg.NewsLimit)
	if err != nil {
		return err
	}
	renderNews(out, city, items)
	return nil
}
