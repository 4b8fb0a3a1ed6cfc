package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TRX-1000/Weatherly-v2/internal/weather"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "Current conditions for your saved cities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if len(a.cfg.Cities) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved cities. Add some under `cities:` in your config.")
			return nil
		}
		wc, err := a.weatherClient()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, city := range a.cfg.Cities {
			cur, err := wc.Current(cmd.Context(), city)
			if err != nil {
				fmt.Fprintf(out, "  %-16s unavailable (%v)\n", city, err)
				continue
			}
			fmt.Fprintf(out, "  %-16s %s %s  %s\n",
				cur.City, weather.Glyph(cur.ConditionID), a.units.Temp(cur.Temp), cur.Description)
		}
		return nil
	},
}
