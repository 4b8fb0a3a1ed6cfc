package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagUnits  string
)

var rootCmd = &cobra.Command{
	Use:   "weatherly [city]",
	Short: "Weather dashboard for your terminal",
	Long: "weatherly shows current conditions, a 5-day forecast and weather news for a city.\n" +
		"With no city it uses default_city from the config, or detects one from your IP.",
	Args: cobra.MaximumNArgs(1),
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagUnits, "units", "", "metric or imperial (overrides config)")

	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weatherly %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
