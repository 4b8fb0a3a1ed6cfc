package cmd

import (
	"github.com/spf13/cobra"
)

var flagLimit int

var newsCmd = &cobra.Command{
	Use:   "news [place]",
	Short: "Weather news for a place",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		place, err := a.resolveCity(cmd.Context(), args)
		if err != nil {
			return err
		}

		limit := a.cfg.NewsLimit
		if cmd.Flags().Changed("limit") {
			limit = flagLimit
		}

		items, err := a.newsPipeline().FetchWeatherNews(cmd.Context(), place, limit)
		if err != nil {
			return err
		}
		renderNews(cmd.OutOrStdout(), place, items)
		return nil
	},
}

func init() {
	newsCmd.Flags().IntVar(&flagLimit, "limit", 10, "articles to show (5, 10 or 15)")
}
