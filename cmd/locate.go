package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TRX-1000/Weatherly-v2/internal/location"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Detect your city from your IP address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		city, err := location.NewDetector().Detect(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), city)
		return nil
	},
}
