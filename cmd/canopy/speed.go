package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Air density and steady-state descent speed",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, sys, err := compute()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printWarnings(out, s)
		fmt.Fprintf(out, "Air density:  %.6f slug/ft^3\n", s.AirDensity)
		fmt.Fprintf(out, "Fall speed:   %s\n", s.Speed(sys))
		if s.VelocityError != "" {
			fmt.Fprintf(out, "              (%s)\n", s.VelocityError)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(speedCmd)
}
