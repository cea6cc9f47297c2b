package main

import (
	render "Canopy/internal/render"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var topviewSVG string

var topviewCmd = &cobra.Command{
	Use:   "topview",
	Short: "Gore schematic seen from above",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := compute()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printWarnings(out, s)
		fmt.Fprintf(out, "Vent radius: %.1f%% of canopy radius\n", s.TopView.VentRadius/s.TopView.OuterRadius*100)
		for i, seam := range s.TopView.Seams {
			fmt.Fprintf(out, "seam %2d: %v -> %v\n", i+1, seam.From.RoundTo(1), seam.To.RoundTo(1))
		}
		if topviewSVG != "" {
			return writeOutput(topviewSVG, func(w io.Writer) error {
				render.TopViewSVG(w, s.TopView)
				return nil
			})
		}
		return nil
	},
}

func init() {
	topviewCmd.Flags().StringVar(&topviewSVG, "svg", "", "write the schematic as SVG to this file")
	rootCmd.AddCommand(topviewCmd)
}
