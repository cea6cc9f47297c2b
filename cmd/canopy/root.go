package main

import (
	canopy "Canopy/internal/calc/canopy"
	design "Canopy/internal/calc/design"
	units "Canopy/internal/units"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	params     = canopy.Default()
	unitSystem string
)

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Round parachute canopy calculator",
	Long: `Compute the descent speed, gore cutting pattern and top view of a
round, vented, multi-cell parachute canopy.

All parameters are given in feet and pounds. --units=metric only changes
how results are displayed.

Subcommands:
  speed    - air density and descent (terminal) velocity
  pattern  - flattened gore panel with seam allowance
  topview  - gore schematic seen from above
  template - printable PDF cutting template`,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&params.WeightLb, "weight", params.WeightLb, "payload weight (lb)")
	flags.Float64Var(&params.MainDiameterFt, "diameter", params.MainDiameterFt, "canopy diameter (ft)")
	flags.Float64Var(&params.VentDiameterFt, "vent", params.VentDiameterFt, "vent diameter (ft)")
	flags.IntVar(&params.Cells, "cells", params.Cells, "number of gores")
	flags.Float64Var(&params.AltitudeFt, "altitude", params.AltitudeFt, "altitude (ft)")
	flags.Float64Var(&params.SeamAllowanceFt, "seam", params.SeamAllowanceFt, "seam allowance (ft)")
	flags.StringVar(&unitSystem, "units", string(units.Imperial), "display units: imperial or metric")
}

// compute runs the design for the current flags.
func compute() (design.Summary, units.System, error) {
	sys, err := units.Parse(unitSystem)
	if err != nil {
		return design.Summary{}, "", err
	}
	s, err := design.Calculate(params)
	if err != nil {
		return design.Summary{}, "", err
	}
	return s, sys, nil
}

func printWarnings(w io.Writer, s design.Summary) {
	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

// writeOutput writes with fn to path, or to stdout when path is "-".
func writeOutput(path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
