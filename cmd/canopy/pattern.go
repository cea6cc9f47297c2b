package main

import (
	pattern "Canopy/internal/calc/pattern"
	render "Canopy/internal/render"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	patternSVG   string
	patternXLSX  string
	patternTable bool
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Flattened gore panel with seam allowance",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, sys, err := compute()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printWarnings(out, s)

		display := sys.Points(s.Gore.Points)
		lu := sys.LengthUnit()
		fmt.Fprintf(out, "Bottom width: %s\n", sys.FormatLength(s.Gore.CellWidthBottomFt))
		fmt.Fprintf(out, "Height:       %s\n", sys.FormatLength(s.Gore.CellHeightFt))
		for _, ref := range pattern.Filter(s.Gore.Points, pattern.KindReference) {
			fmt.Fprintf(out, "Top Width: %s\n", sys.FormatLength(ref.Value))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, plotPattern(display, lu))

		if patternTable {
			printTable(out, display, lu)
		}
		if patternSVG != "" {
			if err := writeOutput(patternSVG, func(w io.Writer) error {
				render.PatternSVG(w, s.Gore.Points, sys)
				return nil
			}); err != nil {
				return err
			}
		}
		if patternXLSX != "" {
			if err := writeOutput(patternXLSX, func(w io.Writer) error {
				return render.PatternXLSX(w, s.Gore.Points, sys)
			}); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	patternCmd.Flags().StringVar(&patternSVG, "svg", "", "write the pattern plot as SVG to this file")
	patternCmd.Flags().StringVar(&patternXLSX, "xlsx", "", "write the pattern points as a spreadsheet to this file")
	patternCmd.Flags().BoolVar(&patternTable, "table", false, "print every sampled point")
	rootCmd.AddCommand(patternCmd)
}

func plotPattern(points []pattern.Point, lengthUnit string) string {
	ys := func(kind pattern.Kind) []float64 {
		pts := pattern.Filter(points, kind)
		out := make([]float64, len(pts))
		for i, p := range pts {
			out[i] = p.Y
		}
		return out
	}
	return asciigraph.PlotMany(
		[][]float64{ys(pattern.KindMain), ys(pattern.KindSeam)},
		asciigraph.Height(12),
		asciigraph.Width(pattern.Samples+1),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("gore height (%s) along the panel; outline blue, seam red", lengthUnit)),
	)
}

func printTable(w io.Writer, points []pattern.Point, lengthUnit string) {
	outline := pattern.Filter(points, pattern.KindMain)
	seam := pattern.Filter(points, pattern.KindSeam)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "t\tx (%s)\ty (%s)\tseam x\tseam y\t\n", lengthUnit, lengthUnit)
	for i := range outline {
		fmt.Fprintf(tw, "%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			float64(i)/pattern.Samples, outline[i].X, outline[i].Y, seam[i].X, seam[i].Y)
	}
	tw.Flush()
}
