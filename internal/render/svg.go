// Package render draws computed designs as SVG and PDF documents.
package render

import (
	pattern "Canopy/internal/calc/pattern"
	topview "Canopy/internal/calc/topview"
	units "Canopy/internal/units"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const (
	mainColor      = "#2563eb"
	seamColor      = "#dc2626"
	referenceColor = "#059669"

	// svgo works in integer user units; top view coordinates are scaled by
	// this factor so the 100-unit schematic keeps one decimal.
	topViewScale = 10
	// user units per display length unit on the pattern plot.
	patternScale = 100
	patternPad   = 60
)

// TopViewSVG writes the gore schematic seen from above.
func TopViewSVG(w io.Writer, s topview.Schematic) {
	extent := int(math.Round((s.OuterRadius + 10) * topViewScale))
	canvas := svg.New(w)
	canvas.Startview(2*extent, 2*extent, -extent, -extent, 2*extent, 2*extent)

	axis := scaled(s.OuterRadius, topViewScale)
	canvas.Line(-axis, 0, axis, 0, "stroke:#ddd;stroke-width:5")
	canvas.Line(0, -axis, 0, axis, "stroke:#ddd;stroke-width:5")
	canvas.Circle(0, 0, scaled(s.VentRadius, topViewScale), "fill:white;stroke:black;stroke-width:20")

	for i, seam := range s.Seams {
		canvas.Line(
			scaled(seam.From.X, topViewScale), scaled(seam.From.Y, topViewScale),
			scaled(seam.To.X, topViewScale), scaled(seam.To.Y, topViewScale),
			"stroke:black;stroke-width:10")
		label := s.Labels[i]
		canvas.Text(scaled(label.At.X, topViewScale), scaled(label.At.Y, topViewScale), label.Text,
			"font-size:80;text-anchor:middle")
	}
	canvas.Circle(0, 0, scaled(s.OuterRadius, topViewScale), "fill:none;stroke:black;stroke-width:20")
	canvas.End()
}

// PatternSVG plots the gore outline, its seam offset and the reference point.
// points are in base units and converted to sys for display.
func PatternSVG(w io.Writer, points []pattern.Point, sys units.System) {
	display := sys.Points(points)
	lo, hi := pattern.Bounds(display)
	minX := scaled(lo.X, patternScale) - patternPad
	minY := -scaled(hi.Y, patternScale) - patternPad
	width := scaled(hi.X-lo.X, patternScale) + 2*patternPad
	height := scaled(hi.Y-lo.Y, patternScale) + 2*patternPad

	canvas := svg.New(w)
	canvas.Startview(width, height, minX, minY, width, height)
	canvas.Title(fmt.Sprintf("Gore pattern (%s)", sys.LengthUnit()))

	curve := func(kind pattern.Kind, color string) {
		pts := pattern.Filter(display, kind)
		xs := make([]int, len(pts))
		ys := make([]int, len(pts))
		for i, p := range pts {
			// SVG y grows downwards.
			xs[i] = scaled(p.X, patternScale)
			ys[i] = -scaled(p.Y, patternScale)
		}
		canvas.Polyline(xs, ys, "fill:none;stroke-width:4;stroke:"+color)
	}
	curve(pattern.KindMain, mainColor)
	curve(pattern.KindSeam, seamColor)

	for _, ref := range pattern.Filter(points, pattern.KindReference) {
		x, y := scaled(sys.Length(ref.X), patternScale), -scaled(sys.Length(ref.Y), patternScale)
		canvas.Circle(x, y, 10, "fill:"+referenceColor)
		canvas.Text(x+15, y-15, "Top Width: "+sys.FormatLength(ref.Value),
			"font-size:30;fill:"+referenceColor)
	}
	canvas.End()
}

func scaled(v float64, scale float64) int {
	return int(math.Round(v * scale))
}
