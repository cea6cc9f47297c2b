package pattern

import (
	canopy "Canopy/internal/calc/canopy"
	geom "Canopy/internal/geom"
	"fmt"
	"math"
)

// Samples is the number of intervals t is divided into; the curves carry
// Samples+1 points each.
const Samples = 50

// Precision is the number of decimal places output coordinates are rounded to.
const Precision = 2

type Kind string

const (
	KindMain      Kind = "main"
	KindSeam      Kind = "seam"
	KindReference Kind = "reference"
)

type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Kind  Kind    `json:"type"`
	Label string  `json:"label,omitempty"`
	// Value is the measurement behind Label, in feet.
	Value float64 `json:"value,omitempty"`
}

type Input struct {
	MainDiameterFt  float64 `json:"main_diameter_ft"`
	VentDiameterFt  float64 `json:"vent_diameter_ft"`
	Cells           int     `json:"cells"`
	SeamAllowanceFt float64 `json:"seam_allowance_ft"`
}

type Result struct {
	CellWidthTopFt    float64 `json:"cell_width_top_ft"`
	CellWidthBottomFt float64 `json:"cell_width_bottom_ft"`
	CellHeightFt      float64 `json:"cell_height_ft"`
	Points            []Point `json:"points"`
	Notes             string  `json:"notes"`
}

// Gore holds the dimensions of one flattened gore panel.
type Gore struct {
	WidthTop    float64
	WidthBottom float64
	Height      float64
}

func NewGore(mainDiameterFt, ventDiameterFt float64, cells int) (Gore, error) {
	if cells < 1 {
		return Gore{}, fmt.Errorf("%w: cell count must be at least 1, got %d", canopy.ErrInvalidParameter, cells)
	}
	if !geom.Finite(mainDiameterFt, ventDiameterFt) {
		return Gore{}, fmt.Errorf("%w: non-finite diameter", canopy.ErrInvalidParameter)
	}
	if mainDiameterFt < 0 || ventDiameterFt < 0 {
		return Gore{}, fmt.Errorf("%w: negative diameter", canopy.ErrInvalidParameter)
	}
	n := float64(cells)
	return Gore{
		WidthTop:    math.Pi * ventDiameterFt / n,
		WidthBottom: math.Pi * mainDiameterFt / n,
		Height:      (mainDiameterFt - ventDiameterFt) / 2,
	}, nil
}

// Eval returns the unrounded outline point at t in [0, 1]. The panel runs
// linearly along x and bulges sinusoidally in y, pinching to zero at both ends.
func (g Gore) Eval(t float64) geom.Point {
	return geom.Pt(t*g.WidthBottom, g.Height*math.Sin(math.Pi*t))
}

// Deriv returns the derivative of the outline at t.
func (g Gore) Deriv(t float64) geom.Vec2 {
	return geom.Vec(g.WidthBottom, g.Height*math.Pi*math.Cos(math.Pi*t))
}

// Offset returns the point at distance d from the outline along its normal at t.
func (g Gore) Offset(t, d float64) geom.Point {
	normal := g.Deriv(t).Angle() + math.Pi/2
	return g.Eval(t).Translate(geom.VecFromAngle(normal).Mul(d))
}

// GenerateGorePanel returns the flattened gore cutting pattern: Samples+1
// outline points interleaved with their seam-offset points, followed by one
// reference point carrying the top width. Coordinates are in feet, rounded
// to Precision decimals.
//
// A vent at least as large as the main diameter is not rejected here and
// yields an inverted bulge.
func GenerateGorePanel(mainDiameterFt, ventDiameterFt float64, cells int, seamAllowanceFt float64) ([]Point, error) {
	g, err := NewGore(mainDiameterFt, ventDiameterFt, cells)
	if err != nil {
		return nil, err
	}
	if !geom.Finite(seamAllowanceFt) || seamAllowanceFt < 0 {
		return nil, fmt.Errorf("%w: seam allowance must be a non-negative number, got %g", canopy.ErrInvalidParameter, seamAllowanceFt)
	}

	points := make([]Point, 0, 2*(Samples+1)+1)
	for i := 0; i <= Samples; i++ {
		t := float64(i) / Samples
		main := g.Eval(t).RoundTo(Precision)
		seam := g.Offset(t, seamAllowanceFt).RoundTo(Precision)
		points = append(points,
			Point{X: main.X, Y: main.Y, Kind: KindMain},
			Point{X: seam.X, Y: seam.Y, Kind: KindSeam},
		)
	}

	top := geom.Round(g.WidthTop, Precision)
	points = append(points, Point{
		Kind:  KindReference,
		Label: TopWidthLabel(top),
		Value: top,
	})
	return points, nil
}

// TopWidthLabel formats the reference label for a top width.
func TopWidthLabel(width float64) string {
	return fmt.Sprintf("Top Width: %.2f", width)
}

func Calculate(in Input) (Result, error) {
	g, err := NewGore(in.MainDiameterFt, in.VentDiameterFt, in.Cells)
	if err != nil {
		return Result{}, err
	}
	points, err := GenerateGorePanel(in.MainDiameterFt, in.VentDiameterFt, in.Cells, in.SeamAllowanceFt)
	if err != nil {
		return Result{}, err
	}
	notes := "Flattened gore with sinusoidal bulge and normal seam offset."
	if g.Height <= 0 {
		notes = "Vent is not smaller than main diameter; bulge is inverted."
	}
	return Result{
		CellWidthTopFt:    g.WidthTop,
		CellWidthBottomFt: g.WidthBottom,
		CellHeightFt:      g.Height,
		Points:            points,
		Notes:             notes,
	}, nil
}

// Filter returns the points of the given kind, in order.
func Filter(points []Point, kind Kind) []Point {
	var out []Point
	for _, p := range points {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the min and max corners over the outline and seam points.
func Bounds(points []Point) (lo, hi geom.Point) {
	first := true
	for _, p := range points {
		if p.Kind == KindReference {
			continue
		}
		if first {
			lo, hi = geom.Pt(p.X, p.Y), geom.Pt(p.X, p.Y)
			first = false
			continue
		}
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
