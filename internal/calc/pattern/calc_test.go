package pattern

import (
	canopy "Canopy/internal/calc/canopy"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustPanel(t *testing.T, main, vent float64, cells int, seam float64) []Point {
	t.Helper()
	points, err := GenerateGorePanel(main, vent, cells, seam)
	if err != nil {
		t.Fatalf("GenerateGorePanel(%v, %v, %v, %v): %v", main, vent, cells, seam, err)
	}
	return points
}

func TestGorePanelPointCount(t *testing.T) {
	points := mustPanel(t, 20, 1, 8, 0.5)
	if len(points) != 2*(Samples+1)+1 {
		t.Fatalf("got %d points, want %d", len(points), 2*(Samples+1)+1)
	}
	if n := len(Filter(points, KindMain)); n != 51 {
		t.Errorf("got %d main points, want 51", n)
	}
	if n := len(Filter(points, KindSeam)); n != 51 {
		t.Errorf("got %d seam points, want 51", n)
	}
	if n := len(Filter(points, KindReference)); n != 1 {
		t.Errorf("got %d reference points, want 1", n)
	}
}

func TestGorePanelOrdering(t *testing.T) {
	points := mustPanel(t, 20, 1, 8, 0.5)
	for i := 0; i <= Samples; i++ {
		if points[2*i].Kind != KindMain || points[2*i+1].Kind != KindSeam {
			t.Fatalf("sample %d: got kinds %q, %q", i, points[2*i].Kind, points[2*i+1].Kind)
		}
	}
	if last := points[len(points)-1]; last.Kind != KindReference {
		t.Errorf("last point kind %q, want reference", last.Kind)
	}
}

func TestGorePanelOutlineShape(t *testing.T) {
	points := mustPanel(t, 20, 1, 8, 0.5)
	main := Filter(points, KindMain)

	if main[0].Y != 0 || main[Samples].Y != 0 {
		t.Errorf("endpoints y = %v, %v, want 0", main[0].Y, main[Samples].Y)
	}
	if main[0].X != 0 {
		t.Errorf("first x = %v, want 0", main[0].X)
	}
	if want := 7.85; main[Samples].X != want {
		t.Errorf("last x = %v, want %v", main[Samples].X, want)
	}

	// cellHeight = (20 - 1) / 2
	peak := main[Samples/2]
	if peak.Y != 9.5 {
		t.Errorf("midpoint y = %v, want 9.5", peak.Y)
	}
	for i, p := range main {
		if p.Y > peak.Y {
			t.Errorf("point %d y = %v exceeds midpoint %v", i, p.Y, peak.Y)
		}
	}
}

func TestGorePanelSeamDistance(t *testing.T) {
	for _, seam := range []float64{0.25, 0.5, 1} {
		points := mustPanel(t, 20, 1, 8, seam)
		main := Filter(points, KindMain)
		seams := Filter(points, KindSeam)
		for i := range main {
			d := math.Hypot(seams[i].X-main[i].X, seams[i].Y-main[i].Y)
			// Both points are rounded to 2 decimals.
			if math.Abs(d-seam) > 0.015 {
				t.Errorf("seam %v, sample %d: distance %v", seam, i, d)
			}
		}
	}
}

func TestGorePanelZeroSeamCollapses(t *testing.T) {
	points := mustPanel(t, 20, 1, 8, 0)
	main := Filter(points, KindMain)
	seams := Filter(points, KindSeam)
	for i := range seams {
		seams[i].Kind = KindMain
	}
	diff(t, main, seams)
}

func TestGorePanelReference(t *testing.T) {
	points := mustPanel(t, 20, 1, 8, 0.5)
	want := Point{X: 0, Y: 0, Kind: KindReference, Label: "Top Width: 0.39", Value: 0.39}
	diff(t, want, points[len(points)-1])
}

func TestGorePanelRounded(t *testing.T) {
	points := mustPanel(t, 23.5, 1.3, 7, 0.75)
	for i, p := range points {
		if math.Abs(p.X*100-math.Round(p.X*100)) > 1e-6 || math.Abs(p.Y*100-math.Round(p.Y*100)) > 1e-6 {
			t.Errorf("point %d (%v, %v) not rounded to 2 decimals", i, p.X, p.Y)
		}
	}
}

func TestGorePanelDeterministic(t *testing.T) {
	diff(t, mustPanel(t, 18, 2, 9, 0.5), mustPanel(t, 18, 2, 9, 0.5))
}

func TestGorePanelInvalidCells(t *testing.T) {
	for _, cells := range []int{0, -3} {
		points, err := GenerateGorePanel(20, 1, cells, 0.5)
		if !errors.Is(err, canopy.ErrInvalidParameter) {
			t.Errorf("cells %d: got (%d points, %v), want ErrInvalidParameter", cells, len(points), err)
		}
	}
}

func TestGorePanelInvalidInputs(t *testing.T) {
	tests := []struct {
		name       string
		main, vent float64
		seam       float64
	}{
		{"negative main", -20, 1, 0.5},
		{"negative vent", 20, -1, 0.5},
		{"negative seam", 20, 1, -0.5},
		{"NaN seam", 20, 1, math.NaN()},
		{"infinite main", math.Inf(1), 1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateGorePanel(tt.main, tt.vent, 8, tt.seam)
			if !errors.Is(err, canopy.ErrInvalidParameter) {
				t.Errorf("got %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestGorePanelInvertedBulge(t *testing.T) {
	points := mustPanel(t, 1, 2, 8, 0.1)
	main := Filter(points, KindMain)
	if main[Samples/2].Y != -0.5 {
		t.Errorf("midpoint y = %v, want -0.5", main[Samples/2].Y)
	}
}

func TestGoreOffsetIsNormal(t *testing.T) {
	g, err := NewGore(20, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i <= Samples; i++ {
		tt := float64(i) / Samples
		p := g.Eval(tt)
		q := g.Offset(tt, 0.5)
		d := g.Deriv(tt)
		dot := (q.X-p.X)*d.X + (q.Y-p.Y)*d.Y
		if math.Abs(dot) > 1e-9 {
			t.Errorf("t=%v: offset not perpendicular, dot %v", tt, dot)
		}
		if math.Abs(p.Distance(q)-0.5) > 1e-12 {
			t.Errorf("t=%v: offset distance %v", tt, p.Distance(q))
		}
	}
	// The offset is rotated a quarter turn counter-clockwise from the tangent,
	// so at the vent end it points up and to the left.
	if q := g.Offset(0, 0.5); q.X >= 0 || q.Y <= 0 {
		t.Errorf("offset at t=0 is %v, want up and left", q)
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{MainDiameterFt: 20, VentDiameterFt: 1, Cells: 8, SeamAllowanceFt: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.CellWidthBottomFt-20*math.Pi/8) > 1e-12 {
		t.Errorf("bottom width %v", res.CellWidthBottomFt)
	}
	if math.Abs(res.CellWidthTopFt-math.Pi/8) > 1e-12 {
		t.Errorf("top width %v", res.CellWidthTopFt)
	}
	if res.CellHeightFt != 9.5 {
		t.Errorf("height %v, want 9.5", res.CellHeightFt)
	}
	if len(res.Points) != 103 {
		t.Errorf("got %d points, want 103", len(res.Points))
	}
}

func TestBounds(t *testing.T) {
	points := []Point{
		{X: 1, Y: 2, Kind: KindMain},
		{X: -1, Y: 5, Kind: KindSeam},
		{X: 100, Y: 100, Kind: KindReference},
		{X: 3, Y: -2, Kind: KindMain},
	}
	lo, hi := Bounds(points)
	if lo.X != -1 || lo.Y != -2 || hi.X != 3 || hi.Y != 5 {
		t.Errorf("got bounds %v %v", lo, hi)
	}
}

func TestGorePanelNoNegativeZero(t *testing.T) {
	points, err := GenerateGorePanel(1, 2, 8, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range points {
		if (p.X == 0 && math.Signbit(p.X)) || (p.Y == 0 && math.Signbit(p.Y)) {
			t.Errorf("point %d has a negative zero: %+v", i, p)
		}
	}
	data, err := json.Marshal(points)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), ":-0,") || strings.Contains(string(data), ":-0}") {
		t.Errorf("marshalled pattern contains -0: %s", data)
	}
}
