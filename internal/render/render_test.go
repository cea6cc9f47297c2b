package render

import (
	canopy "Canopy/internal/calc/canopy"
	design "Canopy/internal/calc/design"
	pattern "Canopy/internal/calc/pattern"
	topview "Canopy/internal/calc/topview"
	units "Canopy/internal/units"
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestTopViewSVG(t *testing.T) {
	s, err := topview.Calculate(topview.Input{MainDiameterFt: 20, VentDiameterFt: 1, Cells: 8})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	TopViewSVG(&buf, s)
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// two axes plus one seam per gore
	if n := strings.Count(out, "<line"); n != 2+8 {
		t.Errorf("got %d lines, want 10", n)
	}
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("got %d circles, want 2", n)
	}
	if !strings.Contains(out, ">8</text>") {
		t.Error("missing gore label 8")
	}
}

func TestPatternSVG(t *testing.T) {
	points, err := pattern.GenerateGorePanel(20, 1, 8, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	PatternSVG(&buf, points, units.Imperial)
	out := buf.String()
	if n := strings.Count(out, "<polyline"); n != 2 {
		t.Errorf("got %d polylines, want 2", n)
	}
	if !strings.Contains(out, "Top Width: 0.39 ft") {
		t.Error("missing reference label")
	}

	buf.Reset()
	PatternSVG(&buf, points, units.Metric)
	if !strings.Contains(buf.String(), "Top Width: 0.12 m") {
		t.Error("missing metric reference label")
	}
}

func TestCuttingTemplatePDF(t *testing.T) {
	s, err := design.Calculate(canopy.Default())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := CuttingTemplatePDF(&buf, s, units.Metric, Meta{Project: "Test"}); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestCuttingTemplatePDFWithoutSpeed(t *testing.T) {
	p := canopy.Default()
	p.MainDiameterFt = 1
	p.VentDiameterFt = 2
	s, err := design.Calculate(p)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := CuttingTemplatePDF(&buf, s, units.Imperial, Meta{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("empty pdf")
	}
}

func TestPatternXLSX(t *testing.T) {
	points, err := pattern.GenerateGorePanel(20, 1, 8, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := PatternXLSX(&buf, points, units.Imperial); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(PatternSheet)
	if err != nil {
		t.Fatal(err)
	}
	// header, 51 samples, blank line, reference
	if len(rows) != 1+51+2 {
		t.Fatalf("got %d rows, want 54", len(rows))
	}
	if rows[1][1] != "0" || rows[51][1] != "7.85" {
		t.Errorf("unexpected outline x values %q, %q", rows[1][1], rows[51][1])
	}
	if rows[26][2] != "9.5" {
		t.Errorf("midpoint y %q, want 9.5", rows[26][2])
	}
	if rows[53][0] != "Top Width: 0.39" {
		t.Errorf("reference row %q", rows[53])
	}
}
