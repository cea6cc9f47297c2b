package render

import (
	design "Canopy/internal/calc/design"
	pattern "Canopy/internal/calc/pattern"
	units "Canopy/internal/units"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// plot area on an A4 landscape page, in mm
const (
	plotLeft   = 15.0
	plotTop    = 75.0
	plotWidth  = 267.0
	plotHeight = 120.0
)

// CuttingTemplatePDF writes a two page report: parameters and the gore
// cutting pattern on the first page, the top view schematic on the second.
func CuttingTemplatePDF(w io.Writer, s design.Summary, sys units.System, meta Meta) error {
	if meta.Title == "" {
		meta.Title = "Parachute Cutting Template"
	}
	d := s.Display(sys)
	lu := d.LengthUnit

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(8)
	p := s.Params
	pdf.Cell(0, 6, fmt.Sprintf("Weight %s, diameter %s, vent %s, %d cells, altitude %s, seam allowance %s",
		sys.FormatWeight(p.WeightLb), sys.FormatLength(p.MainDiameterFt), sys.FormatLength(p.VentDiameterFt),
		p.Cells, sys.FormatLength(p.AltitudeFt), sys.FormatLength(p.SeamAllowanceFt)))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Fall speed: %s", d.Speed))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 11)
	for _, warning := range s.Warnings {
		pdf.Cell(0, 6, "Warning: "+string(warning))
		pdf.Ln(6)
	}
	if meta.Notes != "" {
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}

	drawPattern(pdf, d.Points, lu)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Top View")
	drawTopView(pdf, s)

	return pdf.Output(w)
}

func drawPattern(pdf *gofpdf.Fpdf, points []pattern.Point, lengthUnit string) {
	lo, hi := pattern.Bounds(points)
	spanX, spanY := hi.X-lo.X, hi.Y-lo.Y
	scale := plotWidth / math.Max(spanX, 1e-9)
	if spanY > 0 {
		scale = math.Min(scale, plotHeight/spanY)
	}
	px := func(x float64) float64 { return plotLeft + (x-lo.X)*scale }
	py := func(y float64) float64 { return plotTop + (hi.Y-y)*scale }

	polyline := func(kind pattern.Kind, r, g, b int) {
		pts := pattern.Filter(points, kind)
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(0.4)
		for i := 1; i < len(pts); i++ {
			pdf.Line(px(pts[i-1].X), py(pts[i-1].Y), px(pts[i].X), py(pts[i].Y))
		}
	}
	polyline(pattern.KindMain, 37, 99, 235)
	polyline(pattern.KindSeam, 220, 38, 38)

	pdf.SetFont("Helvetica", "", 9)
	for _, ref := range pattern.Filter(points, pattern.KindReference) {
		pdf.SetDrawColor(5, 150, 105)
		pdf.SetFillColor(5, 150, 105)
		pdf.Circle(px(ref.X), py(ref.Y), 1.2, "F")
		pdf.SetTextColor(5, 150, 105)
		pdf.Text(px(ref.X)+2, py(ref.Y)+4, fmt.Sprintf("%s %s", ref.Label, lengthUnit))
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(plotLeft, plotTop+plotHeight+10, fmt.Sprintf("Scale: 1 %s = %.1f mm", lengthUnit, scale))
}

func drawTopView(pdf *gofpdf.Fpdf, s design.Summary) {
	const cx, cy, radius = 148.5, 110.0, 80.0
	k := radius / s.TopView.OuterRadius

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.Circle(cx, cy, radius, "D")
	pdf.Circle(cx, cy, s.TopView.VentRadius*k, "D")
	pdf.SetLineWidth(0.3)
	pdf.SetFont("Helvetica", "", 9)
	for i, seam := range s.TopView.Seams {
		pdf.Line(cx+seam.From.X*k, cy+seam.From.Y*k, cx+seam.To.X*k, cy+seam.To.Y*k)
		label := s.TopView.Labels[i]
		pdf.Text(cx+label.At.X*k-1, cy+label.At.Y*k+1, label.Text)
	}
}
