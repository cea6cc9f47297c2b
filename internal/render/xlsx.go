package render

import (
	pattern "Canopy/internal/calc/pattern"
	units "Canopy/internal/units"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const PatternSheet = "Pattern"

// PatternXLSX writes the gore pattern as a spreadsheet, one row per sample
// with the outline and seam coordinates side by side.
func PatternXLSX(w io.Writer, points []pattern.Point, sys units.System) error {
	display := sys.Points(points)
	main := pattern.Filter(display, pattern.KindMain)
	seam := pattern.Filter(display, pattern.KindSeam)
	if len(main) != len(seam) {
		return fmt.Errorf("outline has %d points but seam has %d", len(main), len(seam))
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", PatternSheet); err != nil {
		return err
	}

	lu := sys.LengthUnit()
	header := []interface{}{
		"t",
		fmt.Sprintf("Main X (%s)", lu), fmt.Sprintf("Main Y (%s)", lu),
		fmt.Sprintf("Seam X (%s)", lu), fmt.Sprintf("Seam Y (%s)", lu),
	}
	if err := f.SetSheetRow(PatternSheet, "A1", &header); err != nil {
		return err
	}
	last := len(main) - 1
	for i := range main {
		t := 0.0
		if last > 0 {
			t = float64(i) / float64(last)
		}
		row := []interface{}{t, main[i].X, main[i].Y, seam[i].X, seam[i].Y}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PatternSheet, cell, &row); err != nil {
			return err
		}
	}

	row := len(main) + 3
	for _, ref := range pattern.Filter(display, pattern.KindReference) {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(PatternSheet, cell, &[]interface{}{ref.Label, lu}); err != nil {
			return err
		}
		row++
	}
	return f.Write(w)
}
