package batch

import (
	canopy "Canopy/internal/calc/canopy"
	design "Canopy/internal/calc/design"
	pattern "Canopy/internal/calc/pattern"
	units "Canopy/internal/units"
	"fmt"
)

type Input struct {
	Items []canopy.Params `json:"items"`
}

type Row struct {
	Params       canopy.Params    `json:"params"`
	VelocityFtS  *float64         `json:"velocity_ft_s"`
	Speed        string           `json:"speed"`
	TopWidthFt   float64          `json:"top_width_ft"`
	CellHeightFt float64          `json:"cell_height_ft"`
	Warnings     []canopy.Warning `json:"warnings,omitempty"`
}

type Result struct {
	Results []Row `json:"results"`
}

func Calculate(in Input, sys units.System) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]Row, 0, len(in.Items))}
	for i, item := range in.Items {
		row, err := calculateRow(item, sys)
		if err != nil {
			return Result{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, row)
	}
	return out, nil
}

func calculateRow(p canopy.Params, sys units.System) (Row, error) {
	s, err := design.Calculate(p)
	if err != nil {
		return Row{}, err
	}
	row := Row{
		Params:       p,
		VelocityFtS:  s.VelocityFtS,
		Speed:        s.Speed(sys),
		CellHeightFt: s.Gore.CellHeightFt,
		Warnings:     s.Warnings,
	}
	for _, ref := range pattern.Filter(s.Gore.Points, pattern.KindReference) {
		row.TopWidthFt = ref.Value
	}
	return row, nil
}
