// Package design computes everything shown for one canopy design: descent
// speed, gore pattern and top view. Each call recomputes from scratch.
package design

import (
	canopy "Canopy/internal/calc/canopy"
	pattern "Canopy/internal/calc/pattern"
	physics "Canopy/internal/calc/physics"
	topview "Canopy/internal/calc/topview"
	units "Canopy/internal/units"
	"errors"
)

const NotAvailable = "N/A"

type Summary struct {
	Params        canopy.Params     `json:"params"`
	Warnings      []canopy.Warning  `json:"warnings,omitempty"`
	AirDensity    float64           `json:"air_density_slug_ft3"`
	VelocityFtS   *float64          `json:"velocity_ft_s"`
	VelocityError string            `json:"velocity_error,omitempty"`
	Gore          pattern.Result    `json:"gore"`
	TopView       topview.Schematic `json:"top_view"`
}

// Display is a Summary rendered in one unit system.
type Display struct {
	System     units.System    `json:"system"`
	Speed      string          `json:"speed"`
	Weight     float64         `json:"weight"`
	WeightUnit string          `json:"weight_unit"`
	Diameter   float64         `json:"diameter"`
	Vent       float64         `json:"vent_diameter"`
	Altitude   float64         `json:"altitude"`
	Seam       float64         `json:"seam_allowance"`
	LengthUnit string          `json:"length_unit"`
	Points     []pattern.Point `json:"points"`
}

// Calculate validates p and computes the full design. A vent at least as
// large as the main canopy is not an error: the summary carries a warning
// and no velocity.
func Calculate(p canopy.Params) (Summary, error) {
	warnings, err := p.Validate()
	if err != nil {
		return Summary{}, err
	}

	gore, err := pattern.Calculate(pattern.Input{
		MainDiameterFt:  p.MainDiameterFt,
		VentDiameterFt:  p.VentDiameterFt,
		Cells:           p.Cells,
		SeamAllowanceFt: p.SeamAllowanceFt,
	})
	if err != nil {
		return Summary{}, err
	}
	view, err := topview.Calculate(topview.Input{
		MainDiameterFt: p.MainDiameterFt,
		VentDiameterFt: p.VentDiameterFt,
		Cells:          p.Cells,
	})
	if err != nil {
		return Summary{}, err
	}

	out := Summary{
		Params:     p,
		Warnings:   warnings,
		AirDensity: physics.AirDensity(p.AltitudeFt),
		Gore:       gore,
		TopView:    view,
	}
	v, err := physics.TerminalVelocity(p.WeightLb, p.MainDiameterFt, p.VentDiameterFt, p.AltitudeFt)
	switch {
	case err == nil:
		out.VelocityFtS = &v
	case errors.Is(err, canopy.ErrDomain):
		out.VelocityError = err.Error()
	default:
		return Summary{}, err
	}
	return out, nil
}

// Speed formats the descent speed, or NotAvailable when it is undefined.
func (s Summary) Speed(sys units.System) string {
	if s.VelocityFtS == nil {
		return NotAvailable
	}
	return sys.Speed(*s.VelocityFtS)
}

func (s Summary) Display(sys units.System) Display {
	return Display{
		System:     sys,
		Speed:      s.Speed(sys),
		Weight:     sys.Weight(s.Params.WeightLb),
		WeightUnit: sys.WeightUnit(),
		Diameter:   sys.Length(s.Params.MainDiameterFt),
		Vent:       sys.Length(s.Params.VentDiameterFt),
		Altitude:   sys.Length(s.Params.AltitudeFt),
		Seam:       sys.Length(s.Params.SeamAllowanceFt),
		LengthUnit: sys.LengthUnit(),
		Points:     sys.Points(s.Gore.Points),
	}
}
