package canopy

import (
	geom "Canopy/internal/geom"
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrDomain           = errors.New("domain error")
)

// Params is the full parameter set of one canopy design. All values are in
// the imperial base system: pounds, feet.
type Params struct {
	WeightLb        float64 `json:"weight_lb"`
	MainDiameterFt  float64 `json:"main_diameter_ft"`
	VentDiameterFt  float64 `json:"vent_diameter_ft"`
	Cells           int     `json:"cells"`
	AltitudeFt      float64 `json:"altitude_ft"`
	SeamAllowanceFt float64 `json:"seam_allowance_ft"`
}

type Warning string

const WarnInvertedBulge Warning = "vent diameter is not smaller than main diameter; gore bulge is inverted and descent speed is undefined"

const MinCells = 3

func Default() Params {
	return Params{
		WeightLb:        100,
		MainDiameterFt:  20,
		VentDiameterFt:  1,
		Cells:           8,
		AltitudeFt:      1000,
		SeamAllowanceFt: 0.5,
	}
}

// Validate checks p at the boundary before it reaches the calculators.
// Vent >= main is allowed through with a warning.
func (p Params) Validate() ([]Warning, error) {
	if !geom.Finite(p.WeightLb, p.MainDiameterFt, p.VentDiameterFt, p.AltitudeFt, p.SeamAllowanceFt) {
		return nil, fmt.Errorf("%w: non-finite value", ErrInvalidParameter)
	}
	if p.WeightLb <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive, got %g", ErrInvalidParameter, p.WeightLb)
	}
	if p.MainDiameterFt <= 0 {
		return nil, fmt.Errorf("%w: main diameter must be positive, got %g", ErrInvalidParameter, p.MainDiameterFt)
	}
	if p.VentDiameterFt <= 0 {
		return nil, fmt.Errorf("%w: vent diameter must be positive, got %g", ErrInvalidParameter, p.VentDiameterFt)
	}
	if p.Cells < MinCells {
		return nil, fmt.Errorf("%w: need at least %d cells, got %d", ErrInvalidParameter, MinCells, p.Cells)
	}
	if p.SeamAllowanceFt < 0 {
		return nil, fmt.Errorf("%w: seam allowance must not be negative, got %g", ErrInvalidParameter, p.SeamAllowanceFt)
	}
	if p.AltitudeFt < 0 {
		return nil, fmt.Errorf("%w: altitude must not be negative, got %g", ErrInvalidParameter, p.AltitudeFt)
	}

	var warnings []Warning
	if p.VentDiameterFt >= p.MainDiameterFt {
		warnings = append(warnings, WarnInvertedBulge)
	}
	return warnings, nil
}
