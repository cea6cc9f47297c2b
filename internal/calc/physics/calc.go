package physics

import (
	canopy "Canopy/internal/calc/canopy"
	geom "Canopy/internal/geom"
	"fmt"
	"math"
)

const (
	SeaLevelDensity = 0.002378 // slug/ft^3
	ScaleHeightFt   = 30000.0
	DragCoefficient = 1.75 // round canopy
)

type Input struct {
	WeightLb       float64 `json:"weight_lb"`
	MainDiameterFt float64 `json:"main_diameter_ft"`
	VentDiameterFt float64 `json:"vent_diameter_ft"`
	AltitudeFt     float64 `json:"altitude_ft"`
}

type Result struct {
	AirDensity       float64 `json:"air_density_slug_ft3"`
	MainAreaFt2      float64 `json:"main_area_ft2"`
	VentAreaFt2      float64 `json:"vent_area_ft2"`
	EffectiveAreaFt2 float64 `json:"effective_area_ft2"`
	VelocityFtS      float64 `json:"velocity_ft_s"`
	Notes            string  `json:"notes"`
}

// AirDensity returns the density of air in slug/ft^3 at altitudeFt using an
// exponential atmosphere. Negative altitudes extrapolate the same curve.
func AirDensity(altitudeFt float64) float64 {
	return SeaLevelDensity * math.Exp(-altitudeFt/ScaleHeightFt)
}

// TerminalVelocity returns the steady-state descent rate in ft/s of weightLb
// hanging under a vented round canopy.
func TerminalVelocity(weightLb, mainDiameterFt, ventDiameterFt, altitudeFt float64) (float64, error) {
	res, err := Calculate(Input{
		WeightLb:       weightLb,
		MainDiameterFt: mainDiameterFt,
		VentDiameterFt: ventDiameterFt,
		AltitudeFt:     altitudeFt,
	})
	if err != nil {
		return 0, err
	}
	return res.VelocityFtS, nil
}

func Calculate(in Input) (Result, error) {
	if !geom.Finite(in.WeightLb, in.MainDiameterFt, in.VentDiameterFt, in.AltitudeFt) {
		return Result{}, fmt.Errorf("%w: non-finite input", canopy.ErrInvalidParameter)
	}
	if in.WeightLb < 0 {
		return Result{}, fmt.Errorf("%w: negative weight %g", canopy.ErrInvalidParameter, in.WeightLb)
	}
	if in.MainDiameterFt < 0 || in.VentDiameterFt < 0 {
		return Result{}, fmt.Errorf("%w: negative diameter", canopy.ErrInvalidParameter)
	}
	if in.MainDiameterFt <= in.VentDiameterFt {
		return Result{}, fmt.Errorf("%w: main diameter %g must exceed vent diameter %g",
			canopy.ErrDomain, in.MainDiameterFt, in.VentDiameterFt)
	}

	rho := AirDensity(in.AltitudeFt)
	mainArea := circleArea(in.MainDiameterFt)
	ventArea := circleArea(in.VentDiameterFt)
	effective := mainArea - ventArea
	if effective <= 0 {
		// Only reachable through float cancellation on near-equal diameters.
		return Result{}, fmt.Errorf("%w: effective area %g is not positive", canopy.ErrDomain, effective)
	}

	// Drag balance: W = 1/2 rho v^2 Cd A
	v := math.Sqrt((2 * in.WeightLb) / (rho * DragCoefficient * effective))

	return Result{
		AirDensity:       rho,
		MainAreaFt2:      mainArea,
		VentAreaFt2:      ventArea,
		EffectiveAreaFt2: effective,
		VelocityFtS:      v,
		Notes:            "Simplified drag balance, Cd 1.75, exponential atmosphere.",
	}, nil
}

func circleArea(d float64) float64 {
	return math.Pi * (d / 2) * (d / 2)
}
