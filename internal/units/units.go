// Package units converts computed base-unit values (feet, pounds, ft/s) into
// the display system. Conversion only ever runs on finished results and never
// feeds back into a calculation.
package units

import (
	pattern "Canopy/internal/calc/pattern"
	geom "Canopy/internal/geom"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/unit"
)

const (
	Foot  = 0.3048 * unit.Metre
	Pound = 453.592 * unit.Gram

	lengthDecimals = 2
	weightDecimals = 1
)

type System string

const (
	Imperial System = "imperial"
	Metric   System = "metric"
)

func Parse(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "imperial":
		return Imperial, nil
	case "metric":
		return Metric, nil
	default:
		return "", fmt.Errorf("unknown unit system %q", s)
	}
}

func Length(ft float64) unit.Length {
	return unit.Length(ft) * Foot
}

func Mass(lb float64) unit.Mass {
	return unit.Mass(lb) * Pound
}

// Velocity converts a rate in ft/s as the length covered per second.
func Velocity(ftPerSec float64) unit.Velocity {
	var v unit.Velocity
	if err := v.From(Length(ftPerSec).Unit().Div(unit.Second)); err != nil {
		panic(err)
	}
	return v
}

// Length returns ft expressed in s, rounded for display.
func (s System) Length(ft float64) float64 {
	if s == Metric {
		return geom.Round(float64(Length(ft)), lengthDecimals)
	}
	return geom.Round(ft, lengthDecimals)
}

func (s System) Weight(lb float64) float64 {
	if s == Metric {
		return geom.Round(float64(Mass(lb)), weightDecimals)
	}
	return lb
}

func (s System) LengthUnit() string {
	if s == Metric {
		return "m"
	}
	return "ft"
}

func (s System) WeightUnit() string {
	if s == Metric {
		return "kg"
	}
	return "lbs"
}

// FormatLength renders ft in s with its unit symbol, e.g. "6.10 m".
func (s System) FormatLength(ft float64) string {
	if s == Metric {
		return fmt.Sprintf("%.2f", unit.Length(s.Length(ft)))
	}
	return fmt.Sprintf("%.2f ft", s.Length(ft))
}

func (s System) FormatWeight(lb float64) string {
	if s == Metric {
		return fmt.Sprintf("%.1f", unit.Mass(s.Weight(lb)))
	}
	return fmt.Sprintf("%g lbs", lb)
}

// Speed formats a descent rate in ft/s for display.
func (s System) Speed(ftPerSec float64) string {
	if s == Metric {
		var perSecond unit.Length
		if err := perSecond.From(Velocity(ftPerSec).Unit().Mul(unit.Second)); err != nil {
			panic(err)
		}
		return fmt.Sprintf("%.2f/s", perSecond)
	}
	return fmt.Sprintf("%.1f ft/s", ftPerSec)
}

// Points converts an already rounded gore pattern for display. The input is
// left untouched.
func (s System) Points(points []pattern.Point) []pattern.Point {
	out := make([]pattern.Point, len(points))
	for i, p := range points {
		p.X = s.Length(p.X)
		p.Y = s.Length(p.Y)
		if p.Kind == pattern.KindReference {
			p.Value = s.Length(p.Value)
			p.Label = pattern.TopWidthLabel(p.Value)
		}
		out[i] = p
	}
	return out
}
