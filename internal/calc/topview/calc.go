package topview

import (
	canopy "Canopy/internal/calc/canopy"
	geom "Canopy/internal/geom"
	"fmt"
	"math"
	"strconv"
)

const (
	OuterRadius = 100.0
	LabelRadius = 80.0
)

type Input struct {
	MainDiameterFt float64 `json:"main_diameter_ft"`
	VentDiameterFt float64 `json:"vent_diameter_ft"`
	Cells          int     `json:"cells"`
}

// Seam is the radial seam line between two gores, from the skirt to the vent.
type Seam struct {
	From geom.Point `json:"from"`
	To   geom.Point `json:"to"`
}

type Label struct {
	At   geom.Point `json:"at"`
	Text string     `json:"text"`
}

// Schematic is the top-down view of the canopy scaled so the skirt has
// radius OuterRadius.
type Schematic struct {
	OuterRadius float64 `json:"outer_radius"`
	VentRadius  float64 `json:"vent_radius"`
	Seams       []Seam  `json:"seams"`
	Labels      []Label `json:"labels"`
}

func Calculate(in Input) (Schematic, error) {
	if in.Cells < 1 {
		return Schematic{}, fmt.Errorf("%w: cell count must be at least 1, got %d", canopy.ErrInvalidParameter, in.Cells)
	}
	if !geom.Finite(in.MainDiameterFt, in.VentDiameterFt) || in.MainDiameterFt <= 0 || in.VentDiameterFt < 0 {
		return Schematic{}, fmt.Errorf("%w: diameters must be positive", canopy.ErrInvalidParameter)
	}

	vent := in.VentDiameterFt / in.MainDiameterFt * OuterRadius
	out := Schematic{
		OuterRadius: OuterRadius,
		VentRadius:  vent,
		Seams:       make([]Seam, 0, in.Cells),
		Labels:      make([]Label, 0, in.Cells),
	}
	origin := geom.Pt(0, 0)
	for i := 0; i < in.Cells; i++ {
		dir := geom.VecFromAngle(float64(i) * 2 * math.Pi / float64(in.Cells))
		out.Seams = append(out.Seams, Seam{
			From: origin.Translate(dir.Mul(OuterRadius)),
			To:   origin.Translate(dir.Mul(vent)),
		})
		out.Labels = append(out.Labels, Label{
			At:   origin.Translate(dir.Mul(LabelRadius)),
			Text: strconv.Itoa(i + 1),
		})
	}
	return out, nil
}
