package design

import (
	canopy "Canopy/internal/calc/canopy"
	physics "Canopy/internal/calc/physics"
	units "Canopy/internal/units"
	"errors"
	"testing"
)

func TestCalculateDefault(t *testing.T) {
	s, err := Calculate(canopy.Default())
	if err != nil {
		t.Fatal(err)
	}
	if s.VelocityFtS == nil {
		t.Fatal("velocity missing")
	}
	want, _ := physics.TerminalVelocity(100, 20, 1, 1000)
	if *s.VelocityFtS != want {
		t.Errorf("velocity %v, want %v", *s.VelocityFtS, want)
	}
	if len(s.Gore.Points) != 103 {
		t.Errorf("got %d pattern points, want 103", len(s.Gore.Points))
	}
	if len(s.TopView.Seams) != 8 {
		t.Errorf("got %d seams, want 8", len(s.TopView.Seams))
	}
	if got := s.Speed(units.Imperial); got != "12.6 ft/s" {
		t.Errorf("speed %q, want 12.6 ft/s", got)
	}
}

func TestCalculateLargeVentFallsBack(t *testing.T) {
	p := canopy.Default()
	p.MainDiameterFt = 1
	p.VentDiameterFt = 2
	s, err := Calculate(p)
	if err != nil {
		t.Fatal(err)
	}
	if s.VelocityFtS != nil {
		t.Errorf("velocity %v, want none", *s.VelocityFtS)
	}
	if s.VelocityError == "" {
		t.Error("missing velocity error")
	}
	if got := s.Speed(units.Metric); got != NotAvailable {
		t.Errorf("speed %q, want %q", got, NotAvailable)
	}
	if len(s.Warnings) != 1 {
		t.Errorf("warnings %v", s.Warnings)
	}
}

func TestCalculateRejectsInvalid(t *testing.T) {
	p := canopy.Default()
	p.Cells = 0
	if _, err := Calculate(p); !errors.Is(err, canopy.ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", err)
	}
}

func TestDisplayMetric(t *testing.T) {
	s, err := Calculate(canopy.Default())
	if err != nil {
		t.Fatal(err)
	}
	d := s.Display(units.Metric)
	if d.Diameter != 6.1 || d.LengthUnit != "m" || d.Weight != 45.4 {
		t.Errorf("unexpected metric display %+v", d)
	}
	if d.Points[len(d.Points)-1].Label != "Top Width: 0.12" {
		t.Errorf("reference label %q", d.Points[len(d.Points)-1].Label)
	}
	// Display conversion leaves the base pattern alone.
	if s.Gore.Points[len(s.Gore.Points)-1].Label != "Top Width: 0.39" {
		t.Errorf("base label changed to %q", s.Gore.Points[len(s.Gore.Points)-1].Label)
	}
}
