package report

import (
	canopy "Canopy/internal/calc/canopy"
	design "Canopy/internal/calc/design"
	render "Canopy/internal/render"
	units "Canopy/internal/units"
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

type Input struct {
	canopy.Params
	render.Meta
}

type Handler struct{}

// decode reads the request into a computed design. It writes the error
// response itself and reports whether the caller should continue.
func decode(w http.ResponseWriter, r *http.Request) (Input, design.Summary, units.System, bool) {
	input := Input{Params: canopy.Default()}
	sys, err := units.Parse(r.URL.Query().Get("units"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return input, design.Summary{}, "", false
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return input, design.Summary{}, "", false
	}
	res, err := design.Calculate(input.Params)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return input, design.Summary{}, "", false
	}
	return input, res, sys, true
}

// Generate returns the cutting template as a PDF attachment.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	input, res, sys, ok := decode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.CuttingTemplatePDF(&buf, res, sys, input.Meta); err != nil {
		log.Printf("cutting template: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"cutting-template.pdf\"")
	w.Write(buf.Bytes())
}

func (h *Handler) PatternSVG(w http.ResponseWriter, r *http.Request) {
	_, res, sys, ok := decode(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	render.PatternSVG(w, res.Gore.Points, sys)
}

func (h *Handler) TopViewSVG(w http.ResponseWriter, r *http.Request) {
	_, res, _, ok := decode(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	render.TopViewSVG(w, res.TopView)
}

func (h *Handler) PatternXLSX(w http.ResponseWriter, r *http.Request) {
	_, res, sys, ok := decode(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.PatternXLSX(&buf, res.Gore.Points, sys); err != nil {
		log.Printf("pattern xlsx: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"gore-pattern.xlsx\"")
	w.Write(buf.Bytes())
}
