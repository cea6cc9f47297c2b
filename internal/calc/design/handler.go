package design

import (
	canopy "Canopy/internal/calc/canopy"
	units "Canopy/internal/units"
	"encoding/json"
	"net/http"
)

type Handler struct{}

type Response struct {
	Summary Summary `json:"summary"`
	Display Display `json:"display"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	sys, err := units.Parse(r.URL.Query().Get("units"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input := canopy.Default()
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{Summary: res, Display: res.Display(sys)})
}
