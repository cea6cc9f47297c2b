package batch

import (
	canopy "Canopy/internal/calc/canopy"
	units "Canopy/internal/units"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type ImportResult struct {
	Count   int   `json:"count"`
	Skipped []int `json:"skipped_rows,omitempty"`
	Results []Row `json:"results"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	sys, err := units.Parse(r.URL.Query().Get("units"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input, sys)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// Import reads canopy designs from the first sheet of an uploaded xlsx file.
// Rows that do not parse or validate are skipped and reported by row number.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	sys, err := units.Parse(r.URL.Query().Get("units"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{Results: []Row{}}
	for i := 1; i < len(rows); i++ {
		params, err := ParseRow(rows[i])
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		res, err := calculateRow(params, sys)
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// ParseRow reads one spreadsheet row. Expected columns: weight_lb,
// main_diameter_ft, vent_diameter_ft, cells, altitude_ft (optional),
// seam_allowance_ft (optional). Missing optional columns take the defaults.
func ParseRow(row []string) (canopy.Params, error) {
	if len(row) < 4 {
		return canopy.Params{}, fmt.Errorf("bad row: need at least 4 columns, got %d", len(row))
	}
	p := canopy.Default()
	var err error
	if p.WeightLb, err = toFloat(row[0]); err != nil {
		return canopy.Params{}, err
	}
	if p.MainDiameterFt, err = toFloat(row[1]); err != nil {
		return canopy.Params{}, err
	}
	if p.VentDiameterFt, err = toFloat(row[2]); err != nil {
		return canopy.Params{}, err
	}
	if p.Cells, err = strconv.Atoi(strings.TrimSpace(row[3])); err != nil {
		return canopy.Params{}, err
	}
	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		if p.AltitudeFt, err = toFloat(row[4]); err != nil {
			return canopy.Params{}, err
		}
	}
	if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
		if p.SeamAllowanceFt, err = toFloat(row[5]); err != nil {
			return canopy.Params{}, err
		}
	}
	return p, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
