package design

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerCalcMetric(t *testing.T) {
	body := `{"weight_lb":100,"main_diameter_ft":20,"vent_diameter_ft":1,"cells":8,"altitude_ft":0,"seam_allowance_ft":0.5}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/design/calc?units=metric", strings.NewReader(body))
	(&Handler{}).Calc(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Display.Speed != "3.77 m/s" {
		t.Errorf("speed %q, want 3.77 m/s", res.Display.Speed)
	}
	if res.Summary.VelocityFtS == nil {
		t.Error("velocity missing")
	}
}

func TestHandlerCalcUnknownUnits(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/design/calc?units=cubits", strings.NewReader("{}"))
	(&Handler{}).Calc(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestHandlerCalcDefaultsMissingFields(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/design/calc", strings.NewReader(`{"cells":10}`))
	(&Handler{}).Calc(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res Response
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Summary.Params.Cells != 10 || res.Summary.Params.MainDiameterFt != 20 {
		t.Errorf("params %+v", res.Summary.Params)
	}
}
