package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"

	"github.com/dcgrigsby/probe"
)

func newTestServer() *Server {
	return NewServer(probe.DefaultEnvironment(), kitlog.NewNopLogger())
}

func doCompare(t *testing.T, s *Server, body string) (*httptest.ResponseRecorder, compareResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/compare", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	var resp compareResponse
	if w.Code == http.StatusOK {
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("%+v", err)
		}
	}
	return w, resp
}

func TestCompareEndpoint(t *testing.T) {
	w, resp := doCompare(t, newTestServer(), `{"sail_area_m2": 2, "laser_power_w": 200}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if resp.Errors != nil {
		t.Fatalf("unexpected errors: %+v", resp.Errors)
	}
	if resp.SailAreaM2 != 2 || resp.LaserPowerW != 200 {
		t.Errorf("echoed inputs (%d, %d), want (2, 200)", resp.SailAreaM2, resp.LaserPowerW)
	}
	if resp.WindPressureNPa == nil || !floats.EqualWithinRel(*resp.WindPressureNPa, 2.3709415768, 1e-9) {
		t.Errorf("wind_pressure_npa = %v, want 2.3709415768", resp.WindPressureNPa)
	}
	if resp.PhotonFluxPerS == nil || !floats.EqualWithinRel(*resp.PhotonFluxPerS, 7.8532e20, 1e-4) {
		t.Errorf("photon_flux_pers = %v, want about 7.8532e20", resp.PhotonFluxPerS)
	}
	// Doubling both inputs leaves the figure of merit where it started.
	if resp.ForceRatio == nil || !floats.EqualWithinRel(*resp.ForceRatio, 140.688, 1e-4) {
		t.Errorf("force_ratio = %v, want about 140.688", resp.ForceRatio)
	}
}

func TestCompareDefaults(t *testing.T) {
	w, resp := doCompare(t, newTestServer(), `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if resp.SailAreaM2 != probe.DefaultSailArea || resp.LaserPowerW != probe.DefaultLaserPower {
		t.Errorf("defaults (%d, %d), want (%d, %d)", resp.SailAreaM2, resp.LaserPowerW,
			probe.DefaultSailArea, probe.DefaultLaserPower)
	}
	if resp.ForceRatio == nil || !floats.EqualWithinRel(*resp.ForceRatio, 140.688, 1e-4) {
		t.Errorf("force_ratio = %v, want about 140.688", resp.ForceRatio)
	}
}

func TestCompareUndefinedOutputs(t *testing.T) {
	w, resp := doCompare(t, newTestServer(), `{"sail_area_m2": 500}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200: a domain violation is an undefined output, not a transport failure", w.Code)
	}
	if resp.SailForceN != nil || resp.ForceRatio != nil {
		t.Error("outputs depending on an out-of-domain area must be null")
	}
	if resp.WindPressureNPa == nil || resp.LaserForceN == nil {
		t.Error("outputs independent of the sail area must stay defined")
	}
	if resp.Errors["sail_force_n"] == "" || resp.Errors["force_ratio"] == "" {
		t.Errorf("missing error reasons, got %+v", resp.Errors)
	}
}

func TestCompareBadPayload(t *testing.T) {
	w, _ := doCompare(t, newTestServer(), `{"sail_area_m2": `)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", w.Code)
	}
}

func TestCompareMethod(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/compare", nil)
	w := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status %d, want 405", w.Code)
	}
}

func TestReferenceEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/reference", nil)
	w := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var resp referenceResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("%+v", err)
	}
	if resp.WindDensityPerCC != 7.0 || resp.WindVelocityKmS != 450 || resp.WavelengthNm != 780 {
		t.Errorf("reference environment mismatch: %+v", resp)
	}
	if resp.SpeedOfLightMS != 299792458 {
		t.Errorf("speed_of_light_ms = %v, want 299792458", resp.SpeedOfLightMS)
	}
	if resp.SailAreaM2Range != [2]int{1, 100} || resp.LaserPowerWRange != [2]int{100, 1000} {
		t.Errorf("input domains mismatch: %+v", resp)
	}
}

func TestRateLimit(t *testing.T) {
	s := newTestServer()
	s.limiter = NewIPRateLimiter(1, 1)
	router := s.Router()

	req := httptest.NewRequest("GET", "/api/v1/reference", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status %d, want 200", w.Code)
	}
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("burst exhausted: status %d, want 429", w.Code)
	}
}
