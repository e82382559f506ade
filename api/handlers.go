package api

import (
	"encoding/json"
	"net/http"

	"github.com/dcgrigsby/probe"
	"github.com/dcgrigsby/probe/unit"
)

// compareRequest carries the two interactive inputs. Omitted fields take the
// slider defaults.
type compareRequest struct {
	SailAreaM2  *int `json:"sail_area_m2"`
	LaserPowerW *int `json:"laser_power_w"`
}

// compareResponse mirrors the labeled outputs of one evaluation pass. An
// output undefined by a failed dependency is null, with the reason keyed
// under errors.
type compareResponse struct {
	SailAreaM2         int               `json:"sail_area_m2"`
	LaserPowerW        int               `json:"laser_power_w"`
	WindPressureNPa    *float64          `json:"wind_pressure_npa"`
	SailForceN         *float64          `json:"sail_force_n"`
	PhotonEnergyJ      *float64          `json:"photon_energy_j"`
	PhotonMomentumKgMS *float64          `json:"photon_momentum_kgms"`
	PhotonFluxPerS     *float64          `json:"photon_flux_pers"`
	LaserForceN        *float64          `json:"laser_force_n"`
	ForceRatio         *float64          `json:"force_ratio"`
	Errors             map[string]string `json:"errors,omitempty"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	area := probe.DefaultSailArea
	if req.SailAreaM2 != nil {
		area = *req.SailAreaM2
	}
	power := probe.DefaultLaserPower
	if req.LaserPowerW != nil {
		power = *req.LaserPowerW
	}

	cmp := probe.CompareThrust(s.Env, area, power)
	resp := compareResponse{SailAreaM2: area, LaserPowerW: power, Errors: map[string]string{}}
	resp.WindPressureNPa = quantityField(cmp.WindPressure, resp.Errors, "wind_pressure_npa")
	resp.SailForceN = quantityField(cmp.SailForce, resp.Errors, "sail_force_n")
	resp.PhotonEnergyJ = quantityField(cmp.PhotonEnergy, resp.Errors, "photon_energy_j")
	resp.PhotonMomentumKgMS = quantityField(cmp.PhotonMomentum, resp.Errors, "photon_momentum_kgms")
	resp.PhotonFluxPerS = scalarField(cmp.PhotonFlux, resp.Errors, "photon_flux_pers")
	resp.LaserForceN = quantityField(cmp.LaserForce, resp.Errors, "laser_force_n")
	resp.ForceRatio = scalarField(cmp.Ratio, resp.Errors, "force_ratio")
	if len(resp.Errors) == 0 {
		resp.Errors = nil
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func quantityField(res probe.QuantityResult, errs map[string]string, key string) *float64 {
	if res.Err != nil {
		errs[key] = res.Err.Error()
		return nil
	}
	v := res.Quantity.Magnitude()
	return &v
}

func scalarField(res probe.ScalarResult, errs map[string]string, key string) *float64 {
	if res.Err != nil {
		errs[key] = res.Err.Error()
		return nil
	}
	v := res.Value
	return &v
}

// referenceResponse reports the environment, constants and input domains the
// server computes against.
type referenceResponse struct {
	ProtonMassKg     float64 `json:"proton_mass_kg"`
	WindDensityPerCC float64 `json:"wind_density_percc"`
	WindVelocityKmS  float64 `json:"wind_velocity_kms"`
	WavelengthNm     float64 `json:"wavelength_nm"`
	PlanckJS         float64 `json:"planck_js"`
	SpeedOfLightMS   float64 `json:"speed_of_light_ms"`
	SailAreaM2Range  [2]int  `json:"sail_area_m2_range"`
	LaserPowerWRange [2]int  `json:"laser_power_w_range"`
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	resp := referenceResponse{
		PlanckJS:         unit.Planck.SI(),
		SpeedOfLightMS:   unit.SpeedOfLight.SI(),
		SailAreaM2Range:  [2]int{probe.MinSailArea, probe.MaxSailArea},
		LaserPowerWRange: [2]int{probe.MinLaserPower, probe.MaxLaserPower},
	}
	for _, c := range []struct {
		dst *float64
		q   unit.Quantity
		u   unit.Unit
	}{
		{&resp.ProtonMassKg, s.Env.ProtonMass, unit.Kilogram},
		{&resp.WindDensityPerCC, s.Env.WindDensity, unit.PerCubicCentimeter},
		{&resp.WindVelocityKmS, s.Env.WindVelocity, unit.KilometerPerSecond},
		{&resp.WavelengthNm, s.Env.Wavelength, unit.Nanometer},
	} {
		v, err := c.q.In(c.u)
		if err != nil {
			s.Logger.Log("level", "error", "msg", "malformed environment", "err", err)
			http.Error(w, "Malformed environment", http.StatusInternalServerError)
			return
		}
		*c.dst = v
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
