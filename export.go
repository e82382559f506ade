package probe

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// SweepPoint is one evaluated grid point of a full-domain sweep.
type SweepPoint struct {
	SailAreaM2  int
	LaserPowerW int
	Comparison
}

// StreamSweep evaluates the whole input domain, areas ascending and powers in
// steps of powerStep watts, and streams the points through the returned
// channel. Panics when powerStep is not positive.
func StreamSweep(env Environment, powerStep int) <-chan SweepPoint {
	if powerStep <= 0 {
		panic(fmt.Errorf("probe: power step must be positive, got %d", powerStep))
	}
	out := make(chan SweepPoint)
	go func() {
		defer close(out)
		for area := MinSailArea; area <= MaxSailArea; area++ {
			for power := MinLaserPower; power <= MaxLaserPower; power += powerStep {
				out <- SweepPoint{area, power, CompareThrust(env, area, power)}
			}
		}
	}()
	return out
}

// WriteSweepCSV consumes points and writes one CSV record per point, header
// first. Undefined outputs render as the literal cell "undefined".
func WriteSweepCSV(w io.Writer, points <-chan SweepPoint) error {
	cw := csv.NewWriter(w)
	header := []string{"sail_area_m2", "laser_power_w", "wind_pressure_npa", "sail_force_n",
		"photon_energy_j", "photon_momentum_kgms", "photon_flux_pers", "laser_force_n", "force_ratio"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for pt := range points {
		record := []string{
			strconv.Itoa(pt.SailAreaM2),
			strconv.Itoa(pt.LaserPowerW),
			quantityCell(pt.WindPressure),
			quantityCell(pt.SailForce),
			quantityCell(pt.PhotonEnergy),
			quantityCell(pt.PhotonMomentum),
			scalarCell(pt.PhotonFlux),
			quantityCell(pt.LaserForce),
			scalarCell(pt.Ratio),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func quantityCell(r QuantityResult) string {
	if !r.Defined() {
		return "undefined"
	}
	return strconv.FormatFloat(r.Quantity.Magnitude(), 'e', -1, 64)
}

func scalarCell(r ScalarResult) string {
	if !r.Defined() {
		return "undefined"
	}
	return strconv.FormatFloat(r.Value, 'e', -1, 64)
}
