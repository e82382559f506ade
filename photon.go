package probe

import (
	"fmt"

	"github.com/dcgrigsby/probe/unit"
)

// PhotonEnergy returns the energy h·c/λ of a single photon of the given
// wavelength, in joules.
func PhotonEnergy(wavelength unit.Quantity) (unit.Quantity, error) {
	if err := checkWavelength(wavelength); err != nil {
		return unit.Quantity{}, err
	}
	hc := unit.Mul(unit.Planck, unit.SpeedOfLight)
	energy, err := unit.Div(hc, wavelength)
	if err != nil {
		return unit.Quantity{}, err
	}
	return energy.Convert(unit.Joule)
}

// PhotonMomentum returns the momentum h/λ carried by a single photon of the
// given wavelength, in kg·m/s.
func PhotonMomentum(wavelength unit.Quantity) (unit.Quantity, error) {
	if err := checkWavelength(wavelength); err != nil {
		return unit.Quantity{}, err
	}
	momentum, err := unit.Div(unit.Planck, wavelength)
	if err != nil {
		return unit.Quantity{}, err
	}
	return momentum.Convert(unit.KilogramMeterPerSecond)
}

// PhotonFlux returns the number of photons per second delivered by a beam of
// the given radiant power. Photon count is not a physical dimension, so the
// rate is a bare number rather than a Quantity.
func PhotonFlux(power, photonEnergy unit.Quantity) (float64, error) {
	pW, err := power.In(unit.Watt)
	if err != nil {
		return 0, err
	}
	eJ, err := photonEnergy.In(unit.Joule)
	if err != nil {
		return 0, err
	}
	if pW < 0 {
		return 0, fmt.Errorf("probe: beam power must not be negative, got %s", power)
	}
	if eJ == 0 {
		return 0, unit.ErrDivisionByZero
	}
	return pW / eJ, nil
}

// ForceFromPhotonFlux returns the thrust of a photon stream delivering rate
// photons per second, each carrying the given momentum, in newtons.
func ForceFromPhotonFlux(rate float64, momentumPerPhoton unit.Quantity) (unit.Quantity, error) {
	pSI, err := momentumPerPhoton.In(unit.KilogramMeterPerSecond)
	if err != nil {
		return unit.Quantity{}, err
	}
	if rate < 0 {
		return unit.Quantity{}, fmt.Errorf("probe: photon rate must not be negative, got %v", rate)
	}
	return unit.New(rate*pSI, unit.Newton), nil
}

func checkWavelength(wavelength unit.Quantity) error {
	m, err := wavelength.In(unit.Meter)
	if err != nil {
		return err
	}
	if m <= 0 {
		return fmt.Errorf("probe: wavelength must be positive, got %s", wavelength)
	}
	return nil
}
