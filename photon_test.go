package probe

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"

	"github.com/dcgrigsby/probe/unit"
)

func TestPhotonEnergyReference(t *testing.T) {
	energy, err := PhotonEnergy(unit.New(780, unit.Nanometer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if energy.Unit() != unit.Joule {
		t.Fatalf("energy reads in %q, want J", energy.Unit().Name)
	}
	if !floats.EqualWithinRel(energy.Magnitude(), 2.547e-19, 0.01) {
		t.Errorf("780 nm photon carries %v J, want about 2.547e-19", energy.Magnitude())
	}
	eV, err := energy.In(unit.ElectronVolt)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !floats.EqualWithinRel(eV, 1.58954, 1e-4) {
		t.Errorf("780 nm photon carries %v eV, want about 1.58954", eV)
	}
}

func TestPhotonMomentumReference(t *testing.T) {
	momentum, err := PhotonMomentum(unit.New(780, unit.Nanometer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if momentum.Unit() != unit.KilogramMeterPerSecond {
		t.Fatalf("momentum reads in %q, want kg·m/s", momentum.Unit().Name)
	}
	if !floats.EqualWithinRel(momentum.Magnitude(), 8.49e-28, 0.01) {
		t.Errorf("780 nm photon carries %v kg·m/s, want about 8.49e-28", momentum.Magnitude())
	}
}

func TestPhotonInverseWavelength(t *testing.T) {
	full, err := PhotonEnergy(unit.New(780, unit.Nanometer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	half, err := PhotonEnergy(unit.New(390, unit.Nanometer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !floats.EqualWithinRel(half.Magnitude(), 2*full.Magnitude(), 1e-9) {
		t.Errorf("halving the wavelength yields %v J, want %v", half.Magnitude(), 2*full.Magnitude())
	}
	pFull, err := PhotonMomentum(unit.New(780, unit.Nanometer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	pHalf, err := PhotonMomentum(unit.New(390, unit.Nanometer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !floats.EqualWithinRel(pHalf.Magnitude(), 2*pFull.Magnitude(), 1e-9) {
		t.Errorf("halving the wavelength yields %v kg·m/s, want %v", pHalf.Magnitude(), 2*pFull.Magnitude())
	}
}

func TestPhotonRejectsDegenerateWavelength(t *testing.T) {
	for _, wavelength := range []unit.Quantity{
		unit.New(0, unit.Nanometer),
		unit.New(-780, unit.Nanometer),
	} {
		if _, err := PhotonEnergy(wavelength); err == nil {
			t.Errorf("PhotonEnergy(%s) did not fail", wavelength)
		}
		if _, err := PhotonMomentum(wavelength); err == nil {
			t.Errorf("PhotonMomentum(%s) did not fail", wavelength)
		}
	}
	var dimErr *unit.DimensionError
	if _, err := PhotonEnergy(unit.New(100, unit.Watt)); !errors.As(err, &dimErr) {
		t.Errorf("power as wavelength: expected a *unit.DimensionError, got %+v", err)
	}
	if _, err := PhotonMomentum(unit.New(100, unit.Watt)); !errors.As(err, &dimErr) {
		t.Errorf("power as wavelength: expected a *unit.DimensionError, got %+v", err)
	}
}

func TestPhotonFlux(t *testing.T) {
	energy, err := PhotonEnergy(unit.New(780, unit.Nanometer))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	rate, err := PhotonFlux(unit.New(100, unit.Watt), energy)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !floats.EqualWithinRel(rate, 3.9266e20, 1e-4) {
		t.Errorf("100 W at 780 nm delivers %v photons/s, want about 3.9266e20", rate)
	}
}

func TestPhotonFluxZeroEnergy(t *testing.T) {
	_, err := PhotonFlux(unit.New(100, unit.Watt), unit.New(0, unit.Joule))
	if !errors.Is(err, unit.ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %+v", err)
	}
}

func TestPhotonFluxChecks(t *testing.T) {
	energy := unit.New(2.547e-19, unit.Joule)
	var dimErr *unit.DimensionError
	if _, err := PhotonFlux(energy, energy); !errors.As(err, &dimErr) {
		t.Errorf("energy as power: expected a *unit.DimensionError, got %+v", err)
	}
	if _, err := PhotonFlux(unit.New(100, unit.Watt), unit.New(780, unit.Nanometer)); !errors.As(err, &dimErr) {
		t.Errorf("wavelength as energy: expected a *unit.DimensionError, got %+v", err)
	}
	if _, err := PhotonFlux(unit.New(-100, unit.Watt), energy); err == nil {
		t.Error("negative power did not fail")
	}
}

func TestForceFromPhotonFluxMatchesPowerOverC(t *testing.T) {
	// The chain h·c/λ, h/λ, P/E, N·p algebraically collapses to P/c: the
	// wavelength must cancel out of the final thrust.
	for _, powerW := range []float64{100, 250, 1000} {
		energy, err := PhotonEnergy(unit.New(780, unit.Nanometer))
		if err != nil {
			t.Fatalf("%+v", err)
		}
		momentum, err := PhotonMomentum(unit.New(780, unit.Nanometer))
		if err != nil {
			t.Fatalf("%+v", err)
		}
		rate, err := PhotonFlux(unit.New(powerW, unit.Watt), energy)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		force, err := ForceFromPhotonFlux(rate, momentum)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if force.Unit() != unit.Newton {
			t.Fatalf("force reads in %q, want N", force.Unit().Name)
		}
		want := powerW / unit.SpeedOfLight.SI()
		if !floats.EqualWithinRel(force.Magnitude(), want, 1e-9) {
			t.Errorf("%v W yields %v N, want %v", powerW, force.Magnitude(), want)
		}
	}
}

func TestForceFromPhotonFluxChecks(t *testing.T) {
	momentum := unit.New(8.49e-28, unit.KilogramMeterPerSecond)
	var dimErr *unit.DimensionError
	if _, err := ForceFromPhotonFlux(1e20, unit.New(2.547e-19, unit.Joule)); !errors.As(err, &dimErr) {
		t.Errorf("energy as momentum: expected a *unit.DimensionError, got %+v", err)
	}
	if _, err := ForceFromPhotonFlux(-1e20, momentum); err == nil {
		t.Error("negative rate did not fail")
	}
	force, err := ForceFromPhotonFlux(0, momentum)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if force.Magnitude() != 0 || math.IsNaN(force.Magnitude()) {
		t.Errorf("dark laser yields %v N, want 0", force.Magnitude())
	}
}
