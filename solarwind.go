package probe

import (
	"fmt"

	"github.com/dcgrigsby/probe/unit"
)

// dynPressurePa is the pascal value of one kg·cm^-3·(km/s)^2, the compound
// unit of m_p·n·V² evaluated in the canonical (kg, 1/cm^3, km/s) triple.
const dynPressurePa = 1e12

// dynPressureUnit tags raw dynamic-pressure magnitudes. One unit is exactly
// 1e21 nPa, so the nanopascal readout convention falls out of the canonical
// unit choice and must never be re-derived in plain SI.
var dynPressureUnit = unit.Unit{Name: "kg/cm^3·(km/s)^2", Dims: unit.Pressure, Factor: dynPressurePa}

// SolarWindPressure returns the dynamic pressure m_p·n·V² of a proton stream
// with the given particle mass, number density and bulk velocity, expressed
// in nanopascals. Inputs may use any commensurable units.
func SolarWindPressure(protonMass, numberDensity, velocity unit.Quantity) (unit.Quantity, error) {
	mKg, err := protonMass.In(unit.Kilogram)
	if err != nil {
		return unit.Quantity{}, err
	}
	nCC, err := numberDensity.In(unit.PerCubicCentimeter)
	if err != nil {
		return unit.Quantity{}, err
	}
	vKmS, err := velocity.In(unit.KilometerPerSecond)
	if err != nil {
		return unit.Quantity{}, err
	}
	if mKg <= 0 {
		return unit.Quantity{}, fmt.Errorf("probe: particle mass must be positive, got %s", protonMass)
	}
	if nCC < 0 {
		return unit.Quantity{}, fmt.Errorf("probe: number density must not be negative, got %s", numberDensity)
	}
	raw := mKg * nCC * vKmS * vKmS
	return unit.New(raw, dynPressureUnit).Convert(unit.NanoPascal)
}

// ForceFromPressure returns the force of the given pressure acting over the
// given area, in newtons.
func ForceFromPressure(pressure, area unit.Quantity) (unit.Quantity, error) {
	pPa, err := pressure.In(unit.Pascal)
	if err != nil {
		return unit.Quantity{}, err
	}
	aM2, err := area.In(unit.SquareMeter)
	if err != nil {
		return unit.Quantity{}, err
	}
	return unit.New(pPa*aM2, unit.Newton), nil
}
