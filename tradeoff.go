// Package probe sizes the tradeoff between riding the solar wind on a
// spacecraft sail and pushing the same sail with an onboard laser. Five
// closed-form formulas chain into a single figure of merit: the ratio of
// laser photon thrust to solar-wind dynamic-pressure thrust.
package probe

import "github.com/dcgrigsby/probe/unit"

// Domains of the two interactive inputs. The defaults are the domain minima.
const (
	MinSailArea     = 1   // m^2
	MaxSailArea     = 100 // m^2
	DefaultSailArea = MinSailArea

	MinLaserPower     = 100  // W
	MaxLaserPower     = 1000 // W
	DefaultLaserPower = MinLaserPower
)

// Environment fixes the physical context of a comparison: the solar wind the
// sail rides and the wavelength of the laser driving it.
type Environment struct {
	ProtonMass   unit.Quantity
	WindDensity  unit.Quantity
	WindVelocity unit.Quantity
	Wavelength   unit.Quantity
}

// QuantityResult is one labeled output of a comparison: a quantity, or the
// error which left it undefined.
type QuantityResult struct {
	Quantity unit.Quantity
	Err      error
}

// Defined returns whether r holds a usable value.
func (r QuantityResult) Defined() bool {
	return r.Err == nil
}

// ScalarResult is a labeled bare-number output.
type ScalarResult struct {
	Value float64
	Err   error
}

// Defined returns whether r holds a usable value.
func (r ScalarResult) Defined() bool {
	return r.Err == nil
}

// Comparison holds every labeled output of one evaluation pass.
type Comparison struct {
	WindPressure   QuantityResult // nPa
	SailForce      QuantityResult // N
	PhotonEnergy   QuantityResult // J
	PhotonMomentum QuantityResult // kg·m/s
	PhotonFlux     ScalarResult   // photons/s
	LaserForce     QuantityResult // N
	Ratio          ScalarResult   // laser force over sail force
}

// CompareThrust evaluates the whole chain once for the given environment and
// interactive inputs. Each output carries either its value or the first error
// on its dependency chain; a failure in one branch never suppresses outputs
// of the other.
func CompareThrust(env Environment, sailAreaM2, laserPowerW int) Comparison {
	var cmp Comparison

	// Solar wind branch.
	pressure, pErr := SolarWindPressure(env.ProtonMass, env.WindDensity, env.WindVelocity)
	cmp.WindPressure = QuantityResult{pressure, pErr}
	areaErr := checkRange("sail area", sailAreaM2, MinSailArea, MaxSailArea)
	switch {
	case pErr != nil:
		cmp.SailForce = QuantityResult{Err: pErr}
	case areaErr != nil:
		cmp.SailForce = QuantityResult{Err: areaErr}
	default:
		force, err := ForceFromPressure(pressure, unit.New(float64(sailAreaM2), unit.SquareMeter))
		cmp.SailForce = QuantityResult{force, err}
	}

	// Laser branch.
	energy, eErr := PhotonEnergy(env.Wavelength)
	cmp.PhotonEnergy = QuantityResult{energy, eErr}
	momentum, mErr := PhotonMomentum(env.Wavelength)
	cmp.PhotonMomentum = QuantityResult{momentum, mErr}
	powerErr := checkRange("laser power", laserPowerW, MinLaserPower, MaxLaserPower)
	switch {
	case eErr != nil:
		cmp.PhotonFlux = ScalarResult{Err: eErr}
	case powerErr != nil:
		cmp.PhotonFlux = ScalarResult{Err: powerErr}
	default:
		rate, err := PhotonFlux(unit.New(float64(laserPowerW), unit.Watt), energy)
		cmp.PhotonFlux = ScalarResult{rate, err}
	}
	switch {
	case cmp.PhotonFlux.Err != nil:
		cmp.LaserForce = QuantityResult{Err: cmp.PhotonFlux.Err}
	case mErr != nil:
		cmp.LaserForce = QuantityResult{Err: mErr}
	default:
		force, err := ForceFromPhotonFlux(cmp.PhotonFlux.Value, momentum)
		cmp.LaserForce = QuantityResult{force, err}
	}

	// Figure of merit.
	switch {
	case cmp.LaserForce.Err != nil:
		cmp.Ratio = ScalarResult{Err: cmp.LaserForce.Err}
	case cmp.SailForce.Err != nil:
		cmp.Ratio = ScalarResult{Err: cmp.SailForce.Err}
	default:
		ratio, err := unit.Div(cmp.LaserForce.Quantity, cmp.SailForce.Quantity)
		if err != nil {
			cmp.Ratio = ScalarResult{Err: err}
		} else {
			cmp.Ratio = ScalarResult{Value: ratio.Magnitude()}
		}
	}
	return cmp
}
