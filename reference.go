package probe

import (
	"fmt"
	"strings"

	"github.com/dcgrigsby/probe/unit"
)

// Reference solar wind: the slow stream a sail rides near 1 AU.
var (
	// ReferenceWindDensity is a typical slow-wind proton density.
	ReferenceWindDensity = unit.New(7.0, unit.PerCubicCentimeter)
	// ReferenceWindVelocity is a typical slow-wind bulk speed.
	ReferenceWindVelocity = unit.New(450, unit.KilometerPerSecond)
)

// Laser is an emitter the sail can be driven by.
type Laser struct {
	Name       string
	Wavelength unit.Quantity
}

func (l Laser) String() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.Wavelength)
}

// Laser presets selectable by name.
var (
	// ReferenceLaser is the near-infrared line every reference figure in this
	// package was sized against.
	ReferenceLaser = Laser{"reference", unit.New(780, unit.Nanometer)}
	// RbD2 sits on the rubidium D2 line. Cheap diodes love it.
	RbD2 = Laser{"rb-d2", unit.New(780.241, unit.Nanometer)}
	// NdYAG is the solid-state workhorse.
	NdYAG = Laser{"nd:yag", unit.New(1064, unit.Nanometer)}
	// YbFiber scales to the powers beamed-sail studies dream about.
	YbFiber = Laser{"yb-fiber", unit.New(1070, unit.Nanometer)}
)

// LaserFromString returns the laser preset of the given name.
func LaserFromString(name string) (Laser, error) {
	switch strings.ToLower(name) {
	case "reference":
		return ReferenceLaser, nil
	case "rb-d2":
		return RbD2, nil
	case "nd:yag":
		return NdYAG, nil
	case "yb-fiber":
		return YbFiber, nil
	default:
		return Laser{}, fmt.Errorf("probe: unknown laser %q", name)
	}
}

// DefaultEnvironment returns the reference environment: CODATA proton mass,
// slow solar wind at 1 AU, reference laser line.
func DefaultEnvironment() Environment {
	return Environment{
		ProtonMass:   unit.ProtonMass,
		WindDensity:  ReferenceWindDensity,
		WindVelocity: ReferenceWindVelocity,
		Wavelength:   ReferenceLaser.Wavelength,
	}
}
