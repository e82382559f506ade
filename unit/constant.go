package unit

// Physical constants. ProtonMass is CODATA 2018; Planck and SpeedOfLight are
// exact since the 2019 SI redefinition.
var (
	// ProtonMass is the rest mass of the proton.
	ProtonMass = New(1.67262192369e-27, Kilogram)
	// Planck is the Planck constant h.
	Planck = New(6.62607015e-34, JouleSecond)
	// SpeedOfLight is c in vacuum.
	SpeedOfLight = New(299792458, MeterPerSecond)
)
