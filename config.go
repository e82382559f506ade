package probe

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dcgrigsby/probe/unit"
)

// ConfigEnvVar names the directory holding an optional conf.toml which
// overrides the reference environment.
const ConfigEnvVar = "PROBE_CONFIG"

// LoadEnvironment returns the reference environment, overridden by conf.toml
// in the directory named by PROBE_CONFIG when that variable is set. The
// returned value is owned by the caller; nothing is cached.
//
// Recognized keys: solarwind.density_percc, solarwind.velocity_kms and
// laser.wavelength_nm.
func LoadEnvironment() (Environment, error) {
	env := DefaultEnvironment()
	confPath := os.Getenv(ConfigEnvVar)
	if confPath == "" {
		return env, nil
	}
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(confPath)
	v.SetDefault("solarwind.density_percc", ReferenceWindDensity.Magnitude())
	v.SetDefault("solarwind.velocity_kms", ReferenceWindVelocity.Magnitude())
	v.SetDefault("laser.wavelength_nm", ReferenceLaser.Wavelength.Magnitude())
	if err := v.ReadInConfig(); err != nil {
		return Environment{}, fmt.Errorf("probe: %s/conf.toml not readable: %w", confPath, err)
	}

	density := v.GetFloat64("solarwind.density_percc")
	velocity := v.GetFloat64("solarwind.velocity_kms")
	wavelength := v.GetFloat64("laser.wavelength_nm")
	if density <= 0 {
		return Environment{}, fmt.Errorf("probe: solarwind.density_percc must be positive, got %v", density)
	}
	if velocity <= 0 {
		return Environment{}, fmt.Errorf("probe: solarwind.velocity_kms must be positive, got %v", velocity)
	}
	if wavelength <= 0 {
		return Environment{}, fmt.Errorf("probe: laser.wavelength_nm must be positive, got %v", wavelength)
	}
	env.WindDensity = unit.New(density, unit.PerCubicCentimeter)
	env.WindVelocity = unit.New(velocity, unit.KilometerPerSecond)
	env.Wavelength = unit.New(wavelength, unit.Nanometer)
	return env, nil
}
