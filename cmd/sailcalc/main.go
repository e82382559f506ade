// Command sailcalc compares solar-wind and laser photon thrust on a sail.
// One-shot mode prints the labeled outputs for -area and -power; -i prompts
// for input pairs and recomputes the chain per line; -sweep streams a CSV
// table over both input domains to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	kitlog "github.com/go-kit/kit/log"
	"github.com/mattn/go-isatty"

	"github.com/dcgrigsby/probe"
	"github.com/dcgrigsby/probe/unit"
)

var (
	area        int
	power       int
	laserName   string
	interactive bool
	sweep       bool
)

func init() {
	flag.IntVar(&area, "area", probe.DefaultSailArea, fmt.Sprintf("sail area in m^2 [%d, %d]", probe.MinSailArea, probe.MaxSailArea))
	flag.IntVar(&power, "power", probe.DefaultLaserPower, fmt.Sprintf("laser power in W [%d, %d]", probe.MinLaserPower, probe.MaxLaserPower))
	flag.StringVar(&laserName, "laser", probe.ReferenceLaser.Name, "laser preset (reference, rb-d2, nd:yag, yb-fiber) overriding the configured wavelength")
	flag.BoolVar(&interactive, "i", false, "prompt for area/power pairs and recompute (terminals only)")
	flag.BoolVar(&sweep, "sweep", false, "write a CSV sweep over both input domains to stdout")
}

func main() {
	flag.Parse()
	// Status goes to stderr so sweep output stays machine readable.
	logger := kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), "cmd", "sailcalc")

	env, err := probe.LoadEnvironment()
	if err != nil {
		logger.Log("level", "error", "err", err)
		os.Exit(1)
	}
	if laserName != probe.ReferenceLaser.Name {
		laser, err := probe.LaserFromString(laserName)
		if err != nil {
			logger.Log("level", "error", "err", err)
			os.Exit(1)
		}
		env.Wavelength = laser.Wavelength
		logger.Log("level", "info", "laser", laser.String())
	}

	switch {
	case sweep:
		if err := probe.WriteSweepCSV(os.Stdout, probe.StreamSweep(env, 100)); err != nil {
			logger.Log("level", "error", "err", err)
			os.Exit(1)
		}
	case interactive:
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			logger.Log("level", "error", "err", "interactive mode needs a terminal")
			os.Exit(1)
		}
		prompt(env)
	default:
		printComparison(env, area, power)
	}
}

func printComparison(env probe.Environment, areaM2, powerW int) {
	cmp := probe.CompareThrust(env, areaM2, powerW)
	fmt.Printf("=== sail %d m^2 | laser %d W at %s ===\n", areaM2, powerW, env.Wavelength)
	fmt.Printf("solar wind       n=%s  V=%s\n", env.WindDensity, env.WindVelocity)
	fmt.Printf("wind pressure    %s\n", quantityOrUndefined(cmp.WindPressure))
	fmt.Printf("sail force       %s\n", quantityOrUndefined(cmp.SailForce))
	fmt.Printf("photon energy    %s%s\n", quantityOrUndefined(cmp.PhotonEnergy), inElectronVolt(cmp.PhotonEnergy))
	fmt.Printf("photon momentum  %s\n", quantityOrUndefined(cmp.PhotonMomentum))
	fmt.Printf("photon flux      %s\n", fluxOrUndefined(cmp.PhotonFlux))
	fmt.Printf("laser force      %s\n", quantityOrUndefined(cmp.LaserForce))
	fmt.Printf("laser vs wind    %s\n", ratioOrUndefined(cmp.Ratio))
}

func quantityOrUndefined(r probe.QuantityResult) string {
	if !r.Defined() {
		return fmt.Sprintf("undefined (%s)", r.Err)
	}
	return r.Quantity.String()
}

func inElectronVolt(r probe.QuantityResult) string {
	if !r.Defined() {
		return ""
	}
	eV, err := r.Quantity.In(unit.ElectronVolt)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("  (%.4f eV)", eV)
}

func fluxOrUndefined(r probe.ScalarResult) string {
	if !r.Defined() {
		return fmt.Sprintf("undefined (%s)", r.Err)
	}
	return humanize.SIWithDigits(r.Value, 3, "photons/s")
}

func ratioOrUndefined(r probe.ScalarResult) string {
	if !r.Defined() {
		return fmt.Sprintf("undefined (%s)", r.Err)
	}
	return fmt.Sprintf("%.6g", r.Value)
}

func prompt(env probe.Environment) {
	fmt.Printf("enter `area power` pairs (m^2, W), q to quit\n")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("sail> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return
		}
		var a, p int
		if _, err := fmt.Sscanf(line, "%d %d", &a, &p); err != nil {
			fmt.Printf("need two integers, e.g. `10 500`\n")
			continue
		}
		printComparison(env, a, p)
	}
}

