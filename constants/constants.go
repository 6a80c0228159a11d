package constants

import "fmt"

const (
	Rwatvap     = 461.52          // Gas constant of water vapor [J/(kg K)]
	EarthRadius = 6370.949        // Earth's radius [km]
	Tcosmicbkg  = 2.736           // Cosmic background temperature [K]
	Planck      = 6.6260755e-34   // Planck constant [J s]
	Boltzmann   = 1.380658e-23    // Boltzmann constant [J/K]
	Light       = 2.99792458e8    // Speed of light [m/s]
	MolarH2O    = 18.01528        // Molar mass of water [g/mol]
	MolarDryAir = 28.9644         // Molar mass of dry air [g/mol]
	Db2Np       = 0.2302585092994 // ln(10)/10, dB to Np
)

var byName = map[string]float64{
	"Rwatvap":     Rwatvap,
	"EarthRadius": EarthRadius,
	"Tcosmicbkg":  Tcosmicbkg,
	"planck":      Planck,
	"boltzmann":   Boltzmann,
	"light":       Light,
}

// Get returns the physical constant registered under name.
func Get(name string) (float64, error) {
	v, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("constants: unknown constant %q", name)
	}
	return v, nil
}
