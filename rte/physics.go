package rte

import "github.com/udawtr/mwrt-go/constants"

// physical constants used by the routines, resolved by name at init
var (
	rwatvap     = mustConstant("Rwatvap")
	earthRadius = mustConstant("EarthRadius")
	tcosmicbkg  = mustConstant("Tcosmicbkg")
	planckConst = mustConstant("planck")
	boltzmann   = mustConstant("boltzmann")
	light       = mustConstant("light")
)

func mustConstant(name string) float64 {
	v, err := constants.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}
