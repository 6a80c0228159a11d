package rte

import (
	"fmt"
	"math"
)

// Vapor computes vapor pressure e (mb) and vapor density rho (g/m3) from
// temperature tk (K) and relative humidity rh (fraction), using the
// Goff-Gratch saturation formulation (List, 1963). When ice is set the
// saturation pressure below 263.16 K is taken over ice.
//
// """
// Args:
//   tk([]float64): temperature [K]
//   rh([]float64): relative humidity [-]
//   ice(bool): use saturation over ice below 263.16 K
// Returns:
//   e([]float64): vapor pressure [mb]
//   rho([]float64): vapor density [g/m3]
// """
func Vapor(tk, rh []float64, ice bool) (e, rho []float64, err error) {
	if len(rh) != len(tk) {
		return nil, nil, fmt.Errorf("%w: tk=%d rh=%d", ErrLength, len(tk), len(rh))
	}
	rvap := rwatvap * 1e-5

	e = make([]float64, len(tk))
	rho = make([]float64, len(tk))
	for i := range tk {
		es := SaturationPressure(tk[i], ice)
		e[i] = rh[i] * es
		rho[i] = e[i] / (rvap * tk[i])
	}
	return e, rho, nil
}

// SaturationPressure returns the saturation vapor pressure (mb) at tk.
func SaturationPressure(tk float64, ice bool) float64 {
	var es float64
	if ice && tk < 263.16 {
		y := 273.16 / tk
		es = -9.09718*(y-1.0) - 3.56654*math.Log10(y) +
			0.876793*(1.0-1.0/y) + math.Log10(6.1071)
	} else {
		y := 373.16 / tk
		es = -7.90298*(y-1.0) + 5.02808*math.Log10(y) -
			1.3816e-7*(math.Pow(10, 11.344*(1.0-1.0/y))-1.0) +
			8.1328e-3*(math.Pow(10, -3.49149*(y-1.0))-1.0) +
			math.Log10(1013.246)
	}
	return math.Pow(10, es)
}
