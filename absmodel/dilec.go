package absmodel

import (
	"math"
	"math/cmplx"
)

// Dilec12 returns the complex relative permittivity of liquid water
// (Rosenkranz 2015 fit, static term after Patek et al. 2009).
// The imaginary part is negative for an absorbing medium.
//
// """
// Args:
//   f(float64): frequency [GHz]
//   tk(float64): temperature [K]
// Returns:
//   complex128: permittivity
// """
func Dilec12(f, tk float64) complex128 {
	tc := tk - 273.15
	z := complex(0, f)
	theta := 300.0 / tk

	kappa := complex(-43.7527*math.Pow(theta, 0.05)+
		299.504*math.Pow(theta, 1.47)-
		399.364*math.Pow(theta, 2.11)+
		221.327*math.Pow(theta, 2.31), 0)

	// principal relaxation
	delta := complex(80.69715*math.Exp(-tc/226.45), 0)
	sd := complex(1164.023*math.Exp(-651.4728/(tc+133.07)), 0)
	kappa -= delta * z / (sd + z)

	// damped resonance in the far infrared
	hdelta := complex(4.008724*math.Exp(-tc/103.05)/2.0, 0)
	f1 := 10.46012 + 0.1454962*tc + 6.3267156e-02*tc*tc + 9.3786645e-04*tc*tc*tc
	z1 := complex(-0.75, 1.0) * complex(f1, 0)
	z2 := cmplx.Conj(z1)
	kappa -= hdelta * (z/(z-z1) + z/(z-z2))

	return kappa
}

// doubleDebye returns the permittivity of liquid water after Liebe, Hufford
// and Manabe (1991) with a temperature independent high-frequency limit.
func doubleDebye(f, tk float64) complex128 {
	theta1 := 1.0 - 300.0/tk
	eps0 := 77.66 - 103.3*theta1
	eps1 := 0.0671 * eps0
	eps2 := 3.52
	fp := (316.0*theta1+146.4)*theta1 + 20.2
	fs := 39.8 * fp
	return complex(eps0-eps1, 0)/complex(1.0, f/fp) +
		complex(eps1-eps2, 0)/complex(1.0, f/fs) +
		complex(eps2, 0)
}
