package absmodel

import (
	"math"
	"math/cmplx"
)

// rational approximation coefficients of Hui, Armstrong & Wray (1978)
var (
	cerrA = [7]float64{
		122.607931777104326, 214.382388694706425, 181.928533092181549,
		93.155580458138441, 30.180142196210589, 5.912626209773153,
		0.564189583562615,
	}
	cerrB = [7]float64{
		122.60793177387535, 352.730625110963558, 457.334478783897737,
		348.703917719495792, 170.354001821091472, 53.992906912940207,
		10.479857114260399,
	}
)

// dcerror returns the Faddeeva function w(z) = exp(-z^2)*erfc(-iz) for z = x + iy.
// The rational approximation is evaluated in the upper half plane and
// reflected for y < 0.
func dcerror(x, y float64) complex128 {
	zh := complex(math.Abs(y), -x)

	asum := complex(cerrA[6], 0)
	for i := 5; i >= 0; i-- {
		asum = asum*zh + complex(cerrA[i], 0)
	}

	// monic degree-7 denominator
	bsum := zh + complex(cerrB[6], 0)
	for i := 5; i >= 0; i-- {
		bsum = bsum*zh + complex(cerrB[i], 0)
	}

	w := asum / bsum
	if y >= 0 {
		return w
	}

	z := complex(x, y)
	return 2*cmplx.Exp(-z*z) - cmplx.Conj(w)
}
