package rte

import "fmt"

// Refractivity holds the dry and wet refractivity (N units) and the
// refractive index of each level.
type Refractivity struct {
	Dry   []float64
	Wet   []float64
	Index []float64
}

// Refract computes refractivity profiles from pressure p (mb), temperature
// tk (K) and vapor pressure e (mb) with the equations of Thayer (1974),
// intended for frequencies below 20 GHz.
func Refract(p, tk, e []float64) (Refractivity, error) {
	nl := len(p)
	if len(tk) != nl || len(e) != nl {
		return Refractivity{}, fmt.Errorf("%w: p=%d tk=%d e=%d", ErrLength, nl, len(tk), len(e))
	}
	r := Refractivity{
		Dry:   make([]float64, nl),
		Wet:   make([]float64, nl),
		Index: make([]float64, nl),
	}

	for i := 0; i < nl; i++ {
		// dry air pressure and celsius temperature
		pa := p[i] - e[i]
		tc := tk[i] - 273.16
		tk2 := tk[i] * tk[i]
		tc2 := tc * tc

		// inverse compressibility
		rza := 1.0 + pa*(5.79e-07*(1.0+0.52/tk[i])-0.00094611*tc/tk2)
		rzw := 1.0 + 1650.0*(e[i]/(tk[i]*tk2))*(1.0-0.01317*tc+0.000175*tc2+1.44e-06*tc2*tc)

		r.Wet[i] = (64.79*(e[i]/tk[i]) + 377600.0*(e[i]/tk2)) * rzw
		r.Dry[i] = 77.6036 * (pa / tk[i]) * rza
		r.Index[i] = 1.0 + (r.Dry[i]+r.Wet[i])*1e-06
	}
	return r, nil
}
