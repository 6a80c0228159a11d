package absmodel

import "math"

// N2AbsModel computes collision-induced absorption of dry air.
type N2AbsModel struct {
	model Model

	l, m, n float64 // strength, temperature exponent and O2 collision factor
	flat    bool    // no frequency dependence of the strength
}

// NewN2AbsModel builds the nitrogen continuum for model.
func NewN2AbsModel(model Model) (*N2AbsModel, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	a := &N2AbsModel{model: model}
	switch model {
	case Rose20, Rose20SD:
		a.l, a.m, a.n = 9.95e-14, 3.22, 1.0
	case Rose03:
		a.l, a.m, a.n = 6.5e-14, 3.6, 1.29
	case Rose98:
		a.l, a.m, a.n = 6.4e-14, 3.55, 1.0
		a.flat = true
	default:
		a.l, a.m, a.n = 6.5e-14, 3.6, 1.34
	}
	return a, nil
}

// Absorption returns the collision-induced power absorption coefficient [Np/km].
//
// """
// Args:
//   t(float64): temperature [K]
//   p(float64): pressure [mb]
//   f(float64): frequency [GHz]
// Returns:
//   float64: absorption [Np/km]
// """
func (a *N2AbsModel) Absorption(t, p, f float64) float64 {
	th := 300.0 / t
	fdepen := 1.0
	if !a.flat {
		r := f / 450.0
		fdepen = 0.5 + 0.5/(1.0+r*r)
	}
	return a.n * a.l * fdepen * p * p * f * f * math.Pow(th, a.m)
}
