package absmodel

import (
	"fmt"
	"math"
)

// O2AbsModel computes oxygen absorption for one model and line table.
type O2AbsModel struct {
	model Model
	gen   O2Generation
	lines *O2Lines
	n2    *N2AbsModel // nil when the continuum carries no nitrogen term

	pvapDivisor float64 // rho*t/pvapDivisor gives vapor pressure in mb
	selfBroad   float64 // water vapor broadening relative to dry air
	scale       float64 // n/pi conversion of the line sum to Np/km
	debye       float64 // non-resonant intensity
	clamp       bool    // floor the resonant term at zero
	gain        float64 // final multiplier of the resonant term
}

// NewO2AbsModel builds the oxygen absorption for model.
// A nil lines selects the built-in table for model.
func NewO2AbsModel(model Model, lines *O2Lines) (*O2AbsModel, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	if lines == nil {
		ll, err := DefaultO2Lines(model)
		if err != nil {
			return nil, err
		}
		lines = ll
	} else {
		ll := lines.clone()
		if err := ll.normalize(); err != nil {
			return nil, err
		}
		lines = ll
	}

	m := &O2AbsModel{
		model:       model,
		gen:         model.O2Generation(),
		lines:       lines,
		pvapDivisor: 216.68,
		selfBroad:   1.2,
		scale:       1.6097e11,
		debye:       1.584e-17,
		clamp:       true,
		gain:        1.0,
	}

	switch model {
	case Rose98, Rose03, Rose16, Rose17, Rose18:
		m.pvapDivisor = 217.0
	}
	switch model {
	case Rose98, Rose03, Rose16:
		m.selfBroad = 1.1
	}
	if m.gen == O2Legacy {
		m.scale = 5.034e11 / 3.14159
		m.debye = 1.6e-17
	}
	switch model {
	case Rose98:
		m.clamp = false
	case Rose20, Rose20SD:
		m.gain = 1.004
	}

	if model.O2IncludesN2() {
		n2, err := NewN2AbsModel(model)
		if err != nil {
			return nil, err
		}
		m.n2 = n2
	}

	return m, nil
}

// Model returns the model the absorption was built for.
func (m *O2AbsModel) Model() Model {
	return m.model
}

// Absorption returns the resonant (npp) and non-resonant (ncpp) terms of the
// oxygen absorption, in units that give Np/km once multiplied by 0.182*frq*db2np.
// The nitrogen term is part of ncpp for models whose continuum includes it.
func (m *O2AbsModel) Absorption(pdrykpa, v, ekpa, frq float64) (npp, ncpp float64, err error) {
	if frq <= 0 {
		return 0, 0, fmt.Errorf("%w: %g GHz", ErrFrequency, frq)
	}

	ll := m.lines
	factor := 0.182 * frq
	temp := 300.0 / v
	pres := (pdrykpa + ekpa) * 10.0
	vapden := ekpa * 10.0 / (rvap * temp)
	freq := frq

	th := 300.0 / temp
	th1 := th - 1.0
	b := math.Pow(th, ll.X)
	preswv := vapden * temp / m.pvapDivisor
	presda := pres - preswv
	den := 0.001 * (presda*b + m.selfBroad*preswv*th)

	// width of the 118 GHz line in the legacy algorithm
	dens := den
	switch m.model {
	case Rose03:
		dens = 0.001 * (presda*math.Pow(th, 0.9) + 1.1*preswv*th)
	case Rose98:
		dens = 0.001 * (presda + 1.1*preswv) * th
	}

	dfnr := ll.Wb300 * den
	pe2 := den * den

	sum := 0.0
	for k := 0; k < ll.Len(); k++ {
		fcen := ll.F[k]
		df := ll.W300[k] * den
		str := ll.S300[k] * math.Exp(-ll.Be[k]*th1)

		var sf1, sf2 float64
		switch m.gen {
		case O2Legacy:
			if k == 0 {
				df = ll.W300[0] * dens
			}
			y := 0.001 * pres * b * (ll.Y300[k] + ll.V[k]*th1)
			sf1 = (df + (freq-fcen)*y) / ((freq-fcen)*(freq-fcen) + df*df)
			sf2 = (df - (freq+fcen)*y) / ((freq+fcen)*(freq+fcen) + df*df)
		case O2FirstOrder:
			y := den * (ll.Y300[k] + ll.V[k]*th1)
			sf1 = (df + (freq-fcen)*y) / ((freq-fcen)*(freq-fcen) + df*df)
			sf2 = (df - (freq+fcen)*y) / ((freq+fcen)*(freq+fcen) + df*df)
		default:
			y := den * (ll.Y0[k] + ll.Y1[k]*th1)
			dnu := pe2 * (ll.Dnu0[k] + ll.Dnu1[k]*th1)
			gfac := 1.0 + pe2*(ll.G0[k]+ll.G1[k]*th1)
			del1 := freq - fcen - dnu
			del2 := freq + fcen + dnu
			sf1 = (df*gfac + del1*y) / (del1*del1 + df*df)
			sf2 = (df*gfac - del2*y) / (del2*del2 + df*df)
		}

		r := freq / fcen
		sum += str * (sf1 + sf2) * r * r
	}

	th3 := th * th * th
	o2abs := m.scale * sum * presda * th3
	if m.clamp {
		o2abs = math.Max(o2abs, 0.0)
	}
	o2abs *= m.gain

	con := m.debye * freq * freq * dfnr / (th * (freq*freq + dfnr*dfnr))
	con *= m.scale * presda * th3
	if m.n2 != nil {
		con += m.n2.Absorption(temp, pres, freq)
	}

	npp = o2abs / db2np / factor
	ncpp = con / db2np / factor
	return npp, ncpp, nil
}
