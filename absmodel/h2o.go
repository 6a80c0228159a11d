package absmodel

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/udawtr/mwrt-go/constants"
)

const (
	db2np = constants.Db2Np
	// rvap is the gas constant of water vapor in kPa m3 / (g K).
	rvap = 0.01 * 8.31451 / constants.MolarH2O
	// cutoff is the distance from line center beyond which a resonance is dropped [GHz].
	cutoff = 750.0
	// cloughBase is the cutoff squared used in the local line base.
	cloughBase = cutoff * cutoff
	// sqrtPi is used by the speed-dependent shape.
	sqrtPi = 1.77245385090551603
)

// H2OAbsModel computes water vapor absorption for one model and line table.
type H2OAbsModel struct {
	model  Model
	family H2OFamily
	lines  *H2OLines

	pvapDivisor float64 // rho*t/pvapDivisor gives vapor pressure in mb
	denFactor   float64 // molecules per g/m3 of vapor
	fixedCont   bool    // rose98/rose03 continuum coefficients
}

// NewH2OAbsModel builds the water vapor absorption for model.
// A nil lines selects the built-in table for model.
func NewH2OAbsModel(model Model, lines *H2OLines) (*H2OAbsModel, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	if lines == nil {
		ll, err := DefaultH2OLines(model)
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

	m := &H2OAbsModel{
		model:       model,
		family:      model.H2OFamily(),
		lines:       lines,
		pvapDivisor: 216.68,
		denFactor:   3.344e16,
	}

	switch model {
	case Rose98, Rose03, Rose16, Rose17:
		m.pvapDivisor = 217.0
	}
	switch model {
	case Rose98, Rose03, Rose16:
		m.denFactor = 3.335e16
	}
	switch model {
	case Rose98, Rose03:
		m.fixedCont = true
	}

	return m, nil
}

// Model returns the model the absorption was built for.
func (m *H2OAbsModel) Model() Model {
	return m.model
}

// Absorption returns the line (npp) and continuum (ncpp) terms of the water
// vapor absorption, in units that give Np/km once multiplied by 0.182*frq*db2np.
//
// """
// Args:
//   pdrykpa(float64): dry air pressure [kPa]
//   v(float64): 300/T
//   ekpa(float64): water vapor pressure [kPa]
//   frq(float64): frequency [GHz]
// Returns:
//   npp(float64): line term
//   ncpp(float64): continuum term
// """
func (m *H2OAbsModel) Absorption(pdrykpa, v, ekpa, frq float64) (npp, ncpp float64, err error) {
	if frq <= 0 {
		return 0, 0, fmt.Errorf("%w: %g GHz", ErrFrequency, frq)
	}

	ll := m.lines
	factor := 0.182 * frq
	t := 300.0 / v
	p := (pdrykpa + ekpa) * 10.0
	rho := ekpa * 10.0 / (rvap * t)
	f := frq

	if rho <= 0 {
		return 0, 0, fmt.Errorf("%w: rho=%g", ErrNoVapor, rho)
	}

	pvap := rho * t / m.pvapDivisor
	pda := p - pvap
	den := m.denFactor * rho

	// continuum
	ti := ll.Reftcon / t
	var con float64
	if m.fixedCont {
		con = (5.43e-10*pda*math.Pow(ti, 3) + 1.8e-08*pvap*math.Pow(ti, 7.5)) * pvap * f * f
	} else {
		con = (ll.Cf*pda*math.Pow(ti, ll.Xcf) + ll.Cs*pvap*math.Pow(ti, ll.Xcs)) * pvap * f * f
	}

	// resonances
	ti = ll.Reftline / t
	tiln := math.Log(ti)
	ti2 := math.Exp(2.5 * tiln)

	sum := 0.0
	for i := 0; i < ll.Len(); i++ {
		s := ll.S1[i] * ti2 * math.Exp(ll.B2[i]*(1.0-ti))

		var res float64
		switch m.family {
		case H2OSpeedDependent:
			res = m.speedDependent(i, f, pda, pvap, ti, tiln)
		default:
			res = m.lorentz(i, f, pda, pvap, ti, tiln)
		}

		r := f / ll.Fl[i]
		sum += s * res * r * r
	}

	npp = 3.183e-05 * den * sum / db2np / factor
	ncpp = con / db2np / factor
	return npp, ncpp, nil
}

// lorentz returns the shape factor sum of both resonances of line i.
func (m *H2OAbsModel) lorentz(i int, f, pda, pvap, ti, tiln float64) float64 {
	ll := m.lines
	widthf := ll.W0[i] * pda * math.Pow(ti, ll.X[i])
	widths := ll.W0s[i] * pvap * math.Pow(ti, ll.Xs[i])
	width := widthf + widths

	var shift float64
	inclusive := false
	switch m.model {
	case Rose98:
		inclusive = true
	case Rose03:
		shift = ll.Sr[i] * width
		inclusive = true
	case Rose16, Rose17:
		shift = ll.Sr[i] * widthf
		inclusive = true
	case Rose18:
		shift = ll.Sh[i]*pda*math.Pow(ti, ll.Xh[i]) + ll.Shs[i]*pvap*math.Pow(ti, ll.Xhs[i])
	default:
		shift = m.shift(i, pda, pvap, ti, tiln)
	}

	wsq := width * width
	base := width / (cloughBase + wsq)
	res := 0.0
	for _, df := range [2]float64{f - ll.Fl[i] - shift, f + ll.Fl[i] + shift} {
		adf := math.Abs(df)
		if adf < cutoff || (inclusive && adf == cutoff) {
			res += width/(df*df+wsq) - base
		}
	}
	return res
}

// shift is the foreign plus self line shift with log-temperature factors.
func (m *H2OAbsModel) shift(i int, pda, pvap, ti, tiln float64) float64 {
	ll := m.lines
	shiftf := ll.Sh[i] * pda * (1.0 - ll.Aair[i]*tiln) * math.Pow(ti, ll.Xh[i])
	shifts := ll.Shs[i] * pvap * (1.0 - ll.Aself[i]*tiln) * math.Pow(ti, ll.Xhs[i])
	return shiftf + shifts
}

// speedDependent returns the shape factor of line i using the
// speed-dependent Voigt profile near the positive resonance.
func (m *H2OAbsModel) speedDependent(i int, f, pda, pvap, ti, tiln float64) float64 {
	ll := m.lines
	width0 := ll.W0[i]*pda*math.Pow(ti, ll.X[i]) + ll.W0s[i]*pvap*math.Pow(ti, ll.Xs[i])
	width2 := ll.W2[i]*pda + ll.W2s[i]*pvap
	shift := m.shift(i, pda, pvap, ti, tiln)

	wsq := width0 * width0
	base := width0 / (cloughBase + wsq)

	res := 0.0
	for j, df := range [2]float64{f - ll.Fl[i] - shift, f + ll.Fl[i] + shift} {
		if width2 > 0 && j == 0 && math.Abs(df) < 10*width0 {
			denom := complex(width2, 0)
			if m.model == Rose20SD && i == 0 {
				delta2 := ll.D2air*pda + ll.D2self*pvap
				denom = complex(width2, -delta2)
				df += 1.5 * delta2
			}
			xc := complex(width0-1.5*width2, df) / denom
			xrt := cmplx.Sqrt(xc)
			pxw := sqrtPi * xrt * dcerror(-imag(xrt), real(xrt))
			sd := 2.0 * (1.0 - pxw) / denom
			res += real(sd) - base
		} else if math.Abs(df) < cutoff {
			res += width0/(df*df+wsq) - base
		}
	}
	return res
}
