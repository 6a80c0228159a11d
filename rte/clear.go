package rte

import (
	"errors"
	"fmt"

	"github.com/udawtr/mwrt-go/absmodel"
	"github.com/udawtr/mwrt-go/constants"
)

// LineAbsorber is a gas absorption split into line and continuum terms,
// as computed by absmodel.H2OAbsModel and absmodel.O2AbsModel.
type LineAbsorber interface {
	Absorption(pdrykpa, v, ekpa, frq float64) (npp, ncpp float64, err error)
}

// CollisionAbsorber is the collision-induced continuum of absmodel.N2AbsModel.
type CollisionAbsorber interface {
	Absorption(t, p, f float64) float64
}

// ClearSkyAbsorption computes the water vapor (awet) and dry air (adry)
// absorption profiles (Np/km) at frq GHz from pressure p (mb), temperature
// tk (K) and vapor pressure e (mb).
//
// n2 is added to the dry term at the dry air pressure; pass nil when the
// oxygen continuum already includes it. Levels without vapor have no wet
// absorption.
func ClearSkyAbsorption(p, tk, e []float64, frq float64, h2o, o2 LineAbsorber, n2 CollisionAbsorber) (awet, adry []float64, err error) {
	nl := len(p)
	if len(tk) != nl || len(e) != nl {
		return nil, nil, fmt.Errorf("%w: p=%d tk=%d e=%d", ErrLength, nl, len(tk), len(e))
	}

	awet = make([]float64, nl)
	adry = make([]float64, nl)
	factor := 0.182 * frq

	for i := 0; i < nl; i++ {
		// inverse temperature; wet and dry pressure in kPa
		v := 300.0 / tk[i]
		ekpa := e[i] / 10.0
		pdrykpa := p[i]/10.0 - ekpa

		npp, ncpp, err := h2o.Absorption(pdrykpa, v, ekpa, frq)
		switch {
		case errors.Is(err, absmodel.ErrNoVapor):
			awet[i] = 0
		case err != nil:
			return nil, nil, fmt.Errorf("water vapor absorption at level %d: %w", i, err)
		default:
			awet[i] = factor * (npp + ncpp) * constants.Db2Np
		}

		npp, ncpp, err = o2.Absorption(pdrykpa, v, ekpa, frq)
		if err != nil {
			return nil, nil, fmt.Errorf("oxygen absorption at level %d: %w", i, err)
		}
		adry[i] = factor * (npp + ncpp) * constants.Db2Np
		if n2 != nil {
			adry[i] += n2.Absorption(tk[i], pdrykpa*10.0, frq)
		}
	}
	return awet, adry, nil
}
