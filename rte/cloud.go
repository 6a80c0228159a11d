package rte

import (
	"fmt"

	"github.com/udawtr/mwrt-go/constants"
)

// LiquidAbsorber is the cloud liquid absorption of absmodel.LiqAbsModel.
type LiquidAbsorber interface {
	Absorption(water, freq, temp float64) float64
}

// CloudyAbsorption computes the cloud liquid and ice absorption profiles
// (Np/km) at frq GHz from the liquid density denl and ice density deni
// (g/m3). Ice follows Westwater (1972, Microwave Emission from Clouds, 13-14).
func CloudyAbsorption(tk, denl, deni []float64, frq float64, liq LiquidAbsorber) (aliq, aice []float64, err error) {
	nl := len(tk)
	if len(denl) != nl || len(deni) != nl {
		return nil, nil, fmt.Errorf("%w: tk=%d denl=%d deni=%d", ErrLength, nl, len(denl), len(deni))
	}
	aliq = make([]float64, nl)
	aice = make([]float64, nl)

	// wavelength in cm
	wave := light * 100 / (frq * 1e9)

	for i := 0; i < nl; i++ {
		if denl[i] > 0 {
			aliq[i] = liq.Absorption(denl[i], frq, tk[i])
		}
		// dB/km to Np/km
		if deni[i] > 0 {
			aice[i] = (8.18645 / wave) * deni[i] * 0.000959553 * constants.Db2Np
		}
	}
	return aliq, aice, nil
}

// CldInt integrates cloud water density dencld (g/m3) along the path ds (km)
// over each cloud layer lbase[l]..ltop[l] with the linear algorithm and
// returns the path in cm.
func CldInt(dencld, ds []float64, lbase, ltop []int) (float64, error) {
	if len(lbase) != len(ltop) {
		return 0, fmt.Errorf("%w: %d cloud bases, %d cloud tops", ErrLength, len(lbase), len(ltop))
	}

	scld := 0.0
	for l := range lbase {
		if lbase[l] < 0 || ltop[l] >= len(dencld) || ltop[l] >= len(ds) {
			return 0, fmt.Errorf("%w: cloud levels %d..%d", ErrLength, lbase[l], ltop[l])
		}
		for i := lbase[l] + 1; i <= ltop[l]; i++ {
			scld += ds[i] * 0.5 * (dencld[i] + dencld[i-1])
		}
	}

	// g/m3 * km to cm
	return scld * 0.1, nil
}
