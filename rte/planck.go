package rte

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

// PlanckResult is the modified Planck radiance bookkeeping of one channel.
// Profile entries at level i integrate from the antenna to level i.
type PlanckResult struct {
	Hvk     float64   // h*f/k [K]
	Boft    []float64 // modified Planck function of each level temperature
	Boftatm []float64 // atmospheric radiance integrated (0,i)
	Tauprof []float64 // optical depth integrated (0,i) [Np]
	Boftotl float64   // total radiance, atmosphere plus background
	Boftmr  float64   // radiance of the mean radiating temperature
	Bakgrnd float64   // cosmic background term
}

// Planck computes the modified Planck function (Schroeder and Westwater,
// 1992, eq. 4) for the level temperatures tk, the atmospheric and total
// radiance and the integrated optical depth, given the optical depth of each
// layer taulay (Np, taulay[0] unused).
//
// When the total optical depth reaches ExpMax the cosmic background is
// taken as fully attenuated. taulay shorter than tk gives ErrLength.
func Planck(frq float64, tk, taulay []float64) (PlanckResult, error) {
	tc := tcosmicbkg
	hvk := frq * 1e9 * planckConst / boltzmann

	nl := len(tk)
	if len(taulay) < nl {
		return PlanckResult{}, fmt.Errorf("%w: %d temperatures, %d layer optical depths", ErrLength, nl, len(taulay))
	}
	res := PlanckResult{
		Hvk:     hvk,
		Boft:    make([]float64, nl),
		Boftatm: make([]float64, nl),
		Tauprof: make([]float64, nl),
	}
	if nl == 0 {
		return res, nil
	}

	lay := make([]float64, nl)
	copy(lay[1:], taulay[1:nl])
	floats.CumSum(res.Tauprof, lay)

	res.Boft[0] = Tk2BMod(hvk, tk[0])
	for i := 1; i < nl; i++ {
		res.Boft[i] = Tk2BMod(hvk, tk[i])
		ext := math.Exp(-lay[i])
		boftlay := (res.Boft[i-1] + res.Boft[i]*ext) / (1.0 + ext)
		batmlay := boftlay * math.Exp(-res.Tauprof[i-1]) * (1.0 - ext)
		res.Boftatm[i] = res.Boftatm[i-1] + batmlay
	}

	// cosmic background
	tau := res.Tauprof[nl-1]
	batm := res.Boftatm[nl-1]
	if tau < ExpMax {
		res.Bakgrnd = Tk2BMod(hvk, tc) * math.Exp(-tau)
		res.Boftotl = res.Bakgrnd + batm
		res.Boftmr = batm / (1.0 - math.Exp(-tau))
	} else {
		res.Bakgrnd = 0
		res.Boftotl = batm
		res.Boftmr = batm
	}
	return res, nil
}

// Tk2BMod returns the modified Planck radiance of temperature t.
func Tk2BMod(hvk, t float64) float64 {
	return 1.0 / (math.Exp(hvk/t) - 1.0)
}

// Bright returns the brightness temperature of the modified Planck radiance boft.
func Bright(hvk, boft float64) float64 {
	return hvk / math.Log(1.0+1.0/boft)
}

// CldTmr computes the mean radiating temperature (K) of the cloud between
// levels ibase and itop. The cloud is assumed to be the lowest one; hvk,
// tauprof and boftatm come from Planck.
func CldTmr(ibase, itop int, hvk float64, tauprof, boftatm []float64) (float64, error) {
	if ibase < 0 || itop >= len(tauprof) || itop >= len(boftatm) || ibase >= itop {
		return 0, fmt.Errorf("%w: cloud levels %d..%d of %d", ErrLength, ibase, itop, len(tauprof))
	}
	if tauprof[ibase] > ExpMax {
		logger := logging.GetLogger(LoggerName)
		logger.Warnf("absorption too large to exponentiate for the lowest cloud (tau=%g)", tauprof[ibase])
		return 0, fmt.Errorf("%w: tau=%g at cloud base", ErrAbsorptionTooLarge, tauprof[ibase])
	}

	// radiance and absorption of the cloud layer
	batmcld := boftatm[itop] - boftatm[ibase]
	taucld := tauprof[itop] - tauprof[ibase]

	boftcld := batmcld * math.Exp(tauprof[ibase])
	if taucld <= ExpMax {
		boftcld /= 1.0 - math.Exp(-taucld)
	}
	return Bright(hvk, boftcld), nil
}
