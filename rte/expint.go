package rte

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
)

// ExpInt integrates the profile x over the layers ds between levels ibeg and
// iend, assuming x decays exponentially across each layer. xds[i] holds the
// integral over layer i and sxds the sum scaled by factor.
//
// zeroflg selects the layer value when one end of a layer is zero:
// 0 sets it to zero, anything else to the arithmetic mean.
//
// A negative x stops the integration; the partial result is returned with
// ErrNegativeProfile.
//
// """
// Args:
//   zeroflg(int): zero handling (0: layer=0, 1: layer=mean)
//   x([]float64): profile
//   ds([]float64): layer path lengths [km]
//   ibeg(int): lower level
//   iend(int): upper level
//   factor(float64): multiplier of the result (e.g. unit change)
// Returns:
//   sxds(float64): integral of x*ds from ibeg to iend
//   xds([]float64): integral over each layer
// """
func ExpInt(zeroflg int, x, ds []float64, ibeg, iend int, factor float64) (sxds float64, xds []float64, err error) {
	xds = make([]float64, len(ds))
	if iend >= len(x) || iend >= len(ds) || ibeg < 0 {
		return 0, xds, fmt.Errorf("%w: levels %d..%d of %d/%d", ErrLength, ibeg, iend, len(x), len(ds))
	}

	for i := ibeg + 1; i <= iend; i++ {
		x0, x1 := x[i-1], x[i]

		var xlayer float64
		switch {
		case x0 < 0 || x1 < 0:
			logger := logging.GetLogger(LoggerName)
			logger.Warnf("negative value in exponential integration at level %d", i)
			return sxds * factor, xds, fmt.Errorf("%w at level %d", ErrNegativeProfile, i)
		case math.Abs(x1-x0) < 1e-9:
			xlayer = x1
		case x0 == 0 || x1 == 0:
			if zeroflg == 0 {
				xlayer = 0
			} else {
				xlayer = (x1 + x0) * 0.5
			}
		default:
			xlayer = (x1 - x0) / math.Log(x1/x0)
		}

		xds[i] = xlayer * ds[i]
		sxds += xds[i]
	}

	return sxds * factor, xds, nil
}
