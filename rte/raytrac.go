package rte

import (
	"fmt"
	"math"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

// rayBoundary is the state of the ray at the lower boundary of a layer.
type rayBoundary struct {
	phi   float64 // earth central angle from the antenna [rad]
	tau   float64 // accumulated refractive bending [rad]
	r     float64 // distance from the earth center [km]
	tanth float64 // tangent of the local elevation angle
}

// RayTrac computes the slant path length of each layer (km) for a ray leaving
// the antenna at elevation angle (degrees), after the ray-tracing algorithm of
// Dutton, Thayer and Westwater (Bean and Dutton, Radio Meteorology, fig. 3.20).
// z is the height above the antenna (km), refindx the refractive index of each
// level and z0 the antenna height (km msl). ds[0] is 0 and ds[i] spans levels
// i-1 and i.
//
// If the ray ducts, the lengths of the layers traced so far are returned with
// ErrDucting.
func RayTrac(z, refindx []float64, angle, z0 float64) ([]float64, error) {
	nl := len(z)
	if len(refindx) != nl {
		return nil, fmt.Errorf("%w: %d heights, %d refractive indices", ErrLength, nl, len(refindx))
	}
	if nl == 0 {
		return []float64{}, nil
	}

	// indices below 1 blow up the log mean
	if floats.Min(refindx) < 1 {
		return nil, ErrNegativeRefractiveIndex
	}

	ds := make([]float64, nl)

	// near zenith the path is the height difference
	if a := math.Abs(angle); a >= 89 && a <= 91 {
		for i := 1; i < nl; i++ {
			ds[i] = z[i] - z[i-1]
		}
		return ds, nil
	}

	re := earthRadius
	theta0 := degreeToRad(angle)
	rs := re + z[0] + z0
	costh0 := math.Cos(theta0)
	sina := math.Sin(theta0 * 0.5)
	a0 := 2.0 * sina * sina

	lower := rayBoundary{phi: 0, tau: 0, r: rs, tanth: math.Tan(theta0)}

	for i := 1; i < nl; i++ {
		r := re + z[i] + z0
		zi := z[i] - z[0]
		nb, nt := refindx[i-1], refindx[i]

		var refbar float64
		if nb == nt || nb == 1.0 || nt == 1.0 {
			refbar = (nb + nt) * 0.5
		} else {
			refbar = 1.0 + (nb-nt)/math.Log((nb-1.0)/(nt-1.0))
		}

		argdth := zi/rs - (refindx[0]-nt)*costh0/nt
		argth := 0.5 * (a0 + argdth) / r
		if argth <= 0 {
			logger := logging.GetLogger(LoggerName)
			logger.Warnf("ray ducting at %g degrees, level %d (z=%g km)", angle, i, z[i])
			return ds[:i], fmt.Errorf("%w at %g degrees, level %d", ErrDucting, angle, i)
		}

		// d-theta for this layer
		sint := math.Sqrt(rs * argth)
		theta := 2.0 * math.Asin(sint)
		var dtheta float64
		if theta-2.0*theta0 <= 0 {
			dendth := 2.0 * (sint + sina) * math.Cos((theta+theta0)*0.25)
			sind4 := (0.5*argdth - zi*argth) / dendth
			dtheta = 4.0 * math.Asin(sind4)
			theta = theta0 + dtheta
		} else {
			dtheta = theta - theta0
		}

		// d-tau for this layer (Bean and Dutton eq. 3.71)
		tanth := math.Tan(theta)
		cthbar := (1.0/tanth + 1.0/lower.tanth) * 0.5
		dtau := cthbar * (nb - nt) / refbar
		tau := lower.tau + dtau
		phi := dtheta + tau

		dz := z[i] - z[i-1]
		sphi := math.Sin((phi - lower.phi) * 0.5)
		ds[i] = math.Sqrt(dz*dz + 4.0*r*lower.r*sphi*sphi)
		if dtau != 0 {
			dtaua := math.Abs(tau - lower.tau)
			ds[i] *= dtaua / (2.0 * math.Sin(dtaua*0.5))
		}

		lower = rayBoundary{phi: phi, tau: tau, r: r, tanth: tanth}
	}

	return ds, nil
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
