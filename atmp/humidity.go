package atmp

import (
	"math"

	"github.com/udawtr/mwrt-go/constants"
)

//--------------------------------------
// humidity conversions
//--------------------------------------

// epsilon is the ratio of the molar masses of water vapor and dry air.
const epsilon = constants.MolarH2O / constants.MolarDryAir

// PPMVToGKG converts a volume mixing ratio (ppmv) of a gas of molar mass
// (g/mol) to a mass mixing ratio (g/kg of dry air).
func PPMVToGKG(ppmv, molarMass float64) float64 {
	return ppmv * 1e-3 * molarMass / constants.MolarDryAir
}

// VaporPressureFromMixingRatio returns the vapor pressure (mb) of a water
// vapor mixing ratio w (g/kg) at pressure p (mb).
func VaporPressureFromMixingRatio(w, p float64) float64 {
	r := w * 1e-3
	return p * r / (epsilon + r)
}

// MixingRatio returns the water vapor mixing ratio (g/kg) of vapor pressure
// e (mb) at pressure p (mb).
func MixingRatio(e, p float64) float64 {
	return 1e3 * epsilon * e / (p - e)
}

// RelativeHumidity returns the relative humidity (%) of vapor pressure e (mb)
// at temperature tk (K), saturation over water.
func RelativeHumidity(e, tk float64) float64 {
	return e / saturationPressure(tk) * 100
}

// saturationPressure is the Wexler-Hyland saturation vapor pressure [mb].
//
// """
// Args:
//   T(float64): temperature [K]
// Returns:
//   float64: saturation vapor pressure [mb]
// """
func saturationPressure(T float64) float64 {
	return math.Exp(-5800.2206/T+
		1.3914993-0.048640239*T+
		0.41764768*math.Pow(10, -4)*math.Pow(T, 2)-
		0.14452093*math.Pow(10, -7)*math.Pow(T, 3)+
		6.5459673*math.Log(T)) / 100
}

// DewPoint returns the dew point (K) of vapor pressure pw (mb), using the
// fits of Udagawa (1986) for 0.039 <= pw <= 123.5 mb. Outside that range
// it returns NaN.
func DewPoint(pw float64) float64 {
	if pw < 0.039 || pw > 123.50 {
		return math.NaN()
	}

	y := math.Log(pw * 100) // Pa
	y2 := y * y
	y3 := y2 * y

	var dt float64
	if pw >= 6.112 {
		// 0 to 50 C
		dt = -77.199 + 13.198*y - 0.63772*y2 + 0.071098*y3
	} else {
		// -50 to 0 C
		dt = -60.662 + 7.4624*y + 0.20594*y2 + 0.016321*y3
	}
	return dt + 273.15
}
