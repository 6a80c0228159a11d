package rte

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testZ     = []float64{0, 1, 2, 3, 4, 5}
	testIndex = []float64{1.000315, 1.000285, 1.000257, 1.000232, 1.000209, 1.000188}
)

func Test_RayTrac_Zenith(t *testing.T) {
	for _, angle := range []float64{90, 89, 91, -90} {
		ds, err := RayTrac(testZ, testIndex, angle, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, ds[0])
		for i := 1; i < len(testZ); i++ {
			assert.InDelta(t, testZ[i]-testZ[i-1], ds[i], 1e-12)
		}
	}
}

func Test_RayTrac_Slant(t *testing.T) {
	ds, err := RayTrac(testZ, testIndex, 30, 0)
	require.NoError(t, err)
	require.Len(t, ds, len(testZ))
	assert.Equal(t, 0.0, ds[0])
	assert.InDelta(t, 2.0, ds[1], 0.01)
	assert.InDelta(t, 1.9996193767708454, ds[1], 1e-9)
	assert.InDelta(t, 1.9964738698124354, ds[5], 1e-9)

	ds, err = RayTrac(testZ, testIndex, 5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 11.380254919645957, ds[1], 1e-8)
}

func Test_RayTrac_Straight(t *testing.T) {
	// no refraction: chord of a straight line leaving the surface at 30 degrees
	n := []float64{1, 1, 1, 1, 1, 1}
	ds, err := RayTrac(testZ, n, 30, 0)
	require.NoError(t, err)

	rs := 6370.949
	s := math.Sin(degreeToRad(30))
	want := -rs*s + math.Sqrt(rs*rs*s*s+2*rs+1)
	assert.InDelta(t, want, ds[1], 1e-9)
}

func Test_RayTrac_Ducting(t *testing.T) {
	ds, err := RayTrac([]float64{0, 0.01, 1}, []float64{1.0004, 1.0001, 1.00005}, 0.5, 0)
	assert.ErrorIs(t, err, ErrDucting)
	assert.Equal(t, []float64{0}, ds)
}

func Test_RayTrac_NegativeIndex(t *testing.T) {
	ds, err := RayTrac([]float64{0, 1}, []float64{1.0003, 0.9999}, 30, 0)
	assert.ErrorIs(t, err, ErrNegativeRefractiveIndex)
	assert.Nil(t, ds)

	_, err = RayTrac([]float64{0, 1}, []float64{1.0003}, 30, 0)
	assert.ErrorIs(t, err, ErrLength)
}
