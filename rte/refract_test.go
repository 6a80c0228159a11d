package rte

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Refract(t *testing.T) {
	r, err := Refract([]float64{1013.25}, []float64{288.15}, []float64{10.0})
	require.NoError(t, err)
	assert.InDelta(t, 270.3028866421131, r.Dry[0], 1e-9)
	assert.InDelta(t, 47.753658631590476, r.Wet[0], 1e-9)
	assert.InDelta(t, 1.0003180565452736, r.Index[0], 1e-12)
}

func Test_Refract_Identity(t *testing.T) {
	p := []float64{1013, 904, 805, 715, 633}
	tk := []float64{299.7, 293.7, 288.0, 283.7, 277.0}
	e := []float64{26.3, 17.6, 12.3, 6.1, 2.8}

	r, err := Refract(p, tk, e)
	require.NoError(t, err)
	for i := range p {
		assert.InDelta(t, 1.0+(r.Dry[i]+r.Wet[i])*1e-6, r.Index[i], 1e-15)
		assert.Greater(t, r.Index[i], 1.0)
	}

	// dry air has no wet term
	r, err = Refract([]float64{500}, []float64{250}, []float64{0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Wet[0])
}

func Test_Refract_Length(t *testing.T) {
	_, err := Refract([]float64{1013, 904}, []float64{299.7, 293.7}, []float64{26.3})
	assert.ErrorIs(t, err, ErrLength)
	_, err = Refract([]float64{1013}, nil, []float64{26.3})
	assert.ErrorIs(t, err, ErrLength)
}
