package rte

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ExpInt(t *testing.T) {
	x := []float64{10, 5, 2.5}
	ds := []float64{0, 1, 2}

	sxds, xds, err := ExpInt(1, x, ds, 0, 2, 1)
	require.NoError(t, err)

	l1 := (5.0 - 10.0) / math.Log(0.5)
	l2 := (2.5 - 5.0) / math.Log(0.5)
	assert.InDelta(t, 0.0, xds[0], 1e-15)
	assert.InDelta(t, l1, xds[1], 1e-12)
	assert.InDelta(t, l2*2, xds[2], 1e-12)
	assert.InDelta(t, l1+2*l2, sxds, 1e-12)

	// factor scales only the sum
	sxds, xds2, err := ExpInt(1, x, ds, 0, 2, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, (l1+2*l2)*0.1, sxds, 1e-12)
	assert.Equal(t, xds, xds2)
}

func Test_ExpInt_NearEqual(t *testing.T) {
	sxds, _, err := ExpInt(1, []float64{10, 10 + 1e-10}, []float64{0, 1}, 0, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, sxds, 1e-9)
}

func Test_ExpInt_Zero(t *testing.T) {
	x := []float64{0, 4}
	ds := []float64{0, 1}

	sxds, _, err := ExpInt(0, x, ds, 0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sxds)

	sxds, _, err = ExpInt(1, x, ds, 0, 1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sxds, 1e-15)
}

func Test_ExpInt_Negative(t *testing.T) {
	x := []float64{1, 2, -1, 3}
	ds := []float64{0, 1, 1, 1}

	sxds, xds, err := ExpInt(1, x, ds, 0, 3, 2)
	assert.ErrorIs(t, err, ErrNegativeProfile)
	want := 1.0 / math.Log(2.0)
	assert.InDelta(t, want*2, sxds, 1e-12)
	assert.InDelta(t, want, xds[1], 1e-12)
	assert.Equal(t, 0.0, xds[2])
	assert.Equal(t, 0.0, xds[3])
}
