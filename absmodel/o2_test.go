package absmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_O2AbsModel_Absorption(t *testing.T) {
	cases := []struct {
		model    Model
		npp, ncp float64
	}{
		{Rose98, 1.206009906300408, 0.0006681669038490158},
		{Rose03, 1.2060099038642356, 0.0006963608161324513},
		{Rose16, 1.2231274755420332, 0.0006979705016880858},
		{Rose17, 1.2115242378700992, 0.0006994442028556459},
		{Rose18, 1.2115242378700992, 0.0006994442028556459},
		{Rose19, 1.2226726546930784, 0.0005721180605122694},
		{Rose19SD, 1.2226726546930784, 0.0005721180605122694},
		{Rose20, 1.2275633453118506, 0.0005721180605122694},
		{Rose20SD, 1.2275633453118506, 0.0005721180605122694},
	}
	for _, c := range cases {
		o2, err := NewO2AbsModel(c.model, nil)
		require.NoError(t, err, c.model)
		assert.Equal(t, c.model, o2.Model())

		npp, ncpp, err := o2.Absorption(sfcPdrykpa, sfcV, sfcEkpa, 60.0)
		require.NoError(t, err, c.model)
		assert.InEpsilon(t, c.npp, npp, 1e-6, c.model)
		assert.InEpsilon(t, c.ncp, ncpp, 1e-6, c.model)
	}
}

func Test_O2AbsModel_Rose20Gain(t *testing.T) {
	o19, err := NewO2AbsModel(Rose19, nil)
	require.NoError(t, err)
	o20, err := NewO2AbsModel(Rose20, nil)
	require.NoError(t, err)

	n19, c19, _ := o19.Absorption(sfcPdrykpa, sfcV, sfcEkpa, 57.0)
	n20, c20, _ := o20.Absorption(sfcPdrykpa, sfcV, sfcEkpa, 57.0)
	assert.InEpsilon(t, 1.004*n19, n20, 1e-12)
	assert.Equal(t, c19, c20)
}

func Test_O2AbsModel_SecondOrderMixing(t *testing.T) {
	// one line at 60 GHz in dry air at 300 K and 1000 mb: den = 1 bar
	ll := &O2Lines{
		X:     0.8,
		Wb300: 0.56,
		F:     []float64{60.0},
		S300:  []float64{1e-15},
		Be:    []float64{0.5},
		W300:  []float64{1.0},
		Y0:    []float64{0.3},
		Y1:    []float64{0.1},
		Dnu0:  []float64{0.05},
		Dnu1:  []float64{0.01},
		G0:    []float64{0.2},
		G1:    []float64{-0.04},
	}
	o2, err := NewO2AbsModel(Rose19, ll)
	require.NoError(t, err)

	freq := 60.5
	npp, _, err := o2.Absorption(100.0, 1.0, 0, freq)
	require.NoError(t, err)

	// th = 1, so the temperature coefficients drop out
	df, y, dnu, gfac := 1.0, 0.3, 0.05, 1.2
	del1 := freq - 60.0 - dnu
	del2 := freq + 60.0 + dnu
	sf1 := (df*gfac + del1*y) / (del1*del1 + df*df)
	sf2 := (df*gfac - del2*y) / (del2*del2 + df*df)
	sum := 1e-15 * (sf1 + sf2) * (freq / 60.0) * (freq / 60.0)
	want := 1.6097e11 * sum * 1000.0 / db2np / (0.182 * freq)
	assert.InEpsilon(t, want, npp, 1e-12)

	// the same line without the second-order terms
	first := &O2Lines{
		X: 0.8, Wb300: 0.56, F: ll.F, S300: ll.S300, Be: ll.Be, W300: ll.W300,
		Y0: ll.Y0, Y1: ll.Y1,
	}
	o2, err = NewO2AbsModel(Rose19, first)
	require.NoError(t, err)
	plain, _, err := o2.Absorption(100.0, 1.0, 0, freq)
	require.NoError(t, err)
	assert.Greater(t, npp, plain*1.1)

}

func Test_O2AbsModel_DefaultTables(t *testing.T) {
	o17, err := NewO2AbsModel(Rose17, nil)
	require.NoError(t, err)
	o19, err := NewO2AbsModel(Rose19, nil)
	require.NoError(t, err)

	for _, f := range []float64{53.6, 60.0, 118.75, 183.31} {
		n17, _, err := o17.Absorption(sfcPdrykpa, sfcV, sfcEkpa, f)
		require.NoError(t, err)
		n19, _, err := o19.Absorption(sfcPdrykpa, sfcV, sfcEkpa, f)
		require.NoError(t, err)
		assert.NotEqual(t, n17, n19, f)
	}
}

func Test_O2AbsModel_DryAir(t *testing.T) {
	o2, err := NewO2AbsModel(Rose18, nil)
	require.NoError(t, err)

	npp, ncpp, err := o2.Absorption(101.3, 1.0, 0, 118.75)
	require.NoError(t, err)
	assert.Greater(t, npp, 0.0)
	assert.Greater(t, ncpp, 0.0)
}

func Test_NewO2AbsModel_UnknownModel(t *testing.T) {
	_, err := NewO2AbsModel("not_a_model", nil)
	assert.ErrorIs(t, err, ErrUnknownModel)

	_, err = NewO2AbsModel(Rose19, &O2Lines{F: []float64{60.0}, S300: []float64{1e-15}})
	assert.ErrorIs(t, err, ErrLineTableShape)
}
