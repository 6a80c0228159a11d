package absmodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseModel(t *testing.T) {
	m, err := ParseModel(" ROSE19SD ")
	require.NoError(t, err)
	assert.Equal(t, Rose19SD, m)

	for _, name := range []string{"rose98", "rose03", "rose16", "rose17", "rose18", "rose19", "rose19sd", "rose20", "rose20sd"} {
		m, err := ParseModel(name)
		assert.NoError(t, err, name)
		assert.Equal(t, name, m.String())
	}
}

func Test_ParseModel_Unknown(t *testing.T) {
	_, err := ParseModel("not_a_model")
	assert.True(t, errors.Is(err, ErrUnknownModel))

	_, err = ParseModel("")
	assert.ErrorIs(t, err, ErrUnknownModel)

	assert.ErrorIs(t, Model("rose21").Validate(), ErrUnknownModel)
}

func Test_Families(t *testing.T) {
	assert.Equal(t, H2OLorentz, Rose98.H2OFamily())
	assert.Equal(t, H2OLorentz, Rose17.H2OFamily())
	assert.Equal(t, H2OLorentzShift, Rose18.H2OFamily())
	assert.Equal(t, H2OLorentzShift, Rose20.H2OFamily())
	assert.Equal(t, H2OSpeedDependent, Rose19SD.H2OFamily())
	assert.Equal(t, H2OSpeedDependent, Rose20SD.H2OFamily())

	assert.Equal(t, O2Legacy, Rose03.O2Generation())
	assert.Equal(t, O2FirstOrder, Rose18.O2Generation())
	assert.Equal(t, O2SecondOrder, Rose16.O2Generation())
	assert.Equal(t, O2SecondOrder, Rose20SD.O2Generation())

	assert.True(t, Rose18.O2IncludesN2())
	assert.False(t, Rose19.O2IncludesN2())
	assert.Equal(t, "second-order mixing", O2SecondOrder.String())
}
