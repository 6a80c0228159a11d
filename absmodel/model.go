package absmodel

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownModel is returned for a model name outside the supported set.
	ErrUnknownModel = errors.New("absmodel: unknown absorption model")
	// ErrNoVapor is returned when the vapor density of a level is not positive.
	ErrNoVapor = errors.New("absmodel: vapor density is not positive")
	// ErrLineTableShape is returned when the coefficient sequences of a line table differ in length.
	ErrLineTableShape = errors.New("absmodel: line table columns differ in length")
	// ErrFrequency is returned for a non-positive frequency.
	ErrFrequency = errors.New("absmodel: frequency must be positive")
)

// Model identifies one historical Rosenkranz parameterization.
type Model string

const (
	Rose98   Model = "rose98"
	Rose03   Model = "rose03"
	Rose16   Model = "rose16"
	Rose17   Model = "rose17"
	Rose18   Model = "rose18"
	Rose19   Model = "rose19"
	Rose19SD Model = "rose19sd"
	Rose20   Model = "rose20"
	Rose20SD Model = "rose20sd"
)

// Models lists every supported model, oldest first.
var Models = []Model{Rose98, Rose03, Rose16, Rose17, Rose18, Rose19, Rose19SD, Rose20, Rose20SD}

// ParseModel converts name into a Model.
func ParseModel(name string) (Model, error) {
	m := Model(strings.ToLower(strings.TrimSpace(name)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate reports ErrUnknownModel when m is empty or not in Models.
func (m Model) Validate() error {
	for _, known := range Models {
		if m == known {
			return nil
		}
	}
	if m == "" {
		return fmt.Errorf("%w: empty model name", ErrUnknownModel)
	}
	return fmt.Errorf("%w: %q", ErrUnknownModel, string(m))
}

func (m Model) String() string {
	return string(m)
}

// H2OFamily groups the water vapor line shapes.
type H2OFamily int

const (
	// H2OLorentz is the plain Lorentz shape with an optional width-proportional shift.
	H2OLorentz H2OFamily = iota
	// H2OLorentzShift is the Lorentz shape with separate foreign and self shifts.
	H2OLorentzShift
	// H2OSpeedDependent is the speed-dependent Voigt shape.
	H2OSpeedDependent
)

func (f H2OFamily) String() string {
	switch f {
	case H2OLorentz:
		return "lorentz"
	case H2OLorentzShift:
		return "lorentz+shift"
	case H2OSpeedDependent:
		return "speed-dependent voigt"
	}
	return fmt.Sprintf("H2OFamily(%d)", int(f))
}

// H2OFamily returns the line-shape family m uses for water vapor.
func (m Model) H2OFamily() H2OFamily {
	switch m {
	case Rose19SD, Rose20SD:
		return H2OSpeedDependent
	case Rose18, Rose19, Rose20:
		return H2OLorentzShift
	}
	return H2OLorentz
}

// O2Generation groups the oxygen line-mixing algorithms.
type O2Generation int

const (
	// O2Legacy is the 1998/2003 algorithm with the distinct first-line width.
	O2Legacy O2Generation = iota
	// O2FirstOrder is first-order line mixing.
	O2FirstOrder
	// O2SecondOrder adds second-order mixing (dnu, g).
	O2SecondOrder
)

func (g O2Generation) String() string {
	switch g {
	case O2Legacy:
		return "legacy"
	case O2FirstOrder:
		return "first-order mixing"
	case O2SecondOrder:
		return "second-order mixing"
	}
	return fmt.Sprintf("O2Generation(%d)", int(g))
}

// O2Generation returns the oxygen algorithm generation m uses.
func (m Model) O2Generation() O2Generation {
	switch m {
	case Rose98, Rose03:
		return O2Legacy
	case Rose17, Rose18:
		return O2FirstOrder
	}
	return O2SecondOrder
}

// O2IncludesN2 reports whether the oxygen continuum of m already carries the
// collision-induced nitrogen term.
func (m Model) O2IncludesN2() bool {
	switch m {
	case Rose98, Rose03, Rose16, Rose17, Rose18:
		return true
	}
	return false
}
