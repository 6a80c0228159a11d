package absmodel

// LiqAbsModel computes absorption by suspended liquid water droplets
// in the Rayleigh limit.
type LiqAbsModel struct {
	model        Model
	permittivity func(f, tk float64) complex128
}

// NewLiqAbsModel builds the cloud liquid absorption for model.
func NewLiqAbsModel(model Model) (*LiqAbsModel, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	a := &LiqAbsModel{model: model, permittivity: Dilec12}
	switch model {
	case Rose98, Rose03:
		a.permittivity = doubleDebye
	}
	return a, nil
}

// Absorption returns the absorption [Np/km] of water g/m3 of liquid at
// freq GHz and temp K. A non-positive water content gives exactly 0.
func (a *LiqAbsModel) Absorption(water, freq, temp float64) float64 {
	if water <= 0 {
		return 0
	}
	eps := a.permittivity(freq, temp)
	re := (eps - 1.0) / (eps + 2.0)
	return -0.06286 * imag(re) * freq * water
}
