package materials

// ConcreteResult is the material breakdown for a volume of concrete.
type ConcreteResult struct {
	Grade    Grade   `json:"grade"`
	VolumeM3 float64 `json:"volume_m3"`
	CementKg float64 `json:"cement_kg"`
	SandM3   float64 `json:"sand_m3"`
	GravelM3 float64 `json:"gravel_m3"`
	WaterL   float64 `json:"water_l"`

	// Fallback is set when the requested grade was unknown and the
	// DefaultGrade mix was used instead.
	Fallback bool `json:"fallback,omitempty"`
}

// Concrete computes cement, sand, gravel and water for volume m³ of the
// given grade. An unknown or empty grade uses the DefaultGrade mix; that is
// not an error.
func Concrete(volume float64, grade Grade) (ConcreteResult, error) {
	if err := positive(dim{"volume", volume}); err != nil {
		return ConcreteResult{}, err
	}

	mix, ok := LookupGrade(grade)
	used := grade
	if !ok {
		used = DefaultGrade
	}

	return ConcreteResult{
		Grade:    used,
		VolumeM3: volume,
		CementKg: volume * mix.CementKg,
		SandM3:   volume * mix.SandM3,
		GravelM3: volume * mix.GravelM3,
		WaterL:   volume * mix.WaterL,
		Fallback: !ok,
	}, nil
}
