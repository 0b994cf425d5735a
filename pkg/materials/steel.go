package materials

import "fmt"

// Rebar describes the bars and stirrups of an element.
type Rebar struct {
	Gauge     Gauge   `json:"gauge"`
	Bars      int     `json:"bars"`
	SpacingCm float64 `json:"spacing_cm"`
}

// SteelResult is the reinforcing steel needed for one element.
type SteelResult struct {
	LinearMeters float64 `json:"linear_meters"`
	WeightKg     float64 `json:"weight_kg"`
	KgPerM       float64 `json:"kg_per_m"`

	// Stirrup figures are only set for beams, columns and piers.
	StirrupLength float64 `json:"stirrup_length_m,omitempty"`
	Stirrups      float64 `json:"stirrups,omitempty"`

	// UnknownGauge is set when the gauge is not in the weight table and
	// the weight was computed as 0.
	UnknownGauge bool `json:"unknown_gauge,omitempty"`
}

// Steel computes linear meters and weight of reinforcing steel for e.
//
// Beams, columns and piers get longitudinal bars plus closed stirrups at
// SpacingCm. Slabs and footings use a simplified estimate (bars times the
// sum of the plan dimensions) rather than a real two-way layout.
func Steel(e Element, r Rebar) (SteelResult, error) {
	if err := checkElement(e); err != nil {
		return SteelResult{}, err
	}
	if r.Bars < MinBars {
		return SteelResult{}, &InputError{Field: "bars", Value: float64(r.Bars), Rule: fmt.Sprintf("must be at least %d", MinBars)}
	}
	if err := positive(dim{"spacing_cm", r.SpacingCm}); err != nil {
		return SteelResult{}, err
	}

	var res SteelResult
	bars := float64(r.Bars)

	switch el := e.(type) {
	case Framed:
		res.StirrupLength = 2*(el.Width+el.Height) + StirrupLap
		res.Stirrups = el.Length * CmPerM / r.SpacingCm
		res.LinearMeters = bars*el.Length + res.Stirrups*res.StirrupLength
	case Slab:
		res.LinearMeters = bars * (el.Length + el.Width)
	case Footing:
		res.LinearMeters = bars * (el.Side1 + el.Side2 + el.Height)
	}

	kgPerM, ok := GaugeWeight(r.Gauge)
	res.KgPerM = kgPerM
	res.WeightKg = res.LinearMeters * kgPerM
	res.UnknownGauge = !ok
	return res, nil
}
