package cost

import (
	"math"

	"github.com/ChicagoDave/takeoff/pkg/spec"
)

// Quantities itemizes materials by kind. Fields a line does not use stay 0.
type Quantities struct {
	ConcreteM3   float64 `json:"concrete_m3,omitempty"`
	CementKg     float64 `json:"cement_kg,omitempty"`
	SandM3       float64 `json:"sand_m3,omitempty"`
	GravelM3     float64 `json:"gravel_m3,omitempty"`
	WaterL       float64 `json:"water_l,omitempty"`
	SteelM       float64 `json:"steel_m,omitempty"`
	SteelKg      float64 `json:"steel_kg,omitempty"`
	ExcavationM3 float64 `json:"excavation_m3,omitempty"`
	WallM2       float64 `json:"wall_m2,omitempty"`
	Blocks       float64 `json:"blocks,omitempty"`
	JointM       float64 `json:"joint_m,omitempty"`
	PaintM2      float64 `json:"paint_m2,omitempty"`
	PaintL       float64 `json:"paint_l,omitempty"`
}

func (q Quantities) add(o Quantities) Quantities {
	return Quantities{
		ConcreteM3:   q.ConcreteM3 + o.ConcreteM3,
		CementKg:     q.CementKg + o.CementKg,
		SandM3:       q.SandM3 + o.SandM3,
		GravelM3:     q.GravelM3 + o.GravelM3,
		WaterL:       q.WaterL + o.WaterL,
		SteelM:       q.SteelM + o.SteelM,
		SteelKg:      q.SteelKg + o.SteelKg,
		ExcavationM3: q.ExcavationM3 + o.ExcavationM3,
		WallM2:       q.WallM2 + o.WallM2,
		Blocks:       q.Blocks + o.Blocks,
		JointM:       q.JointM + o.JointM,
		PaintM2:      q.PaintM2 + o.PaintM2,
		PaintL:       q.PaintL + o.PaintL,
	}
}

func (q Quantities) scale(f float64) Quantities {
	return Quantities{
		ConcreteM3:   q.ConcreteM3 * f,
		CementKg:     q.CementKg * f,
		SandM3:       q.SandM3 * f,
		GravelM3:     q.GravelM3 * f,
		WaterL:       q.WaterL * f,
		SteelM:       q.SteelM * f,
		SteelKg:      q.SteelKg * f,
		ExcavationM3: q.ExcavationM3 * f,
		WallM2:       q.WallM2 * f,
		Blocks:       q.Blocks * f,
		JointM:       q.JointM * f,
		PaintM2:      q.PaintM2 * f,
		PaintL:       q.PaintL * f,
	}
}

// BlockPieces returns Blocks rounded up to whole units.
func (q Quantities) BlockPieces() int {
	return int(math.Ceil(q.Blocks - 1e-9))
}

// Breakdown itemizes costs by material.
type Breakdown struct {
	Cement     float64 `json:"cement"`
	Sand       float64 `json:"sand"`
	Gravel     float64 `json:"gravel"`
	Water      float64 `json:"water"`
	Steel      float64 `json:"steel"`
	Excavation float64 `json:"excavation"`
	Block      float64 `json:"block"`
	Paint      float64 `json:"paint"`
	Total      float64 `json:"total"`
}

// price applies unit prices to q. Blocks are priced on the unrounded
// count so that line costs sum to the section and summary costs.
func price(q Quantities, p spec.Prices) Breakdown {
	return makeBreakdown(
		q.CementKg*p.CementKg,
		q.SandM3*p.SandM3,
		q.GravelM3*p.GravelM3,
		q.WaterL*p.WaterL,
		q.SteelKg*p.SteelKg,
		q.ExcavationM3*p.ExcavationM3,
		q.Blocks*p.BlockPiece,
		q.PaintL*p.PaintL,
	)
}

func makeBreakdown(cement, sand, gravel, water, steel, excavation, block, paint float64) Breakdown {
	return Breakdown{
		Cement:     cement,
		Sand:       sand,
		Gravel:     gravel,
		Water:      water,
		Steel:      steel,
		Excavation: excavation,
		Block:      block,
		Paint:      paint,
		Total:      cement + sand + gravel + water + steel + excavation + block + paint,
	}
}
