// Package export writes estimate reports as spreadsheets and PDFs.
package export

import (
	"fmt"

	"github.com/ChicagoDave/takeoff/pkg/cost"
)

// row is one labeled quantity with its unit and display precision.
type row struct {
	label    string
	unit     string
	value    float64
	decimals int
}

// quantityRows lists the non-zero quantities of q in a fixed order. Block
// counts are whole pieces; everything else keeps two decimals.
func quantityRows(q cost.Quantities) []row {
	all := []row{
		{"Concrete", "m³", q.ConcreteM3, 2},
		{"Cement", "kg", q.CementKg, 2},
		{"Sand", "m³", q.SandM3, 2},
		{"Gravel", "m³", q.GravelM3, 2},
		{"Water", "L", q.WaterL, 2},
		{"Steel", "m", q.SteelM, 2},
		{"Steel", "kg", q.SteelKg, 2},
		{"Excavation", "m³", q.ExcavationM3, 2},
		{"Wall area", "m²", q.WallM2, 2},
		{"Blocks", "pcs", q.Blocks, 0},
		{"Mortar joint", "m", q.JointM, 2},
		{"Paint area", "m²", q.PaintM2, 2},
		{"Paint", "L", q.PaintL, 2},
	}
	out := all[:0]
	for _, r := range all {
		if r.value != 0 {
			out = append(out, r)
		}
	}
	return out
}

func (r row) String() string {
	return fmt.Sprintf("%.*f %s", r.decimals, r.value, r.unit)
}

func title(r *cost.Report) string {
	if r.Project.Name == "" {
		return "Material takeoff"
	}
	return "Material takeoff: " + r.Project.Name
}
