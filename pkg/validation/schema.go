package validation

import (
	"fmt"

	"github.com/ChicagoDave/takeoff/pkg/materials"
	"github.com/ChicagoDave/takeoff/pkg/spec"
)

// ValidateSchema checks a parsed takeoff before any computation: entry
// minimums and required fields.
func ValidateSchema(t *spec.Takeoff) *Report {
	r := NewReport()

	if t.SpecVersion == "" {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "spec_version is required",
			SpecPath: "spec_version",
			Expected: "e.g. \"0.1.0\"",
		})
	}

	validatePrices(t.Prices, r)
	validateConcrete(t.Concrete, r)
	validateSteel(t.Steel, r)
	validateExcavation(t.Excavation, r)
	validateBlock(t.Block, r)
	validatePaint(t.Paint, r)

	if n := t.ItemCount(); n == 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "takeoff has no line items",
			SpecPath:    "",
			Suggestions: []string{"Add entries under concrete, steel, excavation, block or paint"},
		})
	} else {
		r.AddInfo(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%d line items", n),
			ActualValue: n,
		})
	}

	return r
}

func validatePrices(p spec.Prices, r *Report) {
	prices := []struct {
		name  string
		value float64
	}{
		{"cement_kg", p.CementKg},
		{"sand_m3", p.SandM3},
		{"gravel_m3", p.GravelM3},
		{"water_l", p.WaterL},
		{"steel_kg", p.SteelKg},
		{"excavation_m3", p.ExcavationM3},
		{"block_piece", p.BlockPiece},
		{"paint_l", p.PaintL},
	}
	for _, price := range prices {
		if price.value < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("prices.%s must be non-negative", price.name),
				SpecPath:    "prices." + price.name,
				ActualValue: price.value,
				Expected:    ">= 0",
			})
		}
	}
}

func validateConcrete(items []spec.ConcreteItem, r *Report) {
	for i, it := range items {
		path := fmt.Sprintf("concrete[%d]", i)
		validateItem(path, it.Item, r)

		switch {
		case it.Element != nil && it.Volume != 0:
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: give either element or volume, not both", path),
				SpecPath:    path,
				Item:        it.Name,
				Suggestions: []string{"Remove volume to derive it from the element", "Remove element to use the volume as given"},
			})
		case it.Element != nil:
			validateElement(path+".element", it.Name, *it.Element, r)
		default:
			minDimension(path+".volume", it.Name, it.Volume, r)
		}
	}
}

func validateSteel(items []spec.SteelItem, r *Report) {
	for i, it := range items {
		path := fmt.Sprintf("steel[%d]", i)
		validateItem(path, it.Item, r)
		validateElement(path+".element", it.Name, it.Element, r)

		if it.Bars < materials.MinBars {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: bars must be at least %d", path, materials.MinBars),
				SpecPath:    path + ".bars",
				Item:        it.Name,
				ActualValue: it.Bars,
				Expected:    fmt.Sprintf(">= %d", materials.MinBars),
			})
		}
		if !(it.SpacingCm >= materials.MinSpacingCm) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s: spacing_cm %.1f is below the %.0f cm minimum", path, it.SpacingCm, materials.MinSpacingCm),
				SpecPath:    path + ".spacing_cm",
				Item:        it.Name,
				ActualValue: it.SpacingCm,
				Expected:    fmt.Sprintf(">= %.0f", materials.MinSpacingCm),
			})
		}
	}
}

func validateExcavation(items []spec.ExcavationItem, r *Report) {
	for i, it := range items {
		path := fmt.Sprintf("excavation[%d]", i)
		validateItem(path, it.Item, r)
		minDimension(path+".length", it.Name, it.Length, r)
		minDimension(path+".width", it.Name, it.Width, r)
		minDimension(path+".height", it.Name, it.Height, r)
	}
}

func validateBlock(items []spec.BlockItem, r *Report) {
	for i, it := range items {
		path := fmt.Sprintf("block[%d]", i)
		validateItem(path, it.Item, r)
		minDimension(path+".length", it.Name, it.Length, r)
		minDimension(path+".height", it.Name, it.Height, r)
	}
}

func validatePaint(items []spec.PaintItem, r *Report) {
	for i, it := range items {
		path := fmt.Sprintf("paint[%d]", i)
		validateItem(path, it.Item, r)
		minDimension(path+".length", it.Name, it.Length, r)
		minDimension(path+".width", it.Name, it.Width, r)
	}
}

func validateItem(path string, it spec.Item, r *Report) {
	if it.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s: count must be non-negative", path),
			SpecPath:    path + ".count",
			Item:        it.Name,
			ActualValue: it.Count,
			Expected:    ">= 0 (0 or omitted means 1)",
		})
	}
}

func validateElement(path, item string, def spec.ElementDef, r *Report) {
	if _, err := materials.ParseKind(def.Kind); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s: unknown element kind %q", path, def.Kind),
			SpecPath:    path + ".kind",
			Item:        item,
			ActualValue: def.Kind,
			Expected:    "beam, column, pier, slab or footing",
		})
		return
	}
	for _, d := range def.Dimensions() {
		minDimension(path+"."+d.Name, item, d.Value, r)
	}
}

func minDimension(path, item string, v float64, r *Report) {
	if !(v >= materials.MinDimension) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s %.2f is below the %.1f m minimum", path, v, materials.MinDimension),
			SpecPath:    path,
			Item:        item,
			ActualValue: v,
			Expected:    fmt.Sprintf(">= %.1f", materials.MinDimension),
		})
	}
}
