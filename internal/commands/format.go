package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ChicagoDave/takeoff/internal/prompts"
	"github.com/ChicagoDave/takeoff/pkg/cost"
	"github.com/ChicagoDave/takeoff/pkg/materials"
	"github.com/ChicagoDave/takeoff/pkg/validation"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func num(v float64, unit string) string {
	return fmt.Sprintf("%.2f %s", v, unit)
}

func concreteFields(r materials.ConcreteResult) []prompts.ResultField {
	return []prompts.ResultField{
		{Label: "Volume", Value: num(r.VolumeM3, "m³")},
		{Label: "Cement", Value: num(r.CementKg, "kg")},
		{Label: "Sand", Value: num(r.SandM3, "m³")},
		{Label: "Gravel", Value: num(r.GravelM3, "m³")},
		{Label: "Water", Value: num(r.WaterL, "L")},
	}
}

func steelFields(r materials.SteelResult) []prompts.ResultField {
	fields := []prompts.ResultField{
		{Label: "Linear meters", Value: num(r.LinearMeters, "m")},
		{Label: "Weight", Value: num(r.WeightKg, "kg")},
		{Label: "Bar weight", Value: num(r.KgPerM, "kg/m")},
	}
	if r.StirrupLength > 0 {
		fields = append(fields,
			prompts.ResultField{Label: "Stirrup length", Value: num(r.StirrupLength, "m")},
			prompts.ResultField{Label: "Stirrups", Value: fmt.Sprintf("%.2f", r.Stirrups)},
		)
	}
	return fields
}

func excavationFields(work materials.Work, v float64) []prompts.ResultField {
	return []prompts.ResultField{
		{Label: "Work", Value: string(work)},
		{Label: "Volume", Value: num(v, "m³")},
	}
}

func blockFields(r materials.BlockResult) []prompts.ResultField {
	return []prompts.ResultField{
		{Label: "Wall area", Value: num(r.AreaM2, "m²")},
		{Label: "Blocks", Value: fmt.Sprintf("%.0f", r.Blocks)},
		{Label: "To order", Value: fmt.Sprintf("%d pcs", r.Pieces())},
		{Label: "Mortar joint", Value: num(r.JointM, "m")},
	}
}

func paintFields(r materials.PaintResult) []prompts.ResultField {
	return []prompts.ResultField{
		{Label: "Area", Value: num(r.AreaM2, "m²")},
		{Label: "Paint", Value: num(r.Liters, "L")},
	}
}

func printValidationReport(w io.Writer, r *validation.Report) {
	printResults := func(heading string, results []validation.Result, detail bool) {
		if len(results) == 0 {
			return
		}
		_, _ = fmt.Fprintf(w, "%s (%d):\n", heading, len(results))
		for _, res := range results {
			_, _ = fmt.Fprintf(w, "  [%s] %s\n", res.Level, res.Message)
			if !detail {
				continue
			}
			if res.SpecPath != "" && res.ActualValue != nil {
				_, _ = fmt.Fprintf(w, "    -> %s = %v\n", res.SpecPath, res.ActualValue)
			}
			if res.Expected != "" {
				_, _ = fmt.Fprintf(w, "    expected: %s\n", res.Expected)
			}
			for _, s := range res.Suggestions {
				_, _ = fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		_, _ = fmt.Fprintln(w)
	}

	printResults("ERRORS", r.Errors, true)
	printResults("WARNINGS", r.Warnings, true)
	printResults("INFO", r.Info, false)

	if r.Valid {
		_, _ = fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		_, _ = fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printEstimate(w io.Writer, r *cost.Report) {
	heading := "Material takeoff"
	if r.Project.Name != "" {
		heading += ": " + r.Project.Name
	}
	_, _ = fmt.Fprintln(w, heading)
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len([]rune(heading))))
	_, _ = fmt.Fprintln(w)

	priced := r.Summary.Cost != nil
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if priced {
		_, _ = fmt.Fprintln(tw, "ITEM\tCOUNT\tDESCRIPTION\tCOST")
	} else {
		_, _ = fmt.Fprintln(tw, "ITEM\tCOUNT\tDESCRIPTION")
	}
	for _, l := range r.Lines {
		name := l.Name
		if name == "" {
			name = l.Path
		}
		if priced && l.Cost != nil {
			_, _ = fmt.Fprintf(tw, "%s\t%.0f\t%s\t%s\n", name, l.Count, l.Description, money(l.Cost.Total))
		} else {
			_, _ = fmt.Fprintf(tw, "%s\t%.0f\t%s\n", name, l.Count, l.Description)
		}
	}
	_ = tw.Flush()

	for _, l := range r.Lines {
		for _, n := range l.Notes {
			prompts.PrintWarning(w, fmt.Sprintf("%s: %s", l.Path, n))
		}
	}
	_, _ = fmt.Fprintln(w)

	q := r.Summary.Quantities
	fields := []prompts.ResultField{}
	add := func(label string, v float64, unit string) {
		if v != 0 {
			fields = append(fields, prompts.ResultField{Label: label, Value: num(v, unit)})
		}
	}
	add("Concrete", q.ConcreteM3, "m³")
	add("Cement", q.CementKg, "kg")
	add("Sand", q.SandM3, "m³")
	add("Gravel", q.GravelM3, "m³")
	add("Water", q.WaterL, "L")
	add("Steel", q.SteelM, "m")
	add("Steel weight", q.SteelKg, "kg")
	add("Excavation", q.ExcavationM3, "m³")
	add("Wall area", q.WallM2, "m²")
	if q.Blocks != 0 {
		fields = append(fields, prompts.ResultField{
			Label: "Blocks",
			Value: fmt.Sprintf("%.0f (order %d pcs)", q.Blocks, r.Summary.BlockPieces),
		})
	}
	add("Mortar joint", q.JointM, "m")
	add("Paint area", q.PaintM2, "m²")
	add("Paint", q.PaintL, "L")
	prompts.PrintResult(w, "Totals", fields)

	if priced {
		c := r.Summary.Cost
		_, _ = fmt.Fprintln(w)
		cur := r.Summary.Currency
		prompts.PrintResult(w, strings.TrimSpace("Cost "+cur), []prompts.ResultField{
			{Label: "Cement", Value: money(c.Cement)},
			{Label: "Sand", Value: money(c.Sand)},
			{Label: "Gravel", Value: money(c.Gravel)},
			{Label: "Water", Value: money(c.Water)},
			{Label: "Steel", Value: money(c.Steel)},
			{Label: "Excavation", Value: money(c.Excavation)},
			{Label: "Block", Value: money(c.Block)},
			{Label: "Paint", Value: money(c.Paint)},
			{Label: "TOTAL", Value: money(c.Total)},
		})
	}
}

// money formats v with two decimals and thousands separators.
func money(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
