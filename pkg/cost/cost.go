package cost

import (
	"fmt"

	"github.com/ChicagoDave/takeoff/pkg/materials"
	"github.com/ChicagoDave/takeoff/pkg/spec"
)

// Section groups line items by calculator.
type Section string

const (
	SectionConcrete   Section = "concrete"
	SectionSteel      Section = "steel"
	SectionExcavation Section = "excavation"
	SectionBlock      Section = "block"
	SectionPaint      Section = "paint"
)

// Sections lists every section in report order.
var Sections = []Section{SectionConcrete, SectionSteel, SectionExcavation, SectionBlock, SectionPaint}

// Line is one priced and quantified takeoff item.
type Line struct {
	Section     Section    `json:"section"`
	Path        string     `json:"spec_path"`
	Name        string     `json:"name"`
	Count       float64    `json:"count"`
	Description string     `json:"description"`
	Quantities  Quantities `json:"quantities"`
	Cost        *Breakdown `json:"cost,omitempty"`
	Notes       []string   `json:"notes,omitempty"`

	// Unit is the single-unit calculator result, before Count is applied.
	Unit any `json:"unit"`
}

// Subtotal sums the lines of one section.
type Subtotal struct {
	Section    Section    `json:"section"`
	Lines      int        `json:"lines"`
	Quantities Quantities `json:"quantities"`
	Cost       *Breakdown `json:"cost,omitempty"`
}

// Report is the complete estimate output.
type Report struct {
	Project   spec.ProjectDef `json:"project"`
	Lines     []Line          `json:"lines"`
	Subtotals []Subtotal      `json:"subtotals"`

	Summary struct {
		Quantities  Quantities `json:"quantities"`
		BlockPieces int        `json:"block_pieces"`
		Currency    string     `json:"currency,omitempty"`
		Cost        *Breakdown `json:"cost,omitempty"`
	} `json:"summary"`
}

// Section returns the subtotal for s.
func (r *Report) Section(s Section) Subtotal {
	for _, st := range r.Subtotals {
		if st.Section == s {
			return st
		}
	}
	return Subtotal{Section: s}
}

// Estimate runs every line item of t through the calculators and totals the
// results. Costs are filled in only when t has prices. The first item that
// violates a calculator's input contract aborts the estimate.
func Estimate(t *spec.Takeoff) (*Report, error) {
	report := &Report{Project: t.Project}

	for i, it := range t.Concrete {
		err := checkCount(it.Item)
		var line Line
		if err == nil {
			line, err = concreteLine(it)
		}
		if err != nil {
			return nil, itemError(fmt.Sprintf("concrete[%d]", i), it.Name, err)
		}
		report.add(line, fmt.Sprintf("concrete[%d]", i), it.Item)
	}
	for i, it := range t.Steel {
		err := checkCount(it.Item)
		var line Line
		if err == nil {
			line, err = steelLine(it)
		}
		if err != nil {
			return nil, itemError(fmt.Sprintf("steel[%d]", i), it.Name, err)
		}
		report.add(line, fmt.Sprintf("steel[%d]", i), it.Item)
	}
	for i, it := range t.Excavation {
		err := checkCount(it.Item)
		var line Line
		if err == nil {
			line, err = excavationLine(it)
		}
		if err != nil {
			return nil, itemError(fmt.Sprintf("excavation[%d]", i), it.Name, err)
		}
		report.add(line, fmt.Sprintf("excavation[%d]", i), it.Item)
	}
	for i, it := range t.Block {
		err := checkCount(it.Item)
		var line Line
		if err == nil {
			line, err = blockLine(it)
		}
		if err != nil {
			return nil, itemError(fmt.Sprintf("block[%d]", i), it.Name, err)
		}
		report.add(line, fmt.Sprintf("block[%d]", i), it.Item)
	}
	for i, it := range t.Paint {
		err := checkCount(it.Item)
		var line Line
		if err == nil {
			line, err = paintLine(it)
		}
		if err != nil {
			return nil, itemError(fmt.Sprintf("paint[%d]", i), it.Name, err)
		}
		report.add(line, fmt.Sprintf("paint[%d]", i), it.Item)
	}

	report.total(t.Prices, t.Project.Currency)
	return report, nil
}

// checkCount rejects negative counts, which would turn every quantity of
// the line negative.
func checkCount(it spec.Item) error {
	if it.Count < 0 {
		return &materials.InputError{Field: "count", Value: float64(it.Count), Rule: "must be 0 (meaning 1) or greater"}
	}
	return nil
}

func itemError(path, name string, err error) error {
	if name == "" {
		return fmt.Errorf("%s: %w", path, err)
	}
	return fmt.Errorf("%s (%s): %w", path, name, err)
}

// add scales a single-unit line by the item count and appends it.
func (r *Report) add(line Line, path string, it spec.Item) {
	line.Path = path
	line.Name = it.Name
	line.Count = it.Multiplier()
	line.Quantities = line.Quantities.scale(line.Count)
	r.Lines = append(r.Lines, line)
}

func (r *Report) total(p spec.Prices, currency string) {
	priced := p.Any()

	r.Subtotals = make([]Subtotal, 0, len(Sections))
	for _, s := range Sections {
		st := Subtotal{Section: s}
		for i := range r.Lines {
			if r.Lines[i].Section != s {
				continue
			}
			st.Lines++
			st.Quantities = st.Quantities.add(r.Lines[i].Quantities)
		}
		if priced {
			b := price(st.Quantities, p)
			st.Cost = &b
		}
		r.Subtotals = append(r.Subtotals, st)
		r.Summary.Quantities = r.Summary.Quantities.add(st.Quantities)
	}

	if priced {
		for i := range r.Lines {
			b := price(r.Lines[i].Quantities, p)
			r.Lines[i].Cost = &b
		}
		b := price(r.Summary.Quantities, p)
		r.Summary.Cost = &b
		r.Summary.Currency = currency
	}
	r.Summary.BlockPieces = r.Summary.Quantities.BlockPieces()
}

func concreteLine(it spec.ConcreteItem) (Line, error) {
	volume := it.Volume
	desc := fmt.Sprintf("%.2f m³", volume)
	if it.Element != nil {
		el, err := it.Element.Element()
		if err != nil {
			return Line{}, err
		}
		if volume, err = materials.Volume(el); err != nil {
			return Line{}, err
		}
		desc = describeElement(el)
	}

	res, err := materials.Concrete(volume, materials.Grade(it.Grade))
	if err != nil {
		return Line{}, err
	}

	line := Line{
		Section:     SectionConcrete,
		Description: fmt.Sprintf("%s, %s", desc, res.Grade),
		Unit:        res,
		Quantities: Quantities{
			ConcreteM3: res.VolumeM3,
			CementKg:   res.CementKg,
			SandM3:     res.SandM3,
			GravelM3:   res.GravelM3,
			WaterL:     res.WaterL,
		},
	}
	if res.Fallback {
		line.Notes = append(line.Notes, fmt.Sprintf("unknown grade %q, used %s", it.Grade, res.Grade))
	}
	return line, nil
}

func steelLine(it spec.SteelItem) (Line, error) {
	el, err := it.Element.Element()
	if err != nil {
		return Line{}, err
	}
	rebar := it.Rebar()
	res, err := materials.Steel(el, rebar)
	if err != nil {
		return Line{}, err
	}

	line := Line{
		Section:     SectionSteel,
		Description: fmt.Sprintf("%s, %d bars #%d", describeElement(el), rebar.Bars, rebar.Gauge),
		Unit:        res,
		Quantities:  Quantities{SteelM: res.LinearMeters, SteelKg: res.WeightKg},
	}
	if el.Kind().Framed() {
		line.Description += fmt.Sprintf(", stirrups @ %.0f cm", rebar.SpacingCm)
	} else {
		line.Notes = append(line.Notes, "simplified estimate, not a full rebar layout")
	}
	if res.UnknownGauge {
		line.Notes = append(line.Notes, fmt.Sprintf("unknown gauge %d, weight not computed", rebar.Gauge))
	}
	return line, nil
}

func excavationLine(it spec.ExcavationItem) (Line, error) {
	v, err := materials.Excavation(it.Length, it.Width, it.Height)
	if err != nil {
		return Line{}, err
	}
	work := it.Work
	if work == "" {
		work = string(materials.WorkExcavation)
	}
	return Line{
		Section:     SectionExcavation,
		Description: fmt.Sprintf("%s %.2f × %.2f × %.2f m", work, it.Length, it.Width, it.Height),
		Unit:        v,
		Quantities:  Quantities{ExcavationM3: v},
	}, nil
}

func blockLine(it spec.BlockItem) (Line, error) {
	res, err := materials.Block(it.Length, it.Height)
	if err != nil {
		return Line{}, err
	}
	return Line{
		Section:     SectionBlock,
		Description: fmt.Sprintf("wall %.2f × %.2f m", it.Length, it.Height),
		Unit:        res,
		Quantities:  Quantities{WallM2: res.AreaM2, Blocks: res.Blocks, JointM: res.JointM},
	}, nil
}

func paintLine(it spec.PaintItem) (Line, error) {
	res, err := materials.Paint(it.Length, it.Width)
	if err != nil {
		return Line{}, err
	}
	return Line{
		Section:     SectionPaint,
		Description: fmt.Sprintf("surface %.2f × %.2f m", it.Length, it.Width),
		Unit:        res,
		Quantities:  Quantities{PaintM2: res.AreaM2, PaintL: res.Liters},
	}, nil
}

func describeElement(e materials.Element) string {
	switch el := e.(type) {
	case materials.Framed:
		return fmt.Sprintf("%s %.2f × %.2f × %.2f m", el.Member, el.Length, el.Width, el.Height)
	case materials.Slab:
		return fmt.Sprintf("slab %.2f × %.2f m, %.2f m thick", el.Length, el.Width, el.Thickness)
	case materials.Footing:
		return fmt.Sprintf("footing %.2f × %.2f × %.2f m", el.Side1, el.Side2, el.Height)
	}
	return string(e.Kind())
}
