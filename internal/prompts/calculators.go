package prompts

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/ChicagoDave/takeoff/pkg/materials"
)

// Calculator names offered by RunCalculatorSelect.
const (
	CalcConcrete   = "concrete"
	CalcSteel      = "steel"
	CalcExcavation = "excavation"
	CalcBlock      = "block"
	CalcPaint      = "paint"
	CalcQuit       = "quit"
)

// RunCalculatorSelect asks which calculator to run next.
func RunCalculatorSelect(choice *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Calculator").
				Options(
					huh.NewOption("Concrete", CalcConcrete),
					huh.NewOption("Reinforcing steel", CalcSteel),
					huh.NewOption("Excavation / demolition", CalcExcavation),
					huh.NewOption("Block wall", CalcBlock),
					huh.NewOption("Paint", CalcPaint),
					huh.NewOption("Quit", CalcQuit),
				).
				Value(choice),
		),
	).WithTheme(Theme()).Run()
}

// dimensionLabels returns the three measurement titles for kind.
func dimensionLabels(kind materials.Kind) [3]string {
	switch kind {
	case materials.KindSlab:
		return [3]string{"Length (m)", "Width (m)", "Thickness (m)"}
	case materials.KindFooting:
		return [3]string{"Side 1 (m)", "Side 2 (m)", "Height (m)"}
	default:
		return [3]string{"Length (m)", "Width (m)", "Height (m)"}
	}
}

// buildElement assembles the typed geometry for kind from three dimensions
// in dimensionLabels order.
func buildElement(kind materials.Kind, d [3]float64) materials.Element {
	switch kind {
	case materials.KindSlab:
		return materials.Slab{Length: d[0], Width: d[1], Thickness: d[2]}
	case materials.KindFooting:
		return materials.Footing{Side1: d[0], Side2: d[1], Height: d[2]}
	default:
		return materials.Framed{Member: kind, Length: d[0], Width: d[1], Height: d[2]}
	}
}

func runElementForm(extra ...huh.Field) (materials.Element, error) {
	kind := materials.KindBeam
	kinds := make([]huh.Option[materials.Kind], 0, len(materials.Kinds))
	for _, k := range materials.Kinds {
		kinds = append(kinds, huh.NewOption(string(k), k))
	}
	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[materials.Kind]().
				Title("Element").
				Options(kinds...).
				Value(&kind),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return nil, err
	}

	labels := dimensionLabels(kind)
	var raw [3]string
	fields := []huh.Field{
		numberInput(labels[0], &raw[0], minFloat(materials.MinDimension)),
		numberInput(labels[1], &raw[1], minFloat(materials.MinDimension)),
		numberInput(labels[2], &raw[2], minFloat(materials.MinDimension)),
	}
	fields = append(fields, extra...)
	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run(); err != nil {
		return nil, err
	}

	v := parseFloats(raw[:]...)
	return buildElement(kind, [3]float64{v[0], v[1], v[2]}), nil
}

// RunConcreteForm collects an element and a grade.
func RunConcreteForm() (materials.Element, materials.Grade, error) {
	grade := materials.DefaultGrade
	grades := make([]huh.Option[materials.Grade], 0, len(materials.Grades))
	for _, g := range materials.Grades {
		grades = append(grades, huh.NewOption(string(g), g))
	}
	el, err := runElementForm(
		huh.NewSelect[materials.Grade]().
			Title("Strength").
			Options(grades...).
			Value(&grade),
	)
	return el, grade, err
}

// RunSteelForm collects an element and its rebar.
func RunSteelForm() (materials.Element, materials.Rebar, error) {
	gauge := materials.Gauge(4)
	gauges := make([]huh.Option[materials.Gauge], 0, len(materials.Gauges))
	for _, g := range materials.Gauges {
		gauges = append(gauges, huh.NewOption("#"+strconv.Itoa(int(g)), g))
	}
	bars, spacing := "4", "20"

	el, err := runElementForm(
		huh.NewSelect[materials.Gauge]().
			Title("Bar gauge").
			Options(gauges...).
			Value(&gauge),
		numberInput("Number of bars", &bars, minInt(materials.MinBars)),
		numberInput("Stirrup spacing (cm)", &spacing, minFloat(materials.MinSpacingCm)),
	)
	if err != nil {
		return nil, materials.Rebar{}, err
	}

	n, _ := strconv.Atoi(bars)
	return el, materials.Rebar{Gauge: gauge, Bars: n, SpacingCm: parseFloats(spacing)[0]}, nil
}

// RunExcavationForm collects the work label and three dimensions.
func RunExcavationForm() (work materials.Work, length, width, height float64, err error) {
	work = materials.WorkExcavation
	works := make([]huh.Option[materials.Work], 0, len(materials.Works))
	for _, w := range materials.Works {
		works = append(works, huh.NewOption(string(w), w))
	}
	var l, w, h string
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[materials.Work]().
				Title("Work").
				Options(works...).
				Value(&work),
			numberInput("Length (m)", &l, minFloat(materials.MinDimension)),
			numberInput("Width (m)", &w, minFloat(materials.MinDimension)),
			numberInput("Height (m)", &h, minFloat(materials.MinDimension)),
		),
	).WithTheme(Theme()).Run()
	if err != nil {
		return "", 0, 0, 0, err
	}
	v := parseFloats(l, w, h)
	return work, v[0], v[1], v[2], nil
}

// RunBlockForm collects wall length and height.
func RunBlockForm() (length, height float64, err error) {
	v, err := runPairForm("Wall length (m)", "Wall height (m)")
	if err != nil {
		return 0, 0, err
	}
	return v[0], v[1], nil
}

// RunPaintForm collects surface length and width.
func RunPaintForm() (length, width float64, err error) {
	v, err := runPairForm("Length (m)", "Width (m)")
	if err != nil {
		return 0, 0, err
	}
	return v[0], v[1], nil
}

func runPairForm(first, second string) ([]float64, error) {
	var a, b string
	if err := huh.NewForm(
		huh.NewGroup(
			numberInput(first, &a, minFloat(materials.MinDimension)),
			numberInput(second, &b, minFloat(materials.MinDimension)),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return nil, err
	}
	return parseFloats(a, b), nil
}
