package cost

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ChicagoDave/takeoff/pkg/materials"
	"github.com/ChicagoDave/takeoff/pkg/spec"
)

const eps = 1e-9

func defaultTakeoff() *spec.Takeoff {
	return &spec.Takeoff{
		SpecVersion: "0.1.0",
		Project:     spec.ProjectDef{Name: "test", Currency: "MXN"},
		Concrete: []spec.ConcreteItem{
			{Item: spec.Item{Name: "columns", Count: 2}, Grade: "250 kg/cm²", Element: &spec.ElementDef{Kind: "column", Length: 3, Width: 0.3, Height: 0.5}},
			{Item: spec.Item{Name: "pad"}, Grade: "150 kg/cm²", Volume: 1},
		},
		Steel: []spec.SteelItem{
			{Item: spec.Item{Name: "cages", Count: 2}, Element: spec.ElementDef{Kind: "column", Length: 3, Width: 0.3, Height: 0.5}, Gauge: 4, Bars: 4, SpacingCm: 20},
			{Item: spec.Item{Name: "mesh"}, Element: spec.ElementDef{Kind: "slab", Length: 5, Width: 4, Thickness: 0.1}, Gauge: 3, Bars: 10, SpacingCm: 20},
		},
		Excavation: []spec.ExcavationItem{{Item: spec.Item{Name: "pit"}, Work: "excavation", Length: 2, Width: 3, Height: 1}},
		Block:      []spec.BlockItem{{Item: spec.Item{Name: "wall"}, Length: 4, Height: 2}},
		Paint:      []spec.PaintItem{{Item: spec.Item{Name: "room", Count: 3}, Length: 5, Width: 4}},
	}
}

func TestEstimateQuantities(t *testing.T) {
	report, err := Estimate(defaultTakeoff())
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Lines) != 7 {
		t.Fatalf("lines = %d, want 7", len(report.Lines))
	}
	if len(report.Subtotals) != len(Sections) {
		t.Fatalf("subtotals = %d, want %d", len(report.Subtotals), len(Sections))
	}

	// 2 columns of 0.45 m³ at 250 plus 1 m³ at 150
	concrete := report.Section(SectionConcrete).Quantities
	if math.Abs(concrete.ConcreteM3-1.9) > eps {
		t.Errorf("concrete volume = %v, want 1.9", concrete.ConcreteM3)
	}
	if math.Abs(concrete.CementKg-(0.9*350+210)) > eps {
		t.Errorf("cement = %v, want %v", concrete.CementKg, 0.9*350+210)
	}

	// 2 × 39 m column cages plus 10 × 9 m slab mesh
	steel := report.Section(SectionSteel).Quantities
	if math.Abs(steel.SteelM-(78+90)) > eps {
		t.Errorf("steel meters = %v, want 168", steel.SteelM)
	}
	if math.Abs(steel.SteelKg-(2*38.61+90*0.56)) > eps {
		t.Errorf("steel kg = %v, want %v", steel.SteelKg, 2*38.61+90*0.56)
	}

	sum := report.Summary.Quantities
	if sum.ExcavationM3 != 6 {
		t.Errorf("excavation = %v, want 6", sum.ExcavationM3)
	}
	if math.Abs(sum.Blocks-100) > eps || report.Summary.BlockPieces != 100 {
		t.Errorf("blocks = %v (%d pieces), want 100", sum.Blocks, report.Summary.BlockPieces)
	}
	if math.Abs(sum.JointM-3) > eps {
		t.Errorf("joint = %v, want 3", sum.JointM)
	}
	if sum.PaintM2 != 60 || sum.PaintL != 6 {
		t.Errorf("paint = %v m² / %v L, want 60 / 6", sum.PaintM2, sum.PaintL)
	}

	if report.Summary.Cost != nil {
		t.Error("unpriced takeoff should have no cost")
	}
}

func TestEstimateLineDetails(t *testing.T) {
	report, err := Estimate(defaultTakeoff())
	if err != nil {
		t.Fatal(err)
	}

	first := report.Lines[0]
	if first.Path != "concrete[0]" || first.Name != "columns" || first.Count != 2 {
		t.Errorf("first line = %+v", first)
	}
	unit, ok := first.Unit.(materials.ConcreteResult)
	if !ok {
		t.Fatalf("unit type = %T", first.Unit)
	}
	if math.Abs(unit.VolumeM3-0.45) > eps {
		t.Errorf("unit volume = %v, want 0.45", unit.VolumeM3)
	}

	mesh := report.Lines[3]
	if mesh.Section != SectionSteel || len(mesh.Notes) != 1 {
		t.Errorf("slab steel line should note the simplified model: %+v", mesh)
	}
	if !strings.Contains(report.Lines[2].Description, "stirrups @ 20 cm") {
		t.Errorf("column description = %q", report.Lines[2].Description)
	}
}

func TestEstimateFallbackNotes(t *testing.T) {
	to := defaultTakeoff()
	to.Concrete[1].Grade = "unknown_grade"
	to.Steel[0].Gauge = 7

	report, err := Estimate(to)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Lines[1].Notes) != 1 || !strings.Contains(report.Lines[1].Notes[0], "250 kg/cm²") {
		t.Errorf("concrete notes = %v", report.Lines[1].Notes)
	}
	if report.Lines[1].Quantities.CementKg != 350 {
		t.Errorf("fallback cement = %v, want 350", report.Lines[1].Quantities.CementKg)
	}
	if report.Lines[2].Quantities.SteelKg != 0 {
		t.Errorf("unknown gauge weight = %v, want 0", report.Lines[2].Quantities.SteelKg)
	}
}

func TestEstimatePrices(t *testing.T) {
	to := defaultTakeoff()
	to.Prices = spec.Prices{SteelKg: 10, BlockPiece: 2, PaintL: 100}

	report, err := Estimate(to)
	if err != nil {
		t.Fatal(err)
	}
	c := report.Summary.Cost
	if c == nil {
		t.Fatal("expected summary cost")
	}
	if report.Summary.Currency != "MXN" {
		t.Errorf("currency = %q", report.Summary.Currency)
	}
	if math.Abs(c.Paint-600) > eps {
		t.Errorf("paint cost = %v, want 600", c.Paint)
	}
	if math.Abs(c.Block-200) > 1e-6 {
		t.Errorf("block cost = %v, want 200", c.Block)
	}
	if c.Cement != 0 {
		t.Errorf("unpriced cement cost = %v, want 0", c.Cement)
	}

	var lineTotal float64
	for _, l := range report.Lines {
		if l.Cost == nil {
			t.Fatalf("line %s has no cost", l.Path)
		}
		lineTotal += l.Cost.Total
	}
	if math.Abs(lineTotal-c.Total) > 1e-6 {
		t.Errorf("line costs sum to %v, summary total %v", lineTotal, c.Total)
	}
	if math.Abs(c.Total-(c.Steel+c.Block+c.Paint)) > 1e-6 {
		t.Errorf("total %v is not the sum of its parts", c.Total)
	}
}

func TestEstimateRejectsInvalidItem(t *testing.T) {
	to := defaultTakeoff()
	to.Steel[0].SpacingCm = 0

	_, err := Estimate(to)
	if !errors.Is(err, materials.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "steel[0] (cages)") {
		t.Errorf("error should name the item: %v", err)
	}
}

func TestEstimateRejectsNegativeCount(t *testing.T) {
	to := &spec.Takeoff{
		Paint: []spec.PaintItem{{Item: spec.Item{Count: -3}, Length: 5, Width: 4}},
	}

	report, err := Estimate(to)
	if !errors.Is(err, materials.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if report != nil {
		t.Errorf("expected no report, got %+v", report.Summary.Quantities)
	}
	if !strings.Contains(err.Error(), "paint[0]") || !strings.Contains(err.Error(), "count") {
		t.Errorf("error should name the item and field: %v", err)
	}

	to = defaultTakeoff()
	to.Steel[1].Count = -1
	if _, err := Estimate(to); !errors.Is(err, materials.ErrInvalidInput) {
		t.Errorf("steel: err = %v, want ErrInvalidInput", err)
	}
}

func TestEstimateUnknownKind(t *testing.T) {
	to := defaultTakeoff()
	to.Concrete[0].Element.Kind = "wall"

	_, err := Estimate(to)
	if !errors.Is(err, materials.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestEstimateEmpty(t *testing.T) {
	report, err := Estimate(&spec.Takeoff{SpecVersion: "0.1.0"})
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Lines) != 0 || report.Summary.BlockPieces != 0 {
		t.Errorf("empty takeoff report = %+v", report)
	}
	if st := report.Section(SectionPaint); st.Lines != 0 {
		t.Errorf("paint subtotal = %+v", st)
	}
}
