package spec

import (
	"fmt"

	"github.com/ChicagoDave/takeoff/pkg/materials"
)

// Takeoff is the top-level description of one job's quantity takeoff.
type Takeoff struct {
	SpecVersion string           `yaml:"spec_version" json:"spec_version"`
	Project     ProjectDef       `yaml:"project" json:"project"`
	Prices      Prices           `yaml:"prices" json:"prices"`
	Concrete    []ConcreteItem   `yaml:"concrete" json:"concrete"`
	Steel       []SteelItem      `yaml:"steel" json:"steel"`
	Excavation  []ExcavationItem `yaml:"excavation" json:"excavation"`
	Block       []BlockItem      `yaml:"block" json:"block"`
	Paint       []PaintItem      `yaml:"paint" json:"paint"`
}

// ItemCount returns the number of line items across all sections.
func (t *Takeoff) ItemCount() int {
	return len(t.Concrete) + len(t.Steel) + len(t.Excavation) + len(t.Block) + len(t.Paint)
}

type ProjectDef struct {
	Name     string `yaml:"name" json:"name"`
	Client   string `yaml:"client" json:"client"`
	Location string `yaml:"location" json:"location"`
	Currency string `yaml:"currency" json:"currency"`
}

// Prices are optional unit prices. A zero price leaves that material
// unpriced.
type Prices struct {
	CementKg     float64 `yaml:"cement_kg" json:"cement_kg"`
	SandM3       float64 `yaml:"sand_m3" json:"sand_m3"`
	GravelM3     float64 `yaml:"gravel_m3" json:"gravel_m3"`
	WaterL       float64 `yaml:"water_l" json:"water_l"`
	SteelKg      float64 `yaml:"steel_kg" json:"steel_kg"`
	ExcavationM3 float64 `yaml:"excavation_m3" json:"excavation_m3"`
	BlockPiece   float64 `yaml:"block_piece" json:"block_piece"`
	PaintL       float64 `yaml:"paint_l" json:"paint_l"`
}

// Any reports whether at least one price is set.
func (p Prices) Any() bool {
	return p != Prices{}
}

// Item holds the fields shared by every line item.
type Item struct {
	Name  string `yaml:"name" json:"name"`
	Count int    `yaml:"count,omitempty" json:"count,omitempty"`
}

// Multiplier returns Count, treating an omitted count as 1.
func (i Item) Multiplier() float64 {
	if i.Count == 0 {
		return 1
	}
	return float64(i.Count)
}

// ElementDef is the flat file form of an element. Which dimensions apply
// depends on Kind: length/width/height for beams, columns and piers;
// length/width/thickness for slabs; side1/side2/height for footings.
type ElementDef struct {
	Kind      string  `yaml:"kind" json:"kind"`
	Length    float64 `yaml:"length,omitempty" json:"length,omitempty"`
	Width     float64 `yaml:"width,omitempty" json:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty" json:"height,omitempty"`
	Thickness float64 `yaml:"thickness,omitempty" json:"thickness,omitempty"`
	Side1     float64 `yaml:"side1,omitempty" json:"side1,omitempty"`
	Side2     float64 `yaml:"side2,omitempty" json:"side2,omitempty"`
}

// Element converts the definition into its typed geometry.
func (d ElementDef) Element() (materials.Element, error) {
	kind, err := materials.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	switch {
	case kind.Framed():
		return materials.Framed{Member: kind, Length: d.Length, Width: d.Width, Height: d.Height}, nil
	case kind == materials.KindSlab:
		return materials.Slab{Length: d.Length, Width: d.Width, Thickness: d.Thickness}, nil
	case kind == materials.KindFooting:
		return materials.Footing{Side1: d.Side1, Side2: d.Side2, Height: d.Height}, nil
	}
	return nil, fmt.Errorf("%w: unsupported element kind %q", materials.ErrInvalidInput, kind)
}

// Dimensions returns the named dimensions that apply to the definition's
// kind, in input order. Unknown kinds return nil.
func (d ElementDef) Dimensions() []Dimension {
	kind, err := materials.ParseKind(d.Kind)
	if err != nil {
		return nil
	}
	switch {
	case kind.Framed():
		return []Dimension{{"length", d.Length}, {"width", d.Width}, {"height", d.Height}}
	case kind == materials.KindSlab:
		return []Dimension{{"length", d.Length}, {"width", d.Width}, {"thickness", d.Thickness}}
	default:
		return []Dimension{{"side1", d.Side1}, {"side2", d.Side2}, {"height", d.Height}}
	}
}

// Dimension is a named measurement in meters.
type Dimension struct {
	Name  string
	Value float64
}

// ConcreteItem is a pour given either by element geometry or by a direct
// volume.
type ConcreteItem struct {
	Item    `yaml:",inline"`
	Grade   string      `yaml:"grade" json:"grade"`
	Element *ElementDef `yaml:"element,omitempty" json:"element,omitempty"`
	Volume  float64     `yaml:"volume,omitempty" json:"volume,omitempty"`
}

type SteelItem struct {
	Item      `yaml:",inline"`
	Element   ElementDef `yaml:"element" json:"element"`
	Gauge     int        `yaml:"gauge" json:"gauge"`
	Bars      int        `yaml:"bars" json:"bars"`
	SpacingCm float64    `yaml:"spacing_cm" json:"spacing_cm"`
}

// Rebar returns the item's rebar specification.
func (s SteelItem) Rebar() materials.Rebar {
	return materials.Rebar{Gauge: materials.Gauge(s.Gauge), Bars: s.Bars, SpacingCm: s.SpacingCm}
}

type ExcavationItem struct {
	Item   `yaml:",inline"`
	Work   string  `yaml:"work" json:"work"`
	Length float64 `yaml:"length" json:"length"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

type BlockItem struct {
	Item   `yaml:",inline"`
	Length float64 `yaml:"length" json:"length"`
	Height float64 `yaml:"height" json:"height"`
}

type PaintItem struct {
	Item   `yaml:",inline"`
	Length float64 `yaml:"length" json:"length"`
	Width  float64 `yaml:"width" json:"width"`
}
