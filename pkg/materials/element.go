package materials

import (
	"fmt"
	"strings"
)

// Kind names a structural element type.
type Kind string

const (
	KindBeam    Kind = "beam"
	KindColumn  Kind = "column"
	KindPier    Kind = "pier"
	KindSlab    Kind = "slab"
	KindFooting Kind = "footing"
)

// Kinds lists every element kind in display order.
var Kinds = []Kind{KindBeam, KindColumn, KindPier, KindSlab, KindFooting}

var kindAliases = map[string]Kind{
	"beam":     KindBeam,
	"trabe":    KindBeam,
	"column":   KindColumn,
	"columna":  KindColumn,
	"pier":     KindPier,
	"castillo": KindPier,
	"slab":     KindSlab,
	"losa":     KindSlab,
	"footing":  KindFooting,
	"zapata":   KindFooting,
}

// ParseKind resolves a kind name, accepting Spanish trade names as aliases.
// Unknown names are invalid input.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: unknown element kind %q", ErrInvalidInput, s)
	}
	return k, nil
}

// Framed reports whether k is a beam, column or pier.
func (k Kind) Framed() bool {
	return k == KindBeam || k == KindColumn || k == KindPier
}

// Element is the geometry of one structural element. It is implemented by
// Framed, Slab and Footing only.
type Element interface {
	Kind() Kind
	dims() []dim
}

// Framed is a beam, column or pier: a prism wrapped by stirrups.
type Framed struct {
	Member Kind    `json:"kind"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (f Framed) Kind() Kind { return f.Member }

func (f Framed) dims() []dim {
	return []dim{{"length", f.Length}, {"width", f.Width}, {"height", f.Height}}
}

// Slab is a flat element of the given thickness.
type Slab struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
}

func (Slab) Kind() Kind { return KindSlab }

func (s Slab) dims() []dim {
	return []dim{{"length", s.Length}, {"width", s.Width}, {"thickness", s.Thickness}}
}

// Footing is a rectangular spread footing.
type Footing struct {
	Side1  float64 `json:"side1"`
	Side2  float64 `json:"side2"`
	Height float64 `json:"height"`
}

func (Footing) Kind() Kind { return KindFooting }

func (f Footing) dims() []dim {
	return []dim{{"side1", f.Side1}, {"side2", f.Side2}, {"height", f.Height}}
}

func checkElement(e Element) error {
	if e == nil {
		return fmt.Errorf("%w: element is required", ErrInvalidInput)
	}
	if f, ok := e.(Framed); ok && !f.Member.Framed() {
		return fmt.Errorf("%w: %q is not a beam, column or pier", ErrInvalidInput, f.Member)
	}
	return positive(e.dims()...)
}

// Volume returns the concrete volume of e in m³.
func Volume(e Element) (float64, error) {
	if err := checkElement(e); err != nil {
		return 0, err
	}
	d := e.dims()
	return d[0].value * d[1].value * d[2].value, nil
}
