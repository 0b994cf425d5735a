package materials

// PaintResult is the paint needed for one surface.
type PaintResult struct {
	AreaM2 float64 `json:"area_m2"`
	Liters float64 `json:"liters"`
}

// Paint computes the area and liters of paint for a surface at
// PaintCoverage m² per liter.
func Paint(length, width float64) (PaintResult, error) {
	if err := positive(dim{"length", length}, dim{"width", width}); err != nil {
		return PaintResult{}, err
	}
	area := length * width
	return PaintResult{AreaM2: area, Liters: area / PaintCoverage}, nil
}
