package materials

import "math"

// BlockResult is the masonry needed for one wall.
type BlockResult struct {
	AreaM2 float64 `json:"area_m2"`
	Blocks float64 `json:"blocks"`
	JointM float64 `json:"joint_m"`
}

// Pieces returns Blocks rounded up to whole units, for ordering.
func (b BlockResult) Pieces() int {
	// absorb float noise such as 99.99999999999997 or 100.00000000000001
	return int(math.Ceil(b.Blocks - 1e-9))
}

// Block computes wall area, block count and mortar joint length for a wall.
// Blocks is the plain area ratio; it is not rounded.
func Block(length, height float64) (BlockResult, error) {
	if err := positive(dim{"length", length}, dim{"height", height}); err != nil {
		return BlockResult{}, err
	}
	area := length * height
	return BlockResult{
		AreaM2: area,
		Blocks: area / blockFaceAreaM,
		// horizontal and vertical joints
		JointM: (length / BlockLength) * (height / BlockHeight) * JointWidth * 2,
	}, nil
}
