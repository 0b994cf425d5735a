package materials

// Work is a descriptive label for a volume of earthwork or demolition. It
// does not change the computed volume.
type Work string

const (
	WorkExcavation      Work = "excavation"
	WorkFloorDemolition Work = "floor demolition"
	WorkSlabDemolition  Work = "slab demolition"
)

// Works lists the labels offered to users.
var Works = []Work{WorkExcavation, WorkFloorDemolition, WorkSlabDemolition}

// Excavation returns length × width × height in m³.
func Excavation(length, width, height float64) (float64, error) {
	if err := positive(dim{"length", length}, dim{"width", width}, dim{"height", height}); err != nil {
		return 0, err
	}
	return length * width * height, nil
}
