package materials

// Fixed unit assumptions. All lengths are meters unless the name says otherwise.
const (
	BlockLength    = 0.40  // m, standard block face length
	BlockHeight    = 0.20  // m, standard block face height
	JointWidth     = 0.015 // m, mortar joint
	PaintCoverage  = 10.0  // m² per liter
	StirrupLap     = 0.20  // m, lap allowance added to each stirrup
	CmPerM         = 100.0
	MinDimension   = 0.1 // m, smallest dimension accepted at entry
	MinSpacingCm   = 5.0 // cm, smallest stirrup spacing accepted at entry
	MinBars        = 1
	DefaultGrade   = Grade250
	blockFaceAreaM = BlockLength * BlockHeight
)

// Grade is a concrete strength class label.
type Grade string

const (
	Grade150 Grade = "150 kg/cm²"
	Grade200 Grade = "200 kg/cm²"
	Grade250 Grade = "250 kg/cm²"
	Grade300 Grade = "300 kg/cm²"
)

// Mix holds the material needed per cubic meter of concrete.
type Mix struct {
	CementKg float64 `json:"cement_kg" yaml:"cement_kg"`
	SandM3   float64 `json:"sand_m3" yaml:"sand_m3"`
	GravelM3 float64 `json:"gravel_m3" yaml:"gravel_m3"`
	WaterL   float64 `json:"water_l" yaml:"water_l"`
}

var mixes = map[Grade]Mix{
	Grade150: {CementKg: 210, SandM3: 0.56, GravelM3: 0.84, WaterL: 180},
	Grade200: {CementKg: 280, SandM3: 0.48, GravelM3: 0.96, WaterL: 180},
	Grade250: {CementKg: 350, SandM3: 0.56, GravelM3: 0.84, WaterL: 180},
	Grade300: {CementKg: 420, SandM3: 0.48, GravelM3: 0.96, WaterL: 180},
}

// Grades lists the known grades from weakest to strongest.
var Grades = []Grade{Grade150, Grade200, Grade250, Grade300}

// LookupGrade returns the mix for g. Unknown grades resolve to the
// DefaultGrade mix with ok set to false.
func LookupGrade(g Grade) (mix Mix, ok bool) {
	mix, ok = mixes[g]
	if !ok {
		return mixes[DefaultGrade], false
	}
	return mix, true
}

// Gauge is a rebar size in eighths of an inch (3 = 3/8").
type Gauge int

// kg per linear meter
var gaugeWeights = map[Gauge]float64{
	3: 0.56, // 3/8"
	4: 0.99, // 1/2"
	5: 1.55, // 5/8"
	6: 2.24, // 3/4"
	8: 3.98, // 1"
}

// Gauges lists the known gauges in ascending size.
var Gauges = []Gauge{3, 4, 5, 6, 8}

// GaugeWeight returns kg per meter for g. Unknown gauges weigh 0 and
// report ok=false.
func GaugeWeight(g Gauge) (kgPerM float64, ok bool) {
	kgPerM, ok = gaugeWeights[g]
	return kgPerM, ok
}
