package validation

import (
	"fmt"
	"strings"

	"github.com/ChicagoDave/takeoff/pkg/materials"
	"github.com/ChicagoDave/takeoff/pkg/spec"
)

// Validate runs schema validation and category checks and merges the
// results into one report.
func Validate(t *spec.Takeoff) *Report {
	r := ValidateSchema(t)
	r.Merge(ValidateCategories(t))
	return r
}

// ValidateCategories warns about grades and gauges outside the known
// tables. They never invalidate a takeoff: an unknown grade is mixed as
// the default grade and an unknown gauge weighs nothing.
func ValidateCategories(t *spec.Takeoff) *Report {
	r := NewReport()

	for i, it := range t.Concrete {
		if _, ok := materials.LookupGrade(materials.Grade(it.Grade)); ok {
			continue
		}
		path := fmt.Sprintf("concrete[%d]", i)
		r.AddWarning(Result{
			Level:       LevelCategory,
			Message:     fmt.Sprintf("%s: unknown grade %q, using %s", path, it.Grade, materials.DefaultGrade),
			SpecPath:    path + ".grade",
			Item:        it.Name,
			ActualValue: it.Grade,
			Expected:    gradeList(),
		})
	}

	for i, it := range t.Steel {
		if _, ok := materials.GaugeWeight(materials.Gauge(it.Gauge)); ok {
			continue
		}
		path := fmt.Sprintf("steel[%d]", i)
		r.AddWarning(Result{
			Level:       LevelCategory,
			Message:     fmt.Sprintf("%s: unknown gauge %d, weight will be 0", path, it.Gauge),
			SpecPath:    path + ".gauge",
			Item:        it.Name,
			ActualValue: it.Gauge,
			Expected:    gaugeList(),
		})
	}

	return r
}

func gradeList() string {
	names := make([]string, len(materials.Grades))
	for i, g := range materials.Grades {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

func gaugeList() string {
	names := make([]string, len(materials.Gauges))
	for i, g := range materials.Gauges {
		names[i] = fmt.Sprint(int(g))
	}
	return "one of " + strings.Join(names, ", ")
}
