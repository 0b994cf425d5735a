package validation

import "testing"

func TestNewReportIsValid(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if r.Errors == nil || r.Warnings == nil || r.Info == nil {
		t.Error("slices should be non-nil so they encode as []")
	}
	if r.Summary != "0 errors, 0 warnings, 0 info" {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestErrorInvalidates(t *testing.T) {
	r := NewReport()
	r.AddError(Result{
		Level:    LevelSchema,
		Message:  "steel[0]: spacing_cm 2.0 is below the 5 cm minimum",
		SpecPath: "steel[0].spacing_cm",
	})
	if r.Valid {
		t.Error("report with an error should be invalid")
	}
	if len(r.Errors) != 1 || r.Errors[0].Severity != SeverityError {
		t.Fatalf("errors = %+v", r.Errors)
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("summary = %q", r.Summary)
	}
}

func TestWarningsAndInfoKeepValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelCategory, Message: "unknown gauge 7"})
	r.AddInfo(Result{Level: LevelSchema, Message: "3 line items"})

	if !r.Valid {
		t.Error("warnings and info should not invalidate a report")
	}
	if r.Warnings[0].Severity != SeverityWarning {
		t.Errorf("warning severity = %s", r.Warnings[0].Severity)
	}
	if r.Info[0].Severity != SeverityInfo {
		t.Errorf("info severity = %s", r.Info[0].Severity)
	}
}

func TestMergeStages(t *testing.T) {
	schema := NewReport()
	schema.AddError(Result{Level: LevelSchema, Message: "block[0].height 0.05 is below the 0.1 m minimum"})
	schema.AddInfo(Result{Level: LevelSchema, Message: "1 line items"})

	categories := NewReport()
	categories.AddWarning(Result{Level: LevelCategory, Message: "unknown grade"})

	schema.Merge(categories)

	if schema.Valid {
		t.Error("merged report should stay invalid")
	}
	if len(schema.Errors) != 1 || len(schema.Warnings) != 1 || len(schema.Info) != 1 {
		t.Errorf("merged counts = %d/%d/%d", len(schema.Errors), len(schema.Warnings), len(schema.Info))
	}
	if schema.Summary != "1 errors, 1 warnings, 1 info" {
		t.Errorf("summary = %q", schema.Summary)
	}
}

func TestMergeInvalidIntoValid(t *testing.T) {
	r := NewReport()
	other := NewReport()
	other.AddError(Result{Level: LevelSchema, Message: "spec_version is required"})

	r.Merge(other)
	if r.Valid {
		t.Error("merging an invalid report should invalidate")
	}
}
