package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/takeoff/pkg/materials"
)

// execute runs the root command in an empty working directory so no
// config or .env file is picked up.
func execute(t *testing.T, env map[string]string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	chdir(t, t.TempDir())

	cmd := NewRootCmd(func(k string) string { return env[k] })
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// exampleDir is resolved before any test changes directory.
var exampleDir = func() string {
	dir, err := filepath.Abs("../../examples/casa-norte")
	if err != nil {
		panic(err)
	}
	return dir
}()

func TestConcreteByVolume(t *testing.T) {
	out, _, err := execute(t, nil, "concrete", "--volume", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "250 kg/cm²")
	assert.Contains(t, out, "3500.00 kg")
	assert.Contains(t, out, "5.60 m³")
}

func TestConcreteByElement(t *testing.T) {
	out, _, err := execute(t, nil, "concrete", "--kind", "losa", "--length", "5", "--width", "4", "--thickness", "0.1", "--grade", "300 kg/cm²")
	require.NoError(t, err)
	assert.Contains(t, out, "2.00 m³")
	assert.Contains(t, out, "840.00 kg")
}

func TestConcreteUnknownGradeWarns(t *testing.T) {
	out, errOut, err := execute(t, nil, "concrete", "--volume", "1", "--grade", "unknown_grade")
	require.NoError(t, err)
	assert.Contains(t, errOut, "unknown grade")
	assert.Contains(t, out, "350.00 kg")
}

func TestConcreteNeedsVolumeOrElement(t *testing.T) {
	_, _, err := execute(t, nil, "concrete")
	assert.Error(t, err)
}

func TestSteelColumn(t *testing.T) {
	out, _, err := execute(t, nil, "steel", "--kind", "column", "--length", "3", "--width", "0.3", "--height", "0.5",
		"--gauge", "4", "--bars", "4", "--spacing", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "39.00 m")
	assert.Contains(t, out, "38.61 kg")
	assert.Contains(t, out, "1.80 m")
	assert.Contains(t, out, "15.00")
}

func TestEntryMinimums(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"spacing", []string{"steel", "--kind", "beam", "--length", "3", "--width", "0.3", "--height", "0.5", "--spacing", "2"}},
		{"bars", []string{"steel", "--kind", "beam", "--length", "3", "--width", "0.3", "--height", "0.5", "--bars", "0"}},
		{"element dimension", []string{"concrete", "--kind", "footing", "--side1", "1", "--side2", "0.05", "--height", "0.3"}},
		{"block", []string{"block", "--length", "4", "--height", "0"}},
		{"paint", []string{"paint", "--length", "0.09", "--width", "4"}},
		{"excavation", []string{"excavation", "--length", "2", "--width", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, nil, tt.args...)
			assert.ErrorIs(t, err, materials.ErrInvalidInput)
		})
	}
}

func TestUnknownKind(t *testing.T) {
	_, _, err := execute(t, nil, "steel", "--kind", "wall", "--length", "3")
	assert.ErrorIs(t, err, materials.ErrInvalidInput)
}

func TestBlockAndExcavation(t *testing.T) {
	out, _, err := execute(t, nil, "block", "--length", "4", "--height", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "8.00 m²")
	assert.Contains(t, out, "100 pcs")
	assert.Contains(t, out, "3.00 m")

	out, _, err = execute(t, nil, "excavation", "--work", "slab demolition", "--length", "2", "--width", "3", "--height", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "slab demolition")
	assert.Contains(t, out, "6.00 m³")
}

func TestJSONOutputFromEnv(t *testing.T) {
	out, _, err := execute(t, map[string]string{"TAKEOFF_OUTPUT": "json"}, "paint", "--length", "5", "--width", "4")
	require.NoError(t, err)

	var res materials.PaintResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, materials.PaintResult{AreaM2: 20, Liters: 2}, res)
}

func TestBadConfig(t *testing.T) {
	_, _, err := execute(t, map[string]string{"TAKEOFF_OUTPUT": "xml"}, "grades")
	assert.ErrorContains(t, err, "loading config")
}

func TestValidateExample(t *testing.T) {
	out, _, err := execute(t, nil, "validate", exampleDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Result: VALID")
	assert.Contains(t, out, "16 line items")
}

func TestValidateInvalid(t *testing.T) {
	dir := t.TempDir()
	yaml := "spec_version: \"0.1.0\"\nblock:\n  - {name: wall, length: 4, height: 0.05}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "takeoff.yaml"), []byte(yaml), 0o600))

	out, _, err := execute(t, nil, "validate", dir)
	assert.ErrorIs(t, err, errInvalidTakeoff)
	assert.Contains(t, out, "Result: INVALID")
	assert.Contains(t, out, "block[0].height")

	_, errOut, err := execute(t, nil, "estimate", dir)
	assert.ErrorIs(t, err, errInvalidTakeoff)
	assert.Contains(t, errOut, "ERRORS (1)")
}

func TestEstimate(t *testing.T) {
	out, _, err := execute(t, nil, "estimate", exampleDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Material takeoff: Casa Norte")
	assert.Contains(t, out, "column cages")
	assert.Contains(t, out, "order 1170 pcs")
	assert.Contains(t, out, "Cost MXN")

	out, _, err = execute(t, nil, "estimate", "--json", exampleDir)
	require.NoError(t, err)
	var est struct {
		Lines []json.RawMessage `json:"lines"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &est))
	assert.Len(t, est.Lines, 16)
}

func TestEstimateMissingProject(t *testing.T) {
	_, _, err := execute(t, nil, "estimate", filepath.Join(t.TempDir(), "nowhere"))
	assert.ErrorContains(t, err, "loading takeoff")
}

func TestExport(t *testing.T) {
	outDir := t.TempDir()
	xlsx := filepath.Join(outDir, "takeoff.xlsx")
	pdf := filepath.Join(outDir, "takeoff.pdf")

	_, _, err := execute(t, nil, "export", exampleDir, "--xlsx", xlsx, "--pdf", pdf)
	require.NoError(t, err)

	for _, p := range []string{xlsx, pdf} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	_, _, err = execute(t, nil, "export", exampleDir)
	assert.Error(t, err)
}

func TestReferenceTables(t *testing.T) {
	out, _, err := execute(t, nil, "grades")
	require.NoError(t, err)
	assert.Contains(t, out, "250 kg/cm² (default)")
	assert.Contains(t, out, "420")

	out, _, err = execute(t, nil, "gauges")
	require.NoError(t, err)
	assert.Contains(t, out, "#8")
	assert.Contains(t, out, "3.98")

	out, _, err = execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "takeoff version")
}

func TestMoney(t *testing.T) {
	tests := map[float64]string{
		0:           "0.00",
		12.5:        "12.50",
		100:         "100.00",
		1000:        "1,000.00",
		1234567.891: "1,234,567.89",
		-2500:       "-2,500.00",
	}
	for v, want := range tests {
		assert.Equal(t, want, money(v), "money(%v)", v)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
