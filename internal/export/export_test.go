package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ChicagoDave/takeoff/pkg/cost"
	"github.com/ChicagoDave/takeoff/pkg/spec"
)

func testReport(t *testing.T, priced bool) *cost.Report {
	t.Helper()
	to := &spec.Takeoff{
		SpecVersion: "0.1.0",
		Project:     spec.ProjectDef{Name: "Casa Norte", Client: "Ortega", Currency: "MXN"},
		Concrete: []spec.ConcreteItem{
			{Item: spec.Item{Name: "columns", Count: 2}, Grade: "250 kg/cm²", Element: &spec.ElementDef{Kind: "column", Length: 3, Width: 0.3, Height: 0.5}},
		},
		Steel: []spec.SteelItem{
			{Item: spec.Item{Name: "cages"}, Element: spec.ElementDef{Kind: "column", Length: 3, Width: 0.3, Height: 0.5}, Gauge: 4, Bars: 4, SpacingCm: 20},
		},
		Block: []spec.BlockItem{{Item: spec.Item{Name: "wall"}, Length: 4, Height: 2}},
		Paint: []spec.PaintItem{{Item: spec.Item{Name: "room"}, Length: 5, Width: 4}},
	}
	if priced {
		to.Prices = spec.Prices{PaintL: 100}
	}
	r, err := cost.Estimate(to)
	require.NoError(t, err)
	return r
}

func TestQuantityRowsSkipsZero(t *testing.T) {
	rows := quantityRows(cost.Quantities{PaintM2: 20, PaintL: 2})
	require.Len(t, rows, 2)
	assert.Equal(t, "20.00 m²", rows[0].String())
	assert.Equal(t, "2.00 L", rows[1].String())

	blocks := quantityRows(cost.Quantities{Blocks: 99.6})
	assert.Equal(t, "100 pcs", blocks[0].String())
}

func TestWriteXLSX(t *testing.T) {
	r := testReport(t, true)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(r, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	assert.Equal(t, []string{summarySheet, linesSheet}, f.GetSheetList())

	a1, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Material takeoff: Casa Norte", a1)

	rows, err := f.GetRows(linesSheet)
	require.NoError(t, err)
	require.Len(t, rows, len(r.Lines)+1)
	assert.Equal(t, lineHeaders[0], rows[0][0])
	assert.Equal(t, "concrete", rows[1][0])
	assert.Equal(t, "columns", rows[1][1])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	var sawCost bool
	for _, row := range summary {
		if len(row) > 2 && row[0] == "Cost" {
			sawCost = true
			assert.Equal(t, "MXN", row[2])
		}
	}
	assert.True(t, sawCost, "summary sheet should include cost")
}

func TestSummaryCells(t *testing.T) {
	cells := summaryCells(testReport(t, false))
	require.NotEmpty(t, cells)
	assert.Equal(t, cell{"A1", "Material takeoff: Casa Norte"}, cells[0])

	values := map[string]any{}
	for _, c := range cells {
		values[c.ref] = c.value
	}
	assert.Equal(t, "Client", values["A2"])
	assert.Equal(t, "Ortega", values["B2"])

	last := cells[len(cells)-3:]
	assert.Equal(t, "Blocks to order", last[0].value)
	assert.Equal(t, 100, last[1].value)
	assert.Equal(t, "pcs", last[2].value)
}

func TestWriteSummaryReturnsCellErrors(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	// no Summary sheet exists yet
	err := writeSummary(f, testReport(t, true))
	assert.ErrorContains(t, err, "writing summary A1")
}

func TestWritePDF(t *testing.T) {
	for _, priced := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, WritePDF(testReport(t, priced), &buf))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output should be a PDF")
	}
}

func TestWritePDFEmptyReport(t *testing.T) {
	r, err := cost.Estimate(&spec.Takeoff{SpecVersion: "0.1.0"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(r, &buf))
	assert.NotZero(t, buf.Len())
}
