package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ChicagoDave/takeoff/pkg/cost"
)

const (
	summarySheet = "Summary"
	linesSheet   = "Lines"
)

var lineHeaders = []string{
	"Section", "Item", "Description", "Count",
	"Concrete m³", "Cement kg", "Sand m³", "Gravel m³", "Water L",
	"Steel m", "Steel kg", "Excavation m³", "Wall m²", "Blocks", "Joint m",
	"Paint m²", "Paint L", "Cost", "Notes",
}

// WriteXLSX writes r as a workbook with a Summary and a Lines sheet.
func WriteXLSX(r *cost.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	if err := writeSummary(f, r); err != nil {
		return err
	}
	if err := writeLines(f, r); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// cell is one value placed on the summary sheet.
type cell struct {
	ref   string
	value any
}

// summaryCells lays out the summary sheet. The cost line appears only
// when the report is priced.
func summaryCells(r *cost.Report) []cell {
	cells := []cell{{"A1", title(r)}}
	put := func(row int, values ...any) {
		for i, v := range values {
			cells = append(cells, cell{fmt.Sprintf("%c%d", 'A'+i, row), v})
		}
	}

	row := 2
	for _, m := range [][2]string{
		{"Client", r.Project.Client},
		{"Location", r.Project.Location},
	} {
		if m[1] == "" {
			continue
		}
		put(row, m[0], m[1])
		row++
	}

	row++
	put(row, "Material", "Quantity", "Unit")
	for _, q := range quantityRows(r.Summary.Quantities) {
		row++
		put(row, q.label, q.value, q.unit)
	}
	row++
	put(row, "Blocks to order", r.Summary.BlockPieces, "pcs")

	if c := r.Summary.Cost; c != nil {
		row += 2
		put(row, "Cost", c.Total, r.Summary.Currency)
	}
	return cells
}

func writeSummary(f *excelize.File, r *cost.Report) error {
	for _, c := range summaryCells(r) {
		if err := f.SetCellValue(summarySheet, c.ref, c.value); err != nil {
			return fmt.Errorf("writing summary %s: %w", c.ref, err)
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 20)
}

func writeLines(f *excelize.File, r *cost.Report) error {
	for i, h := range lineHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(linesSheet, cell, h); err != nil {
			return err
		}
	}

	for i, l := range r.Lines {
		q := l.Quantities
		var lineCost any
		if l.Cost != nil {
			lineCost = l.Cost.Total
		}
		values := []any{
			string(l.Section), l.Name, l.Description, l.Count,
			q.ConcreteM3, q.CementKg, q.SandM3, q.GravelM3, q.WaterL,
			q.SteelM, q.SteelKg, q.ExcavationM3, q.WallM2, q.Blocks, q.JointM,
			q.PaintM2, q.PaintL, lineCost, strings.Join(l.Notes, "; "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(linesSheet, cell, &values); err != nil {
			return fmt.Errorf("writing line %s: %w", l.Path, err)
		}
	}
	return f.SetColWidth(linesSheet, "C", "C", 40)
}
