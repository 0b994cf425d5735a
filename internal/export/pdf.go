package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/ChicagoDave/takeoff/pkg/cost"
)

// WritePDF renders r as a one-section-per-table A4 report.
func WritePDF(r *cost.Report, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, tr(title(r)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if r.Project.Client != "" {
		pdf.CellFormat(190, 6, tr("Client: "+r.Project.Client), "", 1, "L", false, 0, "")
	}
	if r.Project.Location != "" {
		pdf.CellFormat(190, 6, tr("Location: "+r.Project.Location), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, s := range cost.Sections {
		st := r.Section(s)
		if st.Lines == 0 {
			continue
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(190, 8, tr(sectionTitle(s)), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(40, 7, "Item", "1", 0, "L", true, 0, "")
		pdf.CellFormat(80, 7, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(15, 7, "Count", "1", 0, "C", true, 0, "")
		pdf.CellFormat(55, 7, "Quantities", "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, l := range r.Lines {
			if l.Section != s {
				continue
			}
			rows := quantityRows(l.Quantities)
			h := float64(max(len(rows), 1)) * 5
			x, y := pdf.GetXY()
			pdf.CellFormat(40, h, tr(l.Name), "1", 0, "L", false, 0, "")
			pdf.CellFormat(80, h, tr(l.Description), "1", 0, "L", false, 0, "")
			pdf.CellFormat(15, h, fmt.Sprintf("%g", l.Count), "1", 0, "C", false, 0, "")
			for i, q := range rows {
				pdf.SetXY(x+135, y+float64(i)*5)
				pdf.CellFormat(55, 5, tr(q.label+": "+q.String()), "LR", 0, "L", false, 0, "")
			}
			pdf.SetXY(x, y+h)
			pdf.Line(x+135, y+h, x+190, y+h)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Totals", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, q := range quantityRows(r.Summary.Quantities) {
		pdf.CellFormat(60, 6, tr(q.label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, tr(q.String()), "B", 1, "R", false, 0, "")
	}
	pdf.CellFormat(60, 6, "Blocks to order", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, fmt.Sprintf("%d pcs", r.Summary.BlockPieces), "B", 1, "R", false, 0, "")
	if c := r.Summary.Cost; c != nil {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(60, 7, "Cost", "B", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr(fmt.Sprintf("%.2f %s", c.Total, r.Summary.Currency)), "B", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func sectionTitle(s cost.Section) string {
	switch s {
	case cost.SectionConcrete:
		return "Concrete"
	case cost.SectionSteel:
		return "Reinforcing steel"
	case cost.SectionExcavation:
		return "Excavation and demolition"
	case cost.SectionBlock:
		return "Block walls"
	case cost.SectionPaint:
		return "Paint"
	}
	return string(s)
}
