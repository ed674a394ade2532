package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const fontName = "Helvetica"

// WritePDF renders the document as a one-page A4 quote.
func WritePDF(doc Document) ([]byte, error) {
	q := doc.Quote
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontName, "B", 16)
	pdf.CellFormat(0, 10, "Fence Installation Quote", "", 1, "C", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Quote %s, issued %s", doc.Number, formatDate(doc.IssuedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, tr("Prepared for: "+doc.Customer), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fence length: %d six-foot section(s)", q.ProjectSize), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Materials sourced from: "+q.ChosenVendorName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{95, 25, 30, 30}
	drawTableRow(pdf, []string{"Material", "Qty", "Unit price", "Line total"}, colWidths, true)
	for _, line := range q.Materials.LineItems {
		cost, ok := line.Cost(q.ChosenVendor)
		if !ok {
			return nil, fmt.Errorf("material %q has no %s price", line.MaterialID, q.ChosenVendor)
		}
		drawTableRow(pdf, []string{
			tr(line.Label),
			fmt.Sprintf("%g", line.Quantity),
			formatMoney(cost.UnitPrice),
			formatMoney(cost.LineTotal),
		}, colWidths, false)
	}
	pdf.Ln(4)

	summary := [][2]string{
		{"Materials", formatMoney(q.Materials.BaseTotal)},
		{fmt.Sprintf("Markup (%g%%)", q.Materials.MarkupPct), formatMoney(q.Materials.MarkupAmount)},
		{fmt.Sprintf("Labor (%g h x %s)", q.Labor.Hours, formatMoney(q.Labor.Rate)), formatMoney(q.Labor.Total)},
	}
	if q.Tax.Amount > 0 {
		summary = append(summary, [2]string{fmt.Sprintf("Tax (%g%%)", q.Tax.Rate*100), formatMoney(q.Tax.Amount)})
	}
	for _, row := range summary {
		pdf.CellFormat(150, 6, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, row[1], "", 1, "R", false, 0, "")
	}
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(150, 8, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, formatMoney(q.GrandTotal), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, text := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, text, "1", 0, align, header, 0, "")
	}
	pdf.Ln(-1)
}
