package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Quote"
	itemsSheet   = "Materials"
)

// WriteXLSX renders the document as a workbook with a summary sheet and a
// per-vendor materials comparison sheet.
func WriteXLSX(doc Document) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := writeSummary(file, doc); err != nil {
		return nil, err
	}
	if _, err := file.NewSheet(itemsSheet); err != nil {
		return nil, err
	}
	if err := writeItems(file, doc); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummary(file *excelize.File, doc Document) error {
	q := doc.Quote
	rows := [][]any{
		{"Quote number", doc.Number},
		{"Issued", formatDate(doc.IssuedAt)},
		{"Customer", doc.Customer},
		{"Fence sections", q.ProjectSize},
		{"Vendor", q.ChosenVendorName},
		{},
		{"Materials (base)", q.Materials.BaseTotal},
		{"Markup %", q.Materials.MarkupPct},
		{"Markup", q.Materials.MarkupAmount},
		{"Materials (with markup)", q.Materials.TotalWithMarkup},
		{"Labor hours", q.Labor.Hours},
		{"Labor rate", q.Labor.Rate},
		{"Labor", q.Labor.Total},
		{"Tax rate", q.Tax.Rate},
		{"Tax", q.Tax.Amount},
		{"Grand total", q.GrandTotal},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if len(row) == 0 {
			continue
		}
		if err := file.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	_ = file.SetColWidth(summarySheet, "A", "A", 28)
	_ = file.SetColWidth(summarySheet, "B", "B", 24)
	return nil
}

func writeItems(file *excelize.File, doc Document) error {
	q := doc.Quote
	headers := []any{"Material", "Quantity"}
	for _, vt := range q.Materials.VendorTotals {
		headers = append(headers, vt.VendorName+" unit price", vt.VendorName+" total")
	}
	if err := file.SetSheetRow(itemsSheet, "A1", &headers); err != nil {
		return err
	}

	for i, line := range q.Materials.LineItems {
		row := []any{line.Label, line.Quantity}
		for _, vt := range q.Materials.VendorTotals {
			cost, ok := line.Cost(vt.VendorID)
			if !ok {
				return fmt.Errorf("material %q has no %s price", line.MaterialID, vt.VendorID)
			}
			row = append(row, cost.UnitPrice, cost.LineTotal)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := file.SetSheetRow(itemsSheet, cell, &row); err != nil {
			return err
		}
	}

	totals := []any{"Total", ""}
	for _, vt := range q.Materials.VendorTotals {
		totals = append(totals, "", vt.Total)
	}
	cell, err := excelize.CoordinatesToCellName(1, len(q.Materials.LineItems)+2)
	if err != nil {
		return err
	}
	if err := file.SetSheetRow(itemsSheet, cell, &totals); err != nil {
		return err
	}
	_ = file.SetColWidth(itemsSheet, "A", "A", 36)
	return nil
}
