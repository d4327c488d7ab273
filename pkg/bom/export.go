package bom

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/xuri/excelize/v2"
)

// Header is the column header used by every tabular export.
var Header = []string{"Part", "Qty"}

// Rows returns items as string rows for table display, without a header.
func Rows(items []Item) [][]string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{it.Name, strconv.Itoa(it.Qty)}
	}
	return rows
}

// WriteCSV writes items as CSV with a header row.
func WriteCSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	if err := cw.WriteAll(Rows(items)); err != nil {
		return err
	}
	return cw.Error()
}

// Document is the JSON form of a bill of materials.
type Document struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// WriteJSON writes items and their total as indented JSON.
func WriteJSON(w io.Writer, items []Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Document{Items: items, Total: Total(items)})
}

// SheetName is the worksheet written by WriteXLSX.
const SheetName = "BOM"

// WriteXLSX writes items to an Excel workbook with a single sheet. title, if
// not empty, becomes the document title property.
func WriteXLSX(w io.Writer, items []Item, title string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{Header[0], Header[1]}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{it.Name, it.Qty}); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	totalCell, err := excelize.CoordinatesToCellName(1, len(items)+2)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, totalCell, &[]any{"Total", Total(items)}); err != nil {
		return fmt.Errorf("write total: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", "A", 34); err != nil {
		return err
	}
	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title, Creator: "arena"}); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// ReadXLSX reads items back from a workbook written by WriteXLSX. The header
// and total rows are skipped.
func ReadXLSX(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	var items []Item
	for _, row := range rows[1:] {
		if len(row) < 2 || row[0] == "Total" {
			continue
		}
		qty, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", row[0], err)
		}
		items = append(items, Item{Name: row[0], Qty: qty})
	}
	return items, nil
}

// WriteHTMLChart writes a standalone HTML page with a bar chart of part
// quantities.
func WriteHTMLChart(w io.Writer, items []Item, title string) error {
	names := make([]string, len(items))
	data := make([]opts.BarData, len(items))
	for i, it := range items {
		names[i] = it.Name
		data[i] = opts.BarData{Value: it.Qty}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1100px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%d parts", Total(items))}),
	)
	bar.SetXAxis(names).AddSeries("Qty", data)
	return bar.Render(w)
}
