package tabular

import (
	"fmt"
	"strconv"

	"github.com/conorfennell/wordrill/internal/domain"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// xlsxCodec reads the first worksheet and writes a single worksheet.
type xlsxCodec struct{}

func (xlsxCodec) Read(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	t := &domain.Table{Name: sheets[0]}
	if len(rows) == 0 {
		return t, nil
	}
	t.Header = rows[0]
	for _, r := range rows[1:] {
		if isBlank(r) {
			continue
		}
		t.Rows = append(t.Rows, r)
	}
	return t, nil
}

func (xlsxCodec) Write(path string, t *domain.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if t.Name != "" && t.Name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, t.Name); err != nil {
			return fmt.Errorf("failed to name sheet %s: %w", t.Name, err)
		}
		sheet = t.Name
	}

	if err := writeRow(f, sheet, 1, t.Header); err != nil {
		return err
	}
	for i, r := range t.Rows {
		if err := writeRow(f, sheet, i+2, r); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// writeRow stores integer-looking cells as numbers so counters stay numeric
// when the workbook is opened in a spreadsheet program.
func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		if n, err := strconv.Atoi(c); err == nil && strconv.Itoa(n) == c {
			values[i] = n
		} else {
			values[i] = c
		}
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
