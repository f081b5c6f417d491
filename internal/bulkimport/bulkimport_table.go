package bulkimport

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	bulkimporterrors "sharda-hr/internal/bulkimport/errors"

	"github.com/xuri/excelize/v2"
)

const (
	maxFileBytes = 10 << 20
	maxDataRows  = 5000
	sheetName    = "Sheet1"
)

var contentTypes = map[string]string{
	FormatCSV:  "text/csv",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// FormatFromName picks the reader from the file extension.
func FormatFromName(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, true
	case ".xlsx":
		return FormatXLSX, true
	}
	return "", false
}

// readTable loads every row of the first sheet (or the CSV) with cells trimmed.
// Trailing empty rows are dropped.
func readTable(format string, r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxFileBytes+1))
	if err != nil {
		return nil, bulkimporterrors.ErrUnreadableFile
	}
	if len(data) > maxFileBytes {
		return nil, bulkimporterrors.ErrFileTooLarge
	}

	var rows [][]string
	switch format {
	case FormatCSV:
		cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		if rows, err = cr.ReadAll(); err != nil {
			return nil, bulkimporterrors.ErrUnreadableFile.WithDetails(err.Error())
		}
	case FormatXLSX:
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, bulkimporterrors.ErrUnreadableFile.WithDetails(err.Error())
		}
		defer func() { _ = f.Close() }()

		name := f.GetSheetName(0)
		if name == "" {
			return nil, bulkimporterrors.ErrEmptyFile
		}
		// Raw values keep dates as serial numbers; parseDateCell converts them.
		if rows, err = f.GetRows(name, excelize.Options{RawCellValue: true}); err != nil {
			return nil, bulkimporterrors.ErrUnreadableFile.WithDetails(err.Error())
		}
	default:
		return nil, bulkimporterrors.ErrUnsupportedFormat
	}

	for i := range rows {
		for j := range rows[i] {
			rows[i][j] = strings.TrimSpace(rows[i][j])
		}
	}
	for len(rows) > 0 && blank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, bulkimporterrors.ErrEmptyFile
	}
	if len(rows)-1 > maxDataRows {
		return nil, bulkimporterrors.ErrTooManyRows.WithDetails(map[string]int{"max_rows": maxDataRows})
	}
	return rows, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// safeCell quotes user-entered text that a spreadsheet would otherwise
// evaluate as a formula.
func safeCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

// writeTable renders rows as a CSV or a single-sheet workbook.
func writeTable(format string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		w := csv.NewWriter(&buf)
		if err := w.WriteAll(rows); err != nil {
			return nil, err
		}
	case FormatXLSX:
		f := excelize.NewFile()
		defer func() { _ = f.Close() }()

		for i, row := range rows {
			addr, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return nil, err
			}
			values := make([]any, len(row))
			for j, v := range row {
				values[j] = v
			}
			if err := f.SetSheetRow(sheetName, addr, &values); err != nil {
				return nil, err
			}
		}
		if len(rows) > 0 {
			if err := f.SetPanes(sheetName, &excelize.Panes{
				Freeze:      true,
				YSplit:      1,
				TopLeftCell: "A2",
				ActivePane:  "bottomLeft",
			}); err != nil {
				return nil, err
			}
		}
		if _, err := f.WriteTo(&buf); err != nil {
			return nil, err
		}
	default:
		return nil, bulkimporterrors.ErrUnsupportedFormat
	}
	return buf.Bytes(), nil
}
