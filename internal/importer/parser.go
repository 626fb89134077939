package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	importererrors "github.com/lu2aa/attendance-system/internal/importer/errors"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxXLSRows caps how many rows the legacy xls reader pulls from a sheet.
const maxXLSRows = 100000

// RowMap is one data row keyed by header text. Empty cells are absent keys,
// matching how spreadsheet libraries commonly expose sparse rows.
type RowMap map[string]string

// Sheet is the parsed upload: the header row as written, plus the data rows.
type Sheet struct {
	Headers []string
	Rows    []RowMap
}

// Parse turns an uploaded file into header-keyed rows. The extension alone
// decides the decoder; all semantic interpretation is left to the validator.
func Parse(filename string, r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, importererrors.ReadError(err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	var rows [][]string
	switch ext {
	case ".csv":
		rows, err = readCSV(data)
	case ".xlsx":
		rows, err = readXLSX(data)
	case ".xls":
		rows, err = readXLS(data)
	default:
		return nil, importererrors.UnsupportedFormat(ext)
	}
	if err != nil {
		return nil, importererrors.ReadError(err)
	}

	return buildSheet(rows)
}

func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readXLSX(data []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, importererrors.ErrEmptyInput
	}
	return file.GetRows(sheetName)
}

func readXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, importererrors.ErrEmptyInput
	}
	// The xls reader wants an upper bound; sheets larger than this are
	// truncated, far beyond any roster upload seen in practice.
	return workbook.ReadAllCells(maxXLSRows), nil
}

func buildSheet(rows [][]string) (*Sheet, error) {
	if len(rows) == 0 {
		return nil, importererrors.ErrEmptyInput
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	sheet := &Sheet{Headers: headers}
	for _, raw := range rows[1:] {
		row := RowMap{}
		for i, cell := range raw {
			if i >= len(headers) || headers[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			row[headers[i]] = cell
		}
		if len(row) == 0 {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	if len(sheet.Rows) == 0 {
		return nil, importererrors.ErrEmptyInput
	}
	return sheet, nil
}
