package importer

import (
	"bytes"
	"encoding/csv"

	importererrors "github.com/lu2aa/attendance-system/internal/importer/errors"

	"github.com/xuri/excelize/v2"
)

// GenerateTemplate builds an empty sheet carrying the domain's header row,
// in the first format the domain accepts.
func GenerateTemplate(domain string) (name, contentType string, body []byte, err error) {
	schema, ok := Schemas[domain]
	if !ok {
		return "", "", nil, importererrors.ErrUnknownDomain
	}

	if schema.AcceptsExtension(".csv") {
		body, err = csvTemplate(schema)
		return domain + "_template.csv", "text/csv", body, err
	}

	body, err = xlsxTemplate(schema)
	return domain + "_template.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		body, err
}

func csvTemplate(schema Schema) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(schema.RequiredColumns()); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func xlsxTemplate(schema Schema) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	sheet := file.GetSheetName(0)
	cols := schema.RequiredColumns()
	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	if err := file.SetSheetRow(sheet, "A1", &row); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
