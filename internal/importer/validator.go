package importer

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	importererrors "github.com/lu2aa/attendance-system/internal/importer/errors"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const (
	datePatternHint  = "YYYY-MM-DD"
	timePatternHint  = "HH:MM or HH:MM:SS"
	emailPatternHint = "local@domain.tld"
)

// Record is one normalized row. Text/date/time/email fields are strings,
// int fields are *int (nil when blank or non-numeric), bool fields are bool.
type Record map[string]any

func (r Record) Text(name string) string {
	v, _ := r[name].(string)
	return v
}

func (r Record) OptText(name string) *string {
	v, ok := r[name].(string)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (r Record) Int(name string) *int {
	v, _ := r[name].(*int)
	return v
}

func (r Record) Bool(name string) bool {
	v, _ := r[name].(bool)
	return v
}

// Resolver answers the roster lookups the reference checks need. The
// employee repository satisfies it directly.
type Resolver interface {
	ExistsByNumber(ctx context.Context, employeeNumber string) (bool, error)
	ExistsByNumberAndEmail(ctx context.Context, employeeNumber, email string) (bool, error)
}

// ValidateRows runs the whole pipeline for one uploaded sheet: header
// completeness, normalization, required fields, format rules, then roster
// reference checks. The first failing row aborts the batch.
func ValidateRows(ctx context.Context, schema Schema, sheet *Sheet, resolver Resolver) ([]Record, error) {
	if err := checkHeaders(schema, sheet.Headers); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		record := normalizeRow(schema, row)

		if err := checkRequired(schema, record); err != nil {
			return nil, err
		}
		if err := checkFormats(schema, record); err != nil {
			return nil, err
		}
		if err := checkReferences(ctx, schema, record, resolver); err != nil {
			return nil, err
		}

		records = append(records, record)
	}
	return records, nil
}

// checkHeaders is evaluated once for the whole file, naming every absent
// column at once.
func checkHeaders(schema Schema, headers []string) error {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[h] = true
	}

	var missing []string
	for _, col := range schema.RequiredColumns() {
		if !seen[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return importererrors.MissingColumns(missing)
	}
	return nil
}

func normalizeRow(schema Schema, row RowMap) Record {
	record := Record{}
	for _, f := range schema.Fields {
		raw := strings.TrimSpace(row[f.Column])
		switch f.Kind {
		case KindInt:
			// Non-numeric or blank cells become null, never an error.
			if n, err := strconv.Atoi(raw); err == nil {
				record[f.Name] = &n
			} else {
				record[f.Name] = (*int)(nil)
			}
		case KindBool:
			record[f.Name] = raw == affirmative
		case KindEmail:
			record[f.Name] = strings.ToLower(raw)
		default:
			record[f.Name] = raw
		}
	}
	return record
}

func checkRequired(schema Schema, record Record) error {
	var missing []string
	for _, f := range schema.Fields {
		if !f.Required {
			continue
		}
		if record.Text(f.Name) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return importererrors.IncompleteRow(record.Text(schema.KeyField), missing)
	}
	return nil
}

func checkFormats(schema Schema, record Record) error {
	for _, f := range schema.Fields {
		value := record.Text(f.Name)
		if value == "" {
			continue
		}
		switch f.Kind {
		case KindDate:
			if !datePattern.MatchString(value) {
				return importererrors.InvalidFormat(f.Name, value, datePatternHint)
			}
			// The regex accepts impossible dates like 2025-13-01; only a
			// real calendar parse may let a value through to the insert.
			if _, err := time.Parse("2006-01-02", value); err != nil {
				return importererrors.InvalidFormat(f.Name, value, datePatternHint)
			}
		case KindTime:
			if !timePattern.MatchString(value) {
				return importererrors.InvalidFormat(f.Name, value, timePatternHint)
			}
		case KindEmail:
			if !emailPattern.MatchString(value) {
				return importererrors.InvalidFormat(f.Name, value, emailPatternHint)
			}
		}
	}
	return nil
}

func checkReferences(ctx context.Context, schema Schema, record Record, resolver Resolver) error {
	if schema.RequireNumberEmailMatch {
		number := record.Text("employee_number")
		email := record.Text("email")
		ok, err := resolver.ExistsByNumberAndEmail(ctx, number, email)
		if err != nil {
			return err
		}
		if !ok {
			return importererrors.DanglingReference("employee_number", number)
		}
	}

	for _, f := range schema.Fields {
		if !f.RefEmployee {
			continue
		}
		value := record.Text(f.Name)
		if value == "" {
			continue
		}
		ok, err := resolver.ExistsByNumber(ctx, value)
		if err != nil {
			return err
		}
		if !ok {
			return importererrors.DanglingReference(f.Name, value)
		}
	}
	return nil
}
