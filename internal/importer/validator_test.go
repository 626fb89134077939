package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/lu2aa/attendance-system/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	existsByNumberFn         func(ctx context.Context, number string) (bool, error)
	existsByNumberAndEmailFn func(ctx context.Context, number, email string) (bool, error)
}

func (f *fakeResolver) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return f.existsByNumberFn(ctx, number)
}

func (f *fakeResolver) ExistsByNumberAndEmail(ctx context.Context, number, email string) (bool, error) {
	return f.existsByNumberAndEmailFn(ctx, number, email)
}

func allowAllResolver() *fakeResolver {
	return &fakeResolver{
		existsByNumberFn:         func(context.Context, string) (bool, error) { return true, nil },
		existsByNumberAndEmailFn: func(context.Context, string, string) (bool, error) { return true, nil },
	}
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	return appErr.Code
}

func attendanceSheet(rows ...RowMap) *Sheet {
	return &Sheet{
		Headers: []string{"رقم الموظف", "تاريخ الحضور", "وقت الدخول", "وقت الخروج", "الحالة", "ملاحظات"},
		Rows:    rows,
	}
}

func TestValidateRows_MissingColumns(t *testing.T) {
	sheet := &Sheet{
		// الحالة and ملاحظات absent from the header row
		Headers: []string{"رقم الموظف", "تاريخ الحضور", "وقت الدخول", "وقت الخروج"},
		Rows:    []RowMap{{"رقم الموظف": "1001", "تاريخ الحضور": "2026-08-01"}},
	}

	_, err := ValidateRows(context.Background(), Schemas["attendance"], sheet, allowAllResolver())
	assert.Equal(t, apperror.CodeMissingColumns, appCode(t, err))
	assert.Contains(t, err.Error(), "الحالة")
	assert.Contains(t, err.Error(), "ملاحظات")
}

func TestValidateRows_IncompleteRow(t *testing.T) {
	sheet := attendanceSheet(RowMap{"رقم الموظف": "1001"})

	_, err := ValidateRows(context.Background(), Schemas["attendance"], sheet, allowAllResolver())
	assert.Equal(t, apperror.CodeIncompleteRow, appCode(t, err))
	assert.Contains(t, err.Error(), "1001")
	assert.Contains(t, err.Error(), "check_date")
}

func TestValidateRows_InvalidDate(t *testing.T) {
	sheet := attendanceSheet(RowMap{"رقم الموظف": "1001", "تاريخ الحضور": "01/08/2026"})

	_, err := ValidateRows(context.Background(), Schemas["attendance"], sheet, allowAllResolver())
	assert.Equal(t, apperror.CodeInvalidFormat, appCode(t, err))
}

func TestValidateRows_ImpossibleCalendarDate(t *testing.T) {
	// well-shaped but not a real date; must never reach the batch write
	for _, value := range []string{"2025-13-01", "2025-02-30", "2025-00-10"} {
		sheet := attendanceSheet(RowMap{"رقم الموظف": "1001", "تاريخ الحضور": value})

		_, err := ValidateRows(context.Background(), Schemas["attendance"], sheet, allowAllResolver())
		assert.Equal(t, apperror.CodeInvalidFormat, appCode(t, err), "value %s", value)
	}
}

func TestValidateRows_InvalidTime(t *testing.T) {
	sheet := attendanceSheet(RowMap{
		"رقم الموظف":   "1001",
		"تاريخ الحضور": "2026-08-01",
		"وقت الدخول":   "8h30",
	})

	_, err := ValidateRows(context.Background(), Schemas["attendance"], sheet, allowAllResolver())
	assert.Equal(t, apperror.CodeInvalidFormat, appCode(t, err))
}

func TestValidateRows_InvalidEmailFailsWholeBatch(t *testing.T) {
	sheet := &Sheet{
		Headers: Schemas["employees"].RequiredColumns(),
		Rows: []RowMap{
			{"رقم الموظف": "1001", "اسم الموظف": "سارة", "البريد الإلكتروني": "sara@example.com"},
			{"رقم الموظف": "1002", "اسم الموظف": "أحمد", "البريد الإلكتروني": "not-an-email"},
		},
	}

	records, err := ValidateRows(context.Background(), Schemas["employees"], sheet, allowAllResolver())
	assert.Equal(t, apperror.CodeInvalidFormat, appCode(t, err))
	assert.Nil(t, records)
}

func TestValidateRows_DanglingReference(t *testing.T) {
	resolver := allowAllResolver()
	resolver.existsByNumberFn = func(_ context.Context, number string) (bool, error) {
		return number != "9999", nil
	}

	sheet := attendanceSheet(
		RowMap{"رقم الموظف": "1001", "تاريخ الحضور": "2026-08-01"},
		RowMap{"رقم الموظف": "9999", "تاريخ الحضور": "2026-08-02"},
	)

	_, err := ValidateRows(context.Background(), Schemas["attendance"], sheet, resolver)
	assert.Equal(t, apperror.CodeDanglingReference, appCode(t, err))
	assert.Contains(t, err.Error(), "9999")
}

func TestValidateRows_RequestsCheckNumberEmailPair(t *testing.T) {
	var gotNumber, gotEmail string
	resolver := allowAllResolver()
	resolver.existsByNumberAndEmailFn = func(_ context.Context, number, email string) (bool, error) {
		gotNumber, gotEmail = number, email
		return false, nil
	}

	sheet := &Sheet{
		Headers: Schemas["requests"].RequiredColumns(),
		Rows: []RowMap{{
			"رقم الموظف":        "1001",
			"اسم الموظف":        "سارة",
			"البريد الإلكتروني": "Sara@Example.com",
			"نوع الطلب":         "إجازة",
			"تاريخ بدء الطلب":   "2026-08-10",
		}},
	}

	_, err := ValidateRows(context.Background(), Schemas["requests"], sheet, resolver)
	assert.Equal(t, apperror.CodeDanglingReference, appCode(t, err))
	assert.Equal(t, "1001", gotNumber)
	// emails are lowercased before the lookup
	assert.Equal(t, "sara@example.com", gotEmail)
}

func TestValidateRows_Normalization(t *testing.T) {
	sheet := &Sheet{
		Headers: Schemas["employees"].RequiredColumns(),
		Rows: []RowMap{{
			"رقم الموظف":           "1001",
			"اسم الموظف":           "  سارة  ",
			"البريد الإلكتروني":    "Sara@Example.com",
			"دوام جزئي":            "نعم",
			"مسيحي":                "لا",
			"أيام العمل":           "22",
			"رصيد الإجازة العادية": "not a number",
		}},
	}

	records, err := ValidateRows(context.Background(), Schemas["employees"], sheet, allowAllResolver())
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "سارة", r.Text("employee_name"))
	assert.Equal(t, "sara@example.com", r.Text("email"))
	assert.True(t, r.Bool("part_time"))
	assert.False(t, r.Bool("is_christian"))
	if assert.NotNil(t, r.Int("work_days")) {
		assert.Equal(t, 22, *r.Int("work_days"))
	}
	// bad int cells become null, never an error
	assert.Nil(t, r.Int("regular_leave_balance"))
}

func TestValidateRows_OptionalRefSkippedWhenEmpty(t *testing.T) {
	calls := 0
	resolver := allowAllResolver()
	resolver.existsByNumberFn = func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}

	sheet := &Sheet{
		Headers: Schemas["schedule"].RequiredColumns(),
		Rows: []RowMap{{
			"اليوم":         "السبت",
			"التاريخ":       "2026-08-01",
			"موظف المساء 1": "1001",
			// both other slots left empty
		}},
	}

	records, err := ValidateRows(context.Background(), Schemas["schedule"], sheet, resolver)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, calls)
}
