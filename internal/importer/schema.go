package importer

// Kind decides how a cell is normalized and which format rule applies.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindBool
	KindDate
	KindTime
	KindEmail
)

// affirmative is the token the source sheets use for boolean columns.
// Anything else, including an absent cell, means false.
const affirmative = "نعم"

// Field maps one Arabic source column onto a normalized record field.
type Field struct {
	Column   string // header text as it appears in the sheet
	Name     string // normalized field name
	Kind     Kind
	Required bool
	// RefEmployee marks fields holding an employee number that must
	// already exist in the roster. Optional fields left empty skip it.
	RefEmployee bool
}

// Schema describes one import domain end to end.
type Schema struct {
	Domain     string
	Extensions []string
	Fields     []Field
	// KeyField names the field used as the row hint in error messages.
	KeyField string
	// RequireNumberEmailMatch checks the employee_number/email pair against
	// the roster as one lookup instead of the number alone.
	RequireNumberEmailMatch bool
}

func (s Schema) AcceptsExtension(ext string) bool {
	for _, e := range s.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

func (s Schema) RequiredColumns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Column
	}
	return cols
}

// Schemas carries the five import domains with their exact source columns.
var Schemas = map[string]Schema{
	"employees": {
		Domain:     "employees",
		Extensions: []string{".xls", ".xlsx"},
		KeyField:   "employee_number",
		Fields: []Field{
			{Column: "رقم الموظف", Name: "employee_number", Kind: KindText, Required: true},
			{Column: "اسم الموظف", Name: "employee_name", Kind: KindText, Required: true},
			{Column: "البريد الإلكتروني", Name: "email", Kind: KindEmail, Required: true},
			{Column: "المسمى الوظيفي", Name: "job_title", Kind: KindText},
			{Column: "الدرجة", Name: "grade", Kind: KindText},
			{Column: "حالة العمل", Name: "work_status", Kind: KindText},
			{Column: "أيام العمل", Name: "work_days", Kind: KindInt},
			{Column: "دوام جزئي", Name: "part_time", Kind: KindBool},
			{Column: "الوردية", Name: "shift", Kind: KindText},
			{Column: "مسيحي", Name: "is_christian", Kind: KindBool},
			{Column: "ساعة رضاعة", Name: "nursing_hour", Kind: KindBool},
			{Column: "إعاقة", Name: "disability", Kind: KindBool},
			{Column: "رصيد الإجازة العادية", Name: "regular_leave_balance", Kind: KindInt},
			{Column: "رصيد الإجازة العارضة", Name: "casual_leave_balance", Kind: KindInt},
			{Column: "عدد أيام الغياب", Name: "absence_days_count", Kind: KindInt},
			{Column: "رقم الهاتف", Name: "phone_number", Kind: KindText},
			{Column: "الرقم القومي", Name: "national_id", Kind: KindText},
			{Column: "رابط", Name: "link", Kind: KindText},
			{Column: "نوع ساعة الرضاعة", Name: "nursing_hour_type", Kind: KindText},
			{Column: "بداية ساعة الرضاعة", Name: "nursing_hour_start", Kind: KindText},
			{Column: "نهاية ساعة الرضاعة", Name: "nursing_hour_end", Kind: KindText},
			{Column: "التقييم الشهري", Name: "monthly_evaluation", Kind: KindInt},
			{Column: "التدريب", Name: "training", Kind: KindText},
			{Column: "ملاحظات", Name: "notes", Kind: KindText},
		},
	},
	"attendance": {
		Domain:     "attendance",
		Extensions: []string{".csv"},
		KeyField:   "employee_number",
		Fields: []Field{
			{Column: "رقم الموظف", Name: "employee_number", Kind: KindText, Required: true, RefEmployee: true},
			{Column: "تاريخ الحضور", Name: "check_date", Kind: KindDate, Required: true},
			{Column: "وقت الدخول", Name: "check_in_time", Kind: KindTime},
			{Column: "وقت الخروج", Name: "check_out_time", Kind: KindTime},
			{Column: "الحالة", Name: "status", Kind: KindText},
			{Column: "ملاحظات", Name: "notes", Kind: KindText},
		},
	},
	"requests": {
		Domain:                  "requests",
		Extensions:              []string{".xls", ".xlsx"},
		KeyField:                "employee_number",
		RequireNumberEmailMatch: true,
		Fields: []Field{
			{Column: "رقم الموظف", Name: "employee_number", Kind: KindText, Required: true},
			{Column: "اسم الموظف", Name: "employee_name", Kind: KindText, Required: true},
			{Column: "البريد الإلكتروني", Name: "email", Kind: KindEmail, Required: true},
			{Column: "نوع الطلب", Name: "request_type", Kind: KindText, Required: true},
			{Column: "تاريخ بدء الطلب", Name: "start_date", Kind: KindDate, Required: true},
			{Column: "تاريخ انتهاء الطلب", Name: "end_date", Kind: KindDate},
			{Column: "البدل", Name: "allowance", Kind: KindText},
			{Column: "ملاحظات", Name: "notes", Kind: KindText},
			{Column: "تاريخ العودة للعمل", Name: "back_to_work_date", Kind: KindDate},
			{Column: "الموافقة", Name: "approval", Kind: KindText},
			{Column: "الرد", Name: "reply", Kind: KindText},
		},
	},
	"schedule": {
		Domain:     "schedule",
		Extensions: []string{".xls", ".xlsx"},
		KeyField:   "date",
		Fields: []Field{
			{Column: "اليوم", Name: "day", Kind: KindText, Required: true},
			{Column: "التاريخ", Name: "date", Kind: KindDate, Required: true},
			{Column: "موظف المساء 1", Name: "evening_employee_1", Kind: KindText, RefEmployee: true},
			{Column: "موظف المساء 2", Name: "evening_employee_2", Kind: KindText, RefEmployee: true},
			{Column: "موظف الليل", Name: "night_employee_1", Kind: KindText, RefEmployee: true},
		},
	},
	"evaluation": {
		Domain:     "evaluation",
		Extensions: []string{".xls", ".xlsx"},
		KeyField:   "employee_number",
		Fields: []Field{
			{Column: "رقم الموظف", Name: "employee_number", Kind: KindText, Required: true, RefEmployee: true},
			{Column: "اسم الموظف", Name: "employee_name", Kind: KindText, Required: true},
			{Column: "المسمى الوظيفي", Name: "job_title", Kind: KindText},
			{Column: "أيام الحضور", Name: "present_days", Kind: KindInt},
			{Column: "ساعات العمل", Name: "work_hours", Kind: KindInt},
			{Column: "إجازة عادية", Name: "regular_leave", Kind: KindInt},
			{Column: "إجازة عارضة", Name: "casual_leave", Kind: KindInt},
			{Column: "دقائق التأخير", Name: "late_minutes", Kind: KindInt},
			{Column: "التقييم الشهري", Name: "monthly_evaluation", Kind: KindInt},
			{Column: "الطابع الزمني", Name: "timestamp", Kind: KindText},
		},
	},
}
