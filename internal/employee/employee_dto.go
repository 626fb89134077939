package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	EmployeeName   string `json:"employee_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	JobTitle       string `json:"job_title"`
	Grade          string `json:"grade"`
	WorkStatus     string `json:"work_status"`
	WorkDays       *int   `json:"work_days"`
	PartTime       bool   `json:"part_time"`
	Shift          string `json:"shift"`
	IsChristian    bool   `json:"is_christian"`
	NursingHour    bool   `json:"nursing_hour"`
	Disability     bool   `json:"disability"`

	RegularLeaveBalance *int `json:"regular_leave_balance"`
	CasualLeaveBalance  *int `json:"casual_leave_balance"`
	AbsenceDaysCount    *int `json:"absence_days_count"`

	PhoneNumber       string `json:"phone_number"`
	NationalID        string `json:"national_id"`
	Link              string `json:"link"`
	NursingHourType   string `json:"nursing_hour_type"`
	NursingHourStart  string `json:"nursing_hour_start"`
	NursingHourEnd    string `json:"nursing_hour_end"`
	MonthlyEvaluation *int   `json:"monthly_evaluation"`
	Training          string `json:"training"`
	Notes             string `json:"notes"`
}

type UpdateEmployeeRequest = CreateEmployeeRequest

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	Email          string `json:"email"`
	JobTitle       string `json:"job_title,omitempty"`
	Grade          string `json:"grade,omitempty"`
	WorkStatus     string `json:"work_status,omitempty"`
	WorkDays       *int   `json:"work_days,omitempty"`
	PartTime       bool   `json:"part_time"`
	Shift          string `json:"shift,omitempty"`
	IsChristian    bool   `json:"is_christian"`
	NursingHour    bool   `json:"nursing_hour"`
	Disability     bool   `json:"disability"`

	RegularLeaveBalance *int `json:"regular_leave_balance,omitempty"`
	CasualLeaveBalance  *int `json:"casual_leave_balance,omitempty"`
	AbsenceDaysCount    *int `json:"absence_days_count,omitempty"`

	PhoneNumber       string `json:"phone_number,omitempty"`
	NationalID        string `json:"national_id,omitempty"`
	Link              string `json:"link,omitempty"`
	NursingHourType   string `json:"nursing_hour_type,omitempty"`
	NursingHourStart  string `json:"nursing_hour_start,omitempty"`
	NursingHourEnd    string `json:"nursing_hour_end,omitempty"`
	MonthlyEvaluation *int   `json:"monthly_evaluation,omitempty"`
	Training          string `json:"training,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// EmployeeOption is the slim shape used by selection dropdowns.
type EmployeeOption struct {
	EmployeeNumber string `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
}
