package report

// MonthlyReport summarizes one employee's month across attendance,
// requests, and the imported evaluation sheet.
type MonthlyReport struct {
	EmployeeNumber string `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	JobTitle       string `json:"job_title,omitempty"`
	Month          string `json:"month"`

	PresentDays      int `json:"present_days"`
	RequestsTotal    int `json:"requests_total"`
	RequestsApproved int `json:"requests_approved"`
	RequestsPending  int `json:"requests_pending"`
	RequestsRejected int `json:"requests_rejected"`

	WorkHours         *int `json:"work_hours"`
	RegularLeave      *int `json:"regular_leave"`
	CasualLeave       *int `json:"casual_leave"`
	LateMinutes       *int `json:"late_minutes"`
	MonthlyEvaluation *int `json:"monthly_evaluation"`
}

type EmailReportRequest struct {
	EmployeeNumber string `json:"employee_number" binding:"required"`
	Month          string `json:"month" binding:"required"`
	Recipient      string `json:"recipient" binding:"required,email"`
}
