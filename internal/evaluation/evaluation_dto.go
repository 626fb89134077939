package evaluation

type CreateEvaluationRequest struct {
	EmployeeNumber    string  `json:"employee_number" binding:"required"`
	EmployeeName      string  `json:"employee_name" binding:"required"`
	JobTitle          string  `json:"job_title"`
	PresentDays       *int    `json:"present_days"`
	WorkHours         *int    `json:"work_hours"`
	RegularLeave      *int    `json:"regular_leave"`
	CasualLeave       *int    `json:"casual_leave"`
	LateMinutes       *int    `json:"late_minutes"`
	MonthlyEvaluation *int    `json:"monthly_evaluation"`
	Timestamp         *string `json:"timestamp"`
}

type ListFilter struct {
	EmployeeNumber string
}

type EvaluationResponse struct {
	ID                string  `json:"id"`
	EmployeeNumber    string  `json:"employee_number"`
	EmployeeName      string  `json:"employee_name"`
	JobTitle          string  `json:"job_title,omitempty"`
	PresentDays       *int    `json:"present_days"`
	WorkHours         *int    `json:"work_hours"`
	RegularLeave      *int    `json:"regular_leave"`
	CasualLeave       *int    `json:"casual_leave"`
	LateMinutes       *int    `json:"late_minutes"`
	MonthlyEvaluation *int    `json:"monthly_evaluation"`
	Timestamp         *string `json:"timestamp,omitempty"`
}
