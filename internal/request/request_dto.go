package request

type SubmitRequestRequest struct {
	RequestType    string  `json:"request_type" binding:"required"`
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        *string `json:"end_date"`
	Allowance      string  `json:"allowance"`
	Notes          string  `json:"notes"`
	BackToWorkDate *string `json:"back_to_work_date"`
}

type DecisionRequest struct {
	Reply string `json:"reply"`
}

type RequestResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	EmployeeName   string  `json:"employee_name"`
	Email          string  `json:"email"`
	RequestType    string  `json:"request_type"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	Allowance      string  `json:"allowance,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	BackToWorkDate *string `json:"back_to_work_date,omitempty"`
	Approval       string  `json:"approval"`
	Reply          string  `json:"reply,omitempty"`
}
