package attendance

type CreateAttendanceRequest struct {
	EmployeeNumber string  `json:"employee_number" binding:"required"`
	CheckDate      string  `json:"check_date" binding:"required"`
	CheckInTime    *string `json:"check_in_time"`
	CheckOutTime   *string `json:"check_out_time"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
}

type ListFilter struct {
	EmployeeNumber string
	From           string
	To             string
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	CheckDate      string  `json:"check_date"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	Status         string  `json:"status,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}
