package schedule

type CreateScheduleRequest struct {
	Day              string  `json:"day" binding:"required"`
	Date             string  `json:"date" binding:"required"`
	EveningEmployee1 *string `json:"evening_employee_1"`
	EveningEmployee2 *string `json:"evening_employee_2"`
	NightEmployee1   *string `json:"night_employee_1"`
}

type ListFilter struct {
	From string
	To   string
}

type ScheduleResponse struct {
	ID               string  `json:"id"`
	Day              string  `json:"day"`
	Date             string  `json:"date"`
	EveningEmployee1 *string `json:"evening_employee_1,omitempty"`
	EveningEmployee2 *string `json:"evening_employee_2,omitempty"`
	NightEmployee1   *string `json:"night_employee_1,omitempty"`
}
