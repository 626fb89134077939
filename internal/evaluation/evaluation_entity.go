package evaluation

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is a monthly performance summary row. Name and job title are
// snapshots; counts that the source sheet left blank stay null.
type Evaluation struct {
	ID                uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeNumber    string    `gorm:"column:employee_number;type:varchar(30);not null;index"`
	EmployeeName      string    `gorm:"column:employee_name;type:varchar(255);not null"`
	JobTitle          string    `gorm:"column:job_title;type:varchar(100)"`
	PresentDays       *int      `gorm:"column:present_days"`
	WorkHours         *int      `gorm:"column:work_hours"`
	RegularLeave      *int      `gorm:"column:regular_leave"`
	CasualLeave       *int      `gorm:"column:casual_leave"`
	LateMinutes       *int      `gorm:"column:late_minutes"`
	MonthlyEvaluation *int      `gorm:"column:monthly_evaluation"`
	Timestamp         *string   `gorm:"column:timestamp;type:varchar(50)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Evaluation) TableName() string {
	return "evaluation"
}
