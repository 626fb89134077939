package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the roster record. EmployeeNumber is the natural key every
// other table joins on; Email is the link to the sign-up profile.
type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(30);uniqueIndex;not null"`
	EmployeeName   string    `gorm:"column:employee_name;type:varchar(255);not null"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	JobTitle       string    `gorm:"column:job_title;type:varchar(100)"`
	Grade          string    `gorm:"column:grade;type:varchar(50)"`
	WorkStatus     string    `gorm:"column:work_status;type:varchar(50)"`
	WorkDays       *int      `gorm:"column:work_days"`
	PartTime       bool      `gorm:"column:part_time;not null;default:false"`
	Shift          string    `gorm:"column:shift;type:varchar(50)"`
	IsChristian    bool      `gorm:"column:is_christian;not null;default:false"`
	NursingHour    bool      `gorm:"column:nursing_hour;not null;default:false"`
	Disability     bool      `gorm:"column:disability;not null;default:false"`

	RegularLeaveBalance *int `gorm:"column:regular_leave_balance"`
	CasualLeaveBalance  *int `gorm:"column:casual_leave_balance"`
	AbsenceDaysCount    *int `gorm:"column:absence_days_count"`

	PhoneNumber       string `gorm:"column:phone_number;type:varchar(30)"`
	NationalID        string `gorm:"column:national_id;type:varchar(30)"`
	Link              string `gorm:"column:link;type:text"`
	NursingHourType   string `gorm:"column:nursing_hour_type;type:varchar(50)"`
	NursingHourStart  string `gorm:"column:nursing_hour_start;type:varchar(10)"`
	NursingHourEnd    string `gorm:"column:nursing_hour_end;type:varchar(10)"`
	MonthlyEvaluation *int   `gorm:"column:monthly_evaluation"`
	Training          string `gorm:"column:training;type:text"`
	Notes             string `gorm:"column:notes;type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
