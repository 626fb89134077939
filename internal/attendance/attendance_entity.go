package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one check-in/out movement row. Times are kept as the
// HH:MM[:SS] strings the source spreadsheets carry; the date is a real
// calendar date for range filtering.
type Attendance struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(30);not null;index"`
	CheckDate      time.Time `gorm:"column:check_date;type:date;not null;index"`
	CheckInTime    *string   `gorm:"column:check_in_time;type:varchar(10)"`
	CheckOutTime   *string   `gorm:"column:check_out_time;type:varchar(10)"`
	Status         string    `gorm:"column:status;type:varchar(50)"`
	Notes          string    `gorm:"column:notes;type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Attendance) TableName() string {
	return "attendance"
}
