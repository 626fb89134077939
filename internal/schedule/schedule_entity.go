package schedule

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry assigns up to three shift slots for one calendar day.
// Slots hold employee numbers and may be left empty.
type ScheduleEntry struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Day              string    `gorm:"column:day;type:varchar(30);not null"`
	Date             time.Time `gorm:"column:date;type:date;not null;index"`
	EveningEmployee1 *string   `gorm:"column:evening_employee_1;type:varchar(30)"`
	EveningEmployee2 *string   `gorm:"column:evening_employee_2;type:varchar(30)"`
	NightEmployee1   *string   `gorm:"column:night_employee_1;type:varchar(30)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ScheduleEntry) TableName() string {
	return "schedule"
}
