package request

import (
	"time"

	"github.com/google/uuid"
)

// Approval states are stored as the free-text Arabic labels the original
// data carries; معلق (pending) is the only state requests transition from.
const (
	ApprovalPending  = "معلق"
	ApprovalApproved = "مقبول"
	ApprovalRejected = "مرفوض"
)

// Request is a leave/permission request. Employee name and email are
// snapshots taken at submission; they never change afterwards.
type Request struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeNumber string     `gorm:"column:employee_number;type:varchar(30);not null;index"`
	EmployeeName   string     `gorm:"column:employee_name;type:varchar(255);not null"`
	Email          string     `gorm:"column:email;type:varchar(255);not null;index"`
	RequestType    string     `gorm:"column:request_type;type:varchar(100);not null"`
	StartDate      time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate        *time.Time `gorm:"column:end_date;type:date"`
	Allowance      string     `gorm:"column:allowance;type:varchar(100)"`
	Notes          string     `gorm:"column:notes;type:text"`
	BackToWorkDate *time.Time `gorm:"column:back_to_work_date;type:date"`
	Approval       string     `gorm:"column:approval;type:varchar(30);not null;default:'معلق'"`
	Reply          string     `gorm:"column:reply;type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Request) TableName() string {
	return "requests"
}
