package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the sign-up identity. It links 1:1 to a roster employee
// through the lowercased email; IsAdmin is the explicit override flag the
// privilege policy consults after the job-title check.
type Profile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password       string    `gorm:"type:varchar(255);not null"`
	FullName       string    `gorm:"column:full_name;type:varchar(255)"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(30);index"`
	IsAdmin        bool      `gorm:"column:is_admin;not null;default:false"`
	IsActive       bool      `gorm:"default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Profile) TableName() string {
	return "profiles"
}
