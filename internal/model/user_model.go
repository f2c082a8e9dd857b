package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleJobSeeker = "job_seeker"
	RoleCompany   = "company"
)

// User covers both job seekers and company accounts; Role tells them apart.
// Accounts register with either an email or a phone number.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255)" json:"name"`
	Email        *string    `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Phone        *string    `gorm:"type:varchar(50);uniqueIndex" json:"phone,omitempty"`
	Password     string     `gorm:"type:varchar(255)" json:"-"`
	Role         string     `gorm:"type:varchar(20)" json:"role"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
