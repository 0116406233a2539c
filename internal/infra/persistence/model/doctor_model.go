package model

import (
	"time"

	"github.com/google/uuid"
)

// DoctorModel mirrors the 'doctors' table.
type DoctorModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Phone          string    `gorm:"type:varchar(30)"`
	DocumentNumber string    `gorm:"type:varchar(30);unique;not null"`
	Specialty      string    `gorm:"type:varchar(50);not null;index"`
	Active         bool      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DoctorModel) TableName() string {
	return "doctors"
}
