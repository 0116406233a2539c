package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table. Cancelled rows are kept
// with their reason rather than deleted.
type AppointmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	DoctorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PatientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledAt  time.Time `gorm:"not null;index"`
	CancelReason string    `gorm:"type:text"`
	CancelledAt  *time.Time
	CreatedAt    time.Time

	Doctor  *DoctorModel  `gorm:"foreignKey:DoctorID"`
	Patient *PatientModel `gorm:"foreignKey:PatientID"`
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
