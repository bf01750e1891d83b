package models

import (
	"time"
)

// ServiceIntervalKm is the fixed maintenance interval used to derive the
// "km until next service" indicator.
const ServiceIntervalKm = 5000

type Motorcycle struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	UserID    string    `json:"user_id" gorm:"not null;index;size:191"`
	Brand     string    `json:"brand" gorm:"not null;size:50"`
	Model     string    `json:"model" gorm:"not null;size:50"`
	Year      int       `json:"year" gorm:"not null"`
	Plate     string    `json:"plate" gorm:"not null;size:20"`
	CurrentKm int       `json:"current_km" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User           User            `json:"-" gorm:"foreignKey:UserID"`
	ServiceRecords []ServiceRecord `json:"service_records,omitempty" gorm:"foreignKey:MotorcycleID"`
}

// KmToNextService derives how many kilometers remain until the next
// scheduled service. The baseline is the most recent service record by
// service date; with no records the full odometer reading counts as
// kilometers since service. Never negative, never persisted.
func (m *Motorcycle) KmToNextService(records []ServiceRecord) int {
	kmSinceService := m.CurrentKm
	if latest := LatestServiceRecord(records); latest != nil {
		kmSinceService = m.CurrentKm - latest.KmAtService
	}

	remaining := ServiceIntervalKm - kmSinceService
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LatestServiceRecord returns the record with the most recent service date,
// or nil when the slice is empty.
func LatestServiceRecord(records []ServiceRecord) *ServiceRecord {
	var latest *ServiceRecord
	for i := range records {
		if latest == nil || records[i].ServiceDate.After(latest.ServiceDate) {
			latest = &records[i]
		}
	}
	return latest
}
