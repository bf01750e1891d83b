package models

import (
	"time"
)

// Service record sources. Workshop records are created out-of-band (seed or
// back office); the client-facing flow only ever creates customer records.
const (
	SourceWorkshop = "oficina"
	SourceCustomer = "cliente"
)

type ServiceRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	MotorcycleID string    `json:"motorcycle_id" gorm:"not null;index;size:191"`
	ServiceDate  time.Time `json:"service_date" gorm:"not null"`
	Description  string    `json:"service_description" gorm:"not null;size:200"`
	KmAtService  int       `json:"km_at_service" gorm:"not null"`
	Source       string    `json:"source" gorm:"not null;size:20;default:'cliente'"`
	CreatedAt    time.Time `json:"created_at"`

	Motorcycle Motorcycle `json:"-" gorm:"foreignKey:MotorcycleID"`
}
