package models

import "time"

type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarRented    CarStatus = "rented"
)

// Car.Status is a denormalized view of the booking ledger: it is `rented`
// exactly while at least one active booking references the car. Every booking
// lifecycle operation keeps it in sync (see service.syncCarStatus).
type Car struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Brand          string    `gorm:"size:64;not null" json:"brand"`
	Model          string    `gorm:"size:64;not null" json:"model"`
	RegistrationNo string    `gorm:"uniqueIndex;size:32;not null" json:"registrationNo"`
	PricePerDay    float64   `gorm:"not null" json:"pricePerDay"`
	Status         CarStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
