package models

import "time"

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Reference    string        `gorm:"uniqueIndex;size:36;not null" json:"reference"`
	CustomerName string        `gorm:"size:128;not null" json:"customerName"`
	CarID        uint          `gorm:"not null" json:"carId"`
	RentFrom     time.Time     `gorm:"not null" json:"rentFrom"`
	RentTo       time.Time     `gorm:"not null" json:"rentTo"`
	Status       BookingStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	Car *Car `gorm:"foreignKey:CarID" json:"car,omitempty"`
}
