package dto

import (
	"time"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
)

type SignupRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     models.Role `json:"role,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateSettingsRequest struct {
	Password string `json:"password,omitempty"`
}

type CreateCarRequest struct {
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	RegistrationNo string  `json:"registrationNo"`
	PricePerDay    float64 `json:"pricePerDay"`
}

type UpdateCarRequest struct {
	Brand          *string           `json:"brand,omitempty"`
	Model          *string           `json:"model,omitempty"`
	RegistrationNo *string           `json:"registrationNo,omitempty"`
	PricePerDay    *float64          `json:"pricePerDay,omitempty"`
	Status         *models.CarStatus `json:"status,omitempty"`
}

type CreateBookingRequest struct {
	CustomerName string    `json:"customerName"`
	Car          uint      `json:"car"`
	RentFrom     time.Time `json:"rentFrom"`
	RentTo       time.Time `json:"rentTo"`
}

type UpdateBookingRequest struct {
	CustomerName *string               `json:"customerName,omitempty"`
	Car          *uint                 `json:"car,omitempty"`
	RentFrom     *time.Time            `json:"rentFrom,omitempty"`
	RentTo       *time.Time            `json:"rentTo,omitempty"`
	Status       *models.BookingStatus `json:"status,omitempty"`
}
