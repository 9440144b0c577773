package dto

import (
	"time"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        uint        `json:"id"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type SettingsResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type BookingResponse struct {
	ID           uint                 `json:"id"`
	Reference    string               `json:"reference"`
	CustomerName string               `json:"customerName"`
	CarID        uint                 `json:"carId"`
	RentFrom     time.Time            `json:"rentFrom"`
	RentTo       time.Time            `json:"rentTo"`
	Status       models.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Car          *models.Car          `json:"car,omitempty"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		Reference:    b.Reference,
		CustomerName: b.CustomerName,
		CarID:        b.CarID,
		RentFrom:     b.RentFrom,
		RentTo:       b.RentTo,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		Car:          b.Car,
	}
}
