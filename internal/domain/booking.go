package domain

import "time"

// Rooms allowed per booking.
const (
	MinRoomsPerBooking = 1
	MaxRoomsPerBooking = 3

	DefaultNumOfRooms = 1
)

type Booking struct {
	ID               string    `json:"id"`
	BookingDate      time.Time `json:"bookingDate"`
	NumOfRooms       int       `json:"numOfRooms"`
	UserID           string    `json:"user"`
	CoworkingspaceID string    `json:"coworkingspace"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BookingDetails is a booking enriched with the owning space's contact
// fields, resolved at read time.
type BookingDetails struct {
	Booking
	SpaceName    string
	SpaceAddress string
	SpaceTel     string
}

type CreateBookingInput struct {
	BookingDate time.Time
	NumOfRooms  *int
}

// UpdateBookingInput: nil fields keep their stored values.
type UpdateBookingInput struct {
	BookingDate *time.Time
	NumOfRooms  *int
}

func ValidRoomCount(n int) bool {
	return n >= MinRoomsPerBooking && n <= MaxRoomsPerBooking
}
