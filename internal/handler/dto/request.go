package dto

type CreateSpaceRequest struct {
	Name           string `json:"name" binding:"required"`
	OperatingHours string `json:"operatingHours" binding:"required"`
	Address        string `json:"address" binding:"required"`
	Province       string `json:"province" binding:"required"`
	Postalcode     string `json:"postalcode" binding:"required"`
	Tel            string `json:"tel"`
	Picture        string `json:"picture" binding:"required"`
}

type UpdateSpaceRequest struct {
	Name           *string `json:"name"`
	OperatingHours *string `json:"operatingHours"`
	Address        *string `json:"address"`
	Province       *string `json:"province"`
	Postalcode     *string `json:"postalcode"`
	Tel            *string `json:"tel"`
	Picture        *string `json:"picture"`
}

// CreateBookingRequest deliberately has no user field: the booking owner is
// always the authenticated actor.
type CreateBookingRequest struct {
	BookingDate string `json:"bookingDate" binding:"required"`
	NumOfRooms  *int   `json:"numOfRooms"`
}

type UpdateBookingRequest struct {
	BookingDate *string `json:"bookingDate"`
	NumOfRooms  *int    `json:"numOfRooms"`
}
