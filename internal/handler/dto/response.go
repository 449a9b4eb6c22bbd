package dto

import (
	"time"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/query"
)

const dateLayout = "2006-01-02"

// Envelope is the JSON shell every endpoint responds with.
type Envelope struct {
	Success    bool              `json:"success"`
	Count      *int              `json:"count,omitempty"`
	Total      *int              `json:"total,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Err(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

func ListResult(data any, count, total int, p query.Pagination) Envelope {
	return Envelope{
		Success:    true,
		Count:      &count,
		Total:      &total,
		Pagination: &p,
		Data:       data,
	}
}

type SpaceResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	OperatingHours string `json:"operatingHours"`
	Address        string `json:"address"`
	Province       string `json:"province"`
	Postalcode     string `json:"postalcode"`
	Tel            string `json:"tel,omitempty"`
	Picture        string `json:"picture"`
	CreatedAt      string `json:"createdAt"`
}

func ToSpaceResponse(s *domain.Coworkingspace) SpaceResponse {
	return SpaceResponse{
		ID:             s.ID,
		Name:           s.Name,
		OperatingHours: s.OperatingHours,
		Address:        s.Address,
		Province:       s.Province,
		Postalcode:     s.Postalcode,
		Tel:            s.Tel,
		Picture:        s.Picture,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

// Project applies a select projection: only the requested fields plus the
// id survive into the response object.
func (r SpaceResponse) Project(fields []string) map[string]any {
	all := map[string]any{
		"id":             r.ID,
		"name":           r.Name,
		"operatingHours": r.OperatingHours,
		"address":        r.Address,
		"province":       r.Province,
		"postalcode":     r.Postalcode,
		"tel":            r.Tel,
		"picture":        r.Picture,
		"createdAt":      r.CreatedAt,
	}

	out := map[string]any{"id": r.ID}
	for _, f := range fields {
		if v, ok := all[f]; ok {
			out[f] = v
		}
	}
	return out
}

// BookingResponse is the write-path shape: the space is referenced by id.
type BookingResponse struct {
	ID             string `json:"id"`
	BookingDate    string `json:"bookingDate"`
	NumOfRooms     int    `json:"numOfRooms"`
	User           string `json:"user"`
	Coworkingspace string `json:"coworkingspace"`
	CreatedAt      string `json:"createdAt"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		BookingDate:    b.BookingDate.Format(dateLayout),
		NumOfRooms:     b.NumOfRooms,
		User:           b.UserID,
		Coworkingspace: b.CoworkingspaceID,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

type BookingSpaceRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Tel     string `json:"tel,omitempty"`
}

// BookingDetailsResponse is the read-path shape: the space reference is
// resolved into its contact fields.
type BookingDetailsResponse struct {
	ID             string          `json:"id"`
	BookingDate    string          `json:"bookingDate"`
	NumOfRooms     int             `json:"numOfRooms"`
	User           string          `json:"user"`
	Coworkingspace BookingSpaceRef `json:"coworkingspace"`
	CreatedAt      string          `json:"createdAt"`
}

func ToBookingDetailsResponse(d *domain.BookingDetails) BookingDetailsResponse {
	return BookingDetailsResponse{
		ID:          d.ID,
		BookingDate: d.BookingDate.Format(dateLayout),
		NumOfRooms:  d.NumOfRooms,
		User:        d.UserID,
		Coworkingspace: BookingSpaceRef{
			ID:      d.CoworkingspaceID,
			Name:    d.SpaceName,
			Address: d.SpaceAddress,
			Tel:     d.SpaceTel,
		},
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

// ParseDate accepts a calendar date or a full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
