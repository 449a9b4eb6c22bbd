package domain

import "time"

const (
	MaxSpaceNameLen  = 50
	MaxPostalcodeLen = 5
)

type Coworkingspace struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OperatingHours string    `json:"operatingHours"`
	Address        string    `json:"address"`
	Province       string    `json:"province"`
	Postalcode     string    `json:"postalcode"`
	Tel            string    `json:"tel,omitempty"`
	Picture        string    `json:"picture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateSpaceInput struct {
	Name           string
	OperatingHours string
	Address        string
	Province       string
	Postalcode     string
	Tel            string
	Picture        string
}

// UpdateSpaceInput carries a partial update: nil fields keep their stored value.
type UpdateSpaceInput struct {
	Name           *string
	OperatingHours *string
	Address        *string
	Province       *string
	Postalcode     *string
	Tel            *string
	Picture        *string
}
