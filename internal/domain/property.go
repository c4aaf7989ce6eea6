package domain

import "time"

// Property is a rental property. Money amounts are stored in cents and
// bathrooms in tenths (1.5 baths = 15), matching the admin tooling.
type Property struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	ZipCode           string     `json:"zip_code"`
	PropertyType      string     `json:"property_type"`
	Bedrooms          int        `json:"bedrooms"`
	Bathrooms         int        `json:"bathrooms"`
	SquareFeet        *int       `json:"square_feet,omitempty"`
	RentAmount        int64      `json:"rent_amount"`
	DepositAmount     int64      `json:"deposit_amount"`
	IsAvailable       bool       `json:"is_available"`
	AvailableDate     *time.Time `json:"available_date,omitempty"`
	Description       string     `json:"description,omitempty"`
	Amenities         string     `json:"amenities,omitempty"`
	PetsAllowed       bool       `json:"pets_allowed"`
	UtilitiesIncluded string     `json:"utilities_included,omitempty"`
	Images            string     `json:"images,omitempty"`
	FloorPlanURL      string     `json:"floor_plan_url,omitempty"`
	VirtualTourURL    string     `json:"virtual_tour_url,omitempty"`
	Latitude          string     `json:"latitude,omitempty"`
	Longitude         string     `json:"longitude,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// FullAddress renders the single-line mailing address used in emails and
// calendar invites.
func (p *Property) FullAddress() string {
	return p.Address + ", " + p.City + ", " + p.State + " " + p.ZipCode
}

type PropertyReq struct {
	Name              string     `json:"name"`
	Address           string     `json:"address"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	ZipCode           string     `json:"zip_code"`
	PropertyType      string     `json:"property_type"`
	Bedrooms          int        `json:"bedrooms"`
	Bathrooms         int        `json:"bathrooms"`
	SquareFeet        *int       `json:"square_feet,omitempty"`
	RentAmount        int64      `json:"rent_amount"`
	DepositAmount     int64      `json:"deposit_amount"`
	IsAvailable       bool       `json:"is_available"`
	AvailableDate     *time.Time `json:"available_date,omitempty"`
	Description       string     `json:"description,omitempty"`
	Amenities         string     `json:"amenities,omitempty"`
	PetsAllowed       bool       `json:"pets_allowed"`
	UtilitiesIncluded string     `json:"utilities_included,omitempty"`
	Images            string     `json:"images,omitempty"`
	FloorPlanURL      string     `json:"floor_plan_url,omitempty"`
	VirtualTourURL    string     `json:"virtual_tour_url,omitempty"`
	Latitude          string     `json:"latitude,omitempty"`
	Longitude         string     `json:"longitude,omitempty"`
}

type PropertyPatch struct {
	Name              *string    `json:"name,omitempty"`
	Address           *string    `json:"address,omitempty"`
	City              *string    `json:"city,omitempty"`
	State             *string    `json:"state,omitempty"`
	ZipCode           *string    `json:"zip_code,omitempty"`
	PropertyType      *string    `json:"property_type,omitempty"`
	Bedrooms          *int       `json:"bedrooms,omitempty"`
	Bathrooms         *int       `json:"bathrooms,omitempty"`
	SquareFeet        *int       `json:"square_feet,omitempty"`
	RentAmount        *int64     `json:"rent_amount,omitempty"`
	DepositAmount     *int64     `json:"deposit_amount,omitempty"`
	IsAvailable       *bool      `json:"is_available,omitempty"`
	AvailableDate     *time.Time `json:"available_date,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Amenities         *string    `json:"amenities,omitempty"`
	PetsAllowed       *bool      `json:"pets_allowed,omitempty"`
	UtilitiesIncluded *string    `json:"utilities_included,omitempty"`
	Images            *string    `json:"images,omitempty"`
	FloorPlanURL      *string    `json:"floor_plan_url,omitempty"`
	VirtualTourURL    *string    `json:"virtual_tour_url,omitempty"`
	Latitude          *string    `json:"latitude,omitempty"`
	Longitude         *string    `json:"longitude,omitempty"`
}
