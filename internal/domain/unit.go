package domain

import "time"

// Unit is an individual rentable unit within a property.
type Unit struct {
	ID              int64      `json:"id"`
	PropertyID      int64      `json:"property_id"`
	UnitNumber      string     `json:"unit_number"`
	Floor           *int       `json:"floor,omitempty"`
	Bedrooms        int        `json:"bedrooms"`
	Bathrooms       int        `json:"bathrooms"`
	SquareFeet      *int       `json:"square_feet,omitempty"`
	RentAmount      int64      `json:"rent_amount"`
	DepositAmount   int64      `json:"deposit_amount"`
	IsAvailable     bool       `json:"is_available"`
	AvailableDate   *time.Time `json:"available_date,omitempty"`
	CurrentTenantID *int64     `json:"current_tenant_id,omitempty"`
	LeaseEndDate    *time.Time `json:"lease_end_date,omitempty"`
	Amenities       string     `json:"amenities,omitempty"`
	Images          string     `json:"images,omitempty"`
	FloorPlanURL    string     `json:"floor_plan_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type UnitReq struct {
	PropertyID    int64      `json:"property_id"`
	UnitNumber    string     `json:"unit_number"`
	Floor         *int       `json:"floor,omitempty"`
	Bedrooms      int        `json:"bedrooms"`
	Bathrooms     int        `json:"bathrooms"`
	SquareFeet    *int       `json:"square_feet,omitempty"`
	RentAmount    int64      `json:"rent_amount"`
	DepositAmount int64      `json:"deposit_amount"`
	IsAvailable   *bool      `json:"is_available,omitempty"`
	AvailableDate *time.Time `json:"available_date,omitempty"`
	Amenities     string     `json:"amenities,omitempty"`
	Images        string     `json:"images,omitempty"`
	FloorPlanURL  string     `json:"floor_plan_url,omitempty"`
}

type UnitPatch struct {
	UnitNumber      *string    `json:"unit_number,omitempty"`
	Floor           *int       `json:"floor,omitempty"`
	Bedrooms        *int       `json:"bedrooms,omitempty"`
	Bathrooms       *int       `json:"bathrooms,omitempty"`
	SquareFeet      *int       `json:"square_feet,omitempty"`
	RentAmount      *int64     `json:"rent_amount,omitempty"`
	DepositAmount   *int64     `json:"deposit_amount,omitempty"`
	IsAvailable     *bool      `json:"is_available,omitempty"`
	AvailableDate   *time.Time `json:"available_date,omitempty"`
	CurrentTenantID *int64     `json:"current_tenant_id,omitempty"`
	LeaseEndDate    *time.Time `json:"lease_end_date,omitempty"`
	Amenities       *string    `json:"amenities,omitempty"`
	Images          *string    `json:"images,omitempty"`
	FloorPlanURL    *string    `json:"floor_plan_url,omitempty"`
}
