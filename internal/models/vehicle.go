package models

// Vehicle represents a single registry record. Model, brand and year are
// fixed at creation; color and price are the only fields the update endpoint
// touches.
type Vehicle struct {
	ID    string  `json:"id"`
	Model string  `json:"model"`
	Brand string  `json:"brand"`
	Year  int     `json:"year"`
	Color string  `json:"color,omitempty"`
	Price float64 `json:"price,omitempty"`
}

// CreateVehicleRequest represents the body of a vehicle creation request.
type CreateVehicleRequest struct {
	Model string  `json:"model"`
	Brand string  `json:"brand"`
	Year  int     `json:"year"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
}

// UpdateVehicleRequest carries the two mutable fields. Both are written
// unconditionally, so a field absent from the body clears the stored value.
type UpdateVehicleRequest struct {
	Color string  `json:"color"`
	Price float64 `json:"price"`
}

// VehicleResponse is the envelope for single-vehicle endpoints.
type VehicleResponse struct {
	Message string  `json:"message"`
	Vehicle Vehicle `json:"vehicle"`
}

// VehicleListResponse is the envelope for the brand listing endpoint.
type VehicleListResponse struct {
	Message  string    `json:"message"`
	Vehicles []Vehicle `json:"vehicles"`
}

// MessageResponse is the envelope for responses that carry no record.
type MessageResponse struct {
	Message string `json:"message"`
}
