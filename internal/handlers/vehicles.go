package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/drivehub/vehicle-registry/internal/models"
	"github.com/drivehub/vehicle-registry/internal/store"
)

// VehicleHandler handles the /vehicles CRUD endpoints.
type VehicleHandler struct {
	vehicles store.VehicleStore
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicles store.VehicleStore) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// Create registers a new vehicle. Model, brand and year are required.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if req.Model == "" || req.Brand == "" || req.Year == 0 {
		respondMessage(w, http.StatusBadRequest, "Model, brand and year are required.")
		return
	}

	vehicle := h.vehicles.Insert(models.Vehicle{
		ID:    uuid.NewString(),
		Model: req.Model,
		Brand: req.Brand,
		Year:  req.Year,
		Color: req.Color,
		Price: req.Price,
	})

	respondJSON(w, http.StatusCreated, models.VehicleResponse{
		Message: "Vehicle added successfully.",
		Vehicle: vehicle,
	})
}

// ListByBrand returns all vehicles matching the brand query parameter,
// case-insensitively. A missing parameter is a client error, not a
// match-nothing filter.
func (h *VehicleHandler) ListByBrand(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("brand") {
		respondMessage(w, http.StatusBadRequest, "Query parameter brand is required.")
		return
	}

	matches := h.vehicles.FindByBrand(r.URL.Query().Get("brand"))
	if len(matches) == 0 {
		respondMessage(w, http.StatusNotFound, "No vehicles found.")
		return
	}

	respondJSON(w, http.StatusOK, models.VehicleListResponse{
		Message:  "Vehicles found successfully.",
		Vehicles: matches,
	})
}

// Update replaces a vehicle's color and price wholesale. Fields absent from
// the request body reset the stored values; callers depend on the full
// replacement semantics.
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	vehicle, err := h.vehicles.Update(r.PathValue("id"), req.Color, req.Price)
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Vehicle not found.")
		return
	}

	respondJSON(w, http.StatusOK, models.VehicleResponse{
		Message: "Vehicle updated successfully.",
		Vehicle: *vehicle,
	})
}

// Delete removes a vehicle and returns the removed record.
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.Delete(r.PathValue("id"))
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Vehicle not found.")
		return
	}

	respondJSON(w, http.StatusOK, models.VehicleResponse{
		Message: "Vehicle deleted successfully.",
		Vehicle: *vehicle,
	})
}
