package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/drivehub/vehicle-registry/internal/models"
)

var (
	// ErrVehicleNotFound is returned when no record has the requested id.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// VehicleStore defines the operations handlers need over vehicle records.
type VehicleStore interface {
	Insert(vehicle models.Vehicle) models.Vehicle
	FindByBrand(brand string) []models.Vehicle
	Update(id, color string, price float64) (*models.Vehicle, error)
	Delete(id string) (*models.Vehicle, error)
	Len() int
}

// MemoryVehicleStore keeps vehicles in insertion order with an id index for
// constant-time lookup. All operations take the lock, so each one is atomic
// with respect to concurrent requests.
type MemoryVehicleStore struct {
	mu       sync.RWMutex
	vehicles []models.Vehicle
	byID     map[string]int
}

// NewMemoryVehicleStore creates an empty vehicle store.
func NewMemoryVehicleStore() *MemoryVehicleStore {
	return &MemoryVehicleStore{byID: make(map[string]int)}
}

// Insert appends a vehicle and returns it.
func (s *MemoryVehicleStore) Insert(vehicle models.Vehicle) models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[vehicle.ID] = len(s.vehicles)
	s.vehicles = append(s.vehicles, vehicle)
	return vehicle
}

// FindByBrand returns all records whose brand matches case-insensitively,
// in insertion order.
func (s *MemoryVehicleStore) FindByBrand(brand string) []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []models.Vehicle
	for _, vehicle := range s.vehicles {
		if strings.EqualFold(vehicle.Brand, brand) {
			matches = append(matches, vehicle)
		}
	}
	return matches
}

// Update overwrites color and price in place. The replacement is
// unconditional: zero values from the caller clear the stored fields.
func (s *MemoryVehicleStore) Update(id, color string, price float64) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}

	s.vehicles[i].Color = color
	s.vehicles[i].Price = price

	vehicle := s.vehicles[i]
	return &vehicle, nil
}

// Delete removes the record with the given id, keeping the order of the
// remaining records, and returns the removed record.
func (s *MemoryVehicleStore) Delete(id string) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byID[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}

	vehicle := s.vehicles[i]
	s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
	delete(s.byID, id)

	// Positions after the removed record shifted down by one.
	for j := i; j < len(s.vehicles); j++ {
		s.byID[s.vehicles[j].ID] = j
	}

	return &vehicle, nil
}

// Len reports the number of stored records.
func (s *MemoryVehicleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vehicles)
}
