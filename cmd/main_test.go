package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/drivehub/vehicle-registry/internal/auth"
	"github.com/drivehub/vehicle-registry/internal/models"
	"github.com/drivehub/vehicle-registry/internal/store"
)

func newTestRouter() http.Handler {
	return newRouter(
		store.NewMemoryVehicleStore(),
		store.NewMemoryUserStore(),
		auth.NewService(bcrypt.MinCost),
	)
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Root(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running")
}

func TestRouter_VehicleLifecycle(t *testing.T) {
	router := newTestRouter()

	// Create.
	w := doRequest(router, http.MethodPost, "/vehicles", `{"model":"Civic","brand":"Honda","year":2020}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.VehicleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.Vehicle.ID)

	// Find by brand, case-insensitively.
	w = doRequest(router, http.MethodGet, "/vehicles?brand=honda", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var listed models.VehicleListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Len(t, listed.Vehicles, 1)
	assert.Equal(t, created.Vehicle.ID, listed.Vehicles[0].ID)

	// Update color and price.
	w = doRequest(router, http.MethodPut, "/vehicles/"+created.Vehicle.ID, `{"color":"red","price":20000}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.VehicleResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "red", updated.Vehicle.Color)
	assert.Equal(t, float64(20000), updated.Vehicle.Price)

	// Delete, then the brand query finds nothing.
	w = doRequest(router, http.MethodDelete, "/vehicles/"+created.Vehicle.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/vehicles?brand=honda", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MissingBrandParam(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodGet, "/vehicles", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_SignupAndLogin(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodPost, "/signup", `{"username":"alice","email":"alice@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")

	w = doRequest(router, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CORSHeaders(t *testing.T) {
	router := newTestRouter()

	w := doRequest(router, http.MethodOptions, "/vehicles", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
