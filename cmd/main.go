package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/drivehub/vehicle-registry/internal/auth"
	"github.com/drivehub/vehicle-registry/internal/config"
	"github.com/drivehub/vehicle-registry/internal/handlers"
	"github.com/drivehub/vehicle-registry/internal/middleware"
	"github.com/drivehub/vehicle-registry/internal/store"
)

func newRouter(vehicles store.VehicleStore, users store.UserStore, hasher auth.Hasher) http.Handler {
	vehicleHandler := handlers.NewVehicleHandler(vehicles)
	authHandler := handlers.NewAuthHandler(hasher, users)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Vehicle registry is running!"))
	})
	mux.HandleFunc("POST /vehicles", vehicleHandler.Create)
	mux.HandleFunc("GET /vehicles", vehicleHandler.ListByBrand)
	mux.HandleFunc("PUT /vehicles/{id}", vehicleHandler.Update)
	mux.HandleFunc("DELETE /vehicles/{id}", vehicleHandler.Delete)
	mux.HandleFunc("POST /signup", authHandler.SignUp)
	mux.HandleFunc("POST /login", authHandler.Login)

	return middleware.Recover(middleware.Logging(middleware.CORS(mux)))
}

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.JSONFormatter{})

	router := newRouter(
		store.NewMemoryVehicleStore(),
		store.NewMemoryUserStore(),
		auth.NewService(cfg.BcryptCost),
	)

	log.WithField("port", cfg.Port).Info("starting vehicle registry")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
