package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// vehicle mirrors the registry's creation payload.
type vehicle struct {
	Model string  `json:"model"`
	Brand string  `json:"brand"`
	Year  int     `json:"year"`
	Color string  `json:"color,omitempty"`
	Price float64 `json:"price,omitempty"`
}

type admin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

var fleet = []struct {
	brand  string
	models []string
}{
	{"Toyota", []string{"Corolla", "Yaris", "Hilux"}},
	{"Honda", []string{"Civic", "Fit", "HR-V"}},
	{"Volkswagen", []string{"Golf", "Polo", "T-Cross"}},
	{"Ford", []string{"Fiesta", "Ranger", "Ka"}},
	{"Fiat", []string{"Uno", "Argo", "Toro"}},
}

var colors = []string{"white", "black", "silver", "red", "blue"}

func main() {
	serverURL := os.Getenv("SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:3002"
	}

	count := 10
	if v := os.Getenv("SEED_COUNT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			count = parsed
		}
	}

	if err := postJSON(serverURL+"/signup", admin{
		Username: "seed-admin",
		Email:    "seed-admin@example.com",
		Password: "seed-password",
	}); err != nil {
		log.WithError(err).Warn("admin signup failed, continuing with vehicles")
	}

	for i := 0; i < count; i++ {
		entry := fleet[rand.Intn(len(fleet))]
		v := vehicle{
			Model: entry.models[rand.Intn(len(entry.models))],
			Brand: entry.brand,
			Year:  2005 + rand.Intn(20),
			Color: colors[rand.Intn(len(colors))],
			Price: 15000 + float64(rand.Intn(60000)),
		}
		if err := postJSON(serverURL+"/vehicles", v); err != nil {
			log.WithError(err).WithField("vehicle", v).Error("failed to seed vehicle")
			continue
		}
		log.WithFields(log.Fields{"brand": v.Brand, "model": v.Model}).Info("seeded vehicle")
	}
}

func postJSON(url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
