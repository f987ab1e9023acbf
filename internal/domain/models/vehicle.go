package models

import "time"

// Credentials are forwarded to the vendor once per login; they are never
// stored by the gateway.
type Credentials struct {
	Username string
	Password string
	PIN      string
	Region   string
}

// VehicleSummary is the listing shape. The vendor does not expose color at
// listing time, so Color is always "Unknown"; Status and Location are filled
// only by their dedicated endpoints.
type VehicleSummary struct {
	VIN      string         `json:"vin"`
	Name     string         `json:"name"`
	Model    string         `json:"model"`
	Year     string         `json:"year"`
	Color    string         `json:"color"`
	Status   *VehicleStatus `json:"status"`
	Location *Location      `json:"location"`
}

// Coordinates is the raw position reported by the vendor.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is the API-facing position record. Address is a fixed placeholder,
// reverse geocoding is out of scope.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address"`
	Timestamp time.Time `json:"timestamp"`
}

// StartConfig carries remote-start options. Zero value is not the default,
// see DefaultStartConfig.
type StartConfig struct {
	AirCtrl  bool `json:"airCtrl"`
	Duration int  `json:"duration"`
}

// DefaultStartConfig is used when the start request carries no body.
func DefaultStartConfig() StartConfig {
	return StartConfig{
		AirCtrl:  true,
		Duration: 10,
	}
}
