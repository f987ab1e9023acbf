package models

import "time"

// VehicleStatus is the fixed application-level status record. Every field
// has a defined default, so the record is always fully populated regardless
// of which fields the vendor payload carried.
type VehicleStatus struct {
	Engine      string        `json:"engine"` // "ON" or "OFF"
	Doors       DoorStatus    `json:"doors"`
	Climate     ClimateStatus `json:"climate"`
	Battery     BatteryStatus `json:"battery"`
	Fuel        FuelStatus    `json:"fuel"`
	Odometer    float64       `json:"odometer"`
	LastUpdated time.Time     `json:"lastUpdated"` // translation time, not vendor measurement time
}

type DoorStatus struct {
	Locked         bool `json:"locked"`
	HoodOpen       bool `json:"hoodOpen"`
	TrunkOpen      bool `json:"trunkOpen"`
	FrontLeftOpen  bool `json:"frontLeftOpen"`
	FrontRightOpen bool `json:"frontRightOpen"`
	BackLeftOpen   bool `json:"backLeftOpen"`
	BackRightOpen  bool `json:"backRightOpen"`
}

type ClimateStatus struct {
	Active      bool    `json:"active"`
	Temperature float64 `json:"temperature"`
	Defrost     bool    `json:"defrost"`
}

type BatteryStatus struct {
	Percentage float64 `json:"percentage"`
	Range      float64 `json:"range"`
	Charging   bool    `json:"charging"`
}

type FuelStatus struct {
	Level float64 `json:"level"`
	Range float64 `json:"range"`
}
