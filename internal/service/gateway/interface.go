package gateway

import (
	"context"

	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
)

// VehicleAPI is the narrow capability interface the registry stores. It
// decouples the registry from the vendor library's object model: anything
// that can report status and execute remote commands qualifies.
type VehicleAPI interface {
	Status(ctx context.Context, refresh bool) (map[string]any, error)
	Location(ctx context.Context) (models.Coordinates, error)
	Lock(ctx context.Context) (map[string]any, error)
	Unlock(ctx context.Context) (map[string]any, error)
	Start(ctx context.Context, cfg models.StartConfig) (map[string]any, error)
	Stop(ctx context.Context) (map[string]any, error)
}

// VendorVehicle extends VehicleAPI with the identity fields needed at
// listing time.
type VendorVehicle interface {
	VehicleAPI
	VIN() string
	Nickname() string
	Model() string
	Year() string
}

// VendorSession is an authenticated vendor connection capable of
// enumerating the account's vehicles.
type VendorSession interface {
	Vehicles(ctx context.Context) ([]VendorVehicle, error)
}

// VendorClient establishes vendor sessions.
type VendorClient interface {
	Login(ctx context.Context, creds models.Credentials) (VendorSession, error)
}
