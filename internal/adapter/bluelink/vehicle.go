package bluelink

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
)

// Vehicle is the vendor-side handle for one enrolled vehicle. It implements
// the gateway's VehicleAPI capability interface.
type Vehicle struct {
	session  *Session
	vin      string
	nickname string
	model    string
	year     string
}

func (v *Vehicle) VIN() string      { return v.vin }
func (v *Vehicle) Nickname() string { return v.nickname }
func (v *Vehicle) Model() string    { return v.model }
func (v *Vehicle) Year() string     { return v.year }

// Status fetches the raw vehicle status payload. The shape is semi-structured
// and varies across models, so it is returned undecoded as a map; a JSON
// null body yields a nil map.
func (v *Vehicle) Status(ctx context.Context, refresh bool) (map[string]any, error) {
	var raw map[string]any
	path := fmt.Sprintf("/v2/ac/vehicles/%s/status?refresh=%t", v.vin, refresh)
	if err := v.session.do(ctx, http.MethodGet, path, "status", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

type locationResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

func (v *Vehicle) Location(ctx context.Context) (models.Coordinates, error) {
	var resp locationResponse
	path := fmt.Sprintf("/v2/ac/vehicles/%s/location", v.vin)
	if err := v.session.do(ctx, http.MethodGet, path, "location", nil, &resp); err != nil {
		return models.Coordinates{}, err
	}
	return models.Coordinates{
		Latitude:  resp.Coord.Lat,
		Longitude: resp.Coord.Lon,
	}, nil
}

func (v *Vehicle) Lock(ctx context.Context) (map[string]any, error) {
	return v.command(ctx, "lock", struct{}{})
}

func (v *Vehicle) Unlock(ctx context.Context) (map[string]any, error) {
	return v.command(ctx, "unlock", struct{}{})
}

type startRequest struct {
	AirCtrl        bool `json:"airCtrl"`
	IgniOnDuration int  `json:"igniOnDuration"`
}

func (v *Vehicle) Start(ctx context.Context, cfg models.StartConfig) (map[string]any, error) {
	return v.command(ctx, "start", startRequest{
		AirCtrl:        cfg.AirCtrl,
		IgniOnDuration: cfg.Duration,
	})
}

func (v *Vehicle) Stop(ctx context.Context) (map[string]any, error) {
	return v.command(ctx, "stop", struct{}{})
}

func (v *Vehicle) command(ctx context.Context, name string, body any) (map[string]any, error) {
	var result map[string]any
	path := fmt.Sprintf("/v2/ac/vehicles/%s/commands/%s", v.vin, name)
	if err := v.session.do(ctx, http.MethodPost, path, name, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
