package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
	wrap "github.com/adilkhan-sa/bluelink-gateway/pkg/logger/wrapper"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/metrics"
)

const (
	// Reverse geocoding is out of scope, every location response carries
	// this placeholder.
	placeholderAddress = "Address lookup not available"

	unknownColor = "Unknown"
)

// Service holds the process-wide vendor session and the VIN to handle
// registry. At most one session is live at any instant; a fresh login
// replaces it unconditionally. The registry is last-write-wins and is never
// pruned, not even across logins, so a handle registered under an old
// session may go stale and will only fail when used.
type Service struct {
	client VendorClient
	log    logger.Logger

	// mu guards session and vehicles for memory safety only; there is no
	// atomicity across operations (a login racing a status call can see
	// either session). Single logged-in user assumed.
	mu       sync.RWMutex
	session  VendorSession
	vehicles map[string]VehicleAPI
}

func New(client VendorClient, log logger.Logger) *Service {
	return &Service{
		client:   client,
		log:      log,
		vehicles: make(map[string]VehicleAPI),
	}
}

// Login establishes a new vendor session. On failure the previously stored
// session (if any) is left untouched. Region resolution (requested region,
// then configured region, then US) belongs to the vendor client.
func (s *Service) Login(ctx context.Context, creds models.Credentials) error {
	ctx = wrap.WithAction(ctx, types.ActionLogin)

	session, err := s.client.Login(ctx, creds)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.log.Info(ctx, "vendor session established", "region", creds.Region)
	return nil
}

// ListVehicles enumerates the account's vehicles and registers every handle
// under its VIN, overwriting existing entries.
func (s *Service) ListVehicles(ctx context.Context) ([]models.VehicleSummary, error) {
	ctx = wrap.WithAction(ctx, types.ActionListVehicles)

	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()

	if session == nil {
		return nil, types.ErrNotAuthenticated
	}

	vehicles, err := session.Vehicles(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	summaries := make([]models.VehicleSummary, 0, len(vehicles))

	s.mu.Lock()
	for _, v := range vehicles {
		s.vehicles[v.VIN()] = v
		summaries = append(summaries, models.VehicleSummary{
			VIN:   v.VIN(),
			Name:  v.Nickname(),
			Model: v.Model(),
			Year:  v.Year(),
			Color: unknownColor,
		})
	}
	metrics.RegisteredVehiclesGauge.WithLabelValues(types.ServiceName).Set(float64(len(s.vehicles)))
	s.mu.Unlock()

	s.log.Debug(ctx, "vehicle registry updated", "count", len(summaries))
	return summaries, nil
}

// Status fetches and translates the vehicle's current status. The vendor
// refresh is always forced regardless of what the caller asked for.
func (s *Service) Status(ctx context.Context, vin string) (*models.VehicleStatus, error) {
	ctx = wrap.WithAction(wrap.WithVIN(ctx, vin), types.ActionVehicleStatus)

	handle, err := s.lookup(vin)
	if err != nil {
		return nil, err
	}

	raw, err := handle.Status(ctx, true)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return Translate(raw)
}

func (s *Service) Location(ctx context.Context, vin string) (*models.Location, error) {
	ctx = wrap.WithAction(wrap.WithVIN(ctx, vin), types.ActionVehicleLocation)

	handle, err := s.lookup(vin)
	if err != nil {
		return nil, err
	}

	coord, err := handle.Location(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return &models.Location{
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Address:   placeholderAddress,
		Timestamp: time.Now(),
	}, nil
}

func (s *Service) Lock(ctx context.Context, vin string) (map[string]any, error) {
	return s.command(ctx, vin, "lock", func(ctx context.Context, h VehicleAPI) (map[string]any, error) {
		return h.Lock(ctx)
	})
}

func (s *Service) Unlock(ctx context.Context, vin string) (map[string]any, error) {
	return s.command(ctx, vin, "unlock", func(ctx context.Context, h VehicleAPI) (map[string]any, error) {
		return h.Unlock(ctx)
	})
}

func (s *Service) Start(ctx context.Context, vin string, cfg models.StartConfig) (map[string]any, error) {
	return s.command(ctx, vin, "start", func(ctx context.Context, h VehicleAPI) (map[string]any, error) {
		return h.Start(ctx, cfg)
	})
}

func (s *Service) Stop(ctx context.Context, vin string) (map[string]any, error) {
	return s.command(ctx, vin, "stop", func(ctx context.Context, h VehicleAPI) (map[string]any, error) {
		return h.Stop(ctx)
	})
}

func (s *Service) command(ctx context.Context, vin, name string, op func(context.Context, VehicleAPI) (map[string]any, error)) (map[string]any, error) {
	ctx = wrap.WithAction(wrap.WithVIN(ctx, vin), types.ActionRemoteCommand)

	handle, err := s.lookup(vin)
	if err != nil {
		return nil, err
	}

	result, err := op(ctx, handle)
	metrics.RecordRemoteCommand(types.ServiceName, name, err)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	s.log.Info(ctx, "remote command executed", "command", name)
	return result, nil
}

// lookup resolves a VIN to its registered handle. The session precondition
// comes first: an unknown VIN on an unauthenticated gateway is reported as
// unauthenticated, not as not-found.
func (s *Service) lookup(vin string) (VehicleAPI, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, types.ErrNotAuthenticated
	}
	handle, ok := s.vehicles[vin]
	if !ok {
		return nil, types.ErrVehicleNotFound
	}
	return handle, nil
}
