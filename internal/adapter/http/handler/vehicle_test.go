package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
)

type mockGateway struct {
	loginFn    func(ctx context.Context, creds models.Credentials) error
	listFn     func(ctx context.Context) ([]models.VehicleSummary, error)
	statusFn   func(ctx context.Context, vin string) (*models.VehicleStatus, error)
	locationFn func(ctx context.Context, vin string) (*models.Location, error)
	commandFn  func(ctx context.Context, vin string) (map[string]any, error)
	startFn    func(ctx context.Context, vin string, cfg models.StartConfig) (map[string]any, error)
}

func (m *mockGateway) Login(ctx context.Context, creds models.Credentials) error {
	return m.loginFn(ctx, creds)
}

func (m *mockGateway) ListVehicles(ctx context.Context) ([]models.VehicleSummary, error) {
	return m.listFn(ctx)
}

func (m *mockGateway) Status(ctx context.Context, vin string) (*models.VehicleStatus, error) {
	return m.statusFn(ctx, vin)
}

func (m *mockGateway) Location(ctx context.Context, vin string) (*models.Location, error) {
	return m.locationFn(ctx, vin)
}

func (m *mockGateway) Lock(ctx context.Context, vin string) (map[string]any, error) {
	return m.commandFn(ctx, vin)
}

func (m *mockGateway) Unlock(ctx context.Context, vin string) (map[string]any, error) {
	return m.commandFn(ctx, vin)
}

func (m *mockGateway) Start(ctx context.Context, vin string, cfg models.StartConfig) (map[string]any, error) {
	return m.startFn(ctx, vin, cfg)
}

func (m *mockGateway) Stop(ctx context.Context, vin string) (map[string]any, error) {
	return m.commandFn(ctx, vin)
}

func setupMux(svc GatewayService) *http.ServeMux {
	log := logger.InitLogger("test", logger.LevelError)
	session := NewSession(svc, log)
	vehicle := NewVehicle(svc, log)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", session.Login)
	mux.HandleFunc("GET /api/vehicles", vehicle.List)
	mux.HandleFunc("POST /api/vehicles/{vin}/status", vehicle.Status)
	mux.HandleFunc("GET /api/vehicles/{vin}/location", vehicle.Location)
	mux.HandleFunc("POST /api/vehicles/{vin}/lock", vehicle.Lock)
	mux.HandleFunc("POST /api/vehicles/{vin}/unlock", vehicle.Unlock)
	mux.HandleFunc("POST /api/vehicles/{vin}/start", vehicle.Start)
	mux.HandleFunc("POST /api/vehicles/{vin}/stop", vehicle.Stop)
	return mux
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestLogin_Success(t *testing.T) {
	svc := &mockGateway{
		loginFn: func(_ context.Context, creds models.Credentials) error {
			if creds.Username != "user" || creds.PIN != "1234" {
				t.Fatalf("unexpected credentials: %+v", creds)
			}
			return nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login",
		bytes.NewBufferString(`{"username":"user","password":"pass","pin":"1234"}`))
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["success"] != true {
		t.Errorf("expected success true, got %v", body)
	}
}

func TestLogin_VendorRejection(t *testing.T) {
	svc := &mockGateway{
		loginFn: func(_ context.Context, _ models.Credentials) error {
			return context.DeadlineExceeded
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login",
		bytes.NewBufferString(`{"username":"user","password":"pass","pin":"1234"}`))
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["error"] != "authentication failed" {
		t.Errorf("expected error field, got %v", body)
	}
	if body["details"] == nil {
		t.Error("expected vendor details in response")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := &mockGateway{
		loginFn: func(_ context.Context, _ models.Credentials) error {
			t.Fatal("service must not be called for invalid request")
			return nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(`{"username":"user"}`))
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestListVehicles_Unauthenticated(t *testing.T) {
	svc := &mockGateway{
		listFn: func(_ context.Context) ([]models.VehicleSummary, error) {
			return nil, types.ErrNotAuthenticated
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/vehicles", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestListVehicles_Success(t *testing.T) {
	svc := &mockGateway{
		listFn: func(_ context.Context) ([]models.VehicleSummary, error) {
			return []models.VehicleSummary{
				{VIN: "VIN1", Name: "My Kona", Model: "Kona", Year: "2021", Color: "Unknown"},
			}, nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/vehicles", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var summaries []models.VehicleSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("expected a bare array response: %v", err)
	}
	if len(summaries) != 1 || summaries[0].VIN != "VIN1" {
		t.Errorf("unexpected payload: %+v", summaries)
	}
}

func TestStatus_UnknownVIN(t *testing.T) {
	svc := &mockGateway{
		statusFn: func(_ context.Context, vin string) (*models.VehicleStatus, error) {
			return nil, types.ErrVehicleNotFound
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/api/vehicles/NOPE/status", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestStatus_NoStatusDataCarriesHint(t *testing.T) {
	svc := &mockGateway{
		statusFn: func(_ context.Context, vin string) (*models.VehicleStatus, error) {
			return nil, types.ErrNoStatusData
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/api/vehicles/VIN1/status", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["hint"] == nil {
		t.Errorf("expected explanatory hint, got %v", body)
	}
}

func TestStatus_VendorFailureCarriesDetails(t *testing.T) {
	svc := &mockGateway{
		statusFn: func(_ context.Context, vin string) (*models.VehicleStatus, error) {
			return nil, context.DeadlineExceeded
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/api/vehicles/VIN1/status", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["details"] == nil {
		t.Errorf("expected vendor details, got %v", body)
	}
}

func TestStatus_AcceptsRefreshFlag(t *testing.T) {
	called := false
	svc := &mockGateway{
		statusFn: func(_ context.Context, vin string) (*models.VehicleStatus, error) {
			called = true
			return &models.VehicleStatus{Engine: "OFF", LastUpdated: time.Now()}, nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/vehicles/VIN1/status",
		bytes.NewBufferString(`{"refresh":false}`))
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !called {
		t.Error("expected service call despite refresh=false")
	}
}

func TestLocation_Success(t *testing.T) {
	svc := &mockGateway{
		locationFn: func(_ context.Context, vin string) (*models.Location, error) {
			return &models.Location{
				Latitude:  37.4,
				Longitude: 127.1,
				Address:   "Address lookup not available",
				Timestamp: time.Now(),
			}, nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/vehicles/VIN1/location", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["latitude"] != 37.4 || body["longitude"] != 127.1 {
		t.Errorf("unexpected coordinates: %v", body)
	}
}

func TestLock_Success(t *testing.T) {
	svc := &mockGateway{
		commandFn: func(_ context.Context, vin string) (map[string]any, error) {
			if vin != "VIN1" {
				t.Fatalf("unexpected vin: %s", vin)
			}
			return map[string]any{"status": "ok"}, nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/api/vehicles/VIN1/lock", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body)
	}
	if body["result"] == nil {
		t.Errorf("expected result payload, got %v", body)
	}
}

func TestStart_DefaultsWithoutBody(t *testing.T) {
	svc := &mockGateway{
		startFn: func(_ context.Context, vin string, cfg models.StartConfig) (map[string]any, error) {
			if !cfg.AirCtrl || cfg.Duration != 10 {
				t.Fatalf("expected default start config, got %+v", cfg)
			}
			return map[string]any{}, nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("POST", "/api/vehicles/VIN1/start", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStart_OptionsOverrideDefaults(t *testing.T) {
	svc := &mockGateway{
		startFn: func(_ context.Context, vin string, cfg models.StartConfig) (map[string]any, error) {
			if cfg.AirCtrl || cfg.Duration != 5 {
				t.Fatalf("expected overridden config, got %+v", cfg)
			}
			return map[string]any{}, nil
		},
	}

	mux := setupMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/vehicles/VIN1/start",
		bytes.NewBufferString(`{"airCtrl":false,"duration":5}`))
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
