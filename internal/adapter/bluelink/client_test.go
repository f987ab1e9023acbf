package bluelink

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"

	"github.com/adilkhan-sa/bluelink-gateway/config"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
)

const testBaseURL = "https://vendor.test"

func testClient() *Client {
	cfg := config.BluelinkConfig{BaseURL: testBaseURL, Region: "US"}
	return New(cfg, logger.InitLogger("test", logger.LevelError))
}

func testCreds() models.Credentials {
	return models.Credentials{Username: "user", Password: "pass", PIN: "1234", Region: "US"}
}

func login(t *testing.T) *Session {
	t.Helper()
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/v2/ac/oauth/token",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"access_token": "tok-123",
			})
		})

	session, err := testClient().Login(context.Background(), testCreds())
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return session
}

func TestLogin_Success(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	session := login(t)
	if session.token != "tok-123" {
		t.Errorf("expected token stored on session, got %q", session.token)
	}
}

func TestBaseURL_RegionResolution(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.BluelinkConfig
		region     string
		wantedBase string
	}{
		{"request region wins", config.BluelinkConfig{Region: "US"}, "EU", regionBaseURLs["EU"]},
		{"configured region fallback", config.BluelinkConfig{Region: "EU"}, "", regionBaseURLs["EU"]},
		{"default when nothing set", config.BluelinkConfig{}, "", regionBaseURLs["US"]},
		{"unknown region falls back to default", config.BluelinkConfig{}, "MARS", regionBaseURLs["US"]},
		{"base url override wins over everything", config.BluelinkConfig{BaseURL: testBaseURL, Region: "EU"}, "CA", testBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.cfg, logger.InitLogger("test", logger.LevelError))
			if got := c.baseURL(tt.region); got != tt.wantedBase {
				t.Errorf("baseURL(%q) = %q, want %q", tt.region, got, tt.wantedBase)
			}
		})
	}
}

func TestLogin_UsesConfiguredRegionEndpoint(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, regionBaseURLs["EU"]+"/v2/ac/oauth/token",
		httpmock.NewStringResponder(http.StatusOK, `{"access_token":"tok-eu"}`))

	cfg := config.BluelinkConfig{Region: "EU"}
	client := New(cfg, logger.InitLogger("test", logger.LevelError))

	creds := testCreds()
	creds.Region = ""
	session, err := client.Login(context.Background(), creds)
	if err != nil {
		t.Fatalf("login against configured region failed: %v", err)
	}
	if session.base != regionBaseURLs["EU"] {
		t.Errorf("expected session bound to EU endpoint, got %q", session.base)
	}
}

func TestLogin_VendorRejection(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/v2/ac/oauth/token",
		func(r *http.Request) (*http.Response, error) {
			return httpmock.NewJsonResponse(http.StatusUnauthorized, map[string]any{
				"errMsg": "invalid credentials",
			})
		})

	_, err := testClient().Login(context.Background(), testCreds())
	if err == nil {
		t.Fatal("expected login error")
	}
	if !strings.Contains(err.Error(), "invalid credentials") {
		t.Errorf("expected vendor message in error, got %v", err)
	}
}

func TestLogin_MissingToken(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/v2/ac/oauth/token",
		httpmock.NewStringResponder(http.StatusOK, `{}`))

	if _, err := testClient().Login(context.Background(), testCreds()); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestVehicles(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	session := login(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v2/ac/enrollment/vehicles",
		func(r *http.Request) (*http.Response, error) {
			if auth := r.Header.Get("Authorization"); auth != "Bearer tok-123" {
				t.Fatalf("unexpected Authorization header: %q", auth)
			}
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"vehicles": []map[string]any{
					{"vin": "VIN1", "nickname": "My Kona", "modelName": "Kona", "modelYear": "2021"},
				},
			})
		})

	vehicles, err := session.Vehicles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vehicles) != 1 {
		t.Fatalf("expected 1 vehicle, got %d", len(vehicles))
	}

	v := vehicles[0]
	if v.VIN() != "VIN1" || v.Nickname() != "My Kona" || v.Model() != "Kona" || v.Year() != "2021" {
		t.Errorf("unexpected vehicle: %s %s %s %s", v.VIN(), v.Nickname(), v.Model(), v.Year())
	}
}

func TestVehicleStatus_RawPassthrough(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	session := login(t)
	vehicle := &Vehicle{session: session, vin: "VIN1"}

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v2/ac/vehicles/VIN1/status?refresh=true",
		httpmock.NewStringResponder(http.StatusOK, `{"vehicleStatus":{"engine":true}}`))

	raw, err := vehicle.Status(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nested, ok := raw["vehicleStatus"].(map[string]any)
	if !ok || nested["engine"] != true {
		t.Errorf("expected untouched vendor payload, got %v", raw)
	}
}

func TestVehicleStatus_NullBody(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	session := login(t)
	vehicle := &Vehicle{session: session, vin: "VIN1"}

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/v2/ac/vehicles/VIN1/status?refresh=true",
		httpmock.NewStringResponder(http.StatusOK, `null`))

	raw, err := vehicle.Status(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != nil {
		t.Errorf("expected nil map for null body, got %v", raw)
	}
}

func TestVehicleLock(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	session := login(t)
	vehicle := &Vehicle{session: session, vin: "VIN1"}

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/v2/ac/vehicles/VIN1/commands/lock",
		func(r *http.Request) (*http.Response, error) {
			if pin := r.Header.Get("Vehicle-PIN"); pin != "1234" {
				t.Fatalf("unexpected PIN header: %q", pin)
			}
			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{"status": "ok"})
		})

	result, err := vehicle.Lock(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("unexpected result: %v", result)
	}
}

func TestVehicleCommand_VendorRejection(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	session := login(t)
	vehicle := &Vehicle{session: session, vin: "VIN1"}

	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/v2/ac/vehicles/VIN1/commands/start",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"errMsg":"vehicle asleep"}`))

	_, err := vehicle.Start(context.Background(), models.DefaultStartConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "vehicle asleep") {
		t.Errorf("expected vendor message, got %v", err)
	}
}
