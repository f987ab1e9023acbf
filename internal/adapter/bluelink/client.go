// Package bluelink is the HTTP adapter for the vendor telematics API.
// The vendor contract is opaque: responses are passed through with no
// retries, no local timeouts and no interpretation beyond JSON decoding.
package bluelink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adilkhan-sa/bluelink-gateway/config"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
	wrap "github.com/adilkhan-sa/bluelink-gateway/pkg/logger/wrapper"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/metrics"
)

var regionBaseURLs = map[string]string{
	"US": "https://api.telematics.bluelink.example.com",
	"CA": "https://api.ca.telematics.bluelink.example.com",
	"EU": "https://api.eu.telematics.bluelink.example.com",
}

const defaultRegion = "US"

type Client struct {
	cfg  config.BluelinkConfig
	http *http.Client
	log  logger.Logger
}

func New(cfg config.BluelinkConfig, log logger.Logger) *Client {
	return &Client{
		cfg: cfg,
		// No client-side timeout: the vendor's own timeout behavior is
		// inherited as-is.
		http: &http.Client{},
		log:  log,
	}
}

// baseURL resolves the vendor endpoint: an explicit BaseURL override wins,
// then the requested region, then the configured region, then the default.
func (c *Client) baseURL(region string) string {
	if c.cfg.BaseURL != "" {
		return c.cfg.BaseURL
	}
	if region == "" {
		region = c.cfg.Region
	}
	if u, ok := regionBaseURLs[region]; ok {
		return u
	}
	return regionBaseURLs[defaultRegion]
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	PIN      string `json:"pin"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login authenticates against the vendor and returns a session scoped to
// the given credentials. The PIN is kept on the session because remote
// commands require it.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*Session, error) {
	s := &Session{
		client: c,
		base:   c.baseURL(creds.Region),
		pin:    creds.PIN,
	}

	var resp loginResponse
	body := loginRequest{
		Username: creds.Username,
		Password: creds.Password,
		PIN:      creds.PIN,
	}
	if err := s.do(ctx, http.MethodPost, "/v2/ac/oauth/token", "login", body, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("vendor login returned no access token")
	}
	s.token = resp.AccessToken

	return s, nil
}

// Session is an authenticated vendor connection.
type Session struct {
	client *Client
	base   string
	token  string
	pin    string
}

type vehicleRecord struct {
	VIN      string `json:"vin"`
	Nickname string `json:"nickname"`
	Model    string `json:"modelName"`
	Year     string `json:"modelYear"`
}

type vehiclesResponse struct {
	Vehicles []vehicleRecord `json:"vehicles"`
}

// Vehicles enumerates the vehicles enrolled on the account.
func (s *Session) Vehicles(ctx context.Context) ([]*Vehicle, error) {
	var resp vehiclesResponse
	if err := s.do(ctx, http.MethodGet, "/v2/ac/enrollment/vehicles", "list_vehicles", nil, &resp); err != nil {
		return nil, err
	}

	vehicles := make([]*Vehicle, 0, len(resp.Vehicles))
	for _, rec := range resp.Vehicles {
		vehicles = append(vehicles, &Vehicle{
			session:  s,
			vin:      rec.VIN,
			nickname: rec.Nickname,
			model:    rec.Model,
			year:     rec.Year,
		})
	}
	return vehicles, nil
}

type vendorError struct {
	Message string `json:"errMsg"`
}

// do sends one request to the vendor and decodes the response into out
// (skipped when out is nil). Vendor rejections surface verbatim.
func (s *Session) do(ctx context.Context, method, path, operation string, body, out any) error {
	ctx = wrap.WithAction(ctx, types.ActionVendorCall)

	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode vendor request: %w", err)
		}
		reader = bytes.NewReader(js)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.base+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build vendor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	if s.pin != "" {
		req.Header.Set("Vehicle-PIN", s.pin)
	}

	start := time.Now()
	resp, err := s.client.http.Do(req)
	metrics.RecordVendorRequest(types.ServiceName, operation, err, time.Since(start))
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("vendor request failed: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to read vendor response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ve vendorError
		if json.Unmarshal(raw, &ve) == nil && ve.Message != "" {
			return wrap.Error(ctx, fmt.Errorf("vendor rejected %s: %s", operation, ve.Message))
		}
		return wrap.Error(ctx, fmt.Errorf("vendor rejected %s: status %d", operation, resp.StatusCode))
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to decode vendor response: %w", err))
	}
	return nil
}
