package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nearby/internal/model"
)

// DefaultIPLookupURL is an IP geolocation endpoint answering with lat/lon JSON.
const DefaultIPLookupURL = "http://ip-api.com/json/?fields=status,message,lat,lon"

// IPLookup approximates the device position from its public IP address.
type IPLookup struct {
	endpoint   string
	granted    bool
	httpClient *http.Client
}

// NewIPLookup creates an IP geolocation provider. An empty endpoint uses DefaultIPLookupURL.
func NewIPLookup(endpoint string, granted bool) *IPLookup {
	if endpoint == "" {
		endpoint = DefaultIPLookupURL
	}
	return &IPLookup{
		endpoint:   endpoint,
		granted:    granted,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *IPLookup) RequestPermission(ctx context.Context) (bool, error) {
	return p.granted, nil
}

func (p *IPLookup) CurrentPosition(ctx context.Context) (model.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Coordinates{}, fmt.Errorf("geolocation error: status %d", resp.StatusCode)
	}

	var result ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.Coordinates{}, fmt.Errorf("JSON decode error: %w", err)
	}
	if result.Status != "" && result.Status != "success" {
		return model.Coordinates{}, fmt.Errorf("geolocation error: %s", result.Message)
	}

	return model.Coordinates{Latitude: result.Lat, Longitude: result.Lon}, nil
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
