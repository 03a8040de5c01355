package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nearby/internal/model"
)

// DefaultBaseURL is the Google Places web service root.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// DefaultPhotoMaxWidth is used when PhotoURL is called without a width.
const DefaultPhotoMaxWidth = 400

// detailFields is the field mask requested from the details endpoint.
const detailFields = "name,formatted_address,rating,photos"

// Config configures a places Client.
type Config struct {
	APIKey        string
	BaseURL       string
	PhotoMaxWidth int
	Timeout       time.Duration
}

// Client wraps the Google Places nearby-search and details endpoints.
type Client struct {
	cfg        Config
	httpClient *http.Client
	calls      *CallLog
}

// NewClient creates a new places API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.PhotoMaxWidth <= 0 {
		cfg.PhotoMaxWidth = DefaultPhotoMaxWidth
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		calls:      NewCallLog(defaultCallLogSize),
	}
}

// Calls returns the log of requests made by this client.
func (c *Client) Calls() *CallLog {
	return c.calls
}

// SearchNearby returns places of the given category within radiusMeters of center,
// in the order the API returned them. On failure it returns an empty slice and the error.
func (c *Client) SearchNearby(ctx context.Context, center model.Coordinates, radiusMeters int, category model.Category) ([]model.Place, error) {
	if c.cfg.APIKey == "" {
		return []model.Place{}, ErrMissingAPIKey
	}

	var result nearbySearchResponse
	if err := c.get(ctx, "nearbysearch", c.nearbyURL(center, radiusMeters, category), &result); err != nil {
		log.Printf("places: nearby search %s r=%d type=%s failed: %v", center, radiusMeters, category, err)
		return []model.Place{}, err
	}

	if result.Status != statusOK && result.Status != statusZeroResults {
		err := &APIError{StatusCode: http.StatusOK, Status: result.Status, Message: result.ErrorMessage}
		log.Printf("places: nearby search %s r=%d type=%s failed: %v", center, radiusMeters, category, err)
		return []model.Place{}, err
	}

	places := make([]model.Place, 0, len(result.Results))
	for _, r := range result.Results {
		if r.PlaceID == "" {
			continue
		}
		places = append(places, model.Place{
			ID:   r.PlaceID,
			Name: r.Name,
			Location: model.Coordinates{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Vicinity: r.Vicinity,
		})
	}

	log.Printf("places: found %d %s near %s (r=%d)", len(places), category, center, radiusMeters)
	return places, nil
}

// FetchDetails fetches name, address, rating and first photo for a place.
// On failure it returns nil and the error.
func (c *Client) FetchDetails(ctx context.Context, placeID string) (*model.PlaceDetails, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var result detailsResponse
	if err := c.get(ctx, "details", c.detailsURL(placeID), &result); err != nil {
		log.Printf("places: details %s failed: %v", placeID, err)
		return nil, err
	}

	if result.Status != statusOK {
		err := &APIError{StatusCode: http.StatusOK, Status: result.Status, Message: result.ErrorMessage}
		log.Printf("places: details %s failed: %v", placeID, err)
		return nil, err
	}

	details := &model.PlaceDetails{
		ID:               placeID,
		Name:             result.Result.Name,
		FormattedAddress: result.Result.FormattedAddress,
		Rating:           result.Result.Rating,
	}
	for _, p := range result.Result.Photos {
		if p.PhotoReference != "" {
			details.PhotoReference = p.PhotoReference
			break
		}
	}
	return details, nil
}

// PhotoURL builds the photo endpoint URL for a photo reference. It is not fetched.
// maxWidth <= 0 uses the configured default.
func (c *Client) PhotoURL(photoReference string, maxWidth int) string {
	if photoReference == "" {
		return ""
	}
	if maxWidth <= 0 {
		maxWidth = c.cfg.PhotoMaxWidth
	}
	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("photo_reference", photoReference)
	params.Set("key", c.cfg.APIKey)
	return fmt.Sprintf("%s/photo?%s", c.cfg.BaseURL, params.Encode())
}

func (c *Client) nearbyURL(center model.Coordinates, radiusMeters int, category model.Category) string {
	loc := center.String()
	params := url.Values{}
	params.Set("location", loc)
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", string(category))
	params.Set("key", c.cfg.APIKey)
	// Google documents location as a bare "lat,lng" pair.
	query := strings.Replace(params.Encode(), "location="+url.QueryEscape(loc), "location="+loc, 1)
	return fmt.Sprintf("%s/nearbysearch/json?%s", c.cfg.BaseURL, query)
}

func (c *Client) detailsURL(placeID string) string {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	params.Set("key", c.cfg.APIKey)
	return fmt.Sprintf("%s/details/json?%s", c.cfg.BaseURL, params.Encode())
}

// get performs one GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint, reqURL string, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		c.calls.Record(endpoint, http.MethodGet, RedactKey(reqURL), status, time.Since(start), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, RedactError(err))
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// RedactError strips the credential from the URL carried by a transport
// error. Other errors are returned unchanged.
func RedactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactKey(urlErr.URL)
	}
	return err
}

// RedactKey strips the credential from a request URL before it is logged.
func RedactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// API response types

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type nearbySearchResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type placeResult struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type detailsResponse struct {
	Result       placeDetail `json:"result"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

type placeDetail struct {
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           *float64 `json:"rating"`
	Photos           []photo  `json:"photos"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}
