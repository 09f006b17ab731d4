package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/mwolter/tripscout/internal/provider"
)

const (
	// ProviderName identifies this provider in errors and logs.
	ProviderName = "google-places"

	defaultBaseURL = "https://maps.googleapis.com/maps/api"

	// searchTimeout bounds nearby-search calls; the details and geocoding
	// endpoints answer faster and get a tighter bound.
	searchTimeout  = 15 * time.Second
	detailsTimeout = 10 * time.Second
	geocodeTimeout = 10 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// detailsFields selects the detail endpoint's response surface. Requesting
// a fixed field set keeps billing predictable.
const detailsFields = "name,formatted_address,formatted_phone_number,website,rating," +
	"reviews,opening_hours,price_level,user_ratings_total,url,photos"

// Client provides access to the Places and Geocoding APIs.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Places API client.
func NewClient(apiKey string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google places API key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		// Per-call deadlines come from context so each endpoint can carry
		// its own bound.
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// NearbySearch runs one nearby-search call and returns the normalized
// places. Location must already be a "lat,lon" coordinate string; a status
// of ZERO_RESULTS is an empty list, any other non-OK status is a provider
// error carrying the provider's own message.
func (c *Client) NearbySearch(ctx context.Context, location, placeType string, radius int, keyword string) ([]Place, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/place/nearbysearch/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	q.Set("location", location)
	q.Set("radius", strconv.Itoa(radius))
	q.Set("type", placeType)
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	req.URL.RawQuery = q.Encode()

	body, err := c.do(req, "searching places")
	if err != nil {
		return nil, err
	}

	status := gjson.GetBytes(body, "status").String()
	if status != statusOK && status != statusZeroResults {
		return nil, &provider.APIError{
			Provider: ProviderName,
			Status:   status,
			Message:  apiMessage(body),
		}
	}

	return c.parsePlacesResponse(body), nil
}

// PlaceDetails fetches the detail document for one place and returns the
// provider-shaped result object unmodified.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, detailsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/place/details/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	q.Set("place_id", placeID)
	q.Set("fields", detailsFields)
	req.URL.RawQuery = q.Encode()

	body, err := c.do(req, "fetching place details")
	if err != nil {
		return nil, err
	}

	if status := gjson.GetBytes(body, "status").String(); status != statusOK {
		return nil, &provider.APIError{
			Provider: ProviderName,
			Status:   status,
			Message:  apiMessage(body),
		}
	}

	result := gjson.GetBytes(body, "result")
	if !result.Exists() {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(result.Raw), nil
}

// Geocode resolves a free-text location to coordinates, returning the first
// match only. A 403 means a key or API-enablement problem and gets its own
// message; ZERO_RESULTS and an OK-but-empty result list are reported as
// "not found" rather than as provider failures.
func (c *Client) Geocode(ctx context.Context, location string) (float64, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/geocode/json", nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("key", c.apiKey)
	q.Set("address", location)
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if provider.IsTimeout(err) {
			return 0, 0, &provider.TimeoutError{Provider: ProviderName, Op: fmt.Sprintf("geocoding %q", location)}
		}
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return 0, 0, fmt.Errorf("invalid API key or Geocoding API not enabled")
	}
	if resp.StatusCode != http.StatusOK {
		return 0, 0, &provider.HTTPError{Provider: ProviderName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read response: %w", err)
	}

	switch status := gjson.GetBytes(body, "status").String(); status {
	case statusOK:
	case statusZeroResults:
		return 0, 0, fmt.Errorf("location %q not found", location)
	default:
		return 0, 0, &provider.APIError{
			Provider: ProviderName,
			Status:   status,
			Message:  apiMessage(body),
		}
	}

	first := gjson.GetBytes(body, "results.0.geometry.location")
	if !first.Exists() {
		return 0, 0, fmt.Errorf("no geocoding results for %q", location)
	}

	return first.Get("lat").Float(), first.Get("lng").Float(), nil
}

// do issues one request and returns the response body, classifying timeouts
// and non-200 statuses.
func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if provider.IsTimeout(err) {
			return nil, &provider.TimeoutError{Provider: ProviderName, Op: op}
		}
		return nil, fmt.Errorf("request failed while %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &provider.HTTPError{Provider: ProviderName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// apiMessage prefers the provider's error_message, falling back to its
// status string.
func apiMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "error_message").String(); msg != "" {
		return msg
	}
	return gjson.GetBytes(body, "status").String()
}
