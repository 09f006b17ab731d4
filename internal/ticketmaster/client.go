package ticketmaster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mwolter/tripscout/internal/provider"
	"github.com/mwolter/tripscout/internal/validate"
)

const (
	// ProviderName identifies this provider in errors and logs.
	ProviderName = "ticketmaster"

	defaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

	// requestTimeout bounds every Discovery API call.
	requestTimeout = 15 * time.Second

	defaultRadius = 50
	defaultUnit   = "miles"
	defaultSize   = 20

	// dateSearchSize is the page size used by FetchEventsByDate.
	dateSearchSize = 30
)

// Client provides access to the Ticketmaster Discovery API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Discovery API client.
func NewClient(apiKey string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ticketmaster API key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}, nil
}

// FetchEventsByDate returns events happening in city within the inclusive
// [startDate, endDate] range, optionally narrowed by keyword. Inputs are
// validated before any request is issued; a fetch failure is returned to
// the caller, never collapsed into an empty result.
func (c *Client) FetchEventsByDate(ctx context.Context, city, startDate, endDate, keyword string) ([]Event, error) {
	city, err := validate.Location(city)
	if err != nil {
		return nil, err
	}

	if keyword != "" {
		keyword, err = validate.Keyword(keyword)
		if err != nil {
			return nil, err
		}
	}

	startDate, endDate, err = validate.DateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return c.SearchEvents(ctx, SearchQuery{
		City:      city,
		Keyword:   keyword,
		StartDate: startDate,
		EndDate:   endDate,
		Size:      dateSearchSize,
	})
}

// SearchEvents runs one Discovery API search and returns the normalized
// events. The query's end date is padded by one day at request time so the
// caller's last day is fully covered.
func (c *Client) SearchEvents(ctx context.Context, query SearchQuery) ([]Event, error) {
	if query.Radius == 0 {
		query.Radius = defaultRadius
	}
	if query.Unit == "" {
		query.Unit = defaultUnit
	}
	if query.Size == 0 {
		query.Size = defaultSize
	}

	endDate, err := time.Parse(validate.DateFormat, query.EndDate)
	if err != nil {
		return nil, &validate.Error{Field: "end_date", Reason: "invalid date format, use YYYY-MM-DD"}
	}
	paddedEnd := endDate.AddDate(0, 0, 1).Format(validate.DateFormat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events.json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("apikey", c.apiKey)
	q.Set("city", query.City)
	q.Set("startDateTime", query.StartDate+"T00:00:00Z")
	q.Set("endDateTime", paddedEnd+"T23:59:59Z")
	q.Set("size", strconv.Itoa(query.Size))
	q.Set("unit", query.Unit)
	q.Set("radius", strconv.Itoa(query.Radius))
	if query.Keyword != "" {
		q.Set("keyword", query.Keyword)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if provider.IsTimeout(err) {
			return nil, &provider.TimeoutError{Provider: ProviderName, Op: "searching events"}
		}
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &provider.HTTPError{Provider: ProviderName, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return c.parseEventsResponse(body), nil
}
