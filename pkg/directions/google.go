package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"flightplanner/pkg/logger"
)

// Directions API statuses the caller cares about. Everything else is
// treated uniformly as a provider failure.
const (
	StatusOK            = "OK"
	StatusRequestDenied = "REQUEST_DENIED"
)

// Client fetches driving directions between two resolved locations.
type Client interface {
	Route(ctx context.Context, origin, destination string, departureTime time.Time) (*Response, error)
}

// Response mirrors the subset of the Google Directions payload the planner
// consumes. Status is returned untouched so callers decide how to treat
// non-OK outcomes.
type Response struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

type Route struct {
	Legs []Leg `json:"legs"`
}

type Leg struct {
	Duration          TextValue  `json:"duration"`
	DurationInTraffic *TextValue `json:"duration_in_traffic,omitempty"`
	Distance          TextValue  `json:"distance"`
	StartAddress      string     `json:"start_address"`
	EndAddress        string     `json:"end_address"`
	Steps             []Step     `json:"steps"`
}

type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

type Step struct {
	HTMLInstructions string    `json:"html_instructions"`
	Distance         TextValue `json:"distance"`
	Duration         TextValue `json:"duration"`
}

type GoogleClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     logger.Client
}

func NewGoogleClient(httpClient *http.Client, baseURL, apiKey string, logger logger.Client) *GoogleClient {
	return &GoogleClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

// Route requests a driving-mode estimate for the given departure time using
// the best-guess traffic model, so durations reflect predicted traffic
// rather than free-flow time.
func (g *GoogleClient) Route(ctx context.Context, origin, destination string, departureTime time.Time) (*Response, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("departure_time", strconv.FormatInt(departureTime.Unix(), 10))
	q.Set("traffic_model", "best_guess")
	q.Set("mode", "driving")
	q.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s/maps/api/directions/json?%s", g.baseURL, q.Encode())

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("directions: failed to build request: %w", err)
	}

	resp, err := g.httpClient.Do(r)
	if err != nil {
		return nil, fmt.Errorf("directions: external api call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directions: external api returned non-200 status: %d", resp.StatusCode)
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("directions: failed to decode json response: %w", err)
	}

	if apiResp.Status != StatusOK {
		g.logger.Warn("directions api returned non-ok status",
			logger.Field{Key: "status", Value: apiResp.Status},
			logger.Field{Key: "error_message", Value: apiResp.ErrorMessage},
		)
	}

	return &apiResp, nil
}
