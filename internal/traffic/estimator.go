package traffic

import (
	"context"
	"regexp"
	"time"

	"flightplanner/pkg/directions"
	"flightplanner/pkg/logger"
)

// Fallback values substituted when the directions product is not enabled
// for the configured key.
const (
	fallbackDurationSeconds = 3600
	fallbackDistanceMeters  = 50000
	fallbackMessage         = "Using estimated travel time. Please enable the directions API for accurate results."
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// UnavailableError reports that the directions capability failed for a
// reason other than the access-denied case. The cause is preserved for
// operator logs.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return "traffic estimate unavailable: " + e.Cause.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

type Step struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
}

type Route struct {
	StartAddress string `json:"startAddress"`
	EndAddress   string `json:"endAddress"`
	Steps        []Step `json:"steps"`
}

// Estimate is the normalized travel-duration result. Degraded marks the
// numbers as synthetic placeholders rather than measurements; it must
// survive all the way to the caller-visible payload.
type Estimate struct {
	Duration     int64  `json:"duration"`
	DurationText string `json:"durationText"`
	Distance     int64  `json:"distance"`
	DistanceText string `json:"distanceText"`
	Route        Route  `json:"route"`
	Degraded     bool   `json:"degraded"`
	Message      string `json:"message,omitempty"`
}

type Estimator struct {
	directions directions.Client
	logger     logger.Client
	now        func() time.Time
}

func NewEstimator(client directions.Client, logger logger.Client) *Estimator {
	return &Estimator{
		directions: client,
		logger:     logger,
		now:        time.Now,
	}
}

// Estimate fetches a traffic-aware driving estimate for a departure right
// now. An access-denied response degrades to a flagged synthetic estimate;
// every other provider failure is an UnavailableError.
func (e *Estimator) Estimate(ctx context.Context, origin, destination Location) (*Estimate, error) {
	resp, err := e.directions.Route(ctx, origin.Resolve(), destination.Resolve(), e.now())
	if err != nil {
		return nil, &UnavailableError{Cause: err}
	}

	switch resp.Status {
	case directions.StatusOK:
		est, err := normalize(resp)
		if err != nil {
			return nil, &UnavailableError{Cause: err}
		}
		return est, nil
	case directions.StatusRequestDenied:
		e.logger.Warn("directions api access denied, returning fallback estimate",
			logger.Field{Key: "error_message", Value: resp.ErrorMessage},
		)
		return fallbackEstimate(), nil
	default:
		return nil, &UnavailableError{Cause: &statusError{status: resp.Status, message: resp.ErrorMessage}}
	}
}

type statusError struct {
	status  string
	message string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return "directions api error: " + e.status
	}
	return "directions api error: " + e.status + " - " + e.message
}

func normalize(resp *directions.Response) (*Estimate, error) {
	if len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
		return nil, &statusError{status: "OK", message: "response contained no routes"}
	}

	leg := resp.Routes[0].Legs[0]

	// Prefer the traffic-aware duration when the provider includes one.
	duration := leg.Duration
	if leg.DurationInTraffic != nil {
		duration = *leg.DurationInTraffic
	}

	steps := make([]Step, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		steps = append(steps, Step{
			Instruction: htmlTagPattern.ReplaceAllString(s.HTMLInstructions, ""),
			Distance:    s.Distance.Text,
			Duration:    s.Duration.Text,
		})
	}

	return &Estimate{
		Duration:     duration.Value,
		DurationText: duration.Text,
		Distance:     leg.Distance.Value,
		DistanceText: leg.Distance.Text,
		Route: Route{
			StartAddress: leg.StartAddress,
			EndAddress:   leg.EndAddress,
			Steps:        steps,
		},
	}, nil
}

func fallbackEstimate() *Estimate {
	return &Estimate{
		Duration:     fallbackDurationSeconds,
		DurationText: "1 hour (estimated)",
		Distance:     fallbackDistanceMeters,
		DistanceText: "50 km (estimated)",
		Route: Route{
			StartAddress: "Your Location",
			EndAddress:   "Airport",
			Steps: []Step{
				{Instruction: "Drive to airport", Distance: "50 km", Duration: "1 hour"},
			},
		},
		Degraded: true,
		Message:  fallbackMessage,
	}
}
