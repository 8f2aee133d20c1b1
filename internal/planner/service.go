package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightplanner/internal/traffic"
	"flightplanner/pkg/idgen"
	"flightplanner/pkg/logger"
)

const minutesPerDay = 24 * 60

// TrafficEstimator is the planner's view of the traffic component.
type TrafficEstimator interface {
	Estimate(ctx context.Context, origin, destination traffic.Location) (*traffic.Estimate, error)
	Conditions(ctx context.Context, origin, destination traffic.Location) ([]traffic.Condition, error)
}

// AirportDirectory resolves an airport code to its reference record. The
// planner reads the address only.
type AirportDirectory interface {
	ByCode(code string) (Airport, bool)
}

// PreferenceStore supplies per-user planner defaults.
type PreferenceStore interface {
	Get(ctx context.Context, userID string) (*Preferences, error)
}

// Defaults apply when neither the request nor the user's stored
// preferences carry a value.
type Defaults struct {
	RiskTolerance RiskTolerance
	ParkingNeeded bool
}

type Service struct {
	estimator TrafficEstimator
	directory AirportDirectory
	prefs     PreferenceStore
	buffers   BufferConfig
	defaults  Defaults
	idgen     idgen.Generator
	logger    logger.Client
}

func NewService(estimator TrafficEstimator, directory AirportDirectory, prefs PreferenceStore,
	buffers BufferConfig, defaults Defaults, idgen idgen.Generator, logger logger.Client) *Service {
	if defaults.RiskTolerance == "" {
		defaults.RiskTolerance = RiskModerate
	}
	return &Service{
		estimator: estimator,
		directory: directory,
		prefs:     prefs,
		buffers:   buffers,
		defaults:  defaults,
		idgen:     idgen,
		logger:    logger,
	}
}

// Calculate runs the full pipeline: validation, traffic estimation, buffer
// computation and the leave-by arithmetic. Recalculation is just another
// call; nothing is reused between invocations since traffic is
// time-sensitive.
func (s *Service) Calculate(ctx context.Context, req CalculationRequest) (*DepartureResult, error) {
	if appErr := validateRequest(req); appErr != nil {
		return nil, appErr
	}

	requestID := fmt.Sprintf("%d", s.idgen.GenerateID())

	prefs := s.loadPreferences(ctx, req.UserID)
	risk, parkingNeeded := s.resolveDefaults(req, prefs)

	destination, appErr := s.resolveDestination(req.DestinationAirport)
	if appErr != nil {
		return nil, appErr
	}

	estimate, err := s.estimator.Estimate(ctx, req.DepartureLocation, traffic.Location{Address: destination})
	if err != nil {
		var unavailable *traffic.UnavailableError
		if errors.As(err, &unavailable) {
			s.logger.Error("traffic estimate failed",
				logger.Field{Key: "request_id", Value: requestID},
				logger.Field{Key: "err", Value: unavailable.Cause.Error()},
			)
			return nil, NewTrafficUnavailableError(unavailable.Cause)
		}
		return nil, NewTrafficUnavailableError(err)
	}

	// Ceiling, never rounding: the buffer must not understate travel time.
	travelMinutes := int((estimate.Duration + 59) / 60)

	policy := NewBufferPolicy(s.effectiveBufferConfig(prefs))
	buffers := policy.Compute(req.FlightType, risk, parkingNeeded)

	totalNeeded := travelMinutes + buffers.Total()

	departureMinutes, appErr := parseClockTime(req.FlightDepartureTime)
	if appErr != nil {
		return nil, appErr
	}

	// Pure clock-face subtraction modulo 24h; no date is tracked.
	leaveBy := ((departureMinutes-totalNeeded)%minutesPerDay + minutesPerDay) % minutesPerDay

	result := &DepartureResult{
		DepartureTime:       formatClockTime(leaveBy),
		FlightDepartureTime: req.FlightDepartureTime,
		Breakdown:           buildBreakdown(travelMinutes, buffers, parkingNeeded, totalNeeded),
		Route:               estimate.Route,
		Degraded:            estimate.Degraded,
		Message:             estimate.Message,
	}

	s.logger.Info("departure time calculated",
		logger.Field{Key: "request_id", Value: requestID},
		logger.Field{Key: "leave_by", Value: result.DepartureTime},
		logger.Field{Key: "travel_minutes", Value: travelMinutes},
		logger.Field{Key: "total_minutes", Value: totalNeeded},
		logger.Field{Key: "degraded", Value: result.Degraded},
	)

	return result, nil
}

// loadPreferences is best-effort: a missing or unreadable preference record
// never blocks a calculation.
func (s *Service) loadPreferences(ctx context.Context, userID string) *Preferences {
	if userID == "" || s.prefs == nil {
		return nil
	}
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load user preferences",
			logger.Field{Key: "user_id", Value: userID},
			logger.Field{Key: "err", Value: err.Error()},
		)
		return nil
	}
	return prefs
}

func (s *Service) resolveDefaults(req CalculationRequest, prefs *Preferences) (RiskTolerance, bool) {
	risk := req.RiskTolerance
	if risk == "" && prefs != nil {
		risk = prefs.RiskTolerance
	}
	if risk == "" {
		risk = s.defaults.RiskTolerance
	}

	parkingNeeded := s.defaults.ParkingNeeded
	if prefs != nil && prefs.ParkingNeeded != nil {
		parkingNeeded = *prefs.ParkingNeeded
	}
	if req.ParkingNeeded != nil {
		parkingNeeded = *req.ParkingNeeded
	}

	return risk, parkingNeeded
}

func (s *Service) effectiveBufferConfig(prefs *Preferences) BufferConfig {
	cfg := s.buffers
	if prefs != nil && prefs.Buffers != nil {
		cfg = cfg.Merge(*prefs.Buffers)
	}
	return cfg
}

func (s *Service) resolveDestination(dest *Airport) (string, *AppError) {
	if dest.Address != "" {
		return dest.Address, nil
	}
	if s.directory != nil {
		if found, ok := s.directory.ByCode(dest.Code); ok {
			return found.Address, nil
		}
	}
	return "", NewValidationError("Unknown destination airport: " + dest.Code)
}

func parseClockTime(value string) (int, *AppError) {
	t, err := time.Parse("15:04", value)
	if err != nil || len(value) != len("15:04") {
		return 0, NewTimeParseError("Invalid flight departure time, expected 24-hour HH:MM: " + value)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func buildBreakdown(travelMinutes int, buffers BufferSet, parkingNeeded bool, totalNeeded int) Breakdown {
	parking := "Not needed"
	if parkingNeeded {
		parking = formatMinutes(buffers.Parking)
	}
	return Breakdown{
		Travel:   formatMinutes(travelMinutes),
		CheckIn:  formatMinutes(buffers.CheckIn),
		Security: formatMinutes(buffers.Security),
		Boarding: formatMinutes(buffers.Boarding),
		Parking:  parking,
		Total:    formatMinutes(totalNeeded),
	}
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%d mins", minutes)
}
