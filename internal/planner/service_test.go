package planner

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"flightplanner/internal/traffic"
	"flightplanner/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEstimator struct {
	estimate    *traffic.Estimate
	err         error
	called      bool
	destination string
}

func (s *stubEstimator) Estimate(_ context.Context, _, destination traffic.Location) (*traffic.Estimate, error) {
	s.called = true
	s.destination = destination.Address
	if s.err != nil {
		return nil, s.err
	}
	return s.estimate, nil
}

func (s *stubEstimator) Conditions(_ context.Context, _, _ traffic.Location) ([]traffic.Condition, error) {
	return nil, errors.New("not implemented")
}

type stubDirectory struct {
	airports map[string]Airport
}

func (d *stubDirectory) ByCode(code string) (Airport, bool) {
	a, ok := d.airports[code]
	return a, ok
}

type stubPrefs struct {
	prefs *Preferences
	err   error
}

func (p *stubPrefs) Get(context.Context, string) (*Preferences, error) {
	return p.prefs, p.err
}

type fixedIDGen struct{}

func (fixedIDGen) GenerateID() int64 { return 42 }

func steadyEstimate(durationSeconds int64) *traffic.Estimate {
	return &traffic.Estimate{
		Duration:     durationSeconds,
		DurationText: "40 mins",
		Distance:     30000,
		DistanceText: "30 km",
		Route: traffic.Route{
			StartAddress: "Downtown",
			EndAddress:   "JFK Airport, Queens, NY 11430, USA",
			Steps: []traffic.Step{
				{Instruction: "Head north on Main St", Distance: "30 km", Duration: "40 mins"},
			},
		},
	}
}

func newTestService(est *stubEstimator, prefs PreferenceStore) *Service {
	directory := &stubDirectory{airports: map[string]Airport{
		"JFK": {Code: "JFK", Address: "JFK Airport, Queens, NY 11430, USA"},
	}}
	zlogger := logger.NewWithWriter("production", io.Discard)
	return NewService(est, directory, prefs, DefaultBufferConfig(), Defaults{}, fixedIDGen{}, zlogger)
}

func TestCalculate_LeaveByArithmetic(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)} // 40 minutes
	svc := newTestService(est, nil)

	result, err := svc.Calculate(context.Background(), validRequest())
	require.NoError(t, err)

	// 40 travel + 30 check-in + 60 security + 30 boarding = 160 minutes
	assert.Equal(t, "11:50", result.DepartureTime)
	assert.Equal(t, "14:30", result.FlightDepartureTime)
	assert.Equal(t, "40 mins", result.Breakdown.Travel)
	assert.Equal(t, "30 mins", result.Breakdown.CheckIn)
	assert.Equal(t, "60 mins", result.Breakdown.Security)
	assert.Equal(t, "30 mins", result.Breakdown.Boarding)
	assert.Equal(t, "Not needed", result.Breakdown.Parking)
	assert.Equal(t, "160 mins", result.Breakdown.Total)
	assert.False(t, result.Degraded)
	assert.Equal(t, "JFK Airport, Queens, NY 11430, USA", result.Route.EndAddress)
}

func TestCalculate_TravelMinutesUseCeiling(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(61)}
	svc := newTestService(est, nil)

	result, err := svc.Calculate(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "2 mins", result.Breakdown.Travel)
}

func TestCalculate_ValidationSkipsEstimator(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	svc := newTestService(est, nil)

	req := validRequest()
	req.DestinationAirport = nil

	_, err := svc.Calculate(context.Background(), req)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeValidation, appErr.Code)
	assert.False(t, est.called, "estimator must not be invoked for an invalid request")
}

func TestCalculate_MalformedTime(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	svc := newTestService(est, nil)

	for _, bad := range []string{"25:00", "14:65", "2:30 PM", "1430", "14:30:00"} {
		req := validRequest()
		req.FlightDepartureTime = bad

		_, err := svc.Calculate(context.Background(), req)

		var appErr *AppError
		require.ErrorAs(t, err, &appErr, "input %q", bad)
		assert.Equal(t, ErrorCodeTimeParse, appErr.Code, "input %q", bad)
	}
}

func TestCalculate_DegradedEstimatePropagates(t *testing.T) {
	est := &stubEstimator{estimate: &traffic.Estimate{
		Duration:     3600,
		DurationText: "1 hour (estimated)",
		Distance:     50000,
		DistanceText: "50 km (estimated)",
		Route: traffic.Route{
			StartAddress: "Your Location",
			EndAddress:   "Airport",
			Steps:        []traffic.Step{{Instruction: "Drive to airport", Distance: "50 km", Duration: "1 hour"}},
		},
		Degraded: true,
		Message:  "Using estimated travel time. Please enable the directions API for accurate results.",
	}}
	svc := newTestService(est, nil)

	result, err := svc.Calculate(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, "60 mins", result.Breakdown.Travel)
}

func TestCalculate_TrafficUnavailable(t *testing.T) {
	est := &stubEstimator{err: &traffic.UnavailableError{Cause: errors.New("OVER_QUERY_LIMIT")}}
	svc := newTestService(est, nil)

	result, err := svc.Calculate(context.Background(), validRequest())

	assert.Nil(t, result, "result must never be partially populated")
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeTrafficUnavailable, appErr.Code)
	assert.Contains(t, errors.Unwrap(appErr).Error(), "OVER_QUERY_LIMIT")
}

func TestCalculate_Idempotent(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	svc := newTestService(est, nil)

	first, err := svc.Calculate(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), validRequest())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestCalculate_WrapsAroundMidnight(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	svc := newTestService(est, nil)

	req := validRequest()
	req.FlightDepartureTime = "00:30"

	result, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	// 30 minutes past midnight minus 160 minutes wraps to the previous
	// clock face; no date is tracked.
	assert.Equal(t, "21:50", result.DepartureTime)
}

func TestCalculate_ResolvesAirportByCode(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	svc := newTestService(est, nil)

	req := validRequest()
	req.DestinationAirport = &Airport{Code: "JFK"}

	_, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "JFK Airport, Queens, NY 11430, USA", est.destination)
}

func TestCalculate_UnknownAirportCode(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	svc := newTestService(est, nil)

	req := validRequest()
	req.DestinationAirport = &Airport{Code: "ZZZ"}

	_, err := svc.Calculate(context.Background(), req)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrorCodeValidation, appErr.Code)
	assert.False(t, est.called)
}

func TestCalculate_PreferenceDefaultsApply(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	parking := true
	prefs := &stubPrefs{prefs: &Preferences{
		RiskTolerance: RiskRelaxed,
		ParkingNeeded: &parking,
		Buffers:       &BufferConfig{CheckIn: 45},
	}}
	svc := newTestService(est, prefs)

	req := validRequest()
	req.UserID = "user-1"
	req.RiskTolerance = ""
	req.ParkingNeeded = nil

	result, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "45 mins", result.Breakdown.CheckIn)
	assert.Equal(t, "75 mins", result.Breakdown.Security) // domestic 60 + relaxed 15
	assert.Equal(t, "15 mins", result.Breakdown.Parking)
}

func TestCalculate_RequestOverridesPreferences(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	parking := true
	prefs := &stubPrefs{prefs: &Preferences{RiskTolerance: RiskRelaxed, ParkingNeeded: &parking}}
	svc := newTestService(est, prefs)

	noParking := false
	req := validRequest()
	req.UserID = "user-1"
	req.RiskTolerance = RiskJustInTime
	req.ParkingNeeded = &noParking

	result, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "45 mins", result.Breakdown.Security) // domestic 60 - 15
	assert.Equal(t, "Not needed", result.Breakdown.Parking)
}

func TestCalculate_PreferenceLookupFailureIsNotFatal(t *testing.T) {
	est := &stubEstimator{estimate: steadyEstimate(2400)}
	prefs := &stubPrefs{err: errors.New("redis down")}
	svc := newTestService(est, prefs)

	req := validRequest()
	req.UserID = "user-1"

	result, err := svc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "60 mins", result.Breakdown.Security)
}
