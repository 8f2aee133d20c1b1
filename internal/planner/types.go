package planner

import "flightplanner/internal/traffic"

type FlightType string

const (
	FlightTypeDomestic      FlightType = "Domestic"
	FlightTypeInternational FlightType = "International"
)

type RiskTolerance string

const (
	RiskRelaxed    RiskTolerance = "Relaxed"
	RiskModerate   RiskTolerance = "Moderate"
	RiskJustInTime RiskTolerance = "Just-in-Time"
)

// Airport is immutable reference data owned by the directory. The planner
// only ever reads the address.
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	Address string `json:"address"`
}

// CalculationRequest is the inbound payload for a departure-time
// calculation. ParkingNeeded and RiskTolerance are optional; absent values
// fall back to stored user preferences, then to configured defaults.
type CalculationRequest struct {
	FlightDepartureTime string           `json:"flightDepartureTime"`
	DepartureLocation   traffic.Location `json:"departureLocation"`
	DestinationAirport  *Airport         `json:"destinationAirport"`
	FlightType          FlightType       `json:"flightType"`
	ParkingNeeded       *bool            `json:"parkingNeeded,omitempty"`
	RiskTolerance       RiskTolerance    `json:"riskTolerance,omitempty"`
	UserID              string           `json:"userId,omitempty"`
}

// BufferSet holds the four pre-flight buffers in whole minutes.
type BufferSet struct {
	CheckIn  int `json:"checkIn"`
	Security int `json:"security"`
	Boarding int `json:"boarding"`
	Parking  int `json:"parking"`
}

func (b BufferSet) Total() int {
	return b.CheckIn + b.Security + b.Boarding + b.Parking
}

type Breakdown struct {
	Travel   string `json:"travel"`
	CheckIn  string `json:"checkIn"`
	Security string `json:"security"`
	Boarding string `json:"boarding"`
	Parking  string `json:"parking"`
	Total    string `json:"total"`
}

// DepartureResult is deterministic for a given request and traffic
// estimate; the per-request id stays in logs only.
type DepartureResult struct {
	DepartureTime       string        `json:"departureTime"`
	FlightDepartureTime string        `json:"flightDepartureTime"`
	Breakdown           Breakdown     `json:"breakdown"`
	Route               traffic.Route `json:"route"`
	Degraded            bool          `json:"degraded"`
	Message             string        `json:"message,omitempty"`
}

// Preferences are per-user planner defaults supplied by the preferences
// store. Nil / empty fields mean "no override".
type Preferences struct {
	RiskTolerance RiskTolerance `json:"riskTolerance,omitempty"`
	ParkingNeeded *bool         `json:"parkingNeeded,omitempty"`
	Buffers       *BufferConfig `json:"buffers,omitempty"`
}
