package planner

import "strings"

// validateRequest checks presence of required fields only. Clock-time
// format is deliberately left to the arithmetic step so a malformed time
// surfaces as a TIME_PARSE_ERROR instead of a missing-field error.
func validateRequest(req CalculationRequest) *AppError {
	var missing []string

	if req.FlightDepartureTime == "" {
		missing = append(missing, "flightDepartureTime")
	}
	if req.DepartureLocation.IsZero() {
		missing = append(missing, "departureLocation")
	}
	if req.DestinationAirport == nil || (req.DestinationAirport.Address == "" && req.DestinationAirport.Code == "") {
		missing = append(missing, "destinationAirport")
	}
	if req.FlightType == "" {
		missing = append(missing, "flightType")
	}

	if len(missing) > 0 {
		return NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}
	return nil
}
