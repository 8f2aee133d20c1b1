package traffic

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Location is either a free-text address or a coordinate pair. Clients send
// it as a plain JSON string or as an object, so it carries a custom
// unmarshaler accepting both shapes.
type Location struct {
	Address string  `json:"address,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

func (l Location) IsZero() bool {
	return l.Address == "" && l.Lat == 0 && l.Lng == 0
}

// Resolve returns the string form the directions provider expects: the
// address verbatim, or "lat,lng" when only coordinates are present.
func (l Location) Resolve() string {
	if l.Address != "" {
		return l.Address
	}
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

func (l *Location) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var addr string
		if err := json.Unmarshal(data, &addr); err != nil {
			return err
		}
		*l = Location{Address: addr}
		return nil
	}

	type plain Location
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("location must be a string or a lat/lng object: %w", err)
	}
	*l = Location(p)
	return nil
}
