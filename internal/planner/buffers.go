package planner

// BufferConfig holds the base buffer constants in minutes. Zero values in an
// override mean "keep the default", so per-user preferences can change one
// constant without restating the rest.
type BufferConfig struct {
	CheckIn               int `json:"checkIn,omitempty"`
	Boarding              int `json:"boarding,omitempty"`
	SecurityDomestic      int `json:"securityDomestic,omitempty"`
	SecurityInternational int `json:"securityInternational,omitempty"`
	Parking               int `json:"parking,omitempty"`
}

func DefaultBufferConfig() BufferConfig {
	return BufferConfig{
		CheckIn:               30,
		Boarding:              30,
		SecurityDomestic:      60,
		SecurityInternational: 120,
		Parking:               15,
	}
}

// Merge returns cfg with every non-zero field of override applied.
func (c BufferConfig) Merge(override BufferConfig) BufferConfig {
	if override.CheckIn > 0 {
		c.CheckIn = override.CheckIn
	}
	if override.Boarding > 0 {
		c.Boarding = override.Boarding
	}
	if override.SecurityDomestic > 0 {
		c.SecurityDomestic = override.SecurityDomestic
	}
	if override.SecurityInternational > 0 {
		c.SecurityInternational = override.SecurityInternational
	}
	if override.Parking > 0 {
		c.Parking = override.Parking
	}
	return c
}

// BufferPolicy computes the buffer set for a flight. It is a pure function
// of its inputs; constants come in at construction so per-user overrides
// never touch shared state.
type BufferPolicy struct {
	cfg BufferConfig
}

func NewBufferPolicy(cfg BufferConfig) *BufferPolicy {
	return &BufferPolicy{cfg: cfg}
}

func (p *BufferPolicy) Compute(flightType FlightType, risk RiskTolerance, parkingNeeded bool) BufferSet {
	buffers := BufferSet{
		CheckIn:  p.cfg.CheckIn,
		Security: p.cfg.SecurityDomestic,
		Boarding: p.cfg.Boarding,
	}
	if flightType == FlightTypeInternational {
		buffers.Security = p.cfg.SecurityInternational
	}
	if parkingNeeded {
		buffers.Parking = p.cfg.Parking
	}

	// Risk tolerance shifts only the security component.
	buffers.Security += riskAdjustment(risk)
	if buffers.Security < 0 {
		buffers.Security = 0
	}

	return buffers
}

func riskAdjustment(risk RiskTolerance) int {
	switch risk {
	case RiskRelaxed:
		return 15
	case RiskJustInTime:
		return -15
	default:
		return 0
	}
}
