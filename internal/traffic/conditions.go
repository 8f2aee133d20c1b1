package traffic

import (
	"context"
	"time"

	"flightplanner/pkg/directions"
	"flightplanner/pkg/logger"
)

var conditionOffsets = []time.Duration{0, 30 * time.Minute, 60 * time.Minute}

// Condition is the traffic-aware duration for one candidate departure time.
type Condition struct {
	DepartureTime string `json:"departureTime"`
	Duration      int64  `json:"duration"`
	DurationText  string `json:"durationText"`
}

// Conditions probes the route at departure now, +30 and +60 minutes so the
// caller can compare how traffic develops. Probes run concurrently; a failed
// probe is logged and skipped rather than failing the whole comparison.
func (e *Estimator) Conditions(ctx context.Context, origin, destination Location) ([]Condition, error) {
	base := e.now()

	type probe struct {
		idx  int
		cond Condition
		err  error
	}

	results := make(chan probe, len(conditionOffsets))
	for i, offset := range conditionOffsets {
		go func(idx int, departure time.Time) {
			resp, err := e.directions.Route(ctx, origin.Resolve(), destination.Resolve(), departure)
			if err != nil {
				results <- probe{idx: idx, err: err}
				return
			}
			if resp.Status != directions.StatusOK || len(resp.Routes) == 0 || len(resp.Routes[0].Legs) == 0 {
				results <- probe{idx: idx, err: &statusError{status: resp.Status, message: resp.ErrorMessage}}
				return
			}

			leg := resp.Routes[0].Legs[0]
			duration := leg.Duration
			if leg.DurationInTraffic != nil {
				duration = *leg.DurationInTraffic
			}

			results <- probe{idx: idx, cond: Condition{
				DepartureTime: departure.Format("15:04"),
				Duration:      duration.Value,
				DurationText:  duration.Text,
			}}
		}(i, base.Add(offset))
	}

	ordered := make([]*Condition, len(conditionOffsets))
	for range conditionOffsets {
		p := <-results
		if p.err != nil {
			e.logger.Warn("traffic condition probe failed",
				logger.Field{Key: "probe", Value: p.idx},
				logger.Field{Key: "err", Value: p.err.Error()},
			)
			continue
		}
		cond := p.cond
		ordered[p.idx] = &cond
	}

	conditions := make([]Condition, 0, len(ordered))
	for _, c := range ordered {
		if c != nil {
			conditions = append(conditions, *c)
		}
	}

	if len(conditions) == 0 {
		return nil, &UnavailableError{Cause: &statusError{status: "UNKNOWN", message: "all condition probes failed"}}
	}

	return conditions, nil
}
