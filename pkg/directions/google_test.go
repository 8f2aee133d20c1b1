package directions

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightplanner/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
	"status": "OK",
	"routes": [{
		"legs": [{
			"duration": {"text": "35 mins", "value": 2100},
			"duration_in_traffic": {"text": "42 mins", "value": 2520},
			"distance": {"text": "30 km", "value": 30000},
			"start_address": "Downtown",
			"end_address": "JFK Airport, Queens, NY 11430, USA",
			"steps": [{
				"html_instructions": "Turn <b>left</b>",
				"distance": {"text": "5 km", "value": 5000},
				"duration": {"text": "8 mins", "value": 480}
			}]
		}]
	}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*GoogleClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewGoogleClient(server.Client(), server.URL, "test-key",
		logger.NewWithWriter("production", io.Discard))
	return client, server
}

func TestRoute_BuildsTrafficAwareQuery(t *testing.T) {
	departure := time.Unix(1700000000, 0)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/directions/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Downtown", q.Get("origin"))
		assert.Equal(t, "40.7128,-74.006", q.Get("destination"))
		assert.Equal(t, "1700000000", q.Get("departure_time"))
		assert.Equal(t, "best_guess", q.Get("traffic_model"))
		assert.Equal(t, "driving", q.Get("mode"))
		assert.Equal(t, "test-key", q.Get("key"))
		w.Write([]byte(sampleBody))
	})

	resp, err := client.Route(context.Background(), "Downtown", "40.7128,-74.006", departure)
	require.NoError(t, err)

	assert.Equal(t, StatusOK, resp.Status)
	require.Len(t, resp.Routes, 1)
	leg := resp.Routes[0].Legs[0]
	assert.Equal(t, int64(2100), leg.Duration.Value)
	require.NotNil(t, leg.DurationInTraffic)
	assert.Equal(t, int64(2520), leg.DurationInTraffic.Value)
	assert.Equal(t, "Turn <b>left</b>", leg.Steps[0].HTMLInstructions)
}

func TestRoute_NonOKStatusIsReturnedNotRejected(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "not authorized"}`))
	})

	resp, err := client.Route(context.Background(), "a", "b", time.Now())
	require.NoError(t, err, "status interpretation belongs to the caller")

	assert.Equal(t, StatusRequestDenied, resp.Status)
	assert.Equal(t, "not authorized", resp.ErrorMessage)
}

func TestRoute_HTTPErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Route(context.Background(), "a", "b", time.Now())
	assert.ErrorContains(t, err, "non-200")
}

func TestRoute_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.Route(context.Background(), "a", "b", time.Now())
	assert.ErrorContains(t, err, "decode")
}
