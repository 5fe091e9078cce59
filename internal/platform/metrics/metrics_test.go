package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver(t *testing.T) {
	m := New()

	m.IdentificationFinished(2*time.Second, false)
	m.IdentificationFinished(time.Second, true)
	m.ReviewRequired(2)
	m.RegistrationSaved("create")
	m.RegistrationSaved("create")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReviewsRequired))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReviewedAnimals))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RegistrationsSaved.WithLabelValues("create")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.IdentificationLatency))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IdentificationFinished(time.Second, false)
		m.ReviewRequired(1)
		m.RegistrationSaved("update")
	})
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/wizards/{wizardID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Handle("/metrics", m.Handler())

	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/wizards/abc")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/wizards/{wizardID}", "404")))

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "livestock_http_requests_total"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
