package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas del servicio. Se registran en un Registry propio
// (uno por router) para que los tests puedan crear varios routers.
type Metrics struct {
	registry *prometheus.Registry

	IdentificationLatency *prometheus.HistogramVec
	ReviewsRequired       prometheus.Counter
	ReviewedAnimals       prometheus.Counter
	RegistrationsSaved    *prometheus.CounterVec
	HTTPRequests          *prometheus.CounterVec
	HTTPLatency           *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		IdentificationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "livestock_identification_duration_seconds",
			Help:    "Duration of breed identification calls by outcome",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60},
		}, []string{"outcome"}), // outcome: "ok", "failed"

		ReviewsRequired: f.NewCounter(prometheus.CounterOpts{
			Name: "livestock_reviews_required_total",
			Help: "Wizard submissions that entered disambiguation review",
		}),

		ReviewedAnimals: f.NewCounter(prometheus.CounterOpts{
			Name: "livestock_reviewed_animals_total",
			Help: "Animals flagged for breed review",
		}),

		RegistrationsSaved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livestock_registrations_saved_total",
			Help: "Registrations persisted by wizard mode",
		}, []string{"mode"}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livestock_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),

		HTTPLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "livestock_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// IdentificationFinished implementa wizard.Observer.
func (m *Metrics) IdentificationFinished(d time.Duration, failed bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if failed {
		outcome = "failed"
	}
	m.IdentificationLatency.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) ReviewRequired(animals int) {
	if m == nil {
		return
	}
	m.ReviewsRequired.Inc()
	m.ReviewedAnimals.Add(float64(animals))
}

func (m *Metrics) RegistrationSaved(mode string) {
	if m != nil {
		m.RegistrationsSaved.WithLabelValues(mode).Inc()
	}
}

// Middleware cuenta requests por patrón de ruta (no por path, para acotar
// la cardinalidad de labels).
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
