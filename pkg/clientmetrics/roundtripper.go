package clientmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/venuebook/booking-engine/pkg/metrics"
)

// RoundTripper обёртка транспорта HTTP-клиента, снимающая метрики исходящих
// запросов к интеграциям (Booking Store, каталог залов)
type RoundTripper struct {
	target  string
	base    http.RoundTripper
	metrics *metrics.Metrics
}

// Wrap оборачивает транспорт метриками. Если base == nil, используется
// http.DefaultTransport.
func Wrap(target string, base http.RoundTripper, m *metrics.Metrics) *RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RoundTripper{
		target:  target,
		base:    base,
		metrics: m,
	}
}

// RoundTrip выполняет запрос и записывает метрики
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.base.RoundTrip(req)

	rt.metrics.ClientRequestDuration.
		WithLabelValues(rt.target, req.Method).
		Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	rt.metrics.ClientRequestsTotal.
		WithLabelValues(rt.target, req.Method, status).
		Inc()

	return resp, err
}
