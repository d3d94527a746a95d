package metrics

import (
	"shareit/internal/domain/booking"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	bookingDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shareit_booking_decisions_total",
			Help: "Committed owner decisions on bookings by resulting status",
		},
		[]string{"status"},
	)
)

// BookingEvents counts approval decisions once their transaction has committed
type BookingEvents struct{}

func NewBookingEvents() *BookingEvents {
	return &BookingEvents{}
}

func (*BookingEvents) BookingDecided(status booking.Status) {
	bookingDecisions.WithLabelValues(status.String()).Inc()
}
