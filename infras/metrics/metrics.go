package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinicbook",
			Name:      "booking_created_total",
			Help:      "Count of bookings created, by site.",
		},
		[]string{"site"},
	)

	bookingRescheduled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinicbook",
			Name:      "booking_rescheduled_total",
			Help:      "Count of bookings rescheduled, by site.",
		},
		[]string{"site"},
	)

	bookingCancelled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinicbook",
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings cancelled, by site.",
		},
		[]string{"site"},
	)

	slotQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clinicbook",
			Name:      "slot_queries_total",
			Help:      "Count of availability computations, by site.",
		},
		[]string{"site"},
	)

	notificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "clinicbook",
			Name:      "notification_publish_failures_total",
			Help:      "Count of notification events that could not be published.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingRescheduled, bookingCancelled, slotQueries, notificationFailures)
	})
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBookingCreated(site string) {
	bookingCreated.WithLabelValues(site).Inc()
}

func IncBookingRescheduled(site string) {
	bookingRescheduled.WithLabelValues(site).Inc()
}

func IncBookingCancelled(site string) {
	bookingCancelled.WithLabelValues(site).Inc()
}

func IncSlotQueries(site string) {
	slotQueries.WithLabelValues(site).Inc()
}

func IncNotificationFailures() {
	notificationFailures.Inc()
}
