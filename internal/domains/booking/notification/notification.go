package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"clinicbook/config"
	"clinicbook/infras/kafka"
	"clinicbook/infras/metrics"
	"clinicbook/infras/otel"
	"clinicbook/internal/domains/booking/model"
	"clinicbook/shared/constant"
)

const (
	EventBookingCreated     = "booking.created"
	EventBookingRescheduled = "booking.rescheduled"
	EventBookingCancelled   = "booking.cancelled"
)

// Event is the payload published for every booking state change. Downstream
// consumers (mailers, SMS gateways) fan it out to the listed recipients.
type Event struct {
	Type       string              `json:"type"`
	SiteID     string              `json:"site_id"`
	Booking    model.BookingRecord `json:"booking"`
	Emails     []string            `json:"emails"`
	Phones     []string            `json:"phones"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// Dispatcher publishes booking lifecycle events. Delivery is best effort:
// failures are logged and counted, never returned to the caller.
type Dispatcher interface {
	BookingCreated(ctx context.Context, siteID string, record model.BookingRecord, settings model.Settings)
	BookingRescheduled(ctx context.Context, siteID string, record model.BookingRecord, settings model.Settings)
	BookingCancelled(ctx context.Context, siteID string, record model.BookingRecord, settings model.Settings)
}

type dispatcherImpl struct {
	config *config.Config
	kafka  kafka.Client
	otel   otel.Otel
}

func New(config *config.Config, kafkaClient kafka.Client, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		config: config,
		kafka:  kafkaClient,
		otel:   otel,
	}
}

func (d *dispatcherImpl) BookingCreated(ctx context.Context, siteID string, record model.BookingRecord, settings model.Settings) {
	d.publish(ctx, EventBookingCreated, siteID, record, settings)
}

func (d *dispatcherImpl) BookingRescheduled(ctx context.Context, siteID string, record model.BookingRecord, settings model.Settings) {
	d.publish(ctx, EventBookingRescheduled, siteID, record, settings)
}

func (d *dispatcherImpl) BookingCancelled(ctx context.Context, siteID string, record model.BookingRecord, settings model.Settings) {
	d.publish(ctx, EventBookingCancelled, siteID, record, settings)
}

func (d *dispatcherImpl) publish(ctx context.Context, eventType, siteID string, record model.BookingRecord, settings model.Settings) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelDispatcherScopeName, "publish")
	defer scope.End()

	event := Event{
		Type:       eventType,
		SiteID:     siteID,
		Booking:    record,
		Emails:     settings.NotificationEmails,
		Phones:     settings.NotificationPhones,
		OccurredAt: time.Now().UTC(),
	}

	message := kafka.Message{
		Key:   record.ID,
		Value: event,
	}

	err := d.kafka.SendMessages(ctx, d.config.Kafka.Topics.Notifications, message)
	if err != nil {
		scope.TraceError(err)
		metrics.IncNotificationFailures()
		log.Warn().
			Err(err).
			Str("event", eventType).
			Str("siteId", siteID).
			Str("bookingId", record.ID).
			Msg("Failed to publish notification event")

		return
	}

	log.Info().
		Str("event", eventType).
		Str("siteId", siteID).
		Str("bookingId", record.ID).
		Msg("Published notification event")
}
