package notification_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"clinicbook/config"
	"clinicbook/infras/kafka"
	kafkamocks "clinicbook/infras/kafka/mocks"
	otelmocks "clinicbook/infras/otel/mocks"
	"clinicbook/internal/domains/booking/model"
	"clinicbook/internal/domains/booking/notification"
)

func newDispatcher(t *testing.T) (notification.Dispatcher, *kafkamocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	kafkaClient := kafkamocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Notifications = "booking.notifications"

	return notification.New(cfg, kafkaClient, otelmocks.NewOtel()), kafkaClient
}

func TestPublishesEventWithRecipients(t *testing.T) {
	dispatcher, kafkaClient := newDispatcher(t)

	record := model.BookingRecord{ID: "b-1", SiteID: "clinic-a", Date: "2024-05-28", Time: "09:00"}
	settings := model.Settings{
		NotificationEmails: []string{"desk@clinic.test"},
		NotificationPhones: []string{"15550102000"},
	}

	kafkaClient.EXPECT().
		SendMessages(gomock.Any(), "booking.notifications", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "b-1", messages[0].Key)

			event, ok := messages[0].Value.(notification.Event)
			assert.True(t, ok)
			assert.Equal(t, notification.EventBookingCreated, event.Type)
			assert.Equal(t, "clinic-a", event.SiteID)
			assert.Equal(t, settings.NotificationEmails, event.Emails)
			assert.Equal(t, settings.NotificationPhones, event.Phones)
			assert.False(t, event.OccurredAt.IsZero())

			return nil
		})

	dispatcher.BookingCreated(context.Background(), "clinic-a", record, settings)
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	dispatcher, kafkaClient := newDispatcher(t)

	kafkaClient.EXPECT().
		SendMessages(gomock.Any(), "booking.notifications", gomock.Any()).
		Return(errors.New("broker unavailable"))

	// Must not panic or surface the error.
	dispatcher.BookingCancelled(context.Background(), "clinic-a", model.BookingRecord{ID: "b-1"}, model.Settings{})
}

func TestEventTypePerLifecycle(t *testing.T) {
	tests := []struct {
		name     string
		dispatch func(notification.Dispatcher, context.Context, model.BookingRecord)
		want     string
	}{
		{
			name: "created",
			dispatch: func(d notification.Dispatcher, ctx context.Context, r model.BookingRecord) {
				d.BookingCreated(ctx, "clinic-a", r, model.Settings{})
			},
			want: notification.EventBookingCreated,
		},
		{
			name: "rescheduled",
			dispatch: func(d notification.Dispatcher, ctx context.Context, r model.BookingRecord) {
				d.BookingRescheduled(ctx, "clinic-a", r, model.Settings{})
			},
			want: notification.EventBookingRescheduled,
		},
		{
			name: "cancelled",
			dispatch: func(d notification.Dispatcher, ctx context.Context, r model.BookingRecord) {
				d.BookingCancelled(ctx, "clinic-a", r, model.Settings{})
			},
			want: notification.EventBookingCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher, kafkaClient := newDispatcher(t)

			kafkaClient.EXPECT().
				SendMessages(gomock.Any(), "booking.notifications", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
					event := messages[0].Value.(notification.Event)
					assert.Equal(t, tt.want, event.Type)

					return nil
				})

			tt.dispatch(dispatcher, context.Background(), model.BookingRecord{ID: "b-1"})
		})
	}
}
