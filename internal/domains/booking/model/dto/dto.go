package dto

import (
	"time"

	"github.com/google/uuid"

	"clinicbook/internal/domains/booking/model"
)

type CreateBookingRequest struct {
	ServiceID string `json:"service_id" validate:"required,max=100"`
	Date      string `json:"date"       validate:"required,dateonly"`
	Time      string `json:"time"       validate:"required,clock"`
	Name      string `json:"name"       validate:"required,max=100"`
	Phone     string `json:"phone"      validate:"required,max=30"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	Note      string `json:"note"       validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(siteID string, durationMinutes int) model.BookingRecord {
	now := time.Now().UTC()

	return model.BookingRecord{
		ID:              uuid.NewString(),
		SiteID:          siteID,
		ServiceID:       c.ServiceID,
		Date:            c.Date,
		Time:            c.Time,
		DurationMinutes: durationMinutes,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           model.NormalizeEmail(c.Email),
		Note:            c.Note,
		Status:          model.StatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

type RescheduleBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Email     string `json:"email"      validate:"required,email,max=100"`
	NewDate   string `json:"new_date"   validate:"required,dateonly"`
	NewTime   string `json:"new_time"   validate:"required,clock"`
}

type CancelBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Email     string `json:"email"      validate:"required,email,max=100"`
}

type LookupBookingsRequest struct {
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"required,max=30"`
}

type SlotsResponse struct {
	Date      string   `json:"date"`
	ServiceID string   `json:"service_id"`
	Timezone  string   `json:"timezone"`
	Slots     []string `json:"slots"`
}

type ServiceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
}

func (s *ServiceResponse) FromModel(m model.Service) {
	s.ID = m.ID
	s.Name = m.Name
	s.DurationMinutes = m.DurationMinutes
	s.Price = m.Price
}

type ServicesResponse []ServiceResponse

func (s *ServicesResponse) FromModels(models []model.Service) {
	*s = make(ServicesResponse, 0, len(models))
	for _, m := range models {
		var item ServiceResponse
		item.FromModel(m)
		*s = append(*s, item)
	}
}

type BookingResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"service_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Note            string `json:"note,omitempty"`
	Status          string `json:"status"`
}

func (b *BookingResponse) FromModel(m model.BookingRecord) {
	b.ID = m.ID
	b.ServiceID = m.ServiceID
	b.Date = m.Date
	b.Time = m.Time
	b.DurationMinutes = m.DurationMinutes
	b.Name = m.Name
	b.Phone = m.Phone
	b.Email = m.Email
	b.Note = m.Note
	b.Status = m.Status
}

type BookingsResponse []BookingResponse

func (b *BookingsResponse) FromModels(models []model.BookingRecord) {
	*b = make(BookingsResponse, 0, len(models))
	for _, m := range models {
		var item BookingResponse
		item.FromModel(m)
		*b = append(*b, item)
	}
}
