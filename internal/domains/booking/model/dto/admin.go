package dto

import "clinicbook/internal/domains/booking/model"

type BusinessHourInput struct {
	Day    string `json:"day"    validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Open   string `json:"open"   validate:"required_unless=Closed true,omitempty,clock"`
	Close  string `json:"close"  validate:"required_unless=Closed true,omitempty,clock"`
	Closed bool   `json:"closed"`
}

type UpdateSettingsRequest struct {
	Timezone           string              `json:"timezone"            validate:"required,iana_tz"`
	BufferMinutes      int                 `json:"buffer_minutes"      validate:"gte=0,lte=240"`
	MinNoticeHours     int                 `json:"min_notice_hours"    validate:"gte=0,lte=720"`
	MaxDaysAhead       int                 `json:"max_days_ahead"      validate:"gt=0,lte=365"`
	BusinessHours      []BusinessHourInput `json:"business_hours"      validate:"required,len=7,unique=Day,dive"`
	BlockedDates       []string            `json:"blocked_dates"       validate:"omitempty,dive,dateonly"`
	NotificationEmails []string            `json:"notification_emails" validate:"omitempty,dive,email"`
	NotificationPhones []string            `json:"notification_phones" validate:"omitempty,dive,max=30"`
}

func (u *UpdateSettingsRequest) ToModel() model.Settings {
	hours := make([]model.BusinessHourEntry, 0, len(u.BusinessHours))
	for _, h := range u.BusinessHours {
		hours = append(hours, model.BusinessHourEntry{
			Day:    h.Day,
			Open:   h.Open,
			Close:  h.Close,
			Closed: h.Closed,
		})
	}

	return model.Settings{
		Timezone:           u.Timezone,
		BufferMinutes:      u.BufferMinutes,
		MinNoticeHours:     u.MinNoticeHours,
		MaxDaysAhead:       u.MaxDaysAhead,
		BusinessHours:      hours,
		BlockedDates:       u.BlockedDates,
		NotificationEmails: u.NotificationEmails,
		NotificationPhones: u.NotificationPhones,
	}
}

type ServiceInput struct {
	ID              string   `json:"id"               validate:"required,max=100"`
	Name            string   `json:"name"             validate:"required,max=100"`
	DurationMinutes int      `json:"duration_minutes" validate:"gt=0,lte=480"`
	Price           *float64 `json:"price"            validate:"omitempty,gte=0"`
	Active          bool     `json:"active"`
}

type UpdateServicesRequest struct {
	Services []ServiceInput `json:"services" validate:"required,min=1,dive"`
}

func (u *UpdateServicesRequest) ToModels() []model.Service {
	services := make([]model.Service, 0, len(u.Services))
	for _, s := range u.Services {
		services = append(services, model.Service{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Active:          s.Active,
		})
	}

	return services
}

type EditBookingRequest struct {
	Date   string `json:"date"   validate:"omitempty,dateonly"`
	Time   string `json:"time"   validate:"omitempty,clock"`
	Name   string `json:"name"   validate:"omitempty,max=100"`
	Phone  string `json:"phone"  validate:"omitempty,max=30"`
	Email  string `json:"email"  validate:"omitempty,email,max=100"`
	Note   string `json:"note"   validate:"omitempty,max=500"`
	Status string `json:"status" validate:"omitempty,oneof=confirmed rescheduled cancelled"`
}
