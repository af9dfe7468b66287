package dto_test

import (
	"testing"

	"clinicbook/internal/domains/booking/model/dto"
	"clinicbook/shared/validator"
)

func fullWeek() []dto.BusinessHourInput {
	return []dto.BusinessHourInput{
		{Day: "Monday", Open: "09:00", Close: "17:00"},
		{Day: "Tuesday", Open: "09:00", Close: "17:00"},
		{Day: "Wednesday", Open: "09:00", Close: "17:00"},
		{Day: "Thursday", Open: "09:00", Close: "17:00"},
		{Day: "Friday", Open: "09:00", Close: "15:00"},
		{Day: "Saturday", Closed: true},
		{Day: "Sunday", Closed: true},
	}
}

func settingsRequest(hours []dto.BusinessHourInput) dto.UpdateSettingsRequest {
	return dto.UpdateSettingsRequest{
		Timezone:      "America/New_York",
		MaxDaysAhead:  30,
		BusinessHours: hours,
	}
}

func TestUpdateSettingsRequest_BusinessHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   []dto.BusinessHourInput
		wantErr bool
	}{
		{
			name:    "one entry per weekday",
			hours:   fullWeek(),
			wantErr: false,
		},
		{
			name:    "missing a weekday",
			hours:   fullWeek()[:6],
			wantErr: true,
		},
		{
			name: "duplicate weekday",
			hours: append(fullWeek()[:6],
				dto.BusinessHourInput{Day: "Monday", Open: "10:00", Close: "14:00"}),
			wantErr: true,
		},
		{
			name:    "open day without hours",
			hours:   append(fullWeek()[:6], dto.BusinessHourInput{Day: "Sunday"}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := settingsRequest(tt.hours)
			err := validator.ValidateStruct(&req)

			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
