package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"clinicbook/internal/domains/booking/export"
	"clinicbook/internal/domains/booking/model"
)

func TestBookingsWorkbook(t *testing.T) {
	bookings := []model.BookingRecord{
		{
			ID:              "b-1",
			ServiceID:       "svc-1",
			Date:            "2024-05-28",
			Time:            "09:00",
			DurationMinutes: 60,
			Name:            "Pat Doe",
			Phone:           "+1 555 010 2000",
			Email:           "pat@example.com",
			Status:          model.StatusConfirmed,
			CreatedAt:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:     "b-2",
			Date:   "2024-06-03",
			Time:   "10:10",
			Status: model.StatusCancelled,
		},
	}

	data, err := export.BookingsWorkbook(bookings)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Status", rows[0][8])

	assert.Equal(t, "b-1", rows[1][0])
	assert.Equal(t, "2024-05-28", rows[1][2])
	assert.Equal(t, "09:00", rows[1][3])
	assert.Equal(t, "confirmed", rows[1][8])

	assert.Equal(t, "b-2", rows[2][0])
	assert.Equal(t, "cancelled", rows[2][8])
}

func TestBookingsWorkbookEmpty(t *testing.T) {
	data, err := export.BookingsWorkbook(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Bookings")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
