package repository_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicbook/config"
	"clinicbook/infras/otel/mocks"
	"clinicbook/internal/domains/booking/model"
	"clinicbook/internal/domains/booking/repository"
)

const site = "clinic-a"

func newRepo(t *testing.T) (repository.Booking, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Booking.DataDir = dir

	return repository.New(cfg, mocks.NewOtel()), dir
}

func record(id, date, clock string) model.BookingRecord {
	return model.BookingRecord{
		ID:              id,
		SiteID:          site,
		ServiceID:       "svc-1",
		Date:            date,
		Time:            clock,
		DurationMinutes: 60,
		Name:            "Pat Doe",
		Phone:           "+1 555 010 2000",
		Email:           "pat@example.com",
		Status:          model.StatusConfirmed,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}

func readPartitionFile(t *testing.T, dir, monthKey string) []model.BookingRecord {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, site, "booking", "bookings", monthKey+".json"))
	require.NoError(t, err)

	var records []model.BookingRecord
	require.NoError(t, json.Unmarshal(data, &records))

	return records
}

func TestLoadMissingFiles(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	services, err := repo.LoadServices(ctx, site)
	require.NoError(t, err)
	assert.Empty(t, services)

	settings, err := repo.LoadSettings(ctx, site)
	require.NoError(t, err)
	assert.True(t, settings.IsZero())

	bookings, err := repo.ListBookings(ctx, site, "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestSaveAndLoadServices(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	price := 49.0
	services := []model.Service{
		{ID: "svc-1", Name: "Consultation", DurationMinutes: 60, Price: &price, Active: true},
		{ID: "svc-2", Name: "Follow-up", DurationMinutes: 30, Active: false},
	}

	require.NoError(t, repo.SaveServices(ctx, site, services))

	loaded, err := repo.LoadServices(ctx, site)
	require.NoError(t, err)
	assert.Equal(t, services, loaded)
}

func TestSaveAndLoadSettings(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	settings := model.Settings{
		Timezone:       "America/New_York",
		BufferMinutes:  10,
		MinNoticeHours: 24,
		MaxDaysAhead:   30,
		BusinessHours: []model.BusinessHourEntry{
			{Day: "Monday", Open: "09:00", Close: "17:00"},
		},
		BlockedDates:       []string{"2024-07-04"},
		NotificationEmails: []string{"desk@clinic.test"},
	}

	require.NoError(t, repo.SaveSettings(ctx, site, settings))

	loaded, err := repo.LoadSettings(ctx, site)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestAddAndListBookings(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddBooking(ctx, site, record("b-1", "2024-05-28", "09:00")))
	require.NoError(t, repo.AddBooking(ctx, site, record("b-2", "2024-05-30", "10:10")))
	require.NoError(t, repo.AddBooking(ctx, site, record("b-3", "2024-06-03", "09:00")))

	// Range scan across the month boundary returns each booking once.
	bookings, err := repo.ListBookings(ctx, site, "2024-05-01", "2024-06-30")
	require.NoError(t, err)
	assert.Len(t, bookings, 3)

	seen := map[string]int{}
	for _, b := range bookings {
		seen[b.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "booking %s appeared %d times", id, count)
	}

	// Date filtering is inclusive on both ends.
	bookings, err = repo.ListBookings(ctx, site, "2024-05-28", "2024-05-30")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	// Bookings outside the range are filtered even when their partition loads.
	bookings, err = repo.ListBookings(ctx, site, "2024-05-29", "2024-05-31")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b-2", bookings[0].ID)
}

func TestUpdateBookingIdempotent(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	original := record("b-1", "2024-05-28", "09:00")
	require.NoError(t, repo.AddBooking(ctx, site, original))

	updated := original
	updated.Status = model.StatusCancelled
	updated.UpdatedAt = time.Now().UTC()

	require.NoError(t, repo.UpdateBooking(ctx, site, updated))
	require.NoError(t, repo.UpdateBooking(ctx, site, updated))

	partition := readPartitionFile(t, dir, "2024-05")
	require.Len(t, partition, 1)
	assert.Equal(t, model.StatusCancelled, partition[0].Status)
}

func TestUpdateBookingMissingAppends(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpdateBooking(ctx, site, record("ghost", "2024-05-28", "09:00")))

	partition := readPartitionFile(t, dir, "2024-05")
	require.Len(t, partition, 1)
	assert.Equal(t, "ghost", partition[0].ID)
}

func TestMoveBookingSameMonth(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	original := record("b-1", "2024-05-28", "09:00")
	require.NoError(t, repo.AddBooking(ctx, site, original))

	moved := original
	moved.Date = "2024-05-30"
	moved.Time = "10:10"
	moved.Status = model.StatusRescheduled

	require.NoError(t, repo.MoveBooking(ctx, site, original.Date, moved))

	partition := readPartitionFile(t, dir, "2024-05")
	require.Len(t, partition, 1)
	assert.Equal(t, "2024-05-30", partition[0].Date)
	assert.Equal(t, model.StatusRescheduled, partition[0].Status)
}

func TestMoveBookingAcrossMonths(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	original := record("b-1", "2024-05-28", "09:00")
	keeper := record("b-2", "2024-05-29", "11:20")
	require.NoError(t, repo.AddBooking(ctx, site, original))
	require.NoError(t, repo.AddBooking(ctx, site, keeper))

	moved := original
	moved.Date = "2024-06-03"
	moved.Time = "09:00"
	moved.Status = model.StatusRescheduled

	require.NoError(t, repo.MoveBooking(ctx, site, original.Date, moved))

	// Origin partition no longer holds the id; unrelated bookings survive.
	origin := readPartitionFile(t, dir, "2024-05")
	require.Len(t, origin, 1)
	assert.Equal(t, "b-2", origin[0].ID)

	// Destination holds exactly one copy with the new date and status.
	destination := readPartitionFile(t, dir, "2024-06")
	require.Len(t, destination, 1)
	assert.Equal(t, "b-1", destination[0].ID)
	assert.Equal(t, "2024-06-03", destination[0].Date)
	assert.Equal(t, model.StatusRescheduled, destination[0].Status)

	// The store as a whole sees exactly one copy.
	all, err := repo.ListBookings(ctx, site, "2024-05-01", "2024-06-30")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMoveBookingGoneFromOrigin(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	original := record("b-1", "2024-05-28", "09:00")
	require.NoError(t, repo.AddBooking(ctx, site, original))

	first := original
	first.Date = "2024-06-03"
	first.Status = model.StatusRescheduled
	require.NoError(t, repo.MoveBooking(ctx, site, "2024-05-28", first))

	// A second move still naming the old date lost the race; it must fail
	// instead of planting a second copy in yet another partition.
	second := original
	second.Date = "2024-07-01"
	second.Status = model.StatusRescheduled

	err := repo.MoveBooking(ctx, site, "2024-05-28", second)
	require.ErrorIs(t, err, repository.ErrMissingBooking)

	all, err := repo.ListBookings(ctx, site, "2024-05-01", "2024-07-31")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2024-06-03", all[0].Date)

	_, statErr := os.Stat(filepath.Join(dir, site, "booking", "bookings", "2024-07.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMoveBookingSameMonthMissing(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	moved := record("b-1", "2024-05-30", "10:10")

	err := repo.MoveBooking(ctx, site, "2024-05-28", moved)
	assert.ErrorIs(t, err, repository.ErrMissingBooking)
}

func TestMoveBookingDedupesDestination(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	original := record("b-1", "2024-05-28", "09:00")
	require.NoError(t, repo.AddBooking(ctx, site, original))

	// Seed a stray copy of the same id in the destination month.
	stray := original
	stray.Date = "2024-06-10"
	require.NoError(t, repo.AddBooking(ctx, site, stray))

	moved := original
	moved.Date = "2024-06-03"
	moved.Status = model.StatusRescheduled
	require.NoError(t, repo.MoveBooking(ctx, site, "2024-05-28", moved))

	destination := readPartitionFile(t, dir, "2024-06")
	require.Len(t, destination, 1)
	assert.Equal(t, "2024-06-03", destination[0].Date)
}

func TestSitesAreIsolated(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.AddBooking(ctx, site, record("b-1", "2024-05-28", "09:00")))

	other, err := repo.ListBookings(ctx, "clinic-b", "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCorruptPartitionSurfacesError(t *testing.T) {
	repo, dir := newRepo(t)
	ctx := context.Background()

	path := filepath.Join(dir, site, "booking", "bookings", "2024-05.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := repo.ListBookings(ctx, site, "2024-05-01", "2024-05-31")
	assert.Error(t, err)
}
