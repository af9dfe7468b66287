package service

//go:generate go run go.uber.org/mock/mockgen -source=./admin.go -destination=./mocks/admin_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"clinicbook/config"
	"clinicbook/infras/otel"
	"clinicbook/internal/domains/booking/availability"
	"clinicbook/internal/domains/booking/export"
	"clinicbook/internal/domains/booking/model"
	"clinicbook/internal/domains/booking/model/dto"
	"clinicbook/internal/domains/booking/repository"
	"clinicbook/shared"
	"clinicbook/shared/cache"
	"clinicbook/shared/constant"
	"clinicbook/shared/failure"
	"clinicbook/shared/timezone"
)

// Admin exposes the back-office operations for a site. All methods assume the
// caller has already been authenticated and authorized.
type Admin interface {
	Settings(ctx context.Context, siteID string) (model.Settings, error)
	UpdateSettings(ctx context.Context, siteID string, req dto.UpdateSettingsRequest) error
	Services(ctx context.Context, siteID string) ([]model.Service, error)
	UpdateServices(ctx context.Context, siteID string, req dto.UpdateServicesRequest) error
	Bookings(ctx context.Context, siteID, fromDate, toDate string) (dto.BookingsResponse, error)
	EditBooking(ctx context.Context, siteID, bookingID string, req dto.EditBookingRequest) (dto.BookingResponse, error)
	ExportBookings(ctx context.Context, siteID, fromDate, toDate string) ([]byte, string, error)
}

type adminImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	locks *DateLocks
}

func NewAdmin(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, locks *DateLocks) Admin {
	return &adminImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		locks: locks,
	}
}

func (a *adminImpl) Settings(ctx context.Context, siteID string) (settings model.Settings, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settings")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err = a.repo.LoadSettings(ctx, siteID)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to load site settings")

		return settings, fmt.Errorf("failed to load site settings: %w", err)
	}

	return settings, nil
}

func (a *adminImpl) UpdateSettings(ctx context.Context, siteID string, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = a.repo.SaveSettings(ctx, siteID, req.ToModel()); err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to save site settings")

		return fmt.Errorf("failed to save site settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, a.cache, shared.BuildCacheKey(cacheSettings, siteID))
	}()

	return nil
}

func (a *adminImpl) Services(ctx context.Context, siteID string) (services []model.Service, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Services")
	defer scope.End()
	defer scope.TraceIfError(err)

	services, err = a.repo.LoadServices(ctx, siteID)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to load site services")

		return services, fmt.Errorf("failed to load site services: %w", err)
	}

	return services, nil
}

func (a *adminImpl) UpdateServices(ctx context.Context, siteID string, req dto.UpdateServicesRequest) (err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	services := req.ToModels()

	seen := make(map[string]bool, len(services))
	for _, svc := range services {
		if seen[svc.ID] {
			return failure.BadRequestFromString(fmt.Sprintf("duplicate service id: %s", svc.ID)) // nolint:wrapcheck
		}

		seen[svc.ID] = true
	}

	if err = a.repo.SaveServices(ctx, siteID, services); err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to save site services")

		return fmt.Errorf("failed to save site services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, a.cache, shared.BuildCacheKey(cacheServices, siteID))
	}()

	return nil
}

func (a *adminImpl) Bookings(ctx context.Context, siteID, fromDate, toDate string) (res dto.BookingsResponse, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Bookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := a.bookingsInRange(ctx, siteID, fromDate, toDate)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings)

	return res, nil
}

func (a *adminImpl) EditBooking(ctx context.Context, siteID, bookingID string, req dto.EditBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EditBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, unlock, err := a.lockBooking(ctx, siteID, bookingID, req.Date)
	if err != nil {
		return res, err
	}
	defer unlock()

	originalDate := record.Date

	if req.Name != constant.Empty {
		record.Name = req.Name
	}

	if req.Phone != constant.Empty {
		record.Phone = req.Phone
	}

	if req.Email != constant.Empty {
		record.Email = model.NormalizeEmail(req.Email)
	}

	if req.Note != constant.Empty {
		record.Note = req.Note
	}

	if req.Status != constant.Empty {
		record.Status = req.Status
	}

	newDate := record.Date
	if req.Date != constant.Empty {
		newDate = req.Date
	}

	newTime := record.Time
	if req.Time != constant.Empty {
		newTime = req.Time
	}

	moved := newDate != originalDate
	slotChanged := moved || newTime != record.Time

	// A new slot still has to fit the schedule, even for back-office edits.
	if slotChanged && !record.IsCancelled() {
		if err = a.ensureSlotFree(ctx, siteID, newDate, newTime, record); err != nil {
			return res, err
		}
	}

	record.Date = newDate
	record.Time = newTime
	record.UpdatedAt = time.Now().UTC()

	if moved {
		err = a.repo.MoveBooking(ctx, siteID, originalDate, record)
	} else {
		err = a.repo.UpdateBooking(ctx, siteID, record)
	}

	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Str("bookingId", bookingID).Msg("failed to edit booking")

		return res, fmt.Errorf("failed to edit booking: %w", err)
	}

	res.FromModel(record)

	return res, nil
}

func (a *adminImpl) ExportBookings(ctx context.Context, siteID, fromDate, toDate string) (data []byte, filename string, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := a.bookingsInRange(ctx, siteID, fromDate, toDate)
	if err != nil {
		return nil, constant.Empty, err
	}

	data, err = export.BookingsWorkbook(bookings)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to build bookings workbook")

		return nil, constant.Empty, fmt.Errorf("failed to build bookings workbook: %w", err)
	}

	filename = fmt.Sprintf("bookings-%s-%s.xlsx", siteID, time.Now().Format(timezone.DateLayout))

	return data, filename, nil
}

func (a *adminImpl) bookingsInRange(ctx context.Context, siteID, fromDate, toDate string) ([]model.BookingRecord, error) {
	if fromDate == constant.Empty || toDate == constant.Empty {
		months := a.cfg.Booking.LookupWindowMonths
		if months <= 0 {
			months = 6
		}

		now := time.Now()
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, months+1, -1)

		if fromDate == constant.Empty {
			fromDate = from.Format(timezone.DateLayout)
		}

		if toDate == constant.Empty {
			toDate = to.Format(timezone.DateLayout)
		}
	}

	if _, err := timezone.Weekday(fromDate); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err := timezone.Weekday(toDate); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	bookings, err := a.repo.ListBookings(ctx, siteID, fromDate, toDate)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to list bookings")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// lockBooking acquires the date locks covering an edit of the booking plus
// any requested target date, re-reading the record under them so a booking
// moved between the read and the lock is locked against its current date.
// Callers must run the returned unlock.
func (a *adminImpl) lockBooking(ctx context.Context, siteID, bookingID, targetDate string) (model.BookingRecord, func(), error) {
	record, err := a.findBooking(ctx, siteID, bookingID)
	if err != nil {
		return record, nil, err
	}

	for attempt := 0; attempt < maxLockRetries; attempt++ {
		keys := []string{lockKey(siteID, record.Date)}
		if targetDate != constant.Empty {
			keys = append(keys, lockKey(siteID, targetDate))
		}

		unlock := a.locks.Lock(keys...)

		fresh, err := a.findBooking(ctx, siteID, bookingID)
		if err != nil {
			unlock()

			return fresh, nil, err
		}

		if fresh.Date == record.Date {
			return fresh, unlock, nil
		}

		unlock()
		record = fresh
	}

	return model.BookingRecord{}, nil, failure.Conflict("booking is being modified, try again") // nolint:wrapcheck
}

func (a *adminImpl) findBooking(ctx context.Context, siteID, bookingID string) (model.BookingRecord, error) {
	bookings, err := a.bookingsInRange(ctx, siteID, constant.Empty, constant.Empty)
	if err != nil {
		return model.BookingRecord{}, err
	}

	for _, b := range bookings {
		if b.ID == bookingID {
			return b, nil
		}
	}

	return model.BookingRecord{}, failure.NotFound("booking") // nolint:wrapcheck
}

func (a *adminImpl) ensureSlotFree(ctx context.Context, siteID, date, clock string, record model.BookingRecord) error {
	settings, err := a.repo.LoadSettings(ctx, siteID)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to load site settings")

		return fmt.Errorf("failed to load site settings: %w", err)
	}

	if settings.IsZero() {
		return failure.Configuration("site has no booking settings") // nolint:wrapcheck
	}

	existing, err := a.repo.ListBookings(ctx, siteID, date, date)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to list bookings for conflict check")

		return fmt.Errorf("failed to list bookings: %w", err)
	}

	filtered := existing[:0]
	for _, b := range existing {
		if b.ID != record.ID {
			filtered = append(filtered, b)
		}
	}

	svc := model.Service{ID: record.ServiceID, DurationMinutes: record.DurationMinutes, Active: true}

	slots, err := availability.GenerateAvailableSlots(date, svc, settings, filtered, time.Now())
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	for _, slot := range slots {
		if slot == clock {
			return nil
		}
	}

	return failure.Conflict("requested time is not available") // nolint:wrapcheck
}
