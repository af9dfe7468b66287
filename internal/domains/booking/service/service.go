package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"clinicbook/config"
	"clinicbook/infras/metrics"
	"clinicbook/infras/otel"
	"clinicbook/internal/domains/booking/availability"
	"clinicbook/internal/domains/booking/model"
	"clinicbook/internal/domains/booking/model/dto"
	"clinicbook/internal/domains/booking/notification"
	"clinicbook/internal/domains/booking/repository"
	"clinicbook/shared"
	"clinicbook/shared/cache"
	"clinicbook/shared/constant"
	"clinicbook/shared/failure"
	"clinicbook/shared/timezone"
)

const (
	cacheSettings = "booking:settings"
	cacheServices = "booking:services"

	maxLockRetries = 3
)

type Booking interface {
	ActiveServices(ctx context.Context, siteID string) (dto.ServicesResponse, error)
	Slots(ctx context.Context, siteID, serviceID, date string) (dto.SlotsResponse, error)
	Create(ctx context.Context, siteID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Reschedule(ctx context.Context, siteID string, req dto.RescheduleBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, siteID string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	Lookup(ctx context.Context, siteID string, req dto.LookupBookingsRequest) (dto.BookingsResponse, error)
}

// DateLocks serializes the check-then-persist window per (site, date) so two
// concurrent requests cannot both see a slot as free and both claim it.
type DateLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDateLocks() *DateLocks {
	return &DateLocks{locks: make(map[string]*sync.Mutex)}
}

func (d *DateLocks) get(key string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[key] = lock
	}

	return lock
}

// Lock acquires the per-date locks for the given keys in sorted order and
// returns the matching unlock. Sorting keeps lock ordering consistent when a
// reschedule spans two dates.
func (d *DateLocks) Lock(keys ...string) func() {
	sorted := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))

	for _, key := range keys {
		if !seen[key] {
			seen[key] = true
			sorted = append(sorted, key)
		}
	}

	sort.Strings(sorted)

	acquired := make([]*sync.Mutex, 0, len(sorted))
	for _, key := range sorted {
		lock := d.get(key)
		lock.Lock()
		acquired = append(acquired, lock)
	}

	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

type serviceImpl struct {
	repo       repository.Booking
	dispatcher notification.Dispatcher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	locks      *DateLocks
}

func New(repo repository.Booking, dispatcher notification.Dispatcher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, locks *DateLocks) Booking {
	return &serviceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		locks:      locks,
	}
}

func (s *serviceImpl) ActiveServices(ctx context.Context, siteID string) (res dto.ServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	services, err := s.services(ctx, siteID)
	if err != nil {
		return res, err
	}

	active := make([]model.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			active = append(active, svc)
		}
	}

	res.FromModels(active)

	return res, nil
}

func (s *serviceImpl) Slots(ctx context.Context, siteID, serviceID, date string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.settings(ctx, siteID)
	if err != nil {
		return res, err
	}

	svc, err := s.findService(ctx, siteID, serviceID)
	if err != nil {
		return res, err
	}

	res = dto.SlotsResponse{Date: date, ServiceID: serviceID, Timezone: settings.Timezone, Slots: []string{}}

	now := time.Now()

	inRange, err := availability.IsDateWithinRange(date, settings, now)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	metrics.IncSlotQueries(siteID)

	if !inRange {
		return res, nil
	}

	existing, err := s.repo.ListBookings(ctx, siteID, date, date)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to list bookings for slot query")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	slots, err := availability.GenerateAvailableSlots(date, svc, settings, existing, now)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if slots != nil {
		res.Slots = slots
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, siteID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.settings(ctx, siteID)
	if err != nil {
		return res, err
	}

	svc, err := s.findService(ctx, siteID, req.ServiceID)
	if err != nil {
		return res, err
	}

	now := time.Now()

	inRange, err := availability.IsDateWithinRange(req.Date, settings, now)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !inRange {
		return res, failure.BadRequestFromString("date is outside the booking window") // nolint:wrapcheck
	}

	unlock := s.locks.Lock(lockKey(siteID, req.Date))
	defer unlock()

	if err = s.ensureSlotFree(ctx, siteID, req.Date, req.Time, svc, settings, now, constant.Empty); err != nil {
		return res, err
	}

	record := req.ToModel(siteID, svc.DurationMinutes)

	if err = s.repo.AddBooking(ctx, siteID, record); err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to persist booking")

		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	metrics.IncBookingCreated(siteID)

	go s.dispatcher.BookingCreated(context.WithoutCancel(ctx), siteID, record, settings)

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, siteID string, req dto.RescheduleBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.settings(ctx, siteID)
	if err != nil {
		return res, err
	}

	record, unlock, err := s.lockOwnedBooking(ctx, siteID, settings, req.BookingID, req.Email, req.NewDate)
	if err != nil {
		return res, err
	}
	defer unlock()

	if record.IsCancelled() {
		return res, failure.Conflict("booking has been cancelled") // nolint:wrapcheck
	}

	now := time.Now()

	inRange, err := availability.IsDateWithinRange(req.NewDate, settings, now)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !inRange {
		return res, failure.BadRequestFromString("date is outside the booking window") // nolint:wrapcheck
	}

	// Duration was fixed at creation time; the service catalogue may have
	// changed since, so the stored value wins.
	svc := model.Service{ID: record.ServiceID, DurationMinutes: record.DurationMinutes, Active: true}

	if err = s.ensureSlotFree(ctx, siteID, req.NewDate, req.NewTime, svc, settings, now, record.ID); err != nil {
		return res, err
	}

	originalDate := record.Date

	record.Date = req.NewDate
	record.Time = req.NewTime
	record.Status = model.StatusRescheduled
	record.UpdatedAt = time.Now().UTC()

	if err = s.repo.MoveBooking(ctx, siteID, originalDate, record); err != nil {
		log.Error().Err(err).Str("siteId", siteID).Str("bookingId", record.ID).Msg("failed to move booking")

		return res, fmt.Errorf("failed to move booking: %w", err)
	}

	metrics.IncBookingRescheduled(siteID)

	go s.dispatcher.BookingRescheduled(context.WithoutCancel(ctx), siteID, record, settings)

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, siteID string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.settings(ctx, siteID)
	if err != nil {
		return res, err
	}

	record, unlock, err := s.lockOwnedBooking(ctx, siteID, settings, req.BookingID, req.Email)
	if err != nil {
		return res, err
	}
	defer unlock()

	// Cancelling twice is a no-op.
	if record.IsCancelled() {
		res.FromModel(record)

		return res, nil
	}

	record.Status = model.StatusCancelled
	record.UpdatedAt = time.Now().UTC()

	if err = s.repo.UpdateBooking(ctx, siteID, record); err != nil {
		log.Error().Err(err).Str("siteId", siteID).Str("bookingId", record.ID).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	metrics.IncBookingCancelled(siteID)

	go s.dispatcher.BookingCancelled(context.WithoutCancel(ctx), siteID, record, settings)

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Lookup(ctx context.Context, siteID string, req dto.LookupBookingsRequest) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Lookup")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.settings(ctx, siteID)
	if err != nil {
		return res, err
	}

	bookings, err := s.bookingsInLookupWindow(ctx, siteID, settings)
	if err != nil {
		return res, err
	}

	email := model.NormalizeEmail(req.Email)
	phone := model.NormalizePhone(req.Phone)

	// Cancelled bookings stay in the result so patients can see the full
	// history of what they booked.
	matched := make([]model.BookingRecord, 0)
	for _, b := range bookings {
		if model.NormalizeEmail(b.Email) == email && model.NormalizePhone(b.Phone) == phone {
			matched = append(matched, b)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date < matched[j].Date
		}

		return matched[i].Time < matched[j].Time
	})

	res.FromModels(matched)

	return res, nil
}

// ensureSlotFree recomputes availability for the date under the caller-held
// date lock and rejects when the requested time is not offered. excludeID
// skips the caller's own booking so a reschedule on the same date does not
// collide with itself.
func (s *serviceImpl) ensureSlotFree(ctx context.Context, siteID, date, clock string, svc model.Service, settings model.Settings, now time.Time, excludeID string) error {
	existing, err := s.repo.ListBookings(ctx, siteID, date, date)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to list bookings for conflict check")

		return fmt.Errorf("failed to list bookings: %w", err)
	}

	if excludeID != constant.Empty {
		filtered := existing[:0]
		for _, b := range existing {
			if b.ID != excludeID {
				filtered = append(filtered, b)
			}
		}

		existing = filtered
	}

	slots, err := availability.GenerateAvailableSlots(date, svc, settings, existing, now)
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

// lockOwnedBooking acquires the date locks for a booking mutation and returns
// the booking as it stands under them. The record has to be read first to know
// which date to lock, so after locking it is read again: a concurrent
// reschedule may have moved it between the read and the lock, in which case
// the locks cover the wrong date and the acquisition is retried against the
// fresh one. Callers must run the returned unlock.
func (s *serviceImpl) lockOwnedBooking(ctx context.Context, siteID string, settings model.Settings, bookingID, email string, extraDates ...string) (model.BookingRecord, func(), error) {
	record, err := s.findOwnedBooking(ctx, siteID, settings, bookingID, email)
	if err != nil {
		return record, nil, err
	}

	for attempt := 0; attempt < maxLockRetries; attempt++ {
		keys := []string{lockKey(siteID, record.Date)}
		for _, date := range extraDates {
			keys = append(keys, lockKey(siteID, date))
		}

		unlock := s.locks.Lock(keys...)

		fresh, err := s.findOwnedBooking(ctx, siteID, settings, bookingID, email)
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

// findOwnedBooking scans the lookup window for the booking and verifies the
// requester's email matches the one on record.
func (s *serviceImpl) findOwnedBooking(ctx context.Context, siteID string, settings model.Settings, bookingID, email string) (model.BookingRecord, error) {
	bookings, err := s.bookingsInLookupWindow(ctx, siteID, settings)
	if err != nil {
		return model.BookingRecord{}, err
	}

	normalized := model.NormalizeEmail(email)

	for _, b := range bookings {
		if b.ID == bookingID {
			if model.NormalizeEmail(b.Email) != normalized {
				return model.BookingRecord{}, failure.NotFound("booking") // nolint:wrapcheck
			}

			return b, nil
		}
	}

	return model.BookingRecord{}, failure.NotFound("booking") // nolint:wrapcheck
}

func (s *serviceImpl) bookingsInLookupWindow(ctx context.Context, siteID string, settings model.Settings) ([]model.BookingRecord, error) {
	loc, err := timezone.Location(settings.Timezone)
	if err != nil {
		return nil, failure.Configuration(fmt.Sprintf("invalid site timezone: %v", err)) // nolint:wrapcheck
	}

	months := s.cfg.Booking.LookupWindowMonths
	if months <= 0 {
		months = 6
	}

	now := time.Now().In(loc)
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, months+1, -1)

	bookings, err := s.repo.ListBookings(ctx, siteID, from.Format(timezone.DateLayout), to.Format(timezone.DateLayout))
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to list bookings in lookup window")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

func (s *serviceImpl) settings(ctx context.Context, siteID string) (settings model.Settings, err error) {
	cacheKey := shared.BuildCacheKey(cacheSettings, siteID)

	err = s.cache.Get(ctx, cacheKey, &settings)
	if err == nil && !settings.IsZero() {
		return settings, nil
	}

	settings, err = s.repo.LoadSettings(ctx, siteID)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to load site settings")

		return settings, fmt.Errorf("failed to load site settings: %w", err)
	}

	if settings.IsZero() {
		return settings, failure.Configuration("site has no booking settings") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, settings, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return settings, nil
}

func (s *serviceImpl) services(ctx context.Context, siteID string) (services []model.Service, err error) {
	cacheKey := shared.BuildCacheKey(cacheServices, siteID)

	err = s.cache.Get(ctx, cacheKey, &services)
	if err == nil && len(services) > 0 {
		return services, nil
	}

	services, err = s.repo.LoadServices(ctx, siteID)
	if err != nil {
		log.Error().Err(err).Str("siteId", siteID).Msg("failed to load site services")

		return services, fmt.Errorf("failed to load site services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, services, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return services, nil
}

func (s *serviceImpl) findService(ctx context.Context, siteID, serviceID string) (model.Service, error) {
	services, err := s.services(ctx, siteID)
	if err != nil {
		return model.Service{}, err
	}

	for _, svc := range services {
		if svc.ID == serviceID && svc.Active {
			return svc, nil
		}
	}

	return model.Service{}, failure.NotFound("service") // nolint:wrapcheck
}

func lockKey(siteID, date string) string {
	return siteID + "|" + date
}
