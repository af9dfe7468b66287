package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"clinicbook/config"
	"clinicbook/infras/otel"
	"clinicbook/internal/domains/booking/model"
	"clinicbook/shared/constant"
	"clinicbook/shared/timezone"
)

// ErrMissingBooking reports a move whose booking is no longer in the origin
// partition, which means another writer relocated it first.
var ErrMissingBooking = errors.New("booking not found in partition")

// Booking is the durable store for a site's booking state: the services
// catalog, scheduling settings, and booking records partitioned by calendar
// month ("2006-01") so partition files stay small and range scans cheap.
type Booking interface {
	LoadServices(ctx context.Context, siteID string) ([]model.Service, error)
	SaveServices(ctx context.Context, siteID string, services []model.Service) error
	LoadSettings(ctx context.Context, siteID string) (model.Settings, error)
	SaveSettings(ctx context.Context, siteID string, settings model.Settings) error
	ListBookings(ctx context.Context, siteID, fromDate, toDate string) ([]model.BookingRecord, error)
	AddBooking(ctx context.Context, siteID string, record model.BookingRecord) error
	UpdateBooking(ctx context.Context, siteID string, record model.BookingRecord) error
	MoveBooking(ctx context.Context, siteID, originalDate string, record model.BookingRecord) error
}

type repositoryImpl struct {
	baseDir string
	otel    otel.Otel

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(cfg *config.Config, otel otel.Otel) Booking {
	return &repositoryImpl{
		baseDir: cfg.Booking.DataDir,
		otel:    otel,
		locks:   map[string]*sync.Mutex{},
	}
}

// siteLock serializes every mutating partition rewrite for one site. Reads
// stay lock-free: writes go through an atomic rename, so a concurrent read
// sees either the old or the new file, never a torn one.
func (r *repositoryImpl) siteLock(siteID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[siteID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[siteID] = lock
	}

	return lock
}

func (r *repositoryImpl) servicesPath(siteID string) string {
	return filepath.Join(r.baseDir, siteID, "booking", "services.json")
}

func (r *repositoryImpl) settingsPath(siteID string) string {
	return filepath.Join(r.baseDir, siteID, "booking", "settings.json")
}

func (r *repositoryImpl) partitionPath(siteID, monthKey string) string {
	return filepath.Join(r.baseDir, siteID, "booking", "bookings", monthKey+".json")
}

func (r *repositoryImpl) LoadServices(ctx context.Context, siteID string) (services []model.Service, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".LoadServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = readJSON(r.servicesPath(siteID), &services)

	return services, err
}

func (r *repositoryImpl) SaveServices(ctx context.Context, siteID string, services []model.Service) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	lock := r.siteLock(siteID)
	lock.Lock()
	defer lock.Unlock()

	return writeJSON(r.servicesPath(siteID), services)
}

func (r *repositoryImpl) LoadSettings(ctx context.Context, siteID string) (settings model.Settings, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".LoadSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = readJSON(r.settingsPath(siteID), &settings)

	return settings, err
}

func (r *repositoryImpl) SaveSettings(ctx context.Context, siteID string, settings model.Settings) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	lock := r.siteLock(siteID)
	lock.Lock()
	defer lock.Unlock()

	return writeJSON(r.settingsPath(siteID), settings)
}

// ListBookings loads every month partition touched by the inclusive
// [fromDate, toDate] range and filters to bookings whose date falls inside
// it. Each booking lives in exactly one partition, so no record can appear
// twice however many months the range spans.
func (r *repositoryImpl) ListBookings(ctx context.Context, siteID, fromDate, toDate string) (records []model.BookingRecord, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ListBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{"site": siteID, "from": fromDate, "to": toDate})

	monthKeys, err := timezone.MonthKeysBetween(fromDate, toDate)
	if err != nil {
		return nil, err
	}

	for _, monthKey := range monthKeys {
		partition, err := r.readPartition(siteID, monthKey)
		if err != nil {
			return nil, err
		}

		for _, record := range partition {
			if record.Date >= fromDate && record.Date <= toDate {
				records = append(records, record)
			}
		}
	}

	return records, nil
}

func (r *repositoryImpl) AddBooking(ctx context.Context, siteID string, record model.BookingRecord) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".AddBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	monthKey, err := timezone.MonthKey(record.Date)
	if err != nil {
		return err
	}

	lock := r.siteLock(siteID)
	lock.Lock()
	defer lock.Unlock()

	partition, err := r.readPartition(siteID, monthKey)
	if err != nil {
		return err
	}

	partition = append(partition, record)

	return r.writePartition(siteID, monthKey, partition)
}

// UpdateBooking replaces the record with the same id inside the partition
// for record.Date. A missing record signals a lost or miswritten partition;
// it is appended anyway and surfaced as a warning.
func (r *repositoryImpl) UpdateBooking(ctx context.Context, siteID string, record model.BookingRecord) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	monthKey, err := timezone.MonthKey(record.Date)
	if err != nil {
		return err
	}

	lock := r.siteLock(siteID)
	lock.Lock()
	defer lock.Unlock()

	return r.replaceInPartition(siteID, monthKey, record)
}

// MoveBooking relocates a booking whose date changed. The booking must still
// be in the origin partition; a concurrent move already relocated it
// otherwise, and blindly appending to the destination would leave two live
// copies of one booking. Such a stale move fails with ErrMissingBooking and
// changes nothing.
func (r *repositoryImpl) MoveBooking(ctx context.Context, siteID, originalDate string, record model.BookingRecord) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".MoveBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	originKey, err := timezone.MonthKey(originalDate)
	if err != nil {
		return err
	}

	destinationKey, err := timezone.MonthKey(record.Date)
	if err != nil {
		return err
	}

	lock := r.siteLock(siteID)
	lock.Lock()
	defer lock.Unlock()

	origin, err := r.readPartition(siteID, originKey)
	if err != nil {
		return err
	}

	kept := origin[:0]
	removed := false
	for _, existing := range origin {
		if existing.ID == record.ID {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}

	if !removed {
		log.Warn().
			Str("site", siteID).
			Str("booking", record.ID).
			Str("partition", originKey).
			Msg("booking missing from origin partition during move")

		return fmt.Errorf("%w: %s in %s", ErrMissingBooking, record.ID, originKey)
	}

	if originKey == destinationKey {
		return r.writePartition(siteID, originKey, append(kept, record))
	}

	if err := r.writePartition(siteID, originKey, kept); err != nil {
		return err
	}

	destination, err := r.readPartition(siteID, destinationKey)
	if err != nil {
		return err
	}

	// Drop any stray copy already sitting in the destination so the moved
	// record ends up there exactly once.
	deduped := destination[:0]
	for _, existing := range destination {
		if existing.ID != record.ID {
			deduped = append(deduped, existing)
		}
	}

	return r.writePartition(siteID, destinationKey, append(deduped, record))
}

// replaceInPartition swaps the record with the same id, or appends when the
// id is absent. Caller holds the site lock.
func (r *repositoryImpl) replaceInPartition(siteID, monthKey string, record model.BookingRecord) error {
	partition, err := r.readPartition(siteID, monthKey)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range partition {
		if existing.ID == record.ID {
			partition[i] = record
			replaced = true
			break
		}
	}

	if !replaced {
		log.Warn().
			Str("site", siteID).
			Str("booking", record.ID).
			Str("partition", monthKey).
			Msg("booking missing from partition on update, appending")

		partition = append(partition, record)
	}

	return r.writePartition(siteID, monthKey, partition)
}

func (r *repositoryImpl) readPartition(siteID, monthKey string) ([]model.BookingRecord, error) {
	var records []model.BookingRecord
	if err := readJSON(r.partitionPath(siteID, monthKey), &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *repositoryImpl) writePartition(siteID, monthKey string, records []model.BookingRecord) error {
	if records == nil {
		records = []model.BookingRecord{}
	}

	return writeJSON(r.partitionPath(siteID, monthKey), records)
}

// readJSON decodes a JSON file into value. A missing file is not an error:
// an unused month never needs pre-creation and reads as empty.
func readJSON(path string, value any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	return nil
}

// writeJSON writes value as JSON through a temp file in the target directory
// followed by a rename, so a crash mid-write can never leave a torn file.
func writeJSON(path string, value any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("renaming into %s: %w", path, err)
	}

	return nil
}
