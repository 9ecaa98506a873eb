package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/cache"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/reconciler"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/repository"
	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// BookedSource lists the start instants of active appointments at a location.
type BookedSource interface {
	BookedStarts(ctx context.Context, dealershipID string, from, to time.Time) ([]time.Time, error)
}

type Availability interface {
	MonthAvailability(ctx context.Context, clientID, dealershipID string, month time.Time, tz string) (model.MonthAvailability, error)
	DaySlots(ctx context.Context, clientID, dealershipID string, date time.Time, tz string) ([]model.OfferableSlot, error)
	Invalidate(clientID, dealershipID string, at time.Time, tz string)
}

type serviceImpl struct {
	source  repository.Availability
	booked  BookedSource
	days    *cache.DayCache
	workers int
	otel    otel.Otel
}

func New(source repository.Availability, booked BookedSource, cfg *config.Config, otel otel.Otel) Availability {
	workers := cfg.Availability.Workers
	if workers <= 0 {
		workers = constant.DefaultAvailabilityWorkers
	}

	size := cfg.Availability.CacheSize
	if size <= 0 {
		size = constant.DefaultAvailabilityCache
	}

	ttl := time.Duration(cfg.Availability.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = constant.DefaultAvailabilityCacheTTL
	}

	return &serviceImpl{
		source:  source,
		booked:  booked,
		days:    cache.New(size, ttl),
		workers: workers,
		otel:    otel,
	}
}

func dayKey(clientID, dealershipID, day string) string {
	return shared.BuildCacheKey(clientID, dealershipID, day)
}

// MonthAvailability flags every date of month's calendar month that still
// has a future slot below capacity. Days before today are closed without
// asking the backend. Booked starts are read once for the uncached days,
// and a failed fetch closes the affected days only.
func (s *serviceImpl) MonthAvailability(ctx context.Context, clientID, dealershipID string, month time.Time, tz string) (res model.MonthAvailability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res = model.MonthAvailability{}

	if dealershipID == "" {
		return res, nil
	}

	loc := timezone.Resolve(tz)
	now := timezone.Now().In(loc)
	today := timezone.StartOfDay(now, loc)

	month = month.In(loc)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	next := first.AddDate(0, 1, 0)

	var mu sync.Mutex

	set := func(day string, ok bool) {
		mu.Lock()
		res[day] = ok
		mu.Unlock()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	from := first
	if today.After(from) {
		from = today
	}

	booked := sync.OnceValues(func() ([]time.Time, error) {
		return s.booked.BookedStarts(groupCtx, dealershipID, from, next)
	})

	for date := first; date.Before(next); date = date.AddDate(0, 0, 1) {
		day := date.Format(constant.DateOnlyFormat)

		if date.Before(today) {
			set(day, false)

			continue
		}

		key := dayKey(clientID, dealershipID, day)
		if ok, hit := s.days.Get(key); hit {
			set(day, ok)

			continue
		}

		group.Go(func() error {
			ok, err := s.days.Load(key, func() (bool, error) {
				slots, err := s.source.Compute(groupCtx, clientID, dealershipID, date, loc.String())
				if err != nil {
					return false, err
				}

				starts, err := booked()
				if err != nil {
					return false, err
				}

				return reconciler.HasOfferable(slots, starts, now, loc), nil
			})
			if err != nil {
				log.Warn().Err(err).Str("dealership_id", dealershipID).Str("date", day).Msg("day availability failed, treating as closed")
			}

			set(day, ok && err == nil)

			return nil
		})
	}

	_ = group.Wait()

	return res, nil
}

// DaySlots fetches the day's slots and booked starts concurrently and
// returns what can still be offered.
func (s *serviceImpl) DaySlots(ctx context.Context, clientID, dealershipID string, date time.Time, tz string) (res []model.OfferableSlot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DaySlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	loc := timezone.Resolve(tz)
	dayStart := timezone.StartOfDay(date, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var (
		slots  []model.Slot
		booked []time.Time
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		slots, err = s.source.Compute(groupCtx, clientID, dealershipID, dayStart, loc.String())

		return err
	})

	group.Go(func() error {
		var err error
		booked, err = s.booked.BookedStarts(groupCtx, dealershipID, dayStart, dayEnd)

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("dealership_id", dealershipID).Str("date", dayStart.Format(constant.DateOnlyFormat)).Msg("failed to load day slots")

		return nil, fmt.Errorf("failed to load day slots: %w", err)
	}

	return reconciler.Reconcile(slots, booked, timezone.Now(), loc), nil
}

// Invalidate drops the cached flag of the day containing at.
func (s *serviceImpl) Invalidate(clientID, dealershipID string, at time.Time, tz string) {
	day := at.In(timezone.Resolve(tz)).Format(constant.DateOnlyFormat)

	s.days.Remove(dayKey(clientID, dealershipID, day))
}
