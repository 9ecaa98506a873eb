package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/wizard"
	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/cache"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	sessionKeyPrefix = "booking:session"
	lockKeyPrefix    = "booking:lock"

	lockTTL = 30 * time.Second
)

var (
	ErrNotFound = errors.New("booking session not found")
	ErrBusy     = errors.New("booking session is being updated")
)

// lockWait bounds how long a caller queues behind another update; lockPoll
// is how often it retries meanwhile.
var (
	lockWait = 5 * time.Second
	lockPoll = 50 * time.Millisecond
)

// Session stores wizard snapshots in redis with a sliding TTL.
type Session interface {
	Get(ctx context.Context, id string) (*wizard.State, error)
	Save(ctx context.Context, state *wizard.State) error
	Delete(ctx context.Context, id string) error
	// Lock serializes changes to one session across instances. It waits a
	// few seconds for the current holder and then gives up with ErrBusy.
	Lock(ctx context.Context, id string) (unlock func(), err error)
}

type repositoryImpl struct {
	cache cache.RedisCache
	ttl   time.Duration
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Session {
	ttl := time.Duration(cfg.Booking.SessionTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = constant.DefaultSessionTTL
	}

	return &repositoryImpl{
		cache: cache,
		ttl:   ttl,
		otel:  otel,
	}
}

func key(id string) string {
	return shared.BuildCacheKey(sessionKeyPrefix, id)
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (state *wizard.State, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	state = &wizard.State{}

	err = r.cache.Get(ctx, key(id), state)
	if errors.Is(err, cache.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	return state, nil
}

func (r *repositoryImpl) Save(ctx context.Context, state *wizard.State) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Save(ctx, key(state.ID), state, r.ttl); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, key(id)) //nolint:wrapcheck
}

func (r *repositoryImpl) Lock(ctx context.Context, id string) (unlock func(), err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Lock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	lockKey := shared.BuildCacheKey(lockKeyPrefix, id)
	token := uuid.NewString()
	deadline := time.Now().Add(lockWait)

	for {
		acquired, acquireErr := r.cache.Acquire(ctx, lockKey, token, lockTTL)
		if acquireErr != nil {
			return nil, fmt.Errorf("failed to lock booking session: %w", acquireErr)
		}

		if acquired {
			break
		}

		if time.Now().After(deadline) {
			return nil, ErrBusy
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to lock booking session: %w", ctx.Err())
		case <-time.After(lockPoll):
		}
	}

	return func() {
		if err := r.cache.Release(context.WithoutCancel(ctx), lockKey, token); err != nil {
			log.Warn().Err(err).Str("session_id", id).Msg("failed to release booking session lock")
		}
	}, nil
}
