package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel/mocks"
	dealershipMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/mocks"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/repository"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/service"
	"github.com/NikQuila/website-gocar-sub000/shared/cache"
	cacheMocks "github.com/NikQuila/website-gocar-sub000/shared/cache/mocks"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const tenantID = "tenant-1"

func ptr[T any](v T) *T {
	return &v
}

type fixture struct {
	svc   service.Dealership
	repo  *dealershipMocks.MockDealership
	cache *cacheMocks.MockRedisCache
	saved *sync.WaitGroup
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Availability.DefaultTimezone = "America/Santiago"

	f := fixture{
		repo:  dealershipMocks.NewMockDealership(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		saved: &sync.WaitGroup{},
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	return f
}

// expectSave waits for the asynchronous cache write issued after a miss.
func (f fixture) expectSave(key string) {
	f.saved.Add(1)
	f.cache.EXPECT().Save(gomock.Any(), key, gomock.Any(), time.Minute).DoAndReturn(func(context.Context, string, any, time.Duration) error {
		defer f.saved.Done()

		return nil
	})
}

func (f fixture) hit(key string, value any) {
	f.cache.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, dst any) error {
		switch v := dst.(type) {
		case *dto.DealershipsResponse:
			*v = value.(dto.DealershipsResponse)
		case *model.Client:
			*v = value.(model.Client)
		}

		return nil
	})
}

func (f fixture) miss(key string) {
	f.cache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
}

func TestListByTenant(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		wantIDs  []string
		wantCode int
	}{
		{
			name: "served from cache",
			setup: func(f fixture) {
				f.hit("dealership:list:"+tenantID, dto.DealershipsResponse{Dealerships: []dto.DealershipResponse{{ID: "loc-a"}}})
			},
			wantIDs: []string{"loc-a"},
		},
		{
			name: "loaded and cached on miss",
			setup: func(f fixture) {
				f.miss("dealership:list:" + tenantID)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Dealership{
					{ID: "loc-a", ClientID: tenantID, Name: "Centro", Address: ptr("Av. Uno 1")},
					{ID: "loc-b", ClientID: tenantID, Name: "Norte"},
				}, nil)
				f.expectSave("dealership:list:" + tenantID)
			},
			wantIDs: []string{"loc-a", "loc-b"},
		},
		{
			name: "repository failure",
			setup: func(f fixture) {
				f.miss("dealership:list:" + tenantID)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.ListByTenant(context.Background(), tenantID)
			f.saved.Wait()

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, res.IDs())
		})
	}
}

func TestFind(t *testing.T) {
	f := newFixture(t)
	listing := dto.DealershipsResponse{Dealerships: []dto.DealershipResponse{{ID: "loc-a", Name: "Centro"}, {ID: "loc-b", Name: "Norte"}}}

	f.hit("dealership:list:"+tenantID, listing)

	res, err := f.svc.Find(context.Background(), tenantID, "loc-b")
	require.NoError(t, err)
	assert.Equal(t, "Norte", res.Name)

	f.hit("dealership:list:"+tenantID, listing)

	_, err = f.svc.Find(context.Background(), tenantID, "loc-z")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestTenant_NotFound(t *testing.T) {
	f := newFixture(t)

	f.miss("dealership:client:" + tenantID)
	f.repo.EXPECT().GetClient(gomock.Any(), tenantID).Return(model.Client{}, repository.ErrNotFound)

	_, err := f.svc.Tenant(context.Background(), tenantID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f fixture)
		want  string
	}{
		{
			name: "tenant timezone",
			setup: func(f fixture) {
				f.hit("dealership:client:"+tenantID, model.Client{ID: tenantID, Timezone: ptr("America/Bogota")})
			},
			want: "America/Bogota",
		},
		{
			name: "tenant without timezone uses the default",
			setup: func(f fixture) {
				f.hit("dealership:client:"+tenantID, model.Client{ID: tenantID})
			},
			want: "America/Santiago",
		},
		{
			name: "unreadable tenant uses the default",
			setup: func(f fixture) {
				f.miss("dealership:client:" + tenantID)
				f.repo.EXPECT().GetClient(gomock.Any(), tenantID).Return(model.Client{}, errors.New("timeout"))
			},
			want: "America/Santiago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			assert.Equal(t, tt.want, f.svc.Location(context.Background(), tenantID).String())
		})
	}
}

func TestVehicle(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetVehicle(gomock.Any(), "vehicle-1").Return(model.Vehicle{ID: "vehicle-1", DealershipID: ptr("loc-a")}, nil)

	res, err := f.svc.Vehicle(context.Background(), "vehicle-1")
	require.NoError(t, err)
	assert.Equal(t, "loc-a", *res.DealershipID)

	f.repo.EXPECT().GetVehicle(gomock.Any(), "vehicle-2").Return(model.Vehicle{}, repository.ErrNotFound)

	_, err = f.svc.Vehicle(context.Background(), "vehicle-2")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
