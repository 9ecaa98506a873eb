package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel/mocks"
	availabilityMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/mocks"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/service"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	tenantID = "tenant-1"
	branchID = "branch-1"
	tz       = "America/Santiago"
)

func newConfig(workers int) *config.Config {
	cfg := &config.Config{}
	cfg.Availability.Workers = workers
	cfg.Availability.CacheSize = 128
	cfg.Availability.CacheTTLSeconds = 600

	return cfg
}

func nextMonth() (time.Time, int) {
	loc, _ := time.LoadLocation(tz)
	now := time.Now().In(loc)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	days := first.AddDate(0, 1, -1).Day()

	return first, days
}

func openSlot(date time.Time) []model.Slot {
	start := time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, date.Location())

	return []model.Slot{{Start: start, End: start.Add(30 * time.Minute), Capacity: 1}}
}

func TestMonthAvailability(t *testing.T) {
	month, days := nextMonth()
	failing := month.AddDate(0, 0, 4).Format(constant.DateOnlyFormat)
	closed := month.AddDate(0, 0, 5).Format(constant.DateOnlyFormat)

	ctrl := gomock.NewController(t)
	source := availabilityMocks.NewMockAvailability(ctrl)
	booked := availabilityMocks.NewMockBookedSource(ctrl)

	source.EXPECT().
		Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).
		DoAndReturn(func(_ context.Context, _, _ string, date time.Time, _ string) ([]model.Slot, error) {
			switch date.Format(constant.DateOnlyFormat) {
			case failing:
				return nil, errors.New("backend timeout")
			case closed:
				return nil, nil
			default:
				return openSlot(date), nil
			}
		}).
		Times(days)
	booked.EXPECT().
		BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	svc := service.New(source, booked, newConfig(5), mocks.NewOtel())

	res, err := svc.MonthAvailability(context.Background(), tenantID, branchID, month, tz)

	assert.NoError(t, err)
	assert.Len(t, res, days)
	assert.False(t, res[failing], "a failed day fails closed")
	assert.False(t, res[closed])
	assert.True(t, res[month.Format(constant.DateOnlyFormat)])
	assert.Len(t, res.Days(), days-2)
}

func TestMonthAvailability_UsesCacheWithinTTL(t *testing.T) {
	month, days := nextMonth()

	ctrl := gomock.NewController(t)
	source := availabilityMocks.NewMockAvailability(ctrl)
	booked := availabilityMocks.NewMockBookedSource(ctrl)

	source.EXPECT().
		Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).
		DoAndReturn(func(_ context.Context, _, _ string, date time.Time, _ string) ([]model.Slot, error) {
			return openSlot(date), nil
		}).
		Times(days)
	booked.EXPECT().BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	svc := service.New(source, booked, newConfig(5), mocks.NewOtel())

	first, err := svc.MonthAvailability(context.Background(), tenantID, branchID, month, tz)
	assert.NoError(t, err)

	second, err := svc.MonthAvailability(context.Background(), tenantID, branchID, month, tz)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMonthAvailability_InvalidateRefetchesOneDay(t *testing.T) {
	month, days := nextMonth()
	target := month.AddDate(0, 0, 2)

	ctrl := gomock.NewController(t)
	source := availabilityMocks.NewMockAvailability(ctrl)
	booked := availabilityMocks.NewMockBookedSource(ctrl)

	source.EXPECT().
		Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).
		DoAndReturn(func(_ context.Context, _, _ string, date time.Time, _ string) ([]model.Slot, error) {
			return openSlot(date), nil
		}).
		Times(days + 1)
	booked.EXPECT().BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	svc := service.New(source, booked, newConfig(3), mocks.NewOtel())

	_, err := svc.MonthAvailability(context.Background(), tenantID, branchID, month, tz)
	assert.NoError(t, err)

	svc.Invalidate(tenantID, branchID, target.Add(10*time.Hour), tz)

	_, err = svc.MonthAvailability(context.Background(), tenantID, branchID, month, tz)
	assert.NoError(t, err)
}

func TestMonthAvailability_FullyBookedDayIsClosed(t *testing.T) {
	month, days := nextMonth()
	full := month.AddDate(0, 0, 3)
	partly := month.AddDate(0, 0, 6)

	ctrl := gomock.NewController(t)
	source := availabilityMocks.NewMockAvailability(ctrl)
	booked := availabilityMocks.NewMockBookedSource(ctrl)

	source.EXPECT().
		Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).
		DoAndReturn(func(_ context.Context, _, _ string, date time.Time, _ string) ([]model.Slot, error) {
			slots := openSlot(date)
			if date.Equal(partly) {
				slots[0].Capacity = 2
			}

			return slots, nil
		}).
		Times(days)
	booked.EXPECT().
		BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).
		Return([]time.Time{openSlot(full)[0].Start, openSlot(partly)[0].Start}, nil).
		Times(1)

	svc := service.New(source, booked, newConfig(4), mocks.NewOtel())

	res, err := svc.MonthAvailability(context.Background(), tenantID, branchID, month, tz)

	assert.NoError(t, err)
	assert.False(t, res[full.Format(constant.DateOnlyFormat)])
	assert.True(t, res[partly.Format(constant.DateOnlyFormat)])
	assert.Len(t, res.Days(), days-1)
}

func TestMonthAvailability_BookedFailureClosesDays(t *testing.T) {
	month, days := nextMonth()

	ctrl := gomock.NewController(t)
	source := availabilityMocks.NewMockAvailability(ctrl)
	booked := availabilityMocks.NewMockBookedSource(ctrl)

	source.EXPECT().
		Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).
		DoAndReturn(func(_ context.Context, _, _ string, date time.Time, _ string) ([]model.Slot, error) {
			return openSlot(date), nil
		}).
		Times(days)
	booked.EXPECT().BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	svc := service.New(source, booked, newConfig(4), mocks.NewOtel())

	res, err := svc.MonthAvailability(context.Background(), tenantID, branchID, month, tz)

	assert.NoError(t, err)
	assert.Len(t, res, days)
	assert.Empty(t, res.Days())
}

func TestMonthAvailability_NoLocation(t *testing.T) {
	month, _ := nextMonth()

	ctrl := gomock.NewController(t)
	source := availabilityMocks.NewMockAvailability(ctrl)
	booked := availabilityMocks.NewMockBookedSource(ctrl)

	svc := service.New(source, booked, newConfig(5), mocks.NewOtel())

	res, err := svc.MonthAvailability(context.Background(), tenantID, "", month, tz)

	assert.NoError(t, err)
	assert.Empty(t, res)
}

func TestMonthAvailability_PastMonthIsClosedWithoutFetching(t *testing.T) {
	month, _ := nextMonth()
	past := month.AddDate(0, -3, 0)

	ctrl := gomock.NewController(t)
	source := availabilityMocks.NewMockAvailability(ctrl)
	booked := availabilityMocks.NewMockBookedSource(ctrl)

	svc := service.New(source, booked, newConfig(5), mocks.NewOtel())

	res, err := svc.MonthAvailability(context.Background(), tenantID, branchID, past, tz)

	assert.NoError(t, err)
	assert.NotEmpty(t, res)
	assert.Empty(t, res.Days())
}

func TestDaySlots(t *testing.T) {
	month, _ := nextMonth()
	date := month.AddDate(0, 0, 9)
	ten := time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, date.Location())

	slots := []model.Slot{
		{Start: ten, End: ten.Add(30 * time.Minute), Capacity: 2},
		{Start: ten.Add(30 * time.Minute), End: ten.Add(time.Hour), Capacity: 1},
		{Start: ten.Add(time.Hour), End: ten.Add(90 * time.Minute), Capacity: 1},
	}

	tests := []struct {
		name      string
		setupMock func(source *availabilityMocks.MockAvailability, booked *availabilityMocks.MockBookedSource)
		want      []time.Time
		wantErr   bool
	}{
		{
			name: "reconciles against bookings",
			setupMock: func(source *availabilityMocks.MockAvailability, booked *availabilityMocks.MockBookedSource) {
				source.EXPECT().Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).Return(slots, nil)
				booked.EXPECT().
					BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, from, to time.Time) ([]time.Time, error) {
						assert.Equal(t, 24*time.Hour, to.Sub(from))

						return []time.Time{ten, ten.Add(30 * time.Minute).UTC()}, nil
					})
			},
			want: []time.Time{ten, ten.Add(time.Hour)},
		},
		{
			name: "slot fetch failure",
			setupMock: func(source *availabilityMocks.MockAvailability, booked *availabilityMocks.MockBookedSource) {
				source.EXPECT().Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).Return(nil, errors.New("rpc down"))
				booked.EXPECT().BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
			},
			wantErr: true,
		},
		{
			name: "booking fetch failure",
			setupMock: func(source *availabilityMocks.MockAvailability, booked *availabilityMocks.MockBookedSource) {
				source.EXPECT().Compute(gomock.Any(), tenantID, branchID, gomock.Any(), tz).Return(slots, nil).AnyTimes()
				booked.EXPECT().BookedStarts(gomock.Any(), branchID, gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := availabilityMocks.NewMockAvailability(ctrl)
			booked := availabilityMocks.NewMockBookedSource(ctrl)
			tt.setupMock(source, booked)

			svc := service.New(source, booked, newConfig(5), mocks.NewOtel())

			res, err := svc.DaySlots(context.Background(), tenantID, branchID, date, tz)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			starts := make([]time.Time, 0, len(res))
			for _, slot := range res {
				starts = append(starts, slot.Start)
			}

			assert.Equal(t, tt.want, starts)
			assert.Equal(t, 1, res[0].Remaining)
		})
	}
}
