package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	otelMocks "github.com/NikQuila/website-gocar-sub000/infras/otel/mocks"
	appointmentMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/mocks"
	appointmentModel "github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model"
	availabilityMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/mocks"
	availabilityModel "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/model"
	availabilityService "github.com/NikQuila/website-gocar-sub000/internal/domains/availability/service"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/mocks"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/model/dto"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/repository"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/service"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/booking/wizard"
	customerMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/mocks"
	customerModel "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"
	customerDto "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model/dto"
	dealershipMocks "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/mocks"
	dealershipModel "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model"
	dealershipDto "github.com/NikQuila/website-gocar-sub000/internal/domains/dealership/model/dto"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const tenant = "tenant-1"

// memorySessions backs the session mock with a JSON map so every load sees
// what the last save wrote, as redis would. Locks are per id and block.
func memorySessions(ctrl *gomock.Controller) *mocks.MockSession {
	var mu sync.Mutex

	store := map[string][]byte{}
	locks := map[string]*sync.Mutex{}
	sessions := mocks.NewMockSession(ctrl)

	sessions.EXPECT().Lock(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (func(), error) {
		mu.Lock()
		lock, ok := locks[id]
		if !ok {
			lock = &sync.Mutex{}
			locks[id] = lock
		}
		mu.Unlock()

		lock.Lock()

		return lock.Unlock, nil
	}).AnyTimes()

	sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, state *wizard.State) error {
		raw, err := json.Marshal(state)

		mu.Lock()
		store[state.ID] = raw
		mu.Unlock()

		return err
	}).AnyTimes()

	sessions.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*wizard.State, error) {
		mu.Lock()
		raw, ok := store[id]
		mu.Unlock()

		if !ok {
			return nil, repository.ErrNotFound
		}

		state := &wizard.State{}

		return state, json.Unmarshal(raw, state)
	}).AnyTimes()

	sessions.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id string) error {
		mu.Lock()
		delete(store, id)
		mu.Unlock()

		return nil
	}).AnyTimes()

	return sessions
}

func dealerships(ids ...string) dealershipDto.DealershipsResponse {
	res := dealershipDto.DealershipsResponse{}
	for _, id := range ids {
		res.Dealerships = append(res.Dealerships, dealershipDto.DealershipResponse{ID: id, Name: "Branch " + id})
	}

	return res
}

func validForm() customerDto.CustomerForm {
	return customerDto.CustomerForm{
		ClientID:  tenant,
		FirstName: "Ana",
		LastName:  "Soto",
		Email:     "a@b.cl",
		Phone:     "+56 9 1234 5678",
	}
}

type deps struct {
	sessions     *mocks.MockSession
	availability *availabilityMocks.MockAvailabilityService
	appointments *appointmentMocks.MockAppointmentService
	customers    *customerMocks.MockCustomerService
	dealerships  *dealershipMocks.MockDealershipService
}

func newService(t *testing.T) (service.Booking, deps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	d := deps{
		sessions:     memorySessions(ctrl),
		availability: availabilityMocks.NewMockAvailabilityService(ctrl),
		appointments: appointmentMocks.NewMockAppointmentService(ctrl),
		customers:    customerMocks.NewMockCustomerService(ctrl),
		dealerships:  dealershipMocks.NewMockDealershipService(ctrl),
	}

	cfg := &config.Config{}
	cfg.Availability.BookingChannel = constant.DefaultBookingChannel

	svc := service.New(d.sessions, d.availability, d.appointments, d.customers, d.dealerships, cfg, otelMocks.NewOtel())

	return svc, d
}

// seed stores a session already sitting at the customer details step.
func seed(t *testing.T, d deps, change func(state *wizard.State)) string {
	t.Helper()

	day := timezone.StartOfDay(timezone.Now().In(time.UTC), time.UTC).AddDate(0, 0, 2)
	start := day.Add(10 * time.Hour)

	state := wizard.Start("session-1", tenant, []string{"loc-a", "loc-b"}, "", day)
	state.Timezone = "UTC"
	state.LocationID = "loc-b"
	state.Step = wizard.StepCustomerDetails
	state.Date = day.Format(constant.DateOnlyFormat)
	state.Availability = availabilityModel.MonthAvailability{state.Date: true}
	state.Slots = []availabilityModel.OfferableSlot{{
		Slot:      availabilityModel.Slot{Start: start, End: start.Add(30 * time.Minute), Capacity: 1},
		Remaining: 1,
	}}
	state.Slot = &wizard.SelectedSlot{Start: start, End: start.Add(30 * time.Minute)}
	state.Form = validForm()

	if change != nil {
		change(state)
	}

	require.NoError(t, d.sessions.Save(context.Background(), state))

	return state.ID
}

func TestStart(t *testing.T) {
	vehicleAtB := "vehicle-1"

	tests := []struct {
		name      string
		locations []string
		vehicle   *dealershipModel.Vehicle
		wantStep  wizard.Step
		wantLoc   string
	}{
		{
			name:      "single location skips branch select",
			locations: []string{"loc-a"},
			wantStep:  wizard.StepDateSelect,
			wantLoc:   "loc-a",
		},
		{
			name:      "several locations ask for a branch",
			locations: []string{"loc-a", "loc-b"},
			wantStep:  wizard.StepBranchSelect,
		},
		{
			name:      "vehicle location skips branch select",
			locations: []string{"loc-a", "loc-b"},
			vehicle:   &dealershipModel.Vehicle{ID: vehicleAtB, ClientID: tenant, DealershipID: func() *string { s := "loc-b"; return &s }()},
			wantStep:  wizard.StepDateSelect,
			wantLoc:   "loc-b",
		},
		{
			name:      "vehicle of another tenant is ignored",
			locations: []string{"loc-a", "loc-b"},
			vehicle:   &dealershipModel.Vehicle{ID: vehicleAtB, ClientID: "tenant-2", DealershipID: func() *string { s := "loc-b"; return &s }()},
			wantStep:  wizard.StepBranchSelect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			req := dto.StartRequest{ClientID: tenant}

			d.dealerships.EXPECT().ListByTenant(gomock.Any(), tenant).Return(dealerships(tt.locations...), nil)
			d.dealerships.EXPECT().Location(gomock.Any(), tenant).Return(time.UTC)

			if tt.vehicle != nil {
				req.VehicleID = &tt.vehicle.ID
				d.dealerships.EXPECT().Vehicle(gomock.Any(), tt.vehicle.ID).Return(*tt.vehicle, nil)
			}

			if tt.wantStep == wizard.StepDateSelect {
				d.availability.EXPECT().
					MonthAvailability(gomock.Any(), tenant, tt.wantLoc, gomock.Any(), "UTC").
					Return(availabilityModel.MonthAvailability{"2099-01-02": true}, nil).
					Times(1)
			}

			res, err := svc.Start(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, int(tt.wantStep), res.Step)
			assert.Equal(t, tt.wantStep.String(), res.StepName)
			assert.Equal(t, tt.wantLoc, res.LocationID)
			assert.NotEmpty(t, res.ID)

			if tt.wantStep == wizard.StepDateSelect {
				assert.Equal(t, []string{"2099-01-02"}, res.AvailableDays)
			}
		})
	}
}

func TestStart_NoDealerships(t *testing.T) {
	svc, d := newService(t)

	d.dealerships.EXPECT().ListByTenant(gomock.Any(), tenant).Return(dealerships(), nil)

	_, err := svc.Start(context.Background(), dto.StartRequest{ClientID: tenant})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestGet_UnknownSession(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, failure.ErrSessionNotFound)
}

func TestNext_DateStepFetchesSlotsOnce(t *testing.T) {
	svc, d := newService(t)

	id := seed(t, d, func(state *wizard.State) {
		state.Step = wizard.StepDateSelect
		state.Date = ""
		state.Slot = nil
		state.Slots = nil
	})

	res, err := svc.Next(context.Background(), id)
	assert.ErrorIs(t, err, failure.ErrStepGuard)
	assert.Empty(t, res.ID)

	current, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepDateSelect), current.Step)

	date := current.AvailableDays[0]
	start := time.Date(2000, 1, 1, 10, 0, 0, 0, time.UTC)

	_, err = svc.SelectDate(context.Background(), id, dto.DateRequest{Date: date})
	require.NoError(t, err)

	d.availability.EXPECT().
		DaySlots(gomock.Any(), tenant, "loc-b", gomock.Any(), "UTC").
		DoAndReturn(func(_ context.Context, _, _ string, day time.Time, _ string) ([]availabilityModel.OfferableSlot, error) {
			assert.Equal(t, date, day.Format(constant.DateOnlyFormat))

			return []availabilityModel.OfferableSlot{{Slot: availabilityModel.Slot{Start: start, End: start.Add(30 * time.Minute), Capacity: 2}, Remaining: 2}}, nil
		}).
		Times(1)

	res, err = svc.Next(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepTimeSelect), res.Step)
	require.Len(t, res.Slots, 1)
	assert.Equal(t, 2, res.Slots[0].Remaining)

	res, err = svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, res.Slots, 1)
}

func TestSetMonth_ReloadsAvailability(t *testing.T) {
	svc, d := newService(t)

	id := seed(t, d, func(state *wizard.State) {
		state.Step = wizard.StepDateSelect
		state.Slot = nil
	})

	d.availability.EXPECT().
		MonthAvailability(gomock.Any(), tenant, "loc-b", gomock.Cond(func(month time.Time) bool {
			return month.Equal(time.Date(2099, 2, 1, 0, 0, 0, 0, time.UTC))
		}), "UTC").
		Return(availabilityModel.MonthAvailability{"2099-02-10": true, "2099-02-03": true, "2099-02-04": false}, nil)

	res, err := svc.SetMonth(context.Background(), id, dto.MonthRequest{Month: "2099-02"})
	require.NoError(t, err)

	assert.Equal(t, "2099-02", res.Month)
	assert.Empty(t, res.Date)
	assert.Nil(t, res.Slot)
	assert.Equal(t, []string{"2099-02-03", "2099-02-10"}, res.AvailableDays)

	_, err = svc.SelectDate(context.Background(), id, dto.DateRequest{Date: "2099-02-04"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestConfirm_RequiresCustomer(t *testing.T) {
	svc, d := newService(t)

	id := seed(t, d, func(state *wizard.State) {
		state.Form = customerDto.CustomerForm{ClientID: tenant, FirstName: "A", LastName: "B", Email: "bad", Phone: "123"}
	})

	_, err := svc.Confirm(context.Background(), id)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestConfirm_RetriesWithAlternateID(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, nil)

	customer := validForm().ToModel(customerModel.UUIDRef(uuid.New()))
	alternate := customerModel.IntegerRef(7)

	d.customers.EXPECT().Ensure(gomock.Any(), validForm()).Return(customer, nil)

	gomock.InOrder(
		d.appointments.EXPECT().
			Create(gomock.Any(), gomock.Cond(func(p appointmentModel.CreateParams) bool { return p.Customer == customer.Ref })).
			Return("", fmt.Errorf("failed to create appointment: %w", appointmentModel.ErrIDMismatch)),
		d.customers.EXPECT().Alternate(gomock.Any(), customer).Return(alternate, nil),
		d.appointments.EXPECT().
			Create(gomock.Any(), gomock.Cond(func(p appointmentModel.CreateParams) bool { return p.Customer == alternate })).
			Return("appt-9", nil),
	)

	d.appointments.EXPECT().Announce(gomock.Any(), "appt-9", gomock.Any())

	res, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, int(wizard.StepConfirmed), res.Step)
	assert.Equal(t, "appt-9", res.AppointmentID)
}

func TestConfirm_MismatchWithoutAlternate(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, nil)

	customer := validForm().ToModel(customerModel.UUIDRef(uuid.New()))

	d.customers.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(customer, nil)
	d.appointments.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", appointmentModel.ErrIDMismatch)
	d.customers.EXPECT().Alternate(gomock.Any(), customer).Return(customerModel.Ref{}, errors.New("no alternate"))

	_, err := svc.Confirm(context.Background(), id)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

	res, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepCustomerDetails), res.Step)
}

func TestConfirm_SlotTakenReturnsToTimeSelect(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, nil)

	customer := validForm().ToModel(customerModel.UUIDRef(uuid.New()))

	d.customers.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(customer, nil)
	d.appointments.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", fmt.Errorf("failed to create appointment: %w", appointmentModel.ErrSlotTaken))
	d.availability.EXPECT().DaySlots(gomock.Any(), tenant, "loc-b", gomock.Any(), "UTC").Return([]availabilityModel.OfferableSlot{}, nil).Times(1)

	_, err := svc.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, failure.ErrSlotUnavailable)

	res, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, int(wizard.StepTimeSelect), res.Step)
	assert.Nil(t, res.Slot)
	assert.Empty(t, res.Slots)
	assert.NotEmpty(t, res.Notice)
}

func TestConfirm_ExistingCustomer(t *testing.T) {
	svc, d := newService(t)

	ref := customerModel.IntegerRef(42)
	id := seed(t, d, func(state *wizard.State) {
		state.Form = customerDto.CustomerForm{ClientID: tenant}
	})

	_, err := svc.SetCustomer(context.Background(), id, &dto.TokenCustomer{ClientID: tenant, Ref: ref}, dto.CustomerRequest{})
	require.NoError(t, err)

	customer := customerModel.Customer{Ref: ref, ClientID: tenant, FirstName: "Ana", LastName: "Soto", Email: "a@b.cl", Phone: "912345678"}

	d.customers.EXPECT().Find(gomock.Any(), tenant, ref).Return(customer, nil)
	d.appointments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p appointmentModel.CreateParams) (string, error) {
			assert.Equal(t, ref, p.Customer)
			assert.Equal(t, "Ana Soto", p.Contact.Name)
			assert.Equal(t, constant.DefaultBookingChannel, p.Channel)
			assert.Equal(t, id, p.BookingRef)

			return "appt-1", nil
		})
	d.appointments.EXPECT().Announce(gomock.Any(), "appt-1", gomock.Any())

	res, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "42", res.CustomerID)

	_, err = svc.Back(context.Background(), id)
	assert.ErrorIs(t, err, failure.ErrStepGuard)
}

func TestSetCustomer_OtherTenantRejected(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, func(state *wizard.State) {
		state.Form = customerDto.CustomerForm{ClientID: tenant}
	})

	_, err := svc.SetCustomer(context.Background(), id, &dto.TokenCustomer{ClientID: "tenant-2", Ref: customerModel.IntegerRef(42)}, dto.CustomerRequest{})
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))

	res, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, res.CustomerID)
}

func TestConfirm_ConcurrentCallsCreateOnce(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, nil)

	customer := validForm().ToModel(customerModel.UUIDRef(uuid.New()))
	release := make(chan struct{})
	entered := make(chan struct{}, 2)

	d.customers.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(customer, nil).Times(1)
	d.appointments.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p appointmentModel.CreateParams) (string, error) {
			entered <- struct{}{}
			<-release

			assert.Equal(t, id, p.BookingRef)

			return "appt-1", nil
		}).
		Times(1)
	d.appointments.EXPECT().Announce(gomock.Any(), "appt-1", gomock.Any()).Times(1)

	var wg sync.WaitGroup

	results := make([]dto.SessionResponse, 2)
	errs := make([]error, 2)

	for i := range results {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i], errs[i] = svc.Confirm(context.Background(), id)
		}(i)
	}

	<-entered
	close(release)
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, int(wizard.StepConfirmed), results[i].Step)
		assert.Equal(t, "appt-1", results[i].AppointmentID)
	}
}

func TestConfirm_AlreadyConfirmedReturnsBooking(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, func(state *wizard.State) {
		state.MarkConfirmed("appt-3")
	})

	res, err := svc.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "appt-3", res.AppointmentID)
}

func TestNext_SlotsFailureShowsNotice(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, func(state *wizard.State) {
		state.Step = wizard.StepDateSelect
		state.Slot = nil
		state.Slots = nil
	})

	d.availability.EXPECT().
		DaySlots(gomock.Any(), tenant, "loc-b", gomock.Any(), "UTC").
		Return(nil, errors.New("pool exhausted")).
		Times(1)

	res, err := svc.Next(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, int(wizard.StepTimeSelect), res.Step)
	assert.NotNil(t, res.Slots)
	assert.Empty(t, res.Slots)
	assert.NotEmpty(t, res.Notice)
}

func TestAbandon(t *testing.T) {
	svc, d := newService(t)
	id := seed(t, d, nil)

	require.NoError(t, svc.Abandon(context.Background(), id))

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, failure.ErrSessionNotFound)
}

// TestBookingScenario books the only seat of a slot at the second branch and
// checks that the next customer sees that day closed.
func TestBookingScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	today := timezone.StartOfDay(timezone.Now().In(time.UTC), time.UTC)
	day := today.AddDate(0, 0, 3)
	date := day.Format(constant.DateOnlyFormat)
	start := day.Add(10 * time.Hour)

	source := availabilityMocks.NewMockAvailability(ctrl)
	source.EXPECT().
		Compute(gomock.Any(), tenant, "loc-b", gomock.Any(), "UTC").
		DoAndReturn(func(_ context.Context, _, _ string, at time.Time, _ string) ([]availabilityModel.Slot, error) {
			if at.Format(constant.DateOnlyFormat) != date {
				return nil, nil
			}

			return []availabilityModel.Slot{{Start: start, End: start.Add(30 * time.Minute), Capacity: 1}}, nil
		}).
		AnyTimes()

	var (
		mu     sync.Mutex
		booked []time.Time
	)

	bookedSource := availabilityMocks.NewMockBookedSource(ctrl)
	bookedSource.EXPECT().
		BookedStarts(gomock.Any(), "loc-b", gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, time.Time, time.Time) ([]time.Time, error) {
			mu.Lock()
			defer mu.Unlock()

			return append([]time.Time(nil), booked...), nil
		}).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Availability.BookingChannel = constant.DefaultBookingChannel

	availability := availabilityService.New(source, bookedSource, cfg, otelMocks.NewOtel())

	dealershipSvc := dealershipMocks.NewMockDealershipService(ctrl)
	dealershipSvc.EXPECT().ListByTenant(gomock.Any(), tenant).Return(dealerships("loc-a", "loc-b"), nil).AnyTimes()
	dealershipSvc.EXPECT().Location(gomock.Any(), tenant).Return(time.UTC).AnyTimes()

	customers := customerMocks.NewMockCustomerService(ctrl)
	customers.EXPECT().Ensure(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, form customerDto.CustomerForm) (customerModel.Customer, error) {
		return form.ToModel(customerModel.UUIDRef(uuid.New())), nil
	}).AnyTimes()

	var created []appointmentModel.CreateParams

	appointments := appointmentMocks.NewMockAppointmentService(ctrl)
	appointments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p appointmentModel.CreateParams) (string, error) {
		mu.Lock()
		booked = append(booked, p.SlotStart)
		mu.Unlock()

		created = append(created, p)
		availability.Invalidate(p.ClientID, p.DealershipID, p.SlotStart, "UTC")

		return fmt.Sprintf("appt-%d", len(created)), nil
	}).Times(1)
	appointments.EXPECT().Announce(gomock.Any(), "appt-1", gomock.Any()).Times(1)

	svc := service.New(memorySessions(ctrl), availability, appointments, customers, dealershipSvc, cfg, otelMocks.NewOtel())

	month := func() dto.SessionResponse {
		res, err := svc.Start(ctx, dto.StartRequest{ClientID: tenant, Timezone: "UTC"})
		require.NoError(t, err)
		assert.Equal(t, int(wizard.StepBranchSelect), res.Step)

		id := res.ID

		_, err = svc.SelectLocation(ctx, id, dto.LocationRequest{LocationID: "loc-b"})
		require.NoError(t, err)

		res, err = svc.Next(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int(wizard.StepDateSelect), res.Step)

		res, err = svc.SetMonth(ctx, id, dto.MonthRequest{Month: day.Format(constant.MonthFormat)})
		require.NoError(t, err)

		return res
	}

	book := func() dto.SessionResponse {
		res := month()
		assert.Contains(t, res.AvailableDays, date)

		_, err := svc.SelectDate(ctx, res.ID, dto.DateRequest{Date: date})
		require.NoError(t, err)

		res, err = svc.Next(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, int(wizard.StepTimeSelect), res.Step)

		return res
	}

	first := book()
	require.Len(t, first.Slots, 1)
	assert.Equal(t, 1, first.Slots[0].Remaining)

	_, err := svc.SelectSlot(ctx, first.ID, dto.SlotRequest{SlotStart: first.Slots[0].Start})
	require.NoError(t, err)

	res, err := svc.Next(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepCustomerDetails), res.Step)

	form := validForm()
	_, err = svc.SetCustomer(ctx, first.ID, nil, dto.CustomerRequest{Form: &form})
	require.NoError(t, err)

	res, err = svc.Confirm(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int(wizard.StepConfirmed), res.Step)
	assert.Equal(t, "appt-1", res.AppointmentID)

	require.Len(t, created, 1)
	assert.Equal(t, "loc-b", created[0].DealershipID)
	assert.True(t, created[0].SlotStart.Equal(start))

	second := month()
	assert.NotContains(t, second.AvailableDays, date)

	_, err = svc.SelectDate(ctx, second.ID, dto.DateRequest{Date: date})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	slots, err := availability.DaySlots(ctx, tenant, "loc-b", day, "UTC")
	require.NoError(t, err)
	assert.Empty(t, slots)
}
