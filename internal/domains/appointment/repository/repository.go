package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/infras/otel"
	"github.com/NikQuila/website-gocar-sub000/infras/postgres"
	"github.com/NikQuila/website-gocar-sub000/infras/supabase"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model"
	"github.com/NikQuila/website-gocar-sub000/shared"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	gDto "github.com/NikQuila/website-gocar-sub000/shared/dto"
	gRepo "github.com/NikQuila/website-gocar-sub000/shared/repository"
)

const (
	rpcCreateAppointmentUUID = "create_appointment_uuid"
	rpcCreateAppointmentInt  = "create_appointment_int"
	rpcCancelAppointment     = "cancel_appointment"
)

var slotRejectionHints = []string{"capacity", "slot", "full", "overlap"}

type Appointment interface {
	Create(ctx context.Context, params model.CreateParams) (string, error)
	Cancel(ctx context.Context, appointmentID, reason string) error
	List(ctx context.Context, filter model.ListFilter, profile model.QueryProfile) ([]model.Appointment, error)
	BookedStarts(ctx context.Context, dealershipID string, from, to time.Time) ([]time.Time, error)
}

type repositoryImpl struct {
	appointments gRepo.Repository[model.Appointment]
	listing      gRepo.Repository[model.Appointment]
	rpc          supabase.Client
	channel      string
	otel         otel.Otel
}

func New(db *postgres.Connection, rpc supabase.Client, cfg *config.Config, otel otel.Otel) Appointment {
	view := cfg.Availability.ListViewName
	if view == "" {
		view = constant.DefaultListViewName
	}

	channel := cfg.Availability.BookingChannel
	if channel == "" {
		channel = constant.DefaultBookingChannel
	}

	return &repositoryImpl{
		appointments: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, db, otel),
		listing:      gRepo.NewRepository[model.Appointment](model.EntityName, view, db, otel),
		rpc:          rpc,
		channel:      channel,
		otel:         otel,
	}
}

type createParams struct {
	ClientID     string                `json:"p_client_id"`
	DealershipID string                `json:"p_dealership_id"`
	VehicleID    *string               `json:"p_vehicle_id"`
	CustomerID   any                   `json:"p_customer_id"`
	SlotStart    time.Time             `json:"p_slot_start"`
	SlotEnd      time.Time             `json:"p_slot_end"`
	Status       model.Status          `json:"p_status"`
	Channel      string                `json:"p_channel"`
	Notes        *string               `json:"p_notes"`
	Contact      model.ContactSnapshot `json:"p_contact_snapshot"`
	BookingRef   *string               `json:"p_booking_ref"`
}

// classify maps backend error codes onto the appointment sentinels.
func classify(err error) error {
	var rpcErr *supabase.Error
	if !errors.As(err, &rpcErr) {
		return err
	}

	switch {
	case supabase.HasCode(err,
		constant.PqErrorCodeUniqueViolation,
		constant.PqErrorCodeExclusionViolation,
		constant.PqErrorCodeCheckViolation):
		return fmt.Errorf("%w: %w", model.ErrSlotTaken, err)
	case supabase.HasCode(err, constant.PqErrorCodeRaiseException) && mentionsSlot(rpcErr.Message):
		return fmt.Errorf("%w: %w", model.ErrSlotTaken, err)
	case supabase.HasCode(err,
		constant.PqErrorCodeInvalidTextRepresentation,
		constant.PqErrorCodeUndefinedFunction,
		constant.PgrstErrorCodeFunctionNotFound,
		constant.PqErrorCodeNoDataFound,
		constant.PqErrorCodeFkViolation):
		return fmt.Errorf("%w: %w", model.ErrIDMismatch, err)
	default:
		return err
	}
}

func mentionsSlot(message string) bool {
	message = strings.ToLower(message)

	for _, hint := range slotRejectionHints {
		if strings.Contains(message, hint) {
			return true
		}
	}

	return false
}

// idFromJSON accepts a bare id, an object with an id, or a one-row set.
func idFromJSON(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)

	var text string
	if json.Unmarshal(raw, &text) == nil && text != "" {
		return text, nil
	}

	var number json.Number
	if json.Unmarshal(raw, &number) == nil {
		return number.String(), nil
	}

	var row struct {
		ID json.RawMessage `json:"id"`
	}

	var rows []json.RawMessage
	if json.Unmarshal(raw, &rows) == nil {
		if len(rows) == 0 {
			return "", fmt.Errorf("procedure returned no rows: %w", supabase.ErrUnreadableResponse)
		}

		raw = rows[0]
	}

	if err := json.Unmarshal(raw, &row); err != nil || len(row.ID) == 0 {
		return "", fmt.Errorf("procedure returned no id: %w", supabase.ErrUnreadableResponse)
	}

	if json.Unmarshal(row.ID, &text) == nil && text != "" {
		return text, nil
	}

	return strings.Trim(string(row.ID), `"`), nil
}

// Create calls the procedure variant matching the customer ref kind.
func (r *repositoryImpl) Create(ctx context.Context, params model.CreateParams) (id string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	function := rpcCreateAppointmentUUID

	var customerID any

	if uuid, ok := params.Customer.UUID(); ok {
		customerID = uuid
	} else if integer, ok := params.Customer.Integer(); ok {
		function = rpcCreateAppointmentInt
		customerID = integer
	} else {
		return "", fmt.Errorf("create appointment without customer: %w", model.ErrIDMismatch)
	}

	channel := params.Channel
	if channel == "" {
		channel = r.channel
	}

	body := createParams{
		ClientID:     params.ClientID,
		DealershipID: params.DealershipID,
		VehicleID:    params.VehicleID,
		CustomerID:   customerID,
		SlotStart:    params.SlotStart.UTC(),
		SlotEnd:      params.SlotEnd.UTC(),
		Status:       model.StatusPending,
		Channel:      channel,
		Notes:        params.Notes,
		Contact:      params.Contact,
		BookingRef:   shared.OptionalText(params.BookingRef),
	}

	var raw json.RawMessage
	if err = r.rpc.Call(ctx, function, body, &raw); err != nil {
		return "", fmt.Errorf("failed to create appointment: %w", classify(err))
	}

	return idFromJSON(raw)
}

type cancelParams struct {
	AppointmentID string  `json:"p_appointment_id"`
	Reason        *string `json:"p_reason"`
}

func (r *repositoryImpl) Cancel(ctx context.Context, appointmentID, reason string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var optional *string
	if reason != "" {
		optional = &reason
	}

	var raw json.RawMessage

	err = r.rpc.Call(ctx, rpcCancelAppointment, cancelParams{AppointmentID: appointmentID, Reason: optional}, &raw)
	if supabase.HasCode(err, constant.PqErrorCodeNoDataFound) {
		return fmt.Errorf("%w: %w", model.ErrNotFound, err)
	}

	if err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	if _, err = idFromJSON(raw); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	return nil
}

// customersFilter ORs every known representation of the customer.
func customersFilter(table string, refs []model.CustomerRef) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	for idx, ref := range refs {
		if id, ok := ref.UUID(); ok {
			group.Filters = append(group.Filters, gDto.Filter{
				ArgName:  fmt.Sprintf("%s_%d", model.FieldCustomerUUID, idx),
				Field:    model.FieldCustomerUUID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			})
		}

		if id, ok := ref.Integer(); ok {
			group.Filters = append(group.Filters, gDto.Filter{
				ArgName:  fmt.Sprintf("%s_%d", model.FieldCustomerIntID, idx),
				Field:    model.FieldCustomerIntID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			})
		}
	}

	return group
}

// List reads the customer's active appointments from filter.From onwards
// using profile's columns.
func (r *repositoryImpl) List(ctx context.Context, filter model.ListFilter, profile model.QueryProfile) (res []model.Appointment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.List."+profile.Name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	table := r.listing.Table()

	customers := customersFilter(table, filter.Customers)
	if len(customers.Filters) == 0 {
		return []model.Appointment{}, nil
	}

	where := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldClientID, Value: filter.ClientID, Operator: gDto.FilterOperatorEq, Table: table},
			customers,
			gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: table},
			gDto.Filter{Field: model.FieldSlotStart, Value: filter.From.UTC(), Operator: gDto.FilterOperatorGreaterEq, Table: table},
		},
	}

	params := gDto.QueryParams{SortBy: model.FieldSlotStart, SortDir: gDto.SortDirAsc}

	res, err = r.listing.GetAll(ctx, params, where, profile.Columns...)
	if gRepo.IsUndefinedColumn(err) {
		return nil, fmt.Errorf("%w (%s profile): %w", model.ErrMissingColumn, profile.Name, err)
	}

	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return res, nil
}

// BookedStarts returns the start of every active appointment at the
// location within [from, to).
func (r *repositoryImpl) BookedStarts(ctx context.Context, dealershipID string, from, to time.Time) (res []time.Time, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.BookedStarts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldDealershipID, Value: dealershipID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "day_start", Field: model.FieldSlotStart, Value: from.UTC(), Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
			gDto.Filter{ArgName: "day_end", Field: model.FieldSlotStart, Value: to.UTC(), Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.ActiveStatuses, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}

	rows, err := r.appointments.GetAll(ctx, gDto.QueryParams{}, where, model.FieldSlotStart)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	res = make([]time.Time, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.SlotStart)
	}

	return res, nil
}
