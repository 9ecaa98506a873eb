package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/availability/reconciler"
	customerModel "github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	EntityName = "appointment"
	TableName  = "appointments"
)

const (
	FieldID            = "id"
	FieldClientID      = "client_id"
	FieldDealershipID  = "dealership_id"
	FieldCustomerUUID  = "customer_uuid"
	FieldCustomerIntID = "customer_int_id"
	FieldSlotStart     = "slot_start"
	FieldStatus        = "status"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

// ActiveStatuses are the statuses that hold a slot.
var ActiveStatuses = []string{string(StatusPending), string(StatusConfirmed)}

type CustomerRef = customerModel.Ref

type ContactSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Appointment is a row of the appointments table or of the enriched
// listing view. Columns absent from the selected profile stay zero.
type Appointment struct {
	ID                string         `db:"id"`
	ClientID          string         `db:"client_id"`
	DealershipID      string         `db:"dealership_id"`
	VehicleID         *string        `db:"vehicle_id"`
	CustomerUUID      *string        `db:"customer_uuid"`
	CustomerIntID     *int64         `db:"customer_int_id"`
	SlotStart         time.Time      `db:"slot_start"`
	SlotEnd           time.Time      `db:"slot_end"`
	Status            Status         `db:"status"`
	Channel           *string        `db:"channel"`
	Notes             *string        `db:"notes"`
	Contact           types.JSONText `db:"contact_snapshot"`
	DealershipName    *string        `db:"dealership_name"`
	DealershipAddress *string        `db:"dealership_address"`
	VehicleBrand      *string        `db:"vehicle_brand"`
	VehicleModel      *string        `db:"vehicle_model"`
	VehicleYear       *int           `db:"vehicle_year"`
}

// CanCancel reports whether the appointment is still active and starts
// strictly after now, using the same minute cutoff as slot offering.
func (a Appointment) CanCancel(now time.Time, loc *time.Location) bool {
	if a.Status == StatusCanceled {
		return false
	}

	return reconciler.IsFutureSlot(a.SlotStart, now, loc)
}

func (a Appointment) Snapshot() ContactSnapshot {
	var snapshot ContactSnapshot
	if len(a.Contact) == 0 {
		return snapshot
	}

	_ = json.Unmarshal(a.Contact, &snapshot)

	return snapshot
}

// VehicleLabel renders "Brand Model Year" from whatever parts are known.
func (a Appointment) VehicleLabel() string {
	parts := []string{}

	if a.VehicleBrand != nil && *a.VehicleBrand != "" {
		parts = append(parts, *a.VehicleBrand)
	}

	if a.VehicleModel != nil && *a.VehicleModel != "" {
		parts = append(parts, *a.VehicleModel)
	}

	if a.VehicleYear != nil && *a.VehicleYear > 0 {
		parts = append(parts, fmt.Sprint(*a.VehicleYear))
	}

	return strings.Join(parts, " ")
}

// BelongsTo reports whether any of refs owns the appointment.
func (a Appointment) BelongsTo(refs ...customerModel.Ref) bool {
	for _, ref := range refs {
		if id, ok := ref.UUID(); ok && a.CustomerUUID != nil && *a.CustomerUUID == id {
			return true
		}

		if id, ok := ref.Integer(); ok && a.CustomerIntID != nil && *a.CustomerIntID == id {
			return true
		}
	}

	return false
}

// CreateParams carries exactly one customer id representation.
type CreateParams struct {
	ClientID     string
	DealershipID string
	VehicleID    *string
	Customer     customerModel.Ref
	SlotStart    time.Time
	SlotEnd      time.Time
	Channel      string
	Notes        *string
	Contact      ContactSnapshot
	// BookingRef makes the create idempotent: repeating a ref returns the
	// appointment it already created.
	BookingRef string
}

// ListFilter selects a customer's appointments from start onwards.
type ListFilter struct {
	ClientID  string
	Customers []customerModel.Ref
	From      time.Time
}
