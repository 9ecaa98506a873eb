package dto

import (
	"time"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model"
)

type VehicleResponse struct {
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
}

type AppointmentResponse struct {
	ID                string                `json:"id"`
	DealershipID      string                `json:"dealership_id"`
	DealershipName    string                `json:"dealership_name,omitempty"`
	DealershipAddress string                `json:"dealership_address,omitempty"`
	VehicleID         *string               `json:"vehicle_id,omitempty"`
	Vehicle           *VehicleResponse      `json:"vehicle,omitempty"`
	SlotStart         time.Time             `json:"slot_start"`
	SlotEnd           time.Time             `json:"slot_end"`
	Status            model.Status          `json:"status"`
	Notes             string                `json:"notes,omitempty"`
	Contact           model.ContactSnapshot `json:"contact"`
	Cancellable       bool                  `json:"cancellable"`
}

func deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}

	return *value
}

func (a *AppointmentResponse) FromModel(m model.Appointment, now time.Time, loc *time.Location) {
	a.ID = m.ID
	a.DealershipID = m.DealershipID
	a.DealershipName = deref(m.DealershipName)
	a.DealershipAddress = deref(m.DealershipAddress)
	a.VehicleID = m.VehicleID
	a.SlotStart = m.SlotStart.In(loc)
	a.SlotEnd = m.SlotEnd.In(loc)
	a.Status = m.Status
	a.Notes = deref(m.Notes)
	a.Contact = m.Snapshot()
	a.Cancellable = m.CanCancel(now, loc)

	if m.VehicleBrand != nil || m.VehicleModel != nil || m.VehicleYear != nil {
		a.Vehicle = &VehicleResponse{
			Brand: deref(m.VehicleBrand),
			Model: deref(m.VehicleModel),
			Year:  deref(m.VehicleYear),
		}
	}
}

type AppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

func (a *AppointmentsResponse) FromModels(models []model.Appointment, now time.Time, loc *time.Location) {
	a.Appointments = make([]AppointmentResponse, 0, len(models))

	for _, m := range models {
		var res AppointmentResponse
		res.FromModel(m, now, loc)
		a.Appointments = append(a.Appointments, res)
	}
}

type CancelRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=2000"`
}
