package model

type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceTenant   Audience = "tenant"
	AudienceSeller   Audience = "seller"
)

type Kind string

const (
	KindConfirmation Kind = "appointment_confirmed"
	KindCancellation Kind = "appointment_cancelled"
)

// Email is the message queued for delivery.
type Email struct {
	AppointmentID string   `json:"appointment_id"`
	Kind          Kind     `json:"kind"`
	Audience      Audience `json:"audience"`
	To            []string `json:"to"`
	Subject       string   `json:"subject"`
	HTML          string   `json:"html"`
}

// Result reports delivery without failing the caller.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
