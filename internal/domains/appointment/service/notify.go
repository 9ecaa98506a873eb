package service

import (
	"context"
	"path"
	"time"

	"github.com/NikQuila/website-gocar-sub000/infras/s3"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/invite"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/appointment/model"
	notificationModel "github.com/NikQuila/website-gocar-sub000/internal/domains/notification/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/notification/template"
	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/rs/zerolog/log"
)

type recipient struct {
	audience notificationModel.Audience
	resolve  func(ctx context.Context) (string, error)
}

func inviteKey(appointmentID string) string {
	return path.Join(inviteDirectory, invite.FileName(appointmentID))
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func (s *serviceImpl) tenantRecipient(clientID string) recipient {
	return recipient{
		audience: notificationModel.AudienceTenant,
		resolve: func(ctx context.Context) (string, error) {
			tenant, err := s.dealerships.Tenant(ctx, clientID)

			return deref(tenant.ContactEmail), err
		},
	}
}

func (s *serviceImpl) sellerRecipient(vehicleID *string) recipient {
	return recipient{
		audience: notificationModel.AudienceSeller,
		resolve: func(ctx context.Context) (string, error) {
			if vehicleID == nil || *vehicleID == "" {
				return "", nil
			}

			vehicle, err := s.dealerships.Vehicle(ctx, *vehicleID)

			return deref(vehicle.SellerEmail), err
		},
	}
}

func customerRecipient(email string) recipient {
	return recipient{
		audience: notificationModel.AudienceCustomer,
		resolve: func(context.Context) (string, error) {
			return email, nil
		},
	}
}

// notify sends to every recipient from its own goroutine. A lookup, render
// or delivery failure of one recipient is logged and affects no other.
func (s *serviceImpl) notify(ctx context.Context, kind notificationModel.Kind, data template.AppointmentData, recipients ...recipient) {
	ctx = context.WithoutCancel(ctx)

	for _, r := range recipients {
		go func() {
			logger := log.With().
				Str("appointment_id", data.AppointmentID).
				Str("kind", string(kind)).
				Str("audience", string(r.audience)).
				Logger()

			to, err := r.resolve(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("failed to resolve notification recipient")

				return
			}

			if to == "" {
				logger.Debug().Msg("no address on file, notification skipped")

				return
			}

			email, err := template.Render(kind, r.audience, to, data)
			if err != nil {
				logger.Error().Err(err).Msg("failed to render notification")

				return
			}

			if res := s.notifier.Send(ctx, email); !res.Success {
				logger.Warn().Str("error", res.Error).Msg("notification not sent")
			}
		}()
	}
}

func (s *serviceImpl) notifyCancellation(ctx context.Context, clientID string, appt model.Appointment, reason string, loc *time.Location) {
	contact := appt.Snapshot()

	data := template.AppointmentData{
		AppointmentID:     appt.ID,
		CustomerName:      contact.Name,
		CustomerEmail:     contact.Email,
		CustomerPhone:     contact.Phone,
		DealershipName:    deref(appt.DealershipName),
		DealershipAddress: deref(appt.DealershipAddress),
		Vehicle:           appt.VehicleLabel(),
		Start:             appt.SlotStart.In(loc),
		End:               appt.SlotEnd.In(loc),
		Reason:            reason,
	}

	if data.DealershipName == "" {
		dealership, err := s.dealerships.Find(ctx, clientID, appt.DealershipID)
		if err != nil {
			log.Warn().Err(err).Str("appointment_id", appt.ID).Str("dealership_id", appt.DealershipID).Msg("announcing cancellation without dealership details")
		} else {
			data.DealershipName = dealership.Name
			data.DealershipAddress = dealership.Address
		}
	}

	s.notify(ctx, notificationModel.KindCancellation, data,
		customerRecipient(contact.Email),
		s.tenantRecipient(clientID),
		s.sellerRecipient(appt.VehicleID),
	)
}

// Announce publishes the calendar invite and the confirmation emails of a
// new appointment in the background.
func (s *serviceImpl) Announce(ctx context.Context, appointmentID string, params model.CreateParams) {
	ctx = context.WithoutCancel(ctx)

	go func() {
		ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Announce")
		defer scope.End()

		loc := s.dealerships.Location(ctx, params.ClientID)

		data := template.AppointmentData{
			AppointmentID: appointmentID,
			CustomerName:  params.Contact.Name,
			CustomerEmail: params.Contact.Email,
			CustomerPhone: params.Contact.Phone,
			Start:         params.SlotStart.In(loc),
			End:           params.SlotEnd.In(loc),
			Note:          deref(params.Notes),
		}

		dealership, err := s.dealerships.Find(ctx, params.ClientID, params.DealershipID)
		if err != nil {
			log.Warn().Err(err).Str("appointment_id", appointmentID).Str("dealership_id", params.DealershipID).Msg("announcing without dealership details")
		} else {
			data.DealershipName = dealership.Name
			data.DealershipAddress = dealership.Address
		}

		if params.VehicleID != nil {
			vehicle, err := s.dealerships.Vehicle(ctx, *params.VehicleID)
			if err != nil {
				log.Warn().Err(err).Str("appointment_id", appointmentID).Str("vehicle_id", *params.VehicleID).Msg("announcing without vehicle details")
			} else {
				data.Vehicle = model.Appointment{VehicleBrand: vehicle.Brand, VehicleModel: vehicle.Model, VehicleYear: vehicle.Year}.VehicleLabel()
			}
		}

		tenant, err := s.dealerships.Tenant(ctx, params.ClientID)
		if err != nil {
			log.Warn().Err(err).Str("appointment_id", appointmentID).Str("client_id", params.ClientID).Msg("calendar invite has no organizer")
		}

		ics := invite.Build(invite.Event{
			AppointmentID: appointmentID,
			Summary:       "Test drive at " + data.DealershipName,
			Description:   data.Vehicle,
			Location:      data.DealershipAddress,
			Organizer:     deref(tenant.ContactEmail),
			Start:         params.SlotStart,
			End:           params.SlotEnd,
			Created:       timezone.Now(),
		})

		url, err := s.s3.Put(ctx, s.cfg.Availability.InviteBucketName, s3.Object{
			Key:         inviteKey(appointmentID),
			ContentType: constant.ContentTypeCalendar,
			FileName:    "test-drive.ics",
			Body:        ics,
		})
		if err != nil {
			scope.TraceError(err)
			log.Warn().Err(err).Str("appointment_id", appointmentID).Msg("failed to upload calendar invite")
		}

		data.InviteURL = url

		s.notify(ctx, notificationModel.KindConfirmation, data,
			customerRecipient(params.Contact.Email),
			s.tenantRecipient(params.ClientID),
		)
	}()
}
