package template

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/notification/model"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"date":  func(t time.Time) string { return t.Format("Monday 02 January 2006") },
	"clock": func(t time.Time) string { return t.Format("15:04") },
}).ParseFS(files, "templates/*.html"))

// AppointmentData is what every appointment email can show.
type AppointmentData struct {
	AppointmentID     string
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	DealershipName    string
	DealershipAddress string
	Vehicle           string
	Start             time.Time
	End               time.Time
	Note              string
	Reason            string
	InviteURL         string
}

type view struct {
	Audience model.Audience
	AppointmentData
}

var subjects = map[model.Kind]map[model.Audience]string{
	model.KindConfirmation: {
		model.AudienceCustomer: "Your test drive is booked",
		model.AudienceTenant:   "New test drive booking",
		model.AudienceSeller:   "New test drive for your vehicle",
	},
	model.KindCancellation: {
		model.AudienceCustomer: "Your test drive was cancelled",
		model.AudienceTenant:   "Test drive cancelled",
		model.AudienceSeller:   "Test drive for your vehicle was cancelled",
	},
}

// Render builds the email of kind for audience addressed to to.
func Render(kind model.Kind, audience model.Audience, to string, data AppointmentData) (model.Email, error) {
	subject, ok := subjects[kind][audience]
	if !ok {
		return model.Email{}, fmt.Errorf("no template for %s/%s", kind, audience)
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(kind)+".html", view{Audience: audience, AppointmentData: data}); err != nil {
		return model.Email{}, fmt.Errorf("failed to render %s email: %w", kind, err)
	}

	return model.Email{
		AppointmentID: data.AppointmentID,
		Kind:          kind,
		Audience:      audience,
		To:            []string{to},
		Subject:       subject,
		HTML:          body.String(),
	}, nil
}
