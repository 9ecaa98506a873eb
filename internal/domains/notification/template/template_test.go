package template_test

import (
	"testing"
	"time"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/notification/model"
	"github.com/NikQuila/website-gocar-sub000/internal/domains/notification/template"

	"github.com/stretchr/testify/assert"
)

func sample() template.AppointmentData {
	start := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	return template.AppointmentData{
		AppointmentID:  "appt-1",
		CustomerName:   "Ana Soto",
		CustomerEmail:  "ana@b.cl",
		DealershipName: "Branch B",
		Vehicle:        "Toyota Corolla 2021",
		Start:          start,
		End:            start.Add(30 * time.Minute),
		Reason:         "<b>sick</b>",
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		kind        model.Kind
		audience    model.Audience
		wantSubject string
		contains    []string
		absent      []string
	}{
		{
			name:        "customer cancellation escapes the reason",
			kind:        model.KindCancellation,
			audience:    model.AudienceCustomer,
			wantSubject: "Your test drive was cancelled",
			contains:    []string{"Hi Ana Soto", "Friday 14 March 2025", "10:00", "&lt;b&gt;sick&lt;/b&gt;"},
			absent:      []string{"Contact:"},
		},
		{
			name:        "seller cancellation shows the contact",
			kind:        model.KindCancellation,
			audience:    model.AudienceSeller,
			wantSubject: "Test drive for your vehicle was cancelled",
			contains:    []string{"Ana Soto cancelled a test drive", "Contact: ana@b.cl", "Toyota Corolla 2021"},
		},
		{
			name:        "tenant confirmation",
			kind:        model.KindConfirmation,
			audience:    model.AudienceTenant,
			wantSubject: "New test drive booking",
			contains:    []string{"New test drive booked by Ana Soto", "from 10:00 to 10:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := template.Render(tt.kind, tt.audience, "to@b.cl", sample())

			assert.NoError(t, err)
			assert.Equal(t, tt.wantSubject, email.Subject)
			assert.Equal(t, []string{"to@b.cl"}, email.To)
			assert.Equal(t, "appt-1", email.AppointmentID)

			for _, fragment := range tt.contains {
				assert.Contains(t, email.HTML, fragment)
			}

			for _, fragment := range tt.absent {
				assert.NotContains(t, email.HTML, fragment)
			}
		})
	}
}

func TestRender_UnknownAudience(t *testing.T) {
	_, err := template.Render(model.KindCancellation, model.Audience("robot"), "to@b.cl", sample())

	assert.Error(t, err)
}
