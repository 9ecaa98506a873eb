package timezone_test

import (
	"testing"
	"time"

	"github.com/NikQuila/website-gocar-sub000/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.Default(), now.Location())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "known zone",
			input:    "America/Santiago",
			expected: "America/Santiago",
		},
		{
			name:     "empty falls back to application zone",
			input:    "",
			expected: timezone.Default().String(),
		},
		{
			name:     "unknown falls back to application zone",
			input:    "Mars/Olympus",
			expected: timezone.Default().String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Resolve(tt.input).String())
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("CLT", -3*60*60)
	input := time.Date(2025, 3, 10, 2, 30, 0, 0, time.UTC) // 23:30 on the 9th in CLT

	got := timezone.StartOfDay(input, loc)

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), got)
}
