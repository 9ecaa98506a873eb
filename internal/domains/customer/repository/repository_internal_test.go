package repository

import (
	"encoding/json"
	"testing"

	"github.com/NikQuila/website-gocar-sub000/internal/domains/customer/model"

	"github.com/stretchr/testify/assert"
)

func TestRefFromJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind model.RefKind
		wantID   string
		wantErr  bool
	}{
		{
			name:     "uuid string",
			raw:      `"6f1c9a56-7a2c-4c1e-9c3b-1b8a4f0f7e11"`,
			wantKind: model.RefKindUUID,
			wantID:   "6f1c9a56-7a2c-4c1e-9c3b-1b8a4f0f7e11",
		},
		{
			name:     "json number",
			raw:      `1042`,
			wantKind: model.RefKindInteger,
			wantID:   "1042",
		},
		{
			name:     "numeric string",
			raw:      `"77"`,
			wantKind: model.RefKindInteger,
			wantID:   "77",
		},
		{
			name:    "object",
			raw:     `{"id":1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := refFromJSON(json.RawMessage(tt.raw))

			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidRef)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantKind, ref.Kind())
			assert.Equal(t, tt.wantID, ref.String())
		})
	}
}
