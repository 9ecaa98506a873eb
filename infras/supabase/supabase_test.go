package supabase_test

import (
	"errors"
	"testing"

	"github.com/NikQuila/website-gocar-sub000/infras/supabase"

	"github.com/stretchr/testify/assert"
)

type createdRow struct {
	ID string `json:"id"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		out      any
		wantCode string
		wantErr  error
		check    func(t *testing.T, out any)
	}{
		{
			name: "object result",
			body: `{"id":"a1"}`,
			out:  &createdRow{},
			check: func(t *testing.T, out any) {
				assert.Equal(t, "a1", out.(*createdRow).ID)
			},
		},
		{
			name: "array result",
			body: `[{"id":"a1"},{"id":"a2"}]`,
			out:  &[]createdRow{},
			check: func(t *testing.T, out any) {
				assert.Len(t, *out.(*[]createdRow), 2)
			},
		},
		{
			name:     "missing column envelope",
			body:     `{"code":"42703","details":null,"hint":null,"message":"column appointments.vehicle_id does not exist"}`,
			out:      &createdRow{},
			wantCode: "42703",
		},
		{
			name:     "invalid id representation",
			body:     `{"code":"22P02","message":"invalid input syntax for type uuid: \"42\""}`,
			out:      &createdRow{},
			wantCode: "22P02",
		},
		{
			name:     "error envelope without output",
			body:     `{"code":"PGRST202","message":"Could not find the function"}`,
			wantCode: "PGRST202",
		},
		{
			name:    "transport failure text",
			body:    `Post "https://x.supabase.co/rest/v1/rpc/create": dial tcp: timeout`,
			out:     &createdRow{},
			wantErr: supabase.ErrUnreadableResponse,
		},
		{
			name:    "empty body with expected output",
			body:    "  ",
			out:     &createdRow{},
			wantErr: supabase.ErrUnreadableResponse,
		},
		{
			name:    "empty body without output",
			body:    "",
			wantErr: supabase.ErrUnreadableResponse,
		},
		{
			name:    "gateway page without output",
			body:    "<html>502 Bad Gateway</html>",
			wantErr: supabase.ErrUnreadableResponse,
		},
		{
			name:    "gateway message without code",
			body:    `{"message":"Invalid API key","hint":"Double check your Supabase anon or service_role API key."}`,
			wantErr: &supabase.Error{},
		},
		{
			name: "result decoded without output",
			body: `{"id":"a1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := supabase.Decode("create_appointment_uuid", tt.body, tt.out)

			switch {
			case tt.wantCode != "":
				var rpcErr *supabase.Error
				assert.True(t, errors.As(err, &rpcErr))
				assert.Equal(t, tt.wantCode, rpcErr.Code)
				assert.Equal(t, "create_appointment_uuid", rpcErr.Function)
				assert.True(t, supabase.HasCode(err, tt.wantCode))
			case tt.wantErr != nil:
				var rpcErr *supabase.Error
				if errors.As(tt.wantErr, &rpcErr) {
					assert.True(t, errors.As(err, &rpcErr))
					assert.Empty(t, rpcErr.Code)

					return
				}

				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, tt.out)
				}
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := &supabase.Error{Function: "cancel_appointment", Code: "23505", Message: "duplicate"}

	assert.True(t, supabase.HasCode(err, "23P01", "23505"))
	assert.False(t, supabase.HasCode(err, "42703"))
	assert.False(t, supabase.HasCode(errors.New("plain"), "23505"))
}
