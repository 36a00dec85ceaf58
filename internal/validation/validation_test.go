package validation

import (
	"testing"

	"shopdemo/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectIDTag(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     model.OrderRequest
		wantErr bool
	}{
		{
			name: "Valid request",
			req: model.OrderRequest{
				User:       "64b0c1a2e4b0f1a2b3c4d5e6",
				Products:   []string{"64b0c1a2e4b0f1a2b3c4d5e7"},
				TotalPrice: 10,
			},
			wantErr: false,
		},
		{
			name: "Empty products allowed",
			req: model.OrderRequest{
				User:       "64b0c1a2e4b0f1a2b3c4d5e6",
				Products:   []string{},
				TotalPrice: 0,
			},
			wantErr: false,
		},
		{
			name: "Malformed user id",
			req: model.OrderRequest{
				User:       "not-an-object-id",
				TotalPrice: 10,
			},
			wantErr: true,
		},
		{
			name: "Malformed product id",
			req: model.OrderRequest{
				User:       "64b0c1a2e4b0f1a2b3c4d5e6",
				Products:   []string{"64b0c1a2e4b0f1a2b3c4d5e7", "nope"},
				TotalPrice: 10,
			},
			wantErr: true,
		},
		{
			name: "Missing user",
			req: model.OrderRequest{
				TotalPrice: 10,
			},
			wantErr: true,
		},
		{
			name: "Negative total",
			req: model.OrderRequest{
				User:       "64b0c1a2e4b0f1a2b3c4d5e6",
				TotalPrice: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUserRequestRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(model.UserRequest{Name: "Ada", Email: "ada@example.com"}))
	assert.Error(t, v.Struct(model.UserRequest{Name: "Ada", Email: "not-an-email"}))
	assert.Error(t, v.Struct(model.UserRequest{Email: "ada@example.com"}))
}
