package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapEnvelope(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "data wrapper",
			raw:  `{"data":[{"id":"c1"}]}`,
			want: `[{"id":"c1"}]`,
		},
		{
			name: "status data error wrapper",
			raw:  `{"status":"ok","data":{"id":"c1"},"error":null}`,
			want: `{"id":"c1"}`,
		},
		{
			name: "bare array",
			raw:  `[{"id":"c1"},{"id":"c2"}]`,
			want: `[{"id":"c1"},{"id":"c2"}]`,
		},
		{
			name: "bare object without envelope keys",
			raw:  `{"id":"c1","name":"Maria"}`,
			want: `{"id":"c1","name":"Maria"}`,
		},
		{
			name: "empty error string treated as absent",
			raw:  `{"status":"ok","data":{"id":"c1"},"error":""}`,
			want: `{"id":"c1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnwrapEnvelope([]byte(tt.raw))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestUnwrapEnvelopeError(t *testing.T) {
	_, err := UnwrapEnvelope([]byte(`{"status":"error","error":"unauthorized"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
