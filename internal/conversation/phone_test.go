package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty stays empty", "", ""},
		{"eleven digits", "+50255501111", "+502 555 01111"},
		{"digits only", "50255501111", "+502 555 01111"},
		{"with separators", "+502 5550-1111", "+502 555 01111"},
		{"ten digits", "5025550111", "+502 555 0111"},
		{"thirteen digits splits remainder", "5511987654321", "+551 198 76543-21"},
		{"short number passes through", "555-0111", "555-0111"},
		{"nine digits passes through", "502555011", "502555011"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhone(tt.input))
		})
	}
}
