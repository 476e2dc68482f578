package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEndpointID(t *testing.T) {
	valid := []string{"accounts.get", "accounts.tags", "ops.cache_flush", "kyc.approve"}
	for _, id := range valid {
		assert.NoError(t, ValidateEndpointID(id), "id %q", id)
	}

	invalid := []string{"", "accounts", "Accounts.Get", "accounts..get", "accounts.get;drop", strings.Repeat("a.b", 30)}
	for _, id := range invalid {
		assert.Error(t, ValidateEndpointID(id), "id %q", id)
	}
}

func TestValidateConversationID(t *testing.T) {
	assert.NoError(t, ValidateConversationID("conv_alpha"))
	assert.NoError(t, ValidateConversationID("demo_maria"))
	assert.Error(t, ValidateConversationID(""))
	assert.Error(t, ValidateConversationID("conv/../etc"))
	assert.Error(t, ValidateConversationID(strings.Repeat("x", 200)))
}

func TestValidateFieldValue(t *testing.T) {
	assert.NoError(t, ValidateFieldValue("vip,aml"))
	assert.NoError(t, ValidateFieldValue(""))
	assert.Error(t, ValidateFieldValue(strings.Repeat("a", 10001)))
	assert.Error(t, ValidateFieldValue(string([]byte{0xff, 0xfe})))
}
