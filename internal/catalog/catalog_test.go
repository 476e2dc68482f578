package catalog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

func TestDescriptorsAreWellFormed(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]bool)
	for _, e := range all {
		assert.False(t, seen[e.ID], "duplicate descriptor id %q", e.ID)
		seen[e.ID] = true

		assert.Contains(t, []string{"GET", "POST", "PATCH", "DELETE"}, e.Method, "descriptor %q", e.ID)
		assert.True(t, len(e.Path) > 0 && e.Path[0] == '/', "descriptor %q path %q", e.ID, e.Path)

		fields := make(map[string]model.Field)
		for _, f := range e.Fields {
			assert.NotEmpty(t, f.Name, "descriptor %q has unnamed field", e.ID)
			fields[f.Name] = f
		}

		// Every path placeholder must be backed by a field, and a path
		// field cannot also be a query field.
		for _, m := range placeholderPattern.FindAllStringSubmatch(e.Path, -1) {
			f, ok := fields[m[1]]
			require.True(t, ok, "descriptor %q placeholder %q has no field", e.ID, m[1])
			assert.False(t, f.InQuery, "descriptor %q field %q is both path and query", e.ID, m[1])
		}
	}
}

func TestSensitiveDescriptors(t *testing.T) {
	sensitive := []string{
		"accounts.block",
		"accounts.unblock",
		"accounts.close",
		"kyc.approve",
		"kyc.reject",
		"transactions.reverse",
		"flows.restart",
		"flows.cancel",
		"ops.cache_flush",
		"ops.maintenance",
	}
	for _, id := range sensitive {
		e, ok := Find(id)
		require.True(t, ok, "missing descriptor %q", id)
		assert.True(t, e.Sensitive, "descriptor %q should be sensitive", id)
		assert.NotEqual(t, "GET", e.Method, "sensitive descriptor %q must mutate", id)
	}
}

func TestFind(t *testing.T) {
	e, ok := Find("accounts.tags")
	require.True(t, ok)
	assert.Equal(t, "POST", e.Method)
	assert.Equal(t, "/admin/accounts/{id}/tags", e.Path)

	_, ok = Find("accounts.nope")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].ID = "mutated"
	assert.NotEqual(t, "mutated", All()[0].ID)
}
