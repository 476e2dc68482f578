package invoker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
)

var tagEndpoint = model.Endpoint{
	ID: "accounts.tags", Method: "POST", Path: "/admin/accounts/{id}/tags",
	Fields: []model.Field{
		{Name: "id", Kind: model.FieldText},
		{Name: "action", Kind: model.FieldSelect, InQuery: true},
		{Name: "tags", Kind: model.FieldText},
	},
}

func TestBuildRequestPartition(t *testing.T) {
	req := BuildRequest(tagEndpoint, map[string]string{
		"id":     "acc1",
		"action": "add",
		"tags":   "vip,aml",
	})

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "/admin/accounts/acc1/tags?action=add", req.URL)
	require.NotNil(t, req.Body)
	assert.Equal(t, map[string]string{"tags": "vip,aml"}, req.Body)
}

func TestBuildRequestPathParamNeverInQueryOrBody(t *testing.T) {
	d := model.Endpoint{
		ID: "x", Method: "POST", Path: "/admin/things/{id}",
		Fields: []model.Field{
			// InQuery is ignored for path placeholders.
			{Name: "id", Kind: model.FieldText, InQuery: true},
			{Name: "note", Kind: model.FieldText},
		},
	}

	req := BuildRequest(d, map[string]string{"id": "t1", "note": "hi"})

	assert.Equal(t, "/admin/things/t1", req.URL)
	assert.Equal(t, map[string]string{"note": "hi"}, req.Body)
}

func TestBuildRequestEmptyValuesOmitted(t *testing.T) {
	req := BuildRequest(tagEndpoint, map[string]string{
		"id":     "acc1",
		"action": "",
		"tags":   "",
	})

	assert.Equal(t, "/admin/accounts/acc1/tags", req.URL)
	assert.Nil(t, req.Body)
}

func TestBuildRequestMissingPlaceholderValue(t *testing.T) {
	req := BuildRequest(tagEndpoint, map[string]string{"tags": "vip"})

	// Placeholder name substituted literally; the URL stays well-formed.
	assert.Equal(t, "/admin/accounts/id/tags", req.URL)
	assert.Equal(t, map[string]string{"tags": "vip"}, req.Body)
}

func TestBuildRequestEncoding(t *testing.T) {
	d := model.Endpoint{
		ID: "ops.search", Method: "GET", Path: "/admin/search",
		Fields: []model.Field{
			{Name: "q", Kind: model.FieldText, InQuery: true},
		},
	}

	req := BuildRequest(d, map[string]string{"q": "maria santos & co"})
	assert.Equal(t, "/admin/search?q=maria+santos+%26+co", req.URL)
}

func TestBuildRequestPathEscaping(t *testing.T) {
	req := BuildRequest(tagEndpoint, map[string]string{"id": "acc/1"})
	assert.Equal(t, "/admin/accounts/acc%2F1/tags", req.URL)
}

func TestBuildRequestGETNeverCarriesBody(t *testing.T) {
	d := model.Endpoint{
		ID: "accounts.get", Method: "GET", Path: "/admin/accounts/{id}",
		Fields: []model.Field{
			{Name: "id", Kind: model.FieldText},
			{Name: "extra", Kind: model.FieldText},
		},
	}

	req := BuildRequest(d, map[string]string{"id": "acc1", "extra": "x"})
	assert.Nil(t, req.Body)
}

func TestBuildRequestMultipleQueryParams(t *testing.T) {
	d := model.Endpoint{
		ID: "transactions.list", Method: "GET", Path: "/admin/transactions",
		Fields: []model.Field{
			{Name: "account_id", Kind: model.FieldText, InQuery: true},
			{Name: "status", Kind: model.FieldSelect, InQuery: true},
			{Name: "limit", Kind: model.FieldNumber, InQuery: true},
		},
	}

	req := BuildRequest(d, map[string]string{
		"account_id": "acc1",
		"status":     "settled",
		"limit":      "50",
	})

	assert.Equal(t, "/admin/transactions?account_id=acc1&status=settled&limit=50", req.URL)
}

func TestBuildRequestNoQueryNoQuestionMark(t *testing.T) {
	d := model.Endpoint{
		ID: "webhooks.list", Method: "GET", Path: "/admin/webhooks",
		Fields: []model.Field{},
	}

	req := BuildRequest(d, map[string]string{})
	assert.Equal(t, "/admin/webhooks", req.URL)
}
