// Package catalog holds the static descriptor table for the upstream admin
// API. Descriptors are plain data: the invoker derives requests from them and
// the dashboard derives its forms from them. Nothing here is mutated at
// runtime.
package catalog

import "github.com/bahuan-coding/carla-ops-api/internal/model"

// Find returns the descriptor with the given id.
func Find(id string) (model.Endpoint, bool) {
	for _, e := range endpoints {
		if e.ID == id {
			return e, true
		}
	}
	return model.Endpoint{}, false
}

// All returns the full endpoint catalog.
func All() []model.Endpoint {
	out := make([]model.Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}

var endpoints = []model.Endpoint{
	// Accounts
	{
		ID: "accounts.list", Method: "GET", Path: "/admin/accounts",
		Description: "List customer accounts",
		Fields: []model.Field{
			{Name: "status", Label: "Status", Kind: model.FieldSelect, Options: []string{"active", "blocked", "pending", "closed"}, InQuery: true},
			{Name: "limit", Label: "Limit", Kind: model.FieldNumber, Default: "20", InQuery: true},
			{Name: "offset", Label: "Offset", Kind: model.FieldNumber, Default: "0", InQuery: true},
		},
	},
	{
		ID: "accounts.get", Method: "GET", Path: "/admin/accounts/{id}",
		Description: "Fetch one account by id",
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText, Placeholder: "acc_..."},
		},
	},
	{
		ID: "accounts.update", Method: "PATCH", Path: "/admin/accounts/{id}",
		Description: "Update account profile fields",
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText},
			{Name: "name", Label: "Display name", Kind: model.FieldText},
			{Name: "email", Label: "Email", Kind: model.FieldText},
			{Name: "phone", Label: "Phone", Kind: model.FieldText, Placeholder: "+502..."},
		},
	},
	{
		ID: "accounts.tags", Method: "POST", Path: "/admin/accounts/{id}/tags",
		Description: "Add or remove account tags",
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText},
			{Name: "action", Label: "Action", Kind: model.FieldSelect, Options: []string{"add", "remove"}, InQuery: true},
			{Name: "tags", Label: "Tags (comma separated)", Kind: model.FieldText, Placeholder: "vip,aml"},
		},
	},
	{
		ID: "accounts.block", Method: "POST", Path: "/admin/accounts/{id}/block",
		Description: "Block an account and freeze its balance",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText},
			{Name: "reason", Label: "Reason", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "accounts.unblock", Method: "POST", Path: "/admin/accounts/{id}/unblock",
		Description: "Unblock a previously blocked account",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText},
			{Name: "reason", Label: "Reason", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "accounts.close", Method: "POST", Path: "/admin/accounts/{id}/close",
		Description: "Permanently close an account",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText},
			{Name: "reason", Label: "Reason", Kind: model.FieldTextarea},
			{Name: "notify_customer", Label: "Notify customer", Kind: model.FieldBoolean, Default: "true"},
		},
	},
	{
		ID: "accounts.balance", Method: "GET", Path: "/admin/accounts/{id}/balance",
		Description: "Fetch current balance and holds",
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText},
		},
	},
	{
		ID: "accounts.statement", Method: "GET", Path: "/admin/accounts/{id}/statement",
		Description: "Fetch account statement for a period",
		Fields: []model.Field{
			{Name: "id", Label: "Account ID", Kind: model.FieldText},
			{Name: "from", Label: "From (YYYY-MM-DD)", Kind: model.FieldText, InQuery: true},
			{Name: "to", Label: "To (YYYY-MM-DD)", Kind: model.FieldText, InQuery: true},
		},
	},

	// Verification / KYC
	{
		ID: "kyc.status", Method: "GET", Path: "/admin/kyc/{account_id}",
		Description: "Fetch KYC verification status",
		Fields: []model.Field{
			{Name: "account_id", Label: "Account ID", Kind: model.FieldText},
		},
	},
	{
		ID: "kyc.documents", Method: "GET", Path: "/admin/kyc/{account_id}/documents",
		Description: "List submitted KYC documents",
		Fields: []model.Field{
			{Name: "account_id", Label: "Account ID", Kind: model.FieldText},
			{Name: "type", Label: "Document type", Kind: model.FieldSelect, Options: []string{"id_front", "id_back", "selfie", "proof_of_address"}, InQuery: true},
		},
	},
	{
		ID: "kyc.approve", Method: "POST", Path: "/admin/kyc/{account_id}/approve",
		Description: "Approve KYC verification",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "account_id", Label: "Account ID", Kind: model.FieldText},
			{Name: "notes", Label: "Reviewer notes", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "kyc.reject", Method: "POST", Path: "/admin/kyc/{account_id}/reject",
		Description: "Reject KYC verification",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "account_id", Label: "Account ID", Kind: model.FieldText},
			{Name: "reason", Label: "Rejection reason", Kind: model.FieldSelect, Options: []string{"document_illegible", "document_expired", "selfie_mismatch", "data_mismatch", "fraud_suspicion"}},
			{Name: "notes", Label: "Reviewer notes", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "kyc.rerun", Method: "POST", Path: "/admin/kyc/{account_id}/rerun",
		Description: "Re-run the automated verification pipeline",
		Fields: []model.Field{
			{Name: "account_id", Label: "Account ID", Kind: model.FieldText},
			{Name: "step", Label: "Step", Kind: model.FieldSelect, Options: []string{"all", "document", "face_match", "sanctions"}, Default: "all"},
		},
	},

	// Transactions
	{
		ID: "transactions.list", Method: "GET", Path: "/admin/transactions",
		Description: "List transactions",
		Fields: []model.Field{
			{Name: "account_id", Label: "Account ID", Kind: model.FieldText, InQuery: true},
			{Name: "status", Label: "Status", Kind: model.FieldSelect, Options: []string{"pending", "settled", "failed", "reversed"}, InQuery: true},
			{Name: "limit", Label: "Limit", Kind: model.FieldNumber, Default: "50", InQuery: true},
		},
	},
	{
		ID: "transactions.get", Method: "GET", Path: "/admin/transactions/{id}",
		Description: "Fetch one transaction",
		Fields: []model.Field{
			{Name: "id", Label: "Transaction ID", Kind: model.FieldText},
		},
	},
	{
		ID: "transactions.reverse", Method: "POST", Path: "/admin/transactions/{id}/reverse",
		Description: "Reverse a settled transaction",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "id", Label: "Transaction ID", Kind: model.FieldText},
			{Name: "reason", Label: "Reason", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "transactions.retry", Method: "POST", Path: "/admin/transactions/{id}/retry",
		Description: "Retry a failed transaction",
		Fields: []model.Field{
			{Name: "id", Label: "Transaction ID", Kind: model.FieldText},
		},
	},

	// Onboarding flows
	{
		ID: "flows.list", Method: "GET", Path: "/admin/flows",
		Description: "List onboarding flows",
		Fields: []model.Field{
			{Name: "state", Label: "State", Kind: model.FieldSelect, Options: []string{"running", "stalled", "completed", "abandoned"}, InQuery: true},
			{Name: "limit", Label: "Limit", Kind: model.FieldNumber, Default: "20", InQuery: true},
		},
	},
	{
		ID: "flows.get", Method: "GET", Path: "/admin/flows/{id}",
		Description: "Fetch one onboarding flow",
		Fields: []model.Field{
			{Name: "id", Label: "Flow ID", Kind: model.FieldText},
		},
	},
	{
		ID: "flows.advance", Method: "POST", Path: "/admin/flows/{id}/advance",
		Description: "Manually advance a stalled flow to the next step",
		Fields: []model.Field{
			{Name: "id", Label: "Flow ID", Kind: model.FieldText},
			{Name: "step", Label: "Target step", Kind: model.FieldText},
			{Name: "notes", Label: "Notes", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "flows.restart", Method: "POST", Path: "/admin/flows/{id}/restart",
		Description: "Restart a flow from the beginning, discarding progress",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "id", Label: "Flow ID", Kind: model.FieldText},
			{Name: "reason", Label: "Reason", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "flows.cancel", Method: "POST", Path: "/admin/flows/{id}/cancel",
		Description: "Cancel a flow",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "id", Label: "Flow ID", Kind: model.FieldText},
			{Name: "reason", Label: "Reason", Kind: model.FieldTextarea},
		},
	},

	// Conversations / messaging
	{
		ID: "conversations.list", Method: "GET", Path: "/admin/conversations",
		Description: "List raw conversation records",
		Fields: []model.Field{
			{Name: "channel", Label: "Channel", Kind: model.FieldSelect, Options: []string{"whatsapp", "web", "phone", "email"}, InQuery: true},
			{Name: "limit", Label: "Limit", Kind: model.FieldNumber, Default: "100", InQuery: true},
		},
	},
	{
		ID: "conversations.get", Method: "GET", Path: "/admin/conversations/{id}",
		Description: "Fetch one conversation record",
		Fields: []model.Field{
			{Name: "id", Label: "Conversation ID", Kind: model.FieldText},
		},
	},
	{
		ID: "conversations.messages", Method: "GET", Path: "/admin/conversations/{id}/messages",
		Description: "List messages in a conversation",
		Fields: []model.Field{
			{Name: "id", Label: "Conversation ID", Kind: model.FieldText},
			{Name: "limit", Label: "Limit", Kind: model.FieldNumber, Default: "50", InQuery: true},
		},
	},
	{
		ID: "conversations.send", Method: "POST", Path: "/admin/conversations/{id}/messages",
		Description: "Send a message as the operations team",
		Fields: []model.Field{
			{Name: "id", Label: "Conversation ID", Kind: model.FieldText},
			{Name: "body", Label: "Message", Kind: model.FieldTextarea},
		},
	},
	{
		ID: "conversations.assign", Method: "POST", Path: "/admin/conversations/{id}/assign",
		Description: "Assign a conversation to a human agent",
		Fields: []model.Field{
			{Name: "id", Label: "Conversation ID", Kind: model.FieldText},
			{Name: "agent", Label: "Agent username", Kind: model.FieldText},
		},
	},
	{
		ID: "conversations.ai", Method: "PATCH", Path: "/admin/conversations/{id}/ai",
		Description: "Toggle the AI assistant for a conversation",
		Fields: []model.Field{
			{Name: "id", Label: "Conversation ID", Kind: model.FieldText},
			{Name: "enabled", Label: "AI enabled", Kind: model.FieldBoolean, Default: "true"},
		},
	},
	{
		ID: "conversations.read", Method: "POST", Path: "/admin/conversations/{id}/read",
		Description: "Mark a conversation as read",
		Fields: []model.Field{
			{Name: "id", Label: "Conversation ID", Kind: model.FieldText},
		},
	},

	// Webhooks
	{
		ID: "webhooks.list", Method: "GET", Path: "/admin/webhooks",
		Description: "List registered webhooks",
		Fields:      []model.Field{},
	},
	{
		ID: "webhooks.create", Method: "POST", Path: "/admin/webhooks",
		Description: "Register a webhook",
		Fields: []model.Field{
			{Name: "url", Label: "Target URL", Kind: model.FieldText, Placeholder: "https://..."},
			{Name: "events", Label: "Events (comma separated)", Kind: model.FieldText, Placeholder: "kyc.approved,transaction.settled"},
			{Name: "active", Label: "Active", Kind: model.FieldBoolean, Default: "true"},
		},
	},
	{
		ID: "webhooks.update", Method: "PATCH", Path: "/admin/webhooks/{id}",
		Description: "Update a webhook",
		Fields: []model.Field{
			{Name: "id", Label: "Webhook ID", Kind: model.FieldText},
			{Name: "url", Label: "Target URL", Kind: model.FieldText},
			{Name: "active", Label: "Active", Kind: model.FieldBoolean},
		},
	},
	{
		ID: "webhooks.test", Method: "POST", Path: "/admin/webhooks/{id}/test",
		Description: "Send a test delivery to a webhook",
		Fields: []model.Field{
			{Name: "id", Label: "Webhook ID", Kind: model.FieldText},
			{Name: "event", Label: "Event", Kind: model.FieldText, Default: "ping"},
		},
	},
	{
		ID: "webhooks.redeliver", Method: "POST", Path: "/admin/webhooks/{id}/redeliver",
		Description: "Redeliver failed webhook events",
		Fields: []model.Field{
			{Name: "id", Label: "Webhook ID", Kind: model.FieldText},
			{Name: "since", Label: "Since (YYYY-MM-DD)", Kind: model.FieldText, InQuery: true},
		},
	},

	// Operational tooling
	{
		ID: "ops.search", Method: "GET", Path: "/admin/search",
		Description: "Search across accounts, flows and conversations",
		Fields: []model.Field{
			{Name: "q", Label: "Query", Kind: model.FieldText, InQuery: true},
			{Name: "scope", Label: "Scope", Kind: model.FieldSelect, Options: []string{"all", "accounts", "flows", "conversations"}, Default: "all", InQuery: true},
		},
	},
	{
		ID: "ops.metrics", Method: "GET", Path: "/admin/metrics/summary",
		Description: "Fetch the operations KPI summary",
		Fields: []model.Field{
			{Name: "period", Label: "Period", Kind: model.FieldSelect, Options: []string{"day", "week", "month"}, Default: "day", InQuery: true},
		},
	},
	{
		ID: "ops.audit", Method: "GET", Path: "/admin/audit",
		Description: "List upstream audit log entries",
		Fields: []model.Field{
			{Name: "actor", Label: "Actor", Kind: model.FieldText, InQuery: true},
			{Name: "limit", Label: "Limit", Kind: model.FieldNumber, Default: "50", InQuery: true},
		},
	},
	{
		ID: "ops.cache_flush", Method: "POST", Path: "/admin/cache/flush",
		Description: "Flush upstream API caches",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "scope", Label: "Scope", Kind: model.FieldSelect, Options: []string{"all", "accounts", "conversations", "flows"}, Default: "all"},
		},
	},
	{
		ID: "ops.maintenance", Method: "POST", Path: "/admin/maintenance",
		Description: "Toggle upstream maintenance mode",
		Sensitive:   true,
		Fields: []model.Field{
			{Name: "enabled", Label: "Enabled", Kind: model.FieldBoolean},
			{Name: "message", Label: "Customer-facing message", Kind: model.FieldTextarea},
		},
	},
}
