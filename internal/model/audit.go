package model

import "time"

// InvocationRecord is the audit trail entry published for every dispatched
// admin endpoint invocation.
type InvocationRecord struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Actor      string    `json:"actor"`
	EndpointID string    `json:"endpoint_id"`
	Method     string    `json:"method"`
	URL        string    `json:"url"`
	Status     int       `json:"status"`
	OK         bool      `json:"ok"`
	Sensitive  bool      `json:"sensitive"`
	CreatedAt  time.Time `json:"created_at"`
	Sequence   uint64    `json:"sequence,omitempty"`
}
