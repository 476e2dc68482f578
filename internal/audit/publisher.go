package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
)

const (
	// StreamName is the name of the invocation audit stream.
	StreamName = "AUDIT"

	// SubjectPrefix is the prefix for all audit subjects.
	SubjectPrefix = "audit"
)

// Publisher writes invocation records to the audit stream.
type Publisher struct {
	client *Client
}

// NewPublisher creates a publisher on the given client.
func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

// EnsureStream ensures the audit stream exists. Audit entries are immutable:
// delete and purge are denied on the stream.
func (p *Publisher) EnsureStream(ctx context.Context) error {
	js := p.client.JetStream()

	_, err := js.Stream(ctx, StreamName)
	if err == nil {
		return nil
	}

	_, err = js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      2 * 365 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Compression: jetstream.S2Compression,
		DenyDelete:  true,
		DenyPurge:   true,
		Description: "Admin endpoint invocation audit trail",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}
	return nil
}

// InvocationSubject returns the subject for an invocation record. An empty
// tenant would produce an invalid subject token, so it maps to "unknown".
func InvocationSubject(tenantID, endpointID string) string {
	if tenantID == "" {
		tenantID = "unknown"
	}
	return fmt.Sprintf("%s.%s.invoke.%s", SubjectPrefix, tenantID, endpointID)
}

// PublishInvocation publishes one invocation record.
func (p *Publisher) PublishInvocation(ctx context.Context, rec *model.InvocationRecord) (uint64, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal record: %w", err)
	}

	ack, err := p.client.JetStream().Publish(ctx, InvocationSubject(rec.TenantID, rec.EndpointID), data)
	if err != nil {
		return 0, fmt.Errorf("failed to publish record: %w", err)
	}
	return ack.Sequence, nil
}
