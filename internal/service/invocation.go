package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bahuan-coding/carla-ops-api/internal/catalog"
	"github.com/bahuan-coding/carla-ops-api/internal/invoker"
	"github.com/bahuan-coding/carla-ops-api/internal/middleware"
	"github.com/bahuan-coding/carla-ops-api/internal/model"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
	"github.com/bahuan-coding/carla-ops-api/pkg/metrics"
)

// ErrEndpointNotFound is returned when the catalog has no such descriptor.
var ErrEndpointNotFound = errors.New("endpoint not found")

// Dispatcher executes one built request for a descriptor.
type Dispatcher interface {
	Invoke(ctx context.Context, d model.Endpoint, values map[string]string) model.InvocationResult
}

// AuditSink records dispatched invocations.
type AuditSink interface {
	PublishInvocation(ctx context.Context, rec *model.InvocationRecord) (uint64, error)
}

// InvocationService composes catalog lookup, the sensitive-action gate, the
// invoker, audit publishing and conversation-cache invalidation.
type InvocationService struct {
	dispatcher    Dispatcher
	gate          *invoker.Gate
	audit         AuditSink
	conversations *ConversationService
	logger        *logger.Logger
}

// NewInvocationService creates an invocation service. audit and conversations
// may be nil; the corresponding side effects are then skipped.
func NewInvocationService(
	dispatcher Dispatcher,
	gate *invoker.Gate,
	audit AuditSink,
	conversations *ConversationService,
	log *logger.Logger,
) *InvocationService {
	return &InvocationService{
		dispatcher:    dispatcher,
		gate:          gate,
		audit:         audit,
		conversations: conversations,
		logger:        log,
	}
}

// Invoke triggers one endpoint invocation. Sensitive descriptors are gated:
// the first trigger arms and dispatches nothing; a confirmed trigger while
// armed fires exactly one request.
func (s *InvocationService) Invoke(ctx context.Context, endpointID string, req model.InvokeRequest) (model.InvokeResponse, error) {
	d, ok := catalog.Find(endpointID)
	if !ok {
		return model.InvokeResponse{}, ErrEndpointNotFound
	}

	for _, v := range req.Values {
		if err := middleware.ValidateFieldValue(v); err != nil {
			return model.InvokeResponse{}, err
		}
	}

	if d.Sensitive && s.gate.Trigger(d.ID, req.Confirm) == invoker.Armed {
		metrics.SensitiveArmsTotal.Inc()
		s.logger.Info("sensitive invocation armed",
			zap.String("endpoint", d.ID),
			zap.String("actor", middleware.GetActor(ctx)),
		)
		return model.InvokeResponse{Armed: true}, nil
	}

	start := time.Now()
	result := s.dispatcher.Invoke(ctx, d, req.Values)

	outcome := "error"
	if result.OK {
		outcome = "ok"
	}
	metrics.RecordInvocation(d.ID, outcome, time.Since(start).Seconds())

	s.publishAudit(ctx, d, req.Values, result)

	if result.OK && d.Method != http.MethodGet && s.conversations != nil {
		s.conversations.Invalidate()
	}

	return model.InvokeResponse{Result: &result}, nil
}

// publishAudit records the dispatched invocation. Audit failures never fail
// the invocation itself.
func (s *InvocationService) publishAudit(ctx context.Context, d model.Endpoint, values map[string]string, result model.InvocationResult) {
	if s.audit == nil {
		return
	}

	rec := &model.InvocationRecord{
		ID:         uuid.Must(uuid.NewV7()).String(),
		TenantID:   middleware.GetTenantID(ctx),
		Actor:      middleware.GetActor(ctx),
		EndpointID: d.ID,
		Method:     d.Method,
		URL:        invoker.BuildRequest(d, values).URL,
		Status:     result.Status,
		OK:         result.OK,
		Sensitive:  d.Sensitive,
		CreatedAt:  time.Now(),
	}

	if _, err := s.audit.PublishInvocation(ctx, rec); err != nil {
		metrics.AuditPublishFailures.Inc()
		s.logger.Error("failed to publish audit record",
			zap.String("endpoint", d.ID),
			zap.Error(err),
		)
	}
}
