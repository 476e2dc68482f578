// Package service provides business logic for the operations API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bahuan-coding/carla-ops-api/internal/conversation"
	"github.com/bahuan-coding/carla-ops-api/internal/model"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
	"github.com/bahuan-coding/carla-ops-api/pkg/metrics"
)

// ConversationSource lists raw conversation records from the upstream.
type ConversationSource interface {
	ListConversations(ctx context.Context) []model.RawConversation
}

// ConversationService aggregates upstream conversations and caches the
// result. The cache is invalidated, not locked, after mutations: readers may
// observe a short staleness window.
type ConversationService struct {
	source     ConversationSource
	aggregator *conversation.Aggregator
	demo       []model.ConversationSummary
	minimum    int
	ttl        time.Duration
	logger     *logger.Logger

	mu        sync.RWMutex
	cached    []model.ConversationSummary
	fetchedAt time.Time
}

// NewConversationService creates a conversation service. demo is the fallback
// dataset appended when fewer than minimum live conversations exist.
func NewConversationService(
	source ConversationSource,
	aggregator *conversation.Aggregator,
	demo []model.ConversationSummary,
	minimum int,
	ttl time.Duration,
	log *logger.Logger,
) *ConversationService {
	return &ConversationService{
		source:     source,
		aggregator: aggregator,
		demo:       demo,
		minimum:    minimum,
		ttl:        ttl,
		logger:     log,
	}
}

// List returns the current conversation summaries, serving from cache within
// the TTL.
func (s *ConversationService) List(ctx context.Context) []model.ConversationSummary {
	s.mu.RLock()
	if s.cached != nil && time.Since(s.fetchedAt) < s.ttl {
		cached := s.cached
		s.mu.RUnlock()
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
		return cached
	}
	s.mu.RUnlock()

	metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()

	raw := s.source.ListConversations(ctx)
	live := s.aggregator.Aggregate(raw)
	merged := conversation.MergeWithFallback(live, s.demo, s.minimum)

	metrics.ConversationsAggregated.WithLabelValues("live").Set(float64(len(live)))
	metrics.ConversationsAggregated.WithLabelValues("demo").Set(float64(len(merged) - len(live)))

	s.logger.Debug("conversations aggregated",
		zap.Int("raw", len(raw)),
		zap.Int("live", len(live)),
		zap.Int("merged", len(merged)),
	)

	s.mu.Lock()
	s.cached = merged
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	return merged
}

// Get returns one summary by group key.
func (s *ConversationService) Get(ctx context.Context, id string) (model.ConversationSummary, error) {
	for _, c := range s.List(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return model.ConversationSummary{}, fmt.Errorf("conversation not found")
}

// Invalidate drops the cached list so the next read refetches.
func (s *ConversationService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
