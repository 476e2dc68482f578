package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bahuan-coding/carla-ops-api/internal/llm"
	"github.com/bahuan-coding/carla-ops-api/internal/model"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
	"github.com/bahuan-coding/carla-ops-api/pkg/metrics"
)

const insightSystemPrompt = "You are an assistant for a banking operations team. " +
	"Given the state of a customer conversation, write a short briefing for the " +
	"operator: who the customer is, where they are in the process, and the " +
	"single most useful next action. Answer in at most three sentences."

// InsightService generates operator briefings for conversations.
type InsightService struct {
	client        llm.Client
	model         string
	conversations *ConversationService
	logger        *logger.Logger
}

// NewInsightService creates an insight service. client may be nil when no
// provider is configured; Generate then reports the feature as disabled.
func NewInsightService(client llm.Client, modelName string, conversations *ConversationService, log *logger.Logger) *InsightService {
	return &InsightService{
		client:        client,
		model:         modelName,
		conversations: conversations,
		logger:        log,
	}
}

// Enabled reports whether a provider is configured.
func (s *InsightService) Enabled() bool {
	return s.client != nil
}

// Generate produces a briefing for one conversation.
func (s *InsightService) Generate(ctx context.Context, conversationID string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("no insight provider configured")
	}

	summary, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Complete(ctx, &llm.CompletionRequest{
		Model: s.model,
		Messages: []llm.ChatMessage{
			{Role: "user", Content: insightSystemPrompt + "\n\n" + describeConversation(summary)},
		},
	})
	if err != nil {
		metrics.InsightRequestsTotal.WithLabelValues(s.client.Name(), "error").Inc()
		s.logger.Error("insight generation failed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		return "", fmt.Errorf("generate insight: %w", err)
	}

	metrics.InsightRequestsTotal.WithLabelValues(s.client.Name(), "ok").Inc()
	return resp.Content, nil
}

// describeConversation renders a summary as prompt context.
func describeConversation(c model.ConversationSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Customer: %s\n", c.Name)
	fmt.Fprintf(&b, "Channel: %s\n", c.Channel)
	fmt.Fprintf(&b, "Product: %s\n", c.Product)
	fmt.Fprintf(&b, "Status: %s\n", c.Status)
	if c.Transaction != nil {
		fmt.Fprintf(&b, "Stage: %s (%d%%)\n", c.Transaction.Stage, c.Transaction.Progress)
	}
	if len(c.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(c.Tags, ", "))
	}
	fmt.Fprintf(&b, "Unread messages: %d\n", c.UnreadCount)
	if c.LastMessage != "" {
		fmt.Fprintf(&b, "Last message: %s\n", c.LastMessage)
	}
	return b.String()
}
