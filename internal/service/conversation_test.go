package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahuan-coding/carla-ops-api/internal/conversation"
	"github.com/bahuan-coding/carla-ops-api/internal/model"
	"github.com/bahuan-coding/carla-ops-api/internal/progress"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
)

type fakeSource struct {
	calls   int
	records []model.RawConversation
}

func (f *fakeSource) ListConversations(ctx context.Context) []model.RawConversation {
	f.calls++
	return f.records
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)
	return log
}

func liveRecord(id, name string) model.RawConversation {
	return model.RawConversation{
		ID:            id,
		CustomerName:  name,
		LastMessageAt: "2025-08-30T10:00:00Z",
	}
}

// newCachedConversationService builds a service with a long TTL so cache
// behavior is driven only by explicit invalidation.
func newCachedConversationService(t *testing.T, src *fakeSource) *ConversationService {
	t.Helper()
	return NewConversationService(src, conversation.NewAggregator(progress.Map), nil, 0, time.Minute, testLogger(t))
}

var smallDemoSet = []model.ConversationSummary{
	{ID: "demo_a", Name: "Demo A"},
	{ID: "demo_b", Name: "Demo B"},
	{ID: "demo_c", Name: "Demo C"},
}

func TestListServesFromCacheWithinTTL(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	svc := NewConversationService(src, conversation.NewAggregator(progress.Map), smallDemoSet, 0, time.Minute, testLogger(t))

	first := svc.List(context.Background())
	second := svc.List(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)
}

func TestListRefetchesAfterTTL(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	svc := NewConversationService(src, conversation.NewAggregator(progress.Map), smallDemoSet, 0, time.Nanosecond, testLogger(t))

	svc.List(context.Background())
	time.Sleep(time.Millisecond)
	svc.List(context.Background())

	assert.Equal(t, 2, src.calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	svc := NewConversationService(src, conversation.NewAggregator(progress.Map), smallDemoSet, 0, time.Minute, testLogger(t))

	svc.List(context.Background())
	svc.Invalidate()
	svc.List(context.Background())

	assert.Equal(t, 2, src.calls)
}

func TestListPadsWithDemoBelowMinimum(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	svc := NewConversationService(src, conversation.NewAggregator(progress.Map), smallDemoSet, 3, time.Minute, testLogger(t))

	got := svc.List(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, "conv_alpha", got[0].ID)
	assert.False(t, got[0].IsDemo())
	assert.True(t, got[1].IsDemo())
	assert.True(t, got[2].IsDemo())
}

func TestGet(t *testing.T) {
	src := &fakeSource{records: []model.RawConversation{liveRecord("conv_alpha", "Maria")}}
	svc := NewConversationService(src, conversation.NewAggregator(progress.Map), smallDemoSet, 3, time.Minute, testLogger(t))

	got, err := svc.Get(context.Background(), "conv_alpha")
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.Name)

	_, err = svc.Get(context.Background(), "conv_missing")
	assert.Error(t, err)
}
