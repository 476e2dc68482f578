package conversation

import "github.com/bahuan-coding/carla-ops-api/internal/model"

// MergeWithFallback appends demo summaries to keep the list populated during
// low-traffic periods. Live summaries are never mutated or discarded: when
// len(live) >= minimum the live slice is returned as-is, otherwise demo items
// are appended in order until the minimum is reached (or demo runs out).
func MergeWithFallback(live, demo []model.ConversationSummary, minimum int) []model.ConversationSummary {
	if len(live) >= minimum {
		return live
	}
	missing := minimum - len(live)
	if missing > len(demo) {
		missing = len(demo)
	}
	merged := make([]model.ConversationSummary, 0, len(live)+missing)
	merged = append(merged, live...)
	merged = append(merged, demo[:missing]...)
	return merged
}
