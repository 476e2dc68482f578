// Package conversation turns raw upstream conversation records into
// deduplicated, display-ready summaries.
package conversation

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
)

// PreviewLimit is the maximum rune length of a message preview.
const PreviewLimit = 80

// StatusMapper resolves a conversation status to a human stage label and a
// progress percentage (0-100). Unknown statuses report ok=false.
type StatusMapper func(status string) (stage string, progress int, ok bool)

// Aggregator groups and normalizes raw conversation records.
type Aggregator struct {
	mapStatus StatusMapper
}

// NewAggregator creates an aggregator using the given status mapper.
func NewAggregator(mapStatus StatusMapper) *Aggregator {
	return &Aggregator{mapStatus: mapStatus}
}

// hexSuffixPattern matches the random per-batch suffix some upstream systems
// append to an otherwise stable conversation identifier.
var hexSuffixPattern = regexp.MustCompile(`_[0-9a-fA-F]{6,}$`)

// GroupKey derives the logical conversation key for a record identifier by
// stripping a trailing `_<hex token of 6+ chars>` suffix, if present.
func GroupKey(id string) string {
	return hexSuffixPattern.ReplaceAllString(id, "")
}

// Aggregate partitions raw records by group key and reduces each group to one
// ConversationSummary, newest conversations first. It is total over its input:
// missing or malformed fields resolve to defaults and never panic.
func (a *Aggregator) Aggregate(raw []model.RawConversation) []model.ConversationSummary {
	groups := make(map[string][]model.RawConversation)
	var order []string
	for _, r := range raw {
		key := GroupKey(r.ID)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	summaries := make([]model.ConversationSummary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, a.reduce(key, groups[key]))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastMessageAt.After(summaries[j].LastMessageAt)
	})
	return summaries
}

// reduce collapses the fragments of one logical conversation into a summary.
func (a *Aggregator) reduce(key string, group []model.RawConversation) model.ConversationSummary {
	sort.SliceStable(group, func(i, j int) bool {
		return recordTime(group[i]).After(recordTime(group[j]))
	})
	latest := group[0]

	unread := 0
	for _, r := range group {
		unread += recordUnread(r)
	}

	phone := FormatPhone(firstNonEmpty(latest.Phone, latest.WhatsAppPhone, latest.PhoneNumber))
	status := firstNonEmpty(latest.Status, latest.ProcessStatus, model.DefaultStatus)

	s := model.ConversationSummary{
		ID:            key,
		Name:          resolveName(key, latest, phone),
		Phone:         phone,
		Channel:       resolveChannel(latest.Channel),
		Product:       firstNonEmpty(latest.Product, model.DefaultProduct),
		Status:        status,
		UnreadCount:   unread,
		LastMessage:   TruncatePreview(firstNonEmpty(latest.LastMessage, latest.Preview, latest.Body)),
		LastMessageAt: recordTime(latest),
		Tags:          latest.Tags,
		AIEnabled:     true,
		AssignedAgent: latest.AssignedAgent,
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if latest.AIEnabled != nil {
		s.AIEnabled = *latest.AIEnabled
	}

	if a.mapStatus != nil {
		if stage, progress, ok := a.mapStatus(status); ok {
			s.Transaction = &model.Transaction{
				ID:       "txn_" + key,
				Name:     s.Product,
				Status:   status,
				Stage:    stage,
				Progress: progress,
			}
		}
	}
	return s
}

// recordTime parses the newest-schema timestamp, falling back to the legacy
// field. Malformed or missing timestamps sort as the oldest possible time.
func recordTime(r model.RawConversation) time.Time {
	for _, candidate := range []string{r.LastMessageAt, r.Timestamp} {
		if candidate == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, candidate); err == nil {
			return t
		}
	}
	return time.Time{}
}

func recordUnread(r model.RawConversation) int {
	if r.UnreadCount > 0 {
		return r.UnreadCount
	}
	if r.Unread > 0 {
		return r.Unread
	}
	return 0
}

func resolveChannel(raw string) model.Channel {
	switch model.Channel(strings.ToLower(raw)) {
	case model.ChannelWhatsApp, model.ChannelWeb, model.ChannelPhone, model.ChannelEmail:
		return model.Channel(strings.ToLower(raw))
	default:
		return model.DefaultChannel
	}
}

// resolveName walks the display-name fallback chain, skipping candidates that
// look like technical identifiers rather than human names.
func resolveName(key string, latest model.RawConversation, formattedPhone string) string {
	for _, candidate := range []string{latest.CustomerName, latest.ContactName, latest.Name, formattedPhone} {
		if candidate != "" && !isTechnicalIdentifier(candidate) {
			return candidate
		}
	}
	tail := key
	if len(tail) > 8 {
		tail = tail[len(tail)-8:]
	}
	return "Customer " + strings.ToUpper(tail)
}

var (
	internalIDPrefixes = []string{"conv_", "chat_", "wa_", "sess_"}

	bareHexPattern = regexp.MustCompile(`^[0-9a-fA-F]{8,}$`)
	uuidPattern    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// isTechnicalIdentifier reports whether a name candidate is a machine
// identifier leaked from the upstream rather than a human-facing name.
func isTechnicalIdentifier(s string) bool {
	lower := strings.ToLower(s)
	for _, prefix := range internalIDPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return bareHexPattern.MatchString(s) ||
		uuidPattern.MatchString(lower) ||
		hexSuffixPattern.MatchString(s)
}

// TruncatePreview limits a message preview to PreviewLimit runes, appending an
// ellipsis when truncated.
func TruncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= PreviewLimit {
		return s
	}
	return string(runes[:PreviewLimit]) + "…"
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
