// Package model defines data structures for the operations API.
package model

import (
	"strings"
	"time"
)

// Channel identifies the messaging channel a conversation arrived on.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelWeb      Channel = "web"
	ChannelPhone    Channel = "phone"
	ChannelEmail    Channel = "email"
)

// Defaults applied when the upstream record omits a field.
const (
	DefaultChannel Channel = ChannelWhatsApp
	DefaultStatus          = "active"
	DefaultProduct         = "Conta Digital"
)

// DemoIDPrefix marks synthetic fallback conversations.
const DemoIDPrefix = "demo_"

// RawConversation is a conversation record as returned by the upstream API.
// The upstream has gone through several schema generations, so most logical
// attributes can arrive under more than one key; every field is optional.
type RawConversation struct {
	ID string `json:"id"`

	// Display name candidates, newest schema first.
	CustomerName string `json:"customer_name,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	Name         string `json:"name,omitempty"`

	// Phone number candidates.
	Phone         string `json:"phone,omitempty"`
	WhatsAppPhone string `json:"whatsapp_phone,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"`

	// Last-message timestamp candidates (RFC 3339 strings).
	LastMessageAt string `json:"last_message_at,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`

	// Unread counter candidates.
	UnreadCount int `json:"unread_count,omitempty"`
	Unread      int `json:"unread,omitempty"`

	// Message preview candidates.
	LastMessage string `json:"last_message,omitempty"`
	Preview     string `json:"preview,omitempty"`
	Body        string `json:"body,omitempty"`

	// Status candidates.
	Status        string `json:"status,omitempty"`
	ProcessStatus string `json:"process_status,omitempty"`

	Channel       string   `json:"channel,omitempty"`
	Product       string   `json:"product,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	AIEnabled     *bool    `json:"ai_enabled,omitempty"`
	AssignedAgent *string  `json:"assigned_agent,omitempty"`
}

// Transaction is the verification/onboarding process derived from a
// conversation's status.
type Transaction struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Stage    string `json:"stage"`
	Progress int    `json:"progress"`
}

// ConversationSummary is the canonical, display-ready view of one logical
// conversation, produced by the aggregator. ID is the group key.
type ConversationSummary struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Phone         string       `json:"phone"`
	Channel       Channel      `json:"channel"`
	Product       string       `json:"product"`
	Status        string       `json:"status"`
	UnreadCount   int          `json:"unread_count"`
	LastMessage   string       `json:"last_message"`
	LastMessageAt time.Time    `json:"last_message_at"`
	Tags          []string     `json:"tags"`
	AIEnabled     bool         `json:"ai_enabled"`
	AssignedAgent *string      `json:"assigned_agent,omitempty"`
	Transaction   *Transaction `json:"transaction,omitempty"`
}

// IsDemo reports whether the summary is a synthetic fallback record.
func (s ConversationSummary) IsDemo() bool {
	return strings.HasPrefix(s.ID, DemoIDPrefix)
}

// ListConversationsResponse is the response for listing conversations.
type ListConversationsResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
	Total         int                   `json:"total"`
	Live          int                   `json:"live"`
	Demo          int                   `json:"demo"`
}
