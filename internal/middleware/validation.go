package middleware

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

var (
	endpointIDPattern     = regexp.MustCompile(`^[a-z0-9]+(\.[a-z0-9_]+)+$`)
	conversationIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// ValidateEndpointID validates a catalog endpoint id.
func ValidateEndpointID(id string) error {
	if id == "" {
		return errors.New("endpoint ID cannot be empty")
	}
	if len(id) > 64 || !endpointIDPattern.MatchString(id) {
		return errors.New("invalid endpoint ID format")
	}
	return nil
}

// ValidateConversationID validates a conversation group key.
func ValidateConversationID(id string) error {
	if id == "" {
		return errors.New("conversation ID cannot be empty")
	}
	if len(id) > 128 || !conversationIDPattern.MatchString(id) {
		return errors.New("invalid conversation ID format")
	}
	return nil
}

// ValidateFieldValue validates one invocation field value.
func ValidateFieldValue(value string) error {
	if len(value) > 10000 {
		return errors.New("field value exceeds maximum length")
	}
	if !utf8.ValidString(value) {
		return errors.New("field value must be valid UTF-8")
	}
	return nil
}
