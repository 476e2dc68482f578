package conversation

import (
	"fmt"
	"strings"
)

// FormatPhone formats an international phone number for display: country code,
// area code, then the subscriber digits split into a 5-digit block and any
// remainder. Numbers with fewer than 10 digits pass through unchanged; empty
// input yields empty output.
func FormatPhone(raw string) string {
	if raw == "" {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) < 10 {
		return raw
	}

	country, area, subscriber := digits[:3], digits[3:6], digits[6:]
	if len(subscriber) > 5 {
		return fmt.Sprintf("+%s %s %s-%s", country, area, subscriber[:5], subscriber[5:])
	}
	return fmt.Sprintf("+%s %s %s", country, area, subscriber)
}
