package event

import (
	"time"
)

// InstantLayout is the extended ISO form events carry their instants in: an
// explicit UTC-offset suffix, no fractional seconds.
const InstantLayout = "2006-01-02T15:04:05Z07:00"

// Event describes a single calendar event to share.
type Event struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`

	// Start and End are instants in InstantLayout form, e.g.
	// "2025-06-10T10:00:00+00:00".
	Start string `json:"start"`
	End   string `json:"end"`

	// Timezone is an optional IANA identifier. Empty means the event is
	// floating: no VTIMEZONE block and no TZID parameters are emitted.
	Timezone string `json:"timezone,omitempty"`

	// Duration is an optional pre-formatted HHMM duration (or an "H.MM"
	// decomposed form) for providers whose URLs take a duration instead of
	// an end instant.
	Duration string `json:"duration,omitempty"`
}

// ParseInstant parses an InstantLayout datetime. Malformed input propagates
// the parse error unaltered; callers decide whether to fall back.
func ParseInstant(s string) (time.Time, error) {
	return time.Parse(InstantLayout, s)
}
