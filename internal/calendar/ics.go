package calendar

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/calshare/calshare/internal/event"
	"github.com/calshare/calshare/internal/vtimezone"
)

const (
	localLayout = "20060102T150405"
	utcLayout   = "20060102T150405Z"

	dataURIPrefix = "data:text/calendar;charset=utf8,"
)

// lineBreaks matches the inputs rewritten to the literal two-character "\n"
// escape in DESCRIPTION values: CRLF pairs and inline <br> markup.
var lineBreaks = regexp.MustCompile(`(?i)\r\n|<br\s*/?>`)

// Composer builds iCalendar documents for single events.
//
// SourceURL is the document URL embedded in the VEVENT; IsMobile reports
// whether the consuming context is a mobile browser, in which case Compose
// returns a data URI instead of raw text. Both are injected so output is
// deterministic under test.
type Composer struct {
	SourceURL string
	IsMobile  func() bool
}

// Compose renders the event as an iCalendar document. When the event names a
// timezone the document carries a VTIMEZONE block and TZID-qualified
// DTSTART/DTEND values in local wall-clock form; otherwise the instants are
// UTC-designated and the event floats. On a mobile context the document is
// returned as a percent-encoded data URI.
func (c *Composer) Compose(evt *event.Event) (string, error) {
	start, err := event.ParseInstant(evt.Start)
	if err != nil {
		return "", fmt.Errorf("parsing start: %w", err)
	}
	end, err := event.ParseInstant(evt.End)
	if err != nil {
		return "", fmt.Errorf("parsing end: %w", err)
	}

	tzLines, err := vtimezone.Build(evt.Timezone, start, end)
	if err != nil {
		return "", err
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
	}
	lines = append(lines, tzLines...)
	lines = append(lines,
		"BEGIN:VEVENT",
		"URL:"+c.SourceURL,
		"METHOD:PUBLISH",
		dateProp("DTSTART", evt.Timezone, start),
		dateProp("DTEND", evt.Timezone, end),
		"SUMMARY:"+evt.Title,
		"DESCRIPTION:"+escapeText(evt.Description),
		"LOCATION:"+evt.Location,
		"END:VEVENT",
		"END:VCALENDAR",
	)

	content := strings.Join(lines, "\n")
	if c.IsMobile != nil && c.IsMobile() {
		return dataURIPrefix + encodeComponent(content), nil
	}
	return content, nil
}

// dateProp renders a DTSTART/DTEND line. With a timezone the value is the
// instant's wall-clock digits qualified by a TZID parameter; without, the
// UTC-designated form.
func dateProp(name, zone string, t time.Time) string {
	if zone == "" {
		return name + ":" + t.UTC().Format(utcLayout)
	}
	return name + ";TZID=" + zone + ":" + t.Format(localLayout)
}

// escapeText rewrites CRLF pairs and inline line-break markup to the literal
// two-character sequence backslash-n.
func escapeText(s string) string {
	return lineBreaks.ReplaceAllString(s, `\n`)
}

// encodeComponent percent-encodes like encodeURIComponent: query escaping
// with spaces as %20 rather than +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
