package share

import (
	"fmt"
	"time"

	"github.com/dghubble/sling"

	"github.com/calshare/calshare/internal/calendar"
	"github.com/calshare/calshare/internal/event"
)

// Provider identifies an "add to calendar" target.
type Provider string

const (
	Google  Provider = "google"
	Yahoo   Provider = "yahoo"
	Outlook Provider = "outlook"
	// ICS is the file-based target: the artifact is the calendar document
	// itself (or its data URI), with no query-field encoding applied.
	ICS Provider = "ics"
)

const (
	googleBase  = "https://calendar.google.com/"
	yahooBase   = "https://calendar.yahoo.com/"
	outlookBase = "https://outlook.live.com/"

	compactUTCLayout = "20060102T150405Z"
)

// ParseProvider validates a provider name from user input.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case Google, Yahoo, Outlook, ICS:
		return Provider(s), nil
	}
	return "", fmt.Errorf("unknown provider: %s (must be google, yahoo, outlook, or ics)", s)
}

type googleParams struct {
	Action   string `url:"action"`
	Text     string `url:"text"`
	Dates    string `url:"dates"`
	Ctz      string `url:"ctz,omitempty"`
	Details  string `url:"details,omitempty"`
	Location string `url:"location,omitempty"`
}

type yahooParams struct {
	Version  string `url:"v"`
	View     string `url:"view"`
	Type     string `url:"type"`
	Title    string `url:"title"`
	Start    string `url:"st"`
	End      string `url:"et,omitempty"`
	Duration string `url:"dur,omitempty"`
	Desc     string `url:"desc,omitempty"`
	Location string `url:"in_loc,omitempty"`
}

type outlookParams struct {
	Path     string `url:"path"`
	Action   string `url:"rru"`
	Subject  string `url:"subject"`
	StartDT  string `url:"startdt"`
	EndDT    string `url:"enddt"`
	Body     string `url:"body,omitempty"`
	Location string `url:"location,omitempty"`
}

// Build produces the sharing artifact for the given provider: a fully
// query-encoded URL for the web-calendar targets, or the iCalendar document
// (raw or data URI, per the composer's mobile predicate) for the file target.
func Build(p Provider, evt *event.Event, comp *calendar.Composer) (string, error) {
	switch p {
	case Google:
		return buildGoogle(evt)
	case Yahoo:
		return buildYahoo(evt)
	case Outlook:
		return buildOutlook(evt)
	case ICS:
		return comp.Compose(evt)
	}
	return "", fmt.Errorf("unknown provider: %s", p)
}

func buildGoogle(evt *event.Event) (string, error) {
	start, end, err := parseSpan(evt)
	if err != nil {
		return "", err
	}

	params := &googleParams{
		Action:   "TEMPLATE",
		Text:     evt.Title,
		Dates:    compactUTC(start) + "/" + compactUTC(end),
		Ctz:      evt.Timezone,
		Details:  evt.Description,
		Location: evt.Location,
	}
	return templateURL(googleBase, "calendar/render", params)
}

func buildYahoo(evt *event.Event) (string, error) {
	start, end, err := parseSpan(evt)
	if err != nil {
		return "", err
	}

	params := &yahooParams{
		Version:  "60",
		View:     "d",
		Type:     "20",
		Title:    evt.Title,
		Start:    compactUTC(start),
		Desc:     evt.Description,
		Location: evt.Location,
	}
	if evt.Duration != "" {
		params.Duration = event.FormatDuration(evt.Duration)
	} else {
		params.End = compactUTC(end)
	}
	return templateURL(yahooBase, "", params)
}

func buildOutlook(evt *event.Event) (string, error) {
	if _, _, err := parseSpan(evt); err != nil {
		return "", err
	}

	params := &outlookParams{
		Path:     "/calendar/action/compose",
		Action:   "addevent",
		Subject:  evt.Title,
		StartDT:  event.FormatDate(evt.Start),
		EndDT:    event.FormatDate(evt.End),
		Body:     evt.Description,
		Location: evt.Location,
	}
	return templateURL(outlookBase, "calendar/0/action/compose", params)
}

// parseSpan parses the event's start and end instants, propagating parse
// errors to the caller.
func parseSpan(evt *event.Event) (start, end time.Time, err error) {
	start, err = event.ParseInstant(evt.Start)
	if err != nil {
		return start, end, fmt.Errorf("parsing start: %w", err)
	}
	end, err = event.ParseInstant(evt.End)
	if err != nil {
		return start, end, fmt.Errorf("parsing end: %w", err)
	}
	return start, end, nil
}

func compactUTC(t time.Time) string {
	return t.UTC().Format(compactUTCLayout)
}

// templateURL fills a provider URL template, letting sling's query-struct
// encoding percent-encode the free-text fields.
func templateURL(base, path string, params interface{}) (string, error) {
	req, err := sling.New().Base(base).Path(path).QueryStruct(params).Request()
	if err != nil {
		return "", fmt.Errorf("building provider url: %w", err)
	}
	return req.URL.String(), nil
}
