package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/calshare/calshare/internal/calendar"
	"github.com/calshare/calshare/internal/event"
)

func testEvent() *event.Event {
	return &event.Event{
		Title:       "Team Offsite & Review",
		Description: "Quarterly planning, all hands",
		Location:    "Midtown office, 5th floor",
		Start:       "2025-06-10T10:00:00+00:00",
		End:         "2025-06-10T12:00:00+00:00",
		Timezone:    "America/New_York",
	}
}

func TestParseProvider(t *testing.T) {
	for _, valid := range []string{"google", "yahoo", "outlook", "ics"} {
		if _, err := ParseProvider(valid); err != nil {
			t.Errorf("ParseProvider(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseProvider("apple"); err == nil {
		t.Error("ParseProvider should reject unknown providers")
	}
}

func TestBuildGoogle(t *testing.T) {
	raw, err := Build(Google, testEvent(), nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("output is not a valid URL: %v", err)
	}
	if u.Host != "calendar.google.com" || u.Path != "/calendar/render" {
		t.Errorf("unexpected endpoint: %s%s", u.Host, u.Path)
	}

	q := u.Query()
	if q.Get("action") != "TEMPLATE" {
		t.Errorf("action = %q, want TEMPLATE", q.Get("action"))
	}
	if q.Get("text") != "Team Offsite & Review" {
		t.Errorf("text = %q", q.Get("text"))
	}
	if q.Get("dates") != "20250610T100000Z/20250610T120000Z" {
		t.Errorf("dates = %q", q.Get("dates"))
	}
	if q.Get("ctz") != "America/New_York" {
		t.Errorf("ctz = %q", q.Get("ctz"))
	}

	// Free-text fields are percent-encoded in the raw URL.
	if !strings.Contains(raw, "Team+Offsite+%26+Review") && !strings.Contains(raw, "Team%20Offsite%20%26%20Review") {
		t.Errorf("title not query-encoded in %s", raw)
	}
}

func TestBuildYahooWithDuration(t *testing.T) {
	evt := testEvent()
	evt.Duration = "1.5"

	raw, err := Build(Yahoo, evt, nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	q := u.Query()
	if q.Get("v") != "60" || q.Get("view") != "d" || q.Get("type") != "20" {
		t.Errorf("missing yahoo template constants in %s", raw)
	}
	if q.Get("st") != "20250610T100000Z" {
		t.Errorf("st = %q", q.Get("st"))
	}
	if q.Get("dur") != "0105" {
		t.Errorf("dur = %q, want 0105", q.Get("dur"))
	}
	if q.Get("et") != "" {
		t.Error("et should be omitted when a duration is supplied")
	}
}

func TestBuildYahooWithoutDuration(t *testing.T) {
	raw, err := Build(Yahoo, testEvent(), nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	q := u.Query()
	if q.Get("et") != "20250610T120000Z" {
		t.Errorf("et = %q", q.Get("et"))
	}
	if q.Get("dur") != "" {
		t.Error("dur should be omitted without a duration")
	}
}

func TestBuildOutlook(t *testing.T) {
	raw, err := Build(Outlook, testEvent(), nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if u.Host != "outlook.live.com" {
		t.Errorf("host = %q", u.Host)
	}
	q := u.Query()
	if q.Get("rru") != "addevent" {
		t.Errorf("rru = %q", q.Get("rru"))
	}
	if q.Get("startdt") != "2025-06-10T10:00:00Z" {
		t.Errorf("startdt = %q, want UTC-designated form", q.Get("startdt"))
	}
	if q.Get("enddt") != "2025-06-10T12:00:00Z" {
		t.Errorf("enddt = %q", q.Get("enddt"))
	}
}

func TestBuildICSNoQueryEncoding(t *testing.T) {
	comp := &calendar.Composer{
		SourceURL: "https://example.com/events/offsite",
		IsMobile:  func() bool { return false },
	}

	doc, err := Build(ICS, testEvent(), comp)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	// The file target keeps free text verbatim.
	if !strings.Contains(doc, "SUMMARY:Team Offsite & Review") {
		t.Error("ICS title should not be percent-encoded")
	}
	if !strings.Contains(doc, "LOCATION:Midtown office, 5th floor") {
		t.Error("ICS location should not be percent-encoded")
	}
	if !strings.Contains(doc, "BEGIN:VTIMEZONE") {
		t.Error("ICS output should include the VTIMEZONE block")
	}
}

func TestBuildMalformedInstant(t *testing.T) {
	evt := testEvent()
	evt.End = "sometime later"

	for _, p := range []Provider{Google, Yahoo, Outlook} {
		if _, err := Build(p, evt, nil); err == nil {
			t.Errorf("Build(%s) should fail on malformed end instant", p)
		}
	}
}
