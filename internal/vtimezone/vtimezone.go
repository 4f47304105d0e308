package vtimezone

import (
	"fmt"
	"time"

	"github.com/calshare/calshare/internal/tzdata"
)

const dtstartLayout = "20060102T150405"

// Build returns the VTIMEZONE block for the given timezone as a sequence of
// iCalendar lines covering the observances an event between start and end
// falls within. An empty timezone returns no lines: the event is floating and
// the caller must omit the block entirely. Unknown identifiers return an
// error wrapping tzdata.ErrUnknownTimezone.
func Build(zone string, start, end time.Time) ([]string, error) {
	if zone == "" {
		return nil, nil
	}

	table, err := tzdata.Lookup(zone)
	if err != nil {
		return nil, fmt.Errorf("resolving timezone: %w", err)
	}

	// currentUntil is the observance active at event start; the loop runs one
	// index past the first boundary after the event end for lookahead. Both
	// the lookahead index and the i-1 read below are clamped into the table;
	// see clampIndex.
	currentUntil := table.IndexAfter(start)
	futureUntil := table.IndexAfter(end) + 1

	last := clampIndex(futureUntil, table.Len())

	lines := []string{
		"BEGIN:VTIMEZONE",
		"TZID:" + zone,
	}
	for i := currentUntil; i <= last; i++ {
		kind := "DAYLIGHT"
		if (i+1)%2 == 0 {
			kind = "STANDARD"
		}
		prev := clampIndex(i-1, table.Len())
		lines = append(lines,
			"BEGIN:"+kind,
			"DTSTART:"+formatLocal(table.Untils[prev], table.Offsets[i]),
			"TZOFFSETFROM:"+minutesToOffset(table.Offsets[prev]),
			"TZOFFSETTO:"+minutesToOffset(table.Offsets[i]),
			"TZNAME:"+table.Abbrs[i],
			"END:"+kind,
		)
	}
	lines = append(lines, "END:VTIMEZONE")

	return lines, nil
}

// clampIndex forces an index into [0, n-1]. The observance loop deliberately
// walks one index past its lookahead boundary and reads the entry before the
// first relevant one, so both ends can run off the table: past the end when
// the event reaches the final recorded observance, before the start when the
// event predates the first recorded transition.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// formatLocal renders a boundary instant as the target observance's local
// wall-clock, without separators or an offset suffix. The sentinel boundary
// of a fixed, transition-free table maps to the epoch.
func formatLocal(untilMillis int64, offsetMinutes int) string {
	if untilMillis == tzdata.Sentinel {
		untilMillis = 0
	}
	local := time.UnixMilli(untilMillis).UTC().Add(-time.Duration(offsetMinutes) * time.Minute)
	return local.Format(dtstartLayout)
}

// minutesToOffset converts minutes behind UTC into a signed HHMM offset
// string. The table polarity is the inverse of the TZOFFSETFROM/TZOFFSETTO
// convention, so positive input yields a "-" prefix: -600 becomes "+1000" and
// 330 becomes "-0530".
func minutesToOffset(minutes int) string {
	sign := "+"
	if minutes > 0 {
		sign = "-"
	}
	if minutes < 0 {
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d%02d", sign, minutes/60, minutes%60)
}
