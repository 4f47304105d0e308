package event

import "strings"

// FormatDate rewrites a UTC-designated instant's explicit "+00:00" offset
// suffix to the single-character "Z" designator calendar URL and file
// consumers expect. Empty input and instants with non-UTC offsets pass
// through unchanged.
func FormatDate(s string) string {
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, "+00:00") {
		return s[:len(s)-len("+00:00")] + "Z"
	}
	return s
}

// FormatDuration encodes a duration for provider URL query parameters that
// expect an HHMM form. A pre-formatted string passes through unchanged; a
// dot-separated decomposed form has each of its two components zero-padded
// to two digits and concatenated, so "1.5" (one hour, five minutes) becomes
// "0105".
func FormatDuration(d string) string {
	if !strings.Contains(d, ".") {
		return d
	}
	parts := strings.SplitN(d, ".", 3)
	hours := pad2(parts[0])
	mins := "00"
	if len(parts) > 1 {
		mins = pad2(parts[1])
	}
	return hours + mins
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
