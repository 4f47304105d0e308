// Package vtimezone generates iCalendar VTIMEZONE blocks from packed timezone
// transition tables.
//
// Given an IANA timezone identifier and an event's start and end instants, the
// builder locates the window of transitions the event falls within and emits
// one DAYLIGHT or STANDARD observance block per relevant transition, plus one
// block of lookahead past the observance active at event end. The generator is
// only intended for one-shot, bounded-duration events within a short
// transition window; recurring events and multi-year spans are out of scope.
package vtimezone
