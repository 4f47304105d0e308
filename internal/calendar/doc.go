// Package calendar composes iCalendar documents for single events, embedding
// VTIMEZONE blocks for timezone-aware events and delivering the result as raw
// text or as a data URI for mobile consumers.
package calendar
