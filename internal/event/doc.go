// Package event defines the calendar event model and the small date and
// duration formatters shared by the calendar text composer and the share-URL
// builders.
//
// Events carry their start and end instants as extended-ISO strings with an
// explicit UTC-offset suffix. The package does not validate datetimes beyond
// propagating parse errors from the standard library.
package event
