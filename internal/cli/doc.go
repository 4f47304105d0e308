// Package cli implements the calshare command line interface: building
// add-to-calendar links, emitting iCalendar documents, and managing the
// registered timezone tables.
package cli
