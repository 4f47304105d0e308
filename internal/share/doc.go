// Package share fills per-provider "add to calendar" URL templates.
//
// Query-based providers (Google, Yahoo, Outlook) get a fully encoded HTTP URL
// built from the event's fields; the file-based ICS target delegates to the
// calendar composer and applies no query encoding.
package share
