// Package tzdata provides packed timezone transition tables for VTIMEZONE
// generation.
//
// A Table holds, for one IANA timezone identifier, the parallel sequences of
// transition boundary instants, UTC offsets, and abbreviations that describe
// the zone's observances. Tables are consumed as a read-only oracle: this
// package never computes transitions itself. A built-in set of common zones is
// registered at startup; additional tables can be registered directly, loaded
// from a JSON bundle, or fetched over HTTP with Fetcher.
package tzdata
