package tzdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"sync"
	"time"
)

// Sentinel marks the final table entry, the observance with no further
// transitions.
const Sentinel = int64(math.MaxInt64)

// ErrUnknownTimezone is returned by Lookup for identifiers with no
// registered table.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Table holds the packed transition data for one IANA timezone.
//
// The three slices are parallel: entry i describes the observance that ends
// at Untils[i], carries UTC offset Offsets[i], and is labeled Abbrs[i].
// Untils are unix milliseconds in ascending order; the last entry uses
// Sentinel. Offsets are minutes behind UTC (positive west of Greenwich),
// matching the polarity of the packed source data.
type Table struct {
	Name    string   `json:"name"`
	Untils  []int64  `json:"untils"`
	Offsets []int    `json:"offsets"`
	Abbrs   []string `json:"abbrs"`
}

// Validate checks the parallel-slice and ordering invariants.
func (t *Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("table has no name")
	}
	if len(t.Untils) == 0 {
		return fmt.Errorf("table %s has no entries", t.Name)
	}
	if len(t.Untils) != len(t.Offsets) || len(t.Untils) != len(t.Abbrs) {
		return fmt.Errorf("table %s has mismatched lengths: %d untils, %d offsets, %d abbrs",
			t.Name, len(t.Untils), len(t.Offsets), len(t.Abbrs))
	}
	for i := 1; i < len(t.Untils); i++ {
		if t.Untils[i] < t.Untils[i-1] {
			return fmt.Errorf("table %s untils not ascending at index %d", t.Name, i)
		}
	}
	return nil
}

// Len returns the number of observance entries.
func (t *Table) Len() int {
	return len(t.Untils)
}

// IndexAfter returns the index of the first boundary strictly greater than
// the given instant. If every boundary is at or before the instant it
// returns Len().
func (t *Table) IndexAfter(instant time.Time) int {
	ms := instant.UnixMilli()
	return sort.Search(len(t.Untils), func(i int) bool {
		return t.Untils[i] > ms
	})
}

var (
	mu     sync.RWMutex
	tables = map[string]*Table{}
)

// Register adds a table to the registry, replacing any table with the same
// name.
func Register(t *Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	tables[t.Name] = t
	return nil
}

// Lookup resolves a timezone identifier to its transition table.
func Lookup(name string) (*Table, error) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, name)
	}
	return t, nil
}

// Names returns the registered timezone identifiers in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bundle is the JSON wire form of a set of tables.
type Bundle struct {
	Version string   `json:"version,omitempty"`
	Tables  []*Table `json:"tables"`
}

// LoadBundle reads a JSON bundle and registers every table in it. The first
// invalid table aborts the load; tables registered before it remain.
func LoadBundle(r io.Reader) (int, error) {
	var bundle Bundle
	if err := json.NewDecoder(r).Decode(&bundle); err != nil {
		return 0, fmt.Errorf("decoding bundle: %w", err)
	}
	for i, t := range bundle.Tables {
		if err := Register(t); err != nil {
			return i, fmt.Errorf("registering table %d: %w", i, err)
		}
	}
	return len(bundle.Tables), nil
}
