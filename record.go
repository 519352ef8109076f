// FILE: lixenwraith/ini/record.go
package ini

import "slices"

// NotFound is the index returned by lookups that match no record.
const NotFound = -1

// Record is one group/key/value triple. Group holds the literal header text
// including its brackets, e.g. "[Graphics]"; records read before any header
// have an empty Group.
type Record struct {
	Group string
	Key   string
	Value string
}

// Store is the ordered sequence of records for one configuration file.
// Order controls the write-back layout. The store never deduplicates on its own;
// records of one group do not have to be contiguous.
type Store struct {
	records []Record
}

// NewStore creates a store holding a copy of the given records.
func NewStore(records ...Record) *Store {
	return &Store{records: slices.Clone(records)}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in store order.
func (s *Store) Records() []Record {
	return slices.Clone(s.records)
}

// At returns the record at index i. It panics if i is out of range.
func (s *Store) At(i int) Record {
	return s.records[i]
}

// Index returns the position of the first record whose stored group and key
// equal the arguments exactly, or NotFound.
func (s *Store) Index(group, key string) int {
	return slices.IndexFunc(s.records, func(r Record) bool {
		return r.Group == group && r.Key == key
	})
}

// Append adds a record at the end of the store.
func (s *Store) Append(r Record) {
	s.records = append(s.records, r)
}

// InsertAt places a record at index i, shifting later records back.
// It panics if i is out of range [0, Len()].
func (s *Store) InsertAt(i int, r Record) {
	s.records = slices.Insert(s.records, i, r)
}

// headerlessEnd returns the index of the first record that has a group header,
// or Len() when there is none.
func (s *Store) headerlessEnd() int {
	i := slices.IndexFunc(s.records, func(r Record) bool {
		return r.Group != ""
	})
	if i == NotFound {
		return len(s.records)
	}
	return i
}

// SetValue overwrites the value of the record at index i in place.
func (s *Store) SetValue(i int, value string) {
	s.records[i].Value = value
}

// RemoveAt erases the record at index i, keeping the order of the rest.
func (s *Store) RemoveAt(i int) {
	s.records = slices.Delete(s.records, i, i+1)
}

// Groups returns the distinct stored group headers in first-appearance order.
func (s *Store) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, r := range s.records {
		if !seen[r.Group] {
			seen[r.Group] = true
			groups = append(groups, r.Group)
		}
	}
	return groups
}

// Group returns the records stored under the given header, in store order.
func (s *Store) Group(group string) []Record {
	var out []Record
	for _, r := range s.records {
		if r.Group == group {
			out = append(out, r)
		}
	}
	return out
}

// Contiguous reports whether every group occupies a single run of records.
// The encoder re-emits a header each time the group changes, so a
// non-contiguous store produces duplicate headers on save.
func (s *Store) Contiguous() bool {
	closed := make(map[string]bool)
	for i, r := range s.records {
		if i > 0 && s.records[i-1].Group != r.Group {
			closed[s.records[i-1].Group] = true
			if closed[r.Group] {
				return false
			}
		}
	}
	return true
}

// Coalesce stably reorders the records so that each group is contiguous.
// Groups keep their first-appearance order and records keep their relative
// order within a group.
func (s *Store) Coalesce() {
	if s.Contiguous() {
		return
	}
	regrouped := make([]Record, 0, len(s.records))
	for _, g := range s.Groups() {
		regrouped = append(regrouped, s.Group(g)...)
	}
	s.records = regrouped
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	return NewStore(s.records...)
}

// Equal reports whether both stores hold the same records in the same order.
func (s *Store) Equal(other *Store) bool {
	if other == nil {
		return false
	}
	return slices.Equal(s.records, other.records)
}
