package segment

import "sort"

// Speakers is a set of speaker display names.
type Speakers map[string]struct{}

// NewSpeakers builds a set from the given names.
func NewSpeakers(names ...string) Speakers {
	s := make(Speakers, len(names))
	for _, name := range names {
		s.Add(name)
	}

	return s
}

// Add inserts name into the set.
func (s Speakers) Add(name string) {
	s[name] = struct{}{}
}

// Remove deletes name from the set.
func (s Speakers) Remove(name string) {
	delete(s, name)
}

// Has reports whether name is in the set.
func (s Speakers) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Clone returns an independent copy of the set.
func (s Speakers) Clone() Speakers {
	c := make(Speakers, len(s))
	for name := range s {
		c[name] = struct{}{}
	}

	return c
}

// Sorted returns the names in lexical order.
func (s Speakers) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
