package value

import (
	"slices"
	"strconv"
	"strings"
)

// Set is an unordered collection of categorical values such as cities.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}

	return s
}

func (s Set) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}

	slices.Sort(items)

	return items
}

func (s Set) key() string {
	items := s.Sorted()
	for i, item := range items {
		items[i] = strings.ReplaceAll(item, "\x1f", "")
	}

	return strconv.Itoa(len(items)) + ":" + strings.Join(items, "\x1f")
}
