package semantic

import (
	"errors"
	"sort"

	"github.com/DjordjeVuckovic/proplogic/pkg/stringsutil"
)

// DefaultMaxProps bounds the number of names a PropSet accepts.
const DefaultMaxProps = 100

// DefaultProps is the whitelist used when none is configured.
var DefaultProps = []string{"p1", "p2", "p3"}

var ErrTooManyProps = errors.New("too many valid propositions")

// PropSet is the set of atom names accepted by the validator. It is owned by
// the caller and can be reset between runs.
type PropSet struct {
	names    map[string]struct{}
	capacity int
}

// NewPropSet returns a set seeded with names. Names past DefaultMaxProps are
// dropped; build with NewPropSetWithCapacity and Add to see ErrTooManyProps.
func NewPropSet(names ...string) *PropSet {
	s := &PropSet{
		names:    make(map[string]struct{}, len(names)),
		capacity: DefaultMaxProps,
	}
	for _, n := range names {
		_ = s.Add(n)
	}
	return s
}

// NewPropSetWithCapacity returns an empty set holding at most capacity
// names; a non-positive capacity means DefaultMaxProps.
func NewPropSetWithCapacity(capacity int) *PropSet {
	if capacity <= 0 {
		capacity = DefaultMaxProps
	}
	return &PropSet{names: make(map[string]struct{}), capacity: capacity}
}

// ParsePropList splits a comma-separated list of names, trimming blanks.
func ParsePropList(list string) []string {
	return stringsutil.SplitList(list, ",")
}

// Add inserts name. Adding a name already present is a no-op.
func (s *PropSet) Add(name string) error {
	if _, ok := s.names[name]; ok {
		return nil
	}
	if len(s.names) >= s.capacity {
		return ErrTooManyProps
	}
	s.names[name] = struct{}{}
	return nil
}

func (s *PropSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

func (s *PropSet) Len() int {
	return len(s.names)
}

// Names returns the members in sorted order.
func (s *PropSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Reset empties the set.
func (s *PropSet) Reset() {
	clear(s.names)
}
