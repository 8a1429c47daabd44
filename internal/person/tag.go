package person

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidTagName reports a tag name that is empty or not alphanumeric.
var ErrInvalidTagName = errors.New("tags names should be alphanumeric")

var tagPattern = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag is a label compared by name.
type Tag struct {
	Name string
}

// NewTag validates name and returns the tag.
func NewTag(name string) (Tag, error) {
	name = strings.TrimSpace(name)
	if !tagPattern.MatchString(name) {
		return Tag{}, fmt.Errorf("%w: %q", ErrInvalidTagName, name)
	}

	return Tag{Name: name}, nil
}

// String renders the tag as [name].
func (t Tag) String() string {
	return "[" + t.Name + "]"
}

// TagSet is an insertion-ordered set of tags. The zero value is empty.
type TagSet []Tag

// NewTagSet builds a set from raw names, dropping repeats.
func NewTagSet(names ...string) (TagSet, error) {
	var set TagSet

	for _, name := range names {
		tag, err := NewTag(name)
		if err != nil {
			return nil, err
		}

		set = set.With(tag)
	}

	return set, nil
}

// Contains reports whether a tag with the same name is present.
func (s TagSet) Contains(tag Tag) bool {
	return s.index(tag) >= 0
}

// With returns s plus tag. s is returned unchanged if the tag is present.
func (s TagSet) With(tag Tag) TagSet {
	if s.Contains(tag) {
		return s
	}

	return append(s, tag)
}

// Without returns s minus tag and whether tag was present.
// The result never aliases s.
func (s TagSet) Without(tag Tag) (TagSet, bool) {
	i := s.index(tag)
	if i < 0 {
		return s, false
	}

	out := make(TagSet, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)

	return out, true
}

// Equal compares tag names, ignoring order.
func (s TagSet) Equal(other TagSet) bool {
	if len(s) != len(other) {
		return false
	}

	for _, t := range s {
		if !other.Contains(t) {
			return false
		}
	}

	return true
}

// Clone copies the set. A nil set stays nil.
func (s TagSet) Clone() TagSet {
	if s == nil {
		return nil
	}

	out := make(TagSet, len(s))
	copy(out, s)

	return out
}

// Names returns the tag names in order.
func (s TagSet) Names() []string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.Name
	}

	return names
}

func (s TagSet) String() string {
	var b strings.Builder
	for _, t := range s {
		b.WriteString(t.String())
	}

	return b.String()
}

func (s TagSet) index(tag Tag) int {
	for i, t := range s {
		if t.Name == tag.Name {
			return i
		}
	}

	return -1
}
