package book

import (
	"fmt"
	"slices"

	"github.com/calvinalkan/addressbook/internal/person"
)

// TagRegistry is the set of tags known to the address book, independent of
// which persons currently carry them.
type TagRegistry struct {
	tags person.TagSet
}

// Add registers tag, or returns [ErrDuplicateTag].
func (r *TagRegistry) Add(tag person.Tag) error {
	if r.tags.Contains(tag) {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, tag.Name)
	}

	r.tags = append(r.tags, tag)

	return nil
}

// Merge registers every tag in set that is not yet known.
func (r *TagRegistry) Merge(set person.TagSet) {
	for _, tag := range set {
		r.tags = r.tags.With(tag)
	}
}

// Remove retires tag, or returns [ErrTagNotFound].
func (r *TagRegistry) Remove(tag person.Tag) error {
	tags, ok := r.tags.Without(tag)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTagNotFound, tag.Name)
	}

	r.tags = tags

	return nil
}

// Contains reports whether tag is registered.
func (r *TagRegistry) Contains(tag person.Tag) bool {
	return r.tags.Contains(tag)
}

// All returns the registered tags in registration order.
func (r *TagRegistry) All() person.TagSet {
	return slices.Clone(r.tags)
}

// Len returns the number of registered tags.
func (r *TagRegistry) Len() int {
	return len(r.tags)
}

// Clear forgets every tag.
func (r *TagRegistry) Clear() {
	r.tags = nil
}
