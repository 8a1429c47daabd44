package book

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/calvinalkan/addressbook/internal/person"
)

// UniquePersonList is an ordered list of persons in which no two entries
// are [person.Person.Equal].
//
// The zero value is an empty list. It is not safe for concurrent use.
type UniquePersonList struct {
	people []person.Person
}

// Add appends p. Returns [ErrDuplicatePerson] and leaves the list untouched
// if an equal person is already present.
func (l *UniquePersonList) Add(p person.Person) error {
	if l.Contains(p) {
		return fmt.Errorf("%w: %s", ErrDuplicatePerson, p.Name)
	}

	l.people = append(l.people, p.Clone())

	return nil
}

// Remove deletes the first person equal to p, or returns [ErrPersonNotFound].
func (l *UniquePersonList) Remove(p person.Person) error {
	i := l.index(p)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, p.Name)
	}

	l.people = slices.Delete(l.people, i, i+1)

	return nil
}

// Contains reports whether a person equal to p is present.
func (l *UniquePersonList) Contains(p person.Person) bool {
	return l.index(p) >= 0
}

// Len returns the number of persons.
func (l *UniquePersonList) Len() int {
	return len(l.people)
}

// All returns a copy of the persons in list order.
func (l *UniquePersonList) All() []person.Person {
	out := make([]person.Person, len(l.people))
	for i, p := range l.people {
		out[i] = p.Clone()
	}

	return out
}

// Clear removes every person.
func (l *UniquePersonList) Clear() {
	l.people = nil
}

// Sort orders persons by name, ignoring case. Equal names keep their
// relative order, so sorting twice changes nothing.
func (l *UniquePersonList) Sort() {
	fold := cases.Fold()

	slices.SortStableFunc(l.people, func(a, b person.Person) int {
		return strings.Compare(fold.String(a.Name), fold.String(b.Name))
	})
}

// RemoveTag drops tag from every person holding it and returns those
// persons as they are after the change.
//
// Two persons that differed only by tag become equal once it is gone. The
// later one is dropped so the list stays unique and returned in merged.
func (l *UniquePersonList) RemoveTag(tag person.Tag) (changed, merged []person.Person) {
	for i := range l.people {
		tags, ok := l.people[i].Tags.Without(tag)
		if !ok {
			continue
		}

		l.people[i].Tags = tags
		changed = append(changed, l.people[i].Clone())
	}

	if len(changed) == 0 {
		return nil, nil
	}

	kept := l.people[:0]

	for _, p := range l.people {
		if slices.ContainsFunc(kept, p.Equal) {
			merged = append(merged, p.Clone())

			continue
		}

		kept = append(kept, p)
	}

	clear(l.people[len(kept):])
	l.people = kept

	return changed, merged
}

func (l *UniquePersonList) index(p person.Person) int {
	return slices.IndexFunc(l.people, p.Equal)
}
