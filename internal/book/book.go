// Package book is the in-memory address book: a unique, ordered list of
// persons, the registry of known tags, and the multi-record operations
// built on them (batch loading and tag removal).
//
// An [AddressBook] is a session object. Create one per process (or per test)
// and hand it to whatever executes commands. It is not safe for concurrent
// use; callers run one command to completion before starting the next.
package book

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/calvinalkan/addressbook/internal/fs"
	"github.com/calvinalkan/addressbook/internal/person"
)

// AddressBook owns the persons and the tag registry.
type AddressBook struct {
	people UniquePersonList
	tags   TagRegistry
	parse  LineParser
	fs     fs.FS
	log    *zap.Logger
}

// Option configures an [AddressBook].
type Option func(*AddressBook)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(b *AddressBook) {
		if log != nil {
			b.log = log
		}
	}
}

// WithParser sets the parser used by the batch loader.
func WithParser(parse LineParser) Option {
	return func(b *AddressBook) {
		b.parse = parse
	}
}

// WithFS sets the filesystem batch files are read from. The default is the
// real filesystem.
func WithFS(fsys fs.FS) Option {
	return func(b *AddressBook) {
		if fsys != nil {
			b.fs = fsys
		}
	}
}

// New returns an empty address book.
func New(opts ...Option) *AddressBook {
	b := &AddressBook{fs: fs.NewReal(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddPerson stores p and registers its tags.
func (b *AddressBook) AddPerson(p person.Person) error {
	err := b.people.Add(p)
	if err != nil {
		return err
	}

	b.tags.Merge(p.Tags)

	return nil
}

// RemovePerson deletes the person equal to p. Its tags stay registered.
func (b *AddressBook) RemovePerson(p person.Person) error {
	return b.people.Remove(p)
}

// ContainsPerson reports whether a person equal to p is stored.
func (b *AddressBook) ContainsPerson(p person.Person) bool {
	return b.people.Contains(p)
}

// People returns a copy of all persons in order.
func (b *AddressBook) People() []person.Person {
	return b.people.All()
}

// Len returns the number of persons.
func (b *AddressBook) Len() int {
	return b.people.Len()
}

// AddTag registers a tag that no person needs to carry yet.
func (b *AddressBook) AddTag(tag person.Tag) error {
	return b.tags.Add(tag)
}

// ContainsTag reports whether tag is registered.
func (b *AddressBook) ContainsTag(tag person.Tag) bool {
	return b.tags.Contains(tag)
}

// Tags returns the registered tags.
func (b *AddressBook) Tags() person.TagSet {
	return b.tags.All()
}

// Sort orders persons by name, ignoring case.
func (b *AddressBook) Sort() {
	b.people.Sort()
}

// Clear empties the persons and the tag registry.
func (b *AddressBook) Clear() {
	b.people.Clear()
	b.tags.Clear()
}

// Find returns the persons whose name contains any of keywords as a whole
// word. Matching is case sensitive.
func (b *AddressBook) Find(keywords []string) []person.Person {
	var found []person.Person

	for _, p := range b.people.All() {
		words := strings.Fields(p.Name)

		for _, kw := range keywords {
			if slices.Contains(words, kw) {
				found = append(found, p)

				break
			}
		}
	}

	return found
}
