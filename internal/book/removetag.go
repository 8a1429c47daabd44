package book

import (
	"go.uber.org/zap"

	"github.com/calvinalkan/addressbook/internal/person"
)

// RemoveTagResult reports what [AddressBook.RemoveTagEverywhere] changed.
type RemoveTagResult struct {
	Tag person.Tag

	// Untagged are the persons that lost the tag, as they are now.
	Untagged []person.Person

	// Merged are persons dropped because losing the tag made them equal to
	// an earlier person.
	Merged []person.Person
}

// RemoveTagEverywhere strips the tag named name from every person, then
// removes it from the registry.
//
// An invalid name fails with [person.ErrInvalidTagName] before anything
// changes. A name that was never registered fails with [ErrTagNotFound];
// persons that carried the tag anyway have already lost it by then and keep
// it that way, and the returned result still reports them.
func (b *AddressBook) RemoveTagEverywhere(name string) (RemoveTagResult, error) {
	tag, err := person.NewTag(name)
	if err != nil {
		return RemoveTagResult{}, err
	}

	untagged, merged := b.people.RemoveTag(tag)
	result := RemoveTagResult{Tag: tag, Untagged: untagged, Merged: merged}

	log := b.log.With(zap.String("tag", tag.Name))

	for _, p := range merged {
		log.Warn("merged duplicate person after tag removal", zap.String("name", p.Name))
	}

	err = b.tags.Remove(tag)
	if err != nil {
		log.Debug("tag not registered", zap.Int("untagged", len(untagged)))

		return result, err
	}

	log.Debug("tag removed", zap.Int("untagged", len(untagged)), zap.Int("merged", len(merged)))

	return result, nil
}
