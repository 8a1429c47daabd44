// Package parser reads the person fields of an add command.
//
// The syntax is
//
//	NAME [p]p/PHONE [p]e/EMAIL [p]a/ADDRESS [t/TAG]...
//
// A "p" directly before a field prefix marks that field private.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/calvinalkan/addressbook/internal/person"
)

// ErrNoMatch reports a line that does not follow the add syntax.
var ErrNoMatch = errors.New("parser: no match")

// Usage describes the accepted syntax.
const Usage = "NAME [p]p/PHONE [p]e/EMAIL [p]a/ADDRESS  [t/TAG]..."

var personArgs = regexp.MustCompile(`^(?P<name>[^/]+)` +
	` (?P<phonePrivate>p?)p/(?P<phone>[^/]+)` +
	` (?P<emailPrivate>p?)e/(?P<email>[^/]+)` +
	` (?P<addressPrivate>p?)a/(?P<address>[^/]+)` +
	`(?P<tags>(?: t/[^/]+)*)$`)

// Fields are the raw values of one line, before validation.
type Fields struct {
	Name    string
	Phone   person.Field
	Email   person.Field
	Address person.Field
	Tags    []string
}

// Split matches line against the add syntax without validating values.
func Split(line string) (Fields, error) {
	m := personArgs.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Fields{}, ErrNoMatch
	}

	group := func(name string) string {
		return m[personArgs.SubexpIndex(name)]
	}

	return Fields{
		Name:    group("name"),
		Phone:   person.Field{Value: group("phone"), Private: group("phonePrivate") != ""},
		Email:   person.Field{Value: group("email"), Private: group("emailPrivate") != ""},
		Address: person.Field{Value: group("address"), Private: group("addressPrivate") != ""},
		Tags:    splitTags(group("tags")),
	}, nil
}

// Parse matches line and builds a validated person.
//
// Lines that do not follow the syntax return [ErrNoMatch]. Lines that do but
// carry invalid values return the [person] validation error.
func Parse(line string) (person.Person, error) {
	fields, err := Split(line)
	if err != nil {
		return person.Person{}, err
	}

	tags, err := person.NewTagSet(fields.Tags...)
	if err != nil {
		return person.Person{}, err
	}

	return person.New(fields.Name, fields.Phone, fields.Email, fields.Address, tags)
}

func splitTags(raw string) []string {
	raw = strings.TrimPrefix(raw, " t/")
	if raw == "" {
		return nil
	}

	return strings.Split(raw, " t/")
}
