// Package person holds the contact record value types.
//
// A [Person] is built fully formed by [New] and compared by value with
// [Person.Equal]. Privacy flags never take part in equality.
package person

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors. Callers wrap them with the offending value.
var (
	ErrInvalidName    = errors.New("person names should be spaces or alphanumeric characters")
	ErrInvalidPhone   = errors.New("person phone numbers should only contain numbers")
	ErrInvalidEmail   = errors.New("person emails should be 2 alphanumeric/period strings separated by '@'")
	ErrInvalidAddress = errors.New("person addresses can be in any format but cannot be empty")
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N} ]+$`)
	phonePattern = regexp.MustCompile(`^\d+$`)
	emailPattern = regexp.MustCompile(`^[\w.]+@[\w.]+$`)
)

// Field is a contact detail that can be hidden from listings.
type Field struct {
	Value   string
	Private bool
}

// Person is a single contact.
//
// Everything except Tags is fixed once the person is stored. Tags may lose
// entries when a tag is removed from the whole book.
type Person struct {
	Name    string
	Phone   Field
	Email   Field
	Address Field
	Tags    TagSet
}

// New validates all values and returns the person.
func New(name string, phone, email, address Field, tags TagSet) (Person, error) {
	name = strings.TrimSpace(name)
	if name == "" || !namePattern.MatchString(name) {
		return Person{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	phone.Value = strings.TrimSpace(phone.Value)
	if !phonePattern.MatchString(phone.Value) {
		return Person{}, fmt.Errorf("%w: %q", ErrInvalidPhone, phone.Value)
	}

	email.Value = strings.TrimSpace(email.Value)
	if !emailPattern.MatchString(email.Value) {
		return Person{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email.Value)
	}

	address.Value = strings.TrimSpace(address.Value)
	if address.Value == "" {
		return Person{}, ErrInvalidAddress
	}

	var unique TagSet
	for _, tag := range tags {
		unique = unique.With(tag)
	}

	return Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    unique,
	}, nil
}

// Equal reports whether p and other describe the same contact.
func (p Person) Equal(other Person) bool {
	return p.Name == other.Name &&
		p.Phone.Value == other.Phone.Value &&
		p.Email.Value == other.Email.Value &&
		p.Address.Value == other.Address.Value &&
		p.Tags.Equal(other.Tags)
}

// Clone returns a copy that shares no tag storage with p.
func (p Person) Clone() Person {
	p.Tags = p.Tags.Clone()

	return p
}

// String renders every field, including private ones.
func (p Person) String() string {
	return p.format(false)
}

// HidePrivate renders the person with private fields left out.
func (p Person) HidePrivate() string {
	return p.format(true)
}

func (p Person) format(hidePrivate bool) string {
	var b strings.Builder

	b.WriteString(p.Name)

	for _, f := range []struct {
		label string
		field Field
	}{
		{"Phone", p.Phone},
		{"Email", p.Email},
		{"Address", p.Address},
	} {
		if hidePrivate && f.field.Private {
			continue
		}

		b.WriteString(" ")

		if f.field.Private {
			b.WriteString("(private) ")
		}

		b.WriteString(f.label)
		b.WriteString(": ")
		b.WriteString(f.field.Value)
	}

	b.WriteString(" Tags: ")
	b.WriteString(p.Tags.String())

	return b.String()
}
