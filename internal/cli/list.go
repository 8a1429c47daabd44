package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/addressbook/internal/book"
	"github.com/calvinalkan/addressbook/internal/person"
)

var errKeywordRequired = errors.New("at least one keyword is required")

// ListCmd returns the list command.
func ListCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("list", flag.ContinueOnError),
		Usage: "list",
		Short: "List all persons with index numbers",
		Long:  "Display all persons in the address book as a list with index numbers. Private details are hidden.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execList(io, s, s.Book.People())
		},
	}
}

// FindCmd returns the find command.
func FindCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("find", flag.ContinueOnError),
		Usage: "find <keyword>...",
		Short: "Find persons whose names contain any keyword",
		Long: `Find all persons whose names contain any of the specified keywords
as a whole word and display them as a list with index numbers. Case sensitive.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			if len(args) == 0 {
				return errKeywordRequired
			}

			return execList(io, s, s.Book.Find(args))
		},
	}
}

// ViewCmd returns the view command.
func ViewCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("view", flag.ContinueOnError),
		Usage: "view <index>",
		Short: "Show the non-private details of a person",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execView(io, s, args, true)
		},
	}
}

// ViewAllCmd returns the viewall command.
func ViewAllCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("viewall", flag.ContinueOnError),
		Usage: "viewall <index>",
		Short: "Show all details of a person, including private ones",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execView(io, s, args, false)
		},
	}
}

func execList(io *IO, s *Session, people []person.Person) error {
	if people == nil {
		people = []person.Person{}
	}

	s.show(people)

	for i, p := range people {
		io.Printf("%d. %s\n", i+1, p.HidePrivate())
	}

	io.Printf("%d persons listed!\n", len(people))

	return nil
}

func execView(io *IO, s *Session, args []string, hidePrivate bool) error {
	target, err := s.target(args)
	if err != nil {
		return err
	}

	if !s.Book.ContainsPerson(target) {
		return fmt.Errorf("%w: %s", book.ErrPersonNotFound, target.Name)
	}

	if hidePrivate {
		io.Println("Viewing person:", target.HidePrivate())
	} else {
		io.Println("Viewing person:", target.String())
	}

	return nil
}
