package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/addressbook/internal/parser"
)

var errInvalidFormat = errors.New("invalid command format")

// AddCmd returns the add command.
func AddCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("add", flag.ContinueOnError),
		Usage: "add " + parser.Usage,
		Short: "Add a person",
		Long: `Add a person to the address book.

Contact details can be marked private by prepending "p" to the prefix.`,
		Example: "add John Doe p/98765432 e/johnd@gmail.com a/John street, block 123, #01-01 t/friends",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execAdd(io, s, args)
		},
	}
}

func execAdd(io *IO, s *Session, args []string) error {
	p, err := parser.Parse(strings.Join(args, " "))
	if errors.Is(err, parser.ErrNoMatch) {
		return fmt.Errorf("%w, expected: add %s", errInvalidFormat, parser.Usage)
	}

	if err != nil {
		return err
	}

	err = s.Book.AddPerson(p)
	if err != nil {
		return err
	}

	io.Println("New person added:", p.String())

	return nil
}
