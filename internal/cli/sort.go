package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// SortCmd returns the sort command.
func SortCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("sort", flag.ContinueOnError),
		Usage: "sort",
		Short: "Sort persons by name",
		Long:  "Sort the address book by name, ignoring case. Persons with the same name keep their order.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			s.Book.Sort()
			s.show(nil)
			io.Println("Successfully sorted!")

			return nil
		},
	}
}
