package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// ClearCmd returns the clear command.
func ClearCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("clear", flag.ContinueOnError),
		Usage: "clear",
		Short: "Remove all persons and tags",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			s.Book.Clear()
			s.show(nil)
			io.Println("Address book has been cleared!")

			return nil
		},
	}
}
