package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// DeleteCmd returns the delete command.
func DeleteCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("delete", flag.ContinueOnError),
		Usage: "delete <index>",
		Short: "Delete the person at index",
		Long:  "Delete the person identified by the index number used in the last person listing.",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execDelete(io, s, args)
		},
	}
}

func execDelete(io *IO, s *Session, args []string) error {
	target, err := s.target(args)
	if err != nil {
		return err
	}

	err = s.Book.RemovePerson(target)
	if err != nil {
		return err
	}

	io.Println("Deleted Person:", target.String())

	return nil
}
