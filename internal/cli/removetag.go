package cli

import (
	"context"
	"errors"

	flag "github.com/spf13/pflag"
)

var errTagRequired = errors.New("tag name is required")

// RemoveTagCmd returns the removetag command.
func RemoveTagCmd(s *Session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("removetag", flag.ContinueOnError),
		Usage: "removetag <tag>",
		Short: "Remove a tag from every person and forget it",
		Long: `Remove the tag from every person that has it, then remove it from the
list of known tags. Fails if the tag is not known.`,
		Example: "removetag friends",
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execRemoveTag(io, s, args)
		},
	}
}

func execRemoveTag(io *IO, s *Session, args []string) error {
	if len(args) == 0 {
		return errTagRequired
	}

	result, err := s.Book.RemoveTagEverywhere(args[0])

	// Listed copies still carry the old tags and no longer match the book.
	if len(result.Untagged) > 0 {
		s.show(nil)
	}

	for _, p := range result.Merged {
		io.Warn("merged duplicate person", p.String())
	}

	if err != nil {
		return err
	}

	io.Println("Removed Tag:", result.Tag.String())
	io.Printf("Untagged %d persons\n", len(result.Untagged))

	return nil
}
