package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/addressbook/internal/book"
	"github.com/calvinalkan/addressbook/internal/person"
)

// TagsCmd returns the tags command.
func TagsCmd(s *Session) *Command {
	fs := flag.NewFlagSet("tags", flag.ContinueOnError)
	fs.StringArray("add", nil, "Register a tag without attaching it (repeatable)")

	return &Command{
		Flags: fs,
		Usage: "tags [--add <tag>]",
		Short: "List known tags",
		Long:  "List every known tag, whether or not a person currently carries it.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execTags(io, s, fs)
		},
	}
}

func execTags(io *IO, s *Session, fs *flag.FlagSet) error {
	names, _ := fs.GetStringArray("add")

	// Check every name first so a bad one registers nothing.
	var pending person.TagSet

	for _, name := range names {
		tag, err := person.NewTag(name)
		if err != nil {
			return err
		}

		if s.Book.ContainsTag(tag) || pending.Contains(tag) {
			return fmt.Errorf("%w: %s", book.ErrDuplicateTag, tag.Name)
		}

		pending = pending.With(tag)
	}

	for _, tag := range pending {
		err := s.Book.AddTag(tag)
		if err != nil {
			return err
		}
	}

	tags := s.Book.Tags()
	for _, tag := range tags {
		io.Println(tag.String())
	}

	io.Printf("%d tags listed!\n", len(tags))

	return nil
}
