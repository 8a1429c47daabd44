package cli

import (
	"context"
	"errors"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/addressbook/internal/parser"
)

var errFileRequired = errors.New("file path is required")

// AddFileCmd returns the addfile command.
func AddFileCmd(s *Session) *Command {
	fs := flag.NewFlagSet("addfile", flag.ContinueOnError)
	fs.Bool("sort", false, "Sort the address book after loading (default from sort_on_load)")

	return &Command{
		Flags: fs,
		Usage: "addfile <file> [--sort]",
		Short: "Add every person listed in a file",
		Long: `Add the people in a text file, one per line, using the add syntax:
  ` + parser.Usage + `

The file is loaded all or nothing. If any line is malformed, or any person
is already in the address book or listed twice, nobody is added.`,
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execAddFile(io, s, fs, args)
		},
	}
}

func execAddFile(io *IO, s *Session, fs *flag.FlagSet, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return errFileRequired
	}

	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.Config.EffectiveCwd, path)
	}

	added, err := s.Book.AddFromFile(path)
	if err != nil {
		return err
	}

	sortAfter := s.Config.SortsOnLoad()
	if fs.Changed("sort") {
		sortAfter, _ = fs.GetBool("sort")
	}

	if sortAfter {
		s.Book.Sort()
		s.show(nil)
	}

	io.Println("File loaded:", args[0])
	io.Println("People loaded:")

	for _, p := range added {
		io.Println(p.String())
	}

	return nil
}
