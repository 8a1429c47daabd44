package cli

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/calvinalkan/addressbook/internal/book"
	"github.com/calvinalkan/addressbook/internal/config"
	"github.com/calvinalkan/addressbook/internal/fs"
	"github.com/calvinalkan/addressbook/internal/person"
)

var (
	errIndexRequired = errors.New("person index is required")
	errInvalidIndex  = errors.New("the person index provided is invalid")
)

// Session is the state shared by every command of one process: the address
// book, the resolved config, and the last listing shown to the user.
type Session struct {
	Book   *book.AddressBook
	Config *config.Config
	FS     fs.FS
	Log    *zap.Logger

	// lastShown is what list or find printed last; indices given to delete,
	// view and viewall point into it. Nil until something was listed.
	lastShown []person.Person
}

// NewSession creates an empty address book for cfg.
func NewSession(cfg *config.Config, fsys fs.FS, log *zap.Logger) *Session {
	return &Session{
		Book:   book.New(book.WithLogger(log), book.WithFS(fsys)),
		Config: cfg,
		FS:     fsys,
		Log:    log,
	}
}

// Preload loads every configured preload file. The first failure stops.
func (s *Session) Preload() error {
	for _, path := range s.Config.PreloadAbs {
		added, err := s.Book.AddFromFile(path)
		if err != nil {
			return fmt.Errorf("preload: %w", err)
		}

		s.Log.Debug("preloaded", zap.String("file", path), zap.Int("added", len(added)))
	}

	if s.Config.SortsOnLoad() {
		s.Book.Sort()
	}

	return nil
}

func (s *Session) show(people []person.Person) {
	s.lastShown = people
}

// target resolves a 1-based index from the last listing. Before anything
// was listed, indices refer to the whole book in its current order.
func (s *Session) target(args []string) (person.Person, error) {
	if len(args) == 0 {
		return person.Person{}, errIndexRequired
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return person.Person{}, fmt.Errorf("%w: %s", errInvalidIndex, args[0])
	}

	shown := s.lastShown
	if shown == nil {
		shown = s.Book.People()
	}

	if index < 1 || index > len(shown) {
		return person.Person{}, fmt.Errorf("%w: %d", errInvalidIndex, index)
	}

	return shown[index-1], nil
}
