package book

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/calvinalkan/addressbook/internal/fs"
	"github.com/calvinalkan/addressbook/internal/parser"
	"github.com/calvinalkan/addressbook/internal/person"
)

// maxLineBytes bounds a single line read from a batch file.
const maxLineBytes = 1 << 20

// LineParser turns one line of add-command syntax into a person.
type LineParser func(line string) (person.Person, error)

// ReadLines consumes r fully and returns its lines without line endings.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	err := scanner.Err()
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// AddFromFile loads every line of the file at path as one batch.
//
// Files that cannot be opened or read fail with [ErrFileAccess] before the
// book is touched. Everything else behaves like [AddressBook.AddFromLines].
func (b *AddressBook) AddFromFile(path string) ([]person.Person, error) {
	lines, err := readFile(b.fs, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrFileAccess, err)}
	}

	return b.addBatch(path, lines)
}

// AddFromLines adds one person per line, all or nothing.
//
// Every line is parsed before anything is inserted. The first line that does
// not parse fails the call with [ErrMalformedLine]. If any person turns out to
// be a duplicate, of a stored person or of an earlier line, the persons
// already added by this call are removed again and the call fails with
// [ErrBatchDuplicate]. Both errors are a [*LoadError] naming the line.
//
// On success the added persons are returned in line order and their tags are
// registered.
func (b *AddressBook) AddFromLines(lines []string) ([]person.Person, error) {
	return b.addBatch("", lines)
}

func (b *AddressBook) addBatch(path string, lines []string) ([]person.Person, error) {
	log := b.log.With(zap.String("file", path), zap.Int("lines", len(lines)))

	batch, err := b.parseAll(path, lines)
	if err != nil {
		log.Debug("batch aborted before insert", zap.Error(err))

		return nil, err
	}

	added := make([]person.Person, 0, len(batch))

	for i, p := range batch {
		addErr := b.people.Add(p)
		if addErr == nil {
			added = append(added, p)

			continue
		}

		b.rollback(log, added)

		log.Debug("batch rolled back",
			zap.Int("line", i+1),
			zap.Int("rolled_back", len(added)),
			zap.Error(addErr),
		)

		return nil, &LoadError{
			Path: path,
			Line: i + 1,
			Text: lines[i],
			Err:  fmt.Errorf("%w: %w", ErrBatchDuplicate, addErr),
		}
	}

	for _, p := range added {
		b.tags.Merge(p.Tags)
	}

	log.Debug("batch committed", zap.Int("added", len(added)))

	return added, nil
}

func (b *AddressBook) parseAll(path string, lines []string) ([]person.Person, error) {
	parse := b.parse
	if parse == nil {
		parse = parser.Parse
	}

	batch := make([]person.Person, 0, len(lines))

	for i, line := range lines {
		p, err := parse(line)
		if err != nil {
			return nil, &LoadError{
				Path: path,
				Line: i + 1,
				Text: line,
				Err:  fmt.Errorf("%w: %w", ErrMalformedLine, err),
			}
		}

		batch = append(batch, p)
	}

	return batch, nil
}

// rollback removes added in reverse order. A person that is already gone is
// skipped and removal failures are only logged: the caller reports the
// duplicate, not the cleanup.
func (b *AddressBook) rollback(log *zap.Logger, added []person.Person) {
	for i := len(added) - 1; i >= 0; i-- {
		p := added[i]

		if !b.people.Contains(p) {
			log.Warn("rollback: person already absent", zap.String("name", p.Name))

			continue
		}

		err := b.people.Remove(p)
		if err != nil {
			log.Warn("rollback: remove failed", zap.String("name", p.Name), zap.Error(err))
		}
	}
}

func readFile(fsys fs.FS, path string) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}
