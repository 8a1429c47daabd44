package book_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/calvinalkan/addressbook/internal/book"
	"github.com/calvinalkan/addressbook/internal/fs"
	"github.com/calvinalkan/addressbook/internal/parser"
	"github.com/calvinalkan/addressbook/internal/person"
)

const (
	aliceTanLine = "Alice Tan p/91234567 e/alice@example.com a/1 Main St"
	bobLeeLine   = "Bob Lee p/98765432 e/bob@example.com a/2 Side Rd t/golf"
)

func writeLines(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "people.txt")

	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
	require.NoError(t, err)

	return path
}

func Test_AddFromFile_Adds_People_In_File_Order_When_All_Lines_Valid(t *testing.T) {
	t.Parallel()

	b := book.New()
	path := writeLines(t, aliceTanLine, bobLeeLine)

	added, err := b.AddFromFile(path)
	require.NoError(t, err)

	want := []person.Person{mustPerson(t, aliceTanLine), mustPerson(t, bobLeeLine)}

	diff := cmp.Diff(want, added)
	assert.Empty(t, diff, "returned persons")

	diff = cmp.Diff(want, b.People())
	assert.Empty(t, diff, "stored persons")

	assert.True(t, b.ContainsTag(person.Tag{Name: "golf"}), "batch tags must be registered")
}

func Test_AddFromLines_Returns_Empty_Batch_When_No_Lines(t *testing.T) {
	t.Parallel()

	b := book.New()

	added, err := b.AddFromLines(nil)
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Equal(t, 0, b.Len())
}

func Test_AddFromFile_Leaves_Book_Empty_When_File_Repeats_A_Person(t *testing.T) {
	t.Parallel()

	b := book.New()
	path := writeLines(t, aliceTanLine, aliceTanLine)

	added, err := b.AddFromFile(path)
	require.ErrorIs(t, err, book.ErrBatchDuplicate)
	require.ErrorIs(t, err, book.ErrDuplicatePerson)
	assert.Nil(t, added)
	assert.Empty(t, b.People())

	var loadErr *book.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 2, loadErr.Line)
	assert.Equal(t, path, loadErr.Path)
}

func Test_AddFromFile_Rolls_Back_Whole_Batch_When_Person_Already_Stored(t *testing.T) {
	t.Parallel()

	b := book.New()
	require.NoError(t, b.AddPerson(mustPerson(t, aliceTanLine)))

	before := b.People()
	path := writeLines(t, bobLeeLine, aliceTanLine)

	_, err := b.AddFromFile(path)
	require.ErrorIs(t, err, book.ErrBatchDuplicate)

	diff := cmp.Diff(before, b.People())
	assert.Empty(t, diff, "book must equal its pre-batch state")
	assert.False(t, b.ContainsTag(person.Tag{Name: "golf"}), "failed batch must not register tags")
}

func Test_AddFromLines_Keeps_Existing_Person_When_Rolling_Back_Equal_Value(t *testing.T) {
	t.Parallel()

	b := book.New()

	existing := []string{carolLine, aliceTanLine}
	for _, line := range existing {
		require.NoError(t, b.AddPerson(mustPerson(t, line)))
	}

	before := b.People()

	// Dan and Bob are added, then Carol collides. Rollback must remove Dan
	// and Bob only, never the stored Carol.
	_, err := b.AddFromLines([]string{
		"Dan p/4 e/d@x.com a/x",
		bobLeeLine,
		carolLine,
		"Eve p/5 e/e@x.com a/x",
	})
	require.ErrorIs(t, err, book.ErrBatchDuplicate)

	diff := cmp.Diff(before, b.People())
	assert.Empty(t, diff)
}

func Test_AddFromFile_Returns_ErrMalformedLine_When_Second_Line_Invalid(t *testing.T) {
	t.Parallel()

	b := book.New()
	require.NoError(t, b.AddPerson(mustPerson(t, carolLine)))

	before := b.People()
	path := writeLines(t, aliceTanLine, "Bob Lee 98765432 bob@example.com", bobLeeLine)

	_, err := b.AddFromFile(path)
	require.ErrorIs(t, err, book.ErrMalformedLine)
	require.ErrorIs(t, err, parser.ErrNoMatch)
	assert.NotErrorIs(t, err, book.ErrBatchDuplicate)

	var loadErr *book.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 2, loadErr.Line)
	assert.Equal(t, "Bob Lee 98765432 bob@example.com", loadErr.Text)
	assert.Contains(t, err.Error(), "line=2")

	diff := cmp.Diff(before, b.People())
	assert.Empty(t, diff)
}

func Test_AddFromLines_Returns_ErrMalformedLine_When_Field_Value_Invalid(t *testing.T) {
	t.Parallel()

	b := book.New()

	_, err := b.AddFromLines([]string{
		aliceTanLine,
		"Bob Lee p/98765432 e/not-an-email a/2 Side Rd",
	})
	require.ErrorIs(t, err, book.ErrMalformedLine)
	require.ErrorIs(t, err, person.ErrInvalidEmail)
	assert.Equal(t, 0, b.Len())
}

func Test_AddFromLines_Returns_ErrMalformedLine_When_Line_Blank(t *testing.T) {
	t.Parallel()

	b := book.New()

	_, err := b.AddFromLines([]string{aliceTanLine, ""})
	require.ErrorIs(t, err, book.ErrMalformedLine)
	assert.Equal(t, 0, b.Len())
}

func Test_AddFromFile_Returns_ErrFileAccess_When_File_Missing(t *testing.T) {
	t.Parallel()

	b := book.New()

	_, err := b.AddFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, book.ErrFileAccess)
	require.ErrorIs(t, err, iofs.ErrNotExist)
	assert.NotErrorIs(t, err, book.ErrMalformedLine)
}

func Test_AddFromFile_Returns_ErrFileAccess_When_Path_Is_Directory(t *testing.T) {
	t.Parallel()

	b := book.New()

	_, err := b.AddFromFile(t.TempDir())
	require.ErrorIs(t, err, book.ErrFileAccess)
	assert.Equal(t, 0, b.Len())
}

func Test_AddFromFile_Returns_ErrFileAccess_When_Open_Fails(t *testing.T) {
	t.Parallel()

	path := writeLines(t, aliceTanLine)

	fsys := fs.NewInjected(nil)
	fsys.Fail(path, nil)

	b := book.New(book.WithFS(fsys))

	_, err := b.AddFromFile(path)
	require.ErrorIs(t, err, book.ErrFileAccess)
	require.ErrorIs(t, err, fs.ErrInjected)
	assert.Equal(t, 0, b.Len())

	fsys.Heal(path)

	added, err := b.AddFromFile(path)
	require.NoError(t, err)
	assert.Len(t, added, 1)
}

func Test_AddFromLines_Uses_Custom_Parser_When_Configured(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	calls := 0

	b := book.New(book.WithParser(func(line string) (person.Person, error) {
		calls++
		if line == "bad" {
			return person.Person{}, errBoom
		}

		return parser.Parse(line)
	}))

	_, err := b.AddFromLines([]string{aliceTanLine, "bad", bobLeeLine})
	require.ErrorIs(t, err, errBoom)
	require.ErrorIs(t, err, book.ErrMalformedLine)
	assert.Equal(t, 2, calls, "parsing stops at the first bad line")
}

func Test_AddFromLines_Logs_Rollback_When_Batch_Collides(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	b := book.New(book.WithLogger(zap.New(core)))

	_, err := b.AddFromLines([]string{aliceTanLine, bobLeeLine, aliceTanLine})
	require.ErrorIs(t, err, book.ErrBatchDuplicate)

	entries := logs.FilterMessage("batch rolled back").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["rolled_back"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["line"])
}

func Test_ReadLines_Strips_Line_Endings_When_CRLF(t *testing.T) {
	t.Parallel()

	lines, err := book.ReadLines(strings.NewReader("a\r\nb\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
