package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/addressbook/internal/parser"
	"github.com/calvinalkan/addressbook/internal/person"
)

func Test_Split_Extracts_Fields_When_Line_Matches(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		line string
		want parser.Fields
	}{
		{
			name: "AllPublic",
			line: "John Doe p/98765432 e/johnd@gmail.com a/311, Clementi Ave 2, #02-25",
			want: parser.Fields{
				Name:    "John Doe",
				Phone:   person.Field{Value: "98765432"},
				Email:   person.Field{Value: "johnd@gmail.com"},
				Address: person.Field{Value: "311, Clementi Ave 2, #02-25"},
			},
		},
		{
			name: "PrivateFieldsAndTags",
			line: "Betsy Crowe pp/1234567 pe/betsy@ex.com pa/Newgate Prison t/criminal t/friend",
			want: parser.Fields{
				Name:    "Betsy Crowe",
				Phone:   person.Field{Value: "1234567", Private: true},
				Email:   person.Field{Value: "betsy@ex.com", Private: true},
				Address: person.Field{Value: "Newgate Prison", Private: true},
				Tags:    []string{"criminal", "friend"},
			},
		},
		{
			name: "SurroundingWhitespace",
			line: "  Ann p/1 e/a@x.com a/x t/solo  ",
			want: parser.Fields{
				Name:    "Ann",
				Phone:   person.Field{Value: "1"},
				Email:   person.Field{Value: "a@x.com"},
				Address: person.Field{Value: "x"},
				Tags:    []string{"solo"},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := parser.Split(testCase.line)
			require.NoError(t, err)

			diff := cmp.Diff(testCase.want, got, cmpopts.EquateEmpty())
			assert.Empty(t, diff)
		})
	}
}

func Test_Split_Returns_ErrNoMatch_When_Line_Does_Not_Match(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"",
		"John Doe",
		"John Doe 98765432 johnd@gmail.com",
		"John Doe e/johnd@gmail.com p/98765432 a/x",
		"John Doe p/98765432 e/johnd@gmail.com",
	} {
		_, err := parser.Split(line)
		require.ErrorIs(t, err, parser.ErrNoMatch, "line %q", line)
	}
}

func Test_Parse_Returns_Validation_Error_When_Values_Invalid(t *testing.T) {
	t.Parallel()

	_, err := parser.Parse("John Doe p/12ab e/johnd@gmail.com a/x")
	require.ErrorIs(t, err, person.ErrInvalidPhone)

	_, err = parser.Parse("John Doe p/123 e/johnd@gmail.com a/x t/not-ok")
	require.ErrorIs(t, err, person.ErrInvalidTagName)
}

func Test_Parse_Builds_Person_When_Line_Valid(t *testing.T) {
	t.Parallel()

	p, err := parser.Parse("John Doe p/98765432 pe/johnd@gmail.com a/x t/friends t/friends")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", p.Name)
	assert.True(t, p.Email.Private)
	assert.Equal(t, []string{"friends"}, p.Tags.Names())
}
