package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	input  string
	cursor int
}

func (f fakeInput) String() string { return f.input }
func (f fakeInput) Cursor() int    { return f.cursor }

func TestError_WithoutContext(t *testing.T) {
	err := DispatcherUnknownCommand.Create()

	require.Equal(t, "Unknown command", err.Error())
	require.False(t, err.HasContext())
	require.Empty(t, err.Context())
	require.Equal(t, -1, err.Cursor)
}

func TestError_Context(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		cursor  int
		context string
	}{
		{"empty input", "", 0, "<--[HERE]"},
		{"short prefix", "time st", 5, "time <--[HERE]"},
		{"exactly ten chars", "0123456789abc", 10, "0123456789<--[HERE]"},
		{"long prefix is elided", "execute as steve run time", 20, "... steve run<--[HERE]"},
		{"cursor past end is clamped", "abc", 10, "abc<--[HERE]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DispatcherUnknownArgument.CreateWithContext(fakeInput{tt.input, tt.cursor})
			require.True(t, err.HasContext())
			require.Equal(t, tt.context, err.Context())
		})
	}
}

func TestError_MessageWithPosition(t *testing.T) {
	err := ReaderInvalidInt.CreateWithContext(fakeInput{"give steve 12x", 11}, "12x")

	require.Equal(t, "Invalid integer '12x'", err.RawMessage())
	require.Equal(t, "Invalid integer '12x' at position 11: ...ive steve <--[HERE]", err.Error())
}

func TestError_DynamicArities(t *testing.T) {
	require.Equal(t, "Integer must not be less than 0, found -1", IntegerTooLow.Create(-1, 0).Error())
	require.Equal(t, "Long must not be more than 10, found 11", LongTooHigh.Create(int64(11), int64(10)).Error())

	three := NewDynamic3Type("three", CategoryCommand, func(a, b, c any) string {
		return fmt.Sprintf("%v-%v-%v", a, b, c)
	})
	require.Equal(t, "1-2-3", three.Create(1, 2, 3).Error())

	many := NewDynamicNType("many", CategoryCommand, func(args ...any) string {
		return fmt.Sprint(len(args))
	})
	require.Equal(t, "4", many.Create(1, 2, 3, 4).Error())
	require.Equal(t, "0 at position 0: <--[HERE]", many.CreateWithContext(fakeInput{"", 0}).Error())
}

func TestError_TypeMatching(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", IntegerTooLow.Create(-1, 0))

	require.True(t, IsType(err, IntegerTooLow))
	require.False(t, IsType(err, IntegerTooHigh))
	require.False(t, IsType(errors.New("plain"), IntegerTooLow))

	require.ErrorIs(t, err, IntegerTooLow.Create(5, 6))
	require.NotErrorIs(t, err, LongTooLow.Create(5, 6))

	var ue *Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, CategorySemantic, ue.Category())
}

func TestError_GetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"lexical", ReaderExpectedInt.Create(), 2},
		{"structural", DispatcherUnknownCommand.Create(), 2},
		{"semantic", FloatTooHigh.Create(2, 1), 2},
		{"authorization", ConsoleUsageDenied.Create(), 1},
		{"command", CommandFailed.Create("no such player"), 1},
		{"untyped", &Error{Message: "x"}, 1},
		{"explicit", &Error{Type: ReaderExpectedInt, ExitCode: 7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.GetExitCode())
		})
	}
}

func TestCategory_String(t *testing.T) {
	require.Equal(t, "lexical", CategoryLexical.String())
	require.Equal(t, "authorization", CategoryAuthorization.String())
	require.Equal(t, "unknown", Category(99).String())
}

func TestErrorType_Identity(t *testing.T) {
	require.Equal(t, "literal_incorrect", LiteralIncorrect.Name())
	require.Equal(t, CategoryStructural, LiteralIncorrect.Category())
	require.Equal(t, "Expected literal time", LiteralIncorrect.Create("time").Error())
	require.Equal(t, "Option '--count' was specified more than once", AmbiguousOption.Create("count").Error())
}
