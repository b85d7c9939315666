package usage

import (
	"errors"
	"fmt"
	"strings"
)

// Category tells which stage of command handling produced an error.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryLexical
	CategoryStructural
	CategorySemantic
	CategoryAuthorization
	CategoryCommand
)

func (c Category) String() string {
	switch c {
	case CategoryLexical:
		return "lexical"
	case CategoryStructural:
		return "structural"
	case CategorySemantic:
		return "semantic"
	case CategoryAuthorization:
		return "authorization"
	case CategoryCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: failures outside the user's input
//	  - Unknown errors
//	  - Authorization (console usage denied)
//	  - Command handler failures
//
//	Exit 2: user input errors
//	  - Lexical (malformed numbers, booleans, quotes)
//	  - Structural (unknown command, unknown argument, missing separator)
//	  - Semantic (value out of range)
var exitCodes = map[Category]int{
	CategoryUnknown:       1,
	CategoryLexical:       2,
	CategoryStructural:    2,
	CategorySemantic:      2,
	CategoryAuthorization: 1,
	CategoryCommand:       1,
}

// contextAmount is how many characters before the cursor are shown in the snippet.
const contextAmount = 10

// Error is a user-facing failure raised while reading, parsing or executing a command line.
type Error struct {
	Type     ErrorType
	Message  string
	Input    string
	Cursor   int
	ExitCode int // overrides the category exit code when non-zero

	hasContext bool
}

// Error implements the error interface.
// With input context the message is followed by the position and a snippet:
//
//	Unknown command at position 5: time <--[HERE]
func (e *Error) Error() string {
	if !e.hasContext {
		return e.Message
	}
	return fmt.Sprintf("%s at position %d: %s", e.Message, e.Cursor, e.Context())
}

// RawMessage returns the message without position information.
func (e *Error) RawMessage() string {
	return e.Message
}

// HasContext reports whether the error carries the offending input and cursor.
func (e *Error) HasContext() bool {
	return e.hasContext
}

// Context renders up to ten characters before the cursor followed by a marker.
// Returns an empty string when the error has no input context.
func (e *Error) Context() string {
	if !e.hasContext {
		return ""
	}

	cursor := min(len(e.Input), e.Cursor)

	var b strings.Builder
	if cursor > contextAmount {
		b.WriteString("...")
	}
	b.WriteString(e.Input[max(0, cursor-contextAmount):cursor])
	b.WriteString("<--[HERE]")
	return b.String()
}

// Category returns the category of the error type, or CategoryUnknown.
func (e *Error) Category() Category {
	if e.Type == nil {
		return CategoryUnknown
	}
	return e.Type.Category()
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from the category.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Category()]; ok {
		return code
	}
	return 1
}

// Is matches another *Error of the same type, so errors.Is works against
// a value produced by the same ErrorType.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Type != nil && other.Type == e.Type
}

// IsType reports whether err is (or wraps) an *Error produced by t.
func IsType(err error, t ErrorType) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Type == t
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
