// Package reader provides a cursor over a single command line and the
// primitive lexical reads the command tree is built on.
//
// Every typed read that fails leaves the cursor where it was when the read
// started, so a caller can retry the same input against another grammar branch.
package reader

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/footprint-tools/brig/internal/usage"
)

const (
	// Separator is the only character allowed between two arguments.
	Separator = ' '

	escapeChar = '\\'
	quoteChar  = '"'
)

// Reader is a mutable cursor over an immutable input string.
// A Reader is owned by a single parse call and must not be shared.
type Reader struct {
	input  string
	cursor int
}

// New returns a Reader positioned at the start of input.
func New(input string) *Reader {
	return &Reader{input: input}
}

// Clone returns an independent Reader with the same input and cursor.
func (r *Reader) Clone() *Reader {
	return &Reader{input: r.input, cursor: r.cursor}
}

// String returns the whole input.
func (r *Reader) String() string {
	return r.input
}

func (r *Reader) Cursor() int {
	return r.cursor
}

// SetCursor moves the cursor, clamped to [0, TotalLength()].
func (r *Reader) SetCursor(cursor int) {
	r.cursor = max(0, min(cursor, len(r.input)))
}

func (r *Reader) TotalLength() int {
	return len(r.input)
}

func (r *Reader) RemainingLength() int {
	return len(r.input) - r.cursor
}

// Consumed returns the input before the cursor.
func (r *Reader) Consumed() string {
	return r.input[:r.cursor]
}

// Remaining returns the input from the cursor on.
func (r *Reader) Remaining() string {
	return r.input[r.cursor:]
}

func (r *Reader) CanRead() bool {
	return r.CanReadN(1)
}

// CanReadN reports whether at least n more bytes are available.
func (r *Reader) CanReadN(n int) bool {
	return r.cursor+n <= len(r.input)
}

// Peek returns the byte under the cursor. The caller must check CanRead first.
func (r *Reader) Peek() byte {
	return r.input[r.cursor]
}

// PeekAt returns the byte offset positions after the cursor.
func (r *Reader) PeekAt(offset int) byte {
	return r.input[r.cursor+offset]
}

// Read returns the byte under the cursor and advances past it.
func (r *Reader) Read() byte {
	c := r.input[r.cursor]
	r.cursor++
	return c
}

func (r *Reader) Skip() {
	r.cursor++
}

// SkipWhitespace advances past any run of Unicode white space.
func (r *Reader) SkipWhitespace() {
	for r.CanRead() {
		c, size := r.peekRune()
		if !unicode.IsSpace(c) {
			return
		}
		r.cursor += size
	}
}

func (r *Reader) peekRune() (rune, int) {
	return utf8.DecodeRuneInString(r.input[r.cursor:])
}

// IsAllowedNumber reports whether c may appear in a numeric lexeme.
func IsAllowedNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}

// IsQuotedStringStart reports whether c opens a quoted string.
func IsQuotedStringStart(c byte) bool {
	return c == quoteChar
}

func (r *Reader) readNumberLexeme() string {
	start := r.cursor
	for r.CanRead() && IsAllowedNumber(r.Peek()) {
		r.Skip()
	}
	return r.input[start:r.cursor]
}

// ReadInt reads a 32-bit integer.
func (r *Reader) ReadInt() (int32, error) {
	start := r.cursor
	number := r.readNumberLexeme()
	if number == "" {
		return 0, usage.ReaderExpectedInt.CreateWithContext(r)
	}
	v, err := strconv.ParseInt(number, 10, 32)
	if err != nil {
		r.cursor = start
		return 0, usage.ReaderInvalidInt.CreateWithContext(r, number)
	}
	return int32(v), nil
}

// ReadLong reads a 64-bit integer.
func (r *Reader) ReadLong() (int64, error) {
	start := r.cursor
	number := r.readNumberLexeme()
	if number == "" {
		return 0, usage.ReaderExpectedLong.CreateWithContext(r)
	}
	v, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		r.cursor = start
		return 0, usage.ReaderInvalidLong.CreateWithContext(r, number)
	}
	return v, nil
}

// ReadFloat reads a 32-bit floating point number.
func (r *Reader) ReadFloat() (float32, error) {
	start := r.cursor
	number := r.readNumberLexeme()
	if number == "" {
		return 0, usage.ReaderExpectedFloat.CreateWithContext(r)
	}
	v, err := strconv.ParseFloat(number, 32)
	if err != nil {
		r.cursor = start
		return 0, usage.ReaderInvalidFloat.CreateWithContext(r, number)
	}
	return float32(v), nil
}

// ReadDouble reads a 64-bit floating point number.
func (r *Reader) ReadDouble() (float64, error) {
	start := r.cursor
	number := r.readNumberLexeme()
	if number == "" {
		return 0, usage.ReaderExpectedDouble.CreateWithContext(r)
	}
	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		r.cursor = start
		return 0, usage.ReaderInvalidDouble.CreateWithContext(r, number)
	}
	return v, nil
}

// ReadUnquotedString reads up to the next white space or the end of input.
func (r *Reader) ReadUnquotedString() string {
	start := r.cursor
	for r.CanRead() {
		c, size := r.peekRune()
		if unicode.IsSpace(c) {
			break
		}
		r.cursor += size
	}
	return r.input[start:r.cursor]
}

// ReadQuotedString reads a double-quoted string, resolving \" and \\ escapes.
// At the end of input it returns an empty string.
func (r *Reader) ReadQuotedString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	if !IsQuotedStringStart(r.Peek()) {
		return "", usage.ReaderExpectedStartOfQuote.CreateWithContext(r)
	}
	start := r.cursor
	r.Skip()
	s, err := r.ReadStringUntil(quoteChar)
	if err != nil {
		r.cursor = start
		return "", err
	}
	return s, nil
}

// ReadStringUntil reads until an unescaped terminator and consumes it.
// Only the terminator and the escape character itself may be escaped.
func (r *Reader) ReadStringUntil(terminator byte) (string, error) {
	start := r.cursor

	var b strings.Builder
	escaped := false
	for r.CanRead() {
		c := r.Read()
		switch {
		case escaped:
			if c != terminator && c != escapeChar {
				r.cursor--
				err := usage.ReaderInvalidEscape.CreateWithContext(r, string(c))
				r.cursor = start
				return "", err
			}
			b.WriteByte(c)
			escaped = false
		case c == escapeChar:
			escaped = true
		case c == terminator:
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}

	err := usage.ReaderExpectedEndOfQuote.CreateWithContext(r)
	r.cursor = start
	return "", err
}

// ReadString reads a quoted string if one starts at the cursor, otherwise an unquoted one.
func (r *Reader) ReadString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	if IsQuotedStringStart(r.Peek()) {
		return r.ReadQuotedString()
	}
	return r.ReadUnquotedString(), nil
}

// ReadBoolean reads the literal true or false.
func (r *Reader) ReadBoolean() (bool, error) {
	start := r.cursor
	value, err := r.ReadString()
	if err != nil {
		return false, err
	}
	switch value {
	case "":
		return false, usage.ReaderExpectedBool.CreateWithContext(r)
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		r.cursor = start
		return false, usage.ReaderInvalidBool.CreateWithContext(r, value)
	}
}

// Expect consumes c or fails without moving the cursor.
func (r *Reader) Expect(c byte) error {
	if !r.CanRead() || r.Peek() != c {
		return usage.ReaderExpectedSymbol.CreateWithContext(r, string(c))
	}
	r.Skip()
	return nil
}

// Escape wraps s in double quotes, escaping quotes and backslashes.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quoteChar)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quoteChar || c == escapeChar {
			b.WriteByte(escapeChar)
		}
		b.WriteByte(c)
	}
	b.WriteByte(quoteChar)
	return b.String()
}

// EscapeIfRequired quotes s only when ReadString would not return it verbatim.
func EscapeIfRequired(s string) string {
	if s == "" || strings.ContainsAny(s, `"\`) || strings.ContainsFunc(s, unicode.IsSpace) {
		return Escape(s)
	}
	return s
}
