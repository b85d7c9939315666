package usage

import "fmt"

func tooLow(kind string) func(found, min any) string {
	return func(found, min any) string {
		return fmt.Sprintf("%s must not be less than %v, found %v", kind, min, found)
	}
}

func tooHigh(kind string) func(found, max any) string {
	return func(found, max any) string {
		return fmt.Sprintf("%s must not be more than %v, found %v", kind, max, found)
	}
}

func invalidLexeme(kind string) func(a any) string {
	return func(a any) string {
		return fmt.Sprintf("Invalid %s '%v'", kind, a)
	}
}

// Range errors. Arguments are (found, bound).
var (
	DoubleTooLow   = NewDynamic2Type("double_too_low", CategorySemantic, tooLow("Double"))
	DoubleTooHigh  = NewDynamic2Type("double_too_high", CategorySemantic, tooHigh("Double"))
	FloatTooLow    = NewDynamic2Type("float_too_low", CategorySemantic, tooLow("Float"))
	FloatTooHigh   = NewDynamic2Type("float_too_high", CategorySemantic, tooHigh("Float"))
	IntegerTooLow  = NewDynamic2Type("integer_too_low", CategorySemantic, tooLow("Integer"))
	IntegerTooHigh = NewDynamic2Type("integer_too_high", CategorySemantic, tooHigh("Integer"))
	LongTooLow     = NewDynamic2Type("long_too_low", CategorySemantic, tooLow("Long"))
	LongTooHigh    = NewDynamic2Type("long_too_high", CategorySemantic, tooHigh("Long"))
)

// Reader errors.
var (
	ReaderExpectedStartOfQuote = NewSimpleType("reader_expected_start_of_quote", CategoryLexical, "Expected quote to start a string")
	ReaderExpectedEndOfQuote   = NewSimpleType("reader_expected_end_of_quote", CategoryLexical, "Unclosed quoted string")
	ReaderInvalidEscape        = NewDynamic1Type("reader_invalid_escape", CategoryLexical, func(a any) string {
		return fmt.Sprintf("Invalid escape sequence '%v' in quoted string", a)
	})
	ReaderInvalidBool = NewDynamic1Type("reader_invalid_bool", CategoryLexical, func(a any) string {
		return fmt.Sprintf("Invalid bool, expected true or false but found '%v'", a)
	})
	ReaderExpectedBool   = NewSimpleType("reader_expected_bool", CategoryLexical, "Expected bool")
	ReaderInvalidInt     = NewDynamic1Type("reader_invalid_int", CategoryLexical, invalidLexeme("integer"))
	ReaderExpectedInt    = NewSimpleType("reader_expected_int", CategoryLexical, "Expected integer")
	ReaderInvalidLong    = NewDynamic1Type("reader_invalid_long", CategoryLexical, invalidLexeme("long"))
	ReaderExpectedLong   = NewSimpleType("reader_expected_long", CategoryLexical, "Expected long")
	ReaderInvalidFloat   = NewDynamic1Type("reader_invalid_float", CategoryLexical, invalidLexeme("float"))
	ReaderExpectedFloat  = NewSimpleType("reader_expected_float", CategoryLexical, "Expected float")
	ReaderInvalidDouble  = NewDynamic1Type("reader_invalid_double", CategoryLexical, invalidLexeme("double"))
	ReaderExpectedDouble = NewSimpleType("reader_expected_double", CategoryLexical, "Expected double")
	ReaderExpectedSymbol = NewDynamic1Type("reader_expected_symbol", CategoryLexical, func(a any) string {
		return fmt.Sprintf("Expected '%v'", a)
	})
)

// Argument type errors beyond plain numbers.
var (
	ArgumentInvalidUUID = NewDynamic1Type("argument_uuid_invalid", CategoryLexical, func(a any) string {
		return fmt.Sprintf("Invalid UUID '%v'", a)
	})
	ArgumentUnknownChoice = NewDynamic2Type("argument_choice_unknown", CategorySemantic, func(a, b any) string {
		return fmt.Sprintf("Unknown value '%v', expected one of: %v", a, b)
	})
)

// Tree walk errors.
var (
	LiteralIncorrect = NewDynamic1Type("literal_incorrect", CategoryStructural, func(a any) string {
		return fmt.Sprintf("Expected literal %v", a)
	})
	DispatcherUnknownCommand            = NewSimpleType("dispatcher_unknown_command", CategoryStructural, "Unknown command")
	DispatcherUnknownArgument           = NewSimpleType("dispatcher_unknown_argument", CategoryStructural, "Incorrect argument for command")
	DispatcherExpectedArgumentSeparator = NewSimpleType("dispatcher_expected_argument_separator", CategoryStructural, "Expected whitespace to end one argument, but found trailing data")
	DispatcherParseException            = NewDynamic1Type("dispatcher_parse_exception", CategoryStructural, func(a any) string {
		return fmt.Sprintf("Could not parse command: %v", a)
	})
	AmbiguousOption = NewDynamic1Type("ambiguous_option", CategoryStructural, func(a any) string {
		return fmt.Sprintf("Option '--%v' was specified more than once", a)
	})
)

// Execution errors.
var (
	ConsoleUsageDenied = NewSimpleType("console_usage_denied", CategoryAuthorization, "This command cannot be used from the console")

	// CommandFailed is what handlers return to report a user-facing failure.
	CommandFailed = NewDynamic1Type("command_failed", CategoryCommand, func(a any) string {
		return fmt.Sprint(a)
	})
)
