package telemetry

import (
	"errors"

	"github.com/footprint-tools/brig/internal/usage"
)

// Outcome classifies how a dispatched line ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeSyntax
	OutcomeDenied
	OutcomeFailed
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeSyntax:
		return "SYNTAX"
	case OutcomeDenied:
		return "DENIED"
	case OutcomeFailed:
		return "FAILED"
	default:
		return "ERROR"
	}
}

// Classify maps a dispatch error to an Outcome.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}

	var ue *usage.Error
	if !errors.As(err, &ue) {
		return OutcomeError
	}

	switch ue.Category() {
	case usage.CategoryLexical, usage.CategoryStructural, usage.CategorySemantic:
		return OutcomeSyntax
	case usage.CategoryAuthorization:
		return OutcomeDenied
	case usage.CategoryCommand:
		return OutcomeFailed
	default:
		return OutcomeError
	}
}
