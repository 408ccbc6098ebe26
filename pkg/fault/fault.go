// Package fault defines the structured domain-error payloads carried inside
// result structs. Calculations report invalid or infeasible conditions as
// data rather than aborting, so batch scenario and sensitivity runs can skip
// or flag a single cell without losing the rest of the matrix.
package fault

import "fmt"

// Code classifies a domain fault.
type Code string

const (
	// InvalidInput marks results computed from unusable inputs, e.g. a
	// non-positive purchase price.
	InvalidInput Code = "invalid_input"

	// Infeasible marks results whose inputs are structurally valid but whose
	// answer lies outside the meaningful domain, e.g. break-even equity
	// beyond the purchase price or leverage with zero equity.
	Infeasible Code = "infeasible"

	// RuleNotApplicable marks rule evaluations outside their valid window,
	// e.g. declining-balance depreciation for an old build. Callers omit the
	// affected section rather than fabricating a number.
	RuleNotApplicable Code = "rule_not_applicable"
)

// Fault is a structured domain error. It satisfies the error interface so it
// can flow through ordinary error handling when a caller prefers that.
type Fault struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Message)
}

// Invalid builds an InvalidInput fault.
func Invalid(format string, args ...interface{}) *Fault {
	return &Fault{Code: InvalidInput, Message: fmt.Sprintf(format, args...)}
}

// Infeasibility builds an Infeasible fault.
func Infeasibility(format string, args ...interface{}) *Fault {
	return &Fault{Code: Infeasible, Message: fmt.Sprintf(format, args...)}
}

// NotApplicable builds a RuleNotApplicable fault.
func NotApplicable(format string, args ...interface{}) *Fault {
	return &Fault{Code: RuleNotApplicable, Message: fmt.Sprintf(format, args...)}
}
