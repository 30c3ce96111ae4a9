package availability

import "fmt"

// RuleError is a business-rule violation. Reason is the single-line message
// surfaced to the caller; Field names the offending document field.
type RuleError struct {
	Field  string
	Reason string
}

func (e *RuleError) Error() string {
	return e.Reason
}

// RateLookupError is a configuration gap: the requested currency pair is
// absent from the rate table.
type RateLookupError struct {
	Base  string
	Quote string
}

func (e *RateLookupError) Error() string {
	return fmt.Sprintf("no exchange rate for %s/%s", e.Base, e.Quote)
}
