package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Startup precondition failures. These are wiring/build errors; the
	// firmware aborts rather than run with a miscalibrated time base.
	BadClock      Code = "bad_clock"
	PinMismatch   Code = "pin_mismatch"
	SliceConflict Code = "slice_conflict"

	// Registry / configuration.
	UnknownLight   Code = "unknown_light"
	DuplicateLight Code = "duplicate_light"
	UnknownProfile Code = "unknown_profile"
	InvalidProfile Code = "invalid_profile"
	NotConfigured  Code = "not_configured"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
