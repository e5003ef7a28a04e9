/*
errors.go - Error types for the leave package

PURPOSE:
  The engine itself never returns errors: Evaluate fails closed. Errors only
  come out of the parsing layer (parse.go), which turns wire strings into
  typed values. Callers that evaluate raw input (EvaluateRaw) never see them.

USAGE:
  c, err := leave.ParseCandidate(raw)
  if errors.Is(err, leave.ErrInvalidRange) {
      // end before start
  }

  var fe *leave.FieldError
  if errors.As(err, &fe) {
      log.Printf("bad field %s", fe.Field)
  }
*/
package leave

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingDate is returned when a required date is empty.
	ErrMissingDate = errors.New("date not selected")

	// ErrInvalidDate is returned when a date is not "YYYY-MM-DD".
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidRange is returned when the end date is before the start date.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrUnknownLeaveType is returned for a leave type outside Types.
	ErrUnknownLeaveType = errors.New("unknown leave type")

	// ErrUnknownStatus is returned for a status outside pending/approved/rejected.
	ErrUnknownStatus = errors.New("unknown request status")

	// ErrInvalidHalfDayPeriod is returned for a half-day period other than morning/afternoon.
	ErrInvalidHalfDayPeriod = errors.New("invalid half-day period")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// FieldError ties a parse failure to the input field that caused it.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// RequestError identifies which history entry failed to parse.
type RequestError struct {
	Index int
	ID    string
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("history[%d] (id %s): %v", e.Index, e.ID, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingDate) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrUnknownLeaveType) ||
		errors.Is(err, ErrUnknownStatus) ||
		errors.Is(err, ErrInvalidHalfDayPeriod)
}
