package leave

import (
	"errors"
	"fmt"
	"strings"

	"github.com/warp/leave-engine/calendar"
)

// =============================================================================
// WIRE INPUT
// =============================================================================

// RawCandidate is a candidate as the leave form holds it: plain strings,
// possibly half filled in.
type RawCandidate struct {
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	LeaveType     string `json:"leave_type"`
	HalfDayPeriod string `json:"half_day_period,omitempty"`
	Description   string `json:"description,omitempty"`
}

// RawRequest is a history entry as returned by the leave-history feed.
type RawRequest struct {
	ID            string `json:"id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	LeaveType     string `json:"leave_type"`
	Status        string `json:"status"`
	HalfDayPeriod string `json:"half_day_period,omitempty"`
	Description   string `json:"description,omitempty"`
}

// ParseType matches a leave type by its wire value, ignoring case.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for _, t := range Types {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", &FieldError{Field: "leave_type", Value: s, Err: ErrUnknownLeaveType}
}

// ParseStatus matches a request status, ignoring case.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", &FieldError{Field: "status", Value: s, Err: ErrUnknownStatus}
	}
	return st, nil
}

// ParseHalfDayPeriod accepts "", "morning" or "afternoon", ignoring case.
func ParseHalfDayPeriod(s string) (HalfDayPeriod, error) {
	p := HalfDayPeriod(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", &FieldError{Field: "half_day_period", Value: s, Err: ErrInvalidHalfDayPeriod}
	}
	return p, nil
}

// parseHalfDayFor parses the half-day period of a request of type t. Only
// half-day types may name one.
func parseHalfDayFor(t Type, s string) (HalfDayPeriod, error) {
	p, err := ParseHalfDayPeriod(s)
	if err != nil {
		return "", err
	}
	if p != HalfDayNone && !t.IsHalfDay() {
		return "", &FieldError{Field: "half_day_period", Value: s,
			Err: fmt.Errorf("%w: %s is not a half-day type", ErrInvalidHalfDayPeriod, t)}
	}
	return p, nil
}

func parseRange(start, end string) (calendar.Date, calendar.Date, error) {
	s, err := parseDateField("start_date", start)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	e, err := parseDateField("end_date", end)
	if err != nil {
		return calendar.Date{}, calendar.Date{}, err
	}
	if e.Before(s) {
		return calendar.Date{}, calendar.Date{}, &FieldError{Field: "end_date", Value: end, Err: ErrInvalidRange}
	}
	return s, e, nil
}

func parseDateField(field, value string) (calendar.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return calendar.Date{}, &FieldError{Field: field, Value: value, Err: ErrMissingDate}
	}
	d, err := calendar.ParseDate(value)
	if err != nil {
		return calendar.Date{}, &FieldError{Field: field, Value: value, Err: ErrInvalidDate}
	}
	return d, nil
}

// ParseCandidate validates a raw candidate. An empty leave type means Unpaid.
func ParseCandidate(raw RawCandidate) (Candidate, error) {
	start, end, err := parseRange(raw.StartDate, raw.EndDate)
	if err != nil {
		return Candidate{}, err
	}

	t := TypeUnpaid
	if strings.TrimSpace(raw.LeaveType) != "" {
		if t, err = ParseType(raw.LeaveType); err != nil {
			return Candidate{}, err
		}
	}

	period, err := parseHalfDayFor(t, raw.HalfDayPeriod)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{
		Start:         start,
		End:           end,
		Type:          t,
		HalfDayPeriod: period,
		Description:   raw.Description,
	}, nil
}

// ParseRequest validates one history entry.
func ParseRequest(raw RawRequest) (Request, error) {
	start, end, err := parseRange(raw.StartDate, raw.EndDate)
	if err != nil {
		return Request{}, err
	}
	t, err := ParseType(raw.LeaveType)
	if err != nil {
		return Request{}, err
	}
	status, err := ParseStatus(raw.Status)
	if err != nil {
		return Request{}, err
	}
	period, err := parseHalfDayFor(t, raw.HalfDayPeriod)
	if err != nil {
		return Request{}, err
	}
	return Request{
		ID:            raw.ID,
		Start:         start,
		End:           end,
		Type:          t,
		Status:        status,
		HalfDayPeriod: period,
		Description:   raw.Description,
	}, nil
}

// ParseHistory parses every entry it can. Entries that fail are left out and
// reported together, each wrapped in a *RequestError.
func ParseHistory(raw []RawRequest) ([]Request, error) {
	history := make([]Request, 0, len(raw))
	var errs []error
	for i, r := range raw {
		req, err := ParseRequest(r)
		if err != nil {
			errs = append(errs, &RequestError{Index: i, ID: r.ID, Err: err})
			continue
		}
		history = append(history, req)
	}
	return history, errors.Join(errs...)
}

// EvaluateRaw parses and evaluates in one step. It never fails: an
// unparseable candidate yields the all-disabled decision, and unparseable
// history entries are ignored.
func (e *Engine) EvaluateRaw(raw RawCandidate, history []RawRequest, balance *Balance) Decision {
	c, err := ParseCandidate(raw)
	if err != nil {
		return noDecision()
	}
	parsed, _ := ParseHistory(history)
	return e.Evaluate(c, parsed, balance)
}
