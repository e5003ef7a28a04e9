/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's typed model (calendar.Date, leave.Type, ...) from the wire
  format the leave screens send: plain strings in snake_case.

NAMING CONVENTION:
  - *DTO: Response types returned to clients, and nested request items
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

TYPES:
  Leave:
    EvaluateRequest, LeaveRequestDTO, BalanceDTO, DecisionDTO
    NoteRequest

  Balance derivation:
    DeriveBalanceRequest

  Attendance:
    SandwichRequest, AllocateRequest, AllocateResponse, SummaryRequest

  Calendar:
    NonWorkingDayDTO, HolidayDTO

VALIDATION:
  Request bodies carry go-playground/validator tags, checked in handlers
  before anything is parsed. The candidate of EvaluateRequest is not
  validated: a half-filled form gets the all-disabled decision, not a 400.

SEE ALSO:
  - handlers.go: Uses these types
  - leave/parse.go: Wire string parsing
*/
package api

import (
	"github.com/warp/leave-engine/attendance"
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// LEAVE
// =============================================================================

// LeaveRequestDTO is one entry of the leave-history feed.
type LeaveRequestDTO struct {
	ID            string `json:"id"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
	LeaveType     string `json:"leave_type" validate:"required"`
	Status        string `json:"status" validate:"required"`
	HalfDayPeriod string `json:"half_day_period,omitempty"`
	Description   string `json:"description,omitempty"`
}

func (d LeaveRequestDTO) raw() leave.RawRequest {
	return leave.RawRequest{
		ID:            d.ID,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		LeaveType:     d.LeaveType,
		Status:        d.Status,
		HalfDayPeriod: d.HalfDayPeriod,
		Description:   d.Description,
	}
}

// BalanceDTO is the balance provider's answer for the candidate's month.
type BalanceDTO struct {
	AvailablePaid          int    `json:"available_paid"`
	AvailableSick          int    `json:"available_sick"`
	PaidLeaveThisMonth     bool   `json:"paid_leave_this_month"`
	HalfPaidCountThisMonth int    `json:"half_paid_count_this_month" validate:"min=0"`
	LastLeaveEndDate       string `json:"last_leave_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (d *BalanceDTO) balance() *leave.Balance {
	if d == nil {
		return nil
	}
	b := &leave.Balance{
		AvailablePaid:          d.AvailablePaid,
		AvailableSick:          d.AvailableSick,
		PaidLeaveThisMonth:     d.PaidLeaveThisMonth,
		HalfPaidCountThisMonth: d.HalfPaidCountThisMonth,
	}
	if last, err := calendar.ParseDate(d.LastLeaveEndDate); err == nil {
		b.LastLeaveEndDate = &last
	}
	return b
}

func toBalanceDTO(b leave.Balance) BalanceDTO {
	dto := BalanceDTO{
		AvailablePaid:          b.AvailablePaid,
		AvailableSick:          b.AvailableSick,
		PaidLeaveThisMonth:     b.PaidLeaveThisMonth,
		HalfPaidCountThisMonth: b.HalfPaidCountThisMonth,
	}
	if b.LastLeaveEndDate != nil {
		dto.LastLeaveEndDate = b.LastLeaveEndDate.String()
	}
	return dto
}

// EvaluateRequest asks for the decision on a candidate.
// A missing balance is treated as zero.
type EvaluateRequest struct {
	Candidate leave.RawCandidate `json:"candidate"`
	History   []LeaveRequestDTO  `json:"history" validate:"dive"`
	Balance   *BalanceDTO        `json:"balance,omitempty"`
}

// NoteRequest asks for the status-view decision of a submitted request.
// History may include the request itself.
type NoteRequest struct {
	Request LeaveRequestDTO   `json:"request"`
	History []LeaveRequestDTO `json:"history" validate:"dive"`
}

// PeriodDTO is an inclusive date range.
type PeriodDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DecisionDTO is the engine's decision in API responses.
type DecisionDTO struct {
	RequestedDays   int             `json:"requested_days"`
	NonWorkingCount int             `json:"non_working_count"`
	Breakdown       leave.Breakdown `json:"breakdown"`
	DisablePaid     bool            `json:"disable_paid"`
	DisableHalfPaid bool            `json:"disable_half_paid"`
	DisableSick     bool            `json:"disable_sick"`
	AllowedTypes    []string        `json:"allowed_types"`
	Warning         string          `json:"warning,omitempty"`
	Note            string          `json:"note,omitempty"`
	Rule            string          `json:"rule,omitempty"`
	Sweep           *PeriodDTO      `json:"sweep,omitempty"`
	Blocked         bool            `json:"blocked"`
}

func toDecisionDTO(d leave.Decision) DecisionDTO {
	dto := DecisionDTO{
		RequestedDays:   d.RequestedDays,
		NonWorkingCount: d.NonWorkingCount,
		Breakdown:       d.Breakdown,
		DisablePaid:     d.DisablePaid,
		DisableHalfPaid: d.DisableHalfPaid,
		DisableSick:     d.DisableSick,
		AllowedTypes:    []string{},
		Warning:         d.Warning,
		Note:            d.Note,
		Rule:            string(d.Rule),
		Blocked:         d.Blocked(),
	}
	for _, t := range leave.Types {
		if d.Allows(t) {
			dto.AllowedTypes = append(dto.AllowedTypes, string(t))
		}
	}
	if d.Sweep != nil {
		dto.Sweep = &PeriodDTO{Start: d.Sweep.Start.String(), End: d.Sweep.End.String()}
	}
	return dto
}

// DeriveBalanceRequest asks for the balance computed from history alone.
type DeriveBalanceRequest struct {
	History  []LeaveRequestDTO `json:"history" validate:"dive"`
	AsOf     string            `json:"as_of" validate:"required,datetime=2006-01-02"`
	JoinedOn string            `json:"joined_on,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// =============================================================================
// ATTENDANCE
// =============================================================================

// DailyRecordDTO is one day of attendance.
type DailyRecordDTO struct {
	Date   string `json:"date" validate:"required"`
	Status string `json:"status" validate:"required"`
}

func toRecords(dtos []DailyRecordDTO) []attendance.DailyRecord {
	out := make([]attendance.DailyRecord, len(dtos))
	for i, d := range dtos {
		out[i] = attendance.DailyRecord{Date: d.Date, Status: attendance.Status(d.Status)}
	}
	return out
}

// SandwichRequest carries the attendance details of a window.
type SandwichRequest struct {
	Records []DailyRecordDTO `json:"records" validate:"dive"`
}

// SummaryRequest carries a month of attendance to tally.
type SummaryRequest struct {
	Records []DailyRecordDTO `json:"records" validate:"required,dive"`
}

// AllocateRequest asks for the daily records of an approved leave.
type AllocateRequest struct {
	Request       LeaveRequestDTO `json:"request"`
	ApplySandwich bool            `json:"apply_sandwich"`
}

// AllocateResponse is the per-day expansion and its tally.
type AllocateResponse struct {
	Records []attendance.DailyRecord `json:"records"`
	Summary attendance.Summary       `json:"summary"`
}

// =============================================================================
// CALENDAR
// =============================================================================

// NonWorkingDayDTO is a weekend day or public holiday.
type NonWorkingDayDTO struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
	Holiday string `json:"holiday,omitempty"`
}

// HolidayDTO is one public holiday.
type HolidayDTO struct {
	Date  string `json:"date,omitempty"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Name  string `json:"name"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
