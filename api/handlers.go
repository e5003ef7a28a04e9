/*
handlers.go - HTTP API handlers for the leave-policy preview service

PURPOSE:
  Exposes the leave-policy engine and the attendance post-processor over
  REST so that every leave screen (employee, manager, HR, admin) asks the
  same engine instead of carrying its own copy. The service is stateless:
  history and balances arrive in the request body, nothing is stored.

ENDPOINTS:
  Leave:
    POST   /api/leave/evaluate            Decision for a candidate request
    POST   /api/leave/balance             Balance derived from history
    POST   /api/leave/note                Status-view note of a submitted request

  Attendance:
    POST   /api/attendance/sandwich       Sweep holidays enclosed by leave
    POST   /api/attendance/allocate       Per-day records of an approved leave
    POST   /api/attendance/summary        Monthly tally of daily records

  Calendar:
    GET    /api/calendar/non-working      Weekends and holidays in [from, to]
    GET    /api/calendar/holidays         Public holidays (optionally ?year=)

  Health:
    GET    /healthz

REQUEST FLOW:
  1. Decode JSON body
  2. Validate struct tags
  3. Parse wire strings into engine types
  4. Call the engine
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, validation errors, unparseable history,
         leave or calendar ranges longer than maxRangeDays
  - 500: Internal errors
  /api/leave/evaluate never rejects a bad candidate: the decision fails
  closed instead, also for a candidate longer than maxRangeDays.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/warp/leave-engine/attendance"
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
)

// maxRangeDays bounds the calendar range queries and the leave ranges the
// handlers evaluate or expand.
const maxRangeDays = 366

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine       *leave.Engine
	Allocator    attendance.Allocator
	Holidays     calendar.FixedHolidays
	Entitlements leave.Entitlements

	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a handler for the given holiday set and policy.
func NewHandler(holidays calendar.FixedHolidays, opts leave.Options, ent leave.Entitlements, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	cal := calendar.Policy{Holidays: holidays}
	return &Handler{
		Engine:       leave.New(cal, opts),
		Allocator:    attendance.Allocator{Calendar: cal, Options: opts},
		Holidays:     holidays,
		Entitlements: ent,
		validate:     newValidator(),
		logger:       l,
	}
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// EvaluateLeave returns the decision for a candidate request.
func (h *Handler) EvaluateLeave(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !h.bind(w, r, &req) {
		return
	}

	history, err := parseHistory(req.History)
	if err != nil {
		h.logger.Warn("evaluate: bad history", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid leave history", err)
		return
	}

	// An unparseable candidate reads as "no date selected".
	c, err := leave.ParseCandidate(req.Candidate)
	if err != nil {
		h.logger.Debug("evaluate: candidate not ready", zap.Error(err))
		c = leave.Candidate{}
	}
	if err := checkRange(c.Period()); err != nil {
		h.logger.Warn("evaluate: candidate range too long", zap.Error(err))
		c = leave.Candidate{}
	}

	decision := h.Engine.Evaluate(c, history, req.Balance.balance())
	writeJSON(w, http.StatusOK, toDecisionDTO(decision))
}

// DeriveBalance computes the balance provider's figures from history.
func (h *Handler) DeriveBalance(w http.ResponseWriter, r *http.Request) {
	var req DeriveBalanceRequest
	if !h.bind(w, r, &req) {
		return
	}

	history, err := parseHistory(req.History)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave history", err)
		return
	}
	asOf, _ := calendar.ParseDate(req.AsOf)
	var joined calendar.Date
	if req.JoinedOn != "" {
		joined, _ = calendar.ParseDate(req.JoinedOn)
	}

	b := leave.DeriveBalance(history, asOf, joined, h.Entitlements)
	writeJSON(w, http.StatusOK, toBalanceDTO(b))
}

// NoteForRequest returns the note a submitted request shows in status views.
func (h *Handler) NoteForRequest(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if !h.bind(w, r, &req) {
		return
	}

	lr, err := leave.ParseRequest(req.Request.raw())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave request", err)
		return
	}
	if err := checkRange(lr.Period()); err != nil {
		writeError(w, http.StatusBadRequest, "Range too long", err)
		return
	}
	history, err := parseHistory(req.History)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave history", err)
		return
	}

	writeJSON(w, http.StatusOK, toDecisionDTO(h.Engine.NoteFor(lr, history)))
}

func parseHistory(dtos []LeaveRequestDTO) ([]leave.Request, error) {
	raw := make([]leave.RawRequest, len(dtos))
	for i, d := range dtos {
		raw[i] = d.raw()
	}
	return leave.ParseHistory(raw)
}

// =============================================================================
// ATTENDANCE HANDLERS
// =============================================================================

// ApplySandwich sweeps holidays enclosed by leave into UnPaid Leave.
func (h *Handler) ApplySandwich(w http.ResponseWriter, r *http.Request) {
	var req SandwichRequest
	if !h.bind(w, r, &req) {
		return
	}

	records := attendance.ApplySandwichPolicy(toRecords(req.Records))
	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

// AllocateLeave expands an approved leave into daily records.
func (h *Handler) AllocateLeave(w http.ResponseWriter, r *http.Request) {
	var req AllocateRequest
	if !h.bind(w, r, &req) {
		return
	}

	lr, err := leave.ParseRequest(req.Request.raw())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave request", err)
		return
	}
	if err := checkRange(lr.Period()); err != nil {
		writeError(w, http.StatusBadRequest, "Range too long", err)
		return
	}
	if !lr.IsApproved() {
		writeError(w, http.StatusBadRequest, "Only approved leave is allocated",
			fmt.Errorf("status is %s", lr.Status))
		return
	}

	records := h.Allocator.Allocate(lr)
	if req.ApplySandwich {
		records = attendance.ApplySandwichPolicy(records)
	}

	writeJSON(w, http.StatusOK, AllocateResponse{
		Records: records,
		Summary: attendance.Summarize(records),
	})
}

// SummarizeAttendance tallies a month of records.
func (h *Handler) SummarizeAttendance(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if !h.bind(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, attendance.Summarize(toRecords(req.Records)))
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// ListNonWorkingDays returns the weekends and holidays in [from, to].
func (h *Handler) ListNonWorkingDays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := calendar.ParseDate(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date", err)
		return
	}
	to, err := calendar.ParseDate(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date", err)
		return
	}
	period := calendar.NewPeriod(from, to)
	if !period.IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid range", leave.ErrInvalidRange)
		return
	}
	if err := checkRange(period); err != nil {
		writeError(w, http.StatusBadRequest, "Range too long", err)
		return
	}

	days := h.Engine.Calendar.NonWorkingDays(period)
	dtos := make([]NonWorkingDayDTO, 0, len(days))
	for _, d := range days {
		dto := NonWorkingDayDTO{Date: d.String(), Weekday: d.Weekday().String()}
		if hol, ok := h.Holidays.Lookup(d); ok {
			dto.Holiday = hol.Name
		}
		dtos = append(dtos, dto)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"from":        from.String(),
		"to":          to.String(),
		"count":       len(dtos),
		"non_working": dtos,
	})
}

// ListHolidays returns the holiday set, or its dates in ?year=.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	yearParam := r.URL.Query().Get("year")
	if yearParam == "" {
		dtos := make([]HolidayDTO, 0, len(h.Holidays))
		for _, hol := range h.Holidays {
			dtos = append(dtos, HolidayDTO{Month: int(hol.Month), Day: hol.Day, Name: hol.Name})
		}
		writeJSON(w, http.StatusOK, map[string]any{"holidays": dtos})
		return
	}

	year, err := strconv.Atoi(yearParam)
	if err != nil || year < 1 || year > 9999 {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	dates := h.Holidays.InYear(year)
	dtos := make([]HolidayDTO, 0, len(dates))
	for _, d := range dates {
		hol, _ := h.Holidays.Lookup(d)
		dtos = append(dtos, HolidayDTO{Date: d.String(), Month: int(d.Month()), Day: d.Day(), Name: hol.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{"year": year, "holidays": dtos})
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

// bind decodes and validates the JSON body into dst. On failure it writes
// a 400 and returns false.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusInternalServerError, "Validation failed", err)
			return false
		}
		h.logger.Warn("request validation failed", zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusBadRequest, validationMessage(err), err)
		return false
	}
	return true
}

// checkRange rejects periods longer than maxRangeDays.
func checkRange(p calendar.Period) error {
	if n := p.Len(); n > maxRangeDays {
		return fmt.Errorf("%d days requested, at most %d allowed", n, maxRangeDays)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
