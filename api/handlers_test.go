/*
handlers_test.go - Tests for the HTTP API handlers

Tests for:
- Leave evaluation (decision, fail-closed candidate, bad history)
- Status-view notes
- Balance derivation
- Attendance sandwich, allocation and summary
- Calendar lookups
- CORS policy
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
)

// =============================================================================
// TEST SETUP
// =============================================================================

const testOrigin = "https://hr.example.com"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(calendar.DefaultHolidays, leave.DefaultOptions(), leave.DefaultEntitlements(), zap.NewNop())
	return NewRouter(h, []string{testOrigin})
}

func do(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// =============================================================================
// LEAVE
// =============================================================================

func TestEvaluateLeave_Clubbing(t *testing.T) {
	// GIVEN: Approved paid leave ending Sunday 2024-03-10
	// WHEN: Previewing sick leave on Monday 2024-03-11
	// THEN: 200 with the clubbing warning and sick not allowed

	router := newTestRouter(t)
	body := EvaluateRequest{
		Candidate: leave.RawCandidate{StartDate: "2024-03-11", EndDate: "2024-03-11", LeaveType: "sick"},
		History: []LeaveRequestDTO{
			{ID: "r1", StartDate: "2024-03-08", EndDate: "2024-03-10", LeaveType: "paid", Status: "approved"},
		},
		Balance: &BalanceDTO{AvailablePaid: 4, AvailableSick: 2},
	}

	rec := do(t, router, http.MethodPost, "/api/leave/evaluate", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[DecisionDTO](t, rec)
	assert.Equal(t, leave.ClubbingWarning, got.Warning)
	assert.True(t, got.Blocked)
	assert.True(t, got.DisableSick)
	assert.NotContains(t, got.AllowedTypes, string(leave.TypeSick))
	assert.Contains(t, got.AllowedTypes, string(leave.TypeUnpaid))
}

func TestEvaluateLeave_RangeSandwich(t *testing.T) {
	router := newTestRouter(t)
	body := EvaluateRequest{
		Candidate: leave.RawCandidate{StartDate: "2024-08-14", EndDate: "2024-08-17", LeaveType: "paid"},
		Balance:   &BalanceDTO{AvailablePaid: 4, AvailableSick: 2},
	}

	rec := do(t, router, http.MethodPost, "/api/leave/evaluate", body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[DecisionDTO](t, rec)
	assert.Equal(t, 4, got.RequestedDays)
	assert.Equal(t, string(leave.RuleRangeSandwich), got.Rule)
	assert.Equal(t, leave.Breakdown{PaidDays: 1, UnpaidDays: 3, SweptDays: 2}, got.Breakdown)
	require.NotNil(t, got.Sweep)
	assert.Equal(t, PeriodDTO{Start: "2024-08-14", End: "2024-08-17"}, *got.Sweep)
}

func TestEvaluateLeave_IncompleteCandidateFailsClosed(t *testing.T) {
	router := newTestRouter(t)
	body := EvaluateRequest{Candidate: leave.RawCandidate{StartDate: "2024-03-11", LeaveType: "paid"}}

	rec := do(t, router, http.MethodPost, "/api/leave/evaluate", body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[DecisionDTO](t, rec)
	assert.True(t, got.DisablePaid)
	assert.True(t, got.DisableHalfPaid)
	assert.True(t, got.DisableSick)
	assert.Empty(t, got.Note)
	assert.Empty(t, got.AllowedTypes)
}

func TestEvaluateLeave_RangeTooLongFailsClosed(t *testing.T) {
	// GIVEN: A candidate spanning four centuries
	// WHEN: Previewing it
	// THEN: 200 with the all-disabled decision, as for a half-filled form

	body := EvaluateRequest{
		Candidate: leave.RawCandidate{StartDate: "1700-01-01", EndDate: "2100-12-31", LeaveType: "paid"},
		Balance:   &BalanceDTO{AvailablePaid: 4, AvailableSick: 2},
	}

	rec := do(t, newTestRouter(t), http.MethodPost, "/api/leave/evaluate", body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[DecisionDTO](t, rec)
	assert.True(t, got.DisablePaid)
	assert.True(t, got.DisableHalfPaid)
	assert.True(t, got.DisableSick)
	assert.Zero(t, got.RequestedDays)
	assert.Empty(t, got.AllowedTypes)
}

func TestEvaluateLeave_BadHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []LeaveRequestDTO
		message string
	}{
		{
			name:    "missing start date",
			history: []LeaveRequestDTO{{ID: "r1", EndDate: "2024-03-10", LeaveType: "paid", Status: "approved"}},
			message: "Start Date is required",
		},
		{
			name:    "malformed end date",
			history: []LeaveRequestDTO{{ID: "r1", StartDate: "2024-03-10", EndDate: "10/03/2024", LeaveType: "paid", Status: "approved"}},
			message: "End Date must be a date (YYYY-MM-DD)",
		},
		{
			name:    "unknown status",
			history: []LeaveRequestDTO{{ID: "r1", StartDate: "2024-03-10", EndDate: "2024-03-10", LeaveType: "paid", Status: "maybe"}},
			message: "Invalid leave history",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)
			body := EvaluateRequest{
				Candidate: leave.RawCandidate{StartDate: "2024-03-11", EndDate: "2024-03-11"},
				History:   tt.history,
			}

			rec := do(t, router, http.MethodPost, "/api/leave/evaluate", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decode[ErrorResponse](t, rec).Error)
		})
	}
}

func TestEvaluateLeave_InvalidJSON(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/leave/evaluate", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON", decode[ErrorResponse](t, rec).Error)
}

func TestNoteForRequest(t *testing.T) {
	// GIVEN: A history holding an approved Friday and the approved Monday itself
	// WHEN: Asking for the Monday request's note
	// THEN: The separate sandwich note, with no duplicate warning

	monday := LeaveRequestDTO{ID: "r2", StartDate: "2024-03-11", EndDate: "2024-03-11", LeaveType: "paid", Status: "approved"}
	body := NoteRequest{
		Request: monday,
		History: []LeaveRequestDTO{
			{ID: "r1", StartDate: "2024-03-08", EndDate: "2024-03-08", LeaveType: "unpaid", Status: "approved"},
			monday,
		},
	}

	rec := do(t, newTestRouter(t), http.MethodPost, "/api/leave/note", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[DecisionDTO](t, rec)
	assert.Empty(t, got.Warning)
	assert.Equal(t, string(leave.RuleSeparateSandwich), got.Rule)
	assert.Equal(t, 2, got.Breakdown.GapDays)
	require.NotNil(t, got.Sweep)
	assert.Equal(t, PeriodDTO{Start: "2024-03-09", End: "2024-03-10"}, *got.Sweep)
}

func TestNoteForRequest_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		body    NoteRequest
		message string
	}{
		{
			name: "unknown type",
			body: NoteRequest{Request: LeaveRequestDTO{
				ID: "r1", StartDate: "2024-03-11", EndDate: "2024-03-11", LeaveType: "vacation", Status: "approved",
			}},
			message: "Invalid leave request",
		},
		{
			name: "range too long",
			body: NoteRequest{Request: LeaveRequestDTO{
				ID: "r1", StartDate: "1700-01-01", EndDate: "2100-12-31", LeaveType: "paid", Status: "approved",
			}},
			message: "Range too long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestRouter(t), http.MethodPost, "/api/leave/note", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decode[ErrorResponse](t, rec).Error)
		})
	}
}

func TestDeriveBalance(t *testing.T) {
	router := newTestRouter(t)
	body := DeriveBalanceRequest{
		AsOf:     "2024-06-15",
		JoinedOn: "2024-05-10",
		History: []LeaveRequestDTO{
			{ID: "p1", StartDate: "2024-06-03", EndDate: "2024-06-03", LeaveType: "paid", Status: "approved"},
			{ID: "s1", StartDate: "2024-04-01", EndDate: "2024-04-01", LeaveType: "sick", Status: "approved"},
		},
	}

	rec := do(t, router, http.MethodPost, "/api/leave/balance", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[BalanceDTO](t, rec)
	assert.Equal(t, 5, got.AvailablePaid)
	assert.Equal(t, 1, got.AvailableSick)
	assert.True(t, got.PaidLeaveThisMonth)
	assert.Equal(t, "2024-06-03", got.LastLeaveEndDate)
}

func TestDeriveBalance_MissingAsOf(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodPost, "/api/leave/balance", DeriveBalanceRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "As Of is required", decode[ErrorResponse](t, rec).Error)
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func TestApplySandwich(t *testing.T) {
	router := newTestRouter(t)
	body := SandwichRequest{Records: []DailyRecordDTO{
		{Date: "2024-03-01", Status: "Paid Leave"},
		{Date: "2024-03-02", Status: "Holiday"},
		{Date: "2024-03-03", Status: "UnPaid Leave"},
	}}

	rec := do(t, router, http.MethodPost, "/api/attendance/sandwich", body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[SandwichRequest](t, rec)
	require.Len(t, got.Records, 3)
	assert.Equal(t, "UnPaid Leave", got.Records[1].Status)
}

func TestAllocateLeave(t *testing.T) {
	router := newTestRouter(t)
	body := AllocateRequest{
		Request: LeaveRequestDTO{
			ID: "r1", StartDate: "2024-08-14", EndDate: "2024-08-16", LeaveType: "unpaid", Status: "approved",
		},
		ApplySandwich: true,
	}

	rec := do(t, router, http.MethodPost, "/api/attendance/allocate", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got struct {
		Records []DailyRecordDTO `json:"records"`
		Summary struct {
			Holidays    int    `json:"holidays"`
			UnpaidLeave string `json:"unpaid_leave"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Records, 3)
	for _, r := range got.Records {
		assert.Equal(t, "UnPaid Leave", r.Status, r.Date)
	}
	assert.Equal(t, 0, got.Summary.Holidays)
	assert.Equal(t, "3", got.Summary.UnpaidLeave)
}

func TestAllocateLeave_RejectsPending(t *testing.T) {
	body := AllocateRequest{Request: LeaveRequestDTO{
		ID: "r1", StartDate: "2024-08-14", EndDate: "2024-08-16", LeaveType: "paid", Status: "pending",
	}}

	rec := do(t, newTestRouter(t), http.MethodPost, "/api/attendance/allocate", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAllocateLeave_RejectsLongRange(t *testing.T) {
	body := AllocateRequest{Request: LeaveRequestDTO{
		ID: "r1", StartDate: "1700-01-01", EndDate: "2100-12-31", LeaveType: "unpaid", Status: "approved",
	}}

	rec := do(t, newTestRouter(t), http.MethodPost, "/api/attendance/allocate", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Range too long", decode[ErrorResponse](t, rec).Error)
}

func TestSummarizeAttendance(t *testing.T) {
	body := SummaryRequest{Records: []DailyRecordDTO{
		{Date: "2024-03-01", Status: "Present"},
		{Date: "2024-03-02", Status: "Holiday"},
		{Date: "2024-03-04", Status: "Half Paid Leave"},
	}}

	rec := do(t, newTestRouter(t), http.MethodPost, "/api/attendance/summary", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(2), got["working_days"])
	assert.Equal(t, "0.5", got["paid_leave"])
	assert.Equal(t, "1.5", got["days_worked"])
}

// =============================================================================
// CALENDAR
// =============================================================================

func TestListNonWorkingDays(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/calendar/non-working?from=2024-08-14&to=2024-08-18", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Count      int                `json:"count"`
		NonWorking []NonWorkingDayDTO `json:"non_working"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, []NonWorkingDayDTO{
		{Date: "2024-08-15", Weekday: "Thursday", Holiday: "Independence Day"},
		{Date: "2024-08-17", Weekday: "Saturday"},
		{Date: "2024-08-18", Weekday: "Sunday"},
	}, got.NonWorking)
}

func TestListNonWorkingDays_BadQuery(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/calendar/non-working",
		"/api/calendar/non-working?from=2024-08-14",
		"/api/calendar/non-working?from=2024-08-18&to=2024-08-14",
		"/api/calendar/non-working?from=2024-01-01&to=2026-01-01",
	} {
		rec := do(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestListHolidays(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/api/calendar/holidays", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[map[string][]HolidayDTO](t, rec)
	assert.Len(t, all["holidays"], len(calendar.DefaultHolidays))

	rec = do(t, router, http.MethodGet, "/api/calendar/holidays?year=2024", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var inYear struct {
		Year     int          `json:"year"`
		Holidays []HolidayDTO `json:"holidays"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inYear))
	assert.Equal(t, 2024, inYear.Year)
	require.Len(t, inYear.Holidays, 6)
	assert.Equal(t, HolidayDTO{Date: "2024-01-01", Month: 1, Day: 1, Name: "New Year's Day"}, inYear.Holidays[0])

	rec = do(t, router, http.MethodGet, "/api/calendar/holidays?year=soon", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}

// =============================================================================
// CORS
// =============================================================================

func TestCORS_NoCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", testOrigin)
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_NoOriginsConfigured(t *testing.T) {
	h := NewHandler(calendar.DefaultHolidays, leave.DefaultOptions(), leave.DefaultEntitlements(), zap.NewNop())
	router := NewRouter(h, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}
