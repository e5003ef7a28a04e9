package attendance

import (
	"github.com/warp/leave-engine/calendar"
	"github.com/warp/leave-engine/leave"
)

// Allocator expands approved leave into daily records.
type Allocator struct {
	Calendar calendar.Policy
	Options  leave.Options
}

// AllocateLeave expands req with the default calendar and allowances.
func AllocateLeave(req leave.Request, cal calendar.Policy) []DailyRecord {
	return Allocator{Calendar: cal, Options: leave.DefaultOptions()}.Allocate(req)
}

// Allocate returns one record per day of the request.
//
// Weekends and public holidays are recorded as Holiday and do not use up
// the allowance. Working days take the leave type's status until the
// allowance is spent, then UnPaid Leave:
//
//   Paid Thu..Mon, Sat Sun off
//     -> Paid Leave | UnPaid Leave | Holiday | Holiday | UnPaid Leave
//
// A malformed range yields no records. An unknown leave type marks the
// working days Absent.
func (a Allocator) Allocate(req leave.Request) []DailyRecord {
	period := req.Period()
	if !period.IsValid() {
		return nil
	}

	status, known := statusFor(req.Type)
	allowance := a.Options.Allowance(req.Type)
	if req.Type == leave.TypeUnpaid {
		allowance = period.Len()
	}

	records := make([]DailyRecord, 0, period.Len())
	used := 0
	for _, day := range period.Days() {
		rec := DailyRecord{Date: day.String()}
		switch {
		case a.Calendar.IsNonWorkingDay(day):
			rec.Status = StatusHoliday
			records = append(records, rec)
			continue
		case !known:
			rec.Status = StatusAbsent
		case used < allowance:
			rec.Status = status
		default:
			rec.Status = StatusUnpaidLeave
		}
		used++
		records = append(records, rec)
	}
	return records
}
