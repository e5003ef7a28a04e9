package attendance

import "github.com/warp/leave-engine/calendar"

// =============================================================================
// HOLIDAY SANDWICH
// =============================================================================

// ApplySandwichPolicy converts every Holiday enclosed by leave into UnPaid
// Leave. For each Holiday the nearest non-Holiday record is looked up on
// each side, skipping other Holidays; if both are Paid Leave or UnPaid
// Leave, the Holiday becomes UnPaid Leave.
//
//   Paid Leave | Holiday | Holiday | UnPaid Leave
//     -> Paid Leave | UnPaid Leave | UnPaid Leave | UnPaid Leave
//
// A side that runs out of records before finding a non-Holiday does not
// bind, so Holidays at the edge of the window stay Holiday. The scan reads
// the input only: conversions made in this pass never bind other Holidays.
// The input slice is not modified.
func ApplySandwichPolicy(details []DailyRecord) []DailyRecord {
	lookup := make(map[string]Status, len(details))
	for _, d := range details {
		lookup[d.Date] = d.Status
	}

	out := make([]DailyRecord, len(details))
	for i, d := range details {
		out[i] = d
		if d.Status != StatusHoliday {
			continue
		}
		day, err := calendar.ParseDate(d.Date)
		if err != nil {
			continue
		}
		left, lok := nearestWorking(lookup, day, -1)
		right, rok := nearestWorking(lookup, day, 1)
		if lok && rok && left.bindsSandwich() && right.bindsSandwich() {
			out[i].Status = StatusUnpaidLeave
		}
	}
	return out
}

// nearestWorking walks from day in steps of dir and returns the first
// non-Holiday status. It stops at the first day without a record.
func nearestWorking(lookup map[string]Status, day calendar.Date, dir int) (Status, bool) {
	for cursor := day.AddDays(dir); ; cursor = cursor.AddDays(dir) {
		s, ok := lookup[cursor.String()]
		if !ok || s == "" {
			return "", false
		}
		if s != StatusHoliday {
			return s, true
		}
	}
}
