// Package attendance post-processes daily attendance records: it expands
// approved leave into per-day statuses, sweeps holidays enclosed by leave
// into Unpaid, and tallies a month for payroll.
package attendance

import "github.com/warp/leave-engine/leave"

// Status is the attendance status of one day, using the attendance API's
// wire values.
type Status string

const (
	StatusPresent         Status = "Present"
	StatusAbsent          Status = "Absent"
	StatusHalfAbsent      Status = "Half Absent"
	StatusHoliday         Status = "Holiday"
	StatusPaidLeave       Status = "Paid Leave"
	StatusUnpaidLeave     Status = "UnPaid Leave"
	StatusSickLeave       Status = "Sick Leave"
	StatusHalfPaidLeave   Status = "Half Paid Leave"
	StatusHalfUnpaidLeave Status = "Half UnPaid Leave"
)

// bindsSandwich reports whether a neighbour with status s closes a holiday
// run for the sandwich policy. Only full paid and unpaid leave do.
func (s Status) bindsSandwich() bool {
	return s == StatusPaidLeave || s == StatusUnpaidLeave
}

// DailyRecord is the attendance of one day. Date is "YYYY-MM-DD".
type DailyRecord struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

// statusFor maps a leave type to the status of its payable days.
func statusFor(t leave.Type) (Status, bool) {
	switch t {
	case leave.TypePaid:
		return StatusPaidLeave, true
	case leave.TypeHalfPaid:
		return StatusHalfPaidLeave, true
	case leave.TypeSick:
		return StatusSickLeave, true
	case leave.TypeUnpaid:
		return StatusUnpaidLeave, true
	case leave.TypeHalfUnpaid:
		return StatusHalfUnpaidLeave, true
	}
	return "", false
}
