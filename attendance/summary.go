package attendance

import "github.com/shopspring/decimal"

// =============================================================================
// MONTHLY SUMMARY
// =============================================================================

var half = decimal.NewFromFloat(0.5)

// Summary tallies a month of records. Half-day statuses count 0.5 towards
// their leave column and 0.5 towards DaysWorked.
type Summary struct {
	Records     int             `json:"records"`
	Holidays    int             `json:"holidays"`
	WorkingDays int             `json:"working_days"`
	Present     decimal.Decimal `json:"present"`
	Absent      decimal.Decimal `json:"absent"`
	PaidLeave   decimal.Decimal `json:"paid_leave"`
	UnpaidLeave decimal.Decimal `json:"unpaid_leave"`
	SickLeave   decimal.Decimal `json:"sick_leave"`
	TotalLeave  decimal.Decimal `json:"total_leave"`
	DaysWorked  decimal.Decimal `json:"days_worked"`
}

// Summarize tallies records by status. Unknown statuses only count towards
// Records and WorkingDays.
func Summarize(records []DailyRecord) Summary {
	var s Summary
	s.Records = len(records)

	for _, r := range records {
		switch r.Status {
		case StatusHoliday:
			s.Holidays++
		case StatusPresent:
			s.Present = s.Present.Add(decimal.NewFromInt(1))
		case StatusAbsent:
			s.Absent = s.Absent.Add(decimal.NewFromInt(1))
		case StatusHalfAbsent:
			s.Absent = s.Absent.Add(half)
			s.DaysWorked = s.DaysWorked.Add(half)
		case StatusPaidLeave:
			s.PaidLeave = s.PaidLeave.Add(decimal.NewFromInt(1))
		case StatusHalfPaidLeave:
			s.PaidLeave = s.PaidLeave.Add(half)
			s.DaysWorked = s.DaysWorked.Add(half)
		case StatusUnpaidLeave:
			s.UnpaidLeave = s.UnpaidLeave.Add(decimal.NewFromInt(1))
		case StatusHalfUnpaidLeave:
			s.UnpaidLeave = s.UnpaidLeave.Add(half)
			s.DaysWorked = s.DaysWorked.Add(half)
		case StatusSickLeave:
			s.SickLeave = s.SickLeave.Add(decimal.NewFromInt(1))
		}
	}

	s.WorkingDays = s.Records - s.Holidays
	s.TotalLeave = s.PaidLeave.Add(s.UnpaidLeave).Add(s.SickLeave)
	s.DaysWorked = s.DaysWorked.Add(s.Present)
	return s
}
