package calendar_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-engine/calendar"
)

func date(s string) calendar.Date { return calendar.MustParseDate(s) }

// =============================================================================
// DATE
// =============================================================================

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 11, d.Day())
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2024-03-11", d.String())

	for _, bad := range []string{"", "2024-13-01", "11/03/2024", "2024-02-30", "yesterday"} {
		_, err := calendar.ParseDate(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	assert.Equal(t, 0, date("2024-03-10").DaysUntil(date("2024-03-10")))
	assert.Equal(t, 1, date("2024-03-10").DaysUntil(date("2024-03-11")))
	assert.Equal(t, -3, date("2024-03-10").DaysUntil(date("2024-03-07")))
	// Leap day is counted
	assert.Equal(t, 2, date("2024-02-28").DaysUntil(date("2024-03-01")))
}

func TestDate_DaysUntil_Centuries(t *testing.T) {
	// Spans longer than time.Duration can hold must still count exactly
	p := calendar.NewPeriod(date("1700-01-01"), date("2100-12-31"))
	assert.Equal(t, 146462, p.Len())
	assert.Equal(t, -146461, date("2100-12-31").DaysUntil(date("1700-01-01")))
	assert.Equal(t, 3652058, date("0001-01-01").DaysUntil(date("9999-12-31")))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Start calendar.Date `json:"start"`
		End   calendar.Date `json:"end"`
	}
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-08-14","end":""}`), &p))
	assert.True(t, p.Start.Equal(date("2024-08-14")))
	assert.True(t, p.End.IsZero())

	err := json.Unmarshal([]byte(`{"start":"14-08-2024"}`), &p)
	assert.Error(t, err)
}

func TestFromTime_DropsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC)
	assert.True(t, calendar.FromTime(ts).Equal(date("2024-05-01")))
	assert.True(t, calendar.FromTime(time.Time{}).IsZero())
}

// =============================================================================
// PERIOD
// =============================================================================

func TestPeriod(t *testing.T) {
	p := calendar.NewPeriod(date("2024-08-14"), date("2024-08-17"))
	assert.True(t, p.IsValid())
	assert.Equal(t, 4, p.Len())
	assert.Len(t, p.Days(), 4)
	assert.True(t, p.Contains(date("2024-08-16")))
	assert.False(t, p.Contains(date("2024-08-18")))
	assert.Equal(t, 2, p.Interior().Len())

	inverted := calendar.NewPeriod(date("2024-08-17"), date("2024-08-14"))
	assert.False(t, inverted.IsValid())
	assert.Equal(t, 0, inverted.Len())
	assert.Nil(t, inverted.Days())
}

func TestGap(t *testing.T) {
	// Friday -> Monday leaves Saturday and Sunday in between
	gap := calendar.Gap(date("2024-03-08"), date("2024-03-11"))
	assert.Equal(t, 2, gap.Len())

	// Adjacent days leave nothing in between
	assert.Equal(t, 0, calendar.Gap(date("2024-03-10"), date("2024-03-11")).Len())
}

// =============================================================================
// NON-WORKING DAYS
// =============================================================================

func TestIsPublicHoliday_FixedSet(t *testing.T) {
	holidays := []string{"2024-01-01", "2024-01-26", "2024-05-01", "2024-08-15", "2024-10-02", "2024-12-25"}
	for _, h := range holidays {
		assert.True(t, calendar.IsPublicHoliday(date(h)), h)
	}
	// Recurs every year
	assert.True(t, calendar.IsPublicHoliday(date("2031-08-15")))
	assert.False(t, calendar.IsPublicHoliday(date("2024-07-04")))
}

func TestIsNonWorkingDay(t *testing.T) {
	tests := []struct {
		day  string
		want bool
	}{
		{"2024-01-05", false}, // Friday
		{"2024-01-06", true},  // Saturday
		{"2024-01-07", true},  // Sunday
		{"2024-08-15", true},  // Thursday, holiday
		{"2024-08-16", false}, // Friday
	}
	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.IsNonWorkingDay(date(tt.day)))
		})
	}
	assert.False(t, calendar.IsNonWorkingDay(calendar.Date{}))
}

func TestCountNonWorkingDaysBetween(t *testing.T) {
	from, to := date("2024-08-14"), date("2024-08-17")

	// Exclusive: Aug 15 (holiday) and Aug 16 (Friday) -> 1
	assert.Equal(t, 1, calendar.CountNonWorkingDaysBetween(from, to, false))
	assert.Equal(t, 1, calendar.CountBetween(from, to))

	// Inclusive: Aug 15 and Aug 17 (Saturday) -> 2
	assert.Equal(t, 2, calendar.CountNonWorkingDaysBetween(from, to, true))
	assert.Equal(t, 2, calendar.CountInRange(from, to))

	// Degenerate ranges
	assert.Equal(t, 0, calendar.CountBetween(from, from))
	assert.Equal(t, 0, calendar.CountBetween(to, from))
	assert.Equal(t, 1, calendar.CountInRange(to, to))
}

func TestPolicy_CustomCalendar(t *testing.T) {
	weekendsOnly := calendar.Policy{Holidays: calendar.NoHolidays{}}
	assert.False(t, weekendsOnly.IsNonWorkingDay(date("2024-08-15")))
	assert.Equal(t, 1, weekendsOnly.CountInRange(date("2024-08-14"), date("2024-08-17")))

	var zero calendar.Policy
	assert.True(t, zero.IsNonWorkingDay(date("2024-08-15")), "zero policy falls back to the default holidays")
}

func TestPolicy_AllNonWorking(t *testing.T) {
	weekend := calendar.NewPeriod(date("2024-03-09"), date("2024-03-10"))
	assert.True(t, calendar.Default.AllNonWorking(weekend))

	withMonday := calendar.NewPeriod(date("2024-03-09"), date("2024-03-11"))
	assert.False(t, calendar.Default.AllNonWorking(withMonday))

	empty := calendar.Gap(date("2024-03-10"), date("2024-03-11"))
	assert.False(t, calendar.Default.AllNonWorking(empty))
}

func TestFixedHolidays_InYear(t *testing.T) {
	days := calendar.DefaultHolidays.InYear(2024)
	require.Len(t, days, 6)
	assert.Equal(t, "2024-01-01", days[0].String())
	assert.Equal(t, "2024-12-25", days[5].String())

	h, ok := calendar.DefaultHolidays.Lookup(date("2024-10-02"))
	require.True(t, ok)
	assert.Equal(t, "Gandhi Jayanti", h.Name)
}
