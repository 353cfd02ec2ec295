package calculation

import (
	"strconv"
	"strings"
	"time"
)

// TimeRecord is one recorded shift, times in "HH:MM".
type TimeRecord struct {
	Date      time.Time
	StartTime string
	EndTime   string
}

// Summary aggregates an employee's filtered records.
type Summary struct {
	WorkingDays         int
	RegularWorkingHours int
	OvertimeHours       int
	Earnings            float64
}

// SplitHours splits one record into regular and overtime hours. Hours worked
// is the whole-hour truncation of end minus start; up to 8 of them are
// regular, the rest overtime. The split is per record, not per calendar day,
// so two shifts on the same date each get their own 8 regular hours.
func SplitHours(start, end string) (regular, overtime int) {
	hours := (parseClock(end) - parseClock(start)) / 60
	regular = hours
	if regular > 8 {
		regular = 8
	}
	if hours > 8 {
		overtime = hours - 8
	}
	return regular, overtime
}

// Summarize filters the records by year and month and totals them.
// year==0 means all records; month==0 means the whole year. Overtime pays
// double the hourly rate.
func Summarize(rate float64, times []TimeRecord, year, month int) Summary {
	var sum Summary
	for _, t := range times {
		if year != 0 && t.Date.Year() != year {
			continue
		}
		if year != 0 && month != 0 && int(t.Date.Month()) != month {
			continue
		}

		regular, overtime := SplitHours(t.StartTime, t.EndTime)
		sum.RegularWorkingHours += regular
		sum.OvertimeHours += overtime
		sum.WorkingDays++
	}

	sum.Earnings = float64(sum.OvertimeHours)*(rate*2) + float64(sum.RegularWorkingHours)*rate
	return sum
}

// parseClock turns "HH:MM" into minutes since midnight; malformed input
// counts as 00:00.
func parseClock(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}
