package workingtime

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// buildCalendar renders the records as VEVENTs, one per shift. Clock values
// that fail to parse fall back to an all-day event on the record's date.
func buildCalendar(employeeID string, wts []WorkingTime) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//go-timesheet//working times//EN")

	for _, wt := range wts {
		event := cal.AddEvent(fmt.Sprintf("workingtime-%d@go-timesheet", wt.ID))
		event.SetSummary(fmt.Sprintf("Shift %s - %s", wt.StartTime, wt.EndTime))
		event.SetDtStampTime(time.Now())

		start, errStart := combine(wt.Date, wt.StartTime)
		end, errEnd := combine(wt.Date, wt.EndTime)
		if errStart != nil || errEnd != nil {
			event.SetAllDayStartAt(wt.Date)
			event.SetAllDayEndAt(wt.Date.AddDate(0, 0, 1))
			continue
		}
		event.SetStartAt(start)
		event.SetEndAt(end)
	}

	return cal.Serialize()
}

func combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
