// Package daycount turns an inclusive date range into chargeable leave days.
package daycount

import (
	"errors"
	"strings"
	"time"
)

type Rule string

const (
	BusinessDays Rule = "business_days"
	CalendarDays Rule = "calendar_days"
)

var (
	ErrInvalidRange = errors.New("daycount: end date is before start date")
	ErrUnknownRule  = errors.New("daycount: unknown day counting rule")
)

func (r Rule) Valid() bool {
	return r == BusinessDays || r == CalendarDays
}

// RuleForName is the default applied when a leave type is configured without
// an explicit rule: names mentioning maternity count calendar days.
func RuleForName(leaveTypeName string) Rule {
	if strings.Contains(strings.ToLower(leaveTypeName), "maternity") {
		return CalendarDays
	}
	return BusinessDays
}

// Calculate counts the days in [start, end] under rule. Only the calendar
// date of each bound matters.
func Calculate(start, end time.Time, rule Rule) (int, error) {
	start, end = Date(start), Date(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}

	switch rule {
	case CalendarDays:
		return int(end.Sub(start).Hours()/24) + 1, nil
	case BusinessDays:
		days := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if IsBusinessDay(d) {
				days++
			}
		}
		return days, nil
	default:
		return 0, ErrUnknownRule
	}
}

// CalculateForName applies the rule implied by the leave type name.
func CalculateForName(start, end time.Time, leaveTypeName string) (int, error) {
	return Calculate(start, end, RuleForName(leaveTypeName))
}

func IsBusinessDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Date truncates t to midnight UTC of its own calendar date.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
