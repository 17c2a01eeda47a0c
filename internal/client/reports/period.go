// Package reports filters, sorts and summarizes waste records for a report
// period, exports the result as a JSON document and manages the list of
// notification recipients.
package reports

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/common"
)

// Period selects the date range of a report.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodCustom  Period = "custom"
)

// Periods lists the periods in menu order.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodCustom}

// ParsePeriod accepts a period name; empty means daily.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "", PeriodDaily:
		return PeriodDaily, nil
	case PeriodWeekly, PeriodMonthly, PeriodCustom:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown period %q: %w", s, common.ErrValidation)
	}
}

// Label is the Spanish name printed in reports.
func (p Period) Label() string {
	switch p {
	case PeriodDaily:
		return "Diario"
	case PeriodWeekly:
		return "Semanal"
	case PeriodMonthly:
		return "Mensual"
	case PeriodCustom:
		return "Personalizado"
	default:
		return string(p)
	}
}

// DateRange is an inclusive range of calendar days. Start and End are at
// midnight in the location of the clock that produced them.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// RangeFor computes the range of p relative to today. start and end are
// only read for PeriodCustom and must be YYYY-MM-DD. A custom range with
// start after end is returned as is; it matches no record.
func RangeFor(p Period, today time.Time, start, end string) (DateRange, error) {
	day := midnight(today)

	switch p {
	case PeriodDaily:
		return DateRange{Start: day, End: day}, nil
	case PeriodWeekly:
		return DateRange{Start: day.AddDate(0, 0, -6), End: day}, nil
	case PeriodMonthly:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return DateRange{Start: first, End: first.AddDate(0, 1, -1)}, nil
	case PeriodCustom:
		s, err := time.ParseInLocation(common.DateLayout, start, day.Location())
		if err != nil {
			return DateRange{}, fmt.Errorf("start date %q is not YYYY-MM-DD: %w", start, common.ErrValidation)
		}
		e, err := time.ParseInLocation(common.DateLayout, end, day.Location())
		if err != nil {
			return DateRange{}, fmt.Errorf("end date %q is not YYYY-MM-DD: %w", end, common.ErrValidation)
		}
		return DateRange{Start: s, End: e}, nil
	default:
		return DateRange{}, fmt.Errorf("unknown period %q: %w", p, common.ErrValidation)
	}
}

// Empty reports whether the range contains no day.
func (r DateRange) Empty() bool { return r.Start.After(r.End) }

// Contains reports whether the record date (YYYY-MM-DD) lies within the
// range. Dates that do not parse are outside every range.
func (r DateRange) Contains(date string) bool {
	d, err := time.ParseInLocation(common.DateLayout, date, r.Start.Location())
	if err != nil {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// StartISO and EndISO format the bounds as YYYY-MM-DD.
func (r DateRange) StartISO() string { return r.Start.Format(common.DateLayout) }
func (r DateRange) EndISO() string   { return r.End.Format(common.DateLayout) }

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
