package core

import "time"

// Terms are the commercial fields shared by quotes and policies. Functions
// in this package take a Terms value and return the updated copy.
type Terms struct {
	Insurance                     Insurance     `json:"insurance"`
	Premium                       Amount        `json:"premium"`
	NbMonthsDue                   int           `json:"nb_months_due"`
	StartDate                     *time.Time    `json:"start_date,omitempty"`
	TermStartDate                 *time.Time    `json:"term_start_date,omitempty"`
	TermEndDate                   *time.Time    `json:"term_end_date,omitempty"`
	SpecialOperationCode          OperationCode `json:"special_operation_code,omitempty"`
	SpecialOperationCodeAppliedAt *time.Time    `json:"special_operation_code_applied_at,omitempty"`
}

// NewTerms prices a fresh term with no operation code: twelve months due.
func NewTerms(insurance Insurance) Terms {
	return Terms{
		Insurance:   insurance,
		Premium:     insurance.Estimate.MonthlyPrice.Times(DefaultMonthsDue),
		NbMonthsDue: DefaultMonthsDue,
	}
}

// StartOfDayUTC truncates t to midnight UTC.
func StartOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TermEndDate is the last day (inclusive) of a term of months starting on
// start: 2020-01-05 over 12 months ends 2021-01-04.
func TermEndDate(start time.Time, months int) time.Time {
	return addCalendarMonths(StartOfDayUTC(start), months).AddDate(0, 0, -1)
}

// addCalendarMonths clamps to the end of the target month, so Jan 31 plus one
// month is the last day of February.
func addCalendarMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// ApplyStartDate sets the start and term dates. A nil candidate means today.
// Comparison with today ignores the time of day on both sides.
func ApplyStartDate(t Terms, candidate *time.Time, now time.Time) (Terms, error) {
	today := StartOfDayUTC(now)
	start := today
	if candidate != nil {
		start = StartOfDayUTC(*candidate)
	}
	if start.Before(today) {
		return Terms{}, &StartDateBeforeTodayError{StartDate: start, Today: today}
	}

	end := TermEndDate(start, t.NbMonthsDue)
	termStart := start
	t.StartDate = &start
	t.TermStartDate = &termStart
	t.TermEndDate = &end
	return t, nil
}

// refreshTermEndDate keeps the end date in line with NbMonthsDue once a start
// date exists. It does not re-check the start date against today.
func refreshTermEndDate(t Terms) Terms {
	if t.StartDate == nil {
		return t
	}
	end := TermEndDate(*t.StartDate, t.NbMonthsDue)
	t.TermEndDate = &end
	return t
}
