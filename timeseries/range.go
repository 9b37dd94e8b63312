package timeseries

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Periods returns an iterator that yields each sequential range of a given
// period 'p' that contains at least one day within the original range 'r'.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		// Start from the beginning of the original range.
		for current := r.From; !current.After(r.To); {
			// Get the full period range containing the current date.
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			// Move to the day after the end of the yielded period to start the next iteration.
			current = periodRange.To.Add(1)
		}
	}
}

// Period returns the period of this range if it's a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From == r.To:
		return Daily, true
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		return Weekly, true
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Daily, false
	}
}

// Name the period range
func (r Range) Name() string {
	p, _ := r.Period()
	return p.Name()
}

// Identifier computes a unique identifier for the Range.
// If the range is a standard period, use a short insightful name
// ("2026-08-21", "2026-W34", "2026-08", "2026-Q3", "2026").
func (r Range) Identifier() string {

	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}

	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		_, week := r.From.ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.Year(), week)
	case Monthly:
		return r.From.Format("2006-01")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		panic("unknown period")
	}
}

var (
	yearRE    = regexp.MustCompile(`^(\d{4})$`)
	monthRE   = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)
	quarterRE = regexp.MustCompile(`^(\d{4})-[qQ]([1-4])$`)
	weekRE    = regexp.MustCompile(`^(\d{4})-[wW](\d{1,2})$`)
)

// ParseRange parses a range identifier back into a Range. It accepts the
// forms produced by [Range.Identifier], and falls back to [ParseDate] for a
// single-day range.
func ParseRange(str string) (Range, error) {
	if m := yearRE.FindStringSubmatch(str); m != nil {
		y, _ := strconv.Atoi(m[1])
		return Yearly.Range(NewDate(y, time.January, 1)), nil
	}
	if m := quarterRE.FindStringSubmatch(str); m != nil {
		y, _ := strconv.Atoi(m[1])
		q, _ := strconv.Atoi(m[2])
		return Quarterly.Range(NewDate(y, time.Month((q-1)*3+1), 1)), nil
	}
	if m := weekRE.FindStringSubmatch(str); m != nil {
		y, _ := strconv.Atoi(m[1])
		w, _ := strconv.Atoi(m[2])
		if w < 1 || w > 53 {
			return Range{}, fmt.Errorf("invalid week %d in range %q", w, str)
		}
		return Weekly.Range(isoWeekStart(y, w)), nil
	}
	if m := monthRE.FindStringSubmatch(str); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		if mo < 1 || mo > 12 {
			return Range{}, fmt.Errorf("invalid month %d in range %q", mo, str)
		}
		return Monthly.Range(NewDate(y, time.Month(mo), 1)), nil
	}
	d, err := ParseDate(str)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", str, err)
	}
	return Range{From: d, To: d}, nil
}

// isoWeekStart returns the Monday of the given ISO week.
func isoWeekStart(year, week int) Date {
	// January 4th is always in ISO week 1.
	jan4 := NewDate(year, time.January, 4)
	monday := jan4.StartOf(Weekly)
	return monday.Add((week - 1) * 7)
}
