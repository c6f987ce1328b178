package budget

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"time"
)

// MonthFormat is the format used to represent months as strings ("YYYY-MM").
const MonthFormat = "2006-01"

// Month represents a calendar month, the unit of balance sheets, plans and
// rate records.
type Month struct {
	y int        // year
	m time.Month // month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	y, m, _ := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Date()
	return Month{y, m}
}

// ThisMonth returns the month containing today.
func ThisMonth() Month { return Today().Month() }

// Year returns the month's year.
func (m Month) Year() int { return m.y }

// Time returns the month's time.Month part.
func (m Month) Time() time.Month { return m.m }

// String formats the month as "YYYY-MM".
func (m Month) String() string { return m.time().Format(MonthFormat) }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool { return m.time().Before(x.time()) }

// After reports whether the month m is after x.
func (m Month) After(x Month) bool { return m.time().After(x.time()) }

// Add returns a new Month with the given number of months added.
func (m Month) Add(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// Prev returns the calendar-previous month.
func (m Month) Prev() Month { return m.Add(-1) }

// January returns January of the month's year.
func (m Month) January() Month { return NewMonth(m.y, time.January) }

// First returns the first day of the month.
func (m Month) First() Date { return NewDate(m.y, m.m, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return NewDate(m.y, m.m+1, 0) }

// Key returns the month's two-digit key ("01".."12") used to index
// per-category plan amounts.
func (m Month) Key() string { return fmt.Sprintf("%02d", int(m.m)) }

// Days returns an iterator that yields each day of the month, in order.
func (m Month) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := m.First(); !d.After(m.Last()); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Months returns an iterator that yields each month from m to 'to',
// boundaries included. It yields nothing if 'to' is before m.
func (m Month) Months(to Month) iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for x := m; !x.After(to); x = x.Add(1) {
			if !yield(x) {
				return
			}
		}
	}
}

// monthRE is strict on purpose: trend queries and data files must use the
// canonical "YYYY-MM" form.
var monthRE = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ParseMonth parses a Month from its canonical "YYYY-MM" form.
func ParseMonth(str string) (Month, error) {
	match := monthRE.FindStringSubmatch(str)
	if match == nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q", str, MonthFormat)
	}
	y, _ := strconv.Atoi(match[1])
	mo, _ := strconv.Atoi(match[2])
	if mo < 1 || mo > 12 {
		return Month{}, fmt.Errorf("invalid month %q: month part out of range", str)
	}
	return NewMonth(y, time.Month(mo)), nil
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// MarshalText makes Month usable as a JSON object key.
func (m Month) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText parses a month from its canonical form.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
