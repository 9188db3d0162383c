package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// dateLexer tokenizes date-like cell text
	dateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "DateSep", Pattern: `[./-]`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Plus", Pattern: `\+`},
		{Name: "Marker", Pattern: `[TtZz]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	dateParser = participle.MustBuild[DateExpr](
		participle.Lexer(dateLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

type (
	// DateExpr is a calendar date optionally followed by a time of day.
	//
	// Supported forms:
	//   - 15.01.2024, 15/01/2024, 15-01-2024 (day first)
	//   - 2024-01-15, 2024.01.15, 2024/01/15 (year first)
	//   - any of the above followed by "10:30", "10:30:00", "T10:30:00.000Z" or
	//     "10:30:00+03:00"
	DateExpr struct {
		First  string    `parser:"@Int"`
		Sep    string    `parser:"@DateSep"`
		Second string    `parser:"@Int"`
		Sep2   string    `parser:"@DateSep"`
		Third  string    `parser:"@Int"`
		Time   *TimeExpr `parser:"( ('T' | 't')? @@ )?"`
	}

	// TimeExpr is the time-of-day part of a DateExpr. It is validated but not
	// used: imported dates carry no time component.
	TimeExpr struct {
		Hour     string      `parser:"@Int Colon"`
		Minute   string      `parser:"@Int"`
		Second   string      `parser:"( Colon @Int"`
		Fraction string      `parser:"  ( '.' @Int )? )?"`
		Zone     *ZoneOffset `parser:"@@?"`
	}

	// ZoneOffset is a UTC designator or numeric offset.
	ZoneOffset struct {
		UTC    bool   `parser:"(  @('Z' | 'z')"`
		Sign   string `parser:" | @(Plus | '-')"`
		Hour   string `parser:"   @Int"`
		Minute string `parser:"   ( Colon? @Int )? )"`
	}
)

// ParseDate parses date-like cell text and returns the calendar date at
// midnight UTC. Dates written day first (15.01.2024) and year first
// (2024-01-15) are accepted, a trailing time of day is ignored. Ambiguous
// dates such as 05.01.2024 are always read day first (5 January), never month
// first.
//
// Example:
//
//	d, err := parser.ParseDate("15.01.2024 10:30")
//	// d == time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}

	expr, err := dateParser.ParseString("", s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to parse date %q", s)
	}

	return expr.Date()
}

// Date resolves the expression to a calendar date.
func (e *DateExpr) Date() (time.Time, error) {
	if e.Sep != e.Sep2 {
		return time.Time{}, errors.Errorf("mixed date separators %q and %q", e.Sep, e.Sep2)
	}

	var year, month, day string
	switch {
	case len(e.First) == 4:
		year, month, day = e.First, e.Second, e.Third
	case len(e.Third) == 4 || len(e.Third) == 2:
		day, month, year = e.First, e.Second, e.Third
	default:
		return time.Time{}, errors.Errorf("ambiguous date %s%s%s%s%s", e.First, e.Sep, e.Second, e.Sep2, e.Third)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid year")
	}
	if len(year) == 2 {
		y += 2000
	}

	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid month")
	}

	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid day")
	}

	if e.Time != nil {
		if err := e.Time.validate(); err != nil {
			return time.Time{}, err
		}
	}

	return calendarDate(y, m, d)
}

func (t *TimeExpr) validate() error {
	h, _ := strconv.Atoi(t.Hour)
	m, _ := strconv.Atoi(t.Minute)
	s, _ := strconv.Atoi(t.Second)

	if h > 23 || m > 59 || s > 60 {
		return errors.Errorf("invalid time of day %s:%s", t.Hour, t.Minute)
	}

	return nil
}

// calendarDate builds a date and rejects values time.Date would normalize,
// such as 31.02.2024.
func calendarDate(y, m, d int) (time.Time, error) {
	if m < 1 || m > 12 {
		return time.Time{}, errors.Errorf("invalid month %d", m)
	}

	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if date.Year() != y || int(date.Month()) != m || date.Day() != d {
		return time.Time{}, errors.Errorf("invalid date %04d-%02d-%02d", y, m, d)
	}

	return date, nil
}
