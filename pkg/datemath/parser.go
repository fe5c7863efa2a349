package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthDayClock = regexp.MustCompile(`(\d{1,2})-(\d{1,2})\s+(\d{1,2}):(\d{2})`)

// Parser turns the loosely formatted due dates an LLM produces into instants.
// Wall-clock forms are read in the parser's timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Asia/Shanghai".
// An empty name means the host's local zone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		return &Parser{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// FormatMinute renders t as "yyyy-MM-dd HH:mm" in the parser's timezone.
func (p *Parser) FormatMinute(t time.Time) string {
	return t.In(p.location).Format(minuteLayout)
}

// Parse runs the string fallback chain against raw. now supplies the year for
// yearless forms and the date for clock-only forms. Blank or unrecognized
// input returns nil.
func (p *Parser) Parse(raw string, now time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return nil
	}

	ref := now.In(p.location)
	for _, l := range layouts {
		t, ok := p.tryLayout(l, raw, ref)
		if ok {
			return &t
		}
	}

	if t, ok := p.parseMonthDayClock(raw, ref); ok {
		return &t
	}
	return nil
}

// FromEpoch converts an epoch timestamp. Values below 1e12 are seconds,
// everything else milliseconds.
func (p *Parser) FromEpoch(v int64) time.Time {
	if v < epochMillisThreshold {
		v *= 1000
	}
	return time.UnixMilli(v).In(p.location)
}

func (p *Parser) tryLayout(l layout, raw string, ref time.Time) (time.Time, bool) {
	if l.zoned {
		t, err := time.Parse(l.format, raw)
		if err != nil {
			return time.Time{}, false
		}
		return t.In(p.location), true
	}

	t, err := time.ParseInLocation(l.format, raw, p.location)
	if err != nil {
		return time.Time{}, false
	}

	switch {
	case l.yearless:
		return p.date(ref.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
	case l.clockOnly:
		return p.date(ref.Year(), int(ref.Month()), ref.Day(), t.Hour(), t.Minute())
	}
	return t, true
}

// parseMonthDayClock is the last resort: an "M-D H:mm" fragment anywhere in raw.
func (p *Parser) parseMonthDayClock(raw string, ref time.Time) (time.Time, bool) {
	m := monthDayClock.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])
	return p.date(ref.Year(), month, day, hour, minute)
}

// date builds a local instant and rejects fields time.Date would normalize.
func (p *Parser) date(year, month, day, hour, minute int) (time.Time, bool) {
	if month < 1 || month > 12 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, p.location)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
