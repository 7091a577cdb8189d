package html

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

const msPerDay = 24 * 60 * 60 * 1000

// latest year a Date value can hold
const maxYear = 275760

// maxMillis bounds a Date value on either side of the epoch; maxMonths bounds
// month numbers well before int conversion could overflow.
const (
	maxMillis = 8.64e15
	maxMonths = maxYear * 12
)

var (
	floatPattern = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]+)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)
	datePattern  = regexp.MustCompile(`^([0-9]{4,})-([0-9]{2})-([0-9]{2})$`)
	monthPattern = regexp.MustCompile(`^([0-9]{4,})-([0-9]{2})$`)
	weekPattern  = regexp.MustCompile(`^([0-9]{4,})-W([0-9]{2})$`)
	timePattern  = regexp.MustCompile(`^([0-9]{2}):([0-9]{2})(?::([0-9]{2})(?:\.([0-9]{1,3}))?)?$`)
)

func isASCIIWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

// https://html.spec.whatwg.org/#rules-for-parsing-non-negative-integers
func parseNonNegativeInteger(s string) (int, bool) {
	n, ok := parseInteger(s)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// https://html.spec.whatwg.org/#rules-for-parsing-integers
func parseInteger(s string) (int, bool) {
	i := 0
	for i < len(s) && isASCIIWhitespace(s[i]) {
		i++
	}
	sign := 1
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}
	return sign * n, true
}

// parseFloatingPoint accepts valid floating-point numbers only.
// https://html.spec.whatwg.org/#valid-floating-point-number
func parseFloatingPoint(s string) (float64, bool) {
	if !floatPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	if f == 0 {
		// drop negative zero
		return 0, true
	}
	return f, true
}

// https://html.spec.whatwg.org/#best-representation-of-the-number-as-a-floating-point-number
func formatFloatingPoint(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func utf16Length(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func parseYearMonth(ys, ms string) (int, time.Month, bool) {
	y, err := strconv.Atoi(ys)
	if err != nil || y <= 0 || y > maxYear {
		return 0, 0, false
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, time.Month(m), true
}

func daysInMonth(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// https://html.spec.whatwg.org/#parse-a-date-string
func parseDate(s string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	y, mon, ok := parseYearMonth(m[1], m[2])
	if !ok {
		return time.Time{}, false
	}
	d, _ := strconv.Atoi(m[3])
	if d < 1 || d > daysInMonth(y, mon) {
		return time.Time{}, false
	}
	return time.Date(y, mon, d, 0, 0, 0, 0, time.UTC), true
}

// https://html.spec.whatwg.org/#parse-a-month-string
func parseMonth(s string) (int, time.Month, bool) {
	m := monthPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	return parseYearMonth(m[1], m[2])
}

// weeksInYear is 53 when the year starts on a Thursday, or on a Wednesday in
// a leap year.
func weeksInYear(y int) int {
	jan1 := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()
	leap := daysInMonth(y, time.February) == 29
	if jan1 == time.Thursday || (leap && jan1 == time.Wednesday) {
		return 53
	}
	return 52
}

// parseWeek returns the Monday starting the week.
// https://html.spec.whatwg.org/#parse-a-week-string
func parseWeek(s string) (time.Time, bool) {
	m := weekPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil || y <= 0 || y > maxYear {
		return time.Time{}, false
	}
	w, _ := strconv.Atoi(m[2])
	if w < 1 || w > weeksInYear(y) {
		return time.Time{}, false
	}
	return isoWeekStart(y).AddDate(0, 0, (w-1)*7), true
}

// isoWeekStart returns the Monday of week 1, the week holding January 4th.
func isoWeekStart(y int) time.Time {
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, time.UTC)
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset)
}

// parseTimeOfDay returns the duration since midnight.
// https://html.spec.whatwg.org/#parse-a-time-string
func parseTimeOfDay(s string) (time.Duration, bool) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	sec := 0
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}
	if h > 23 || minute > 59 || sec > 59 {
		return 0, false
	}
	ms := 0
	if m[4] != "" {
		frac := m[4] + strings.Repeat("0", 3-len(m[4]))
		ms, _ = strconv.Atoi(frac)
	}
	return time.Duration(h)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond, true
}

// parseLocalDateTime reads the floating time as if it were UTC.
// https://html.spec.whatwg.org/#parse-a-local-date-and-time-string
func parseLocalDateTime(s string) (time.Time, bool) {
	i := strings.IndexAny(s, "T ")
	if i < 0 {
		return time.Time{}, false
	}
	d, ok := parseDate(s[:i])
	if !ok {
		return time.Time{}, false
	}
	t, ok := parseTimeOfDay(s[i+1:])
	if !ok {
		return time.Time{}, false
	}
	return d.Add(t), true
}

func formatDate(t time.Time) (string, bool) {
	y, m, d := t.Date()
	if y <= 0 || y > maxYear {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}

func formatMonth(y int, m time.Month) (string, bool) {
	if y <= 0 || y > maxYear {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", y, m), true
}

func formatWeek(t time.Time) (string, bool) {
	y, w := t.ISOWeek()
	if y <= 0 || y > maxYear {
		return "", false
	}
	return fmt.Sprintf("%04d-W%02d", y, w), true
}

// formatTimeOfDay uses the shortest valid time string for d.
// https://html.spec.whatwg.org/#valid-normalised-local-date-and-time-string
func formatTimeOfDay(d time.Duration) string {
	ms := d.Milliseconds() % msPerDay
	if ms < 0 {
		ms += msPerDay
	}
	h := ms / 3600000
	minute := ms / 60000 % 60
	sec := ms / 1000 % 60
	frac := ms % 1000

	s := fmt.Sprintf("%02d:%02d", h, minute)
	if sec != 0 || frac != 0 {
		s += fmt.Sprintf(":%02d", sec)
	}
	if frac != 0 {
		s += fmt.Sprintf(".%03d", frac)
	}
	return s
}

func formatLocalDateTime(t time.Time) (string, bool) {
	date, ok := formatDate(t)
	if !ok {
		return "", false
	}
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return date + "T" + formatTimeOfDay(t.Sub(midnight)), true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
