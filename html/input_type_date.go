package html

import (
	"math"
	"time"
)

// temporalFormat binds one date or time microsyntax to its number space:
// milliseconds since the epoch, except month (months since 1970-01) and time
// (milliseconds since midnight).
type temporalFormat struct {
	rules      stepRules
	toNumber   func(string) (float64, bool)
	fromNumber func(float64) (string, bool)
	toDate     func(string) (time.Time, bool)
	fromDate   func(time.Time) (string, bool)
}

// fromMillis converts milliseconds since the epoch, false outside the range
// a Date can hold.
func fromMillis(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.Abs(f) > maxMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(math.Floor(f))).UTC(), true
}

// timeOfDay wraps f milliseconds onto a single day.
func timeOfDay(f float64) time.Duration {
	ms := math.Mod(math.Round(f), msPerDay)
	if ms < 0 {
		ms += msPerDay
	}
	return time.Duration(ms) * time.Millisecond
}

func sinceMidnight(t time.Time) time.Duration {
	t = t.UTC()
	return t.Sub(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

var temporalFormats = map[string]temporalFormat{
	// https://html.spec.whatwg.org/#date-state-(type=date)
	"date": {
		rules: stepRules{defaultStep: 1, scale: msPerDay, integral: true},
		toNumber: func(s string) (float64, bool) {
			t, ok := parseDate(s)
			return float64(t.UnixMilli()), ok
		},
		fromNumber: func(f float64) (string, bool) {
			t, ok := fromMillis(f)
			if !ok {
				return "", false
			}
			return formatDate(t)
		},
		toDate:   parseDate,
		fromDate: func(t time.Time) (string, bool) { return formatDate(t.UTC()) },
	},
	// https://html.spec.whatwg.org/#month-state-(type=month)
	"month": {
		rules: stepRules{defaultStep: 1, scale: 1, integral: true},
		toNumber: func(s string) (float64, bool) {
			y, m, ok := parseMonth(s)
			if !ok {
				return 0, false
			}
			return float64((y-1970)*12 + int(m) - 1), true
		},
		fromNumber: func(f float64) (string, bool) {
			if math.IsNaN(f) || math.Abs(f) > maxMonths {
				return "", false
			}
			n := int(math.Floor(f))
			years := floorDiv(n, 12)
			return formatMonth(1970+years, time.Month(n-years*12+1))
		},
		toDate: func(s string) (time.Time, bool) {
			y, m, ok := parseMonth(s)
			if !ok {
				return time.Time{}, false
			}
			return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), true
		},
		fromDate: func(t time.Time) (string, bool) {
			t = t.UTC()
			return formatMonth(t.Year(), t.Month())
		},
	},
	// https://html.spec.whatwg.org/#week-state-(type=week)
	"week": {
		// step base is the Monday 1969-12-29
		rules: stepRules{defaultStep: 1, scale: 7 * msPerDay, base: -259200000, integral: true},
		toNumber: func(s string) (float64, bool) {
			t, ok := parseWeek(s)
			return float64(t.UnixMilli()), ok
		},
		fromNumber: func(f float64) (string, bool) {
			t, ok := fromMillis(f)
			if !ok {
				return "", false
			}
			return formatWeek(t)
		},
		toDate:   parseWeek,
		fromDate: func(t time.Time) (string, bool) { return formatWeek(t.UTC()) },
	},
	// https://html.spec.whatwg.org/#time-state-(type=time)
	"time": {
		rules: stepRules{defaultStep: 60, scale: 1000},
		toNumber: func(s string) (float64, bool) {
			d, ok := parseTimeOfDay(s)
			return float64(d.Milliseconds()), ok
		},
		fromNumber: func(f float64) (string, bool) {
			return formatTimeOfDay(timeOfDay(f)), true
		},
		toDate: func(s string) (time.Time, bool) {
			d, ok := parseTimeOfDay(s)
			if !ok {
				return time.Time{}, false
			}
			return time.UnixMilli(d.Milliseconds()).UTC(), true
		},
		fromDate: func(t time.Time) (string, bool) { return formatTimeOfDay(sinceMidnight(t)), true },
	},
	// valueAsDate does not apply to datetime-local
	// https://html.spec.whatwg.org/#local-date-and-time-state-(type=datetime-local)
	"datetime-local": {
		rules: stepRules{defaultStep: 60, scale: 1000},
		toNumber: func(s string) (float64, bool) {
			t, ok := parseLocalDateTime(s)
			return float64(t.UnixMilli()), ok
		},
		fromNumber: func(f float64) (string, bool) {
			t, ok := fromMillis(f)
			if !ok {
				return "", false
			}
			return formatLocalDateTime(t)
		},
	},
}

// DateInputType serves date, month, week, time and datetime-local.
type DateInputType struct {
	baseInputType
	format temporalFormat
}

func newDateInputType(input *HTMLInputElement, name string) *DateInputType {
	return &DateInputType{
		baseInputType: newBaseInputType(input, name, true),
		format:        temporalFormats[name],
	}
}

func (t *DateInputType) stepRules() stepRules        { return t.format.rules }
func (t *DateInputType) CanBeValidated() bool        { return !t.input.ReadOnly() }
func (t *DateInputType) DoStep(n int, up bool) error { return doStep(t, n, up) }

func (t *DateInputType) parse(value string) (float64, bool) {
	return t.format.toNumber(value)
}

func (t *DateInputType) ConvertToNumber(value string) (float64, bool) {
	n, ok := t.format.toNumber(value)
	if !ok {
		return math.NaN(), false
	}
	return n, true
}

// ConvertFromNumber clears the value for numbers outside the years the
// microsyntaxes can express.
func (t *DateInputType) ConvertFromNumber(value float64) (string, bool) {
	if s, ok := t.format.fromNumber(value); ok {
		return s, true
	}
	log.WithField("type", t.name).Debugf("%v is out of range", value)
	return "", true
}

func (t *DateInputType) serialize(value float64) (string, bool) {
	return t.format.fromNumber(value)
}

func (t *DateInputType) ConvertToDate(value string) (time.Time, bool) {
	if t.format.toDate == nil {
		return time.Time{}, false
	}
	return t.format.toDate(value)
}

func (t *DateInputType) ConvertFromDate(value time.Time) (string, bool) {
	if t.format.fromDate == nil {
		return "", false
	}
	if s, ok := t.format.fromDate(value); ok {
		return s, true
	}
	return "", true
}

func (t *DateInputType) Check(state *ValidityState) {
	checkNumeric(t, state)
}
