package html

import "strings"

// ValidityFlag is one named constraint of a ValidityState.
type ValidityFlag uint16

// https://html.spec.whatwg.org/#validitystate
const (
	ValueMissing ValidityFlag = 1 << iota
	TypeMismatch
	PatternMismatch
	TooLong
	TooShort
	RangeUnderflow
	RangeOverflow
	StepMismatch
	BadInput
	CustomError
)

var validityFlags = []ValidityFlag{
	ValueMissing,
	TypeMismatch,
	PatternMismatch,
	TooLong,
	TooShort,
	RangeUnderflow,
	RangeOverflow,
	StepMismatch,
	BadInput,
	CustomError,
}

var validityFlagNames = map[ValidityFlag]string{
	ValueMissing:    "valueMissing",
	TypeMismatch:    "typeMismatch",
	PatternMismatch: "patternMismatch",
	TooLong:         "tooLong",
	TooShort:        "tooShort",
	RangeUnderflow:  "rangeUnderflow",
	RangeOverflow:   "rangeOverflow",
	StepMismatch:    "stepMismatch",
	BadInput:        "badInput",
	CustomError:     "customError",
}

var validityMessages = map[ValidityFlag]string{
	ValueMissing:    "Please fill out this field.",
	TypeMismatch:    "Please enter a value of the expected type.",
	PatternMismatch: "Please match the requested format.",
	TooLong:         "Please shorten this text.",
	TooShort:        "Please lengthen this text.",
	RangeUnderflow:  "Value must be greater than or equal to the minimum.",
	RangeOverflow:   "Value must be less than or equal to the maximum.",
	StepMismatch:    "Please enter a valid value; the nearest values are determined by the step.",
	BadInput:        "Please enter a valid value.",
}

func (f ValidityFlag) String() string {
	var names []string
	for _, flag := range validityFlags {
		if f&flag != 0 {
			names = append(names, validityFlagNames[flag])
		}
	}
	if len(names) == 0 {
		return "valid"
	}
	return strings.Join(names, "|")
}

// ValidityState collects the constraint flags of one form control. Element
// level rules fill it first and the active input type refines it.
type ValidityState struct {
	flags ValidityFlag
}

func (v *ValidityState) Reset()                  { v.flags = 0 }
func (v *ValidityState) Has(f ValidityFlag) bool { return v.flags&f != 0 }
func (v *ValidityState) Flags() ValidityFlag     { return v.flags }

// Valid reports whether no constraint flag is set.
func (v *ValidityState) Valid() bool { return v.flags == 0 }

func (v *ValidityState) Set(f ValidityFlag, on bool) {
	if on {
		v.flags |= f
	} else {
		v.flags &^= f
	}
}

// Map returns every flag by its DOM name, including "valid".
func (v *ValidityState) Map() map[string]bool {
	m := make(map[string]bool, len(validityFlags)+1)
	for _, flag := range validityFlags {
		m[validityFlagNames[flag]] = v.Has(flag)
	}
	m["valid"] = v.Valid()
	return m
}

func (v *ValidityState) message() string {
	for _, flag := range validityFlags {
		if v.Has(flag) {
			return validityMessages[flag]
		}
	}
	return ""
}
