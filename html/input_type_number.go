package html

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// stepRules describe how a numeric type steps. Steps are given in the type's
// step unit and multiplied by scale to reach number space.
// https://html.spec.whatwg.org/#concept-input-step-default
type stepRules struct {
	defaultStep float64
	scale       float64
	base        float64
	integral    bool

	// range inputs fall back to these bounds
	bounded    bool
	defaultMin float64
	defaultMax float64
}

// numericInputType is implemented by the types whose value maps to a number:
// number, range and the date and time family.
type numericInputType interface {
	InputType
	stepRules() stepRules
	// parse converts strictly, without any sanitization fallback.
	parse(value string) (float64, bool)
	// serialize formats a number, false when it has no string form.
	serialize(value float64) (string, bool)
}

// allowedStep returns the step in number space; false means "any".
// https://html.spec.whatwg.org/#concept-input-step
func allowedStep(t numericInputType) (float64, bool) {
	rules := t.stepRules()
	s, ok := t.owner().GetAttribute("step")
	if ok && strings.EqualFold(strings.TrimSpace(s), "any") {
		return 0, false
	}
	if ok {
		if step, ok := parseFloatingPoint(s); ok && step > 0 {
			if rules.integral {
				step = math.Round(step)
			}
			if step > 0 {
				return step * rules.scale, true
			}
		}
	}
	return rules.defaultStep * rules.scale, true
}

// bound reads the min or max attribute in number space.
func bound(t numericInputType, attr string) (float64, bool) {
	if v, ok := t.owner().GetAttribute(attr); ok {
		if n, ok := t.parse(v); ok {
			return n, true
		}
	}
	rules := t.stepRules()
	if !rules.bounded {
		return 0, false
	}
	if attr == "min" {
		return rules.defaultMin, true
	}
	return rules.defaultMax, true
}

// https://html.spec.whatwg.org/#concept-input-min-zero
func stepBase(t numericInputType) float64 {
	if v, ok := t.owner().GetAttribute("min"); ok {
		if n, ok := t.parse(v); ok {
			return n
		}
	}
	return t.stepRules().base
}

// doStep implements stepUp(n) when up is set and stepDown(n) otherwise. The
// direction comes from the method, so stepUp(-1) that would lower the value
// leaves it unchanged.
// https://html.spec.whatwg.org/#dom-input-stepup
func doStep(t numericInputType, n int, up bool) error {
	step, ok := allowedStep(t)
	if !ok {
		return errors.Wrapf(ErrInvalidState, "%s input has step \"any\"", t.Name())
	}
	minimum, hasMin := bound(t, "min")
	maximum, hasMax := bound(t, "max")
	if hasMin && hasMax && minimum > maximum {
		return nil
	}

	input := t.owner()
	value, ok := t.ConvertToNumber(input.Value())
	if !ok {
		value = 0
	}
	before := value
	base := stepBase(t)

	if !stepAligned(value, base, step) {
		value = alignStep(value, base, step, up)
	} else {
		if !up {
			n = -n
		}
		value = addSteps(value, step, n)
	}

	if hasMin && value < minimum {
		value = alignStep(minimum, base, step, true)
	}
	if hasMax && value > maximum {
		value = alignStep(maximum, base, step, false)
	}
	if (!up && value > before) || (up && value < before) {
		return nil
	}

	s, ok := t.serialize(value)
	if !ok {
		log.WithField("type", t.Name()).Debugf("step result %v has no string form", value)
		return nil
	}
	input.SetValue(s)
	return nil
}

// checkNumeric sets valueMissing, badInput, rangeUnderflow, rangeOverflow
// and stepMismatch.
func checkNumeric(t numericInputType, state *ValidityState) {
	input := t.owner()
	value := input.Value()
	if value == "" {
		state.Set(ValueMissing, input.Required())
		return
	}
	n, ok := t.parse(value)
	if !ok {
		state.Set(BadInput, true)
		return
	}
	if minimum, ok := bound(t, "min"); ok && n < minimum {
		state.Set(RangeUnderflow, true)
	}
	if maximum, ok := bound(t, "max"); ok && n > maximum {
		state.Set(RangeOverflow, true)
	}
	if step, ok := allowedStep(t); ok && !stepAligned(n, stepBase(t), step) {
		state.Set(StepMismatch, true)
	}
}

// https://html.spec.whatwg.org/#number-state-(type=number)
type NumberInputType struct {
	baseInputType
}

func newNumberInputType(input *HTMLInputElement) *NumberInputType {
	return &NumberInputType{baseInputType: newBaseInputType(input, "number", true)}
}

func (t *NumberInputType) stepRules() stepRules {
	return stepRules{defaultStep: 1, scale: 1}
}

func (t *NumberInputType) parse(value string) (float64, bool) {
	return parseFloatingPoint(value)
}

func (t *NumberInputType) CanBeValidated() bool        { return !t.input.ReadOnly() }
func (t *NumberInputType) DoStep(n int, up bool) error { return doStep(t, n, up) }

func (t *NumberInputType) serialize(value float64) (string, bool) {
	return formatFloatingPoint(value), true
}

func (t *NumberInputType) ConvertToNumber(value string) (float64, bool) {
	n, ok := parseFloatingPoint(value)
	if !ok {
		return math.NaN(), false
	}
	return n, true
}

func (t *NumberInputType) ConvertFromNumber(value float64) (string, bool) {
	return formatFloatingPoint(value), true
}

func (t *NumberInputType) Check(state *ValidityState) {
	checkNumeric(t, state)
}

// RangeInputType always has a number value: an unparsable value reads as the
// default value and the value is clamped to the bounds.
// https://html.spec.whatwg.org/#range-state-(type=range)
type RangeInputType struct {
	baseInputType
}

func newRangeInputType(input *HTMLInputElement) *RangeInputType {
	return &RangeInputType{baseInputType: newBaseInputType(input, "range", true)}
}

func (t *RangeInputType) stepRules() stepRules {
	return stepRules{defaultStep: 1, scale: 1, bounded: true, defaultMin: 0, defaultMax: 100}
}

func (t *RangeInputType) parse(value string) (float64, bool) {
	return parseFloatingPoint(value)
}

func (t *RangeInputType) DoStep(n int, up bool) error { return doStep(t, n, up) }

func (t *RangeInputType) serialize(value float64) (string, bool) {
	return formatFloatingPoint(value), true
}

// defaultValue is the midpoint of the bounds, or the minimum when the
// maximum is below it.
// https://html.spec.whatwg.org/#range-state-(type=range):concept-input-value-default-range
func (t *RangeInputType) defaultValue() float64 {
	minimum, _ := bound(t, "min")
	maximum, _ := bound(t, "max")
	if maximum < minimum {
		return minimum
	}
	return minimum + (maximum-minimum)/2
}

func (t *RangeInputType) ConvertToNumber(value string) (float64, bool) {
	n, ok := parseFloatingPoint(value)
	if !ok {
		return t.defaultValue(), true
	}
	minimum, _ := bound(t, "min")
	maximum, _ := bound(t, "max")
	if maximum < minimum {
		maximum = minimum
	}
	return math.Max(minimum, math.Min(maximum, n)), true
}

func (t *RangeInputType) ConvertFromNumber(value float64) (string, bool) {
	return formatFloatingPoint(value), true
}

// Check only reports step mismatches; the range value is always in bounds.
func (t *RangeInputType) Check(state *ValidityState) {
	n, _ := t.ConvertToNumber(t.input.Value())
	if step, ok := allowedStep(t); ok && !stepAligned(n, stepBase(t), step) {
		state.Set(StepMismatch, true)
	}
}
