package html

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// InputType is the behavior an <input> takes on for one value of its type
// attribute. HTMLInputElement delegates every type dependent operation to its
// current InputType and replaces it whenever the type attribute is written.
// https://html.spec.whatwg.org/#attr-input-type
type InputType interface {
	// Name is the canonical lowercase keyword of the type.
	Name() string

	// CanBeValidated reports whether the type takes part in constraint
	// validation in the element's current state.
	CanBeValidated() bool

	// IsAppendingData reports whether ConstructDataSet contributes entries
	// when the form is submitted by submitter (nil for none).
	IsAppendingData(submitter *HTMLElement) bool
	ConstructDataSet(set *FormDataSet)

	// Check refines state, which element level rules have already filled.
	Check(state *ValidityState)

	ConvertToNumber(value string) (float64, bool)
	ConvertFromNumber(value float64) (string, bool)
	ConvertToDate(value string) (time.Time, bool)
	ConvertFromDate(value time.Time) (string, bool)

	// DoStep moves the value n steps up, or down when up is false.
	DoStep(n int, up bool) error

	owner() *HTMLInputElement
}

type checkedObserver interface {
	checkedChanged(checked bool)
}

// baseInputType holds what every type shares. The zero conversions report
// failure and stepping is rejected.
type baseInputType struct {
	input    *HTMLInputElement
	name     string
	validate bool
}

func newBaseInputType(input *HTMLInputElement, name string, validate bool) baseInputType {
	return baseInputType{input: input, name: name, validate: validate}
}

func (t *baseInputType) Name() string               { return t.name }
func (t *baseInputType) owner() *HTMLInputElement   { return t.input }
func (t *baseInputType) CanBeValidated() bool       { return t.validate }
func (t *baseInputType) Check(state *ValidityState) {}

func (t *baseInputType) IsAppendingData(submitter *HTMLElement) bool {
	return t.input.Name() != ""
}

func (t *baseInputType) ConstructDataSet(set *FormDataSet) {
	set.Append(t.input.Name(), t.input.Value(), t.name)
}

func (t *baseInputType) ConvertToNumber(value string) (float64, bool) {
	return math.NaN(), false
}

func (t *baseInputType) ConvertFromNumber(value float64) (string, bool) {
	return "", false
}

func (t *baseInputType) ConvertToDate(value string) (time.Time, bool) {
	return time.Time{}, false
}

func (t *baseInputType) ConvertFromDate(value time.Time) (string, bool) {
	return "", false
}

func (t *baseInputType) DoStep(n int, up bool) error {
	return errors.Wrapf(ErrInvalidState, "%s inputs do not support stepping", t.name)
}

// isSubmitter reports whether submitter is the element owning t.
func (t *baseInputType) isSubmitter(submitter *HTMLElement) bool {
	return submitter != nil && submitter.Element == t.input.Element
}
