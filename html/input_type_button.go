package html

import "github.com/heathj/goforms/dom"

// ButtonInputType serves button and reset inputs, which never submit a
// value and are barred from constraint validation.
type ButtonInputType struct {
	baseInputType
}

func newButtonInputType(input *HTMLInputElement, name string) *ButtonInputType {
	return &ButtonInputType{baseInputType: newBaseInputType(input, name, false)}
}

func (t *ButtonInputType) IsAppendingData(submitter *HTMLElement) bool { return false }

// https://html.spec.whatwg.org/#submit-button-state-(type=submit)
type SubmitInputType struct {
	baseInputType
}

func newSubmitInputType(input *HTMLInputElement) *SubmitInputType {
	return &SubmitInputType{baseInputType: newBaseInputType(input, "submit", true)}
}

// IsAppendingData is true only for the button that submitted the form.
func (t *SubmitInputType) IsAppendingData(submitter *HTMLElement) bool {
	return t.isSubmitter(submitter) && t.input.Name() != ""
}

// https://html.spec.whatwg.org/#hidden-state-(type=hidden)
type HiddenInputType struct {
	baseInputType
}

func newHiddenInputType(input *HTMLInputElement) *HiddenInputType {
	return &HiddenInputType{baseInputType: newBaseInputType(input, "hidden", false)}
}

// ConstructDataSet submits the form's character encoding for a hidden input
// named _charset_.
func (t *HiddenInputType) ConstructDataSet(set *FormDataSet) {
	name := t.input.Name()
	if dom.ASCIILower(name) == "_charset_" {
		set.Append(name, t.input.charset(), t.name)
		return
	}
	set.Append(name, t.input.Value(), t.name)
}
