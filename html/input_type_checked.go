package html

import "github.com/heathj/goforms/dom"

// https://html.spec.whatwg.org/#checkbox-state-(type=checkbox)
type CheckboxInputType struct {
	baseInputType
}

func newCheckboxInputType(input *HTMLInputElement) *CheckboxInputType {
	return &CheckboxInputType{baseInputType: newBaseInputType(input, "checkbox", true)}
}

func (t *CheckboxInputType) IsAppendingData(submitter *HTMLElement) bool {
	return t.input.Checked() && t.baseInputType.IsAppendingData(submitter)
}

func (t *CheckboxInputType) ConstructDataSet(set *FormDataSet) {
	set.Append(t.input.Name(), checkedValue(t.input), t.name)
}

func (t *CheckboxInputType) Check(state *ValidityState) {
	state.Set(ValueMissing, t.input.Required() && !t.input.Checked())
}

// checkedValue is the submitted value of a checkbox or radio button.
func checkedValue(input *HTMLInputElement) string {
	if v, ok := input.GetAttribute("value"); ok {
		return v
	}
	return "on"
}

// https://html.spec.whatwg.org/#radio-button-state-(type=radio)
type RadioInputType struct {
	baseInputType
}

func newRadioInputType(input *HTMLInputElement) *RadioInputType {
	return &RadioInputType{baseInputType: newBaseInputType(input, "radio", true)}
}

func (t *RadioInputType) IsAppendingData(submitter *HTMLElement) bool {
	return t.input.Checked() && t.baseInputType.IsAppendingData(submitter)
}

func (t *RadioInputType) ConstructDataSet(set *FormDataSet) {
	set.Append(t.input.Name(), checkedValue(t.input), t.name)
}

func (t *RadioInputType) Check(state *ValidityState) {
	required, checked := false, false
	for _, member := range t.group() {
		required = required || member.Required()
		checked = checked || member.Checked()
	}
	state.Set(ValueMissing, required && !checked)
}

// checkedChanged unchecks the rest of the group when t's input is checked.
func (t *RadioInputType) checkedChanged(checked bool) {
	if !checked {
		return
	}
	for _, member := range t.group() {
		if member != t.input {
			member.setCheckedness(false)
		}
	}
}

// group returns the radio buttons sharing the input's name and form owner in
// the same tree, the input included.
// https://html.spec.whatwg.org/#radio-button-group
func (t *RadioInputType) group() []*HTMLInputElement {
	name := t.input.Name()
	if name == "" {
		return []*HTMLInputElement{t.input}
	}
	form := t.input.Form()

	var members []*HTMLInputElement
	t.input.Root().Walk(func(el *dom.Element) bool {
		other, ok := el.Host.(*HTMLInputElement)
		if !ok {
			return true
		}
		if _, radio := other.InputType().(*RadioInputType); radio && other.Name() == name && other.Form() == form {
			members = append(members, other)
		}
		return true
	})
	return members
}
