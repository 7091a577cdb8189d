package html

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func entryValues(set *FormDataSet) [][2]string {
	var out [][2]string
	for _, e := range set.Entries() {
		v := e.Value
		if e.File != nil {
			v = e.File.Name
		}
		out = append(out, [2]string{e.Name, v})
	}
	return out
}

func TestCheckboxDataSet(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  [][2]string
	}{
		{"unchecked", map[string]string{"name": "agree"}, nil},
		{"checked default value", map[string]string{"name": "agree", "checked": ""}, [][2]string{{"agree", "on"}}},
		{"checked with value", map[string]string{"name": "agree", "checked": "", "value": "yes"}, [][2]string{{"agree", "yes"}}},
		{"checked with empty value", map[string]string{"name": "agree", "checked": "", "value": ""}, [][2]string{{"agree", ""}}},
		{"unnamed", map[string]string{"checked": ""}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := map[string]string{"type": "checkbox"}
			for k, v := range tt.attrs {
				attrs[k] = v
			}
			e := newInput(attrs)
			set := NewFormDataSet()
			e.ConstructDataSet(set, nil)
			if diff := cmp.Diff(tt.want, entryValues(set)); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckboxOverrideControlsSubmission(t *testing.T) {
	e := newInput(map[string]string{"type": "checkbox", "name": "agree", "checked": ""})
	e.SetChecked(false)

	set := NewFormDataSet()
	e.ConstructDataSet(set, nil)
	assert.Equal(t, 0, set.Len())

	e.Reset()
	set = NewFormDataSet()
	e.ConstructDataSet(set, nil)
	assert.Equal(t, 1, set.Len())
}

func TestCheckboxRequired(t *testing.T) {
	e := newInput(map[string]string{"type": "checkbox", "required": ""})
	assert.True(t, e.Validity().Has(ValueMissing))
	e.SetChecked(true)
	assert.True(t, e.CheckValidity())
}

func TestRadioGroupExclusivity(t *testing.T) {
	doc, form := newForm()
	red := addInput(form, map[string]string{"type": "radio", "name": "color", "value": "red"})
	blue := addInput(form, map[string]string{"type": "radio", "name": "color", "value": "blue", "checked": ""})
	size := addInput(form, map[string]string{"type": "radio", "name": "size", "value": "l", "checked": ""})

	other := NewHTMLFormElement(doc)
	doc.DocumentElement.AppendChild(other.Element)
	elsewhere := addInput(other, map[string]string{"type": "radio", "name": "color", "checked": ""})

	assert.True(t, blue.Checked())
	red.SetChecked(true)

	assert.True(t, red.Checked())
	assert.False(t, blue.Checked(), "same group is unchecked")
	assert.True(t, size.Checked(), "other name is untouched")
	assert.True(t, elsewhere.Checked(), "other form is untouched")

	want := [][2]string{{"color", "red"}, {"size", "l"}}
	if diff := cmp.Diff(want, entryValues(form.ConstructDataSet(nil))); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	form.Reset()
	assert.False(t, red.Checked())
	assert.True(t, blue.Checked())
}

func TestRadioUncheckLeavesGroup(t *testing.T) {
	_, form := newForm()
	a := addInput(form, map[string]string{"type": "radio", "name": "r", "checked": ""})
	b := addInput(form, map[string]string{"type": "radio", "name": "r", "checked": ""})

	b.SetChecked(false)
	assert.True(t, a.Checked())
	assert.False(t, b.Checked())
}

func TestRadioGroupRequired(t *testing.T) {
	_, form := newForm()
	a := addInput(form, map[string]string{"type": "radio", "name": "r", "required": ""})
	b := addInput(form, map[string]string{"type": "radio", "name": "r"})

	assert.True(t, a.Validity().Has(ValueMissing))
	assert.True(t, b.Validity().Has(ValueMissing), "required applies to the whole group")
	assert.False(t, form.CheckValidity())

	b.SetChecked(true)
	assert.True(t, a.CheckValidity())
	assert.True(t, b.CheckValidity())
	assert.True(t, form.CheckValidity())
}

func TestUnnamedRadioIsItsOwnGroup(t *testing.T) {
	_, form := newForm()
	a := addInput(form, map[string]string{"type": "radio", "checked": ""})
	b := addInput(form, map[string]string{"type": "radio"})

	b.SetChecked(true)
	assert.True(t, a.Checked())
}
