package html

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/heathj/goforms/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateElementWrapsByTagName(t *testing.T) {
	doc := dom.NewHTMLDocument()
	tests := []struct {
		name string
		want any
	}{
		{"input", (*HTMLInputElement)(nil)},
		{"INPUT", (*HTMLInputElement)(nil)},
		{"form", (*HTMLFormElement)(nil)},
		{"datalist", (*HTMLDataListElement)(nil)},
		{"div", (*HTMLElement)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := CreateElement(doc, tt.name)
			assert.Same(t, doc, el.OwnerDocument)
			assert.Equal(t, dom.ASCIILower(tt.name), el.LocalName)
			assert.IsType(t, tt.want, el.Host)
		})
	}
}

func TestCreatedInputHandlesTypeWrites(t *testing.T) {
	el := CreateElement(nil, "input")
	el.SetAttribute("type", "range")
	input := el.Host.(*HTMLInputElement)
	assert.Equal(t, "range", input.InputType().Name())
	assert.Equal(t, 50.0, input.ValueAsNumber())
}

func TestHTMLElementReflection(t *testing.T) {
	e := CreateElement(nil, "span").Host.(*HTMLElement)
	assert.Equal(t, "", e.Title())
	assert.False(t, e.Hidden())

	e.SetTitle("tip")
	e.SetLang("en")
	e.SetAccessKey("k")
	e.SetHidden(true)
	assert.Equal(t, "tip", e.Title())
	assert.Equal(t, "en", e.Lang())
	assert.Equal(t, "k", e.AccessKey())
	assert.True(t, e.Hidden())
	assert.Equal(t, []string{"accesskey", "hidden", "lang", "title"}, e.GetAttributeNames())

	e.SetHidden(false)
	assert.False(t, e.HasAttribute("hidden"))
}

func TestDeepCloneWrapsDescendants(t *testing.T) {
	doc, form := newForm()
	addInput(form, map[string]string{"name": "q", "value": "a"})
	box := addInput(form, map[string]string{"type": "checkbox", "name": "agree"})
	box.SetChecked(true)
	list := NewHTMLDataListElement(doc)
	form.AppendChild(list.Element)
	list.AppendChild(newInputIn(doc, map[string]string{"name": "inlist", "value": "x"}).Element)

	el := CloneNode(form.Element, true)
	c, ok := el.Host.(*HTMLFormElement)
	require.True(t, ok, "clone host is %T", el.Host)
	require.Len(t, el.Children, 3)
	assert.IsType(t, (*HTMLDataListElement)(nil), el.Children[2].Host)

	inputs := c.Elements()
	require.Len(t, inputs, 3)
	for _, input := range inputs {
		assert.Same(t, c, input.Form())
	}
	cbox := inputs[1]
	assert.Equal(t, "checkbox", cbox.InputType().Name())
	assert.True(t, cbox.Checked())

	want := [][2]string{{"q", "a"}, {"agree", "on"}}
	if diff := cmp.Diff(want, entryValues(c.ConstructDataSet(nil))); diff != "" {
		t.Errorf("clone entries mismatch (-want +got):\n%s", diff)
	}

	cbox.SetChecked(false)
	cbox.SetType("number")
	assert.True(t, box.Checked())
	assert.Equal(t, "checkbox", box.InputType().Name())
	if diff := cmp.Diff(want, entryValues(form.ConstructDataSet(nil))); diff != "" {
		t.Errorf("original entries mismatch (-want +got):\n%s", diff)
	}
}

func TestShallowCloneHasNoChildren(t *testing.T) {
	_, form := newForm()
	addInput(form, map[string]string{"name": "q"})
	el := CloneNode(form.Element, false)
	assert.IsType(t, (*HTMLFormElement)(nil), el.Host)
	assert.Empty(t, el.Children)
}
