package html

import (
	"strings"

	"github.com/heathj/goforms/dom"
)

// https://html.spec.whatwg.org/#htmlformelement
type HTMLFormElement struct {
	*HTMLElement
}

func NewHTMLFormElement(doc *dom.Document) *HTMLFormElement {
	return wrapFormElement(dom.NewElement(doc, "form"))
}

func wrapFormElement(el *dom.Element) *HTMLFormElement {
	f := &HTMLFormElement{HTMLElement: &HTMLElement{Element: el}}
	el.Host = f
	return f
}

func (f *HTMLFormElement) Action() string            { return f.reflect("action") }
func (f *HTMLFormElement) SetAction(v string)        { f.SetAttribute("action", v) }
func (f *HTMLFormElement) Target() string            { return f.reflect("target") }
func (f *HTMLFormElement) SetTarget(v string)        { f.SetAttribute("target", v) }
func (f *HTMLFormElement) AcceptCharset() string     { return f.reflect("accept-charset") }
func (f *HTMLFormElement) SetAcceptCharset(v string) { f.SetAttribute("accept-charset", v) }
func (f *HTMLFormElement) NoValidate() bool          { return f.HasAttribute("novalidate") }
func (f *HTMLFormElement) SetNoValidate(v bool)      { f.ToggleAttribute("novalidate", v) }
func (f *HTMLFormElement) SetEnctype(v string)       { f.SetAttribute("enctype", v) }
func (f *HTMLFormElement) SetMethod(v string)        { f.SetAttribute("method", v) }

// Enctype is limited to the known encodings, defaulting to urlencoded.
// https://html.spec.whatwg.org/#attr-fs-enctype
func (f *HTMLFormElement) Enctype() string {
	switch v := strings.ToLower(f.reflect("enctype")); v {
	case "multipart/form-data", "text/plain":
		return v
	}
	return "application/x-www-form-urlencoded"
}

// https://html.spec.whatwg.org/#attr-fs-method
func (f *HTMLFormElement) Method() string {
	switch v := strings.ToLower(f.reflect("method")); v {
	case "post", "dialog":
		return v
	}
	return "get"
}

// Elements returns the inputs whose form owner is f, in tree order.
func (f *HTMLFormElement) Elements() []*HTMLInputElement {
	var inputs []*HTMLInputElement
	f.Root().Walk(func(el *dom.Element) bool {
		if input, ok := el.Host.(*HTMLInputElement); ok && input.Form() == f {
			inputs = append(inputs, input)
		}
		return true
	})
	return inputs
}

// ConstructDataSet builds the entry list submitted by submitter, which may
// be nil. Disabled controls and controls inside a datalist are skipped.
// https://html.spec.whatwg.org/#constructing-the-form-data-set
func (f *HTMLFormElement) ConstructDataSet(submitter *HTMLElement) *FormDataSet {
	set := NewFormDataSet()
	for _, input := range f.Elements() {
		if input.Disabled() || input.Closest("datalist") != nil {
			continue
		}
		input.ConstructDataSet(set, submitter)
	}
	return set
}

// CheckValidity is true when every candidate control is valid.
func (f *HTMLFormElement) CheckValidity() bool {
	valid := true
	for _, input := range f.Elements() {
		if !input.CheckValidity() {
			valid = false
		}
	}
	return valid
}

// Reset resets every control owned by f.
func (f *HTMLFormElement) Reset() {
	for _, input := range f.Elements() {
		input.Reset()
	}
}

// https://html.spec.whatwg.org/#htmldatalistelement
type HTMLDataListElement struct {
	*HTMLElement
}

func NewHTMLDataListElement(doc *dom.Document) *HTMLDataListElement {
	return wrapDataListElement(dom.NewElement(doc, "datalist"))
}

func wrapDataListElement(el *dom.Element) *HTMLDataListElement {
	d := &HTMLDataListElement{HTMLElement: &HTMLElement{Element: el}}
	el.Host = d
	return d
}

// Options returns the value of each <option> child, falling back to its
// label attribute.
func (d *HTMLDataListElement) Options() []string {
	var options []string
	for _, child := range d.Children {
		if child.LocalName != "option" {
			continue
		}
		v, ok := child.GetAttribute("value")
		if !ok {
			v, _ = child.GetAttribute("label")
		}
		options = append(options, v)
	}
	return options
}
