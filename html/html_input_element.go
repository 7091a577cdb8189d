package html

import (
	"math"
	"strconv"
	"time"

	"github.com/heathj/goforms/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultSize = 20

// HTMLInputElement is an <input>. Its name, disabled state and attributes
// belong to the element; everything that depends on the type attribute is
// delegated to the current InputType, which is rebuilt on every write of
// that attribute.
// https://html.spec.whatwg.org/#htmlinputelement
type HTMLInputElement struct {
	*HTMLElement

	typ InputType

	// checked overrides the checked attribute once set by script or user
	checked *bool

	Indeterminate bool
	Visited       bool
	Active        bool

	customValidity string
}

// NewHTMLInputElement creates a detached <input> owned by doc, which may be
// nil.
func NewHTMLInputElement(doc *dom.Document) *HTMLInputElement {
	return wrapInputElement(dom.NewElement(doc, "input"))
}

func wrapInputElement(el *dom.Element) *HTMLInputElement {
	e := &HTMLInputElement{HTMLElement: &HTMLElement{Element: el}}
	el.Host = e
	el.RegisterAttributeHandler("type", e.typeChanged)
	kind, _ := el.GetAttribute("type")
	e.typ = NewInputType(e, kind)
	return e
}

func (e *HTMLInputElement) typeChanged(value string, present bool) {
	e.rebuildType(value)
}

func (e *HTMLInputElement) rebuildType(kind string) {
	previous := e.typ
	e.typ = NewInputType(e, kind)
	log.WithFields(logrus.Fields{
		"name": e.Name(),
		"from": previous.Name(),
		"to":   e.typ.Name(),
	}).Debug("rebuilt input type")
}

// InputType returns the behavior for the current type attribute. Callers
// reach type specific capabilities with a type assertion, for example
// e.InputType().(*FileInputType).
func (e *HTMLInputElement) InputType() InputType { return e.typ }

// Type returns the type attribute as stored, or "text" when it is missing.
func (e *HTMLInputElement) Type() string {
	if v, ok := e.GetAttribute("type"); ok {
		return v
	}
	return "text"
}

func (e *HTMLInputElement) SetType(v string) { e.SetAttribute("type", v) }
func (e *HTMLInputElement) RemoveType()      { e.RemoveAttribute("type") }

func (e *HTMLInputElement) Name() string      { return e.reflect("name") }
func (e *HTMLInputElement) SetName(v string)  { e.SetAttribute("name", v) }
func (e *HTMLInputElement) Value() string     { return e.reflect("value") }
func (e *HTMLInputElement) SetValue(v string) { e.SetAttribute("value", v) }

func (e *HTMLInputElement) Accept() string             { return e.reflect("accept") }
func (e *HTMLInputElement) SetAccept(v string)         { e.SetAttribute("accept", v) }
func (e *HTMLInputElement) Align() string              { return e.reflect("align") }
func (e *HTMLInputElement) SetAlign(v string)          { e.SetAttribute("align", v) }
func (e *HTMLInputElement) Alt() string                { return e.reflect("alt") }
func (e *HTMLInputElement) SetAlt(v string)            { e.SetAttribute("alt", v) }
func (e *HTMLInputElement) Autocomplete() string       { return e.reflect("autocomplete") }
func (e *HTMLInputElement) SetAutocomplete(v string)   { e.SetAttribute("autocomplete", v) }
func (e *HTMLInputElement) Max() string                { return e.reflect("max") }
func (e *HTMLInputElement) SetMax(v string)            { e.SetAttribute("max", v) }
func (e *HTMLInputElement) Min() string                { return e.reflect("min") }
func (e *HTMLInputElement) SetMin(v string)            { e.SetAttribute("min", v) }
func (e *HTMLInputElement) Pattern() string            { return e.reflect("pattern") }
func (e *HTMLInputElement) SetPattern(v string)        { e.SetAttribute("pattern", v) }
func (e *HTMLInputElement) Placeholder() string        { return e.reflect("placeholder") }
func (e *HTMLInputElement) SetPlaceholder(v string)    { e.SetAttribute("placeholder", v) }
func (e *HTMLInputElement) Src() string                { return e.reflect("src") }
func (e *HTMLInputElement) SetSrc(v string)            { e.SetAttribute("src", v) }
func (e *HTMLInputElement) Step() string               { return e.reflect("step") }
func (e *HTMLInputElement) SetStep(v string)           { e.SetAttribute("step", v) }
func (e *HTMLInputElement) UseMap() string             { return e.reflect("usemap") }
func (e *HTMLInputElement) SetUseMap(v string)         { e.SetAttribute("usemap", v) }
func (e *HTMLInputElement) Autofocus() bool            { return e.HasAttribute("autofocus") }
func (e *HTMLInputElement) SetAutofocus(v bool)        { e.ToggleAttribute("autofocus", v) }
func (e *HTMLInputElement) Disabled() bool             { return e.HasAttribute("disabled") }
func (e *HTMLInputElement) SetDisabled(v bool)         { e.ToggleAttribute("disabled", v) }
func (e *HTMLInputElement) Multiple() bool             { return e.HasAttribute("multiple") }
func (e *HTMLInputElement) SetMultiple(v bool)         { e.ToggleAttribute("multiple", v) }
func (e *HTMLInputElement) ReadOnly() bool             { return e.HasAttribute("readonly") }
func (e *HTMLInputElement) SetReadOnly(v bool)         { e.ToggleAttribute("readonly", v) }
func (e *HTMLInputElement) Required() bool             { return e.HasAttribute("required") }
func (e *HTMLInputElement) SetRequired(v bool)         { e.ToggleAttribute("required", v) }
func (e *HTMLInputElement) DefaultChecked() bool       { return e.HasAttribute("checked") }
func (e *HTMLInputElement) SetDefaultChecked(v bool)   { e.ToggleAttribute("checked", v) }
func (e *HTMLInputElement) Width() int                 { return e.reflectUint("width", 0) }
func (e *HTMLInputElement) SetWidth(v int)             { e.setReflectUint("width", v) }
func (e *HTMLInputElement) Height() int                { return e.reflectUint("height", 0) }
func (e *HTMLInputElement) SetHeight(v int)            { e.setReflectUint("height", v) }
func (e *HTMLInputElement) MaxLength() int             { return e.reflectUint("maxlength", -1) }
func (e *HTMLInputElement) SetMaxLength(v int)         { e.setReflectUint("maxlength", v) }
func (e *HTMLInputElement) MinLength() int             { return e.reflectUint("minlength", -1) }
func (e *HTMLInputElement) SetMinLength(v int)         { e.setReflectUint("minlength", v) }
func (e *HTMLInputElement) SetSize(v int)              { e.setReflectUint("size", v) }
func (e *HTMLInputElement) SetFormNoValidate(v bool)   { e.ToggleAttribute("formnovalidate", v) }
func (e *HTMLInputElement) SetFormAction(v string)     { e.SetAttribute("formaction", v) }
func (e *HTMLInputElement) SetFormEncType(v string)    { e.SetAttribute("formenctype", v) }
func (e *HTMLInputElement) SetFormMethod(v string)     { e.SetAttribute("formmethod", v) }
func (e *HTMLInputElement) SetFormTarget(v string)     { e.SetAttribute("formtarget", v) }
func (e *HTMLInputElement) SetCustomValidity(m string) { e.customValidity = m }

// Size is the size attribute, 20 when missing, unparsable or zero.
func (e *HTMLInputElement) Size() int {
	if n := e.reflectUint("size", defaultSize); n > 0 {
		return n
	}
	return defaultSize
}

// Checked returns the override when one was set, otherwise whether the
// checked attribute is present.
func (e *HTMLInputElement) Checked() bool {
	if e.checked != nil {
		return *e.checked
	}
	return e.DefaultChecked()
}

// SetChecked overrides the checked attribute until the next Reset.
func (e *HTMLInputElement) SetChecked(v bool) {
	e.setCheckedness(v)
	if o, ok := e.typ.(checkedObserver); ok {
		o.checkedChanged(v)
	}
}

func (e *HTMLInputElement) setCheckedness(v bool) {
	e.checked = &v
}

// ValueAsDate interprets the value as a date. false means the type has no
// date form or the value is not a valid one.
func (e *HTMLInputElement) ValueAsDate() (time.Time, bool) {
	return e.typ.ConvertToDate(e.Value())
}

// SetValueAsDate stores t in the type's date format; nil clears the value.
// Types without a date form leave the value unchanged.
func (e *HTMLInputElement) SetValueAsDate(t *time.Time) {
	if t == nil {
		e.SetValue("")
		return
	}
	s, ok := e.typ.ConvertFromDate(*t)
	if !ok {
		log.WithField("type", e.typ.Name()).Debug("valueAsDate not applicable")
		return
	}
	e.SetValue(s)
}

// ValueAsNumber interprets the value as a number, NaN when it is not one.
func (e *HTMLInputElement) ValueAsNumber() float64 {
	n, ok := e.typ.ConvertToNumber(e.Value())
	if !ok {
		return math.NaN()
	}
	return n
}

// SetValueAsNumber stores v in the type's number format. Infinities fail with
// ErrTypeMismatch and leave the value untouched; NaN clears the value.
func (e *HTMLInputElement) SetValueAsNumber(v float64) error {
	if math.IsInf(v, 0) {
		return errors.Wrapf(ErrTypeMismatch, "valueAsNumber cannot be %v", v)
	}
	if math.IsNaN(v) {
		e.SetValue("")
		return nil
	}
	s, ok := e.typ.ConvertFromNumber(v)
	if !ok {
		log.WithField("type", e.typ.Name()).Debug("valueAsNumber not applicable")
		return nil
	}
	e.SetValue(s)
	return nil
}

// StepUp moves the value up by n steps, one when n is omitted.
func (e *HTMLInputElement) StepUp(n ...int) error {
	return e.typ.DoStep(stepCount(n), true)
}

// StepDown moves the value down by n steps, one when n is omitted.
func (e *HTMLInputElement) StepDown(n ...int) error {
	return e.typ.DoStep(stepCount(n), false)
}

func stepCount(n []int) int {
	if len(n) == 0 {
		return 1
	}
	return n[0]
}

// Files returns the selected files of a file input, nil for other types.
func (e *HTMLInputElement) Files() *FileList {
	if f, ok := e.typ.(*FileInputType); ok {
		return f.Files()
	}
	return nil
}

// OriginalWidth is the intrinsic width of an image input's image, 0 for
// other types or before the image is loaded.
func (e *HTMLInputElement) OriginalWidth() int {
	if img, ok := e.typ.(*ImageInputType); ok {
		return img.OriginalWidth()
	}
	return 0
}

// OriginalHeight is the intrinsic height of an image input's image.
func (e *HTMLInputElement) OriginalHeight() int {
	if img, ok := e.typ.(*ImageInputType); ok {
		return img.OriginalHeight()
	}
	return 0
}

// Form returns the form owner: the form named by the form attribute, else
// the nearest form ancestor.
// https://html.spec.whatwg.org/#form-owner
func (e *HTMLInputElement) Form() *HTMLFormElement {
	if id, ok := e.GetAttribute("form"); ok {
		if e.OwnerDocument == nil {
			return nil
		}
		if el := e.OwnerDocument.GetElementByID(id); el != nil {
			if form, ok := el.Host.(*HTMLFormElement); ok {
				return form
			}
		}
		return nil
	}
	for p := e.ParentElement; p != nil; p = p.ParentElement {
		if form, ok := p.Host.(*HTMLFormElement); ok {
			return form
		}
	}
	return nil
}

// List returns the datalist named by the list attribute.
func (e *HTMLInputElement) List() *HTMLDataListElement {
	id, ok := e.GetAttribute("list")
	if !ok || e.OwnerDocument == nil {
		return nil
	}
	el := e.OwnerDocument.GetElementByID(id)
	if el == nil {
		return nil
	}
	list, _ := el.Host.(*HTMLDataListElement)
	return list
}

func (e *HTMLInputElement) FormAction() string {
	return e.formOverride("formaction", func(f *HTMLFormElement) string { return f.Action() })
}

func (e *HTMLInputElement) FormEncType() string {
	return e.formOverride("formenctype", func(f *HTMLFormElement) string { return f.Enctype() })
}

func (e *HTMLInputElement) FormMethod() string {
	return e.formOverride("formmethod", func(f *HTMLFormElement) string { return f.Method() })
}

func (e *HTMLInputElement) FormTarget() string {
	return e.formOverride("formtarget", func(f *HTMLFormElement) string { return f.Target() })
}

func (e *HTMLInputElement) FormNoValidate() bool {
	if e.HasAttribute("formnovalidate") {
		return true
	}
	if form := e.Form(); form != nil {
		return form.NoValidate()
	}
	return false
}

// formOverride reads the input's own form* attribute, else asks the form
// owner, else returns "".
func (e *HTMLInputElement) formOverride(attr string, fromForm func(*HTMLFormElement) string) string {
	if v, ok := e.GetAttribute(attr); ok {
		return v
	}
	if form := e.Form(); form != nil {
		return fromForm(form)
	}
	return ""
}

func (e *HTMLInputElement) charset() string {
	if form := e.Form(); form != nil {
		if cs := form.AcceptCharset(); cs != "" {
			return cs
		}
	}
	if e.OwnerDocument != nil && e.OwnerDocument.CharacterSet != "" {
		return e.OwnerDocument.CharacterSet
	}
	return "UTF-8"
}

// Clone copies the element and its checked override. The copy builds its
// own input type from its copied attributes.
func (e *HTMLInputElement) Clone(deep bool) *HTMLInputElement {
	return CloneNode(e.Element, deep).Host.(*HTMLInputElement)
}

// SaveControlState snapshots name, type and value.
func (e *HTMLInputElement) SaveControlState() FormControlState {
	return NewFormControlState(e.Name(), e.Type(), e.Value())
}

// RestoreFormControlState applies a snapshot taken from an element with the
// same name and type; any other snapshot is ignored.
func (e *HTMLInputElement) RestoreFormControlState(state FormControlState) {
	if state.Type != e.Type() || state.Name != e.Name() {
		log.WithField("name", state.Name).Debug("skipping stale control state")
		return
	}
	e.SetValue(state.Value)
}

// Reset drops the checked override and rebuilds the input type, discarding
// any state it held such as a file selection.
// https://html.spec.whatwg.org/#the-input-element:concept-form-reset-control
func (e *HTMLInputElement) Reset() {
	e.checked = nil
	kind, _ := e.GetAttribute("type")
	e.rebuildType(kind)
}

// ConstructDataSet appends the element's entries to set when its type
// submits data for this submitter.
func (e *HTMLInputElement) ConstructDataSet(set *FormDataSet, submitter *HTMLElement) {
	if e.typ.IsAppendingData(submitter) {
		e.typ.ConstructDataSet(set)
	}
}

// CanBeValidated combines the element rules with the type's own.
// https://html.spec.whatwg.org/#barred-from-constraint-validation
func (e *HTMLInputElement) CanBeValidated() bool {
	return !e.Disabled() && e.Closest("datalist") == nil && e.typ.CanBeValidated()
}

// WillValidate reports whether the element is a candidate for constraint
// validation.
func (e *HTMLInputElement) WillValidate() bool { return e.CanBeValidated() }

// Check fills state with the element level flags, then lets the input type
// refine them.
func (e *HTMLInputElement) Check(state *ValidityState) {
	state.Reset()
	state.Set(CustomError, e.customValidity != "")
	e.typ.Check(state)
}

// Validity returns a fresh ValidityState for the current value.
func (e *HTMLInputElement) Validity() *ValidityState {
	state := &ValidityState{}
	e.Check(state)
	return state
}

// CheckValidity is true when the element is barred from validation or
// satisfies all its constraints.
func (e *HTMLInputElement) CheckValidity() bool {
	return !e.CanBeValidated() || e.Validity().Valid()
}

// ValidationMessage describes the first failing constraint, the custom
// message taking precedence.
func (e *HTMLInputElement) ValidationMessage() string {
	if !e.WillValidate() {
		return ""
	}
	if e.customValidity != "" {
		return e.customValidity
	}
	return e.Validity().message()
}

func (e *HTMLInputElement) String() string {
	return "<input type=" + strconv.Quote(e.Type()) + " name=" + strconv.Quote(e.Name()) + ">"
}
