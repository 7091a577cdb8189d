package html

import (
	"strconv"

	"github.com/heathj/goforms/dom"
)

// CreateElement creates an element owned by doc and wraps it in the HTML
// interface matching its tag name.
func CreateElement(doc *dom.Document, name string) *dom.Element {
	el := dom.NewElement(doc, name)
	wrapElement(el)
	return el
}

func wrapElement(el *dom.Element) {
	switch dom.ASCIILower(el.LocalName) {
	case "input":
		wrapInputElement(el)
	case "form":
		wrapFormElement(el)
	case "datalist":
		wrapDataListElement(el)
	default:
		e := &HTMLElement{Element: el}
		el.Host = e
	}
}

// CloneNode copies el, and its descendants when deep is set, wrapping every
// copy the way CreateElement does. Inputs keep their checked override and
// indeterminate flag.
func CloneNode(el *dom.Element, deep bool) *dom.Element {
	c := el.CloneNode(false)
	wrapElement(c)
	if src, ok := el.Host.(*HTMLInputElement); ok {
		dst := c.Host.(*HTMLInputElement)
		if src.checked != nil {
			dst.setCheckedness(*src.checked)
		}
		dst.Indeterminate = src.Indeterminate
	}
	if deep {
		for _, child := range el.Children {
			c.AppendChild(CloneNode(child, true))
		}
	}
	return c
}

// https://html.spec.whatwg.org/#htmlelement
type HTMLElement struct {
	*dom.Element
}

func (e *HTMLElement) Title() string         { return e.reflect("title") }
func (e *HTMLElement) SetTitle(v string)     { e.SetAttribute("title", v) }
func (e *HTMLElement) Lang() string          { return e.reflect("lang") }
func (e *HTMLElement) SetLang(v string)      { e.SetAttribute("lang", v) }
func (e *HTMLElement) AccessKey() string     { return e.reflect("accesskey") }
func (e *HTMLElement) Hidden() bool          { return e.HasAttribute("hidden") }
func (e *HTMLElement) SetHidden(v bool)      { e.ToggleAttribute("hidden", v) }
func (e *HTMLElement) SetAccessKey(v string) { e.SetAttribute("accesskey", v) }

func (e *HTMLElement) reflect(name string) string {
	v, _ := e.GetAttribute(name)
	return v
}

// reflectUint reads a non-negative integer attribute, returning def when it
// is missing or does not parse.
func (e *HTMLElement) reflectUint(name string, def int) int {
	v, ok := e.GetAttribute(name)
	if !ok {
		return def
	}
	n, ok := parseNonNegativeInteger(v)
	if !ok {
		return def
	}
	return n
}

func (e *HTMLElement) setReflectUint(name string, v int) {
	if v < 0 {
		v = 0
	}
	e.SetAttribute(name, strconv.Itoa(v))
}
