package html

import (
	"sort"

	"github.com/heathj/goforms/dom"
)

// newInput creates an input with the given attributes, written in sorted
// order so that "type" handling is deterministic.
func newInput(attrs map[string]string) *HTMLInputElement {
	return newInputIn(nil, attrs)
}

func newInputIn(doc *dom.Document, attrs map[string]string) *HTMLInputElement {
	e := NewHTMLInputElement(doc)
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		e.SetAttribute(k, attrs[k])
	}
	return e
}

// newForm returns a form connected to a fresh document.
func newForm() (*dom.Document, *HTMLFormElement) {
	doc := dom.NewHTMLDocument()
	form := NewHTMLFormElement(doc)
	doc.DocumentElement.AppendChild(form.Element)
	return doc, form
}

func addInput(form *HTMLFormElement, attrs map[string]string) *HTMLInputElement {
	e := newInputIn(form.OwnerDocument, attrs)
	form.AppendChild(e.Element)
	return e
}

// newDocumentWithList returns a document holding <datalist id=colors>.
func newDocumentWithList() *dom.Document {
	doc := dom.NewHTMLDocument()
	list := NewHTMLDataListElement(doc)
	list.SetAttribute("id", "colors")
	red := doc.CreateElement("option")
	red.SetAttribute("value", "red")
	blue := doc.CreateElement("option")
	blue.SetAttribute("label", "Blue")
	list.AppendChild(red)
	list.AppendChild(blue)
	list.AppendChild(doc.CreateElement("span"))
	doc.DocumentElement.AppendChild(list.Element)
	return doc
}
