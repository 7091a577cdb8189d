package dom

import "github.com/heathj/goforms/webidl"

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL             webidl.USVString
	CharacterSet    string
	ContentType     string
	Type            string
	DocumentElement *Element
}

// NewHTMLDocument returns an empty HTML document with an <html> document
// element.
func NewHTMLDocument() *Document {
	d := &Document{
		URL:          "about:blank",
		CharacterSet: "UTF-8",
		ContentType:  "text/html",
		Type:         "html",
	}
	d.DocumentElement = NewElement(d, "html")
	return d
}

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(localName string) *Element {
	return NewElement(d, localName)
}

// GetElementByID returns the first connected element in tree order whose id
// is id.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" || d.DocumentElement == nil {
		return nil
	}
	var found *Element
	d.DocumentElement.Walk(func(e *Element) bool {
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}
