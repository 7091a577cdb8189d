package dom

import "github.com/heathj/goforms/webidl"

// Element is an individual element of a document tree.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI  Namespace
	Prefix        string
	LocalName     string
	Attributes    *NamedNodeMap
	OwnerDocument *Document
	ParentElement *Element
	Children      []*Element

	// Host is the interface object (for example an HTML input) that wraps
	// this element, if any.
	Host any
}

// NewElement returns a detached element owned by od. od may be nil.
func NewElement(od *Document, name string) *Element {
	e := &Element{
		NamespaceURI:  Htmlns,
		LocalName:     ASCIILower(name),
		OwnerDocument: od,
	}
	e.Attributes = NewNamedNodeMap(map[string]string{}, e)
	return e
}

func (e *Element) HasAttributes() bool         { return e.Attributes.Length() != 0 }
func (e *Element) GetAttributeNames() []string { return e.Attributes.Names() }

// GetAttribute returns the value of the named attribute and whether it is set.
func (e *Element) GetAttribute(qualifiedName string) (string, bool) {
	attr := e.Attributes.GetNamedItem(webidl.DOMString(qualifiedName))
	if attr == nil {
		return "", false
	}
	return string(attr.Value), true
}

func (e *Element) HasAttribute(qualifiedName string) bool {
	return e.Attributes.GetNamedItem(webidl.DOMString(qualifiedName)) != nil
}

// SetAttribute writes the attribute and notifies its handlers before
// returning, even when the value is unchanged.
func (e *Element) SetAttribute(qualifiedName, value string) {
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value, e))
}

func (e *Element) RemoveAttribute(qualifiedName string) {
	e.Attributes.RemoveNamedItem(webidl.DOMString(qualifiedName))
}

// https://dom.spec.whatwg.org/#dom-element-toggleattribute
func (e *Element) ToggleAttribute(qualifiedName string, force ...bool) bool {
	has := e.HasAttribute(qualifiedName)
	want := !has
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !has:
		e.SetAttribute(qualifiedName, "")
	case !want && has:
		e.RemoveAttribute(qualifiedName)
	}
	return want
}

// RegisterAttributeHandler subscribes h to writes of the named attribute.
func (e *Element) RegisterAttributeHandler(qualifiedName string, h AttributeHandler) {
	e.Attributes.register(webidl.DOMString(qualifiedName), h)
}

func (e *Element) ID() string {
	id, _ := e.GetAttribute("id")
	return id
}

func (e *Element) AppendChild(child *Element) *Element {
	if child.ParentElement != nil {
		child.ParentElement.RemoveChild(child)
	}
	child.ParentElement = e
	if child.OwnerDocument == nil {
		child.OwnerDocument = e.OwnerDocument
	}
	e.Children = append(e.Children, child)
	return child
}

func (e *Element) RemoveChild(child *Element) *Element {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.ParentElement = nil
			return child
		}
	}
	return nil
}

// Root returns the topmost ancestor of e, or e itself.
func (e *Element) Root() *Element {
	var prev *Element
	for i := e; i != nil; i = i.ParentElement {
		prev = i
	}
	return prev
}

// Walk visits e and its descendants in tree order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Closest returns the nearest inclusive ancestor with the given local name.
func (e *Element) Closest(localName string) *Element {
	localName = ASCIILower(localName)
	for i := e; i != nil; i = i.ParentElement {
		if i.LocalName == localName {
			return i
		}
	}
	return nil
}

// CloneNode copies the element and its attributes. Attribute handlers and
// the Host are not copied, for the copy or any deep-copied descendant; use
// html.CloneNode to get a wrapped subtree.
func (e *Element) CloneNode(deep bool) *Element {
	c := NewElement(e.OwnerDocument, e.LocalName)
	c.NamespaceURI = e.NamespaceURI
	c.Prefix = e.Prefix
	for k, v := range e.Attributes.Attrs {
		attr := NewAttr(string(k), string(v.Value), c)
		attr.Namespace = v.Namespace
		attr.Prefix = v.Prefix
		c.Attributes.Attrs[k] = attr
	}

	if deep {
		for _, child := range e.Children {
			c.AppendChild(child.CloneNode(true))
		}
	}
	return c
}
