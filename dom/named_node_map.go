package dom

import (
	"sort"

	"github.com/heathj/goforms/webidl"
)

// AttributeHandler is called synchronously after an attribute is written or
// removed. present is false when the attribute was removed.
type AttributeHandler func(value string, present bool)

func NewNamedNodeMap(attrs map[string]string, oe *Element) *NamedNodeMap {
	a := make(map[webidl.DOMString]*Attr, len(attrs))
	for k, v := range attrs {
		name := webidl.DOMString(ASCIILower(k))
		a[name] = NewAttr(string(name), v, oe)
	}
	return &NamedNodeMap{
		Attrs:             a,
		AssociatedElement: oe,
		handlers:          map[webidl.DOMString][]AttributeHandler{},
	}
}

// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Attrs             map[webidl.DOMString]*Attr
	AssociatedElement *Element

	handlers map[webidl.DOMString][]AttributeHandler
}

func (n *NamedNodeMap) Length() int { return len(n.Attrs) }

func (n *NamedNodeMap) GetNamedItem(qn webidl.DOMString) *Attr {
	return n.getAttributeByName(qn)
}

// attribute names on HTML elements are matched lowercase
func (n *NamedNodeMap) getAttributeByName(qn webidl.DOMString) *Attr {
	if v, ok := n.Attrs[webidl.DOMString(ASCIILower(string(qn)))]; ok {
		return v
	}

	return nil
}

// SetNamedItem stores s, replacing any attribute with the same local name, and
// returns the replaced attribute.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement
	s.LocalName = webidl.DOMString(ASCIILower(string(s.LocalName)))

	oldAttr := n.Attrs[s.LocalName]
	n.Attrs[s.LocalName] = s
	n.changed(s.LocalName, string(s.Value), true)
	return oldAttr
}

func (n *NamedNodeMap) RemoveNamedItem(qn webidl.DOMString) *Attr {
	qn = webidl.DOMString(ASCIILower(string(qn)))
	oldAttr, ok := n.Attrs[qn]
	if !ok {
		return nil
	}
	delete(n.Attrs, qn)
	n.changed(qn, "", false)
	return oldAttr
}

// Names returns the attribute names in sorted order.
func (n *NamedNodeMap) Names() []string {
	keys := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		keys = append(keys, string(name))
	}
	sort.Strings(keys)
	return keys
}

func (n *NamedNodeMap) register(qn webidl.DOMString, h AttributeHandler) {
	qn = webidl.DOMString(ASCIILower(string(qn)))
	n.handlers[qn] = append(n.handlers[qn], h)
}

func (n *NamedNodeMap) changed(qn webidl.DOMString, value string, present bool) {
	for _, h := range n.handlers[qn] {
		h(value, present)
	}
}

// ASCIILower lowercases ASCII letters only.
func ASCIILower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
