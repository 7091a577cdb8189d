package dom

import "github.com/heathj/goforms/webidl"

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
	Value        webidl.DOMString
	OwnerElement *Element
}

func NewAttr(name, value string, oe *Element) *Attr {
	return &Attr{
		Namespace:    Htmlns,
		LocalName:    webidl.DOMString(name),
		Value:        webidl.DOMString(value),
		OwnerElement: oe,
	}
}
