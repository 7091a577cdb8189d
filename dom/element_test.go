package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attributeWrite struct {
	value   string
	present bool
}

func TestAttributeHandlerRunsOncePerWrite(t *testing.T) {
	e := NewElement(nil, "input")
	var writes []attributeWrite
	e.RegisterAttributeHandler("type", func(value string, present bool) {
		writes = append(writes, attributeWrite{value, present})
	})

	e.SetAttribute("type", "number")
	require.Len(t, writes, 1, "handler must run before SetAttribute returns")
	e.SetAttribute("TYPE", "number")
	e.RemoveAttribute("type")
	e.RemoveAttribute("type")
	e.SetAttribute("name", "qty")

	assert.Equal(t, []attributeWrite{
		{"number", true},
		{"number", true},
		{"", false},
	}, writes)
}

func TestAttributeNamesAreCaseInsensitive(t *testing.T) {
	e := NewElement(nil, "INPUT")
	assert.Equal(t, "input", e.LocalName)

	e.SetAttribute("MaxLength", "4")
	v, ok := e.GetAttribute("maxlength")
	assert.True(t, ok)
	assert.Equal(t, "4", v)
	assert.Equal(t, []string{"maxlength"}, e.GetAttributeNames())

	_, ok = e.GetAttribute("minlength")
	assert.False(t, ok)
}

func TestToggleAttribute(t *testing.T) {
	e := NewElement(nil, "input")
	assert.True(t, e.ToggleAttribute("required"))
	assert.True(t, e.HasAttribute("required"))
	assert.False(t, e.ToggleAttribute("required"))
	assert.False(t, e.HasAttribute("required"))
	assert.True(t, e.ToggleAttribute("required", true))
	assert.True(t, e.ToggleAttribute("required", true))
	assert.True(t, e.HasAttribute("required"))
}

func TestCloneNodeIsIndependent(t *testing.T) {
	doc := NewHTMLDocument()
	e := doc.CreateElement("div")
	e.SetAttribute("id", "a")
	e.AppendChild(doc.CreateElement("span"))

	calls := 0
	e.RegisterAttributeHandler("id", func(string, bool) { calls++ })

	shallow := e.CloneNode(false)
	assert.Empty(t, shallow.Children)
	assert.Equal(t, "a", shallow.ID())
	assert.Same(t, doc, shallow.OwnerDocument)

	deep := e.CloneNode(true)
	require.Len(t, deep.Children, 1)
	assert.Equal(t, "span", deep.Children[0].LocalName)
	assert.Same(t, deep, deep.Children[0].ParentElement)

	deep.SetAttribute("id", "b")
	assert.Equal(t, "a", e.ID())
	assert.Zero(t, calls, "handlers are not copied")
}

func TestTreeOperations(t *testing.T) {
	doc := NewHTMLDocument()
	form := doc.DocumentElement.AppendChild(doc.CreateElement("form"))
	list := form.AppendChild(doc.CreateElement("datalist"))
	opt := list.AppendChild(doc.CreateElement("option"))
	opt.SetAttribute("id", "opt")

	assert.Same(t, opt, doc.GetElementByID("opt"))
	assert.Nil(t, doc.GetElementByID("missing"))
	assert.Nil(t, doc.GetElementByID(""))
	assert.Same(t, doc.DocumentElement, opt.Root())
	assert.Same(t, list, opt.Closest("DATALIST"))
	assert.Nil(t, opt.Closest("table"))

	form.RemoveChild(list)
	assert.Nil(t, list.ParentElement)
	assert.Nil(t, doc.GetElementByID("opt"))
	assert.Same(t, list, opt.Root())
}

func TestAppendChildMovesNode(t *testing.T) {
	a := NewElement(nil, "div")
	b := NewElement(nil, "div")
	c := a.AppendChild(NewElement(nil, "span"))
	b.AppendChild(c)
	assert.Empty(t, a.Children)
	assert.Equal(t, []*Element{c}, b.Children)
}

func TestASCIILower(t *testing.T) {
	tests := []struct{ in, out string }{
		{"text", "text"},
		{"DateTime-Local", "datetime-local"},
		{"chec\u212Abox", "chec\u212Abox"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.out, ASCIILower(tt.in))
		})
	}
}
