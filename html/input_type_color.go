package html

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const defaultColor = "#000000"

// https://html.spec.whatwg.org/#color-state-(type=color)
type ColorInputType struct {
	baseInputType
}

func newColorInputType(input *HTMLInputElement) *ColorInputType {
	return &ColorInputType{baseInputType: newBaseInputType(input, "color", true)}
}

// parseSimpleColor accepts only #rrggbb.
// https://html.spec.whatwg.org/#valid-simple-colour
func parseSimpleColor(s string) (colorful.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// Color returns the input's value as a color, or black when the value is not
// a valid simple color.
func (t *ColorInputType) Color() colorful.Color {
	c, ok := parseSimpleColor(t.input.Value())
	if !ok {
		c, _ = parseSimpleColor(defaultColor)
	}
	return c
}

// SetColor stores c as a lowercase simple color.
func (t *ColorInputType) SetColor(c colorful.Color) {
	t.input.SetValue(c.Clamped().Hex())
}

func (t *ColorInputType) ConstructDataSet(set *FormDataSet) {
	set.Append(t.input.Name(), t.Color().Hex(), t.name)
}

func (t *ColorInputType) Check(state *ValidityState) {
	value := t.input.Value()
	if value == "" {
		return
	}
	_, ok := parseSimpleColor(value)
	state.Set(BadInput, !ok)
}
