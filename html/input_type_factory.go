package html

import (
	"sort"

	"github.com/heathj/goforms/dom"
)

type inputTypeCreator func(input *HTMLInputElement) InputType

var inputTypes = map[string]inputTypeCreator{
	"text":           func(i *HTMLInputElement) InputType { return newTextInputType(i, "text") },
	"search":         func(i *HTMLInputElement) InputType { return newTextInputType(i, "search") },
	"tel":            func(i *HTMLInputElement) InputType { return newTextInputType(i, "tel") },
	"password":       func(i *HTMLInputElement) InputType { return newTextInputType(i, "password") },
	"url":            func(i *HTMLInputElement) InputType { return newURLInputType(i) },
	"email":          func(i *HTMLInputElement) InputType { return newEmailInputType(i) },
	"hidden":         func(i *HTMLInputElement) InputType { return newHiddenInputType(i) },
	"checkbox":       func(i *HTMLInputElement) InputType { return newCheckboxInputType(i) },
	"radio":          func(i *HTMLInputElement) InputType { return newRadioInputType(i) },
	"button":         func(i *HTMLInputElement) InputType { return newButtonInputType(i, "button") },
	"reset":          func(i *HTMLInputElement) InputType { return newButtonInputType(i, "reset") },
	"submit":         func(i *HTMLInputElement) InputType { return newSubmitInputType(i) },
	"image":          func(i *HTMLInputElement) InputType { return newImageInputType(i) },
	"file":           func(i *HTMLInputElement) InputType { return newFileInputType(i) },
	"number":         func(i *HTMLInputElement) InputType { return newNumberInputType(i) },
	"range":          func(i *HTMLInputElement) InputType { return newRangeInputType(i) },
	"date":           func(i *HTMLInputElement) InputType { return newDateInputType(i, "date") },
	"month":          func(i *HTMLInputElement) InputType { return newDateInputType(i, "month") },
	"week":           func(i *HTMLInputElement) InputType { return newDateInputType(i, "week") },
	"time":           func(i *HTMLInputElement) InputType { return newDateInputType(i, "time") },
	"datetime-local": func(i *HTMLInputElement) InputType { return newDateInputType(i, "datetime-local") },
	"color":          func(i *HTMLInputElement) InputType { return newColorInputType(i) },
}

// NewInputType builds a fresh behavior for the given type attribute value.
// Keywords match ASCII case-insensitively; a missing, empty or unknown value
// yields the text type.
// https://html.spec.whatwg.org/#attr-input-type
func NewInputType(input *HTMLInputElement, kind string) InputType {
	if create, ok := inputTypes[dom.ASCIILower(kind)]; ok {
		return create(input)
	}
	return newTextInputType(input, "text")
}

// InputTypeNames returns every recognized type keyword, sorted.
func InputTypeNames() []string {
	names := make([]string, 0, len(inputTypes))
	for name := range inputTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
