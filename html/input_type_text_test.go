package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type textValidityTestcase struct {
	name  string
	attrs map[string]string
	want  ValidityFlag
}

var textValidityTests = []textValidityTestcase{
	{"empty", map[string]string{}, 0},
	{"required empty", map[string]string{"required": ""}, ValueMissing},
	{"required filled", map[string]string{"required": "", "value": "x"}, 0},
	{"too long", map[string]string{"maxlength": "3", "value": "abcd"}, TooLong},
	{"at max length", map[string]string{"maxlength": "3", "value": "abc"}, 0},
	{"utf-16 length", map[string]string{"maxlength": "3", "value": "\U0001F600\U0001F600"}, TooLong},
	{"too short", map[string]string{"minlength": "3", "value": "ab"}, TooShort},
	{"empty ignores minlength", map[string]string{"minlength": "3"}, 0},
	{"invalid maxlength ignored", map[string]string{"maxlength": "-1", "value": "abcd"}, 0},
	{"pattern match", map[string]string{"pattern": "[a-z]+", "value": "abc"}, 0},
	{"pattern mismatch", map[string]string{"pattern": "[a-z]+", "value": "abc1"}, PatternMismatch},
	{"pattern is anchored", map[string]string{"pattern": "a|b", "value": "ab"}, PatternMismatch},
	{"pattern escapes", map[string]string{"pattern": `\d{3}`, "value": "123"}, 0},
	{"invalid pattern ignored", map[string]string{"pattern": "(", "value": "abc"}, 0},
	{"empty value skips pattern", map[string]string{"pattern": "[a-z]+"}, 0},
	{"search", map[string]string{"type": "search", "required": ""}, ValueMissing},
	{"tel", map[string]string{"type": "tel", "pattern": "[0-9-]+", "value": "555-0100"}, 0},
	{"password", map[string]string{"type": "password", "minlength": "8", "value": "hunter2"}, TooShort},
}

func TestTextValidity(t *testing.T) {
	for _, tt := range textValidityTests {
		t.Run(tt.name, func(t *testing.T) {
			e := newInput(tt.attrs)
			got := e.Validity().Flags()
			assert.Equal(t, tt.want, got, "got %s", got)
			assert.Equal(t, tt.want == 0, e.CheckValidity())
		})
	}
}

func TestEmailValidity(t *testing.T) {
	tests := []textValidityTestcase{
		{"valid", map[string]string{"value": "user@example.com"}, 0},
		{"trimmed", map[string]string{"value": "  user@example.com "}, 0},
		{"no at", map[string]string{"value": "example.com"}, TypeMismatch},
		{"bad domain", map[string]string{"value": "user@-example.com"}, TypeMismatch},
		{"single with comma", map[string]string{"value": "a@b.c,d@e.f"}, TypeMismatch},
		{"multiple", map[string]string{"multiple": "", "value": "a@b.c, d@e.f"}, 0},
		{"multiple with bad", map[string]string{"multiple": "", "value": "a@b.c,bad"}, TypeMismatch},
		{"multiple required empty", map[string]string{"multiple": "", "required": ""}, ValueMissing},
		{"multiple pattern per address", map[string]string{"multiple": "", "pattern": ".*@b\\.c", "value": "a@b.c,x@y.z"}, PatternMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := map[string]string{"type": "email"}
			for k, v := range tt.attrs {
				attrs[k] = v
			}
			got := newInput(attrs).Validity().Flags()
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestURLValidity(t *testing.T) {
	tests := []textValidityTestcase{
		{"absolute", map[string]string{"value": "https://example.com/a?b#c"}, 0},
		{"custom scheme", map[string]string{"value": "mailto:user@example.com"}, 0},
		{"relative", map[string]string{"value": "example.com/path"}, TypeMismatch},
		{"unparsable", map[string]string{"value": "http://[::1"}, TypeMismatch},
		{"required", map[string]string{"required": ""}, ValueMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := map[string]string{"type": "url"}
			for k, v := range tt.attrs {
				attrs[k] = v
			}
			got := newInput(attrs).Validity().Flags()
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestReadOnlyTextIsBarred(t *testing.T) {
	e := newInput(map[string]string{"readonly": "", "required": ""})
	assert.False(t, e.WillValidate())
	assert.True(t, e.CheckValidity())
	assert.Equal(t, "", e.ValidationMessage())
}

func TestValidationMessage(t *testing.T) {
	e := newInput(map[string]string{"required": ""})
	assert.Equal(t, "Please fill out this field.", e.ValidationMessage())

	e.SetCustomValidity("pick a name")
	assert.Equal(t, "pick a name", e.ValidationMessage())
	assert.True(t, e.Validity().Has(CustomError))
	assert.True(t, e.Validity().Has(ValueMissing))

	e.SetCustomValidity("")
	e.SetValue("bob")
	assert.Equal(t, "", e.ValidationMessage())
	assert.True(t, e.CheckValidity())

	e.SetDisabled(true)
	e.SetCustomValidity("ignored")
	assert.Equal(t, "", e.ValidationMessage())
	assert.True(t, e.CheckValidity())
}
