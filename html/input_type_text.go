package html

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// valid e-mail address
// https://html.spec.whatwg.org/#valid-e-mail-address
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

const patternMatchTimeout = time.Second

// TextInputType serves text, search, tel and password inputs.
type TextInputType struct {
	baseInputType
}

func newTextInputType(input *HTMLInputElement, name string) *TextInputType {
	return &TextInputType{baseInputType: newBaseInputType(input, name, true)}
}

func (t *TextInputType) CanBeValidated() bool {
	return !t.input.ReadOnly()
}

func (t *TextInputType) Check(state *ValidityState) {
	checkText(t.input, state, t.input.Value())
}

// checkText applies required, maxlength, minlength and pattern to the given
// values. A single empty value is treated as missing.
func checkText(input *HTMLInputElement, state *ValidityState, values ...string) {
	if len(values) == 0 || (len(values) == 1 && values[0] == "") {
		state.Set(ValueMissing, input.Required())
		return
	}

	value := input.Value()
	n := utf16Length(value)
	if maxLen := input.MaxLength(); maxLen >= 0 && n > maxLen {
		state.Set(TooLong, true)
	}
	if minLen := input.MinLength(); minLen > 0 && n < minLen {
		state.Set(TooShort, true)
	}

	if pattern, ok := input.GetAttribute("pattern"); ok && !matchesPattern(pattern, values) {
		state.Set(PatternMismatch, true)
	}
}

// matchesPattern reports whether every value matches the ECMAScript pattern
// anchored at both ends. A pattern that does not compile matches anything.
// https://html.spec.whatwg.org/#compiled-pattern-regular-expression
func matchesPattern(pattern string, values []string) bool {
	re, err := regexp2.Compile("^(?:"+pattern+")$", regexp2.ECMAScript)
	if err != nil {
		log.WithField("pattern", pattern).Debugf("ignoring invalid pattern: %v", err)
		return true
	}
	re.MatchTimeout = patternMatchTimeout
	for _, v := range values {
		ok, err := re.MatchString(v)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// https://html.spec.whatwg.org/#email-state-(type=email)
type EmailInputType struct {
	TextInputType
}

func newEmailInputType(input *HTMLInputElement) *EmailInputType {
	return &EmailInputType{TextInputType: *newTextInputType(input, "email")}
}

// addresses splits the value into its addresses; only inputs with the
// multiple attribute hold more than one.
func (t *EmailInputType) addresses() []string {
	value := strings.TrimSpace(t.input.Value())
	if !t.input.Multiple() {
		return []string{value}
	}
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (t *EmailInputType) Check(state *ValidityState) {
	addrs := t.addresses()
	checkText(t.input, state, addrs...)
	if len(addrs) == 0 || (len(addrs) == 1 && addrs[0] == "") {
		return
	}
	for _, addr := range addrs {
		if !emailPattern.MatchString(addr) {
			state.Set(TypeMismatch, true)
			return
		}
	}
}

// https://html.spec.whatwg.org/#url-state-(type=url)
type URLInputType struct {
	TextInputType
}

func newURLInputType(input *HTMLInputElement) *URLInputType {
	return &URLInputType{TextInputType: *newTextInputType(input, "url")}
}

func (t *URLInputType) Check(state *ValidityState) {
	value := strings.TrimSpace(t.input.Value())
	checkText(t.input, state, value)
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	state.Set(TypeMismatch, err != nil || !u.IsAbs())
}
