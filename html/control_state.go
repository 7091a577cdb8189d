package html

// FormControlState is the persisted state of an input used by session
// history and form restoration. Restoring only applies when both Name and
// Type match the element.
type FormControlState struct {
	Name  string
	Type  string
	Value string
}

func NewFormControlState(name, typ, value string) FormControlState {
	return FormControlState{Name: name, Type: typ, Value: value}
}
