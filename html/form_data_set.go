package html

// https://html.spec.whatwg.org/#form-entry-list
type FormDataEntry struct {
	Name  string
	Type  string
	Value string
	File  *File
}

// FormDataSet is the list of entries a form submits.
type FormDataSet struct {
	entries []FormDataEntry
}

func NewFormDataSet() *FormDataSet {
	return &FormDataSet{}
}

func (s *FormDataSet) Append(name, value, typ string) {
	s.entries = append(s.entries, FormDataEntry{Name: name, Type: typ, Value: value})
}

func (s *FormDataSet) AppendFile(name string, f *File, typ string) {
	s.entries = append(s.entries, FormDataEntry{Name: name, Type: typ, File: f})
}

func (s *FormDataSet) Entries() []FormDataEntry {
	return s.entries
}

func (s *FormDataSet) Len() int {
	return len(s.entries)
}

// Get returns the value of the first entry named name.
func (s *FormDataSet) Get(name string) (string, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			if e.File != nil {
				return e.File.Name, true
			}
			return e.Value, true
		}
	}
	return "", false
}
