package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/heathj/goforms/html"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Report is what check prints for one fixture.
type Report struct {
	Action   string          `yaml:"action"`
	Method   string          `yaml:"method"`
	Enctype  string          `yaml:"enctype"`
	Valid    bool            `yaml:"valid"`
	Controls []ControlReport `yaml:"controls"`
	Entries  []EntryReport   `yaml:"entries"`
}

type ControlReport struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Value        string `yaml:"value"`
	WillValidate bool   `yaml:"willValidate"`
	Validity     string `yaml:"validity"`
	Message      string `yaml:"message,omitempty"`
}

type EntryReport struct {
	Name  string      `yaml:"name"`
	Type  string      `yaml:"type"`
	Value string      `yaml:"value,omitempty"`
	File  *FileReport `yaml:"file,omitempty"`
}

type FileReport struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Size int64  `yaml:"size"`
}

// NewReport evaluates every control of form and the data set the submitter
// would send. The submitter's form* attributes override the form's own.
func NewReport(form *html.HTMLFormElement, submitter *html.HTMLElement) *Report {
	r := &Report{
		Action:  form.Action(),
		Method:  form.Method(),
		Enctype: form.Enctype(),
		Valid:   form.CheckValidity(),
	}
	if submitter != nil {
		if input, ok := submitter.Host.(*html.HTMLInputElement); ok {
			r.Action = input.FormAction()
			r.Method = input.FormMethod()
			r.Enctype = input.FormEncType()
		}
	}

	for _, input := range form.Elements() {
		c := ControlReport{
			Name:         input.Name(),
			Type:         input.InputType().Name(),
			Value:        input.Value(),
			WillValidate: input.WillValidate(),
			Message:      input.ValidationMessage(),
		}
		if c.WillValidate {
			c.Validity = input.Validity().Flags().String()
		} else {
			c.Validity = "barred"
		}
		r.Controls = append(r.Controls, c)
	}

	for _, e := range form.ConstructDataSet(submitter).Entries() {
		entry := EntryReport{Name: e.Name, Type: e.Type, Value: e.Value}
		if e.File != nil {
			entry.File = &FileReport{Name: e.File.Name, Type: e.File.Type, Size: e.File.Size}
		}
		r.Entries = append(r.Entries, entry)
	}
	return r
}

func writeReport(w io.Writer, r *Report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "encode report")
		}
		return enc.Close()
	case "text":
		return writeText(w, r)
	}
	return errors.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "form\t%s %s (%s)\tvalid=%t\n", r.Method, r.Action, r.Enctype, r.Valid)

	fmt.Fprintln(tw, "\nCONTROL\tTYPE\tVALUE\tVALIDITY\tMESSAGE")
	for _, c := range r.Controls {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Name, c.Type, c.Value, c.Validity, c.Message)
	}

	fmt.Fprintln(tw, "\nENTRY\tTYPE\tVALUE")
	for _, e := range r.Entries {
		value := e.Value
		if e.File != nil {
			value = fmt.Sprintf("%s (%s, %d bytes)", e.File.Name, e.File.Type, e.File.Size)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Type, value)
	}
	return tw.Flush()
}
