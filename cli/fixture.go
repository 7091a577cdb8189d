package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/heathj/goforms/dom"
	"github.com/heathj/goforms/html"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Fixture describes a form: the form's attributes and its input controls
// in tree order.
type Fixture struct {
	Form   map[string]string `yaml:"form"`
	Inputs []InputFixture    `yaml:"inputs"`
}

// InputFixture is one <input>: its attributes plus what script or the user
// did to it after parsing.
type InputFixture struct {
	Attrs          map[string]string `yaml:"attrs"`
	Checked        *bool             `yaml:"checked"`
	ValueAsNumber  *float64          `yaml:"valueAsNumber"`
	ValueAsDate    *time.Time        `yaml:"valueAsDate"`
	StepUp         int               `yaml:"stepUp"`
	StepDown       int               `yaml:"stepDown"`
	Files          []string          `yaml:"files"`
	Coordinate     []int             `yaml:"coordinate"`
	CustomValidity string            `yaml:"customValidity"`
	Submitter      bool              `yaml:"submitter"`
}

// LoadFixture reads and decodes the YAML fixture at path. Unknown keys are
// rejected.
func LoadFixture(fs afero.Fs, path string) (*Fixture, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "read fixture %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if err == io.EOF {
			return nil, errors.Errorf("fixture %s is empty", path)
		}
		return nil, errors.Wrapf(err, "decode fixture %s", path)
	}
	return &fx, nil
}

// fixtureAssets serves the files a fixture refers to, resolved against the
// fixture's directory and read only.
func fixtureAssets(fs afero.Fs, fixturePath string) (afero.Fs, error) {
	dir, err := filepath.Abs(filepath.Dir(fixturePath))
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", fixturePath)
	}
	return afero.NewReadOnlyFs(afero.NewBasePathFs(fs, dir)), nil
}

// Build creates the form in a fresh document and replays every input's
// actions. It returns the form and the submitter, nil when no input is
// marked as one.
func (fx *Fixture) Build(assets afero.Fs) (*html.HTMLFormElement, *html.HTMLElement, error) {
	doc := dom.NewHTMLDocument()
	form := html.NewHTMLFormElement(doc)
	setAttributes(form.Element, fx.Form)
	doc.DocumentElement.AppendChild(form.Element)

	var submitter *html.HTMLElement
	for i, in := range fx.Inputs {
		input := html.NewHTMLInputElement(doc)
		setAttributes(input.Element, in.Attrs)
		form.AppendChild(input.Element)

		if err := in.apply(input, assets); err != nil {
			return nil, nil, errors.Wrapf(err, "input %d (%s)", i, input)
		}
		if in.Submitter {
			if submitter != nil {
				return nil, nil, errors.Errorf("input %d: more than one submitter", i)
			}
			submitter = input.HTMLElement
		}
	}
	return form, submitter, nil
}

// setAttributes writes attrs in name order so that fixtures replay the same
// way on every run.
func setAttributes(el *dom.Element, attrs map[string]string) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		el.SetAttribute(name, attrs[name])
	}
}

func (in *InputFixture) apply(input *html.HTMLInputElement, assets afero.Fs) error {
	if in.Checked != nil {
		input.SetChecked(*in.Checked)
	}
	if in.ValueAsDate != nil {
		input.SetValueAsDate(in.ValueAsDate)
	}
	if in.ValueAsNumber != nil {
		if err := input.SetValueAsNumber(*in.ValueAsNumber); err != nil {
			return err
		}
	}
	if in.StepUp != 0 {
		if err := input.StepUp(in.StepUp); err != nil {
			return err
		}
	}
	if in.StepDown != 0 {
		if err := input.StepDown(in.StepDown); err != nil {
			return err
		}
	}

	if len(in.Files) > 0 {
		ft, ok := input.InputType().(*html.FileInputType)
		if !ok {
			return errors.Errorf("files given for a %s input", input.InputType().Name())
		}
		if err := ft.SelectPaths(assets, in.Files...); err != nil {
			return err
		}
	}

	it, isImage := input.InputType().(*html.ImageInputType)
	if isImage && input.Src() != "" {
		if err := it.LoadSource(assets); err != nil {
			return err
		}
	}
	switch {
	case len(in.Coordinate) == 0:
	case !isImage:
		return errors.Errorf("coordinate given for a %s input", input.InputType().Name())
	case len(in.Coordinate) != 2:
		return errors.Errorf("coordinate needs x and y, got %v", in.Coordinate)
	default:
		it.SetSelectedCoordinate(in.Coordinate[0], in.Coordinate[1])
	}

	if in.CustomValidity != "" {
		input.SetCustomValidity(in.CustomValidity)
	}
	return nil
}
