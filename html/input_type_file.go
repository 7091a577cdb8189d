package html

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileInputType keeps the selected files. Nothing is read until the caller
// selects files.
// https://html.spec.whatwg.org/#file-upload-state-(type=file)
type FileInputType struct {
	baseInputType
	files *FileList
}

func newFileInputType(input *HTMLInputElement) *FileInputType {
	return &FileInputType{baseInputType: newBaseInputType(input, "file", true)}
}

// Files returns the current selection, empty until files are selected.
func (t *FileInputType) Files() *FileList {
	if t.files == nil {
		t.files = &FileList{}
	}
	return t.files
}

// Select replaces the selection. Without the multiple attribute only the
// first file is kept.
func (t *FileInputType) Select(files ...*File) {
	if !t.input.Multiple() && len(files) > 1 {
		files = files[:1]
	}
	t.files = &FileList{files: files}
}

// SelectPaths reads the named files from fs and selects them. Files the
// accept attribute rules out are rejected.
func (t *FileInputType) SelectPaths(fs afero.Fs, paths ...string) error {
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := ReadFile(fs, p)
		if err != nil {
			return err
		}
		if !acceptsFile(t.input.Accept(), f) {
			return errors.Errorf("%s does not match accept %q", p, t.input.Accept())
		}
		files = append(files, f)
	}
	t.Select(files...)
	return nil
}

// ConstructDataSet submits one entry per file, or a single empty file entry
// when nothing is selected.
func (t *FileInputType) ConstructDataSet(set *FormDataSet) {
	name := t.input.Name()
	if t.Files().Length() == 0 {
		set.AppendFile(name, &File{Type: "application/octet-stream"}, t.name)
		return
	}
	for _, f := range t.files.files {
		set.AppendFile(name, f, t.name)
	}
}

func (t *FileInputType) Check(state *ValidityState) {
	state.Set(ValueMissing, t.input.Required() && t.Files().Length() == 0)
}
