package html

import (
	"mime"
	"path"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// File is one selected file of a file input.
// https://w3c.github.io/FileAPI/#file-section
type File struct {
	Name         string
	Type         string
	Size         int64
	LastModified time.Time
	Data         []byte
}

// NewFile returns a file whose type is derived from the name's extension.
func NewFile(name string, data []byte) *File {
	return &File{
		Name: name,
		Type: mimeTypeOf(name),
		Size: int64(len(data)),
		Data: data,
	}
}

// ReadFile loads the file at p from fs.
func ReadFile(fs afero.Fs, p string) (*File, error) {
	info, err := fs.Stat(p)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", p)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", p)
	}
	data, err := afero.ReadFile(fs, p)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", p)
	}
	return &File{
		Name:         info.Name(),
		Type:         mimeTypeOf(p),
		Size:         info.Size(),
		LastModified: info.ModTime(),
		Data:         data,
	}, nil
}

func mimeTypeOf(name string) string {
	t := mime.TypeByExtension(path.Ext(name))
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return t
}

// https://w3c.github.io/FileAPI/#filelist-section
type FileList struct {
	files []*File
}

func (l *FileList) Length() int {
	if l == nil {
		return 0
	}
	return len(l.files)
}

// Item returns the file at index i or nil when out of range.
func (l *FileList) Item(i int) *File {
	if l == nil || i < 0 || i >= len(l.files) {
		return nil
	}
	return l.files[i]
}

func (l *FileList) Files() []*File {
	if l == nil {
		return nil
	}
	return l.files
}

// acceptsFile matches f against a comma separated accept attribute. An empty
// accept list accepts everything.
// https://html.spec.whatwg.org/#attr-input-accept
func acceptsFile(accept string, f *File) bool {
	var tokens []string
	for _, tok := range strings.Split(accept, ",") {
		if tok = strings.ToLower(strings.TrimSpace(tok)); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return true
	}

	name := strings.ToLower(f.Name)
	typ := strings.ToLower(f.Type)
	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "."):
			if strings.HasSuffix(name, tok) {
				return true
			}
		case strings.HasSuffix(tok, "/*"):
			if strings.HasPrefix(typ, strings.TrimSuffix(tok, "*")) {
				return true
			}
		case tok == typ:
			return true
		}
	}
	return false
}
