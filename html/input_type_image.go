package html

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageInputType is a graphical submit button. Its intrinsic size is known
// once the image referenced by src has been loaded.
// https://html.spec.whatwg.org/#image-button-state-(type=image)
type ImageInputType struct {
	baseInputType
	width, height int
	format        string
	x, y          int
}

func newImageInputType(input *HTMLInputElement) *ImageInputType {
	return &ImageInputType{baseInputType: newBaseInputType(input, "image", true)}
}

func (t *ImageInputType) OriginalWidth() int  { return t.width }
func (t *ImageInputType) OriginalHeight() int { return t.height }
func (t *ImageInputType) Format() string      { return t.format }

// Load decodes the image header from r to learn its intrinsic size.
func (t *ImageInputType) Load(r io.Reader) error {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return errors.Wrap(err, "decode image")
	}
	t.width, t.height, t.format = cfg.Width, cfg.Height, format
	log.WithField("src", t.input.Src()).Debugf("loaded %s image %dx%d", format, cfg.Width, cfg.Height)
	return nil
}

// LoadSource opens the input's src as a path on fs and loads it.
func (t *ImageInputType) LoadSource(fs afero.Fs) error {
	src := t.input.Src()
	if src == "" {
		return errors.New("image input has no src")
	}
	f, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer f.Close()
	return t.Load(f)
}

// SetSelectedCoordinate records where the button was activated.
func (t *ImageInputType) SetSelectedCoordinate(x, y int) {
	t.x, t.y = x, y
}

// IsAppendingData is true only for the button that submitted the form, named
// or not.
func (t *ImageInputType) IsAppendingData(submitter *HTMLElement) bool {
	return t.isSubmitter(submitter)
}

func (t *ImageInputType) ConstructDataSet(set *FormDataSet) {
	prefix := ""
	if name := t.input.Name(); name != "" {
		prefix = name + "."
	}
	set.Append(prefix+"x", strconv.Itoa(t.x), t.name)
	set.Append(prefix+"y", strconv.Itoa(t.y), t.name)
}
