package atlasfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glyphatlas"
)

// ErrEmptySurface is returned when there are no pixels to write.
var ErrEmptySurface = errors.New("atlasfile: empty surface")

// Paths are the files written by WriteFiles.
type Paths struct {
	PNG  string
	JSON string
}

// PathsFor returns base.png and base.json.
func PathsFor(base string) Paths {
	return Paths{PNG: base + ".png", JSON: base + ".json"}
}

// WriteFiles writes the atlas image and metadata for res to base.png and
// base.json. The document's Atlas field is set to the image's base name.
func WriteFiles(base string, res *glyphatlas.Result, pngOpts PNGOptions, docOpts ...DocOption) (Paths, error) {
	if res == nil || res.Surface == nil {
		return Paths{}, ErrEmptySurface
	}
	paths := PathsFor(base)
	docOpts = append([]DocOption{WithAtlasName(filepath.Base(paths.PNG))}, docOpts...)
	doc := NewDocument(res, docOpts...)

	var g errgroup.Group
	g.Go(func() error {
		return writeFile(paths.PNG, func(w io.Writer) error {
			return WritePNG(w, res.Surface, pngOpts)
		})
	})
	g.Go(func() error {
		return writeFile(paths.JSON, doc.WriteJSON)
	})
	if err := g.Wait(); err != nil {
		return Paths{}, err
	}
	return paths, nil
}

// writeFile creates path and fills it with write. A partially written file
// is removed.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path) // #nosec G304 -- output path chosen by the caller
	if err != nil {
		return fmt.Errorf("atlasfile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("atlasfile: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return write(f)
}
