package icons

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	_ "image/jpeg" // raster glyph decoding
	_ "image/png"
)

// iconExts lists the recognized glyph file extensions in precedence order:
// when a glyph name matches several files, the earliest extension wins.
var iconExts = []string{".svg", ".png", ".jpg", ".jpeg"}

// DirTheme is a Provider reading glyphs from a file tree, typically an icon
// theme directory or an embedded FS. Glyph names are file paths relative to
// the root with the extension stripped, so "actions/edit.svg" is the glyph
// "actions/edit".
type DirTheme struct {
	name string
	fsys fs.FS

	mu      sync.Mutex
	indexed bool
	files   map[string]string // glyph name -> file path
	names   []string          // sorted glyph names
}

// NewDirTheme returns a DirTheme with the given display name reading
// from fsys.
func NewDirTheme(name string, fsys fs.FS) *DirTheme {
	return &DirTheme{name: name, fsys: fsys}
}

// Name returns the theme's display name.
func (t *DirTheme) Name() string {
	return t.name
}

// List returns the sorted glyph names found in the tree. The first call
// walks and indexes the tree; later calls serve the index.
func (t *DirTheme) List(ctx context.Context) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.indexLocked(ctx); err != nil {
		return nil, err
	}
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names, nil
}

// Load renders the named glyph at size x size pixels. SVG glyphs are
// rasterized at the requested size; raster glyphs are decoded and scaled.
func (t *DirTheme) Load(name string, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("radial/icons: invalid glyph size %d", size)
	}

	t.mu.Lock()
	err := t.indexLocked(context.Background())
	file := t.files[name]
	t.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if file == "" {
		return nil, fmt.Errorf("radial/icons: theme %q has no glyph %q", t.name, name)
	}

	data, err := fs.ReadFile(t.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("radial/icons: read glyph %q: %w", name, err)
	}
	if strings.ToLower(path.Ext(file)) == ".svg" {
		return rasterizeSVG(data, size)
	}
	return decodeAndScale(data, size)
}

// indexLocked walks the tree once, recording glyph files. Callers hold mu.
// A cancelled walk leaves the theme unindexed so a later call can retry.
func (t *DirTheme) indexLocked(ctx context.Context) error {
	if t.indexed {
		return nil
	}
	files := make(map[string]string)
	err := fs.WalkDir(t.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rank := extRank(strings.ToLower(path.Ext(p)))
		if rank == len(iconExts) {
			return nil
		}
		name := strings.TrimSuffix(p, path.Ext(p))
		if cur, ok := files[name]; !ok || rank < extRank(strings.ToLower(path.Ext(cur))) {
			files[name] = p
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("radial/icons: index theme %q: %w", t.name, err)
	}

	names := make([]string, 0, len(files))
	for n := range files {
		names = append(names, n)
	}
	sort.Strings(names)

	t.files = files
	t.names = names
	t.indexed = true
	return nil
}

func extRank(ext string) int {
	for i, e := range iconExts {
		if e == ext {
			return i
		}
	}
	return len(iconExts)
}

// rasterizeSVG renders SVG data into a size x size image.
func rasterizeSVG(data []byte, size int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("radial/icons: parse svg: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	icon.SetTarget(0, 0, float64(size), float64(size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// decodeAndScale decodes a raster image and scales it to size x size.
func decodeAndScale(data []byte, size int) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("radial/icons: decode glyph: %w", err)
	}
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst, nil
}
