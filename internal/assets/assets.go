// Package assets loads named sprites and sounds for a session.
//
// Assets are small YAML descriptors read from an fs.FS: images/<name>.yaml
// and sounds/<name>.yaml. The embedded set under data/ is the default; a
// directory can replace it through config (assets.dir).
package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed data
var embedded embed.FS

// Asset kinds reported by AssetLoadError.
const (
	KindImage = "image"
	KindSound = "sound"
)

// AssetLoadError is returned for any asset that could not be loaded,
// including loads abandoned because the context ended.
type AssetLoadError struct {
	Kind string
	Name string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("assets: cannot load %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// Sprite is a loaded image: a solid block of one glyph in world units.
type Sprite struct {
	Name   string
	Width  float64
	Height float64
	Glyph  rune
	Color  core.Color
}

// Sound is a loaded sound effect. Terminals play it as a number of bells.
type Sound struct {
	Name  string
	Bells int
}

// Sprites indexes loaded sprites by name.
type Sprites map[string]Sprite

// Sounds indexes loaded sounds by name.
type Sounds map[string]Sound

type spriteFile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

type soundFile struct {
	Bells int `yaml:"bells"`
}

// Loader reads assets from a file system.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Embedded returns a loader over the assets compiled into the binary.
func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// data/ is embedded at build time; Sub only fails on an invalid path.
		panic(err)
	}
	return NewLoader(sub)
}

// ForDir returns a loader over dir, or the embedded loader when dir is empty.
func ForDir(dir string) *Loader {
	if dir == "" {
		return Embedded()
	}
	return NewLoader(os.DirFS(dir))
}

// LoadImage loads the sprite called name.
func (l *Loader) LoadImage(ctx context.Context, name string) (Sprite, error) {
	var f spriteFile
	if err := l.decode(ctx, path.Join("images", name+".yaml"), &f); err != nil {
		return Sprite{}, &AssetLoadError{Kind: KindImage, Name: name, Err: err}
	}

	if f.Width <= 0 || f.Height <= 0 {
		return Sprite{}, &AssetLoadError{Kind: KindImage, Name: name,
			Err: fmt.Errorf("size %gx%g must be positive", f.Width, f.Height)}
	}
	if utf8.RuneCountInString(f.Glyph) != 1 {
		return Sprite{}, &AssetLoadError{Kind: KindImage, Name: name,
			Err: fmt.Errorf("glyph %q must be a single character", f.Glyph)}
	}
	color, ok := core.ParseColor(f.Color)
	if !ok {
		return Sprite{}, &AssetLoadError{Kind: KindImage, Name: name,
			Err: fmt.Errorf("unknown color %q", f.Color)}
	}

	glyph, _ := utf8.DecodeRuneInString(f.Glyph)
	return Sprite{
		Name:   name,
		Width:  f.Width,
		Height: f.Height,
		Glyph:  glyph,
		Color:  color,
	}, nil
}

// LoadSound loads the sound called name.
func (l *Loader) LoadSound(ctx context.Context, name string) (Sound, error) {
	var f soundFile
	if err := l.decode(ctx, path.Join("sounds", name+".yaml"), &f); err != nil {
		return Sound{}, &AssetLoadError{Kind: KindSound, Name: name, Err: err}
	}
	if f.Bells < 0 {
		return Sound{}, &AssetLoadError{Kind: KindSound, Name: name,
			Err: fmt.Errorf("bells must not be negative, got %d", f.Bells)}
	}
	return Sound{Name: name, Bells: f.Bells}, nil
}

// LoadImages loads all named sprites concurrently and waits for every one.
// The first failure cancels the remaining loads and is returned.
func (l *Loader) LoadImages(ctx context.Context, names ...string) (Sprites, error) {
	out := make(Sprites, len(names))
	err := loadAll(ctx, names, l.LoadImage, func(name string, s Sprite) { out[name] = s })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadSounds loads all named sounds concurrently and waits for every one.
func (l *Loader) LoadSounds(ctx context.Context, names ...string) (Sounds, error) {
	out := make(Sounds, len(names))
	err := loadAll(ctx, names, l.LoadSound, func(name string, s Sound) { out[name] = s })
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadAll[T any](ctx context.Context, names []string, load func(context.Context, string) (T, error), store func(string, T)) error {
	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex

	for _, name := range names {
		g.Go(func() error {
			v, err := load(gctx, name)
			if err != nil {
				return err
			}
			mu.Lock()
			store(name, v)
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func (l *Loader) decode(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// IsNotFound reports whether err is an AssetLoadError for a missing asset.
func IsNotFound(err error) bool {
	var le *AssetLoadError
	return errors.As(err, &le) && errors.Is(le.Err, fs.ErrNotExist)
}
