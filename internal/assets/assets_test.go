package assets

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestEmbeddedHasDefaultImages(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	sprites, err := Embedded().LoadImages(context.Background(), cfg.ImageNames()...)
	if err != nil {
		t.Fatalf("LoadImages() failed: %v", err)
	}

	if len(sprites) != len(cfg.ImageNames()) {
		t.Errorf("expected %d sprites, got %d", len(cfg.ImageNames()), len(sprites))
	}

	pipe := sprites[cfg.Field.PipeTop]
	if pipe.Width != cfg.Obstacles.Width || pipe.Height != cfg.Obstacles.Height {
		t.Errorf("pipe sprite %gx%g should match obstacle config %gx%g",
			pipe.Width, pipe.Height, cfg.Obstacles.Width, cfg.Obstacles.Height)
	}
	if ground := sprites[cfg.Field.Ground]; ground.Height != 112 {
		t.Errorf("ground height = %g, expected 112", ground.Height)
	}
}

func TestEmbeddedHasSounds(t *testing.T) {
	sounds, err := Embedded().LoadSounds(context.Background(), "fail", "succ")
	if err != nil {
		t.Fatalf("LoadSounds() failed: %v", err)
	}
	if sounds["fail"].Bells == 0 {
		t.Error("fail sound should ring at least once")
	}
}

func TestLoadImage(t *testing.T) {
	fsys := fstest.MapFS{
		"images/bird.yaml":  {Data: []byte("width: 10\nheight: 8\nglyph: \"@\"\ncolor: yellow\n")},
		"images/wide.yaml":  {Data: []byte("width: 10\nheight: 8\nglyph: \"ab\"\n")},
		"images/flat.yaml":  {Data: []byte("width: 10\nheight: 0\nglyph: \"#\"\n")},
		"images/paint.yaml": {Data: []byte("width: 1\nheight: 1\nglyph: \"#\"\ncolor: mauve\n")},
		"images/junk.yaml":  {Data: []byte("width: [\n")},
	}
	l := NewLoader(fsys)

	sprite, err := l.LoadImage(context.Background(), "bird")
	if err != nil {
		t.Fatalf("LoadImage(bird) failed: %v", err)
	}
	want := Sprite{Name: "bird", Width: 10, Height: 8, Glyph: '@', Color: core.ColorYellow}
	if sprite != want {
		t.Errorf("LoadImage(bird) = %+v, expected %+v", sprite, want)
	}

	for _, name := range []string{"wide", "flat", "paint", "junk", "missing"} {
		t.Run(name, func(t *testing.T) {
			_, err := l.LoadImage(context.Background(), name)
			var le *AssetLoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected *AssetLoadError, got %v", err)
			}
			if le.Kind != KindImage || le.Name != name {
				t.Errorf("error names %s %q, expected image %q", le.Kind, le.Name, name)
			}
		})
	}

	_, err = l.LoadImage(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound() should hold for a missing image, err = %v", err)
	}
}

func TestLoadImagesFailsAsAWhole(t *testing.T) {
	fsys := fstest.MapFS{
		"images/a.yaml": {Data: []byte("width: 1\nheight: 1\nglyph: \"a\"\n")},
	}

	sprites, err := NewLoader(fsys).LoadImages(context.Background(), "a", "b")
	if err == nil {
		t.Fatal("expected an error when one image is missing")
	}
	if sprites != nil {
		t.Error("no sprites should be returned on failure")
	}
	var le *AssetLoadError
	if !errors.As(err, &le) || le.Name != "b" {
		t.Errorf("expected the error to name %q, got %v", "b", err)
	}
}

func TestLoadHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Embedded().LoadImages(ctx, "bg2")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	var le *AssetLoadError
	if !errors.As(err, &le) {
		t.Errorf("cancellation should still surface as *AssetLoadError, got %T", err)
	}
}

func TestLoadSoundRejectsNegativeBells(t *testing.T) {
	fsys := fstest.MapFS{
		"sounds/odd.yaml": {Data: []byte("bells: -1\n")},
	}
	if _, err := NewLoader(fsys).LoadSound(context.Background(), "odd"); err == nil {
		t.Error("expected an error for negative bells")
	}
}
