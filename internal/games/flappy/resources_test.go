package flappy

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestLoadResourcesEmbedded(t *testing.T) {
	res, err := LoadResources(context.Background(), config.DefaultFlappyConfig(), assets.Embedded())
	if err != nil {
		t.Fatalf("LoadResources() error: %v", err)
	}

	for _, name := range res.Config.ImageNames() {
		if _, ok := res.Sprites[name]; !ok {
			t.Errorf("sprite %q not loaded", name)
		}
	}
	for _, name := range SoundNames() {
		if _, ok := res.Sounds[name]; !ok {
			t.Errorf("sound %q not loaded", name)
		}
	}

	s, err := res.NewSession(1)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	if s.FloorY() != 400 {
		t.Errorf("FloorY() = %g, expected 400", s.FloorY())
	}
}

func TestLoadResourcesMissingSound(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, name := range config.DefaultFlappyConfig().ImageNames() {
		fsys["images/"+name+".yaml"] = &fstest.MapFile{Data: []byte("width: 1\nheight: 1\nglyph: x\n")}
	}
	fsys["sounds/fail.yaml"] = &fstest.MapFile{Data: []byte("bells: 1\n")}

	_, err := LoadResources(context.Background(), config.DefaultFlappyConfig(), assets.NewLoader(fsys))
	if err == nil {
		t.Fatal("expected an error for the missing succ sound")
	}

	var le *assets.AssetLoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected an AssetLoadError, got %T: %v", err, err)
	}
	if le.Kind != assets.KindSound || le.Name != "succ" {
		t.Errorf("error names %s %q, expected sound \"succ\"", le.Kind, le.Name)
	}
}

func TestLoadResourcesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadResources(ctx, config.DefaultFlappyConfig(), assets.Embedded())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("LoadResources() error = %v, expected context.Canceled", err)
	}
}
