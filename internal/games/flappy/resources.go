package flappy

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Resources holds everything sessions share: the configuration and the
// loaded sprites and sounds. It is read-only once loaded.
type Resources struct {
	Config  config.FlappyConfig
	Sprites assets.Sprites
	Sounds  assets.Sounds
}

// LoadResources loads every asset cfg names from loader, bounded by
// cfg.Assets.LoadTimeout. No session can start until it returns.
func LoadResources(ctx context.Context, cfg config.FlappyConfig, loader *assets.Loader) (*Resources, error) {
	if cfg.Assets.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Assets.LoadTimeout)
		defer cancel()
	}

	res := &Resources{Config: cfg}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sprites, err := loader.LoadImages(gctx, cfg.ImageNames()...)
		res.Sprites = sprites
		return err
	})
	g.Go(func() error {
		sounds, err := loader.LoadSounds(gctx, SoundNames()...)
		res.Sounds = sounds
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// NewSession starts a session from the loaded resources.
func (r *Resources) NewSession(seed int64, opts ...Option) (*Session, error) {
	return NewSession(r.Config, seed, r.Sprites, opts...)
}
