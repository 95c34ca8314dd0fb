package tempo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string `toml:"title" yaml:"title"`
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	TPS       int    `toml:"tps" yaml:"tps"` // 0 keeps ebiten's default of 60
	Resizable bool   `toml:"resizable" yaml:"resizable"`
}

// Run opens a window and drives d until the window is closed or the update
// hook returns an error. Returning ebiten.Termination from the hook ends the
// loop without an error.
func Run(d *Director, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	d.layoutW, d.layoutH = w, h

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
