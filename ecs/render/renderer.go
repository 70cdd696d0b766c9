package render

import (
	"fmt"
	"image"

	"github.com/milk9111/bikatown/prefabs"
)

// HUDLayout places the status panel and its bars, in screen pixels.
type HUDLayout struct {
	Panel       image.Point
	PanelSuffix string
	Health      BarLayout
	Mana        BarLayout
	Experience  BarLayout
	LevelLabel  image.Point
}

type BarLayout struct {
	Atlas string
	At    image.Point
}

// DefaultHUDLayout matches the stock warrior panel art.
func DefaultHUDLayout() HUDLayout {
	return HUDLayout{
		Panel:       image.Pt(0, 0),
		PanelSuffix: "_ui",
		Health:      BarLayout{Atlas: "health_bar", At: image.Pt(49, 5)},
		Mana:        BarLayout{Atlas: "magic_bar", At: image.Pt(61, 20)},
		Experience:  BarLayout{Atlas: "exp_bar", At: image.Pt(49, 35)},
		LevelLabel:  image.Pt(8, 50),
	}
}

// HUDLayoutFromSpec overlays the manifest hud section on the defaults. Bars
// without a sprite name keep their default, and a bar without a position
// keeps the default position.
func HUDLayoutFromSpec(spec prefabs.HUDSpec) HUDLayout {
	l := DefaultHUDLayout()
	l.Panel = image.Pt(spec.Panel.X, spec.Panel.Y)
	overlayBar(&l.Health, spec.Health)
	overlayBar(&l.Mana, spec.Mana)
	overlayBar(&l.Experience, spec.Experience)
	if spec.LevelLabel != (prefabs.PointSpec{}) {
		l.LevelLabel = image.Pt(spec.LevelLabel.X, spec.LevelLabel.Y)
	}
	return l
}

func overlayBar(dst *BarLayout, spec prefabs.BarSpec) {
	if spec.Sprite == "" {
		return
	}
	dst.Atlas = spec.Sprite
	if spec.At != (prefabs.PointSpec{}) {
		dst.At = image.Pt(spec.At.X, spec.At.Y)
	}
}

// Renderer resolves queued requests against a catalog and draws them.
type Renderer struct {
	Catalog *SpriteCatalog
	Layout  HUDLayout
	// OnLevel, when set, is told where to print the player level. Text
	// rendering lives with the backend.
	OnLevel func(level uint32, at image.Point)
}

func NewRenderer(catalog *SpriteCatalog, layout HUDLayout) *Renderer {
	return &Renderer{Catalog: catalog, Layout: layout}
}

// Drain empties q onto c in push order. A lookup failure aborts the frame.
func (r *Renderer) Drain(q *RenderQueue, c Canvas) error {
	return q.Drain(func(req RenderRequest) error {
		switch req := req.(type) {
		case PlayerRequest:
			return r.drawPlayer(c, req)
		case HUDRequest:
			return r.drawHUD(c, req)
		}
		return fmt.Errorf("render: unknown request %T", req)
	})
}

func (r *Renderer) drawPlayer(c Canvas, req PlayerRequest) error {
	atlas, err := r.Catalog.LookupAnimation(req.Character.Key(), req.Activity, req.Position.Facing)
	if err != nil {
		return err
	}
	atlas.DrawAnimated(c, req.Position.X, req.Position.Y)
	return nil
}

func (r *Renderer) drawHUD(c Canvas, req HUDRequest) error {
	l := r.Layout
	panel, err := r.Catalog.LookupStatic(req.Character.Key() + l.PanelSuffix)
	if err != nil {
		return err
	}
	if err := panel.Draw(c, 0, l.Panel.X, l.Panel.Y); err != nil {
		return fmt.Errorf("hud panel: %w", err)
	}

	bars := []struct {
		layout BarLayout
		pct    float64
	}{
		{l.Health, req.Stats.Health.AsPercent()},
		{l.Mana, req.Stats.Mana.AsPercent()},
		{l.Experience, req.Stats.Experience.AsPercent()},
	}
	for _, bar := range bars {
		atlas, err := r.Catalog.LookupStatic(bar.layout.Atlas)
		if err != nil {
			return err
		}
		if err := atlas.DrawPortion(c, 0, bar.layout.At.X, bar.layout.At.Y, bar.pct, 1); err != nil {
			return fmt.Errorf("hud %s: %w", bar.layout.Atlas, err)
		}
	}

	if r.OnLevel != nil {
		r.OnLevel(req.Stats.Level, l.LevelLabel)
	}
	return nil
}
