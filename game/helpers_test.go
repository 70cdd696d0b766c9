package game

import (
	"image"
	"testing"

	"github.com/milk9111/bikatown/common"
	"github.com/milk9111/bikatown/ecs/component"
	"github.com/milk9111/bikatown/ecs/render"
	"github.com/milk9111/bikatown/levels"
	"github.com/milk9111/bikatown/prefabs"
	"github.com/stretchr/testify/require"
)

type fakeTexture struct {
	name string
	w, h int
}

func (t *fakeTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.w, t.h)
}

func atlas(t *testing.T, name string, cell common.Size, w, h int) *render.SpriteAtlas {
	t.Helper()
	a, err := render.NewSpriteAtlas(cell, &fakeTexture{name: name, w: w, h: h})
	require.NoError(t, err)
	return a
}

func testCatalog(t *testing.T, tilesName string) *render.SpriteCatalog {
	t.Helper()
	c := render.NewSpriteCatalog()
	c.RegisterAtlas("tiles", atlas(t, tilesName, common.Size{W: 16, H: 16}, 128, 128))
	c.RegisterAtlas("warrior_based_ui", atlas(t, "panel", common.Size{W: 128, H: 48}, 128, 48))
	c.RegisterAtlas("health_bar", atlas(t, "health", common.Size{W: 64, H: 8}, 64, 8))
	c.RegisterAtlas("magic_bar", atlas(t, "mana", common.Size{W: 48, H: 8}, 48, 8))
	c.RegisterAtlas("exp_bar", atlas(t, "exp", common.Size{W: 64, H: 8}, 64, 8))

	activities := []component.Activity{
		component.ActivityIdle, component.ActivityMoving, component.ActivityAttack,
		component.ActivityDeath, component.ActivityTakingDamage,
	}
	for _, a := range activities {
		var atlases [4]*render.SpriteAtlas
		for _, d := range component.Directions {
			atlases[d] = atlas(t, a.String()+"/"+d.String(), common.Size{W: 32, H: 32}, 128, 32)
		}
		set, err := render.NewDirectionalSet(a.String(), atlases)
		require.NoError(t, err)
		c.RegisterAnimation("warrior_based", a, set)
	}
	return c
}

func testMap() *levels.TileMap {
	data := make([]uint32, 16)
	for i := range data {
		data[i] = 1
	}
	return &levels.TileMap{
		Width: 4, Height: 4, TileWidth: 16, TileHeight: 16,
		Layers:   []levels.Layer{{Name: "ground", Visible: true, Data: data}},
		Tilesets: []levels.Tileset{{Name: "tiles", FirstGID: 1, TileCount: 64}},
	}
}

func testPlayer() *prefabs.PlayerSpec {
	return &prefabs.PlayerSpec{
		Class:       "warrior",
		Gender:      "based",
		Start:       prefabs.PointSpec{X: 16, Y: 16},
		Facing:      "down",
		StepPixels:  4,
		RunVelocity: 2,
	}
}

// scripted returns one batch per poll, then nothing.
type scripted struct {
	batches [][]component.Input
}

func (s *scripted) Poll() []component.Input {
	if len(s.batches) == 0 {
		return nil
	}
	next := s.batches[0]
	s.batches = s.batches[1:]
	return next
}

func newTestContext(t *testing.T, src *scripted, updates *Swap[CatalogUpdate]) *Context {
	t.Helper()
	c, err := New(Options{
		Catalog:    testCatalog(t, "tiles"),
		HUD:        render.DefaultHUDLayout(),
		Map:        testMap(),
		Player:     testPlayer(),
		LegacyMove: true,
		Input:      src,
		View:       common.Size{W: 64, H: 64},
		Updates:    updates,
	})
	require.NoError(t, err)
	return c
}

func texName(cmd render.DrawCommand) string {
	return cmd.Texture.(*fakeTexture).name
}
