package main

import (
	"image"
	"testing"

	"github.com/milk9111/bikatown/common"
	"github.com/milk9111/bikatown/ecs/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewStepsPerUpdate(t *testing.T) {
	atlas, err := render.NewSpriteAtlas(common.Size{W: 32, H: 32}, image.NewRGBA(image.Rect(0, 0, 96, 32)))
	require.NoError(t, err)
	g := &previewGame{atlas: atlas}

	tests := []struct {
		updates int
		want    int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 0},
	}

	for _, tc := range tests {
		g.ticks = 0
		for i := 0; i < tc.updates; i++ {
			require.NoError(t, g.Update())
		}
		// Several draws per tick show the same cell.
		assert.Equal(t, tc.want, g.cell())
		assert.Equal(t, tc.want, g.cell())
	}
	assert.Zero(t, atlas.Counter())
}
