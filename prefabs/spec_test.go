package prefabs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/bikatown/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSpriteManifest(t *testing.T) {
	m, err := LoadSpriteManifest("sprites.yaml")
	require.NoError(t, err)

	require.NotEmpty(t, m.Directional)
	warrior := m.Directional[0]
	assert.Equal(t, "warrior_based", warrior.Name)
	require.Len(t, warrior.Activities, 5)
	assert.Equal(t, "Taking damage", warrior.Activities[4].Sheet)
	assert.Equal(t, common.Size{W: 48, H: 48}, warrior.Activities[2].Cells.Sizes()[3])

	assert.Equal(t, PointSpec{X: 49, Y: 5}, m.HUD.Health.At)
	assert.Equal(t, "magic_bar", m.HUD.Mana.Sprite)
}

func TestEmbeddedPlayerSpec(t *testing.T) {
	p, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, "warrior", p.Class)
	assert.Equal(t, 4, p.StepPixels)
	assert.Equal(t, uint32(50), p.Stats.Health.Max)
}

func TestDecodePairErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"scalar", "cell: 16"},
		{"three_values", "cell: [1, 2, 3]"},
		{"not_ints", "cell: [a, b]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSpec[SpriteSpec]("inline", []byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "player.yaml", cleanPrefabPath("player.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestLoadPrefersDiskCopy(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	embedded, err := Load("player.yaml")
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, Dir), 0o755))
	override := []byte("class: mage\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, Dir, "player.yaml"), override, 0o644))

	got, err := Load("prefabs/player.yaml")
	require.NoError(t, err)
	assert.Equal(t, override, got)
	assert.NotEqual(t, embedded, got)
}
