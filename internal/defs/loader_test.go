package defs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibraryIsValid(t *testing.T) {
	lib := Default()
	require.NoError(t, lib.Validate())
	assert.Greater(t, len(lib.Targets), 12, "late stages pick from index 11 upward")
	assert.NotEmpty(t, lib.Bosses)
}

func TestParse(t *testing.T) {
	t.Run("partial file keeps defaults for missing sections", func(t *testing.T) {
		lib, err := Parse([]byte(`
bosses:
  - name: Melon
    target:
      id: BOSS_MELON
      total_knife: 7
      rotation: {speed: 120, reverse_every: 1.5}
      apples: [0, 180]
      color: "#3cb043"
`))
		require.NoError(t, err)
		require.Len(t, lib.Bosses, 1)
		assert.Equal(t, "Melon", lib.Bosses[0].Name)
		assert.Equal(t, []float64{0, 180}, lib.Bosses[0].Target.Apples)
		assert.Equal(t, 1.5, lib.Bosses[0].Target.Rotation.ReverseEvery)
		assert.Equal(t, Default().Targets, lib.Targets)
	})

	t.Run("target without knives is rejected", func(t *testing.T) {
		_, err := Parse([]byte("targets:\n  - id: EMPTY\n    total_knife: 0\n"))
		assert.ErrorContains(t, err, "total_knife")
	})

	t.Run("unnamed boss is rejected", func(t *testing.T) {
		_, err := Parse([]byte("bosses:\n  - target: {id: X, total_knife: 3}\n"))
		assert.ErrorContains(t, err, "name is required")
	})

	t.Run("duplicate skins are rejected", func(t *testing.T) {
		_, err := Parse([]byte("skins:\n  - id: a\n  - id: a\n"))
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Parse([]byte("targets: [oops"))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skins:\n  - id: bone\n    name: Bone\n    blade: \"#fafafa\"\n"), 0o644))

	lib, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bone", lib.Skin("unknown").ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHexColor(t *testing.T) {
	c, err := HexColor("#ff8000").Parse()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)

	c, err = HexColor("10203040").Parse()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{16, 32, 48, 64}, c)

	_, err = HexColor("#fff").Parse()
	assert.Error(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, HexColor("nope").RGBA())
}
