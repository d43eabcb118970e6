package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	def := DefaultConfig()

	c := FromMap(nil)
	require.Equal(t, def, c)

	c = FromMap(map[string]string{
		"w":            "48",
		"h":            "32",
		"seed":         "-7",
		"loop_stride":  "2",
		"tree_density": "0.1",
	})
	require.Equal(t, 48, c.Width)
	require.Equal(t, 32, c.Height)
	require.Equal(t, int64(-7), c.Seed)
	require.Equal(t, 2, c.LoopStride)
	require.Equal(t, 0.1, c.Gen.TreeDensity)

	// Unparseable or out-of-range values fall back to the defaults.
	c = FromMap(map[string]string{
		"w":           "banana",
		"h":           "0",
		"loop_stride": "-1",
	})
	require.Equal(t, def.Width, c.Width)
	require.Equal(t, def.Height, c.Height)
	require.Equal(t, def.LoopStride, c.LoopStride)

	// The radius bounds stay ordered.
	c = FromMap(map[string]string{
		"island_radius_min": "12",
		"island_radius_max": "5",
	})
	require.Equal(t, 12, c.Gen.IslandRadiusMin)
	require.Equal(t, 12, c.Gen.IslandRadiusMax)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")
	data := []byte(`
width: 96
height: 64
freeform_edges: true
gen:
  island_count: 2
  oil_rigs: 0
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 96, c.Width)
	require.Equal(t, 64, c.Height)
	require.True(t, c.FreeformEdges)
	require.Equal(t, 2, c.Gen.IslandCount)
	require.Equal(t, 0, c.Gen.OilRigs)

	// Keys the file does not mention keep their defaults.
	def := DefaultConfig()
	require.Equal(t, def.LoopStride, c.LoopStride)
	require.Equal(t, def.Gen.TreeDensity, c.Gen.TreeDensity)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
