package scene

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGLTF(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "garden.glb")
	layout := GardenLayout()

	require.NoError(t, ExportGLTF(out, layout, GardenMaterials(), GardenTextures(filepath.Join(dir, "textures"))))

	doc, err := gltf.Open(out)
	require.NoError(t, err)

	require.Len(t, doc.Nodes, len(layout))
	require.Len(t, doc.Scenes, 1)
	assert.Len(t, doc.Scenes[0].Nodes, len(layout))
	assert.Len(t, doc.Images, 5)
	assert.Len(t, doc.Materials, 5)
	// Seven distinct mesh kind and UV tiling combinations.
	assert.Len(t, doc.Meshes, 7)

	assert.Equal(t, "textures/plants_grass_seamless.jpg", doc.Images[0].URI)
	assert.Equal(t, "ground", doc.Nodes[0].Name)

	for i, o := range layout {
		want := o.Model()
		for j := range want {
			assert.InDelta(t, want[j], doc.Nodes[i].Matrix[j], 1e-6, "%s matrix[%d]", o.Name, j)
		}
	}

	grass := doc.Materials[0].PBRMetallicRoughness
	require.NotNil(t, grass)
	require.NotNil(t, grass.BaseColorTexture)
	assert.Equal(t, 0, grass.BaseColorTexture.Index)
}

func TestRoughness(t *testing.T) {
	assert.Equal(t, float32(1), roughness(0.5))
	assert.InDelta(t, 0.0, roughness(129), 1e-6)
	assert.Less(t, roughness(7), roughness(3))
}
