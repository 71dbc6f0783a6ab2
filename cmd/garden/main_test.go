package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"topiary-garden/config"
	"topiary-garden/scene"
)

func TestDumpFrameOrder(t *testing.T) {
	cfg := config.Default()
	cfg.TextureDir = t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, dumpFrame(cfg, &buf))

	var calls []struct {
		Op   string `yaml:"op"`
		Name string `yaml:"name"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &calls))

	first := func(name string) int {
		for i, c := range calls {
			if c.Name == name {
				return i
			}
		}
		return -1
	}

	view, projection, model := first("view"), first("projection"), first("model")
	require.NotEqual(t, -1, view)
	require.NotEqual(t, -1, model)
	assert.Less(t, view, model)
	assert.Less(t, projection, model)
	assert.Less(t, first("bUseLighting"), view)

	draws := 0
	for _, c := range calls {
		if c.Op == "draw" {
			draws++
		}
	}
	assert.Equal(t, len(scene.GardenLayout()), draws)
}

func TestExportScene(t *testing.T) {
	cfg := config.Default()
	out := filepath.Join(t.TempDir(), "garden.glb")
	require.NoError(t, exportScene(cfg, out))
	assert.FileExists(t, out)
}
