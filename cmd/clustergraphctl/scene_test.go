package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func discardEntry() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

const testSceneYAML = `
root:
  name: root
  vertices: [a, b]
  edges:
    - {from: a, to: b}
  children:
    - name: sub
      vertices: [c]
`

func writeTestScene(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSceneYAML), 0o644))
	return path
}

func TestLoadScene_ParsesNestedClusters(t *testing.T) {
	path := writeTestScene(t)
	s, err := loadScene(path)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, s.Root.Vertices)
	require.Len(t, s.Root.Children, 1)
	require.Equal(t, "sub", s.Root.Children[0].Name)
	require.Equal(t, []string{"c"}, s.Root.Children[0].Vertices)
}

func TestLoadAndBuild_RealizesSceneIntoClusterTree(t *testing.T) {
	path := writeTestScene(t)
	root, names, clusters, err := loadAndBuild(path, discardEntry())
	require.NoError(t, err)

	require.Len(t, names, 3)
	require.Contains(t, clusters, "root")
	require.Contains(t, clusters, "sub")

	stats := root.Stats()
	require.Equal(t, 2, stats.PlainVertices)
	require.Equal(t, 1, stats.LocalEdges)
	require.Equal(t, 1, stats.ClusterVertices)
}
