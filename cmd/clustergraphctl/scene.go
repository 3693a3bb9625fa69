// File: scene.go
// Role: YAML scene description loader — the CLI's only input format.
//
// Grounded on gopkg.in/yaml.v3 (already an indirect dependency of the
// teacher via testify, promoted here to direct use per SPEC_FULL.md).
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/clustergraph/core"
)

// sceneEdge names two scene-local vertex names to connect.
type sceneEdge struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// sceneCluster is one node of the scene's cluster tree. Name lets the CLI's
// commands (move --to) refer to the cluster; it has no representation in
// the built core.Cluster tree. Edges name vertices of this same cluster.
type sceneCluster struct {
	Name     string         `yaml:"name"`
	Vertices []string       `yaml:"vertices"`
	Children []sceneCluster `yaml:"children"`
	Edges    []sceneEdge    `yaml:"edges"`
}

// scene is the root of a YAML scene file.
type scene struct {
	Root sceneCluster `yaml:"root"`
}

func loadScene(path string) (*scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %q: %w", path, err)
	}
	var s scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene file %q: %w", path, err)
	}
	return &s, nil
}

// populate realizes one scene cluster (and its descendants) into c,
// recording every named vertex's GlobalVertex and every named cluster's
// *core.Cluster into the shared lookup tables — the scene's names have no
// representation inside core.Cluster itself, so the CLI must track them
// alongside the tree it builds.
func populate(c *core.Cluster, sc *sceneCluster, names map[string]core.GlobalVertex, clusters map[string]*core.Cluster) error {
	if sc.Name != "" {
		if _, exists := clusters[sc.Name]; exists {
			return fmt.Errorf("scene: duplicate cluster name %q", sc.Name)
		}
		clusters[sc.Name] = c
	}
	locals := make(map[string]core.LocalVertex, len(sc.Vertices))
	for _, name := range sc.Vertices {
		if _, exists := names[name]; exists {
			return fmt.Errorf("scene: duplicate vertex name %q", name)
		}
		v, g := c.AddVertex()
		locals[name] = v
		names[name] = g
	}
	for _, e := range sc.Edges {
		u, ok := locals[e.From]
		if !ok {
			return fmt.Errorf("scene: edge references unknown vertex %q", e.From)
		}
		v, ok := locals[e.To]
		if !ok {
			return fmt.Errorf("scene: edge references unknown vertex %q", e.To)
		}
		if _, _, err := c.AddEdge(u, v); err != nil {
			return fmt.Errorf("scene: adding edge %s-%s: %w", e.From, e.To, err)
		}
	}
	for i := range sc.Children {
		child, _ := c.CreateCluster()
		if err := populate(child, &sc.Children[i], names, clusters); err != nil {
			return err
		}
	}
	return nil
}
