// File: main.go
// Role: clustergraphctl — a small inspector CLI: loads a YAML scene
// description, builds the described cluster tree, runs one named
// scenario, and prints a deterministic report.
//
// Grounded on the spf13/cobra root-command-plus-subcommands shape used by
// datum-cloud-milo's cmd/milo/main.go, simplified to a flat command set
// since this CLI has no daemon subcommands of its own.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/clustergraph/core"
	"github.com/katalvlaran/clustergraph/telemetry"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var scenePath string
	var verbose bool

	root := &cobra.Command{
		Use:   "clustergraphctl",
		Short: "Inspect a hierarchical cluster graph described by a YAML scene file.",
	}
	root.PersistentFlags().StringVar(&scenePath, "scene", "", "path to a YAML scene file (required)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "emit debug-level structured logs")
	_ = root.MarkPersistentFlagRequired("scene")

	loggerFor := func() *logrus.Entry {
		l := logrus.New()
		if verbose {
			l.SetLevel(logrus.DebugLevel)
		} else {
			l.SetLevel(logrus.WarnLevel)
		}
		return logrus.NewEntry(l)
	}

	root.AddCommand(newStatsCommand(&scenePath, loggerFor))
	root.AddCommand(newMoveCommand(&scenePath, loggerFor))
	root.AddCommand(newRemoveCommand(&scenePath, loggerFor))
	root.AddCommand(newBuildCommand(&scenePath, loggerFor))
	return root
}

func loadAndBuild(scenePath string, logger *logrus.Entry) (*core.Cluster, map[string]core.GlobalVertex, map[string]*core.Cluster, error) {
	s, err := loadScene(scenePath)
	if err != nil {
		return nil, nil, nil, err
	}
	recorder := telemetry.NewPrometheusRecorder()
	root := core.NewRootCluster(core.Schema{}, core.WithLogger(logger), core.WithRecorder(recorder))
	names := make(map[string]core.GlobalVertex)
	clusters := map[string]*core.Cluster{}
	if s.Root.Name == "" {
		clusters["root"] = root
	}
	if err := populate(root, &s.Root, names, clusters); err != nil {
		return nil, nil, nil, err
	}
	return root, names, clusters, nil
}

func newBuildCommand(scenePath *string, loggerFor func() *logrus.Entry) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the scene and print its top-level stats.",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, _, err := loadAndBuild(*scenePath, loggerFor())
			if err != nil {
				return err
			}
			printStats(cmd, "root", root.Stats())
			return nil
		},
	}
}

func newStatsCommand(scenePath *string, loggerFor func() *logrus.Entry) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Build the scene and print stats for every cluster in the tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, _, err := loadAndBuild(*scenePath, loggerFor())
			if err != nil {
				return err
			}
			printStatsTree(cmd, "root", root)
			return nil
		},
	}
}

func newMoveCommand(scenePath *string, loggerFor func() *logrus.Entry) *cobra.Command {
	var vertexName, targetCluster string
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a named vertex into a named child cluster, then print stats.",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, names, clusters, err := loadAndBuild(*scenePath, loggerFor())
			if err != nil {
				return err
			}
			g, ok := names[vertexName]
			if !ok {
				return fmt.Errorf("unknown vertex %q", vertexName)
			}
			host, v, ok := root.ContainingCluster(g)
			if !ok {
				return fmt.Errorf("vertex %q not found in built tree", vertexName)
			}
			target, ok := clusters[targetCluster]
			if !ok {
				return fmt.Errorf("unknown cluster %q", targetCluster)
			}
			if _, err := host.MoveToSubcluster(v, target); err != nil {
				return err
			}
			printStats(cmd, "root", root.Stats())
			return nil
		},
	}
	cmd.Flags().StringVar(&vertexName, "vertex", "", "scene-local vertex name to move")
	cmd.Flags().StringVar(&targetCluster, "to", "", "scene-local destination cluster name")
	return cmd
}

func newRemoveCommand(scenePath *string, loggerFor func() *logrus.Entry) *cobra.Command {
	var vertexName string
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a named vertex from wherever it is hosted, then print stats.",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, names, _, err := loadAndBuild(*scenePath, loggerFor())
			if err != nil {
				return err
			}
			g, ok := names[vertexName]
			if !ok {
				return fmt.Errorf("unknown vertex %q", vertexName)
			}
			if err := root.RemoveVertexGlobal(g, nil); err != nil {
				return err
			}
			printStats(cmd, "root", root.Stats())
			return nil
		},
	}
	cmd.Flags().StringVar(&vertexName, "vertex", "", "scene-local vertex name to remove")
	return cmd
}

func printStats(cmd *cobra.Command, label string, s core.ClusterStats) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: vertices=%d clusters=%d edges=%d aggregated=%d changed=%t\n",
		label, s.PlainVertices, s.ClusterVertices, s.LocalEdges, s.GlobalEdges, s.Changed)
}

func printStatsTree(cmd *cobra.Command, label string, c *core.Cluster) {
	printStats(cmd, label, c.Stats())
	for i, child := range c.Clusters() {
		printStatsTree(cmd, fmt.Sprintf("%s/child[%d]", label, i), child)
	}
}
