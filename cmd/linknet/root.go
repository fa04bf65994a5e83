package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tbraz/linknet"
	"github.com/tbraz/linknet/internal/logging"
	"github.com/tbraz/linknet/pkg/topofile"
)

var rootCmd = &cobra.Command{
	Use:   "linknet",
	Short: "linknet inspects spanning-tree network topologies",
	Long: `linknet loads a topology document describing the spanning tree of a
store-and-forward messaging network and answers questions about it:
hop paths between peers, subtree membership, and exports for diagrams.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "topology.yaml", "Topology document to load")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// loadNetwork builds a Network from the topology file named by --file.
func loadNetwork(cmd *cobra.Command) (*linknet.Network, error) {
	path, _ := cmd.Flags().GetString("file")
	debug, _ := cmd.Flags().GetBool("debug")

	t, err := topofile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	net, err := linknet.New(
		linknet.WithTree(t),
		linknet.WithLogger(logging.ForCLI(debug)),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid topology %s: %w", path, err)
	}
	return net, nil
}
