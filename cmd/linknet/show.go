package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tbraz/linknet/internal/presentation/graph"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the topology tree",
	Long:  `Loads the topology document and prints the tree, either as indented text or as a Mermaid diagram (graph TD).`,
	Run: func(cmd *cobra.Command, args []string) {
		net, err := loadNetwork(cmd)
		if err != nil {
			fmt.Printf("Error loading topology: %v\n", err)
			os.Exit(1)
		}

		if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
			var overlay *graph.Overlay
			if traced, _ := cmd.Flags().GetString("trace"); traced != "" {
				hops, err := net.Trace(traced)
				if err != nil {
					fmt.Printf("Error tracing %q: %v\n", traced, err)
					os.Exit(1)
				}
				overlay = &graph.Overlay{TracedPath: hops}
			}
			fmt.Print(graph.GenerateMermaid(net.Tree().Roots(), overlay))
			return
		}

		fmt.Print(net.Tree().Render())
	},
}

func init() {
	showCmd.Flags().Bool("mermaid", false, "Output a Mermaid diagram instead of indented text")
	showCmd.Flags().String("trace", "", "Highlight the hop path to this peer (Mermaid output only)")
	rootCmd.AddCommand(showCmd)
}
