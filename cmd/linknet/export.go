package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tbraz/linknet/pkg/topofile"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the topology snapshot",
	Long:  `Exports the nested-mapping snapshot of the topology to stdout, as YAML (child order preserved) or JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		net, err := loadNetwork(cmd)
		if err != nil {
			fmt.Printf("Error loading topology: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			if err := topofile.Save(os.Stdout, net.Tree()); err != nil {
				fmt.Printf("Error exporting topology: %v\n", err)
				os.Exit(1)
			}
		case "json":
			out, err := json.MarshalIndent(net.Tree().Snapshot(), "", "  ")
			if err != nil {
				fmt.Printf("Error exporting topology: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(out))
		default:
			fmt.Printf("Unknown format %q (want yaml or json)\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	exportCmd.Flags().String("format", "yaml", "Output format: yaml or json")
	rootCmd.AddCommand(exportCmd)
}
