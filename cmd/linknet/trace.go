package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// traceCmd represents the trace command
var traceCmd = &cobra.Command{
	Use:   "trace <peer>",
	Short: "Resolve the hop path to a peer",
	Long:  `Resolves the hop path from the implicit root down to the named peer and prints it together with the hop count.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		net, err := loadNetwork(cmd)
		if err != nil {
			fmt.Printf("Error loading topology: %v\n", err)
			os.Exit(1)
		}

		hops, err := net.Trace(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s (%d hops)\n", strings.Join(hops, " -> "), len(hops))
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
}
