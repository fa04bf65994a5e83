package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tbraz/linknet"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of linknet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linknet version %s\n", strings.TrimSpace(linknet.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
