package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tbraz/linknet"
	"github.com/tbraz/linknet/internal/presentation/tui"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a markdown summary of the topology",
	Long:  `Builds a markdown report of the topology (peer counts, hop table, routes) and renders it for the terminal when stdout is a TTY.`,
	Run: func(cmd *cobra.Command, args []string) {
		net, err := loadNetwork(cmd)
		if err != nil {
			fmt.Printf("Error loading topology: %v\n", err)
			os.Exit(1)
		}

		md, err := buildReport(net)
		if err != nil {
			fmt.Printf("Error building report: %v\n", err)
			os.Exit(1)
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
			render := tui.NewRenderer()
			out, err := render(md)
			if err == nil {
				fmt.Print(out)
				return
			}
			// Fall back to raw markdown if the renderer fails.
		}
		fmt.Print(md)
	},
}

func buildReport(net *linknet.Network) (string, error) {
	names := net.Tree().DescendantNames(nil)
	roots := net.Tree().Roots()

	var sb strings.Builder
	sb.WriteString("# Topology report\n\n")
	fmt.Fprintf(&sb, "- Peers: **%d**\n", len(names))
	fmt.Fprintf(&sb, "- Top-level peers: **%d**\n\n", len(roots))

	sb.WriteString("| Peer | Hops | Route |\n")
	sb.WriteString("|------|------|-------|\n")
	for _, name := range names {
		hops, err := net.Trace(name)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "| %s | %d | %s |\n", name, len(hops), strings.Join(hops, " / "))
	}
	return sb.String(), nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
