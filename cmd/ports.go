package cmd

import (
	"fmt"
	"io"

	"github.com/daedaleanai/lcc/toolchain"

	"github.com/spf13/cobra"
)

var portsCmd = &cobra.Command{
	Use:   "ports [driver flags]",
	Args:  cobra.NoArgs,
	Short: "Lists all known ports and platforms",
	Long:  `Lists all known ports and platforms. The profile selected by the driver flags is marked.`,
	Run:   runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)
}

func runPorts(cmd *cobra.Command, args []string) {
	_, registry := mustConfigure()
	printPorts(cmd.OutOrStdout(), registry)
}

func printPorts(w io.Writer, registry *toolchain.Registry) {
	active := registry.Active().Name()
	for _, p := range registry.Profiles() {
		marker := " "
		if p.Name() == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-16s default platform: %s\n", marker, p.Name(), p.DefaultPlatform)
	}
}
