package cmd

import (
	"fmt"
	"strings"

	"github.com/daedaleanai/lcc/toolchain"

	"github.com/spf13/cobra"
)

var suffixesCmd = &cobra.Command{
	Use:   "suffixes",
	Args:  cobra.NoArgs,
	Short: "Lists the file name extensions known to the driver",
	Long:  `Lists the file name extensions known to the driver.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range toolchain.Suffixes {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", s.Kind, strings.Join(s.Extensions, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(suffixesCmd)
}
