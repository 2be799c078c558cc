package cmd

import (
	"os"

	"github.com/daedaleanai/lcc/log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lcc",
	Short: "Toolchain configuration for the GBDK compiler driver",
	Long: `lcc works out how the external programs of a GBDK toolchain (preprocessor,
compiler, assembler and linker) have to be invoked for a target port and platform,
and prints the resulting command lines.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	registerDriverFlags(rootCmd.PersistentFlags())
	if rootCmd.Execute() != nil {
		os.Exit(1)
	}
}
