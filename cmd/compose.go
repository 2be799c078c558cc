package cmd

import (
	"fmt"

	"github.com/daedaleanai/lcc/log"
	"github.com/daedaleanai/lcc/toolchain"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose stage [inputs] [-X flag]... [-o output] [driver flags]",
	Short: "Prints the command line running one stage on the given files",
	Long: `Prints the command line running one stage on the given files. The extra flags
replace $1, the inputs replace $2 and the output replaces $3. If no output is given,
it is named after the first input.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCompose,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return stageNames(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveDefault
	},
}

var (
	composeFlags  []string
	composeOutput string
)

func init() {
	rootCmd.AddCommand(composeCmd)
	composeCmd.Flags().StringArrayVarP(&composeFlags, "extra", "X", nil, "Extra flag passed to the stage")
	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "", "Output file")
}

func runCompose(cmd *cobra.Command, args []string) {
	stage, err := toolchain.ParseStage(args[0])
	if err != nil {
		log.Fatal("%s.\n", err)
	}
	table, registry := mustConfigure()
	tc := mustFinalize(table, registry)

	argv, err := composeStage(tc, stage, composeFlags, args[1:], composeOutput)
	if err != nil {
		log.Fatal("%s.\n", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), shellquote.Join(argv...))
}

func composeStage(tc *toolchain.Toolchain, stage toolchain.Stage, flags []string, inputs []string, output string) ([]string, error) {
	if output == "" && len(inputs) > 0 {
		if kind, ok := stage.OutputKind(); ok {
			output = toolchain.OutputName(inputs[0], kind)
			log.Debug("Writing output of stage '%s' to '%s'.\n", stage, output)
		}
	}
	outputs := []string{}
	if output != "" {
		outputs = append(outputs, output)
	}
	return toolchain.Compose(tc.Args(stage), flags, inputs, outputs)
}
