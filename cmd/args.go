package cmd

import (
	"fmt"
	"io"

	"github.com/daedaleanai/lcc/log"
	"github.com/daedaleanai/lcc/toolchain"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var argsCmd = &cobra.Command{
	Use:   "args [stages] [driver flags] [--yaml]",
	Short: "Prints the argument vectors of the toolchain stages",
	Long: `Prints the fully expanded argument vectors of the given stages (cpp, include, com,
as, ld), or of all stages if none is given. Positional placeholders $1, $2 and $3
are left in place.`,
	Run: runArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return stageNames(), cobra.ShellCompDirectiveNoFileComp
	},
}

var argsYaml bool

func init() {
	rootCmd.AddCommand(argsCmd)
	argsCmd.Flags().BoolVar(&argsYaml, "yaml", false, "Print the argument vectors as YAML")
}

func runArgs(cmd *cobra.Command, args []string) {
	stages, err := parseStages(args)
	if err != nil {
		log.Fatal("%s.\n", err)
	}
	table, registry := mustConfigure()
	tc := mustFinalize(table, registry)

	if err := printToolchain(cmd.OutOrStdout(), tc, stages, argsYaml); err != nil {
		log.Fatal("Failed to print the toolchain: %s.\n", err)
	}
}

func printToolchain(w io.Writer, tc *toolchain.Toolchain, stages []toolchain.Stage, asYaml bool) error {
	if !asYaml {
		for _, stage := range stages {
			if _, err := fmt.Fprintf(w, "%s: %s\n", stage, shellquote.Join(tc.Args(stage)...)); err != nil {
				return err
			}
		}
		return nil
	}

	doc := yaml.MapSlice{{Key: "profile", Value: tc.Profile}}
	for _, stage := range stages {
		doc = append(doc, yaml.MapItem{Key: stage.String(), Value: tc.Args(stage)})
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
