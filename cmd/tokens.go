package cmd

import (
	"fmt"
	"io"

	"github.com/daedaleanai/lcc/log"
	"github.com/daedaleanai/lcc/template"
	"github.com/daedaleanai/lcc/tokens"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [driver flags] [--expand]",
	Args:  cobra.NoArgs,
	Short: "Lists all tokens",
	Long:  `Lists all tokens and their values once the configuration and driver flags have been applied.`,
	Run:   runTokens,
}

var tokensExpand bool

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensExpand, "expand", false, "Print the expanded value of every token")
}

func runTokens(cmd *cobra.Command, args []string) {
	table, registry := mustConfigure()
	mustFinalize(table, registry)

	if err := printTokens(cmd.OutOrStdout(), table, tokensExpand); err != nil {
		log.Fatal("%s.\n", err)
	}
}

func printTokens(w io.Writer, table *tokens.Table, expand bool) error {
	expander := template.NewExpander(table)
	for _, tok := range table.Tokens() {
		value := tok.Value
		if expand {
			expanded, err := expander.ExpandString(tok.Value)
			if err != nil {
				return err
			}
			value = expanded
		}
		if _, err := fmt.Fprintf(w, "%-16s %s\n", tok.Name, value); err != nil {
			return err
		}
	}
	return nil
}
