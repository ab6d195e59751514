package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ugochukwu16henry/foundationprototype/internal/engine"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect chat rule tables",
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a YAML rules file and print its evaluation order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := engine.FromFile(args[0])
		if err != nil {
			return err
		}
		printRules(cmd, e.Rules())
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s: OK\n", args[0])
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active rule table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := loadEngine()
		if err != nil {
			return err
		}
		printRules(cmd, e.Rules())
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesCheckCmd, rulesShowCmd)
	rootCmd.AddCommand(rulesCmd)
}

func printRules(cmd *cobra.Command, rules engine.RuleTable) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tTRIGGERS")
	for i, rule := range rules {
		triggers := strings.Join(rule.Triggers, ", ")
		if rule.CatchAll() {
			triggers = "(catch-all)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, rule.Name, triggers)
	}
	tw.Flush()
}
