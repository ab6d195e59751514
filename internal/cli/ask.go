package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askExplain bool

var askCmd = &cobra.Command{
	Use:   "ask [utterance...]",
	Short: "Print the assistant's reply to one utterance",
	Example: `  foundationctl ask "how can I volunteer?"
  foundationctl ask --explain hello`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askExplain, "explain", false, "also print which rule answered")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}

	utterance := strings.Join(args, " ")
	idx, rule := e.Match(utterance)

	out := cmd.OutOrStdout()
	if askExplain {
		name := rule.Name
		if name == "" {
			name = "unnamed"
		}
		fmt.Fprintf(out, "rule #%d (%s)\n", idx+1, name)
	}
	fmt.Fprintln(out, rule.Response)
	return nil
}
