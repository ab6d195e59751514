package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ugochukwu16henry/foundationprototype/internal/engine"
)

const version = "v0.3.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "foundationctl",
	Short: "foundationctl - inspect and exercise the site chat assistant",
	Long: `foundationctl talks to the same keyword rule engine the website chat
widget uses. Ask it a question, run an interactive session, or check a
rules file before deploying it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "foundationctl "+version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.foundationctl/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("rules", "", "YAML rules file (default: built-in rules)")

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("rules", rootCmd.PersistentFlags().Lookup("rules"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.foundationctl")
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// FOUNDATION_RULES, FOUNDATION_VERBOSE, ...
	viper.SetEnvPrefix("FOUNDATION")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadEngine builds the engine from the configured rules file, or the
// built-in rules when none is set.
func loadEngine() (*engine.Engine, error) {
	path := viper.GetString("rules")
	if path == "" {
		return engine.Default(), nil
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Using rules file: %s\n", path)
	}
	return engine.FromFile(path)
}
