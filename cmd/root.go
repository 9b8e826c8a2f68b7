package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fxba/config"
)

var (
	cfgFile  string
	runTests bool
)

var rootCmd = &cobra.Command{
	Use:   "fxba",
	Short: "Financial calculator: TVM, cash flow, bond, depreciation and statistics worksheets",
	Long: `fxba is a BA II Plus style financial calculator.

Commands:
  serve     - JSON HTTP API over the worksheet engines
  repl      - key-by-key calculator shell on stdin
  selftest  - run the built-in worked examples`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runTests {
			return runSelftest(cmd.OutOrStdout())
		}
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml or .yaml)")
	rootCmd.Flags().BoolVar(&runTests, "test", false, "run the self-test battery and exit")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
