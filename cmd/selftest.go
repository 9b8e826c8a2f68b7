package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"fxba/selftest"
)

var errSelftestFailed = errors.New("self-test failed")

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in worked examples",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelftest(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(w io.Writer) error {
	report := selftest.Run(selftest.Scenarios())
	if err := report.Write(w); err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%w: %d of %d scenarios", errSelftestFailed, report.Failed, len(report.Outcomes))
	}
	return nil
}
