package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// logger is shared by all subcommands; level is set by --log-level.
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

var rootCmd = &cobra.Command{
	Use:   "rulegen",
	Short: "Generate rule features from a fitted decision tree",
	Long: `rulegen converts a fitted binary decision tree into named boolean rule
features over a tabular dataset, for use in RuleFit-style rule-ensemble
models. Each root-to-node path of two or more splits becomes one conjunctive
predicate, e.g. "age > 35.5 & income <= 42000".`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := charmlog.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logger.SetLevel(level)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("rulegen failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
