package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gregtam/rulefit-feature-generator/frame"
	"github.com/gregtam/rulefit-feature-generator/rules"
	"github.com/gregtam/rulefit-feature-generator/tree"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Extract rule features from a dataset and a fitted tree",
	Long: `Reads an all-numeric CSV dataset (header row = column names) and a YAML
decision tree (children_left / children_right / feature / threshold arrays),
extracts every qualifying path as a boolean rule, and writes the rules as 0/1
CSV columns. With --append the output carries the input columns followed by
the rule columns; otherwise it carries the rule columns alone.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dataPath, _ := cmd.Flags().GetString("data")
		treePath, _ := cmd.Flags().GetString("tree")
		outPath, _ := cmd.Flags().GetString("out")
		appendCols, _ := cmd.Flags().GetBool("append")

		return runGenerate(dataPath, treePath, outPath, appendCols)
	},
}

func runGenerate(dataPath, treePath, outPath string, appendCols bool) error {
	// 1. Load the dataset.
	dataFile, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer dataFile.Close()

	f, err := frame.ReadCSV(dataFile)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", dataPath, "rows", f.NumRows(), "cols", f.NumCols())

	// 2. Load the fitted tree.
	treeFile, err := os.Open(treePath)
	if err != nil {
		return fmt.Errorf("open tree: %w", err)
	}
	defer treeFile.Close()

	t, err := tree.Load(treeFile)
	if err != nil {
		return err
	}
	logger.Info("tree loaded", "path", treePath, "nodes", t.NumNodes())

	// 3. Extract rules.
	start := time.Now()
	rs, err := rules.Extract(t, f)
	if err != nil {
		return err
	}
	logger.Info("rules extracted", "count", rs.Len(), "elapsed", time.Since(start))
	for _, name := range rs.Names() {
		logger.Debug("rule", "name", name)
	}

	// 4. Assemble the output frame.
	var out *frame.Frame
	if appendCols {
		out, err = f.WithColumns(rs.FeatureColumns()...)
	} else {
		out, err = frame.New(rs.FeatureColumns()...)
	}
	if err != nil {
		return err
	}

	// 5. Write it.
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outFile.Close()

	if err := frame.WriteCSV(outFile, out); err != nil {
		return err
	}
	logger.Info("features written", "path", outPath, "cols", out.NumCols())

	return nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("data", "", "Path to the CSV dataset (required)")
	generateCmd.Flags().String("tree", "", "Path to the YAML tree (required)")
	generateCmd.Flags().StringP("out", "o", "rules.csv", "Path for the output CSV")
	generateCmd.Flags().Bool("append", false, "Append rule columns to the input columns")

	_ = generateCmd.MarkFlagRequired("data")
	_ = generateCmd.MarkFlagRequired("tree")
}
