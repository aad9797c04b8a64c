package main

import (
	"path/filepath"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/loader"
	"github.com/online-go/movereview/internal/review"
	"github.com/spf13/cobra"
)

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize <review.json>",
		Short: "Print the move category table for a review file",
		Long: `Categorize every move of a reviewed game and print how many moves each
player made in each category, with average and median score loss.`,
		Args: cobra.ExactArgs(1),
		RunE: runCategorize,
	}

	addReviewFlags(cmd)
	addFormatFlags(cmd)

	return cmd
}

func runCategorize(cmd *cobra.Command, args []string) error {
	settings, err := reviewSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := renderOptions(cmd, filepath.Base(args[0]))
	if err != nil {
		return err
	}

	file, err := loader.Load(args[0])
	if err != nil {
		return common.NewUserError("Could not read the review", err)
	}

	table := review.BuildTable(reviewInput(file, settings))
	return cli.RenderTable(cmd.OutOrStdout(), table, opts)
}
