package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/loader"
	"github.com/online-go/movereview/internal/review"
	"github.com/online-go/movereview/internal/service"
	"github.com/spf13/cobra"
)

// batchResult is one line of the batch summary.
type batchResult struct {
	err   error
	name  string
	table review.Table
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Categorize every review file in a directory",
		Long: `Categorize every *.json review file in a directory and print one summary
line per game. With --save the reviews are also imported into the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	addReviewFlags(cmd)
	cmd.Flags().Bool("save", false, "import each valid review into the cache")
	cmd.Flags().Bool("no-progress", false, "hide the progress bar")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	settings, err := reviewSettings(cmd)
	if err != nil {
		return err
	}
	save, _ := cmd.Flags().GetBool("save")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	entries, err := loader.LoadDir(args[0])
	if err != nil {
		return common.NewUserError("Nothing to categorize", err)
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Batch")
	defer interrupts.Stop()

	var store service.ReviewStore
	if save {
		store, err = initStorage(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	var progress *cli.Progress
	if !noProgress {
		progress = cli.NewProgress(cmd.ErrOrStderr(), len(entries), "Categorizing reviews...")
	}

	results := make([]batchResult, 0, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		result := batchResult{name: entry.Name(), err: entry.Err}
		if entry.Err == nil {
			result.table = review.BuildTable(reviewInput(entry.File, settings))
			if store != nil {
				if _, err := store.SaveReview(ctx, entry.Name(), entry.File); err != nil {
					common.LogError(err, "Failed to save review", common.Fields{"path": entry.Path})
				}
			}
		}
		results = append(results, result)

		if progress != nil {
			progress.Step()
		}
	}

	writeBatchSummary(cmd, results)

	if interrupts.WasInterrupted() {
		return ctx.Err()
	}
	return nil
}

func writeBatchSummary(cmd *cobra.Command, results []batchResult) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.BoldStyle.Render("Game"),
		cli.BoldStyle.Render("Black avg"),
		cli.BoldStyle.Render("White avg"),
		cli.BoldStyle.Render("Black median"),
		cli.BoldStyle.Render("White median"))

	for _, r := range results {
		switch {
		case r.err != nil:
			fmt.Fprintf(w, "%s\t%s\n", r.name, cli.ErrorStyle.Render(r.err.Error()))
		case len(r.table.Rows) == 0:
			fmt.Fprintf(w, "%s\t%s\n", r.name, cli.SubtleStyle.Render("not categorized"))
		default:
			fmt.Fprintf(w, "%s\t%.1f\t%.1f\t%.1f\t%.1f\n", r.name,
				r.table.AverageScoreLoss.Black, r.table.AverageScoreLoss.White,
				r.table.MedianScoreLoss.Black, r.table.MedianScoreLoss.White)
		}
	}
}
