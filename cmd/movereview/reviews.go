package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/review"
	"github.com/spf13/cobra"
)

func reviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Manage cached reviews",
		Long:  `List, show, and delete reviews stored in the local review cache.`,
	}

	cmd.AddCommand(listReviewsCmd())
	cmd.AddCommand(showReviewCmd())
	cmd.AddCommand(deleteReviewCmd())

	return cmd
}

func listReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summaries, err := store.ListReviews(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(summaries) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No reviews found. Use 'movereview import' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Game"),
				cli.BoldStyle.Render("Engine"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Moves"),
				cli.BoldStyle.Render("Imported"))

			for _, s := range summaries {
				moves := fmt.Sprintf("%d", s.PlyCount)
				if s.Uploaded {
					moves = cli.SubtleStyle.Render("uploaded")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.GameID, s.Engine, s.Kind, moves,
					s.ImportedAt.Local().Format("2006-01-02 15:04"))
			}

			return nil
		},
	}
}

func showReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Categorize a cached review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := reviewSettings(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stored, err := store.GetReview(ctx, args[0])
			if err != nil {
				return err
			}

			opts, err := renderOptions(cmd, stored.GameID)
			if err != nil {
				return err
			}

			table := review.BuildTable(reviewInput(stored.File, settings))
			return cli.RenderTable(cmd.OutOrStdout(), table, opts)
		},
	}

	addReviewFlags(cmd)
	addFormatFlags(cmd)

	return cmd
}

func deleteReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a cached review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteReview(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Deleted review "+args[0]))
			return nil
		},
	}
}
