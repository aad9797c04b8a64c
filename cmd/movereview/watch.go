package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/config"
	"github.com/online-go/movereview/internal/review"
	"github.com/online-go/movereview/internal/watch"
	"github.com/spf13/cobra"
)

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <review.json>",
		Short: "Re-print the table whenever a review file changes",
		Long: `Watch a review file that an engine is still writing to and print a fresh
category table each time it settles.`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}

	addReviewFlags(cmd)
	addFormatFlags(cmd)

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	settings, err := reviewSettings(cmd)
	if err != nil {
		return err
	}
	opts, err := renderOptions(cmd, filepath.Base(args[0]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var mu sync.Mutex
	onUpdate := func(u watch.Update) {
		mu.Lock()
		defer mu.Unlock()

		if u.Err != nil {
			fmt.Fprintln(out, cli.FormatWarning(u.Err.Error()))
			return
		}
		table := review.BuildTable(reviewInput(u.File, settings))
		if err := cli.RenderTable(out, table, opts); err != nil {
			fmt.Fprintln(out, cli.FormatError(err.Error()))
		}
	}

	w, err := watch.NewFileWatcher(args[0], config.WatchDebounce(), onUpdate)
	if err != nil {
		return err
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context(), "Watch")
	defer interrupts.Stop()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
