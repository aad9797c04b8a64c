package main

import (
	"path/filepath"

	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/config"
	"github.com/online-go/movereview/internal/loader"
	"github.com/online-go/movereview/internal/tui"
	"github.com/online-go/movereview/internal/tui/themes"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <review.json>",
		Short: "Explore a review interactively",
		Long: `Open an interactive table of move categories. Press m to switch between
the old and new methods, n to count score gains, and Tab to list black's or
white's moves in the selected category.`,
		Args: cobra.ExactArgs(1),
		RunE: runView,
	}

	addReviewFlags(cmd)
	cmd.Flags().Bool("follow", false, "reload the review when the file changes")
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")

	return cmd
}

func runView(cmd *cobra.Command, args []string) error {
	settings, err := reviewSettings(cmd)
	if err != nil {
		return err
	}
	follow, _ := cmd.Flags().GetBool("follow")
	themeName, _ := cmd.Flags().GetString("theme")

	file, err := loader.Load(args[0])
	if err != nil {
		return common.NewUserError("Could not read the review", err)
	}

	opts := []tui.Option{
		tui.WithTitle(filepath.Base(args[0])),
		tui.WithTheme(themes.GetTheme(themeName)),
	}
	if follow {
		opts = append(opts, tui.WithWatch(args[0], config.WatchDebounce()))
	}

	return tui.Run(cmd.Context(), reviewInput(file, settings), opts...)
}
