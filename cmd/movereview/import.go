package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/common"
	"github.com/online-go/movereview/internal/loader"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <review.json>...",
		Short: "Store review files in the local cache",
		Long: `Import review files into the local review cache so they can be listed and
re-categorized later. The game ID defaults to the file name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("game-id", "", "game ID to record (single file only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	gameID, _ := cmd.Flags().GetString("game-id")
	if gameID != "" && len(args) > 1 {
		return fmt.Errorf("--game-id can only be used with a single file")
	}

	ctx := cmd.Context()
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	for _, path := range args {
		file, err := loader.Load(path)
		if err != nil {
			return common.NewUserError("Could not read the review", err)
		}

		id := gameID
		if id == "" {
			id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		reviewID, err := store.SaveReview(ctx, id, file)
		if err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}

		common.LogInfo("Imported review", common.Fields{"path": path, "id": reviewID, "game_id": id})
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %s as %s", filepath.Base(path), reviewID)))
	}

	return nil
}
