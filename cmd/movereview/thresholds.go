package main

import (
	"encoding/json"
	"fmt"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/model"
	"github.com/spf13/cobra"
)

func thresholdsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thresholds",
		Short: "Print the effective score-loss thresholds",
		Long: `Print the thresholds in effect after applying the config file, environment
and flags. A move qualifies for a category when its loss is below the bound.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := reviewSettings(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(settings.Thresholds)
			}

			for _, c := range model.FullCategories {
				bound, ok := settings.Thresholds.Bound(c)
				label := cli.CategoryStyle(c).Render(fmt.Sprintf("%-12s", c))
				if !ok {
					fmt.Fprintf(out, "%s%s\n", label, cli.SubtleStyle.Render("everything else"))
					continue
				}
				fmt.Fprintf(out, "%s< %.2f\n", label, bound)
			}
			if !settings.Thresholds.IsMonotonic() {
				fmt.Fprintln(out, cli.FormatWarning("Thresholds do not increase; some categories can never be reached."))
			}
			return nil
		},
	}

	addReviewFlags(cmd)
	cmd.Flags().Bool("json", false, "print as JSON")

	return cmd
}
