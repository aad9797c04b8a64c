package main

import (
	"context"
	"fmt"

	"github.com/online-go/movereview/internal/cli"
	"github.com/online-go/movereview/internal/config"
	"github.com/online-go/movereview/internal/model"
	"github.com/online-go/movereview/internal/review"
	"github.com/online-go/movereview/internal/service"
	"github.com/online-go/movereview/internal/storage"
	"github.com/spf13/cobra"
)

// initStorage opens the review cache and brings its schema up to date.
func initStorage(ctx context.Context) (service.ReviewStore, error) {
	store, err := storage.Open(ctx, config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open review cache: %w", err)
	}
	return store, nil
}

// addReviewFlags registers the flags that override review settings.
func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().String("method", "", "full review method (old, new)")
	cmd.Flags().Bool("include-negative", false, "count score gains as negative losses (new method)")
	cmd.Flags().String("engine", "", "engine name reviews must come from")
	cmd.Flags().Float64("excellent", 0, "excellent threshold")
	cmd.Flags().Float64("great", 0, "great threshold")
	cmd.Flags().Float64("good", 0, "good threshold")
	cmd.Flags().Float64("inaccuracy", 0, "inaccuracy threshold")
	cmd.Flags().Float64("mistake", 0, "mistake threshold")
}

// addFormatFlags registers the output format flags.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "text", "output format (text, json)")
	cmd.Flags().Bool("moves", false, "list move numbers for each category")
}

// reviewSettings loads configured settings and applies command-line overrides.
func reviewSettings(cmd *cobra.Command) (config.ReviewSettings, error) {
	settings, err := config.LoadReviewSettings()
	if err != nil {
		return config.ReviewSettings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		value, _ := flags.GetString("method")
		method, ok := model.ParseMethod(value)
		if !ok {
			return config.ReviewSettings{}, fmt.Errorf("unknown method %q (want old or new)", value)
		}
		settings.Method = method
	}
	if flags.Changed("include-negative") {
		settings.IncludeNegativeScores, _ = flags.GetBool("include-negative")
	}
	if flags.Changed("engine") {
		settings.Engine, _ = flags.GetString("engine")
	}

	for name, bound := range map[string]*float64{
		"excellent":  &settings.Thresholds.Excellent,
		"great":      &settings.Thresholds.Great,
		"good":       &settings.Thresholds.Good,
		"inaccuracy": &settings.Thresholds.Inaccuracy,
		"mistake":    &settings.Thresholds.Mistake,
	} {
		if flags.Changed(name) {
			*bound, _ = flags.GetFloat64(name)
		}
	}
	if err := config.ValidateThresholds(settings.Thresholds); err != nil {
		return config.ReviewSettings{}, err
	}

	return settings, nil
}

// renderOptions reads the output format flags.
func renderOptions(cmd *cobra.Command, title string) (cli.RenderOptions, error) {
	value, _ := cmd.Flags().GetString("format")
	format, err := cli.ParseFormat(value)
	if err != nil {
		return cli.RenderOptions{}, err
	}
	showMoves, _ := cmd.Flags().GetBool("moves")
	return cli.RenderOptions{Title: title, Format: format, ShowMoves: showMoves}, nil
}

// reviewInput combines a review file with the active settings.
func reviewInput(file *model.ReviewFile, settings config.ReviewSettings) review.Input {
	thresholds := settings.Thresholds
	return review.Input{
		Thresholds:            &thresholds,
		Game:                  file.Game,
		Engine:                settings.Engine,
		Method:                settings.Method,
		Record:                file.Review,
		IncludeNegativeScores: settings.IncludeNegativeScores,
	}
}
