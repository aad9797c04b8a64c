package tui

import "github.com/online-go/movereview/internal/model"

// ReviewLoadedMsg replaces the review being shown, typically after the
// engine wrote more results to the file.
type ReviewLoadedMsg struct {
	File *model.ReviewFile
	Err  error
}
