package app

import "rf-heatmap.klederson.com/internal/coverage"

// RunCompletedMsg carries the result of a finished coverage run.
type RunCompletedMsg struct {
	Result *coverage.Result
}

// RunFailedMsg reports a coverage run failure.
type RunFailedMsg struct {
	Err error
}
