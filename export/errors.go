package export

import (
	"fmt"

	"deckforge/deck"
)

// RenderError reports a failure while rendering a document, carrying the
// 1-based index of the offending slide for diagnosability.
type RenderError struct {
	SlideIndex int
	Err        error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed at slide %d: %v", e.SlideIndex, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ChartError reports chart data whose shape does not match the requested
// kind (e.g. a 2x2 matrix with fewer than four points).
type ChartError struct {
	Kind   deck.ChartKind
	Points int
	Reason string
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart %s with %d points: %s", e.Kind, e.Points, e.Reason)
}
