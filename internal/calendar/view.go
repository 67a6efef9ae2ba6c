package calendar

import "time"

// ViewResult is a computed calendar view. It is derived data: cached, never persisted.
type ViewResult struct {
	View      ViewKind
	Reference time.Time
	Window    Window
	Blocks    []ViewBlock
	// Total counts blocks in the window before pagination.
	Total int
	// Page is set when the result was bounded by the virtual paginator.
	Page *PageInfo
}

// Truncated reports whether Blocks holds fewer than Total blocks.
func (r ViewResult) Truncated() bool {
	return r.Page != nil && r.Page.TotalPages > 1
}
