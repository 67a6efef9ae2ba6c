package calendar

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"planner/backend/internal/domain"
)

const (
	DefaultPageSize         = 50
	DefaultVirtualThreshold = 100
)

type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type Page[T any] struct {
	Items []T
	PageInfo
}

// Paginate returns one page of items. A page past the end is clamped to the
// last page, or to 1 when there are no items.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = max(totalPages, 1)
	}

	from := min((page-1)*pageSize, total)
	to := min(from+pageSize, total)

	return Page[T]{
		Items: items[from:to:to],
		PageInfo: PageInfo{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

type SortKey string

const (
	SortNone      SortKey = ""
	SortTitle     SortKey = "title"
	SortStartTime SortKey = "startTime"
	SortEndTime   SortKey = "endTime"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortKey accepts the sort keys in any case, and start_time/end_time as
// aliases of the camel-case keys.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SortNone, nil
	case "title":
		return SortTitle, nil
	case "starttime", "start_time":
		return SortStartTime, nil
	case "endtime", "end_time":
		return SortEndTime, nil
	}
	return SortNone, fmt.Errorf("unknown sort key %q", s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	}
	return OrderAsc, fmt.Errorf("unknown sort order %q", s)
}

type PageQuery struct {
	Page     int
	PageSize int
	// Search is matched case-insensitively as a substring of title or description.
	Search string
	SortBy SortKey
	Order  SortOrder
}

// Query filters, sorts and then paginates blocks. The input slice is not modified.
func Query(blocks []domain.TimeBlock, q PageQuery) Page[domain.TimeBlock] {
	out := filterBlocks(blocks, q.Search)
	sortBlocks(out, q.SortBy, q.Order)
	return Paginate(out, q.Page, q.PageSize)
}

func filterBlocks(blocks []domain.TimeBlock, search string) []domain.TimeBlock {
	search = strings.TrimSpace(search)
	if search == "" {
		return slices.Clone(blocks)
	}

	fold := cases.Fold()
	needle := fold.String(search)
	out := make([]domain.TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		if strings.Contains(fold.String(b.Title), needle) || strings.Contains(fold.String(b.Description), needle) {
			out = append(out, b)
		}
	}
	return out
}

func sortBlocks(blocks []domain.TimeBlock, key SortKey, order SortOrder) {
	var compare func(a, b domain.TimeBlock) int
	switch key {
	case SortTitle:
		compare = func(a, b domain.TimeBlock) int { return cmp.Compare(a.Title, b.Title) }
	case SortStartTime:
		compare = func(a, b domain.TimeBlock) int { return a.StartTime.Compare(b.StartTime) }
	case SortEndTime:
		compare = func(a, b domain.TimeBlock) int { return a.EndTime.Compare(b.EndTime) }
	default:
		return
	}
	if order == OrderDesc {
		asc := compare
		compare = func(a, b domain.TimeBlock) int { return asc(b, a) }
	}
	slices.SortStableFunc(blocks, compare)
}
