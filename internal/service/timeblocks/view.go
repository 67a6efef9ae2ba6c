package timeblocks

import (
	"context"
	"fmt"
	"io"
	"time"

	"planner/backend/internal/calendar"
	"planner/backend/internal/domain"
	"planner/backend/internal/export/ics"
	"planner/backend/internal/perf"
	"planner/backend/internal/viewcache"
)

// GetCalendarView returns the first page of the owner's view around ref.
// Results are served from the view cache when fresh. The returned value is
// shared with the cache and must not be mutated.
func (s *Service) GetCalendarView(ctx context.Context, ownerID string, view calendar.ViewKind, ref time.Time) (calendar.ViewResult, error) {
	defer s.measure(OpCalendarView)()

	if ownerID == "" {
		return calendar.ViewResult{}, validationError("owner_id is required")
	}
	if !view.Valid() {
		return calendar.ViewResult{}, &calendar.UnsupportedViewError{View: view}
	}
	if ref.IsZero() {
		return calendar.ViewResult{}, validationError("reference date is required")
	}

	key := viewcache.Key{Owner: ownerID, View: string(view), Day: viewcache.DayKey(calendar.Midnight(ref))}
	if res, ok := s.cache.Get(key); ok {
		s.log.DebugContext(ctx, "calendar view cache hit", "owner_id", ownerID, "view", view, "day", key.Day)
		return res, nil
	}

	gen := s.cache.Generation(ownerID)
	flight := fmt.Sprintf("%s\x00%s\x00%s\x00%d", ownerID, view, key.Day, gen)
	v, err, shared := s.flights.Do(flight, func() (any, error) {
		res, err := s.computeView(context.WithoutCancel(ctx), ownerID, view, ref, 1)
		if err != nil {
			return nil, err
		}
		if !s.cache.PutIfCurrent(key, res, gen) {
			s.log.DebugContext(ctx, "calendar view not cached, owner changed during build", "owner_id", ownerID, "view", view)
		}
		return res, nil
	})
	if err != nil {
		return calendar.ViewResult{}, err
	}
	if shared {
		s.log.DebugContext(ctx, "calendar view build shared", "owner_id", ownerID, "view", view, "day", key.Day)
	}
	return v.(calendar.ViewResult), nil
}

// GetCalendarViewPage returns one page of a virtualized view. Page 1 is the
// cached GetCalendarView result; later pages are computed on demand.
func (s *Service) GetCalendarViewPage(ctx context.Context, ownerID string, view calendar.ViewKind, ref time.Time, page int) (calendar.ViewResult, error) {
	if page <= 1 {
		return s.GetCalendarView(ctx, ownerID, view, ref)
	}

	defer s.measure(OpCalendarView)()
	if ownerID == "" {
		return calendar.ViewResult{}, validationError("owner_id is required")
	}
	if !view.Valid() {
		return calendar.ViewResult{}, &calendar.UnsupportedViewError{View: view}
	}
	if ref.IsZero() {
		return calendar.ViewResult{}, validationError("reference date is required")
	}
	return s.computeView(ctx, ownerID, view, ref, page)
}

func (s *Service) computeView(ctx context.Context, ownerID string, view calendar.ViewKind, ref time.Time, page int) (calendar.ViewResult, error) {
	w, err := s.calc.Resolve(view, ref)
	if err != nil {
		return calendar.ViewResult{}, err
	}

	blocks, err := s.repo.FindOverlapping(ctx, ownerID, w.Start.UTC(), w.End.UTC())
	if err != nil {
		return calendar.ViewResult{}, err
	}

	res := calendar.ViewResult{
		View:      view,
		Reference: calendar.Midnight(ref),
		Window:    w,
		Total:     len(blocks),
	}
	if len(blocks) > s.settings.VirtualThreshold {
		p := calendar.Paginate(blocks, page, s.settings.PageSize)
		blocks = p.Items
		info := p.PageInfo
		res.Page = &info
		s.log.DebugContext(ctx, "calendar view virtualized",
			"owner_id", ownerID,
			"view", view,
			"total", info.Total,
			"page", info.Page,
			"total_pages", info.TotalPages,
		)
	}

	res.Blocks, err = s.engine.Aggregate(blocks, view, w)
	if err != nil {
		return calendar.ViewResult{}, err
	}
	return res, nil
}

type RenderInput struct {
	OwnerID   string
	View      calendar.ViewKind
	Reference time.Time
	Page      int
	// Zoom is the client zoom factor; zero means fully zoomed in.
	Zoom   float64
	Mobile bool
}

// RenderedView is a calendar view passed through the detail-level reducer.
type RenderedView struct {
	calendar.ViewResult
	Entries []calendar.Entry
}

func (s *Service) RenderCalendarView(ctx context.Context, in RenderInput) (RenderedView, error) {
	defer s.measure(OpRenderView)()

	if in.Zoom < 0 {
		return RenderedView{}, validationError("zoom must not be negative")
	}
	res, err := s.GetCalendarViewPage(ctx, in.OwnerID, in.View, in.Reference, in.Page)
	if err != nil {
		return RenderedView{}, err
	}

	var entries []calendar.Entry
	switch {
	case in.Mobile:
		entries = s.reducer.ReduceForMobile(res.Blocks, res.View)
	case in.Zoom > 0:
		entries = s.reducer.ReduceForZoom(res.Blocks, res.View, in.Zoom)
	default:
		entries = s.reducer.ReduceForZoom(res.Blocks, res.View, 1)
	}
	return RenderedView{ViewResult: res, Entries: entries}, nil
}

// List returns one page of all the owner's blocks after search and sort.
func (s *Service) List(ctx context.Context, ownerID string, q calendar.PageQuery) (calendar.Page[domain.TimeBlock], error) {
	defer s.measure(OpList)()

	if ownerID == "" {
		return calendar.Page[domain.TimeBlock]{}, validationError("owner_id is required")
	}
	if q.PageSize > 500 {
		return calendar.Page[domain.TimeBlock]{}, validationError("page_size must be at most 500")
	}
	if q.PageSize <= 0 {
		q.PageSize = s.settings.PageSize
	}

	blocks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return calendar.Page[domain.TimeBlock]{}, err
	}
	return calendar.Query(blocks, q), nil
}

// ExportICS writes every block of the view window, unpaginated, as iCalendar.
func (s *Service) ExportICS(ctx context.Context, ownerID string, view calendar.ViewKind, ref time.Time, w io.Writer) (int, error) {
	defer s.measure(OpExport)()

	if ownerID == "" {
		return 0, validationError("owner_id is required")
	}
	if ref.IsZero() {
		return 0, validationError("reference date is required")
	}
	win, err := s.calc.Resolve(view, ref)
	if err != nil {
		return 0, err
	}
	blocks, err := s.repo.FindOverlapping(ctx, ownerID, win.Start.UTC(), win.End.UTC())
	if err != nil {
		return 0, err
	}
	if err := ics.Write(w, s.settings.ICSProductID, blocks, s.clock.Now()); err != nil {
		return 0, err
	}
	return len(blocks), nil
}

type OperationMetrics struct {
	Operation string
	perf.Stats
}

type MetricsReport struct {
	Operations []OperationMetrics
	Memory     perf.MemoryStats
}

func (s *Service) Metrics() MetricsReport {
	ops := s.perf.Operations()
	report := MetricsReport{
		Operations: make([]OperationMetrics, 0, len(ops)),
		Memory:     s.perf.Memory(),
	}
	for _, op := range ops {
		if st, ok := s.perf.Metrics(op); ok {
			report.Operations = append(report.Operations, OperationMetrics{Operation: op, Stats: st})
		}
	}
	return report
}
