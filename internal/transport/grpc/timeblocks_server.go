package grpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"planner/backend/internal/calendar"
	"planner/backend/internal/domain"
	plannerv1 "planner/backend/internal/gen/proto/planner/v1"
	"planner/backend/internal/service/timeblocks"
	"planner/backend/internal/store"
)

const conflictReason = "TIME_BLOCK_CONFLICT"

// Kinds of a rendered view entry; the kind selects which of block, mobile and
// summary is set.
const (
	EntryKindBlock   = "block"
	EntryKindMobile  = "mobile"
	EntryKindSummary = "summary"
)

type TimeBlocksServer struct {
	plannerv1.UnimplementedTimeBlocksServiceServer

	svc timeBlocksService
	log *slog.Logger
}

type timeBlocksService interface {
	Create(ctx context.Context, in timeblocks.CreateInput) (domain.TimeBlock, error)
	Update(ctx context.Context, in timeblocks.UpdateInput) (domain.TimeBlock, error)
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
	Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error)
	FindConflicts(ctx context.Context, ownerID string, start, end time.Time, exclude uuid.UUID) ([]domain.TimeBlock, error)
	RenderCalendarView(ctx context.Context, in timeblocks.RenderInput) (timeblocks.RenderedView, error)
	List(ctx context.Context, ownerID string, q calendar.PageQuery) (calendar.Page[domain.TimeBlock], error)
	ExportICS(ctx context.Context, ownerID string, view calendar.ViewKind, ref time.Time, w io.Writer) (int, error)
	Metrics() timeblocks.MetricsReport
}

func NewTimeBlocksServer(svc timeBlocksService, log *slog.Logger) *TimeBlocksServer {
	if log == nil {
		log = slog.Default()
	}
	return &TimeBlocksServer{
		svc: svc,
		log: log.With(slog.String("component", "grpc.timeblocks")),
	}
}

func (s *TimeBlocksServer) CreateTimeBlock(ctx context.Context, req *plannerv1.CreateTimeBlockRequest) (*plannerv1.CreateTimeBlockResponse, error) {
	log := s.log.With(slog.String("rpc", "CreateTimeBlock"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	fields, err := toBlockFields(req.Fields)
	if err != nil {
		log.Warn("invalid request", slog.Any("err", err), slog.String("owner_id", req.OwnerId))
		return nil, err
	}

	block, err := s.svc.Create(ctx, timeblocks.CreateInput{OwnerID: req.OwnerId, BlockFields: fields})
	if err != nil {
		return nil, s.statusError(log, "time block create", err, slog.String("owner_id", req.OwnerId))
	}

	log.Info(
		"time block created",
		slog.String("block_id", block.ID.String()),
		slog.String("owner_id", block.OwnerID),
		slog.Time("start_time", block.StartTime),
		slog.Time("end_time", block.EndTime),
	)
	return &plannerv1.CreateTimeBlockResponse{Block: toProtoBlock(block)}, nil
}

func (s *TimeBlocksServer) UpdateTimeBlock(ctx context.Context, req *plannerv1.UpdateTimeBlockRequest) (*plannerv1.UpdateTimeBlockResponse, error) {
	log := s.log.With(slog.String("rpc", "UpdateTimeBlock"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.Id)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("owner_id", req.OwnerId))
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}
	fields, err := toBlockFields(req.Fields)
	if err != nil {
		log.Warn("invalid request", slog.Any("err", err), slog.String("owner_id", req.OwnerId))
		return nil, err
	}

	block, err := s.svc.Update(ctx, timeblocks.UpdateInput{
		OwnerID:         req.OwnerId,
		ID:              id,
		ExpectedVersion: req.ExpectedVersion,
		BlockFields:     fields,
	})
	if err != nil {
		return nil, s.statusError(log, "time block update", err, slog.String("block_id", id.String()), slog.String("owner_id", req.OwnerId))
	}

	log.Info("time block updated", slog.String("block_id", block.ID.String()), slog.String("owner_id", block.OwnerID), slog.Int64("version", block.Version))
	return &plannerv1.UpdateTimeBlockResponse{Block: toProtoBlock(block)}, nil
}

func (s *TimeBlocksServer) DeleteTimeBlock(ctx context.Context, req *plannerv1.DeleteTimeBlockRequest) (*plannerv1.DeleteTimeBlockResponse, error) {
	log := s.log.With(slog.String("rpc", "DeleteTimeBlock"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.Id)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("owner_id", req.OwnerId))
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	if err := s.svc.Delete(ctx, req.OwnerId, id); err != nil {
		return nil, s.statusError(log, "time block delete", err, slog.String("block_id", id.String()), slog.String("owner_id", req.OwnerId))
	}

	log.Info("time block deleted", slog.String("block_id", id.String()), slog.String("owner_id", req.OwnerId))
	return &plannerv1.DeleteTimeBlockResponse{}, nil
}

func (s *TimeBlocksServer) GetTimeBlock(ctx context.Context, req *plannerv1.GetTimeBlockRequest) (*plannerv1.GetTimeBlockResponse, error) {
	log := s.log.With(slog.String("rpc", "GetTimeBlock"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := uuid.Parse(req.Id)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("owner_id", req.OwnerId))
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	block, err := s.svc.Get(ctx, req.OwnerId, id)
	if err != nil {
		return nil, s.statusError(log, "time block get", err, slog.String("block_id", id.String()), slog.String("owner_id", req.OwnerId))
	}
	return &plannerv1.GetTimeBlockResponse{Block: toProtoBlock(block)}, nil
}

func (s *TimeBlocksServer) FindConflicts(ctx context.Context, req *plannerv1.FindConflictsRequest) (*plannerv1.FindConflictsResponse, error) {
	log := s.log.With(slog.String("rpc", "FindConflicts"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.StartTime == nil || req.EndTime == nil {
		log.Warn("invalid request", slog.String("reason", "missing_times"), slog.String("owner_id", req.OwnerId))
		return nil, status.Error(codes.InvalidArgument, "start_time and end_time are required")
	}
	exclude := uuid.Nil
	if req.ExcludeId != "" {
		id, err := uuid.Parse(req.ExcludeId)
		if err != nil {
			log.Warn("invalid request", slog.String("reason", "invalid_uuid"), slog.String("owner_id", req.OwnerId))
			return nil, status.Error(codes.InvalidArgument, "exclude_id must be a UUID")
		}
		exclude = id
	}

	conflicts, err := s.svc.FindConflicts(ctx, req.OwnerId, req.StartTime.AsTime(), req.EndTime.AsTime(), exclude)
	if err != nil {
		return nil, s.statusError(log, "conflict lookup", err, slog.String("owner_id", req.OwnerId))
	}

	log.Debug("conflicts found", slog.String("owner_id", req.OwnerId), slog.Int("count", len(conflicts)))
	return &plannerv1.FindConflictsResponse{Conflicts: toProtoBlocks(conflicts)}, nil
}

func (s *TimeBlocksServer) GetCalendarView(ctx context.Context, req *plannerv1.GetCalendarViewRequest) (*plannerv1.GetCalendarViewResponse, error) {
	log := s.log.With(slog.String("rpc", "GetCalendarView"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	view, err := calendar.ParseViewKind(req.View)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "unsupported_view"), slog.String("view", req.View))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ref, err := referenceTime(req.Reference, req.TimeZone)
	if err != nil {
		log.Warn("invalid request", slog.Any("err", err), slog.String("owner_id", req.OwnerId))
		return nil, err
	}

	out, err := s.svc.RenderCalendarView(ctx, timeblocks.RenderInput{
		OwnerID:   req.OwnerId,
		View:      view,
		Reference: ref,
		Page:      int(req.Page),
		Zoom:      req.Zoom,
		Mobile:    req.Mobile,
	})
	if err != nil {
		return nil, s.statusError(log, "calendar view", err, slog.String("owner_id", req.OwnerId), slog.String("view", req.View))
	}

	entries := make([]*plannerv1.ViewEntry, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, toProtoEntry(e))
	}

	log.Debug(
		"calendar view served",
		slog.String("owner_id", req.OwnerId),
		slog.String("view", req.View),
		slog.Int("entries", len(entries)),
		slog.Int("total", out.Total),
	)
	return &plannerv1.GetCalendarViewResponse{
		View:        string(out.View),
		WindowStart: timestamppb.New(out.Window.Start),
		WindowEnd:   timestamppb.New(out.Window.End),
		Total:       int32(out.Total),
		Page:        toProtoPageInfo(out.Page),
		Entries:     entries,
	}, nil
}

func (s *TimeBlocksServer) ListTimeBlocks(ctx context.Context, req *plannerv1.ListTimeBlocksRequest) (*plannerv1.ListTimeBlocksResponse, error) {
	log := s.log.With(slog.String("rpc", "ListTimeBlocks"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	sortBy, err := calendar.ParseSortKey(req.SortBy)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "sort_by"), slog.String("owner_id", req.OwnerId))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	order, err := calendar.ParseSortOrder(req.Order)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "order"), slog.String("owner_id", req.OwnerId))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	page, err := s.svc.List(ctx, req.OwnerId, calendar.PageQuery{
		Page:     int(req.Page),
		PageSize: int(req.PageSize),
		Search:   req.Search,
		SortBy:   sortBy,
		Order:    order,
	})
	if err != nil {
		return nil, s.statusError(log, "time blocks list", err, slog.String("owner_id", req.OwnerId))
	}

	log.Debug("time blocks listed", slog.String("owner_id", req.OwnerId), slog.Int("count", len(page.Items)), slog.Int("total", page.Total))
	return &plannerv1.ListTimeBlocksResponse{Blocks: toProtoBlocks(page.Items), Page: toProtoPageInfo(&page.PageInfo)}, nil
}

func (s *TimeBlocksServer) ExportCalendar(ctx context.Context, req *plannerv1.ExportCalendarRequest) (*plannerv1.ExportCalendarResponse, error) {
	log := s.log.With(slog.String("rpc", "ExportCalendar"))

	if req == nil {
		log.Warn("invalid request", slog.String("reason", "nil_request"))
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	view, err := calendar.ParseViewKind(req.View)
	if err != nil {
		log.Warn("invalid request", slog.String("reason", "unsupported_view"), slog.String("view", req.View))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ref, err := referenceTime(req.Reference, req.TimeZone)
	if err != nil {
		log.Warn("invalid request", slog.Any("err", err), slog.String("owner_id", req.OwnerId))
		return nil, err
	}

	var buf bytes.Buffer
	n, err := s.svc.ExportICS(ctx, req.OwnerId, view, ref, &buf)
	if err != nil {
		return nil, s.statusError(log, "calendar export", err, slog.String("owner_id", req.OwnerId))
	}

	log.Info("calendar exported", slog.String("owner_id", req.OwnerId), slog.String("view", req.View), slog.Int("count", n))
	return &plannerv1.ExportCalendarResponse{Calendar: buf.String(), Count: int32(n)}, nil
}

func (s *TimeBlocksServer) GetMetrics(ctx context.Context, req *plannerv1.GetMetricsRequest) (*plannerv1.GetMetricsResponse, error) {
	report := s.svc.Metrics()

	ops := make([]*plannerv1.OperationStats, 0, len(report.Operations))
	for _, op := range report.Operations {
		ops = append(ops, &plannerv1.OperationStats{
			Operation: op.Operation,
			Count:     int32(op.Count),
			MinMs:     op.Min,
			MaxMs:     op.Max,
			AverageMs: op.Average,
		})
	}
	return &plannerv1.GetMetricsResponse{
		Operations: ops,
		Memory: &plannerv1.MemoryStats{
			HeapUsed:  report.Memory.HeapUsed,
			HeapTotal: report.Memory.HeapTotal,
			Rss:       report.Memory.RSS,
			External:  report.Memory.External,
		},
	}, nil
}

// statusError maps service and store errors onto gRPC codes and logs them at
// the level their cause deserves.
func (s *TimeBlocksServer) statusError(log *slog.Logger, action string, err error, attrs ...any) error {
	var (
		vErr *timeblocks.ValidationError
		cErr *timeblocks.ConflictError
		uErr *calendar.UnsupportedViewError
	)
	switch {
	case errors.As(err, &vErr):
		log.Warn("invalid request", append(attrs, slog.Any("err", err))...)
		return status.Error(codes.InvalidArgument, vErr.Error())
	case errors.As(err, &uErr):
		log.Warn("invalid request", append(attrs, slog.Any("err", err))...)
		return status.Error(codes.InvalidArgument, uErr.Error())
	case errors.As(err, &cErr):
		log.Info(action+" conflict", append(attrs, slog.Int("conflicts", len(cErr.Conflicts)))...)
		return conflictStatus(cErr.Conflicts)
	case errors.Is(err, store.ErrConflict):
		log.Info(action+" conflict", attrs...)
		return conflictStatus(nil)
	case errors.Is(err, store.ErrNotFound):
		log.Info("time block not found", attrs...)
		return status.Error(codes.NotFound, "time block not found")
	case errors.Is(err, store.ErrVersionConflict):
		log.Info(action+" version conflict", attrs...)
		return status.Error(codes.Aborted, "The time block was changed by someone else. Reload it and try again.")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn(action+" timed out", attrs...)
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		log.Info(action+" canceled", attrs...)
		return status.Error(codes.Canceled, "request canceled")
	}
	log.Error(action+" failed", append(attrs, slog.Any("err", err))...)
	return status.Error(codes.Internal, "internal error")
}

// conflictStatus carries the ids of the conflicting blocks in an ErrorInfo detail.
func conflictStatus(conflicts []domain.TimeBlock) error {
	st := status.New(codes.FailedPrecondition, "You already have a time block during that time. Pick a different slot.")
	ids := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		ids = append(ids, c.ID.String())
	}
	withDetails, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   conflictReason,
		Domain:   "planner",
		Metadata: map[string]string{"conflict_ids": strings.Join(ids, ",")},
	})
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// ConflictIDs extracts the conflicting block ids from a FailedPrecondition status.
func ConflictIDs(err error) []string {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.Reason != conflictReason {
			continue
		}
		if raw := info.Metadata["conflict_ids"]; raw != "" {
			return strings.Split(raw, ",")
		}
	}
	return nil
}

func toBlockFields(in *plannerv1.BlockFields) (timeblocks.BlockFields, error) {
	if in == nil {
		return timeblocks.BlockFields{}, status.Error(codes.InvalidArgument, "fields are required")
	}
	if in.StartTime == nil || in.EndTime == nil {
		return timeblocks.BlockFields{}, status.Error(codes.InvalidArgument, "start_time and end_time are required")
	}
	var taskID *uuid.UUID
	if in.TaskId != "" {
		id, err := uuid.Parse(in.TaskId)
		if err != nil {
			return timeblocks.BlockFields{}, status.Error(codes.InvalidArgument, "task_id must be a UUID")
		}
		taskID = &id
	}
	var syncedAt *time.Time
	if in.SyncedAt != nil {
		t := in.SyncedAt.AsTime()
		syncedAt = &t
	}
	return timeblocks.BlockFields{
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime.AsTime(),
		EndTime:     in.EndTime.AsTime(),
		Recurrence:  in.Recurrence,
		Color:       in.Color,
		TaskID:      taskID,
		TaskTitle:   in.TaskTitle,
		SyncedAt:    syncedAt,
	}, nil
}

// referenceTime resolves the reference instant in the caller's IANA zone, or
// in UTC when none is given.
func referenceTime(ref *timestamppb.Timestamp, tz string) (time.Time, error) {
	if ref == nil {
		return time.Time{}, status.Error(codes.InvalidArgument, "reference is required")
	}
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return ref.AsTime(), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, status.Error(codes.InvalidArgument, "invalid time_zone")
	}
	return ref.AsTime().In(loc), nil
}

func toProtoBlock(b domain.TimeBlock) *plannerv1.TimeBlock {
	out := &plannerv1.TimeBlock{
		Id:          b.ID.String(),
		OwnerId:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		StartTime:   timestamppb.New(b.StartTime),
		EndTime:     timestamppb.New(b.EndTime),
		Recurrence:  b.Recurrence,
		Color:       b.Color,
		TaskTitle:   b.TaskTitle,
		Version:     b.Version,
		CreatedAt:   timestamppb.New(b.CreatedAt),
		UpdatedAt:   timestamppb.New(b.UpdatedAt),
	}
	if b.TaskID != nil {
		out.TaskId = b.TaskID.String()
	}
	if b.SyncedAt != nil {
		out.SyncedAt = timestamppb.New(*b.SyncedAt)
	}
	return out
}

func toProtoBlocks(blocks []domain.TimeBlock) []*plannerv1.TimeBlock {
	out := make([]*plannerv1.TimeBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toProtoBlock(b))
	}
	return out
}

func toProtoPageInfo(p *calendar.PageInfo) *plannerv1.PageInfo {
	if p == nil {
		return nil
	}
	return &plannerv1.PageInfo{
		Page:       int32(p.Page),
		PageSize:   int32(p.PageSize),
		Total:      int32(p.Total),
		TotalPages: int32(p.TotalPages),
	}
}

func toProtoEntry(e calendar.Entry) *plannerv1.ViewEntry {
	switch e := e.(type) {
	case calendar.ViewBlock:
		return &plannerv1.ViewEntry{Kind: EntryKindBlock, Block: toProtoBlock(e.Block), Geometry: toProtoGeometry(e.Geometry)}
	case calendar.MobileBlock:
		m := &plannerv1.MobileBlock{
			Id:               e.ID.String(),
			Title:            e.Title,
			ShortDescription: e.ShortDescription,
			StartTime:        timestamppb.New(e.Start),
			EndTime:          timestamppb.New(e.End),
			Color:            e.Color,
			TaskTitle:        e.TaskTitle,
		}
		if e.TaskID != nil {
			m.TaskId = e.TaskID.String()
		}
		return &plannerv1.ViewEntry{Kind: EntryKindMobile, Mobile: m, Geometry: toProtoGeometry(e.Geometry)}
	case calendar.Summary:
		sum := &plannerv1.DaySummary{
			Date:      e.Date.Format(time.DateOnly),
			Count:     int32(e.Count),
			Label:     e.Label,
			Color:     e.Color,
			TaskTitle: e.TaskTitle,
			BlockIds:  make([]string, 0, len(e.BlockIDs)),
			StartTime: timestamppb.New(e.Start),
			EndTime:   timestamppb.New(e.End),
		}
		if e.TaskID != nil {
			sum.TaskId = e.TaskID.String()
		}
		for _, id := range e.BlockIDs {
			sum.BlockIds = append(sum.BlockIds, id.String())
		}
		return &plannerv1.ViewEntry{Kind: EntryKindSummary, Summary: sum, Geometry: &plannerv1.Geometry{Date: sum.Date}}
	}
	return &plannerv1.ViewEntry{}
}

func toProtoGeometry(g calendar.Geometry) *plannerv1.Geometry {
	switch g := g.(type) {
	case calendar.Position:
		return &plannerv1.Geometry{Position: &plannerv1.Position{Top: g.Top, Height: g.Height, Left: g.Left, Width: g.Width}}
	case calendar.DayBucket:
		return &plannerv1.Geometry{Date: g.Date.Format(time.DateOnly)}
	}
	return nil
}
