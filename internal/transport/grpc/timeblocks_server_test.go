package grpc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"planner/backend/internal/calendar"
	"planner/backend/internal/domain"
	plannerv1 "planner/backend/internal/gen/proto/planner/v1"
	"planner/backend/internal/service/timeblocks"
	"planner/backend/internal/store"
)

type fakeTimeBlocksService struct {
	createFn        func(ctx context.Context, in timeblocks.CreateInput) (domain.TimeBlock, error)
	updateFn        func(ctx context.Context, in timeblocks.UpdateInput) (domain.TimeBlock, error)
	deleteFn        func(ctx context.Context, ownerID string, id uuid.UUID) error
	getFn           func(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error)
	findConflictsFn func(ctx context.Context, ownerID string, start, end time.Time, exclude uuid.UUID) ([]domain.TimeBlock, error)
	renderFn        func(ctx context.Context, in timeblocks.RenderInput) (timeblocks.RenderedView, error)
	listFn          func(ctx context.Context, ownerID string, q calendar.PageQuery) (calendar.Page[domain.TimeBlock], error)
	exportFn        func(ctx context.Context, ownerID string, view calendar.ViewKind, ref time.Time, w io.Writer) (int, error)
	metricsFn       func() timeblocks.MetricsReport
}

func (f *fakeTimeBlocksService) Create(ctx context.Context, in timeblocks.CreateInput) (domain.TimeBlock, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, in)
}

func (f *fakeTimeBlocksService) Update(ctx context.Context, in timeblocks.UpdateInput) (domain.TimeBlock, error) {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, in)
}

func (f *fakeTimeBlocksService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if f.deleteFn == nil {
		panic("Delete not configured")
	}
	return f.deleteFn(ctx, ownerID, id)
}

func (f *fakeTimeBlocksService) Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	if f.getFn == nil {
		panic("Get not configured")
	}
	return f.getFn(ctx, ownerID, id)
}

func (f *fakeTimeBlocksService) FindConflicts(ctx context.Context, ownerID string, start, end time.Time, exclude uuid.UUID) ([]domain.TimeBlock, error) {
	if f.findConflictsFn == nil {
		panic("FindConflicts not configured")
	}
	return f.findConflictsFn(ctx, ownerID, start, end, exclude)
}

func (f *fakeTimeBlocksService) RenderCalendarView(ctx context.Context, in timeblocks.RenderInput) (timeblocks.RenderedView, error) {
	if f.renderFn == nil {
		panic("RenderCalendarView not configured")
	}
	return f.renderFn(ctx, in)
}

func (f *fakeTimeBlocksService) List(ctx context.Context, ownerID string, q calendar.PageQuery) (calendar.Page[domain.TimeBlock], error) {
	if f.listFn == nil {
		panic("List not configured")
	}
	return f.listFn(ctx, ownerID, q)
}

func (f *fakeTimeBlocksService) ExportICS(ctx context.Context, ownerID string, view calendar.ViewKind, ref time.Time, w io.Writer) (int, error) {
	if f.exportFn == nil {
		panic("ExportICS not configured")
	}
	return f.exportFn(ctx, ownerID, view, ref, w)
}

func (f *fakeTimeBlocksService) Metrics() timeblocks.MetricsReport {
	if f.metricsFn == nil {
		panic("Metrics not configured")
	}
	return f.metricsFn()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateTimeBlock_RejectsMissingTimes(t *testing.T) {
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{}, testLogger())

	_, err := srv.CreateTimeBlock(context.Background(), &plannerv1.CreateTimeBlockRequest{
		OwnerId: "u1",
		Fields:  &plannerv1.BlockFields{Title: "t"},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateTimeBlock_RejectsInvalidTaskID(t *testing.T) {
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{}, testLogger())
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)

	_, err := srv.CreateTimeBlock(context.Background(), &plannerv1.CreateTimeBlockRequest{
		OwnerId: "u1",
		Fields: &plannerv1.BlockFields{
			Title:     "t",
			StartTime: timestamppb.New(start),
			EndTime:   timestamppb.New(start.Add(time.Hour)),
			TaskId:    "nope",
		},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestCreateTimeBlock_PassesFieldsToService(t *testing.T) {
	task := uuid.New()
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	var got timeblocks.CreateInput

	srv := NewTimeBlocksServer(&fakeTimeBlocksService{
		createFn: func(ctx context.Context, in timeblocks.CreateInput) (domain.TimeBlock, error) {
			got = in
			return domain.TimeBlock{ID: uuid.New(), OwnerID: in.OwnerID, Title: in.Title, StartTime: in.StartTime, EndTime: in.EndTime, TaskID: in.TaskID, Version: 1}, nil
		},
	}, testLogger())

	resp, err := srv.CreateTimeBlock(context.Background(), &plannerv1.CreateTimeBlockRequest{
		OwnerId: "u1",
		Fields: &plannerv1.BlockFields{
			Title:     "focus",
			StartTime: timestamppb.New(start),
			EndTime:   timestamppb.New(start.Add(time.Hour)),
			TaskId:    task.String(),
		},
	})
	if err != nil {
		t.Fatalf("CreateTimeBlock error: %v", err)
	}
	if got.OwnerID != "u1" || got.Title != "focus" || got.TaskID == nil || *got.TaskID != task {
		t.Fatalf("service input = %+v", got)
	}
	if !got.StartTime.Equal(start) {
		t.Fatalf("service start = %v, want %v", got.StartTime, start)
	}
	if resp.Block.TaskId != task.String() || resp.Block.Version != 1 {
		t.Fatalf("response block = %+v", resp.Block)
	}
}

func TestCreateTimeBlock_MapsConflictWithIDs(t *testing.T) {
	other := domain.TimeBlock{ID: uuid.New(), OwnerID: "u1"}
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{
		createFn: func(ctx context.Context, in timeblocks.CreateInput) (domain.TimeBlock, error) {
			return domain.TimeBlock{}, &timeblocks.ConflictError{Conflicts: []domain.TimeBlock{other}}
		},
	}, testLogger())
	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)

	_, err := srv.CreateTimeBlock(context.Background(), &plannerv1.CreateTimeBlockRequest{
		OwnerId: "u1",
		Fields:  &plannerv1.BlockFields{Title: "t", StartTime: timestamppb.New(start), EndTime: timestamppb.New(start.Add(time.Hour))},
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
	ids := ConflictIDs(err)
	if len(ids) != 1 || ids[0] != other.ID.String() {
		t.Fatalf("conflict ids = %v, want [%s]", ids, other.ID)
	}
}

func TestStatusError_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", &timeblocks.ValidationError{}, codes.InvalidArgument},
		{"unsupported view", &calendar.UnsupportedViewError{View: "year"}, codes.InvalidArgument},
		{"conflict", &timeblocks.ConflictError{}, codes.FailedPrecondition},
		{"store conflict", store.ErrConflict, codes.FailedPrecondition},
		{"not found", store.ErrNotFound, codes.NotFound},
		{"version", store.ErrVersionConflict, codes.Aborted},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"other", errors.New("boom"), codes.Internal},
	}

	srv := NewTimeBlocksServer(&fakeTimeBlocksService{}, testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := srv.statusError(srv.log, "op", tt.err)
			if status.Code(err) != tt.want {
				t.Fatalf("code = %v, want %v", status.Code(err), tt.want)
			}
		})
	}
}

func TestUpdateTimeBlock_RejectsInvalidUUID(t *testing.T) {
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{}, testLogger())

	_, err := srv.UpdateTimeBlock(context.Background(), &plannerv1.UpdateTimeBlockRequest{OwnerId: "u1", Id: "not-a-uuid"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestDeleteTimeBlock_MapsNotFound(t *testing.T) {
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{
		deleteFn: func(ctx context.Context, ownerID string, id uuid.UUID) error {
			return store.ErrNotFound
		},
	}, testLogger())

	_, err := srv.DeleteTimeBlock(context.Background(), &plannerv1.DeleteTimeBlockRequest{OwnerId: "u1", Id: uuid.NewString()})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.NotFound)
	}
}

func TestGetCalendarView_RejectsUnknownView(t *testing.T) {
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{}, testLogger())
	ref := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := srv.GetCalendarView(context.Background(), &plannerv1.GetCalendarViewRequest{OwnerId: "u1", View: "year", Reference: timestamppb.New(ref)})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestGetCalendarView_AppliesTimeZone(t *testing.T) {
	var got timeblocks.RenderInput
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{
		renderFn: func(ctx context.Context, in timeblocks.RenderInput) (timeblocks.RenderedView, error) {
			got = in
			return timeblocks.RenderedView{ViewResult: calendar.ViewResult{View: in.View}}, nil
		},
	}, testLogger())
	ref := time.Date(2023, 6, 15, 2, 0, 0, 0, time.UTC)

	_, err := srv.GetCalendarView(context.Background(), &plannerv1.GetCalendarViewRequest{
		OwnerId:   "u1",
		View:      "Day",
		Reference: timestamppb.New(ref),
		TimeZone:  "America/New_York",
	})
	if err != nil {
		t.Fatalf("GetCalendarView error: %v", err)
	}
	if got.View != calendar.ViewDay {
		t.Fatalf("view = %q, want %q", got.View, calendar.ViewDay)
	}
	if got.Reference.Location().String() != "America/New_York" || got.Reference.Day() != 14 {
		t.Fatalf("reference = %v, want the 14th in America/New_York", got.Reference)
	}
}

func TestToWireEntry_Variants(t *testing.T) {
	id := uuid.New()
	day := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	block := toProtoEntry(calendar.ViewBlock{
		Block:    domain.TimeBlock{ID: id, Title: "a"},
		Geometry: calendar.Position{Top: 375, Height: 41.6, Width: 100},
	})
	if block.Kind != EntryKindBlock || block.Geometry == nil || block.Geometry.Position == nil || block.Geometry.Position.Top != 375 {
		t.Fatalf("block entry = %+v", block)
	}

	mobile := toProtoEntry(calendar.MobileBlock{ID: id, Title: "a", Geometry: calendar.DayBucket{Date: day}})
	if mobile.Kind != EntryKindMobile || mobile.Geometry.Date != "2023-06-15" {
		t.Fatalf("mobile entry = %+v", mobile)
	}

	sum := toProtoEntry(calendar.Summary{Date: day, Count: 2, Label: "2 events", BlockIDs: []uuid.UUID{id, id}})
	if sum.Kind != EntryKindSummary || sum.Summary.Date != "2023-06-15" || len(sum.Summary.BlockIds) != 2 {
		t.Fatalf("summary entry = %+v", sum)
	}
}

func TestDefaultRequestTimeoutInterceptor_SetsDeadline(t *testing.T) {
	icpt := DefaultRequestTimeoutInterceptor(time.Second)

	var hadDeadline bool
	_, err := icpt(context.Background(), nil, nil, func(ctx context.Context, req any) (any, error) {
		_, hadDeadline = ctx.Deadline()
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if !hadDeadline {
		t.Fatalf("handler context has no deadline")
	}
}

func TestListTimeBlocks_MapsQueryAndPage(t *testing.T) {
	var got calendar.PageQuery
	srv := NewTimeBlocksServer(&fakeTimeBlocksService{
		listFn: func(ctx context.Context, ownerID string, q calendar.PageQuery) (calendar.Page[domain.TimeBlock], error) {
			got = q
			return calendar.Page[domain.TimeBlock]{
				Items:    []domain.TimeBlock{{ID: uuid.New(), OwnerID: ownerID, Title: "a"}},
				PageInfo: calendar.PageInfo{Page: 2, PageSize: 1, Total: 3, TotalPages: 3},
			}, nil
		},
	}, testLogger())

	resp, err := srv.ListTimeBlocks(context.Background(), &plannerv1.ListTimeBlocksRequest{
		OwnerId:  "u1",
		Page:     2,
		PageSize: 1,
		SortBy:   "title",
		Order:    "DESC",
	})
	if err != nil {
		t.Fatalf("ListTimeBlocks error: %v", err)
	}
	if got.Page != 2 || got.PageSize != 1 || got.SortBy != calendar.SortTitle || got.Order != calendar.OrderDesc {
		t.Fatalf("query = %+v", got)
	}
	if len(resp.Blocks) != 1 || resp.Page.GetTotalPages() != 3 || resp.Page.GetPage() != 2 {
		t.Fatalf("response = %v", resp)
	}
}
