package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"planner/backend/internal/calendar"
	"planner/backend/internal/clock"
	plannerv1 "planner/backend/internal/gen/proto/planner/v1"
	"planner/backend/internal/service/timeblocks"
	"planner/backend/internal/store/memory"
	"planner/backend/internal/viewcache"
)

func startServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	clk := clock.NewManual(time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC))
	svc := timeblocks.NewService(
		memory.NewTimeBlockRepo(),
		viewcache.New[calendar.ViewResult](time.Minute, clk),
		timeblocks.DefaultSettings(),
		timeblocks.WithClock(clk),
		timeblocks.WithLogger(testLogger()),
	)

	lis := bufconn.Listen(1 << 20)
	srv, _ := NewServer(svc, ServerOptions{Log: testLogger()})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRoundTrip_CreateConflictAndView(t *testing.T) {
	conn := startServer(t)
	client := plannerv1.NewTimeBlocksServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Date(2023, 6, 15, 9, 0, 0, 0, time.UTC)
	created, err := client.CreateTimeBlock(ctx, &plannerv1.CreateTimeBlockRequest{
		OwnerId: "u1",
		Fields: &plannerv1.BlockFields{
			Title:     "standup",
			StartTime: timestamppb.New(start),
			EndTime:   timestamppb.New(start.Add(time.Hour)),
			Color:     "336699",
		},
	})
	if err != nil {
		t.Fatalf("CreateTimeBlock error: %v", err)
	}
	if created.Block.GetId() == "" || created.Block.GetColor() != "#336699" {
		t.Fatalf("created block = %+v", created.Block)
	}

	overlapStart := start.Add(30 * time.Minute)
	_, err = client.CreateTimeBlock(ctx, &plannerv1.CreateTimeBlockRequest{
		OwnerId: "u1",
		Fields: &plannerv1.BlockFields{
			Title:     "clash",
			StartTime: timestamppb.New(overlapStart),
			EndTime:   timestamppb.New(overlapStart.Add(time.Hour)),
		},
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("code = %v, want %v", status.Code(err), codes.FailedPrecondition)
	}
	if ids := ConflictIDs(err); len(ids) != 1 || ids[0] != created.Block.Id {
		t.Fatalf("conflict ids = %v, want [%s]", ids, created.Block.Id)
	}

	ref := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	view, err := client.GetCalendarView(ctx, &plannerv1.GetCalendarViewRequest{OwnerId: "u1", View: "day", Reference: timestamppb.New(ref)})
	if err != nil {
		t.Fatalf("GetCalendarView error: %v", err)
	}
	if len(view.Entries) != 1 || view.Entries[0].Kind != EntryKindBlock {
		t.Fatalf("entries = %+v", view.Entries)
	}
	pos := view.Entries[0].GetGeometry().GetPosition()
	if pos == nil || pos.Top < 374.99 || pos.Top > 375.01 {
		t.Fatalf("position = %+v, want top 375", pos)
	}

	metrics, err := client.GetMetrics(ctx, &plannerv1.GetMetricsRequest{})
	if err != nil {
		t.Fatalf("GetMetrics error: %v", err)
	}
	if len(metrics.Operations) == 0 {
		t.Fatalf("metrics report no operations")
	}
}

func TestRoundTrip_TimeZoneSelectsLocalDay(t *testing.T) {
	conn := startServer(t)
	client := plannerv1.NewTimeBlocksServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ref := time.Date(2023, 6, 15, 2, 0, 0, 0, time.UTC)
	utc, err := client.GetCalendarView(ctx, &plannerv1.GetCalendarViewRequest{OwnerId: "u1", View: "day", Reference: timestamppb.New(ref)})
	if err != nil {
		t.Fatalf("GetCalendarView error: %v", err)
	}
	ny, err := client.GetCalendarView(ctx, &plannerv1.GetCalendarViewRequest{
		OwnerId:   "u1",
		View:      "day",
		Reference: timestamppb.New(ref),
		TimeZone:  "America/New_York",
	})
	if err != nil {
		t.Fatalf("GetCalendarView error: %v", err)
	}

	if got, want := utc.WindowStart.AsTime(), time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("utc window start = %v, want %v", got, want)
	}
	if got, want := ny.WindowStart.AsTime(), time.Date(2023, 6, 14, 4, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("new york window start = %v, want %v", got, want)
	}
}

func TestRoundTrip_HealthServing(t *testing.T) {
	conn := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		t.Fatalf("health Check error: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Fatalf("status = %v, want SERVING", resp.Status)
	}
}
