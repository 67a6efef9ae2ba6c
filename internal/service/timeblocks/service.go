package timeblocks

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"planner/backend/internal/calendar"
	"planner/backend/internal/clock"
	"planner/backend/internal/domain"
	"planner/backend/internal/export/ics"
	"planner/backend/internal/perf"
	"planner/backend/internal/store"
	"planner/backend/internal/viewcache"
)

const maxRecurrenceLength = 1024

// Operation names reported to the performance monitor.
const (
	OpCreate        = "timeblocks.create"
	OpUpdate        = "timeblocks.update"
	OpDelete        = "timeblocks.delete"
	OpFindConflicts = "timeblocks.find_conflicts"
	OpCalendarView  = "calendar.view"
	OpRenderView    = "calendar.render"
	OpList          = "timeblocks.list"
	OpExport        = "calendar.export"
)

var colorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ViewCache is the subset of viewcache.Cache the service relies on.
type ViewCache interface {
	Get(key viewcache.Key) (calendar.ViewResult, bool)
	Generation(owner string) uint64
	PutIfCurrent(key viewcache.Key, value calendar.ViewResult, gen uint64) bool
	InvalidateOwner(owner string)
}

type Settings struct {
	FirstDayOfWeek      time.Weekday
	Canvas              float64
	VirtualThreshold    int
	PageSize            int
	ZoomThreshold       float64
	ShortDescriptionLen int
	ICSProductID        string
}

func DefaultSettings() Settings {
	return Settings{
		FirstDayOfWeek:      time.Sunday,
		Canvas:              calendar.DefaultCanvas,
		VirtualThreshold:    calendar.DefaultVirtualThreshold,
		PageSize:            calendar.DefaultPageSize,
		ZoomThreshold:       calendar.DefaultZoomThreshold,
		ShortDescriptionLen: calendar.DefaultShortDescriptionLen,
		ICSProductID:        ics.DefaultProductID,
	}
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithMonitor(m *perf.Monitor) Option {
	return func(s *Service) { s.perf = m }
}

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

type Service struct {
	repo     store.TimeBlockRepository
	cache    ViewCache
	settings Settings

	calc    calendar.Calculator
	engine  calendar.Engine
	reducer calendar.Reducer

	log     *slog.Logger
	perf    *perf.Monitor
	clock   clock.Clock
	flights singleflight.Group
}

func NewService(repo store.TimeBlockRepository, cache ViewCache, settings Settings, opts ...Option) *Service {
	if settings.VirtualThreshold <= 0 {
		settings.VirtualThreshold = calendar.DefaultVirtualThreshold
	}
	if settings.PageSize <= 0 {
		settings.PageSize = calendar.DefaultPageSize
	}

	s := &Service{
		repo:     repo,
		cache:    cache,
		settings: settings,
		calc:     calendar.Calculator{FirstDayOfWeek: settings.FirstDayOfWeek},
		engine:   calendar.Engine{Canvas: settings.Canvas, FirstDayOfWeek: settings.FirstDayOfWeek},
		reducer:  calendar.Reducer{ZoomThreshold: settings.ZoomThreshold, ShortDescriptionLen: settings.ShortDescriptionLen},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.clock == nil {
		s.clock = clock.Real{}
	}
	if s.perf == nil {
		s.perf = perf.NewMonitor(s.clock)
	}
	s.log = s.log.With("component", "service.timeblocks")
	return s
}

func (s *Service) Settings() Settings {
	return s.settings
}

// BlockFields are the caller-editable attributes of a time block.
type BlockFields struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Recurrence  string
	Color       string
	TaskID      *uuid.UUID
	TaskTitle   string
	SyncedAt    *time.Time
}

type CreateInput struct {
	OwnerID string
	BlockFields
}

type UpdateInput struct {
	OwnerID string
	ID      uuid.UUID
	// ExpectedVersion, when non-zero, must match the stored version.
	ExpectedVersion int64
	BlockFields
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain.TimeBlock, error) {
	defer s.measure(OpCreate)()

	if in.OwnerID == "" {
		return domain.TimeBlock{}, validationError("owner_id is required")
	}
	fields, err := normalizeFields(in.BlockFields)
	if err != nil {
		return domain.TimeBlock{}, err
	}

	block := domain.TimeBlock{OwnerID: in.OwnerID}
	fields.applyTo(&block)

	var created domain.TimeBlock
	err = s.repo.InOwnerTransaction(ctx, in.OwnerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		conflicts, err := findConflicts(ctx, tx, in.OwnerID, block.StartTime, block.EndTime, uuid.Nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}
		created, err = tx.Insert(ctx, block)
		return err
	})
	if err != nil {
		return domain.TimeBlock{}, s.writeFailed(ctx, in.OwnerID, block.StartTime, block.EndTime, uuid.Nil, err)
	}

	s.cache.InvalidateOwner(in.OwnerID)
	s.log.InfoContext(ctx, "time block created",
		"owner_id", created.OwnerID,
		"block_id", created.ID,
		"start_time", created.StartTime,
		"end_time", created.EndTime,
	)
	return created, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (domain.TimeBlock, error) {
	defer s.measure(OpUpdate)()

	if in.OwnerID == "" {
		return domain.TimeBlock{}, validationError("owner_id is required")
	}
	if in.ID == uuid.Nil {
		return domain.TimeBlock{}, validationError("id is required")
	}
	if in.ExpectedVersion < 0 {
		return domain.TimeBlock{}, validationError("expected_version must not be negative")
	}
	fields, err := normalizeFields(in.BlockFields)
	if err != nil {
		return domain.TimeBlock{}, err
	}

	var updated domain.TimeBlock
	err = s.repo.InOwnerTransaction(ctx, in.OwnerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		existing, err := tx.Get(ctx, in.OwnerID, in.ID)
		if err != nil {
			return err
		}
		if in.ExpectedVersion != 0 && existing.Version != in.ExpectedVersion {
			return store.ErrVersionConflict
		}

		conflicts, err := findConflicts(ctx, tx, in.OwnerID, fields.StartTime, fields.EndTime, in.ID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}

		next := existing
		fields.applyTo(&next)
		next.Version = existing.Version + 1
		updated, err = tx.Update(ctx, next)
		return err
	})
	if err != nil {
		return domain.TimeBlock{}, s.writeFailed(ctx, in.OwnerID, fields.StartTime, fields.EndTime, in.ID, err)
	}

	s.cache.InvalidateOwner(in.OwnerID)
	s.log.InfoContext(ctx, "time block updated",
		"owner_id", updated.OwnerID,
		"block_id", updated.ID,
		"version", updated.Version,
	)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	defer s.measure(OpDelete)()

	if ownerID == "" {
		return validationError("owner_id is required")
	}
	if id == uuid.Nil {
		return validationError("id is required")
	}
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}

	s.cache.InvalidateOwner(ownerID)
	s.log.InfoContext(ctx, "time block deleted", "owner_id", ownerID, "block_id", id)
	return nil
}

func (s *Service) Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	if ownerID == "" {
		return domain.TimeBlock{}, validationError("owner_id is required")
	}
	if id == uuid.Nil {
		return domain.TimeBlock{}, validationError("id is required")
	}
	return s.repo.Get(ctx, ownerID, id)
}

// FindConflicts lists the owner's blocks overlapping [start, end), ordered by
// start. A non-nil exclude is left out of the result.
func (s *Service) FindConflicts(ctx context.Context, ownerID string, start, end time.Time, exclude uuid.UUID) ([]domain.TimeBlock, error) {
	defer s.measure(OpFindConflicts)()

	if ownerID == "" {
		return nil, validationError("owner_id is required")
	}
	start, end = start.UTC(), end.UTC()
	if !start.Before(end) {
		return nil, validationError("end_time must be after start_time")
	}
	return findConflicts(ctx, s.repo, ownerID, start, end, exclude)
}

// writeFailed turns a store-level overlap rejection into a ConflictError that
// names the blocks now occupying the interval.
func (s *Service) writeFailed(ctx context.Context, ownerID string, start, end time.Time, exclude uuid.UUID, err error) error {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		s.log.InfoContext(ctx, "time block rejected",
			"owner_id", ownerID,
			"conflicts", len(conflictErr.Conflicts),
		)
		return err
	}
	if !errors.Is(err, store.ErrConflict) {
		return err
	}

	conflicts, findErr := findConflicts(ctx, s.repo, ownerID, start, end, exclude)
	if findErr != nil {
		s.log.WarnContext(ctx, "conflict lookup after rejected write failed", "owner_id", ownerID, "err", findErr)
		return err
	}
	s.log.InfoContext(ctx, "time block rejected by store", "owner_id", ownerID, "conflicts", len(conflicts))
	return &ConflictError{Conflicts: conflicts}
}

func (s *Service) measure(op string) func() {
	tok := s.perf.Start(op)
	return func() { s.perf.End(op, tok) }
}

type normalizedFields struct {
	BlockFields
}

func normalizeFields(in BlockFields) (normalizedFields, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return normalizedFields{}, validationError("title is required")
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return normalizedFields{}, validationError("title too long")
	}
	if utf8.RuneCountInString(in.Description) > domain.MaxDescriptionLength {
		return normalizedFields{}, validationError("description too long")
	}

	start := in.StartTime.UTC()
	end := in.EndTime.UTC()
	if start.IsZero() || end.IsZero() {
		return normalizedFields{}, validationError("start_time and end_time are required")
	}
	if !start.Before(end) {
		return normalizedFields{}, validationError("end_time must be after start_time")
	}

	color := strings.TrimSpace(in.Color)
	if color != "" {
		m := colorPattern.FindStringSubmatch(color)
		if m == nil {
			return normalizedFields{}, validationError("color must be a #RRGGBB hex value")
		}
		color = "#" + strings.ToLower(m[1])
	}

	recurrence := strings.TrimSpace(in.Recurrence)
	if len(recurrence) > maxRecurrenceLength {
		return normalizedFields{}, validationError("recurrence too long")
	}

	taskTitle := strings.TrimSpace(in.TaskTitle)
	if in.TaskID == nil {
		taskTitle = ""
	} else if *in.TaskID == uuid.Nil {
		return normalizedFields{}, validationError("task_id must not be the nil uuid")
	}

	var synced *time.Time
	if in.SyncedAt != nil {
		t := in.SyncedAt.UTC()
		synced = &t
	}

	return normalizedFields{BlockFields{
		Title:       title,
		Description: in.Description,
		StartTime:   start,
		EndTime:     end,
		Recurrence:  recurrence,
		Color:       color,
		TaskID:      in.TaskID,
		TaskTitle:   taskTitle,
		SyncedAt:    synced,
	}}, nil
}

func (f normalizedFields) applyTo(b *domain.TimeBlock) {
	b.Title = f.Title
	b.Description = f.Description
	b.StartTime = f.StartTime
	b.EndTime = f.EndTime
	b.Recurrence = f.Recurrence
	b.Color = f.Color
	b.TaskID = f.TaskID
	b.TaskTitle = f.TaskTitle
	b.SyncedAt = f.SyncedAt
}
