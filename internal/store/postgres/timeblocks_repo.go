package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"planner/backend/internal/domain"
	"planner/backend/internal/store"
)

const overlapConstraint = "time_blocks_no_overlap"

type TimeBlockRepo struct {
	db *bun.DB
}

func NewTimeBlockRepo(db *bun.DB) *TimeBlockRepo {
	return &TimeBlockRepo{db: db}
}

type timeBlockTx struct {
	tx bun.Tx
}

func (r *TimeBlockRepo) FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
	return findOverlapping(ctx, r.db, ownerID, windowStart, windowEnd)
}

func (r *TimeBlockRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.TimeBlock, error) {
	var rows []domain.TimeBlock
	err := r.db.NewSelect().
		Model(&rows).
		Where("owner_id = ?", ownerID).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TimeBlockRepo) Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	return getTimeBlock(ctx, r.db, ownerID, id)
}

func (r *TimeBlockRepo) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	return r.InOwnerTransaction(ctx, ownerID, func(ctx context.Context, tx store.TimeBlockTx) error {
		return tx.Delete(ctx, ownerID, id)
	})
}

func (r *TimeBlockRepo) InOwnerTransaction(ctx context.Context, ownerID string, fn func(ctx context.Context, tx store.TimeBlockTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockOwnerCalendar(ctx, tx, ownerID); err != nil {
			return err
		}
		return fn(ctx, timeBlockTx{tx: tx})
	})
}

// lockOwnerCalendar serializes writers of one owner until the transaction ends,
// so conflict detection and the following write see the same state.
func lockOwnerCalendar(ctx context.Context, tx bun.Tx, ownerID string) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", ownerID).Exec(ctx)
	return err
}

func (r timeBlockTx) FindOverlapping(ctx context.Context, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
	return findOverlapping(ctx, r.tx, ownerID, windowStart, windowEnd)
}

func (r timeBlockTx) Get(ctx context.Context, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	return getTimeBlock(ctx, r.tx, ownerID, id)
}

func (r timeBlockTx) Insert(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error) {
	m := block
	if _, err := r.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.TimeBlock{}, translateWriteError(err)
	}
	return m, nil
}

func (r timeBlockTx) Update(ctx context.Context, block domain.TimeBlock) (domain.TimeBlock, error) {
	m := block
	res, err := r.tx.NewUpdate().
		Model(&m).
		Column("title", "description", "start_time", "end_time", "recurrence", "color",
			"task_id", "task_title", "version", "synced_at", "updated_at").
		Where("id = ?", m.ID).
		Where("owner_id = ?", m.OwnerID).
		Where("version = ?", m.Version-1).
		Exec(ctx)
	if err != nil {
		return domain.TimeBlock{}, translateWriteError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.TimeBlock{}, err
	}
	if affected == 0 {
		if _, err := getTimeBlock(ctx, r.tx, m.OwnerID, m.ID); err != nil {
			return domain.TimeBlock{}, err
		}
		return domain.TimeBlock{}, store.ErrVersionConflict
	}
	return m, nil
}

func (r timeBlockTx) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	res, err := r.tx.NewDelete().
		Model((*domain.TimeBlock)(nil)).
		Where("owner_id = ?", ownerID).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func findOverlapping(ctx context.Context, db bun.IDB, ownerID string, windowStart, windowEnd time.Time) ([]domain.TimeBlock, error) {
	var rows []domain.TimeBlock
	err := db.NewSelect().
		Model(&rows).
		Where("owner_id = ?", ownerID).
		Where("start_time < ?", windowEnd).
		Where("end_time > ?", windowStart).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func getTimeBlock(ctx context.Context, db bun.IDB, ownerID string, id uuid.UUID) (domain.TimeBlock, error) {
	var row domain.TimeBlock
	err := db.NewSelect().
		Model(&row).
		Where("owner_id = ?", ownerID).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TimeBlock{}, store.ErrNotFound
		}
		return domain.TimeBlock{}, err
	}
	return row, nil
}

// translateWriteError maps the exclusion constraint that backs the
// no-overlap constraint onto store.ErrConflict.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23P01" && pgErr.ConstraintName == overlapConstraint {
			return store.ErrConflict
		}
	}
	return err
}
