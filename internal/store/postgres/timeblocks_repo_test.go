package postgres

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"planner/backend/internal/store"
)

func TestTranslateWriteError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "exclusion violation on overlap constraint",
			in:   &pgconn.PgError{Code: "23P01", ConstraintName: overlapConstraint},
			want: store.ErrConflict,
		},
		{
			name: "wrapped exclusion violation",
			in:   fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01", ConstraintName: overlapConstraint}),
			want: store.ErrConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := translateWriteError(tc.in); !errors.Is(got, tc.want) {
				t.Fatalf("translateWriteError = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTranslateWriteError_PassesThroughOtherErrors(t *testing.T) {
	other := &pgconn.PgError{Code: "23P01", ConstraintName: "some_other_constraint"}
	if got := translateWriteError(other); errors.Is(got, store.ErrConflict) {
		t.Fatalf("unexpected conflict for unrelated constraint")
	}

	check := &pgconn.PgError{Code: "23514", ConstraintName: "time_blocks_valid_range"}
	if got := translateWriteError(check); got != check {
		t.Fatalf("translateWriteError = %v, want original error", got)
	}

	plain := errors.New("boom")
	if got := translateWriteError(plain); got != plain {
		t.Fatalf("translateWriteError = %v, want %v", got, plain)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	b, err := migrations.ReadFile("migrations/" + entries[0].Name())
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if !containsAll(string(b), "-- +goose Up", overlapConstraint, "'[)'") {
		t.Fatalf("first migration does not declare the overlap exclusion constraint")
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
