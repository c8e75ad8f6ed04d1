package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"runwalk_timer/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

// Ensure implementation of StateRepo interface at compile time.
var _ StateRepo = (*StateSQLite)(nil)

const (
	timerStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO timer_state (id, phase, remaining_s, elapsed_s, current_set, running, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			phase=excluded.phase,
			remaining_s=excluded.remaining_s,
			elapsed_s=excluded.elapsed_s,
			current_set=excluded.current_set,
			running=excluded.running,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, phase, remaining_s, elapsed_s, current_set, running, updated_at
		FROM timer_state WHERE id=?
	`
)

// Save upserts the timer_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, rec models.TimerRecord) error {
	// persist UpdatedAt as UTC; set if zero
	tsUTC := rec.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	st := rec.State
	_, err := r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		timerStateRowID,
		string(st.Phase),
		st.SecondsRemaining,
		st.TotalElapsed,
		st.CurrentSet,
		st.IsRunning,
		tsUTC,
	)
	return err
}

// Load fetches the single timer_state row. A missing row yields a zero
// record and no error.
func (r *StateSQLite) Load(ctx context.Context) (models.TimerRecord, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, timerStateRowID)

	var rec models.TimerRecord
	var phase string
	if err := row.Scan(
		&rec.ID,
		&phase,
		&rec.State.SecondsRemaining,
		&rec.State.TotalElapsed,
		&rec.State.CurrentSet,
		&rec.State.IsRunning,
		&rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TimerRecord{}, nil // nothing saved yet
		}
		return models.TimerRecord{}, err
	}
	rec.State.Phase = models.Phase(phase)
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}
