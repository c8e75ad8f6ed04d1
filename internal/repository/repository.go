package repository

import (
	"context"
	"database/sql"
	"time"

	"runwalk_timer/internal/models"
)

// KVRepo is the string-keyed local store. Values are opaque strings.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SettingsRepo persists the workout settings one key per field.
type SettingsRepo interface {
	Load(ctx context.Context, defaults models.Settings) (models.Settings, error)
	Save(ctx context.Context, field models.SettingField, value int) error
}

// RunLogRepo reads and writes the whole run log document.
type RunLogRepo interface {
	Load(ctx context.Context) (map[models.DateKey]models.RunLogEntry, error)
	Save(ctx context.Context, logs map[models.DateKey]models.RunLogEntry) error
}

// StateRepo keeps the last timer snapshot.
type StateRepo interface {
	Save(ctx context.Context, rec models.TimerRecord) error
	Load(ctx context.Context) (models.TimerRecord, error)
}

// EventRepo is the append-only workout journal.
type EventRepo interface {
	Append(ctx context.Context, e models.WorkoutEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.WorkoutEvent, error)
}

type Repository struct {
	KV        KVRepo
	Settings  SettingsRepo
	RunLogs   RunLogRepo
	StateRepo StateRepo
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	kv := NewKVSQLite(db)
	return &Repository{
		KV:        kv,
		Settings:  NewSettingsKV(kv),
		RunLogs:   NewRunLogKV(kv),
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
	}
}
