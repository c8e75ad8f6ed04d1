package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"runwalk_timer/internal/models"
)

// RunLogsKey is the storage key of the run log document.
const RunLogsKey = "runLogs"

// ErrCorruptDocument is returned together with an empty, usable log when
// the stored document cannot be parsed.
var ErrCorruptDocument = errors.New("run log document is corrupt")

// RunLogKV keeps all run log entries in one JSON object under RunLogsKey:
//
//	{"2024-01-01": {"timeSec": 600, "distanceKm": 5, "gym": false}}
type RunLogKV struct {
	kv KVRepo
}

func NewRunLogKV(kv KVRepo) *RunLogKV {
	return &RunLogKV{kv: kv}
}

// Load returns every stored entry. An absent document is an empty log. An
// unparseable one is an empty log plus ErrCorruptDocument, which callers
// may log and otherwise ignore.
func (r *RunLogKV) Load(ctx context.Context) (map[models.DateKey]models.RunLogEntry, error) {
	raw, ok, err := r.kv.Get(ctx, RunLogsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[models.DateKey]models.RunLogEntry{}, nil
	}
	logs, err := decodeRunLogs(raw)
	if err != nil {
		return map[models.DateKey]models.RunLogEntry{}, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return logs, nil
}

// Save overwrites the whole document. Empty entries are never written and
// a log with none left removes the document.
func (r *RunLogKV) Save(ctx context.Context, logs map[models.DateKey]models.RunLogEntry) error {
	doc := make(map[models.DateKey]models.RunLogEntry, len(logs))
	for k, e := range logs {
		if k.IsZero() || e.IsEmpty() {
			continue
		}
		doc[k] = e
	}
	if len(doc) == 0 {
		return r.kv.Delete(ctx, RunLogsKey)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal run logs: %w", err)
	}
	return r.kv.Set(ctx, RunLogsKey, string(b))
}

// storedEntry mirrors the document shape with loosely typed fields; older
// documents carry numbers as strings and the gym flag as 1/"true".
type storedEntry struct {
	TimeSec    json.RawMessage `json:"timeSec"`
	DistanceKm json.RawMessage `json:"distanceKm"`
	Gym        json.RawMessage `json:"gym"`
}

func decodeRunLogs(raw string) (map[models.DateKey]models.RunLogEntry, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal run logs: %w", err)
	}

	out := make(map[models.DateKey]models.RunLogEntry, len(doc))
	for k, v := range doc {
		key, err := models.ParseDateKey(k)
		if err != nil {
			continue
		}
		var se storedEntry
		if err := json.Unmarshal(v, &se); err != nil {
			continue
		}
		e := models.RunLogEntry{
			TimeSeconds: coerceSeconds(se.TimeSec),
			DistanceKm:  coerceDistance(se.DistanceKm),
			Gym:         coerceBool(se.Gym),
		}
		if e.IsEmpty() {
			continue
		}
		out[key] = e
	}
	return out, nil
}

// coerceNumber reads a JSON number or a numeric string.
func coerceNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func coerceSeconds(raw json.RawMessage) int {
	f, ok := coerceNumber(raw)
	if !ok || f <= 0 {
		return 0
	}
	return models.FloorInt(f)
}

func coerceDistance(raw json.RawMessage) *float64 {
	f, ok := coerceNumber(raw)
	if !ok || f < 0 {
		return nil
	}
	return &f
}

func coerceBool(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	if f, ok := coerceNumber(raw); ok {
		return f != 0
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.EqualFold(strings.TrimSpace(s), "true")
	}
	return false
}
