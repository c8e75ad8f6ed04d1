package repository

import (
	"context"
	"math"
	"strconv"
	"strings"

	"runwalk_timer/internal/models"
)

// SettingsKV stores each setting as an integer string under its field name
// (runSec, walkSec, setCount, warmupSec, finishSec).
type SettingsKV struct {
	kv KVRepo
}

func NewSettingsKV(kv KVRepo) *SettingsKV {
	return &SettingsKV{kv: kv}
}

// Load reads every field. Missing or unparseable values take the default;
// parsed values are clamped to the field minimum.
func (r *SettingsKV) Load(ctx context.Context, defaults models.Settings) (models.Settings, error) {
	out := defaults.Normalize()
	for _, f := range models.SettingFields {
		raw, ok, err := r.kv.Get(ctx, string(f))
		if err != nil {
			return defaults.Normalize(), err
		}
		if !ok {
			continue
		}
		v, ok := parseStoredInt(raw)
		if !ok {
			continue
		}
		out = out.With(f, v)
	}
	return out, nil
}

// Save writes a single field.
func (r *SettingsKV) Save(ctx context.Context, field models.SettingField, value int) error {
	return r.kv.Set(ctx, string(field), strconv.Itoa(value))
}

// parseStoredInt accepts integers and legacy decimal strings ("90.0").
func parseStoredInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return models.FloorInt(f), true
}
