package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"runwalk_timer/internal/models"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RUNWALK_HTTP_PORT.
const EnvPrefix = "RUNWALK"

const (
	minTick = 10 * time.Millisecond
	maxTick = time.Minute
)

type Config struct {
	HTTP     HTTP
	DBPath   string
	LogLevel string
	Tick     time.Duration
	Defaults models.Settings
}

type HTTP struct {
	Host string
	Port int
}

// Addr is the listen address, host:port.
func (h HTTP) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

func setDefaults(v *viper.Viper) {
	d := models.DefaultSettings()
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8080)
	v.SetDefault("db.path", "runwalk.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("timer.tick", "1s")
	v.SetDefault("defaults.run_sec", d.RunSeconds)
	v.SetDefault("defaults.walk_sec", d.WalkSeconds)
	v.SetDefault("defaults.sets", d.Sets)
	v.SetDefault("defaults.warmup_sec", d.WarmupSeconds)
	v.SetDefault("defaults.finish_sec", d.FinishSeconds)
}

// Load reads config.yml from dir (if present) and RUNWALK_* environment
// overrides on top of built-in defaults. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{
			Host: v.GetString("http.host"),
			Port: v.GetInt("http.port"),
		},
		DBPath:   strings.TrimSpace(v.GetString("db.path")),
		LogLevel: strings.ToLower(v.GetString("log.level")),
		Tick:     v.GetDuration("timer.tick"),
		Defaults: models.Settings{
			RunSeconds:    v.GetInt("defaults.run_sec"),
			WalkSeconds:   v.GetInt("defaults.walk_sec"),
			Sets:          v.GetInt("defaults.sets"),
			WarmupSeconds: v.GetInt("defaults.warmup_sec"),
			FinishSeconds: v.GetInt("defaults.finish_sec"),
		}.Normalize(),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.DBPath == "" {
		return errors.New("db.path must not be empty")
	}
	if c.Tick < minTick || c.Tick > maxTick {
		return fmt.Errorf("timer.tick must be between %s and %s, got %s", minTick, maxTick, c.Tick)
	}
	return nil
}
