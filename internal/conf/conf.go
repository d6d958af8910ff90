package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Link   *Link   `json:"link"`
	Log    *Log    `json:"log"`
}

type Server struct {
	HTTP *Endpoint `json:"http"`
	GRPC *Endpoint `json:"grpc"`
	CORS *CORS     `json:"cors"`
}

// CORS controls which browser origins may call the HTTP API.
type CORS struct {
	// AllowedOrigins defaults to any origin.
	AllowedOrigins []string `json:"allowed_origins"`
}

type Endpoint struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

type Data struct {
	Database *Database `json:"database"`
	Redis    *Redis    `json:"redis"`
}

type Database struct {
	// Driver is "sqlite3" or "postgres".
	Driver       string   `json:"driver"`
	Source       string   `json:"source"`
	Timeout      Duration `json:"timeout"`
	MaxOpenConns int      `json:"max_open_conns"`
}

// Redis is optional; an empty Addr disables the lookup cache.
type Redis struct {
	Addr         string   `json:"addr"`
	Password     string   `json:"password"`
	DB           int      `json:"db"`
	ReadTimeout  Duration `json:"read_timeout"`
	WriteTimeout Duration `json:"write_timeout"`
	CacheTTL     Duration `json:"cache_ttl"`
}

type Link struct {
	// BaseURL prefixes short_url in responses, e.g. "http://localhost:8000".
	BaseURL       string   `json:"base_url"`
	CodeLength    int      `json:"code_length"`
	TTL           Duration `json:"ttl"`
	MaxAttempts   int      `json:"max_attempts"`
	ReapInterval  Duration `json:"reap_interval"`
	NotifyTimeout Duration `json:"notify_timeout"`
}

type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Format is "json" or "console".
	Format string `json:"format"`
}

// Duration decodes from either a Go duration string ("10m") or a number of nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		d.Duration = 0
	case float64:
		d.Duration = time.Duration(value)
	case string:
		if value == "" {
			d.Duration = 0
			return nil
		}
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
