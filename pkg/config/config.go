package config

import (
	"time"
)

type DB struct {
	Url     string `envconfig:"URL"`
	Migrate bool   `envconfig:"MIGRATE" default:"false"`
	// MigrationsPath points at the golang-migrate source directory.
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"file://migrations"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

type Redis struct {
	URL string `envconfig:"URL" default:""`
	// Stream and Group name the Redis Streams transport for notifications.
	Stream string `envconfig:"STREAM" default:"agrosphere:events"`
	Group  string `envconfig:"GROUP" default:"agrosphere"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[agrosphere]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// Dashboard controls the ledger summary windows that are not fixed by the
// product: how many raw records come back and how many trailing years the
// per-year chart spans.
type Dashboard struct {
	RecentLimit   int `envconfig:"RECENT_LIMIT" default:"10"`
	TrailingYears int `envconfig:"TRAILING_YEARS" default:"5"`
}

// Chat bounds message/conversation pagination; callers supply their own
// limits inside these.
type Chat struct {
	DefaultPageSize int `envconfig:"DEFAULT_PAGE_SIZE" default:"50"`
	MaxPageSize     int `envconfig:"MAX_PAGE_SIZE" default:"200"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Auth      *Auth      `envconfig:"AUTH"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Dashboard *Dashboard `envconfig:"DASHBOARD"`
	Chat      *Chat      `envconfig:"CHAT"`
}
