package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets)
// - default: Values common across all environments (timezone, hall rules, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Building    BuildingConfig
	Reservation ReservationConfig
	Export      ExportConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Bogota"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"lax"`
}

type BuildingConfig struct {
	Name string `envconfig:"BUILDING_NAME" default:"Torres del Valle"`
}

type ReservationConfig struct {
	// same_day keeps the historical rule; overlap compares the booked time ranges.
	ConflictMode string `envconfig:"RESERVATION_CONFLICT_MODE" default:"same_day"`
	HallCapacity int    `envconfig:"RESERVATION_HALL_CAPACITY" default:"50"`
	HallOpens    string `envconfig:"RESERVATION_HALL_OPENS" default:"08:00"`
	HallCloses   string `envconfig:"RESERVATION_HALL_CLOSES" default:"23:00"`
}

type ExportConfig struct {
	Dir string `envconfig:"EXPORT_DIR" default:"exports"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

var (
	ErrInvalidJWTDuration = errors.New("invalid JWT duration")
	ErrInvalidHallRules   = errors.New("invalid hall rules")
	ErrUnknownConflict    = errors.New("unknown reservation conflict mode")
)

// Validate catches settings envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	d, err := time.ParseDuration(c.JWT.Duration)
	if err != nil || d <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidJWTDuration, c.JWT.Duration)
	}
	if c.Reservation.HallCapacity <= 0 {
		return fmt.Errorf("%w: capacity %d", ErrInvalidHallRules, c.Reservation.HallCapacity)
	}
	opens, errOpen := time.Parse("15:04", c.Reservation.HallOpens)
	closes, errClose := time.Parse("15:04", c.Reservation.HallCloses)
	if errOpen != nil || errClose != nil || !opens.Before(closes) {
		return fmt.Errorf("%w: hours %s-%s", ErrInvalidHallRules, c.Reservation.HallOpens, c.Reservation.HallCloses)
	}
	switch c.Reservation.ConflictMode {
	case "same_day", "overlap":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConflict, c.Reservation.ConflictMode)
	}
	return nil
}

// CLIConfig is the subset the offline export command needs; it has no server secrets.
type CLIConfig struct {
	Log      LogConfig
	Building BuildingConfig
	Export   ExportConfig
}

func LoadCLIConfig() (CLIConfig, error) {
	var cfg CLIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Bogota",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "lax",
		},
		Building: BuildingConfig{
			Name: "Torres del Valle",
		},
		Reservation: ReservationConfig{
			ConflictMode: "same_day",
			HallCapacity: 50,
			HallOpens:    "08:00",
			HallCloses:   "23:00",
		},
		Export: ExportConfig{
			Dir: "exports",
		},
	}
}
