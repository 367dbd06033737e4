package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, controller
//   address, credentials), security settings
// - default: Values common across all environments (timeouts, intervals),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Unifi   UnifiConfig
	Auth    AuthConfig
	CORS    CORSConfig
	Log     LogConfig
	SMTP    SMTPConfig
	Printer PrinterConfig
	Voucher VoucherConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type UnifiConfig struct {
	Host     string        `envconfig:"UNIFI_HOST" required:"true"`
	Port     int           `envconfig:"UNIFI_PORT" default:"443"`
	Site     string        `envconfig:"UNIFI_SITE" default:"default"`
	SiteName string        `envconfig:"UNIFI_SITE_NAME" default:""`
	Username string        `envconfig:"UNIFI_USERNAME" required:"true"`
	Password string        `envconfig:"UNIFI_PASSWORD" required:"true"`
	Timeout  time.Duration `envconfig:"UNIFI_TIMEOUT" default:"15s"`
}

type AuthConfig struct {
	Disabled  bool   `envconfig:"AUTH_DISABLED" default:"false"`
	Password  string `envconfig:"AUTH_PASSWORD" default:""`
	JWTSecret string `envconfig:"AUTH_JWT_SECRET" default:""`
	TokenTTL  string `envconfig:"AUTH_TOKEN_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     int    `envconfig:"SMTP_PORT" default:"0"`
	Username string `envconfig:"SMTP_USERNAME" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" default:""`
}

// PrinterConfig selects the document generator: "pdf", "escpos" or empty to
// disable printing endpoints.
type PrinterConfig struct {
	Type     string `envconfig:"PRINTER_TYPE" default:""`
	EscposIP string `envconfig:"PRINTER_ESCPOS_IP" default:""`
}

type VoucherConfig struct {
	// Types uses the legacy "expiration,usage,upload,download,megabytes;"
	// preset format. TypesFile, when set, loads a YAML catalog instead.
	Types       string `envconfig:"VOUCHER_TYPES" default:"480,1"`
	TypesFile   string `envconfig:"VOUCHER_TYPES_FILE" default:""`
	CustomTypes bool   `envconfig:"VOUCHER_CUSTOM" default:"true"`

	SyncInterval time.Duration `envconfig:"VOUCHER_SYNC_INTERVAL" default:"15m"`
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Port != 0 && c.From != ""
}

func (c PrinterConfig) Enabled() bool {
	return c.Type != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	// Cloud accounts authenticate against the vendor SSO, which the direct
	// controller API cannot use. Refuse them up front instead of failing on
	// the first remote call.
	if strings.Contains(c.Unifi.Username, "@") {
		return fmt.Errorf("UNIFI_USERNAME %q looks like a cloud account; cloud credentials are not supported", c.Unifi.Username)
	}
	if !c.Auth.Disabled {
		if c.Auth.Password == "" {
			return fmt.Errorf("AUTH_PASSWORD is required unless AUTH_DISABLED is set")
		}
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("AUTH_JWT_SECRET is required unless AUTH_DISABLED is set")
		}
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{Port: "3999"},
		Unifi: UnifiConfig{
			Host:     "localhost",
			Port:     8443,
			Site:     "default",
			Username: "admin",
			Password: "admin",
			Timeout:  2 * time.Second,
		},
		Auth: AuthConfig{
			Password:  "test-password",
			JWTSecret: "test-secret",
			TokenTTL:  "1h",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Voucher: VoucherConfig{
			Types:        "480,1;1440,0",
			CustomTypes:  true,
			SyncInterval: 15 * time.Minute,
		},
	}
}
