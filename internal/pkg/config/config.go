package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeout, formats, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Admin   AdminConfig
	SMS     SMSConfig
	Contact ContactConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"2h"`
}

// AdminConfig is the single fixed identity allowed to log in.
// ADMIN_PASSWORD_HASH is a bcrypt hash, never the plain password.
type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" required:"true"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

// SMSConfig holds the Twilio credentials plus the two fixed channel
// addresses: FromNumber is the salon's sending number, OwnerNumber is the
// operator phone that receives approval prompts and is the only sender
// accepted on the inbound webhook.
type SMSConfig struct {
	AccountSID  string `envconfig:"TWILIO_ACCOUNT_SID" required:"true"`
	AuthToken   string `envconfig:"TWILIO_AUTH_TOKEN" required:"true"`
	FromNumber  string `envconfig:"TWILIO_FROM_NUMBER" required:"true"`
	OwnerNumber string `envconfig:"SALON_OWNER_NUMBER" required:"true"`
}

type ContactConfig struct {
	SMTPHost  string `envconfig:"SMTP_HOST" required:"true"`
	SMTPPort  string `envconfig:"SMTP_PORT" default:"587"`
	FromEmail string `envconfig:"CONTACT_FROM_EMAIL" required:"true"`
	ToEmail   string `envconfig:"CONTACT_TO_EMAIL" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "2h",
		},
		Admin: AdminConfig{
			Username: "admin",
			// Placeholder hash; tests that exercise login generate their own.
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		},
		SMS: SMSConfig{
			AccountSID:  "ACtest",
			AuthToken:   "test-token",
			FromNumber:  "+15005550006",
			OwnerNumber: "+15005550001",
		},
		Contact: ContactConfig{
			SMTPHost:  "localhost",
			SMTPPort:  "1025",
			FromEmail: "no-reply@salon.local",
			ToEmail:   "owner@salon.local",
		},
	}
}
