package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	MailDriverSMTP = "smtp"
	MailDriverSES  = "ses"

	DefaultSMTPPort = 587
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	FrontendURL    string
	AllowedOrigins []string
	MaxBodyBytes   int64
	Mail           MailConfig
}

// MailConfig is the mail transport configuration. It is read once at
// startup and never mutated afterwards.
type MailConfig struct {
	Driver string // smtp | ses
	// SMTP Configuration
	SMTPHost    string
	SMTPPort    int
	SMTPSecure  bool // implicit TLS (port 465 style); STARTTLS is negotiated otherwise
	SMTPUser    string
	SMTPPass    string
	SMTPTimeout time.Duration
	// SES Configuration
	AWSRegion string
	// Routing
	ContactTo   string
	ContactFrom string // optional override, falls back to SMTPUser
}

func LoadConfig() (*Config, error) {
	// Load .env file (only present locally; ignored when missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS"),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 64<<10)),
		Mail:           LoadMailConfig(),
	}

	if missing := cfg.Mail.MissingKeys(); len(missing) > 0 {
		log.Printf("WARNING: mail transport not fully configured (missing %s). Contact form will report a configuration error.", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadMailConfig reads the mail transport settings from the environment
func LoadMailConfig() MailConfig {
	return MailConfig{
		Driver:      strings.ToLower(getEnv("MAIL_DRIVER", MailDriverSMTP)),
		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnvPort("SMTP_PORT", DefaultSMTPPort),
		SMTPSecure:  getEnvBool("SMTP_SECURE", false),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		SMTPTimeout: time.Duration(getEnvInt("SMTP_TIMEOUT_SECONDS", 0)) * time.Second,
		AWSRegion:   getEnv("AWS_REGION", ""),
		ContactTo:   getEnv("CONTACT_TO_EMAIL", ""),
		ContactFrom: getEnv("CONTACT_FROM_EMAIL", ""),
	}
}

// MissingKeys lists the environment keys the selected driver needs but does
// not have. An empty result means the mail transport can be attempted.
func (m MailConfig) MissingKeys() []string {
	var missing []string
	switch m.Driver {
	case MailDriverSES:
		if m.AWSRegion == "" {
			missing = append(missing, "AWS_REGION")
		}
		if m.ContactFrom == "" {
			missing = append(missing, "CONTACT_FROM_EMAIL")
		}
	default:
		if m.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if m.SMTPUser == "" {
			missing = append(missing, "SMTP_USER")
		}
		if m.SMTPPass == "" {
			missing = append(missing, "SMTP_PASS")
		}
	}
	if m.ContactTo == "" {
		missing = append(missing, "CONTACT_TO_EMAIL")
	}
	return missing
}

// Presence reports which keys are set, without their values, for diagnostics
func (m MailConfig) Presence() map[string]bool {
	return map[string]bool{
		"SMTP_HOST":          m.SMTPHost != "",
		"SMTP_USER":          m.SMTPUser != "",
		"SMTP_PASS":          m.SMTPPass != "",
		"AWS_REGION":         m.AWSRegion != "",
		"CONTACT_TO_EMAIL":   m.ContactTo != "",
		"CONTACT_FROM_EMAIL": m.ContactFrom != "",
	}
}

// IsConfigured checks if the mail transport has every required value
func (m MailConfig) IsConfigured() bool {
	return len(m.MissingKeys()) == 0
}

// From returns the envelope sender: the explicit override or the SMTP login
func (m MailConfig) From() string {
	if m.ContactFrom != "" {
		return m.ContactFrom
	}
	return m.SMTPUser
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvPort is getEnvInt restricted to valid TCP ports; zero or out of range
// values use the fallback
func getEnvPort(key string, fallback int) int {
	port := getEnvInt(key, fallback)
	if port <= 0 || port > 65535 {
		return fallback
	}
	return port
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.TrimRight(part, "/"))
		}
	}
	return out
}
