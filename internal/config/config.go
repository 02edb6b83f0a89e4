// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is loaded once at startup and injected everywhere. Required
// values fail fast at load time instead of halfway through a submission.
type Config struct {
	Addr string

	AdminEmail     string
	WhatsAppNumber string
	PublicBaseURL  string
	FilesRoot      string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getenv("ADDR", ":8080"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "919542421108"),
		PublicBaseURL:  strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		FilesRoot:      getenv("FILES_ROOT", "./data/files"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBName:         os.Getenv("DB_NAME"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPPort:       getenv("SMTP_PORT", "587"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"ADMIN_EMAIL": c.AdminEmail,
		"DB_USER":     c.DBUser,
		"DB_NAME":     c.DBName,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("config: %s is required", name)
		}
		if isPlaceholder(value) {
			return fmt.Errorf("config: %s still has a placeholder value %q", name, value)
		}
	}
	if !strings.Contains(c.AdminEmail, "@") {
		return fmt.Errorf("config: ADMIN_EMAIL %q is not an email address", c.AdminEmail)
	}
	if c.SMTPHost != "" {
		if c.SMTPFrom == "" {
			return fmt.Errorf("config: SMTP_FROM is required when SMTP_HOST is set")
		}
		if isPlaceholder(c.SMTPFrom) || !strings.Contains(c.SMTPFrom, "@") {
			return fmt.Errorf("config: SMTP_FROM %q is not an email address", c.SMTPFrom)
		}
		if (c.SMTPUser == "") != (c.SMTPPass == "") {
			return fmt.Errorf("config: SMTP_USER and SMTP_PASS must be set together")
		}
	}
	return nil
}

// isPlaceholder catches copy-paste leftovers like "YOUR_SHEET_ID_HERE".
func isPlaceholder(v string) bool {
	upper := strings.ToUpper(v)
	return strings.HasPrefix(upper, "YOUR_") || strings.Contains(upper, "CHANGE_ME") || strings.Contains(upper, "_HERE")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
