package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DatabaseURL  string
	DatabaseName string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:         def(os.Getenv("PORT"), "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения. БД не критична: сервер умеет
// работать в деградированном режиме без подключения.
func (c *Config) Validate() (warnings []string, err error) {
	if c.DatabaseURL == "" {
		warnings = append(warnings, "DATABASE_URL is empty, store will be unavailable")
	}
	if c.DatabaseName == "" {
		warnings = append(warnings, "DATABASE_NAME is empty")
	}
	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8000")
	}
	return warnings, nil
}

// GetDSN — полная строка подключения. DATABASE_NAME дописывается,
// если в DATABASE_URL база не указана.
func (c *Config) GetDSN() string {
	dsn := c.DatabaseURL
	if c.DatabaseName == "" {
		return dsn
	}
	rest := dsn
	if i := strings.Index(dsn, "://"); i >= 0 {
		rest = dsn[i+3:]
	}
	if !strings.Contains(rest, "/") {
		dsn = strings.TrimRight(dsn, "/") + "/" + c.DatabaseName
	}
	return dsn
}

// GetDSNSafe — строка подключения без пароля (для логов).
func (c *Config) GetDSNSafe() string {
	dsn := c.GetDSN()
	at := strings.LastIndex(dsn, "@")
	colon := strings.Index(dsn, "://")
	if at < 0 || colon < 0 {
		return dsn
	}
	cred := dsn[colon+3 : at]
	if i := strings.Index(cred, ":"); i >= 0 {
		return fmt.Sprintf("%s%s:***%s", dsn[:colon+3], cred[:i], dsn[at:])
	}
	return dsn
}
