package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Config holds the environment-driven settings plus the open database
// handle. DBDriver selects between the two registered drivers: "postgres"
// (lib/pq) and "pgx" (pgx stdlib). Both speak to the same schema.
type Config struct {
	Addr        string
	Env         string // dev|prod
	LogLevel    string
	DBDriver    string
	DatabaseURL string
	JWTSecret   string
	MediaDir    string
	SentryDSN   string

	DB *sql.DB
}

var AppConfig *Config

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		Addr:        getenv("HTTP_ADDR", ":8080"),
		Env:         getenv("ENV", "dev"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		DBDriver:    getenv("DB_DRIVER", "postgres"),
		DatabaseURL: mustEnv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "class-companion-secret-key"),
		MediaDir:    getenv("MEDIA_DIR", "./media"),
		SentryDSN:   os.Getenv("SENTRY_DSN"),
	}
	if cfg.DBDriver != "postgres" && cfg.DBDriver != "pgx" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or pgx)", cfg.DBDriver)
	}
	AppConfig = cfg
	return cfg, nil
}

// InitDB opens the configured backend and verifies connectivity.
func (c *Config) InitDB() error {
	db, err := sql.Open(c.DBDriver, c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database (%s): %w", c.DBDriver, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	c.DB = db
	return nil
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("required env %s is empty", k)
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
