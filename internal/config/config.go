package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the service settings. Environment variables override the
// optional YAML file, which overrides the defaults.
type Config struct {
	Port string `yaml:"port"`

	DBDriver   string `yaml:"db_driver"`
	DBPath     string `yaml:"db_path"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`

	AdminToken  string   `yaml:"admin_token"`
	IPHashSalt  string   `yaml:"ip_hash_salt"`
	CORSOrigins []string `yaml:"cors_origins"`

	// RetentionDays of 0 keeps responses forever.
	RetentionDays int    `yaml:"retention_days"`
	JobSchedule   string `yaml:"job_schedule"`
}

func defaults() *Config {
	return &Config{
		Port:        "8080",
		DBDriver:    DriverSQLite,
		DBPath:      "chronopro.db",
		DBHost:      "localhost",
		DBPort:      "5432",
		DBUser:      "postgres",
		DBName:      "postgres",
		CORSOrigins: []string{"*"},
		JobSchedule: "@every 1h",
	}
}

// Load reads .env (if present), the YAML file named by CHRONOPRO_CONFIG
// (if set) and finally the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv("CHRONOPRO_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) string) error {
	set := func(key string, dst *string) {
		if v := lookup(key); v != "" {
			*dst = v
		}
	}
	set("PORT", &c.Port)
	set("DB_DRIVER", &c.DBDriver)
	set("DB_PATH", &c.DBPath)
	set("DB_HOST", &c.DBHost)
	set("DB_PORT", &c.DBPort)
	set("DB_USER", &c.DBUser)
	set("DB_PASSWORD", &c.DBPassword)
	set("DB_NAME", &c.DBName)
	set("ADMIN_TOKEN", &c.AdminToken)
	set("IP_HASH_SALT", &c.IPHashSalt)
	set("JOB_SCHEDULE", &c.JobSchedule)

	if v := lookup("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
	if v := lookup("RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RETENTION_DAYS: %w", err)
		}
		c.RetentionDays = days
	}
	return nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.RetentionDays < 0 {
		return fmt.Errorf("RETENTION_DAYS must not be negative, got %d", c.RetentionDays)
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}
	return nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
