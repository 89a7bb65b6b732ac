/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads application settings from the process environment.
// A .env file, when present, is read by the entrypoint before Load runs.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tomoncle/scaffold/database"
)

// Config holds all runtime settings.
type Config struct {
	AppName string
	AppEnv  string
	Port    string
	GinMode string

	DatabaseType     string
	DatabaseURL      string
	DatabaseUser     string
	DatabasePassword string
	DatabaseHost     string
	DatabasePort     int
	DatabaseName     string
	DatabaseSSLMode  string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	EnableQueryLog   bool
	SlowQueryTime    time.Duration

	// Auth settings are reserved for the token-issuing layer.
	SecretKey                string
	Algorithm                string
	AccessTokenExpireMinutes int

	SeedEnabled bool
	SeedFile    string

	CORSAllowedOrigins []string
}

// Load reads settings from the environment, falling back to development
// defaults.
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "scaffold"),
		AppEnv:  getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8000"),
		GinMode: getenv("GIN_MODE", "debug"),

		DatabaseType:     getenv("DATABASE_TYPE", "sqlite"),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		DatabaseUser:     getenv("DATABASE_USER", ""),
		DatabasePassword: getenv("DATABASE_PASSWORD", ""),
		DatabaseHost:     getenv("DATABASE_HOST", "localhost"),
		DatabasePort:     getint("DATABASE_PORT", 5432),
		DatabaseName:     getenv("DATABASE_NAME", "scaffold"),
		DatabaseSSLMode:  getenv("DATABASE_SSL_MODE", "disable"),
		MaxOpenConns:     getint("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:     getint("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime:  getdur("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		EnableQueryLog:   getbool("DB_ENABLE_QUERY_LOG", false),
		SlowQueryTime:    getdur("DB_SLOW_QUERY_TIME", 200*time.Millisecond),

		SecretKey:                getenv("SECRET_KEY", ""),
		Algorithm:                getenv("ALGORITHM", "HS256"),
		AccessTokenExpireMinutes: getint("ACCESS_TOKEN_EXPIRE_MINUTES", 30),

		SeedEnabled: getbool("SEED_ENABLED", false),
		SeedFile:    getenv("SEED_FILE", "configs/seed.yaml"),

		CORSAllowedOrigins: getlist("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// DatabaseConfig translates the settings into a database connection config.
// DATABASE_URL, when set, overrides the individual connection fields.
func (c *Config) DatabaseConfig() *database.ConnectionConfig {
	cfg := database.DefaultConnectionConfig()
	cfg.Type = c.DatabaseType
	cfg.URL = c.DatabaseURL
	cfg.Host = c.DatabaseHost
	cfg.Port = c.DatabasePort
	cfg.Username = c.DatabaseUser
	cfg.Password = c.DatabasePassword
	cfg.DBName = c.DatabaseName
	cfg.SSLMode = c.DatabaseSSLMode
	cfg.MaxOpenConns = c.MaxOpenConns
	cfg.MaxIdleConns = c.MaxIdleConns
	cfg.ConnMaxLifetime = c.ConnMaxLifetime
	cfg.EnableQueryLog = c.EnableQueryLog
	cfg.SlowQueryTime = c.SlowQueryTime
	return cfg
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// NewLogger builds the application logger for the given environment.
func NewLogger(c *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if c.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getdur(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getlist(key string, fallback []string) []string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
