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

package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "scaffold", cfg.AppName)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, 5432, cfg.DatabasePort)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.False(t, cfg.SeedEnabled)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "6432")
	t.Setenv("DATABASE_USER", "app")
	t.Setenv("DATABASE_PASSWORD", "s3cret")
	t.Setenv("DATABASE_NAME", "appdb")
	t.Setenv("DB_ENABLE_QUERY_LOG", "true")
	t.Setenv("DB_SLOW_QUERY_TIME", "1s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, 6432, cfg.DatabasePort)
	assert.True(t, cfg.EnableQueryLog)
	assert.Equal(t, time.Second, cfg.SlowQueryTime)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)

	db := cfg.DatabaseConfig()
	assert.Equal(t, "postgres", db.Type)
	assert.Equal(t, "db.internal", db.Host)
	assert.Equal(t, 6432, db.Port)
	assert.Equal(t, "app", db.Username)
	assert.Equal(t, "s3cret", db.Password)
	assert.Equal(t, "appdb", db.DBName)
}

func TestDatabaseURLOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/appdb?sslmode=disable")

	cfg := Load()
	db := cfg.DatabaseConfig()
	assert.Equal(t, "postgres://app:pw@db:5432/appdb?sslmode=disable", db.URL)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DATABASE_PORT", "not-a-number")
	t.Setenv("DB_ENABLE_QUERY_LOG", "not-a-bool")
	t.Setenv("DB_CONN_MAX_LIFETIME", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 5432, cfg.DatabasePort)
	assert.False(t, cfg.EnableQueryLog)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
}

func TestNewLogger(t *testing.T) {
	dev := NewLogger(&Config{AppEnv: "development"})
	require.NotNil(t, dev)
	assert.Equal(t, logrus.DebugLevel, dev.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)

	prod := NewLogger(&Config{AppEnv: "production"})
	assert.Equal(t, logrus.InfoLevel, prod.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)
}
