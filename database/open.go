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

package database

import (
	"context"
	"fmt"
)

// Open validates the configuration, connects, and optionally creates tables
// for all registered models. The returned manager owns the connection; callers
// inject manager.GetDB() wherever a bun.IDB is needed.
func Open(ctx context.Context, cfg *ConnectionConfig, logger Logger, migrate bool) (Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}

	supported := map[string]bool{
		"mysql": true, "postgres": true, "postgresql": true, "sqlite": true, "sqlite3": true,
	}
	if !supported[cfg.Type] {
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	manager := NewManager(cfg)
	manager.SetLogger(logger)

	if err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := manager.GetDB()
	db.RegisterModel(RegisteredModelInstances()...)

	if migrate {
		if err := CreateSchema(ctx, db); err != nil {
			_ = manager.Disconnect()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
		if logger != nil {
			logger.Info("database schema is up to date")
		}
	}
	return manager, nil
}
