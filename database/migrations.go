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

	"github.com/uptrace/bun"
)

// CreateSchema creates a table for every registered model, in priority
// order, skipping tables that already exist. Join-table models must already
// be registered on the bun.DB for relation resolution; Open takes care of
// that before calling here.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	for _, model := range RegisteredModels() {
		instance := model.Instance()
		if _, err := db.NewCreateTable().Model(instance).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table for %T: %w", instance, err)
		}
	}
	return nil
}
