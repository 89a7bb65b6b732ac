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

// Package models defines the persisted entities: a shared identity/audit base
// plus the concrete User, Role, and Permission records. Models register
// themselves with the database package so table creation follows from
// imports alone.
package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Entity carries the identity and audit fields shared by all persisted
// records. Deletion is logical: rows are flagged, never removed by the
// normal delete path, and every read filters the flag.
type Entity struct {
	ID          uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	DateCreated time.Time  `bun:"date_created,notnull" json:"date_created"`
	DateUpdated *time.Time `bun:"date_updated,nullzero" json:"date_updated,omitempty"`
	IsDeleted   bool       `bun:"is_deleted,notnull,default:false" json:"-"`
}

var _ bun.BeforeAppendModelHook = (*Entity)(nil)

// BeforeAppendModel stamps identity and audit fields: inserts generate the
// id and creation time, updates refresh the mutation time.
func (e *Entity) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.InsertQuery:
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if e.DateCreated.IsZero() {
			e.DateCreated = time.Now().UTC()
		}
	case *bun.UpdateQuery:
		now := time.Now().UTC()
		e.DateUpdated = &now
	}
	return nil
}

// MarkDeleted flags the record as logically removed.
func (e *Entity) MarkDeleted() {
	e.IsDeleted = true
}
