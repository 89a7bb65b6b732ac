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

package repository

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/tomoncle/scaffold/types"
)

// Include transforms a select query, typically to eager-load relations.
type Include func(*bun.SelectQuery) *bun.SelectQuery

// ReadRepository defines soft-delete-aware read operations for a generic
// entity type. Lookups return (nil, nil) when no live row matches.
type ReadRepository[T any] interface {
	GetByID(ctx context.Context, id any, include ...Include) (*T, error)

	GetAll(ctx context.Context, include ...Include) ([]*T, error)

	Find(ctx context.Context, filter *types.QueryFilter, include ...Include) ([]*T, error)

	FirstOrDefault(ctx context.Context, filter *types.QueryFilter, include ...Include) (*T, error)

	// SingleOrDefault fails with ErrMultipleResults when more than one live
	// row matches the filter.
	SingleOrDefault(ctx context.Context, filter *types.QueryFilter, include ...Include) (*T, error)

	Count(ctx context.Context, filter *types.QueryFilter) (int, error)

	Any(ctx context.Context, filter *types.QueryFilter) (bool, error)
}

// WriteRepository defines mutation operations. Deletion is logical: Remove
// flags rows and later reads skip them. Purge physically deletes and exists
// for maintenance paths only. Range operations run in a single transaction.
type WriteRepository[T any] interface {
	Add(ctx context.Context, entity *T) error
	AddRange(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
	UpdateRange(ctx context.Context, entities []*T) error
	Remove(ctx context.Context, entity *T) error
	RemoveRange(ctx context.Context, entities []*T) error
	Purge(ctx context.Context, entity *T) error
	PurgeRange(ctx context.Context, entities []*T) error
}

// PageRepository defines paginated listing: one bounded slice of the result
// set plus the total count of live matches.
type PageRepository[T any] interface {
	GetPaged(ctx context.Context, req *types.PageRequest, include ...Include) (*types.Pagination[T], error)
}

// Repository combines reads, writes, and pagination, and exposes Bun query
// builders as an escape hatch for entity-specific queries.
type Repository[T any] interface {
	ReadRepository[T]
	WriteRepository[T]
	PageRepository[T]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
