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

// Package service orchestrates business rules over the generic repository:
// existence and uniqueness checks, entity construction and mutation, and
// mapping of entities to output shapes. Failures are reported through the
// ErrNotFound/ErrConflict taxonomy.
package service

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/tomoncle/scaffold/database"
	"github.com/tomoncle/scaffold/repository"
	"github.com/tomoncle/scaffold/types"
)

// Mapper converts a persisted entity into an output shape.
type Mapper[T, O any] func(*T) O

// Base is the generic service over one entity type T and output shape O.
// Concrete services embed it, supply the output mapper, and add their own
// filter construction and input mapping.
type Base[T, O any] struct {
	name       string
	repo       repository.Repository[T]
	mapOut     Mapper[T, O]
	mapCreated Mapper[T, O]
}

// NewBase constructs the generic service. name appears in error messages
// ("user not found"). mapCreated is optional; when nil, mapOut is used for
// create responses too.
func NewBase[T, O any](db bun.IDB, name string, mapOut Mapper[T, O], mapCreated Mapper[T, O]) *Base[T, O] {
	if mapCreated == nil {
		mapCreated = mapOut
	}
	return &Base[T, O]{
		name:       name,
		repo:       repository.NewRepository[T](db),
		mapOut:     mapOut,
		mapCreated: mapCreated,
	}
}

// Repository exposes the underlying repository for entity-specific queries.
func (s *Base[T, O]) Repository() repository.Repository[T] {
	return s.repo
}

// GetByID fetches one live entity and maps it, or reports ErrNotFound.
func (s *Base[T, O]) GetByID(ctx context.Context, id any) (O, error) {
	var zero O
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if entity == nil {
		return zero, notFound(s.name)
	}
	return s.mapOut(entity), nil
}

// GetPagedMapped runs a paginated query and maps every item, returning the
// mapped page and the total count of live matches.
func (s *Base[T, O]) GetPagedMapped(ctx context.Context, req *types.PageRequest, include ...repository.Include) ([]O, int, error) {
	page, err := s.repo.GetPaged(ctx, req, include...)
	if err != nil {
		return nil, 0, err
	}
	items := make([]O, 0, len(page.Items))
	for _, entity := range page.Items {
		items = append(items, s.mapOut(entity))
	}
	return items, page.Total, nil
}

// CreateEntity persists a caller-constructed entity. When conflictFilter is
// given and a live entity already matches it, the create is rejected with a
// conflict before touching the store. Store-level integrity violations are
// converted to conflicts carrying the driver message.
func (s *Base[T, O]) CreateEntity(ctx context.Context, entity *T, conflictFilter *types.QueryFilter) (O, error) {
	var zero O
	if !conflictFilter.IsEmpty() {
		existing, err := s.repo.FirstOrDefault(ctx, conflictFilter)
		if err != nil {
			return zero, err
		}
		if existing != nil {
			return zero, conflict(s.name + " already exists")
		}
	}
	if err := s.repo.Add(ctx, entity); err != nil {
		if database.IsConflict(err) {
			return zero, conflict(err.Error())
		}
		return zero, err
	}
	return s.mapCreated(entity), nil
}

// UpdateEntity loads the entity, applies the caller-supplied mutation, and
// persists it. Absent entities report ErrNotFound, integrity violations
// ErrConflict.
func (s *Base[T, O]) UpdateEntity(ctx context.Context, id any, apply func(*T)) (O, error) {
	var zero O
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if entity == nil {
		return zero, notFound(s.name)
	}
	apply(entity)
	if err := s.repo.Update(ctx, entity); err != nil {
		if database.IsConflict(err) {
			return zero, conflict(err.Error())
		}
		return zero, err
	}
	return s.mapOut(entity), nil
}

// Delete logically removes the entity. Deleting an absent (or already
// deleted) entity reports ErrNotFound.
func (s *Base[T, O]) Delete(ctx context.Context, id any) error {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entity == nil {
		return notFound(s.name)
	}
	if err := s.repo.Remove(ctx, entity); err != nil {
		if database.IsConflict(err) {
			return conflict(err.Error())
		}
		return err
	}
	return nil
}
