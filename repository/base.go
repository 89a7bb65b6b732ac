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
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/tomoncle/scaffold/types"
)

// ErrMultipleResults is returned by SingleOrDefault when the filter matches
// more than one live row.
var ErrMultipleResults = errors.New("query matched more than one row")

// softDeletable is satisfied by models embedding the shared entity base.
type softDeletable interface {
	MarkDeleted()
}

type baseRepositoryImpl[T any] struct {
	db bun.IDB
}

// NewRepository returns a generic repository backed by the provided Bun
// handle. Accepting bun.IDB lets callers pass the root DB, a request-scoped
// connection, or a transaction.
func NewRepository[T any](db bun.IDB) Repository[T] {
	return &baseRepositoryImpl[T]{db: db}
}

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

// applyBase conjoins the soft-delete base condition, the optional caller
// filter, and the optional includes onto a select query.
func applyBase(query *bun.SelectQuery, filter *types.QueryFilter, include []Include) *bun.SelectQuery {
	// The alias placeholder keeps the predicate unambiguous when an include
	// joins a related table carrying the same column.
	query = query.Where("?TableAlias.is_deleted = ?", false)
	if !filter.IsEmpty() {
		query = query.Where(filter.Expr, filter.Args...)
	}
	for _, inc := range include {
		if inc != nil {
			query = inc(query)
		}
	}
	return query
}

func (r *baseRepositoryImpl[T]) GetByID(ctx context.Context, id any, include ...Include) (*T, error) {
	var entity T
	query := applyBase(r.db.NewSelect().Model(&entity), types.NewQueryFilter("?TableAlias.id = ?", id), include)
	if err := query.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) GetAll(ctx context.Context, include ...Include) ([]*T, error) {
	return r.Find(ctx, nil, include...)
}

func (r *baseRepositoryImpl[T]) Find(ctx context.Context, filter *types.QueryFilter, include ...Include) ([]*T, error) {
	entities := make([]*T, 0)
	query := applyBase(r.db.NewSelect().Model(&entities), filter, include)
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) FirstOrDefault(ctx context.Context, filter *types.QueryFilter, include ...Include) (*T, error) {
	var entity T
	query := applyBase(r.db.NewSelect().Model(&entity), filter, include)
	if err := query.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) SingleOrDefault(ctx context.Context, filter *types.QueryFilter, include ...Include) (*T, error) {
	entities := make([]*T, 0, 2)
	query := applyBase(r.db.NewSelect().Model(&entities), filter, include)
	if err := query.Limit(2).Scan(ctx); err != nil {
		return nil, err
	}
	switch len(entities) {
	case 0:
		return nil, nil
	case 1:
		return entities[0], nil
	default:
		return nil, ErrMultipleResults
	}
}

func (r *baseRepositoryImpl[T]) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	query := applyBase(r.db.NewSelect().Model((*T)(nil)), filter, nil)
	return query.Count(ctx)
}

func (r *baseRepositoryImpl[T]) Any(ctx context.Context, filter *types.QueryFilter) (bool, error) {
	query := applyBase(r.db.NewSelect().Model((*T)(nil)), filter, nil)
	return query.Limit(1).Exists(ctx)
}

func (r *baseRepositoryImpl[T]) Add(ctx context.Context, entity *T) error {
	_, err := r.db.NewInsert().Model(entity).Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) AddRange(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&entities).Exec(ctx)
		return err
	})
}

func (r *baseRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	_, err := r.db.NewUpdate().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) UpdateRange(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, entity := range entities {
			if _, err := tx.NewUpdate().Model(entity).WherePK().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *baseRepositoryImpl[T]) Remove(ctx context.Context, entity *T) error {
	sd, ok := any(entity).(softDeletable)
	if !ok {
		return fmt.Errorf("entity %T does not support logical deletion", entity)
	}
	sd.MarkDeleted()
	return r.Update(ctx, entity)
}

func (r *baseRepositoryImpl[T]) RemoveRange(ctx context.Context, entities []*T) error {
	for _, entity := range entities {
		if _, ok := any(entity).(softDeletable); !ok {
			return fmt.Errorf("entity %T does not support logical deletion", entity)
		}
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, entity := range entities {
			any(entity).(softDeletable).MarkDeleted()
			if _, err := tx.NewUpdate().Model(entity).WherePK().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *baseRepositoryImpl[T]) Purge(ctx context.Context, entity *T) error {
	_, err := r.db.NewDelete().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) PurgeRange(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, entity := range entities {
			if _, err := tx.NewDelete().Model(entity).WherePK().Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *baseRepositoryImpl[T]) GetPaged(ctx context.Context, req *types.PageRequest, include ...Include) (*types.Pagination[T], error) {
	entities := make([]*T, 0, req.Size())
	query := applyBase(r.db.NewSelect().Model(&entities), req.Filter(), include)

	if col := req.OrderBy(); col != "" {
		if req.Ascending() {
			query = query.OrderExpr("? ASC", bun.Ident(col))
		} else {
			query = query.OrderExpr("? DESC", bun.Ident(col))
		}
	}

	// ScanAndCount composes the page fetch and the unbounded count from the
	// same query, so the two reads cannot drift apart in composition.
	total, err := query.Limit(req.Size()).Offset(req.Offset()).ScanAndCount(ctx)
	if err != nil {
		return nil, err
	}

	return &types.Pagination[T]{
		Page:  req.Page(),
		Size:  req.Size(),
		Total: total,
		Items: entities,
	}, nil
}
