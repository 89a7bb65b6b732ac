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

package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/scaffold/internal/testdb"
	"github.com/tomoncle/scaffold/service"
)

func TestRoleLifecycle(t *testing.T) {
	db := testdb.Open(t)
	svc := service.NewRoleService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &service.RoleInput{Name: "admin", Description: "full access"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	_, err = svc.Create(ctx, &service.RoleInput{Name: "admin"})
	assert.ErrorIs(t, err, service.ErrConflict)

	updated, err := svc.UpdateItem(ctx, created.ID, &service.RoleUpdate{Description: "administrator"})
	require.NoError(t, err)
	assert.Equal(t, "administrator", updated.Description)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPermissionLifecycle(t *testing.T) {
	db := testdb.Open(t)
	svc := service.NewPermissionService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, &service.PermissionInput{Name: "users:read"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &service.PermissionInput{Name: "users:read"})
	assert.ErrorIs(t, err, service.ErrConflict)

	items, total, err := svc.GetPaged(ctx, &service.PermissionPageQuery{
		PageParams: service.PageParams{Page: 1, Size: 10, Ascending: true},
		Name:       "read",
		OrderBy:    "name",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}
