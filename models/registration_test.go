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

package models_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/scaffold/database"
	"github.com/tomoncle/scaffold/internal/testdb"
	"github.com/tomoncle/scaffold/models"
)

// Join models must come before the models whose m2m fields reference them;
// bun resolves those relations eagerly at registration time.
func TestJoinModelRegistersBeforeRole(t *testing.T) {
	var roleAt, joinAt int
	for i, instance := range database.RegisteredModelInstances() {
		switch instance.(type) {
		case *models.Role:
			roleAt = i
		case *models.RolePermission:
			joinAt = i
		}
	}
	assert.Less(t, joinAt, roleAt)
}

func TestRolePermissionsRelation(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	role := &models.Role{Name: "admin"}
	_, err := db.NewInsert().Model(role).Exec(ctx)
	require.NoError(t, err)

	perm := &models.Permission{Name: "users:read"}
	_, err = db.NewInsert().Model(perm).Exec(ctx)
	require.NoError(t, err)

	link := &models.RolePermission{RoleID: role.ID, PermissionID: perm.ID}
	_, err = db.NewInsert().Model(link).Exec(ctx)
	require.NoError(t, err)

	var got models.Role
	err = db.NewSelect().Model(&got).
		Relation("Permissions").
		Where("r.id = ?", role.ID).
		Scan(ctx)
	require.NoError(t, err)
	require.Len(t, got.Permissions, 1)
	assert.Equal(t, "users:read", got.Permissions[0].Name)
}
