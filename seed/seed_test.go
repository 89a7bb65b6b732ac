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

package seed_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/scaffold/internal/testdb"
	"github.com/tomoncle/scaffold/models"
	"github.com/tomoncle/scaffold/seed"
)

const sampleSeed = `
permissions:
  - name: users:read
    description: List and view users
  - name: users:write
    description: Create, update and delete users

roles:
  - name: admin
    description: Full access
    permissions:
      - users:read
      - users:write
  - name: viewer
    permissions:
      - users:read
`

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	f, err := seed.Load(writeSeedFile(t, sampleSeed))
	require.NoError(t, err)

	require.Len(t, f.Permissions, 2)
	assert.Equal(t, "users:read", f.Permissions[0].Name)
	require.Len(t, f.Roles, 2)
	assert.Equal(t, []string{"users:read", "users:write"}, f.Roles[0].Permissions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := seed.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyIsIdempotent(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	logger := quietLogger()

	f, err := seed.Load(writeSeedFile(t, sampleSeed))
	require.NoError(t, err)

	require.NoError(t, seed.Apply(ctx, db, f, logger))
	require.NoError(t, seed.Apply(ctx, db, f, logger))

	roles, err := db.NewSelect().Model((*models.Role)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, roles)

	perms, err := db.NewSelect().Model((*models.Permission)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, perms)

	links, err := db.NewSelect().Model((*models.RolePermission)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, links)
}

func TestApplyUnknownPermission(t *testing.T) {
	db := testdb.Open(t)

	f := &seed.File{
		Roles: []seed.RoleSeed{{Name: "admin", Permissions: []string{"nope"}}},
	}
	err := seed.Apply(context.Background(), db, f, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown permission")

	// The transaction rolled back, so nothing was inserted.
	n, err := db.NewSelect().Model((*models.Role)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
