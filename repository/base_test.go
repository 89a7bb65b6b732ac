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

package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/scaffold/database"
	"github.com/tomoncle/scaffold/internal/testdb"
	"github.com/tomoncle/scaffold/models"
	"github.com/tomoncle/scaffold/repository"
	"github.com/tomoncle/scaffold/types"
)

func newUser(email, name string) *models.User {
	return &models.User{Email: email, Password: "secret", Name: name, LastName: "doe"}
}

func seedUsers(t *testing.T, repo repository.Repository[models.User], n int) []*models.User {
	t.Helper()
	ctx := context.Background()
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		u := newUser(fmt.Sprintf("user%02d@example.com", i), fmt.Sprintf("user%02d", i))
		require.NoError(t, repo.Add(ctx, u))
		users = append(users, u)
	}
	return users
}

func TestAddAssignsIdentityAndTimestamps(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	u := newUser("alice@example.com", "alice")
	require.NoError(t, repo.Add(ctx, u))

	assert.NotZero(t, u.ID)
	assert.False(t, u.DateCreated.IsZero())
	assert.Nil(t, u.DateUpdated)
}

func TestGetByIDSkipsRemovedRows(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	u := newUser("alice@example.com", "alice")
	require.NoError(t, repo.Add(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.Email, got.Email)

	require.NoError(t, repo.Remove(ctx, u))

	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateSetsDateUpdated(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	u := newUser("alice@example.com", "alice")
	require.NoError(t, repo.Add(ctx, u))

	u.Name = "alicia"
	require.NoError(t, repo.Update(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alicia", got.Name)
	assert.NotNil(t, got.DateUpdated)
}

func TestAddDuplicateEmailFails(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newUser("alice@example.com", "alice")))
	err := repo.Add(ctx, newUser("alice@example.com", "other"))
	require.Error(t, err)
	assert.True(t, database.IsConflict(err))
}

func TestFindWithFilter(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()
	seedUsers(t, repo, 5)

	found, err := repo.Find(ctx, types.NewQueryFilter("name = ?", "user03"))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "user03@example.com", found[0].Email)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestFirstOrDefaultMissingReturnsNil(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	got, err := repo.FirstOrDefault(ctx, types.NewQueryFilter("email = ?", "nobody@example.com"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSingleOrDefault(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, newUser("a@example.com", "dup")))

	got, err := repo.SingleOrDefault(ctx, types.NewQueryFilter("name = ?", "dup"))
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, repo.Add(ctx, newUser("b@example.com", "dup")))

	_, err = repo.SingleOrDefault(ctx, types.NewQueryFilter("name = ?", "dup"))
	assert.ErrorIs(t, err, repository.ErrMultipleResults)
}

func TestCountAndAnyIgnoreRemovedRows(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()
	users := seedUsers(t, repo, 3)

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, repo.Remove(ctx, users[0]))

	n, err = repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := repo.Any(ctx, types.NewQueryFilter("email = ?", users[0].Email))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddRangeAndRemoveRange(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	batch := []*models.User{
		newUser("a@example.com", "a"),
		newUser("b@example.com", "b"),
	}
	require.NoError(t, repo.AddRange(ctx, batch))

	n, err := repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, repo.RemoveRange(ctx, batch))

	n, err = repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPurgeDeletesPhysically(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()

	u := newUser("alice@example.com", "alice")
	require.NoError(t, repo.Add(ctx, u))
	require.NoError(t, repo.Purge(ctx, u))

	// A purged row is gone even for queries that bypass the live-row filter.
	n, err := db.NewSelect().Model((*models.User)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetPaged(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()
	seedUsers(t, repo, 7)

	page, err := repo.GetPaged(ctx, types.NewPageRequest(1, 2, nil, "email", true))
	require.NoError(t, err)
	assert.Equal(t, 7, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "user00@example.com", page.Items[0].Email)

	last, err := repo.GetPaged(ctx, types.NewPageRequest(4, 2, nil, "email", true))
	require.NoError(t, err)
	assert.Equal(t, 7, last.Total)
	assert.Len(t, last.Items, 1)

	desc, err := repo.GetPaged(ctx, types.NewPageRequest(1, 2, nil, "email", false))
	require.NoError(t, err)
	require.Len(t, desc.Items, 2)
	assert.Equal(t, "user06@example.com", desc.Items[0].Email)
}

func TestGetPagedWithFilter(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()
	seedUsers(t, repo, 7)

	filter := types.NewQueryFilter("lower(email) LIKE ?", "%user0%")
	filter = filter.And("name <> ?", "user00")

	page, err := repo.GetPaged(ctx, types.NewPageRequest(1, 10, filter, "email", true))
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)
	assert.Len(t, page.Items, 6)
}

func TestGetPagedEmptyPage(t *testing.T) {
	db := testdb.Open(t)
	repo := repository.NewRepository[models.User](db)
	ctx := context.Background()
	seedUsers(t, repo, 3)

	page, err := repo.GetPaged(ctx, types.NewPageRequest(5, 10, nil, "email", true))
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}
