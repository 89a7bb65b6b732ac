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
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSqlErrorMySQL(t *testing.T) {
	cases := []struct {
		number uint16
		want   SQLError
	}{
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1452, ForeignKeyViolationErr},
		{3819, CheckConstraintViolationErr},
		{1265, DataTruncatedErr},
		{1146, NoTableErr},
		{9999, UnknownErr},
	}
	for _, c := range cases {
		err := &mysql.MySQLError{Number: c.number, Message: "boom"}
		is, code := IsSqlError(err)
		assert.True(t, is, "number %d", c.number)
		assert.Equal(t, c.want, code, "number %d", c.number)
	}
}

func TestIsSqlErrorPostgres(t *testing.T) {
	is, code := IsSqlError(&pq.Error{Code: "23505"})
	assert.True(t, is)
	assert.Equal(t, DuplicateKeyErr, code)

	is, code = IsSqlError(&pq.Error{Code: "42P01"})
	assert.True(t, is)
	assert.Equal(t, NoTableErr, code)
}

func TestIsSqlErrorSQLiteText(t *testing.T) {
	is, code := IsSqlError(errors.New("UNIQUE constraint failed: users.email"))
	assert.True(t, is)
	assert.Equal(t, DuplicateKeyErr, code)

	is, code = IsSqlError(errors.New("no such table: users"))
	assert.True(t, is)
	assert.Equal(t, NoTableErr, code)
}

func TestIsSqlErrorWrapped(t *testing.T) {
	err := fmt.Errorf("insert user: %w", &mysql.MySQLError{Number: 1062})
	is, code := IsSqlError(err)
	assert.True(t, is)
	assert.Equal(t, DuplicateKeyErr, code)
}

func TestIsSqlErrorUnrelated(t *testing.T) {
	is, _ := IsSqlError(errors.New("connection refused"))
	assert.False(t, is)

	is, _ = IsSqlError(nil)
	assert.False(t, is)
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(&mysql.MySQLError{Number: 1062}))
	assert.True(t, IsConflict(&pq.Error{Code: "23503"}))
	assert.True(t, IsConflict(errors.New("NOT NULL constraint failed: users.email")))

	assert.False(t, IsConflict(&mysql.MySQLError{Number: 1146}))
	assert.False(t, IsConflict(errors.New("connection refused")))
	assert.False(t, IsConflict(nil))
}
