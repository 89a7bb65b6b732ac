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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryFilterAnd(t *testing.T) {
	f := NewQueryFilter("email = ?", "a@b.c")
	f = f.And("name = ?", "alice")

	assert.Equal(t, "(email = ?) AND (name = ?)", f.Expr)
	assert.Equal(t, []interface{}{"a@b.c", "alice"}, f.Args)
}

func TestQueryFilterAndOnNil(t *testing.T) {
	var f *QueryFilter
	assert.True(t, f.IsEmpty())

	f = f.And("name = ?", "alice")
	assert.False(t, f.IsEmpty())
	assert.Equal(t, "name = ?", f.Expr)
}

func TestPageRequestDefaults(t *testing.T) {
	p := NewDefaultPageRequest(0, 0)

	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 10, p.Size())
	assert.Equal(t, 0, p.Offset())
}

func TestPageRequestSizeCap(t *testing.T) {
	p := NewDefaultPageRequest(2, 500)

	assert.Equal(t, 100, p.Size())
	assert.Equal(t, 100, p.Offset())
}

func TestPageRequestOffset(t *testing.T) {
	p := NewDefaultPageRequest(4, 2)

	assert.Equal(t, 6, p.Offset())
}

func TestNewEmptyPagination(t *testing.T) {
	p := NewEmptyPagination[struct{}](3, 20)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Size)
	assert.Zero(t, p.Total)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}
