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

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

// QueryFilter describes a WHERE clause fragment and its argument values.
// Fragments added with And are joined with AND.
type QueryFilter struct {
	Expr string
	Args []interface{}
}

// NewQueryFilter creates a query filter from a clause fragment and args.
func NewQueryFilter(expr string, args ...interface{}) *QueryFilter {
	return &QueryFilter{Expr: expr, Args: args}
}

// And conjoins another clause fragment onto the filter. Calling And on a nil
// filter allocates one, so services can accumulate optional conditions:
//
//	var f *types.QueryFilter
//	f = f.And("lower(name) LIKE ?", pattern)
func (f *QueryFilter) And(expr string, args ...interface{}) *QueryFilter {
	if f == nil || f.Expr == "" {
		return NewQueryFilter(expr, args...)
	}
	f.Expr = "(" + f.Expr + ") AND (" + expr + ")"
	f.Args = append(f.Args, args...)
	return f
}

// IsEmpty reports whether the filter carries no condition.
func (f *QueryFilter) IsEmpty() bool {
	return f == nil || f.Expr == ""
}

// PageRequest describes one bounded slice of a result set: a 1-based page,
// page size, optional filter, and optional ordering column.
type PageRequest struct {
	page      int
	size      int
	filter    *QueryFilter
	orderBy   string
	ascending bool
}

// NewPageRequest constructs a PageRequest with filter and order settings.
func NewPageRequest(page, size int, filter *QueryFilter, orderBy string, ascending bool) *PageRequest {
	return &PageRequest{page: page, size: size, filter: filter, orderBy: orderBy, ascending: ascending}
}

// NewDefaultPageRequest constructs a PageRequest with no filter or ordering.
func NewDefaultPageRequest(page, size int) *PageRequest {
	return NewPageRequest(page, size, nil, "", true)
}

func (p *PageRequest) Page() int {
	if p.page < defaultPage {
		return defaultPage
	}
	return p.page
}

func (p *PageRequest) Size() int {
	if p.size < 1 {
		return defaultSize
	}
	if p.size > maxSize {
		return maxSize
	}
	return p.size
}

// Offset returns the row offset for the requested page.
func (p *PageRequest) Offset() int {
	return (p.Page() - 1) * p.Size()
}

func (p *PageRequest) Filter() *QueryFilter { return p.filter }

// OrderBy returns the ordering column, empty for store-default ordering.
func (p *PageRequest) OrderBy() string { return p.orderBy }

func (p *PageRequest) Ascending() bool { return p.ascending }

// Pagination holds one page of items along with the total match count.
type Pagination[T any] struct {
	Page  int  `json:"page"`
	Size  int  `json:"size"`
	Total int  `json:"total"`
	Items []*T `json:"items"`
}

// NewEmptyPagination constructs a pagination container with no items.
func NewEmptyPagination[T any](page, size int) *Pagination[T] {
	return &Pagination[T]{Page: page, Size: size, Total: 0, Items: make([]*T, 0)}
}
