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

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/tomoncle/scaffold/models"
	"github.com/tomoncle/scaffold/types"
)

type RoleInput struct {
	Name        string `json:"name" binding:"required,max=30"`
	Description string `json:"description"`
}

type RoleUpdate struct {
	Description string `json:"description" binding:"required"`
}

type RoleOutput struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	DateCreated time.Time  `json:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty"`
}

func (o RoleOutput) Identity() uuid.UUID { return o.ID }

type RolePageQuery struct {
	PageParams
	Name    string `form:"name" json:"name"`
	OrderBy string `form:"offset_field,default=date_created" json:"offset_field" binding:"oneof=id name date_created"`
}

func mapRole(r *models.Role) RoleOutput {
	return RoleOutput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		DateCreated: r.DateCreated,
		DateUpdated: r.DateUpdated,
	}
}

// RoleService instantiates the generic stack for roles.
type RoleService struct {
	*Base[models.Role, RoleOutput]
}

func NewRoleService(db bun.IDB) *RoleService {
	return &RoleService{Base: NewBase[models.Role, RoleOutput](db, "role", mapRole, nil)}
}

func (s *RoleService) Create(ctx context.Context, in *RoleInput) (RoleOutput, error) {
	entity := &models.Role{Name: in.Name, Description: in.Description}
	return s.CreateEntity(ctx, entity, types.NewQueryFilter("name = ?", in.Name))
}

func (s *RoleService) UpdateItem(ctx context.Context, id any, up *RoleUpdate) (RoleOutput, error) {
	return s.UpdateEntity(ctx, id, func(r *models.Role) {
		r.Description = up.Description
	})
}

func (s *RoleService) GetPaged(ctx context.Context, q *RolePageQuery) ([]RoleOutput, int, error) {
	var filter *types.QueryFilter
	if q.Name != "" {
		filter = filter.And("lower(name) LIKE ?", contains(q.Name))
	}
	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "date_created"
	}
	req := types.NewPageRequest(q.Page, q.Size, filter, orderBy, q.Ascending)
	return s.GetPagedMapped(ctx, req)
}
