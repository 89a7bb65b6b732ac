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

type PermissionInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type PermissionUpdate struct {
	Description string `json:"description" binding:"required"`
}

type PermissionOutput struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	DateCreated time.Time  `json:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty"`
}

func (o PermissionOutput) Identity() uuid.UUID { return o.ID }

type PermissionPageQuery struct {
	PageParams
	Name    string `form:"name" json:"name"`
	OrderBy string `form:"offset_field,default=date_created" json:"offset_field" binding:"oneof=id name date_created"`
}

func mapPermission(p *models.Permission) PermissionOutput {
	return PermissionOutput{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		DateCreated: p.DateCreated,
		DateUpdated: p.DateUpdated,
	}
}

// PermissionService instantiates the generic stack for permissions.
type PermissionService struct {
	*Base[models.Permission, PermissionOutput]
}

func NewPermissionService(db bun.IDB) *PermissionService {
	return &PermissionService{Base: NewBase[models.Permission, PermissionOutput](db, "permission", mapPermission, nil)}
}

func (s *PermissionService) Create(ctx context.Context, in *PermissionInput) (PermissionOutput, error) {
	entity := &models.Permission{Name: in.Name, Description: in.Description}
	return s.CreateEntity(ctx, entity, types.NewQueryFilter("name = ?", in.Name))
}

func (s *PermissionService) UpdateItem(ctx context.Context, id any, up *PermissionUpdate) (PermissionOutput, error) {
	return s.UpdateEntity(ctx, id, func(p *models.Permission) {
		p.Description = up.Description
	})
}

func (s *PermissionService) GetPaged(ctx context.Context, q *PermissionPageQuery) ([]PermissionOutput, int, error) {
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
