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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/tomoncle/scaffold/models"
	"github.com/tomoncle/scaffold/types"
)

// UserInput is the create payload.
type UserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	LastName string `json:"last_name" binding:"required"`
}

// UserUpdate is the update payload; only the name fields are mutable.
type UserUpdate struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"last_name" binding:"required"`
}

// UserOutput is the external representation of a user. The password never
// leaves the service layer.
type UserOutput struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastName    string     `json:"last_name"`
	DateCreated time.Time  `json:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty"`
}

// Identity returns the resource identifier, used for Location headers.
func (o UserOutput) Identity() uuid.UUID { return o.ID }

// UserPageQuery carries pagination plus user-specific filters and ordering.
// offset_field chooses the ordering column from a fixed whitelist.
type UserPageQuery struct {
	PageParams
	Email       string     `form:"email" json:"email"`
	Name        string     `form:"name" json:"name"`
	LastName    string     `form:"last_name" json:"last_name"`
	DateCreated *time.Time `form:"date_created" json:"date_created" time_format:"2006-01-02T15:04:05Z07:00"`
	OrderBy     string     `form:"offset_field,default=date_created" json:"offset_field" binding:"oneof=id email date_created name last_name"`
}

func mapUser(u *models.User) UserOutput {
	return UserOutput{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		LastName:    u.LastName,
		DateCreated: u.DateCreated,
		DateUpdated: u.DateUpdated,
	}
}

// UserService is the concrete instantiation of the generic stack for the
// User entity, adding email lookup, field-level filtering, and the computed
// permission view.
type UserService struct {
	*Base[models.User, UserOutput]
}

// NewUserService builds a user service on the given Bun handle, usually the
// request-scoped connection.
func NewUserService(db bun.IDB) *UserService {
	return &UserService{Base: NewBase[models.User, UserOutput](db, "user", mapUser, nil)}
}

// Create persists a new user unless a live user with the same email exists.
func (s *UserService) Create(ctx context.Context, in *UserInput) (UserOutput, error) {
	entity := &models.User{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		LastName: in.LastName,
	}
	return s.CreateEntity(ctx, entity, types.NewQueryFilter("email = ?", in.Email))
}

// UpdateItem applies the mutable fields onto the stored user.
func (s *UserService) UpdateItem(ctx context.Context, id any, up *UserUpdate) (UserOutput, error) {
	return s.UpdateEntity(ctx, id, func(u *models.User) {
		u.Name = up.Name
		u.LastName = up.LastName
	})
}

// GetPaged lists users with case-insensitive partial matching over
// email/name/last_name, an optional creation-time lower bound, and a
// whitelisted ordering column (the binding layer enforces the whitelist).
func (s *UserService) GetPaged(ctx context.Context, q *UserPageQuery) ([]UserOutput, int, error) {
	var filter *types.QueryFilter
	if q.Email != "" {
		filter = filter.And("lower(email) LIKE ?", contains(q.Email))
	}
	if q.Name != "" {
		filter = filter.And("lower(name) LIKE ?", contains(q.Name))
	}
	if q.LastName != "" {
		filter = filter.And("lower(last_name) LIKE ?", contains(q.LastName))
	}
	if q.DateCreated != nil {
		filter = filter.And("date_created >= ?", q.DateCreated.UTC())
	}

	orderBy := q.OrderBy
	if orderBy == "" {
		orderBy = "date_created"
	}

	req := types.NewPageRequest(q.Page, q.Size, filter, orderBy, q.Ascending)
	return s.GetPagedMapped(ctx, req)
}

// GetByEmail returns the live user with the given email, or nil when absent.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*UserOutput, error) {
	entity, err := s.Repository().FirstOrDefault(ctx, types.NewQueryFilter("email = ?", email))
	if err != nil || entity == nil {
		return nil, err
	}
	out := mapUser(entity)
	return &out, nil
}

// Permissions returns the user's effective permission names: the permission
// set of its role, empty when no role is assigned.
func (s *UserService) Permissions(ctx context.Context, id any) ([]string, error) {
	entity, err := s.Repository().GetByID(ctx, id, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Role").Relation("Role.Permissions")
	})
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, notFound("user")
	}
	names := make([]string, 0)
	if entity.Role != nil {
		for _, p := range entity.Role.Permissions {
			names = append(names, p.Name)
		}
	}
	return names, nil
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
