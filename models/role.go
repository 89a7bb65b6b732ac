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

package models

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/tomoncle/scaffold/database"
)

// Role groups permissions. A user's effective permissions derive from its
// role's permission set.
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:r"`
	Entity

	Name        string       `bun:"name,notnull,unique" json:"name"`
	Description string       `bun:"description" json:"description,omitempty"`
	Permissions []Permission `bun:"m2m:role_permissions,join:Role=Permission" json:"permissions,omitempty"`
}

// RolePermission links roles to permissions with a composite identity.
type RolePermission struct {
	bun.BaseModel `bun:"table:role_permissions,alias:rp"`

	RoleID       uuid.UUID   `bun:"role_id,pk,type:uuid" json:"role_id"`
	Role         *Role       `bun:"rel:belongs-to,join:role_id=id" json:"-"`
	PermissionID uuid.UUID   `bun:"permission_id,pk,type:uuid" json:"permission_id"`
	Permission   *Permission `bun:"rel:belongs-to,join:permission_id=id" json:"-"`
}

func init() {
	// The join model must register before any model whose m2m field names
	// it, or relation resolution fails when the models are handed to bun.
	database.RegisterModel(database.NewModelAdapter((*RolePermission)(nil), 15))
	database.RegisterModel(database.NewModelAdapter((*Role)(nil), 20))
}
