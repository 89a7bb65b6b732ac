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

// User is the concrete entity the generic stack is instantiated for.
// The password is stored as an opaque string.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	Entity

	Email    string     `bun:"email,notnull,unique" json:"email"`
	Password string     `bun:"password,notnull" json:"-"`
	Name     string     `bun:"name,notnull" json:"name"`
	LastName string     `bun:"last_name,notnull" json:"last_name"`
	RoleID   *uuid.UUID `bun:"role_id,type:uuid,nullzero" json:"role_id,omitempty"`
	Role     *Role      `bun:"rel:belongs-to,join:role_id=id" json:"-"`
}

func init() {
	database.RegisterModel(database.NewModelAdapter((*User)(nil), 40))
}
