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

package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"github.com/tomoncle/scaffold/service"
)

// RolesModule mounts the role CRUD endpoints.
type RolesModule struct {
	resource Resource[service.RoleInput, service.RoleUpdate, service.RoleOutput, service.RolePageQuery]
}

// NewRolesModule builds the roles module.
func NewRolesModule(logger *logrus.Logger) *RolesModule {
	return &RolesModule{
		resource: Resource[service.RoleInput, service.RoleUpdate, service.RoleOutput, service.RolePageQuery]{
			Prefix: "/roles",
			Factory: func(db bun.IDB) CrudService[service.RoleInput, service.RoleUpdate, service.RoleOutput, service.RolePageQuery] {
				return service.NewRoleService(db)
			},
			Logger: logger,
		},
	}
}

func (m *RolesModule) Register(rg *gin.RouterGroup) {
	m.resource.Register(rg)
}
