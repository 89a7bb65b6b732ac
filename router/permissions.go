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

// PermissionsModule mounts the permission CRUD endpoints.
type PermissionsModule struct {
	resource Resource[service.PermissionInput, service.PermissionUpdate, service.PermissionOutput, service.PermissionPageQuery]
}

// NewPermissionsModule builds the permissions module.
func NewPermissionsModule(logger *logrus.Logger) *PermissionsModule {
	return &PermissionsModule{
		resource: Resource[service.PermissionInput, service.PermissionUpdate, service.PermissionOutput, service.PermissionPageQuery]{
			Prefix: "/permissions",
			Factory: func(db bun.IDB) CrudService[service.PermissionInput, service.PermissionUpdate, service.PermissionOutput, service.PermissionPageQuery] {
				return service.NewPermissionService(db)
			},
			Logger: logger,
		},
	}
}

func (m *PermissionsModule) Register(rg *gin.RouterGroup) {
	m.resource.Register(rg)
}
