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
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"

	"github.com/tomoncle/scaffold/service"
)

// UsersModule mounts the user CRUD endpoints plus the permission lookup.
type UsersModule struct {
	resource Resource[service.UserInput, service.UserUpdate, service.UserOutput, service.UserPageQuery]
	logger   *logrus.Logger
}

// NewUsersModule builds the users module.
func NewUsersModule(logger *logrus.Logger) *UsersModule {
	return &UsersModule{
		resource: Resource[service.UserInput, service.UserUpdate, service.UserOutput, service.UserPageQuery]{
			Prefix: "/users",
			Factory: func(db bun.IDB) CrudService[service.UserInput, service.UserUpdate, service.UserOutput, service.UserPageQuery] {
				return service.NewUserService(db)
			},
			Logger: logger,
		},
		logger: logger,
	}
}

// Register mounts the CRUD routes and GET /users/:id/permissions.
func (m *UsersModule) Register(rg *gin.RouterGroup) {
	m.resource.Register(rg)
	rg.GET("/users/:id/permissions", m.permissions)
}

func (m *UsersModule) permissions(c *gin.Context) {
	db, ok := requestDB(c)
	if !ok {
		m.logger.Error("request has no scoped database connection")
		abortWithDetail(c, http.StatusInternalServerError, "database unavailable")
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	names, err := service.NewUserService(db).Permissions(c.Request.Context(), id)
	if err != nil {
		respondError(c, m.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permissions": names})
}
