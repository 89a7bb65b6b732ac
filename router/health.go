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

	"github.com/tomoncle/scaffold/database"
)

// HealthModule reports database liveness via the manager health check.
type HealthModule struct {
	manager database.Manager
}

// NewHealthModule builds the health module.
func NewHealthModule(manager database.Manager) *HealthModule {
	return &HealthModule{manager: manager}
}

// Register mounts GET /healthz.
func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.health)
}

func (m *HealthModule) health(c *gin.Context) {
	status := m.manager.HealthCheck(c.Request.Context())
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
