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

// Package router exposes the service layer as HTTP resource endpoints: a
// generic CRUD resource bound to a per-request service instance, plus the
// module registry and the request-scoped database connection middleware.
package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that can register its routes on a group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
