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

import "github.com/gin-gonic/gin"

// Registry collects modules and mounts them under a common API prefix.
type Registry struct {
	engine  *gin.Engine
	group   *gin.RouterGroup
	modules []Module
}

// NewRegistry creates a registry mounting all modules under /api.
func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		engine: engine,
		group:  engine.Group("/api"),
	}
}

// Use attaches middleware to the API group. Call before RegisterAll.
func (r *Registry) Use(middleware ...gin.HandlerFunc) {
	r.group.Use(middleware...)
}

// Add appends modules pending registration.
func (r *Registry) Add(modules ...Module) {
	r.modules = append(r.modules, modules...)
}

// RegisterAll wires every added module onto the API group.
func (r *Registry) RegisterAll() {
	for _, m := range r.modules {
		m.Register(r.group)
	}
}

// Engine returns the underlying gin engine.
func (r *Registry) Engine() *gin.Engine {
	return r.engine
}
