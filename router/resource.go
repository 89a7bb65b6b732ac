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
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
)

// Identified is satisfied by output payloads that expose their identifier,
// used to build Location headers for created resources.
type Identified interface {
	Identity() uuid.UUID
}

// CrudService is the contract a service must fulfil to be mounted as a
// Resource. I is the creation payload, U the update payload, O the output
// payload and Q the list query parameters.
type CrudService[I, U any, O Identified, Q any] interface {
	GetByID(ctx context.Context, id any) (O, error)
	GetPaged(ctx context.Context, query *Q) ([]O, int, error)
	Create(ctx context.Context, in *I) (O, error)
	UpdateItem(ctx context.Context, id any, in *U) (O, error)
	Delete(ctx context.Context, id any) error
}

// Resource mounts the standard CRUD endpoints for one entity kind. The
// service is built per request from the request-scoped connection.
type Resource[I, U any, O Identified, Q any] struct {
	Prefix  string
	Factory func(db bun.IDB) CrudService[I, U, O, Q]
	Logger  *logrus.Logger
}

// Register mounts GET /, GET /:id, POST /, PUT /:id and DELETE /:id under
// the resource prefix.
func (r *Resource[I, U, O, Q]) Register(rg *gin.RouterGroup) {
	group := rg.Group(r.Prefix)
	group.GET("", r.list)
	group.GET("/:id", r.get)
	group.POST("", r.create)
	group.PUT("/:id", r.update)
	group.DELETE("/:id", r.remove)
}

func (r *Resource[I, U, O, Q]) service(c *gin.Context) (CrudService[I, U, O, Q], bool) {
	db, ok := requestDB(c)
	if !ok {
		r.Logger.Error("request has no scoped database connection")
		abortWithDetail(c, http.StatusInternalServerError, "database unavailable")
		return nil, false
	}
	return r.Factory(db), true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, "invalid identifier")
		return uuid.Nil, false
	}
	return id, true
}

func (r *Resource[I, U, O, Q]) list(c *gin.Context) {
	svc, ok := r.service(c)
	if !ok {
		return
	}
	var query Q
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	items, total, err := svc.GetPaged(c.Request.Context(), &query)
	if err != nil {
		respondError(c, r.Logger, err)
		return
	}
	c.JSON(http.StatusOK, newPagedResponse(items, total))
}

func (r *Resource[I, U, O, Q]) get(c *gin.Context) {
	svc, ok := r.service(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	out, err := svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, r.Logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (r *Resource[I, U, O, Q]) create(c *gin.Context) {
	svc, ok := r.service(c)
	if !ok {
		return
	}
	var in I
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	out, err := svc.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, r.Logger, err)
		return
	}
	c.Header("Location", fmt.Sprintf("%s/%s", c.Request.URL.Path, out.Identity()))
	c.JSON(http.StatusCreated, out)
}

func (r *Resource[I, U, O, Q]) update(c *gin.Context) {
	svc, ok := r.service(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in U
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	out, err := svc.UpdateItem(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, r.Logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (r *Resource[I, U, O, Q]) remove(c *gin.Context) {
	svc, ok := r.service(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, r.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
