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
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/tomoncle/scaffold/service"
)

// pagedResponse is the envelope for list endpoints. Items is never null.
type pagedResponse[O any] struct {
	Items []O `json:"items"`
	Total int `json:"total"`
}

func newPagedResponse[O any](items []O, total int) pagedResponse[O] {
	if items == nil {
		items = []O{}
	}
	return pagedResponse[O]{Items: items, Total: total}
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// respondError converts a service error into the matching HTTP status.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		abortWithDetail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		abortWithDetail(c, http.StatusConflict, err.Error())
	default:
		logger.WithError(err).Error("unhandled request error")
		abortWithDetail(c, http.StatusInternalServerError, "internal server error")
	}
}

// respondBindError maps a gin binding failure to 422 with a readable detail.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldDetail(fe))
		}
		abortWithDetail(c, http.StatusUnprocessableEntity, strings.Join(details, "; "))
		return
	}
	abortWithDetail(c, http.StatusUnprocessableEntity, "malformed request")
}

func fieldDetail(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
