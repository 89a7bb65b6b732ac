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
)

const contextDBKey = "scaffold.db"

// ScopedConn checks out a dedicated database connection for each request and
// releases it back to the pool when the handler chain returns. Handlers built
// on the same request therefore share one connection, mirroring a
// session-per-request lifecycle.
func ScopedConn(db *bun.DB, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := db.Conn(c.Request.Context())
		if err != nil {
			logger.WithError(err).Error("failed to acquire database connection")
			abortWithDetail(c, http.StatusInternalServerError, "database unavailable")
			return
		}
		defer func() {
			_ = conn.Close()
		}()
		c.Set(contextDBKey, conn)
		c.Next()
	}
}

// requestDB returns the connection bound to the current request.
func requestDB(c *gin.Context) (bun.IDB, bool) {
	v, ok := c.Get(contextDBKey)
	if !ok {
		return nil, false
	}
	conn, ok := v.(bun.Conn)
	if !ok {
		return nil, false
	}
	return conn, true
}
