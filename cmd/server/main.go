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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/tomoncle/scaffold/config"
	"github.com/tomoncle/scaffold/database"
	"github.com/tomoncle/scaffold/router"
	"github.com/tomoncle/scaffold/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}

// run owns the full lifecycle so every error path unwinds through the
// deferred cleanup instead of exiting the process mid-flight.
func run(cfg *config.Config, logger *logrus.Logger) error {
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	manager, err := database.Open(ctx, cfg.DatabaseConfig(), database.NewLogrusLogger(logger), true)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := manager.Disconnect(); err != nil {
			logger.WithError(err).Warn("failed to close database")
		}
	}()
	db := manager.GetDB()

	if cfg.SeedEnabled {
		file, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("load seed file: %w", err)
		}
		if err := seed.Apply(ctx, db, file, logger); err != nil {
			return fmt.Errorf("apply seed data: %w", err)
		}
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if !cfg.IsProduction() {
		engine.Use(gin.Logger())
	}
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	registry := router.NewRegistry(engine)
	registry.Use(router.ScopedConn(db, logger))
	registry.Add(
		router.NewHealthModule(manager),
		router.NewUsersModule(logger),
		router.NewRolesModule(logger),
		router.NewPermissionsModule(logger),
	)
	registry.RegisterAll()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", srv.Addr).Info("server listening")
		serveErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-quit:
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
