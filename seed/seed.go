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

// Package seed loads baseline roles and permissions from a YAML file.
// Seeding is idempotent: rows already present by name are left untouched.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"gopkg.in/yaml.v3"

	"github.com/tomoncle/scaffold/models"
	"github.com/tomoncle/scaffold/repository"
	"github.com/tomoncle/scaffold/types"
)

// File is the YAML layout of a seed file.
type File struct {
	Permissions []PermissionSeed `yaml:"permissions"`
	Roles       []RoleSeed       `yaml:"roles"`
}

// PermissionSeed declares one permission row.
type PermissionSeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// RoleSeed declares one role row and the permission names it grants.
type RoleSeed struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Permissions []string `yaml:"permissions"`
}

// Load parses the seed file at path.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Apply inserts the seed data inside one transaction, skipping rows that
// already exist.
func Apply(ctx context.Context, db *bun.DB, f *File, logger *logrus.Logger) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		permissions, err := applyPermissions(ctx, tx, f.Permissions, logger)
		if err != nil {
			return err
		}
		return applyRoles(ctx, tx, f.Roles, permissions, logger)
	})
}

func applyPermissions(ctx context.Context, tx bun.Tx, seeds []PermissionSeed, logger *logrus.Logger) (map[string]*models.Permission, error) {
	repo := repository.NewRepository[models.Permission](tx)
	byName := make(map[string]*models.Permission, len(seeds))
	for _, s := range seeds {
		existing, err := repo.FirstOrDefault(ctx, types.NewQueryFilter("name = ?", s.Name))
		if err != nil {
			return nil, err
		}
		if existing != nil {
			byName[s.Name] = existing
			continue
		}
		p := &models.Permission{Name: s.Name, Description: s.Description}
		if err := repo.Add(ctx, p); err != nil {
			return nil, fmt.Errorf("seed permission %q: %w", s.Name, err)
		}
		logger.WithField("permission", s.Name).Info("seeded permission")
		byName[s.Name] = p
	}
	return byName, nil
}

func applyRoles(ctx context.Context, tx bun.Tx, seeds []RoleSeed, permissions map[string]*models.Permission, logger *logrus.Logger) error {
	repo := repository.NewRepository[models.Role](tx)
	for _, s := range seeds {
		role, err := repo.FirstOrDefault(ctx, types.NewQueryFilter("name = ?", s.Name))
		if err != nil {
			return err
		}
		if role == nil {
			role = &models.Role{Name: s.Name, Description: s.Description}
			if err := repo.Add(ctx, role); err != nil {
				return fmt.Errorf("seed role %q: %w", s.Name, err)
			}
			logger.WithField("role", s.Name).Info("seeded role")
		}
		for _, name := range s.Permissions {
			perm, ok := permissions[name]
			if !ok {
				return fmt.Errorf("role %q references unknown permission %q", s.Name, name)
			}
			if err := linkRolePermission(ctx, tx, role, perm); err != nil {
				return err
			}
		}
	}
	return nil
}

// linkRolePermission joins a role to a permission unless already linked.
// The join table carries no soft-delete column, so it is managed directly.
func linkRolePermission(ctx context.Context, tx bun.Tx, role *models.Role, perm *models.Permission) error {
	exists, err := tx.NewSelect().
		Model((*models.RolePermission)(nil)).
		Where("role_id = ?", role.ID).
		Where("permission_id = ?", perm.ID).
		Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	link := &models.RolePermission{RoleID: role.ID, PermissionID: perm.ID}
	_, err = tx.NewInsert().Model(link).Exec(ctx)
	return err
}
