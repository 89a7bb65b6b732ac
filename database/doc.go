// Package database manages the Bun database connection for the scaffolding
// stack: dialect-aware connection management, health checks, query hooks,
// model registration, table auto-creation, and store error classification.
package database
