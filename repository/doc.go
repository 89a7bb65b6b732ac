// Package repository provides a generic, soft-delete-aware repository built
// on Bun: filtered reads, relation includes, pagination, and transactional
// range mutations over one entity type.
package repository
