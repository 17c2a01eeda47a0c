// Package kv provides the local key/value store every wastetrack entity
// list is persisted in.
//
// # Overview
//
// Values are opaque byte blobs (JSON-encoded collections in practice) kept
// under string keys such as "waste_management_records". Absence of a key is
// reported as (nil, nil) by Get, never as an error, so callers can treat
// "missing" as "empty/default".
//
// Key Types
//
//   - type Repository       : interface used by higher-level repositories
//   - type SQLiteRepository : SQLite implementation over dbx.DBTX
//   - type MemoryRepository : map-backed implementation for tests
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "waste_management_emails", []byte("[]"))
//	blob, _ := repo.Get(ctx, "waste_management_emails")
package kv
