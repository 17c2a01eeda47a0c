// Package storage opens the local wastetrack database: it takes the process
// lock, opens SQLite, and applies the embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wastetrack/internal/client/migrations"
	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/dbx"
	"github.com/gofrs/flock"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database. No lock file is taken.
const MemoryDSN = ":memory:"

// Storage owns the database handle and the process lock.
type Storage struct {
	DB   *sql.DB
	KV   kv.Repository
	lock *flock.Flock
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open locks path+".lock", opens the SQLite file at path and migrates it.
// A second process opening the same path gets common.ErrDatabaseLocked.
func Open(ctx context.Context, path string) (*Storage, error) {
	var lock *flock.Flock
	if path != MemoryDSN {
		lock = flock.New(path + ".lock")
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("lock %s: %w", lock.Path(), err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, common.ErrDatabaseLocked)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		unlock(lock)
		return nil, err
	}
	// One connection: an in-memory database lives and dies with it, and the
	// kv read-modify-write cycle is single-user anyway.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		unlock(lock)
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &Storage{DB: db, KV: kv.NewSQLiteRepository(db), lock: lock}, nil
}

// Close closes the database and releases the process lock.
func (s *Storage) Close() error {
	err := s.DB.Close()
	if s.lock != nil {
		err = errors.Join(err, s.lock.Unlock())
	}
	return err
}

// InTx runs fn against a kv repository bound to a single transaction, so a
// multi-key change (first-run seeding, schema upgrade) lands all or nothing.
func (s *Storage) InTx(ctx context.Context, fn func(ctx context.Context, repo kv.Repository) error) error {
	return dbx.WithTx(ctx, s.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, kv.NewSQLiteRepository(tx))
	})
}

func unlock(l *flock.Flock) {
	if l != nil {
		_ = l.Unlock()
	}
}
