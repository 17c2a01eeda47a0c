// Package store groups the typed wastetrack collections that live in the
// key/value store and owns their first-run seeding and schema upgrades.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/collection"
	"github.com/dmitrijs2005/wastetrack/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wastetrack/internal/common"
	"github.com/dmitrijs2005/wastetrack/internal/logging"
)

// Store exposes one accessor per entity class plus the persisted session.
type Store struct {
	Users   *collection.List[models.User]
	Records *collection.List[models.WasteRecord]
	Emails  *collection.List[models.EmailConfig]
	Session *SessionRepository

	repo   kv.Repository
	logger logging.Logger
}

// New binds a Store to repo. now drives id generation; nil means time.Now.
func New(repo kv.Repository, logger logging.Logger, now func() time.Time) *Store {
	return &Store{
		Users:   collection.New[models.User](repo, common.UsersKey, logger, now),
		Records: collection.New[models.WasteRecord](repo, common.WasteRecordsKey, logger, now),
		Emails:  collection.New[models.EmailConfig](repo, common.EmailConfigKey, logger, now),
		Session: NewSessionRepository(repo, logger),
		repo:    repo,
		logger:  logger,
	}
}

// Initialize brings the store to the current schema version. On an empty
// store it seeds the default users and empty record and email lists. Keys
// that already exist are left untouched apart from upgrade rewrites.
//
// A stored version newer than common.SchemaVersion fails with
// common.ErrUnsupportedSchema and nothing is written.
func (s *Store) Initialize(ctx context.Context) error {
	version, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}
	if version > common.SchemaVersion {
		return fmt.Errorf("stored version %d, supported %d: %w", version, common.SchemaVersion, common.ErrUnsupportedSchema)
	}

	if err := s.seed(ctx); err != nil {
		return err
	}

	for v := version; v < common.SchemaVersion; v++ {
		step, ok := upgrades[v]
		if !ok {
			return fmt.Errorf("no upgrade from version %d: %w", v, common.ErrUnsupportedSchema)
		}
		if err := step(ctx, s); err != nil {
			return fmt.Errorf("upgrade %d->%d: %w", v, v+1, err)
		}
		s.logger.Info(ctx, "storage schema upgraded", "from", v, "to", v+1)
	}

	if version != common.SchemaVersion {
		return s.repo.Set(ctx, common.SchemaVersionKey, []byte(strconv.Itoa(common.SchemaVersion)))
	}
	return nil
}

// SchemaVersion returns the stored schema version; an absent key is
// version 0.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	blob, err := s.repo.Get(ctx, common.SchemaVersionKey)
	if err != nil {
		return 0, err
	}
	if blob == nil {
		return 0, nil
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(blob)))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("unreadable schema version %q: %w", blob, common.ErrUnsupportedSchema)
	}
	return v, nil
}

func (s *Store) seed(ctx context.Context) error {
	ok, err := s.Users.Exists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		if err := s.Users.Replace(ctx, models.DefaultUsers()); err != nil {
			return err
		}
		s.logger.Info(ctx, "default users seeded")
	}

	ok, err = s.Records.Exists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		if err := s.Records.Replace(ctx, nil); err != nil {
			return err
		}
	}

	ok, err = s.Emails.Exists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		if err := s.Emails.Replace(ctx, nil); err != nil {
			return err
		}
	}
	return nil
}

// upgrades maps a version to the step that lifts the store to version+1.
var upgrades = map[int]func(ctx context.Context, s *Store) error{
	0: upgradeLegacyRoles,
}

// upgradeLegacyRoles rewrites the pre-versioning role "user" as "operator".
// Decoding already maps the legacy value, so re-encoding the decoded list
// is the rewrite. A list that does not decode is left as is.
func upgradeLegacyRoles(ctx context.Context, s *Store) error {
	blob, err := s.repo.Get(ctx, common.UsersKey)
	if err != nil || blob == nil {
		return err
	}

	var users []models.User
	if err := json.Unmarshal(blob, &users); err != nil {
		s.logger.Warn(ctx, "user list not upgraded, it does not decode", "error", err)
		return nil
	}
	return s.Users.Replace(ctx, users)
}

// SessionRepository persists the single AuthState under common.AuthKey.
type SessionRepository struct {
	repo   kv.Repository
	logger logging.Logger
}

func NewSessionRepository(repo kv.Repository, logger logging.Logger) *SessionRepository {
	return &SessionRepository{repo: repo, logger: logger.With("key", common.AuthKey)}
}

// Get returns the stored state, or nil when nobody is logged in. A state
// that does not decode is treated as logged out and logged as a warning.
func (r *SessionRepository) Get(ctx context.Context) (*models.AuthState, error) {
	blob, err := r.repo.Get(ctx, common.AuthKey)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}

	var st models.AuthState
	if err := json.Unmarshal(blob, &st); err != nil {
		r.logger.Warn(ctx, "stored session is corrupt, treating as logged out", "error", err, "bytes", len(blob))
		return nil, nil
	}
	return &st, nil
}

func (r *SessionRepository) Save(ctx context.Context, st models.AuthState) error {
	if st.IsAuthenticated && st.User == nil {
		return errors.New("authenticated session without user")
	}
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode auth state: %w", err)
	}
	return r.repo.Set(ctx, common.AuthKey, blob)
}

// Clear removes the auth key entirely.
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.repo.Delete(ctx, common.AuthKey)
}
