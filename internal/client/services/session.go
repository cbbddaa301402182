package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/blogfolio/internal/client/models"
	"github.com/dmitrijs2005/blogfolio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/blogfolio/internal/dbx"
)

const sessionKey = "user"

var ErrSessionExpired = errors.New("session expired")

// SessionStore keeps the signed-in user in memory and in the metadata
// table. It is the TokenSource of the HTTP client.
type SessionStore struct {
	db  *sql.DB
	now func() time.Time

	mu      sync.RWMutex
	current *models.Session
	loaded  bool
}

func NewSessionStore(db *sql.DB, now func() time.Time) *SessionStore {
	if now == nil {
		now = time.Now
	}
	return &SessionStore{db: db, now: now}
}

// Load returns the stored session, (nil, nil) when nobody is signed in and
// ErrSessionExpired when the token has expired; an expired session is
// removed.
func (s *SessionStore) Load(ctx context.Context) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, sessionKey)
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		s.loaded = true
		if raw != nil {
			var sess models.Session
			if err := json.Unmarshal(raw, &sess); err != nil {
				return nil, fmt.Errorf("decode session: %w", err)
			}
			s.current = &sess
		}
	}

	if s.current == nil {
		return nil, nil
	}
	if tokenExpired(s.current.Token, s.now()) {
		s.current = nil
		if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, sessionKey); err != nil {
			return nil, fmt.Errorf("drop expired session: %w", err)
		}
		return nil, ErrSessionExpired
	}
	out := *s.current
	return &out, nil
}

func (s *SessionStore) Save(ctx context.Context, sess models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Set(ctx, sessionKey, raw)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.current = &sess
	s.loaded = true
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.loaded = true
	if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Token returns the bearer token of a live in-memory session, or "".
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || tokenExpired(s.current.Token, s.now()) {
		return ""
	}
	return s.current.Token
}

// tokenExpired reads the exp claim without verifying the signature; the
// backend is the one that verifies. Opaque tokens never expire here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
