package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arifsetiawan/womshop/internal/client/api"
	"github.com/arifsetiawan/womshop/internal/client/models"
	"github.com/arifsetiawan/womshop/internal/client/storage"
	"github.com/arifsetiawan/womshop/internal/dbx"
	"github.com/arifsetiawan/womshop/internal/logging"
)

// Snapshot is the read-only view of the session handed to the presentation
// layer. Callers never mutate session state directly; they dispatch Login
// and Logout intents instead.
type Snapshot struct {
	User           *models.User
	IsLoggedIn     bool
	IsInitializing bool
}

// Manager is the single owner of the in-memory session state.
//
// State machine: Initializing → {LoggedOut, LoggedIn}. LoggedOut becomes
// LoggedIn only through a successful Login; LoggedIn becomes LoggedOut only
// through Logout. Token expiry never transitions the state by itself.
type Manager struct {
	db     *sql.DB
	api    api.Client
	logger logging.Logger

	mu           sync.Mutex
	user         *models.User
	loggedIn     bool
	initializing bool
}

// NewManager constructs a Manager over the local store and the API client.
// The session starts in the initializing state until Restore has run.
func NewManager(db *sql.DB, apiClient api.Client, logger logging.Logger) *Manager {
	return &Manager{db: db, api: apiClient, logger: logger, initializing: true}
}

func (m *Manager) repo() storage.Repository {
	return storage.NewSQLiteRepository(m.db)
}

// Restore loads a previously persisted session from the store. It never
// returns an error: any read failure or a partial credential pair is treated
// as "no session". The initializing flag is cleared in every case.
func (m *Manager) Restore(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.initializing = false
		m.mu.Unlock()
	}()

	repo := m.repo()

	token, err := repo.Get(ctx, storage.KeyToken)
	if err != nil {
		m.logger.Error(ctx, "error reading stored token", "error", err)
		return
	}
	userRaw, err := repo.Get(ctx, storage.KeyUser)
	if err != nil {
		m.logger.Error(ctx, "error reading stored user", "error", err)
		return
	}
	if len(token) == 0 || len(userRaw) == 0 {
		// One half of the pair alone is not a session.
		return
	}

	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		m.logger.Error(ctx, "stored user record is corrupted", "error", err)
		return
	}

	m.mu.Lock()
	m.user = &user
	m.loggedIn = true
	m.mu.Unlock()

	m.logTokenExpiry(ctx, string(token))
	m.logger.Info(ctx, "session restored", "username", user.Username)
}

// Login validates the credentials locally, authenticates against the remote
// service, and persists the token and user record in one transaction.
//
// Validation failures surface as *ValidationError before any request is
// issued. Remote failures are returned unchanged; callers resolve a display
// message via api.ResolveMessage(err, MsgLoginFailed). Login never retries.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if err := ValidateCredentials(username, password); err != nil {
		return err
	}

	resp, err := m.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	user := resp.User
	userRaw, err := json.Marshal(&user)
	if err != nil {
		return fmt.Errorf("serializing user record: %w", err)
	}

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, storage.KeyToken, []byte(resp.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, storage.KeyUser, userRaw)
	})
	if err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}

	m.mu.Lock()
	m.user = &user
	m.loggedIn = true
	m.mu.Unlock()

	m.logTokenExpiry(ctx, resp.AccessToken)
	m.logger.Info(ctx, "login successful", "username", user.Username)
	return nil
}

// Logout clears the persisted credential pair and resets the in-memory
// state. Clearing the store is best-effort: a persistence failure is logged
// and the in-memory reset still happens. Safe to call repeatedly.
func (m *Manager) Logout(ctx context.Context) {
	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, storage.KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, storage.KeyUser)
	})
	if err != nil {
		m.logger.Error(ctx, "error clearing stored session", "error", err)
	}

	m.mu.Lock()
	m.user = nil
	m.loggedIn = false
	m.mu.Unlock()

	m.logger.Info(ctx, "logged out")
}

// Snapshot returns a copy of the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{IsLoggedIn: m.loggedIn, IsInitializing: m.initializing}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// IsLoggedIn is a convenience accessor for the REPL prompt.
func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loggedIn
}

// logTokenExpiry peeks at the JWT expiry claim for diagnostics. The token is
// opaque to this client, so parsing is unverified and purely informational;
// an expired token is logged, never acted on.
func (m *Manager) logTokenExpiry(ctx context.Context, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if time.Now().After(exp.Time) {
		m.logger.Warn(ctx, "stored token is already expired", "expired_at", exp.Time)
		return
	}
	m.logger.Debug(ctx, "token expiry", "expires_at", exp.Time)
}
