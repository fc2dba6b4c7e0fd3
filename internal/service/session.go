package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-xref/internal/adapter"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/store"
	"github.com/MKhiriev/go-xref/internal/utils"
	"github.com/MKhiriev/go-xref/models"
)

type sessionManager struct {
	role    models.Role
	tokens  store.TokenRepository
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu    sync.Mutex
	state models.Session
	// gen is bumped by every operation that changes the token, so a profile
	// fetch started under an older token never overwrites newer state.
	gen     uint64
	subs    map[int]chan models.Session
	nextSub int
}

// NewSessionManager returns the single writer of the role's session state.
// The state starts Uninitialized until Load is called.
func NewSessionManager(role models.Role, tokens store.TokenRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionManager {
	return &sessionManager{
		role:    role,
		tokens:  tokens,
		adapter: serverAdapter,
		logger:  logger,
		state:   models.Session{Role: role, Status: models.SessionUninitialized},
		subs:    make(map[int]chan models.Session),
	}
}

func (m *sessionManager) Role() models.Role {
	return m.role
}

func (m *sessionManager) Load(ctx context.Context) models.Session {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	m.state.Status = models.SessionLoading
	m.publishLocked()
	m.mu.Unlock()

	stored, err := m.readToken(ctx)
	if err != nil || stored.Value == "" {
		m.mu.Lock()
		defer m.mu.Unlock()
		if gen != m.gen {
			return m.snapshotLocked()
		}
		m.state.Token = ""
		m.state.TokenExpiresAt = nil
		m.state.Profile = nil
		m.state.Err = err
		m.state.Status = models.SessionReady
		m.publishLocked()
		return m.snapshotLocked()
	}

	// The stored token is authoritative as soon as it is read, so callers
	// acting during the profile fetch already send it.
	m.mu.Lock()
	if gen != m.gen {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap
	}
	m.state.Token = stored.Value
	m.state.TokenExpiresAt = stored.ExpiresAt
	m.publishLocked()
	m.mu.Unlock()

	return m.fetchProfile(ctx, gen, stored.Value)
}

func (m *sessionManager) Reload(ctx context.Context) models.Session {
	m.mu.Lock()
	token := m.state.Token
	gen := m.gen
	if token == "" {
		m.state.Profile = nil
		m.state.Err = ErrNoToken
		m.state.Status = models.SessionReady
		m.publishLocked()
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap
	}
	m.mu.Unlock()

	return m.fetchProfile(ctx, gen, token)
}

func (m *sessionManager) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := validateCredentials(creds); err != nil {
		return m.Snapshot(), err
	}

	creds.Role = ""
	if m.role == models.RoleUser {
		creds.Role = string(models.RoleUser)
	}

	token, err := m.adapter.Login(ctx, creds)
	if err != nil {
		m.logger.Err(err).
			Str("func", "sessionManager.Login").
			Str("role", string(m.role)).
			Msg("login failed")
		return m.Snapshot(), fmt.Errorf("login: %w", err)
	}

	stored := models.StoredToken{Role: m.role, Value: token}
	expiresAt, err := utils.TokenExpiry(token)
	if err != nil {
		m.logger.Debug().Err(err).Str("role", string(m.role)).Msg("token expiry unknown")
	}
	stored.ExpiresAt = expiresAt

	if err = m.tokens.Save(ctx, stored); err != nil {
		return m.Snapshot(), fmt.Errorf("error saving token: %w", err)
	}

	return m.Load(ctx), nil
}

func (m *sessionManager) Logout(ctx context.Context) error {
	err := m.tokens.Delete(ctx, m.role)

	m.mu.Lock()
	m.gen++
	m.state.Token = ""
	m.state.TokenExpiresAt = nil
	m.state.Profile = nil
	m.state.Err = nil
	m.state.Status = models.SessionReady
	m.publishLocked()
	m.mu.Unlock()

	if err != nil {
		m.logger.Err(err).Str("role", string(m.role)).Msg("failed to delete persisted token")
		return fmt.Errorf("error deleting token: %w", err)
	}
	return nil
}

func (m *sessionManager) Snapshot() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *sessionManager) Subscribe() (<-chan models.Session, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan models.Session, 1)
	m.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (m *sessionManager) readToken(ctx context.Context) (models.StoredToken, error) {
	stored, err := m.tokens.Get(ctx, m.role)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.StoredToken{}, nil
	}
	if err != nil {
		m.logger.Err(err).Str("role", string(m.role)).Msg("failed to read persisted token")
		return models.StoredToken{}, fmt.Errorf("error reading token: %w", err)
	}
	stored.Value = strings.TrimSpace(stored.Value)
	return stored, nil
}

func (m *sessionManager) fetchProfile(ctx context.Context, gen uint64, token string) models.Session {
	profile, err := m.adapter.Profile(ctx, token)

	m.mu.Lock()
	defer m.mu.Unlock()

	if gen != m.gen {
		return m.snapshotLocked()
	}

	m.state.Token = token
	m.state.Status = models.SessionReady
	if err != nil {
		m.logger.Warn().Err(err).
			Str("func", "sessionManager.fetchProfile").
			Str("role", string(m.role)).
			Msg("profile fetch failed, keeping token")
		m.state.Profile = nil
		m.state.Err = err
	} else {
		m.state.Profile = &profile
		m.state.Err = nil
	}

	m.publishLocked()
	return m.snapshotLocked()
}

func (m *sessionManager) snapshotLocked() models.Session {
	snap := m.state
	if snap.Profile != nil {
		p := *snap.Profile
		snap.Profile = &p
	}
	if snap.TokenExpiresAt != nil {
		t := *snap.TokenExpiresAt
		snap.TokenExpiresAt = &t
	}
	return snap
}

// publishLocked hands the latest snapshot to every subscriber, replacing an
// unread one. Must be called with mu held.
func (m *sessionManager) publishLocked() {
	snap := m.snapshotLocked()
	for _, ch := range m.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
