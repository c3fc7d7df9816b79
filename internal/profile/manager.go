package profile

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mindhaven/mindhaven/internal/storage"
)

// Storage keys inside the user_profile table.
const (
	keyName     = "name"
	keyEmail    = "email"
	keySettings = "settings"
)

// ProfileStore defines the storage operations the Manager needs.
// Implemented by storage.Store.
type ProfileStore interface {
	SetProfileKey(key, value string) error
	GetProfileKey(key string) (string, error)
	GetAllProfileKeys() (map[string]string, error)
}

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Manager provides cached, structured access to the profile and settings
// stored in SQLite.
type Manager struct {
	store ProfileStore
	clock Clock
	ttl   time.Duration

	mu       sync.RWMutex
	cached   *snapshot
	cachedAt time.Time
}

type snapshot struct {
	profile  Profile
	settings Settings
}

// NewManager creates a Manager with a 60-second cache TTL.
func NewManager(store ProfileStore) *Manager {
	return &Manager{
		store: store,
		clock: realClock{},
		ttl:   60 * time.Second,
	}
}

// NewManagerWithClock creates a Manager with a custom clock (for testing).
func NewManagerWithClock(store ProfileStore, clock Clock, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		clock: clock,
		ttl:   ttl,
	}
}

// GetProfile returns the stored profile, or a zero-value Profile when none
// has been saved yet.
func (m *Manager) GetProfile() (Profile, error) {
	snap, err := m.load()
	if err != nil {
		return Profile{}, err
	}
	return snap.profile, nil
}

// GetSettings returns the stored settings, or the defaults when none have
// been saved yet.
func (m *Manager) GetSettings() (Settings, error) {
	snap, err := m.load()
	if err != nil {
		return Settings{}, err
	}
	return snap.settings, nil
}

// SetProfile persists the name and email and invalidates the cache.
func (m *Manager) SetProfile(p Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetProfileKey(keyName, p.Name); err != nil {
		return fmt.Errorf("setting profile name: %w", err)
	}
	if err := m.store.SetProfileKey(keyEmail, p.Email); err != nil {
		return fmt.Errorf("setting profile email: %w", err)
	}
	m.cached = nil
	return nil
}

// SetSettings persists the settings toggles and invalidates the cache.
func (m *Manager) SetSettings(s Settings) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling settings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.SetProfileKey(keySettings, string(b)); err != nil {
		return fmt.Errorf("setting settings key: %w", err)
	}
	m.cached = nil
	return nil
}

func (m *Manager) load() (snapshot, error) {
	// Fast path: read lock for cache hit.
	m.mu.RLock()
	if m.cached != nil && m.clock.Now().Before(m.cachedAt.Add(m.ttl)) {
		snap := *m.cached
		m.mu.RUnlock()
		return snap, nil
	}
	m.mu.RUnlock()

	// Slow path: write lock for cache miss.
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock.
	if m.cached != nil && m.clock.Now().Before(m.cachedAt.Add(m.ttl)) {
		return *m.cached, nil
	}

	keys, err := m.store.GetAllProfileKeys()
	if err != nil {
		return snapshot{}, fmt.Errorf("loading profile keys: %w", err)
	}

	snap := snapshot{settings: DefaultSettings()}
	snap.profile.Name = keys[keyName]
	snap.profile.Email = keys[keyEmail]
	if raw, ok := keys[keySettings]; ok {
		if err := json.Unmarshal([]byte(raw), &snap.settings); err != nil {
			return snapshot{}, fmt.Errorf("unmarshalling settings: %w", err)
		}
	}

	m.cached = &snap
	m.cachedAt = m.clock.Now()
	return snap, nil
}

// Invalidate drops the cache. Called after the store is wholesale-cleared.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	m.cached = nil
	m.mu.Unlock()
}

var _ ProfileStore = (*storage.Store)(nil)
