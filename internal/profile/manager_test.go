package profile

import (
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	keys  map[string]string
	reads int
}

func newFakeStore() *fakeStore {
	return &fakeStore{keys: make(map[string]string)}
}

func (f *fakeStore) SetProfileKey(key, value string) error {
	f.keys[key] = value
	return nil
}

func (f *fakeStore) GetProfileKey(key string) (string, error) {
	v, ok := f.keys[key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func (f *fakeStore) GetAllProfileKeys() (map[string]string, error) {
	f.reads++
	out := make(map[string]string, len(f.keys))
	for k, v := range f.keys {
		out[k] = v
	}
	return out, nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func TestManager_Defaults(t *testing.T) {
	m := NewManager(newFakeStore())

	p, err := m.GetProfile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != (Profile{}) {
		t.Errorf("profile = %+v, want zero value before anything is saved", p)
	}

	s, err := m.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", s)
	}
	if !s.Notifications.DailyReminders || s.Notifications.MoodAlerts {
		t.Errorf("notification defaults = %+v", s.Notifications)
	}
	if s.Privacy.DataSharing || !s.Privacy.Analytics {
		t.Errorf("privacy defaults = %+v", s.Privacy)
	}
}

func TestManager_SetAndGetProfile(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store)

	if err := m.SetProfile(Profile{Name: "Robin", Email: "robin@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := m.GetProfile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Robin" || p.Email != "robin@example.com" {
		t.Errorf("profile = %+v", p)
	}
}

func TestManager_SettingsRoundTrip(t *testing.T) {
	m := NewManager(newFakeStore())

	want := Settings{
		Notifications: NotificationSettings{DailyReminders: false, WeeklyReports: true, MoodAlerts: true},
		Privacy:       PrivacySettings{DataSharing: true, Analytics: false},
	}
	if err := m.SetSettings(want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.GetSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestManager_CacheTTL(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)}
	m := NewManagerWithClock(store, clock, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := m.GetProfile(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if store.reads != 1 {
		t.Errorf("store read %d times inside TTL, want 1", store.reads)
	}

	clock.advance(2 * time.Minute)
	if _, err := m.GetProfile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.reads != 2 {
		t.Errorf("store read %d times after TTL expiry, want 2", store.reads)
	}
}

func TestManager_Invalidate(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)}
	m := NewManagerWithClock(store, clock, time.Hour)

	if _, err := m.GetProfile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Invalidate()
	if _, err := m.GetProfile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.reads != 2 {
		t.Errorf("store read %d times, want a fresh read after Invalidate", store.reads)
	}
}
