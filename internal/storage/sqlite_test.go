package storage

import (
	"errors"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEntry(id string, at time.Time) Entry {
	return Entry{
		ID:        id,
		CreatedAt: at,
		Mood:      6,
		Content:   "a quiet day",
		Sentiment: SentimentNeutral,
		Emotions:  []string{"calm", "reflective"},
	}
}

func TestMigrations(t *testing.T) {
	s := newTestStore(t)

	versions, err := s.AppliedMigrations()
	if err != nil {
		t.Fatalf("listing migrations: %v", err)
	}
	if len(versions) == 0 {
		t.Fatal("no migrations applied")
	}
	for i := 1; i < len(versions); i++ {
		if versions[i] <= versions[i-1] {
			t.Errorf("versions not ascending: %v", versions)
		}
	}

	// Re-running migrate on an up-to-date schema is a no-op.
	if err := s.migrate(); err != nil {
		t.Fatalf("re-running migrations: %v", err)
	}
	again, err := s.AppliedMigrations()
	if err != nil {
		t.Fatalf("listing migrations: %v", err)
	}
	if len(again) != len(versions) {
		t.Errorf("migration count changed from %d to %d on re-run", len(versions), len(again))
	}
}

func TestSaveAndGetEntry(t *testing.T) {
	s := newTestStore(t)

	at := time.Date(2025, time.March, 10, 14, 30, 0, 123456789, time.UTC)
	e := testEntry("entry-1", at)
	e.Analysis = &Analysis{
		MoodScore:       7,
		Confidence:      0.75,
		KeyPhrases:      []string{"quiet", "day"},
		Insights:        "You seem settled.",
		Recommendations: []string{"Keep journaling"},
		IsDemo:          true,
	}

	if err := s.SaveEntry(e); err != nil {
		t.Fatalf("saving entry: %v", err)
	}

	got, err := s.GetEntry("entry-1")
	if err != nil {
		t.Fatalf("getting entry: %v", err)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, at)
	}
	if got.Mood != 6 || got.Content != "a quiet day" || got.Sentiment != SentimentNeutral {
		t.Errorf("entry fields = %+v", got)
	}
	if len(got.Emotions) != 2 || got.Emotions[0] != "calm" {
		t.Errorf("Emotions = %v", got.Emotions)
	}
	if got.Analysis == nil {
		t.Fatal("Analysis attachment lost")
	}
	if got.Analysis.MoodScore != 7 || !got.Analysis.IsDemo {
		t.Errorf("Analysis = %+v", got.Analysis)
	}
	if len(got.Analysis.KeyPhrases) != 2 {
		t.Errorf("KeyPhrases = %v", got.Analysis.KeyPhrases)
	}
}

func TestGetEntry_WithoutAnalysis(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveEntry(testEntry("entry-1", time.Now())); err != nil {
		t.Fatalf("saving entry: %v", err)
	}
	got, err := s.GetEntry("entry-1")
	if err != nil {
		t.Fatalf("getting entry: %v", err)
	}
	if got.Analysis != nil {
		t.Errorf("Analysis = %+v, want nil for unanalyzed entry", got.Analysis)
	}
}

func TestGetEntry_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetEntry("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListEntries_OrderAndLimit(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := testEntry("entry-"+string(rune('a'+i)), base.AddDate(0, 0, i))
		if err := s.SaveEntry(e); err != nil {
			t.Fatalf("saving entry %d: %v", i, err)
		}
	}

	all, err := s.ListEntries(0)
	if err != nil {
		t.Fatalf("listing entries: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("got %d entries, want 5", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Fatal("entries not in most-recent-first order")
		}
	}

	limited, err := s.ListEntries(2)
	if err != nil {
		t.Fatalf("listing entries with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("got %d entries, want 2", len(limited))
	}
	if limited[0].ID != "entry-e" {
		t.Errorf("limited[0].ID = %q, want the most recent entry", limited[0].ID)
	}

	n, err := s.CountEntries()
	if err != nil {
		t.Fatalf("counting entries: %v", err)
	}
	if n != 5 {
		t.Errorf("CountEntries = %d, want 5", n)
	}
}

func TestListEntries_SubsecondOrdering(t *testing.T) {
	s := newTestStore(t)

	// Timestamps differing only in fractional seconds must still order
	// correctly through the stored string representation.
	base := time.Date(2025, time.March, 1, 8, 0, 5, 0, time.UTC)
	if err := s.SaveEntry(testEntry("whole", base)); err != nil {
		t.Fatalf("saving entry: %v", err)
	}
	if err := s.SaveEntry(testEntry("fractional", base.Add(500*time.Millisecond))); err != nil {
		t.Fatalf("saving entry: %v", err)
	}

	all, err := s.ListEntries(0)
	if err != nil {
		t.Fatalf("listing entries: %v", err)
	}
	if all[0].ID != "fractional" {
		t.Errorf("all[0].ID = %q, want the later fractional-second entry first", all[0].ID)
	}
}

func TestChatMessages(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAI
		}
		m := ChatMessage{
			ID:        "msg-" + string(rune('a'+i)),
			Role:      role,
			Content:   "message",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.SaveChatMessage(m); err != nil {
			t.Fatalf("saving message %d: %v", i, err)
		}
	}

	all, err := s.ListChatMessages(0)
	if err != nil {
		t.Fatalf("listing messages: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d messages, want 4", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.Before(all[i-1].CreatedAt) {
			t.Fatal("messages not in chronological order")
		}
	}
	if all[0].Role != RoleUser || all[1].Role != RoleAI {
		t.Errorf("roles = %q, %q", all[0].Role, all[1].Role)
	}

	// A limit keeps the most recent messages, still chronological.
	recent, err := s.ListChatMessages(2)
	if err != nil {
		t.Fatalf("listing messages with limit: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d messages, want 2", len(recent))
	}
	if recent[0].ID != "msg-c" || recent[1].ID != "msg-d" {
		t.Errorf("recent = [%s, %s], want the last two in order", recent[0].ID, recent[1].ID)
	}
}

func TestProfileKeys(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetProfileKey("name"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound for unset key", err)
	}

	if err := s.SetProfileKey("name", "Robin"); err != nil {
		t.Fatalf("setting key: %v", err)
	}
	if err := s.SetProfileKey("name", "Sam"); err != nil {
		t.Fatalf("overwriting key: %v", err)
	}
	if err := s.SetProfileKey("email", "sam@example.com"); err != nil {
		t.Fatalf("setting key: %v", err)
	}

	v, err := s.GetProfileKey("name")
	if err != nil {
		t.Fatalf("getting key: %v", err)
	}
	if v != "Sam" {
		t.Errorf("name = %q, want overwritten value", v)
	}

	all, err := s.GetAllProfileKeys()
	if err != nil {
		t.Fatalf("getting all keys: %v", err)
	}
	if len(all) != 2 || all["email"] != "sam@example.com" {
		t.Errorf("all keys = %v", all)
	}
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveEntry(testEntry("entry-1", time.Now())); err != nil {
		t.Fatalf("saving entry: %v", err)
	}
	if err := s.SaveChatMessage(ChatMessage{ID: "msg-1", Role: RoleUser, Content: "hi", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("saving message: %v", err)
	}
	if err := s.SetProfileKey("name", "Robin"); err != nil {
		t.Fatalf("setting key: %v", err)
	}

	if err := s.ClearAll(); err != nil {
		t.Fatalf("clearing: %v", err)
	}

	n, err := s.CountEntries()
	if err != nil {
		t.Fatalf("counting entries: %v", err)
	}
	if n != 0 {
		t.Errorf("CountEntries = %d after clear, want 0", n)
	}
	msgs, err := s.ListChatMessages(0)
	if err != nil {
		t.Fatalf("listing messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("got %d messages after clear, want 0", len(msgs))
	}
	keys, err := s.GetAllProfileKeys()
	if err != nil {
		t.Fatalf("getting keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("got %d profile keys after clear, want 0", len(keys))
	}
}
