package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// newCachedSessionRepoForTest builds the repository with the Redis cache in
// front of the table.
func newCachedSessionRepoForTest(t *testing.T) (domain.SessionRepository, *gorm.DB, *redis.Client) {
	t.Helper()
	db := setupTestDB(t)
	client := setupTestRedis(t)
	return NewSessionRepository(db, client, 30*time.Second), db, client
}

// newSessionRepoForTest builds the repository without a cache; the table
// alone must carry the semantics.
func newSessionRepoForTest(t *testing.T) domain.SessionRepository {
	t.Helper()
	return NewSessionRepository(setupTestDB(t), nil, 30*time.Second)
}

func makeSession(id string, userID uint) *domain.Session {
	return &domain.Session{
		ID:        id,
		UserID:    userID,
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
		Status:    domain.SessionActive,
		DateStart: time.Now(),
	}
}

func TestSessionRepositoryImpl_CreateAndFind(t *testing.T) {
	repo := newSessionRepoForTest(t)
	ctx := context.Background()

	if err := repo.Create(ctx, makeSession("sess-1", 7)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.UserID != 7 || found.Status != domain.SessionActive {
		t.Errorf("unexpected session %+v", found)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepositoryImpl_CloseMakesSessionInvalid(t *testing.T) {
	repo := newSessionRepoForTest(t)
	ctx := context.Background()

	if err := repo.Create(ctx, makeSession("sess-1", 7)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Close(ctx, "sess-1"); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}

	// Closing again is still fine.
	if err := repo.Close(ctx, "sess-1"); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
	// So is closing a session that never existed.
	if err := repo.Close(ctx, "missing"); err != nil {
		t.Fatalf("close of unknown session failed: %v", err)
	}
}

func TestSessionRepositoryImpl_CountAndListActive(t *testing.T) {
	repo := newSessionRepoForTest(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, makeSession(id, 7)); err != nil {
			t.Fatalf("create %s failed: %v", id, err)
		}
	}
	if err := repo.Create(ctx, makeSession("other", 9)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Close(ctx, "b"); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	count, err := repo.CountActive(ctx, 7)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 active sessions, got %d", count)
	}

	sessions, err := repo.ListActive(ctx, 7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("expected 2 sessions listed, got %d", len(sessions))
	}
	for _, s := range sessions {
		if s.ID == "b" {
			t.Error("closed session listed as active")
		}
		if s.UserID != 7 {
			t.Errorf("foreign session %s listed", s.ID)
		}
	}
}

func TestSessionRepositoryImpl_CloseAllForUser(t *testing.T) {
	repo := newSessionRepoForTest(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, makeSession(id, 7)); err != nil {
			t.Fatalf("create %s failed: %v", id, err)
		}
	}
	if err := repo.Create(ctx, makeSession("other", 9)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	closed, err := repo.CloseAllForUser(ctx, 7)
	if err != nil {
		t.Fatalf("close all failed: %v", err)
	}
	if closed != 3 {
		t.Errorf("expected 3 closed sessions, got %d", closed)
	}

	count, err := repo.CountActive(ctx, 7)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no active sessions, got %d", count)
	}

	// The other user's session is untouched.
	if _, err := repo.FindByID(ctx, "other"); err != nil {
		t.Fatalf("unrelated session affected: %v", err)
	}

	// Nothing left to close on repeat.
	closed, err = repo.CloseAllForUser(ctx, 7)
	if err != nil {
		t.Fatalf("repeat close all failed: %v", err)
	}
	if closed != 0 {
		t.Errorf("expected 0 on repeat, got %d", closed)
	}
}

func TestSessionRepositoryImpl_FindByID_ServesFromCache(t *testing.T) {
	repo, db, client := newCachedSessionRepoForTest(t)
	ctx := context.Background()

	if err := repo.Create(ctx, makeSession("sess-1", 7)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if client.Exists(ctx, "session:sess-1").Val() != 1 {
		t.Fatal("expected the session cached on create")
	}

	// Removing the row behind the cache's back: a hit must still answer.
	if err := db.Where("id = ?", "sess-1").Delete(&DBSession{}).Error; err != nil {
		t.Fatalf("failed to delete row: %v", err)
	}
	found, err := repo.FindByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("expected a cache hit, got %v", err)
	}
	if found.UserID != 7 || found.Status != domain.SessionActive {
		t.Errorf("unexpected cached session %+v", found)
	}
}

func TestSessionRepositoryImpl_Close_InvalidatesWarmCache(t *testing.T) {
	repo, _, client := newCachedSessionRepoForTest(t)
	ctx := context.Background()

	if err := repo.Create(ctx, makeSession("sess-1", 7)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, "sess-1"); err != nil {
		t.Fatalf("warmup find failed: %v", err)
	}

	if err := repo.Close(ctx, "sess-1"); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// The key survives as a closed marker, and lookups reject at once.
	if client.Exists(ctx, "session:sess-1").Val() != 1 {
		t.Error("expected a closed marker, not a deleted key")
	}
	if _, err := repo.FindByID(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed after close, got %v", err)
	}
}

func TestSessionRepositoryImpl_CloseAllForUser_InvalidatesWarmCache(t *testing.T) {
	repo, _, _ := newCachedSessionRepoForTest(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := repo.Create(ctx, makeSession(id, 7)); err != nil {
			t.Fatalf("create %s failed: %v", id, err)
		}
		if _, err := repo.FindByID(ctx, id); err != nil {
			t.Fatalf("warmup find %s failed: %v", id, err)
		}
	}

	closed, err := repo.CloseAllForUser(ctx, 7)
	if err != nil {
		t.Fatalf("close all failed: %v", err)
	}
	if closed != 2 {
		t.Errorf("expected 2 closed, got %d", closed)
	}

	for _, id := range []string{"a", "b"} {
		if _, err := repo.FindByID(ctx, id); !errors.Is(err, domain.ErrSessionClosed) {
			t.Fatalf("session %s: expected ErrSessionClosed, got %v", id, err)
		}
	}
}

func TestSessionRepositoryImpl_StaleReadCannotRecacheClosedSession(t *testing.T) {
	repo, _, _ := newCachedSessionRepoForTest(t)
	ctx := context.Background()

	session := makeSession("sess-1", 7)
	if err := repo.Create(ctx, session); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Close(ctx, "sess-1"); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// A reader that loaded the row while it was still active writes its
	// snapshot only after the close has landed; the closed marker must win.
	impl := repo.(*SessionRepositoryImpl)
	impl.cacheSet(ctx, session)

	if _, err := repo.FindByID(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionClosed) {
		t.Fatalf("stale snapshot revived a closed session: %v", err)
	}
}
