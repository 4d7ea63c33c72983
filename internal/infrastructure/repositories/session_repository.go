package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nahuelmendez6/classroom-mecatronica-back-sub000/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository. The sessions
// table is the source of truth; Redis fronts FindByID with a short-TTL
// cache because the auth middleware hits it on every request. Closing a
// session overwrites the cache entry with a closed marker, so revocation is
// visible immediately even to reads racing the close.
type SessionRepositoryImpl struct {
	db     *gorm.DB
	cache  *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *gorm.DB, cache *redis.Client, cacheTTL time.Duration) domain.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		cache:  cache,
		prefix: "session:",
		ttl:    cacheTTL,
	}
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	dbSession := &DBSession{
		ID:        session.ID,
		UserID:    session.UserID,
		IPAddress: session.IPAddress,
		UserAgent: session.UserAgent,
		Status:    session.Status,
		DateStart: session.DateStart,
	}
	if err := r.db.WithContext(ctx).Create(dbSession).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	r.cacheSet(ctx, session)
	return nil
}

// FindByID implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if session, ok := r.cacheGet(ctx, sessionID); ok {
		if session.Status != domain.SessionActive {
			return nil, domain.ErrSessionClosed
		}
		return session, nil
	}

	var dbSession DBSession
	err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&dbSession).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	session := sessionToDomain(&dbSession)
	if session.Status != domain.SessionActive {
		return nil, domain.ErrSessionClosed
	}
	r.cacheSet(ctx, session)
	return session, nil
}

// CountActive implements domain.SessionRepository
func (r *SessionRepositoryImpl) CountActive(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBSession{}).
		Where("user_id = ? AND status = ?", userID, domain.SessionActive).
		Count(&count).Error
	return count, err
}

// ListActive implements domain.SessionRepository
func (r *SessionRepositoryImpl) ListActive(ctx context.Context, userID uint) ([]domain.Session, error) {
	var dbSessions []DBSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, domain.SessionActive).
		Order("date_start DESC").
		Find(&dbSessions).Error
	if err != nil {
		return nil, err
	}
	sessions := make([]domain.Session, 0, len(dbSessions))
	for i := range dbSessions {
		sessions = append(sessions, *sessionToDomain(&dbSessions[i]))
	}
	return sessions, nil
}

// Close implements domain.SessionRepository. Closing an unknown session is
// a no-op: the caller treats it as success.
func (r *SessionRepositoryImpl) Close(ctx context.Context, sessionID string) error {
	now := time.Now()
	err := r.db.WithContext(ctx).Model(&DBSession{}).
		Where("id = ?", sessionID).
		Updates(map[string]any{"status": domain.SessionClosed, "date_end": now}).Error
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	r.cacheMarkClosed(ctx, sessionID)
	return nil
}

// CloseAllForUser implements domain.SessionRepository. One bulk UPDATE
// closes every active session atomically.
func (r *SessionRepositoryImpl) CloseAllForUser(ctx context.Context, userID uint) (int64, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&DBSession{}).
		Where("user_id = ? AND status = ?", userID, domain.SessionActive).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}

	now := time.Now()
	res := r.db.WithContext(ctx).Model(&DBSession{}).
		Where("user_id = ? AND status = ?", userID, domain.SessionActive).
		Updates(map[string]any{"status": domain.SessionClosed, "date_end": now})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to close sessions: %w", res.Error)
	}
	for _, id := range ids {
		r.cacheMarkClosed(ctx, id)
	}
	return res.RowsAffected, nil
}

func (r *SessionRepositoryImpl) cacheGet(ctx context.Context, sessionID string) (*domain.Session, bool) {
	if r.cache == nil {
		return nil, false
	}
	data, err := r.cache.Get(ctx, r.prefix+sessionID).Result()
	if err != nil {
		return nil, false
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, false
	}
	return &session, true
}

func (r *SessionRepositoryImpl) cacheSet(ctx context.Context, session *domain.Session) {
	if r.cache == nil || session.Status != domain.SessionActive {
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	// Best effort; a cache miss just falls back to the database. SetNX so a
	// read that saw the row active before a concurrent close cannot
	// overwrite the closed marker afterwards.
	r.cache.SetNX(ctx, r.prefix+session.ID, data, r.ttl)
}

// cacheMarkClosed overwrites the cache entry with a closed marker rather
// than deleting it. The marker expires with the normal TTL.
func (r *SessionRepositoryImpl) cacheMarkClosed(ctx context.Context, sessionID string) {
	if r.cache == nil {
		return
	}
	data, err := json.Marshal(&domain.Session{ID: sessionID, Status: domain.SessionClosed})
	if err != nil {
		return
	}
	r.cache.Set(ctx, r.prefix+sessionID, data, r.ttl)
}

func sessionToDomain(dbSession *DBSession) *domain.Session {
	return &domain.Session{
		ID:        dbSession.ID,
		UserID:    dbSession.UserID,
		IPAddress: dbSession.IPAddress,
		UserAgent: dbSession.UserAgent,
		Status:    dbSession.Status,
		DateStart: dbSession.DateStart,
		DateEnd:   dbSession.DateEnd,
	}
}
