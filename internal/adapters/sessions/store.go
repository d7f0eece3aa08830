package sessions

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/klondike-go/internal/domain"
)

// Options configures a MemoryStore.
type Options struct {
	// TTL evicts games untouched for this long. Zero disables expiry.
	TTL time.Duration
	// MaxSessions caps the number of live games. Zero means unlimited.
	MaxSessions int
	// Now is the clock, defaulting to time.Now.
	Now func() time.Time
}

type session struct {
	mu       sync.Mutex
	game     *domain.Game
	lastSeen time.Time
}

// MemoryStore keeps games in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	opts     Options
	logger   *slog.Logger
}

func NewMemoryStore(opts Options, logger *slog.Logger) *MemoryStore {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &MemoryStore{
		sessions: make(map[string]*session),
		opts:     opts,
		logger:   logger,
	}
}

func (s *MemoryStore) Create(_ context.Context, g *domain.Game) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.Now()
	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		s.sweepLocked(now)
		if len(s.sessions) >= s.opts.MaxSessions {
			return "", domain.ErrTooManyGames
		}
	}

	id := uuid.NewString()
	s.sessions[id] = &session{game: g, lastSeen: now}
	return id, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(g *domain.Game) error) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	now := s.opts.Now()
	if ok && s.expired(sess, now) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		s.mu.Unlock()
		return domain.ErrGameNotFound
	}
	sess.lastSeen = now
	s.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.game)
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrGameNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of stored games, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops expired games and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.opts.Now())
}

// Run sweeps on every tick until ctx is cancelled.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	if s.opts.TTL <= 0 || interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 {
				s.logger.InfoContext(ctx, "expired games removed", "count", n, "remaining", s.Len())
			}
		}
	}
}

func (s *MemoryStore) sweepLocked(now time.Time) int {
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *MemoryStore) expired(sess *session, now time.Time) bool {
	return s.opts.TTL > 0 && now.Sub(sess.lastSeen) > s.opts.TTL
}
