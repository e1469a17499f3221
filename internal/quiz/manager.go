package quiz

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// finishedRetention is how long a finished session stays retrievable so the
// player can still fetch the result before it is evicted.
const finishedRetention = 10 * time.Minute

// Manager owns the in-memory session registry and the countdown driver for
// each running session. Sessions are ephemeral: abandoning one tears its
// countdown down and drops all state.
type Manager struct {
	bank   *Bank
	budget int

	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
}

type entry struct {
	session *Session
	cancel  context.CancelFunc
}

// NewManager creates a Manager over the given bank. budget is the
// per-question countdown in seconds; zero means DefaultQuestionTime.
func NewManager(bank *Bank, budget int) *Manager {
	return &Manager{
		bank:     bank,
		budget:   budget,
		sessions: make(map[uuid.UUID]*entry),
	}
}

// Bank exposes the read-only reference data the manager plays over.
func (m *Manager) Bank() *Bank { return m.bank }

// Start registers a new session and begins its countdown.
func (m *Manager) Start(playerName, playerSchool string) *Session {
	s := NewSession(playerName, playerSchool, m.bank.Questions, m.budget)
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	m.sessions[s.ID] = &entry{session: s, cancel: cancel}
	m.mu.Unlock()

	go m.countdown(ctx, s)
	slog.Info("quiz session started", "session_id", s.ID, "player", playerName, "school", playerSchool)
	return s
}

// Get returns a running or recently finished session.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return e.session, true
}

// Abandon stops the session's countdown and discards it. Late ticks from the
// countdown goroutine are not applied. It reports whether the session existed.
func (m *Manager) Abandon(id uuid.UUID) bool {
	m.mu.Lock()
	e, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	e.cancel()
	slog.Info("quiz session abandoned", "session_id", id)
	return true
}

// countdown drives one tick per second until the session finishes or is
// abandoned. Once finished, the session lingers for result retrieval and is
// evicted after finishedRetention.
func (m *Manager) countdown(ctx context.Context, s *Session) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
			if s.Finished() {
				time.AfterFunc(finishedRetention, func() { m.Abandon(s.ID) })
				return
			}
		}
	}
}
