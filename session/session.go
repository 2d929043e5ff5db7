package session

import (
	"context"
	"time"

	"atlas-stats/stats"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is a single player's time in game. It owns the player's stats model
// for its whole lifetime. A Session is not safe for concurrent use.
type Session struct {
	l           logrus.FieldLogger
	id          uuid.UUID
	tenantId    uuid.UUID
	characterId uint32
	model       *stats.Model
	startedAt   time.Time
	endedAt     *time.Time
	teardown    []func()
}

// New opens a session for the tenant carried by ctx
func New(l logrus.FieldLogger, ctx context.Context, characterId uint32, model *stats.Model) *Session {
	t := tenant.MustFromContext(ctx)
	id := uuid.New()
	return &Session{
		l: l.WithFields(logrus.Fields{
			"sessionId":   id,
			"tenantId":    t.Id(),
			"characterId": characterId,
		}),
		id:          id,
		tenantId:    t.Id(),
		characterId: characterId,
		model:       model,
		startedAt:   time.Now(),
	}
}

func (s *Session) Id() uuid.UUID {
	return s.id
}

func (s *Session) TenantId() uuid.UUID {
	return s.tenantId
}

func (s *Session) CharacterId() uint32 {
	return s.characterId
}

// Model returns the stats model owned by the session
func (s *Session) Model() *stats.Model {
	return s.model
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// EndedAt returns when the session ended, or nil while it is open
func (s *Session) EndedAt() *time.Time {
	return s.endedAt
}

func (s *Session) Ended() bool {
	return s.endedAt != nil
}

// Logger returns a logger annotated with the session identity
func (s *Session) Logger() logrus.FieldLogger {
	return s.l
}

// TeardownFunc registers work to run when the session ends. Registering on an
// ended session runs f immediately.
func (s *Session) TeardownFunc(f func()) {
	if f == nil {
		return
	}
	if s.Ended() {
		f()
		return
	}
	s.teardown = append(s.teardown, f)
}

// End runs registered teardown work in reverse registration order. Subsequent calls do nothing.
func (s *Session) End() {
	if s.Ended() {
		return
	}
	now := time.Now()
	s.endedAt = &now

	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
	s.teardown = nil

	s.l.WithFields(logrus.Fields{
		"duration":      now.Sub(s.startedAt),
		"level":         s.model.Level(),
		"currentHealth": s.model.CurrentHealth(),
	}).Info("Session ended.")
}
