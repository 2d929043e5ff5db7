package game

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"atlas-stats/character"
	"atlas-stats/session"
	"atlas-stats/stats"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAlreadyLoggedIn = errors.New("character already logged in")
)

// Mode owns the open sessions of a tenant and the controllers playing them.
// A Mode is not safe for concurrent use.
type Mode struct {
	l           logrus.FieldLogger
	ctx         context.Context
	defaults    Defaults
	sessions    map[uuid.UUID]*session.Session
	controllers map[uuid.UUID]*Controller
}

// NewMode creates a game mode for the tenant carried by ctx, reading session defaults from the environment
func NewMode(l logrus.FieldLogger, ctx context.Context) *Mode {
	t := tenant.MustFromContext(ctx)
	ml := l.WithField("tenantId", t.Id())
	return &Mode{
		l:           ml,
		ctx:         ctx,
		defaults:    DefaultsFromEnv(ml),
		sessions:    make(map[uuid.UUID]*session.Session),
		controllers: make(map[uuid.UUID]*Controller),
	}
}

// WithDefaults overrides the session defaults
func (m *Mode) WithDefaults(d Defaults) *Mode {
	m.defaults = d
	return m
}

func (m *Mode) Defaults() Defaults {
	return m.defaults
}

// Login opens a session for the character and starts a controller bound to its stats
func (m *Mode) Login(c character.Model) (*Controller, error) {
	if _, err := m.ByCharacterProvider(c.Id())(); err == nil {
		return nil, fmt.Errorf("character %d: %w", c.Id(), ErrAlreadyLoggedIn)
	}

	name := c.Name()
	if name == "" {
		name = m.defaults.Name
	}
	maxHealth := stats.MaximumHealthForLevel(m.defaults.BaseMaxHealth, c.Level())

	sm, err := stats.NewBuilder().
		SetName(name).
		SetLevel(c.Level()).
		SetMaximumHealth(maxHealth).
		SetCurrentHealth(maxHealth).
		Build()
	if err != nil {
		m.l.WithError(err).WithField("characterId", c.Id()).Error("Unable to build stats for character.")
		return nil, err
	}

	s := session.New(m.l, m.ctx, c.Id(), sm)
	ctrl := NewController(s)
	ctrl.BeginPlay()

	m.sessions[s.Id()] = s
	m.controllers[s.Id()] = ctrl

	m.l.WithFields(logrus.Fields{
		"sessionId":   s.Id(),
		"characterId": c.Id(),
		"worldId":     c.WorldId(),
		"name":        name,
		"level":       sm.Level(),
		"maxHealth":   sm.MaximumHealth(),
	}).Info("Character logged in.")

	return ctrl, nil
}

// Logout ends the session, tearing down its controller
func (m *Mode) Logout(sessionId uuid.UUID) error {
	s, err := m.SessionProvider(sessionId)()
	if err != nil {
		return err
	}

	delete(m.sessions, sessionId)
	delete(m.controllers, sessionId)
	s.End()

	m.l.WithFields(logrus.Fields{
		"sessionId":   sessionId,
		"characterId": s.CharacterId(),
		"endedAt":     s.EndedAt(),
	}).Info("Character logged out.")
	return nil
}

// SessionProvider looks up an open session by id
func (m *Mode) SessionProvider(sessionId uuid.UUID) model.Provider[*session.Session] {
	return func() (*session.Session, error) {
		s, ok := m.sessions[sessionId]
		if !ok {
			return nil, fmt.Errorf("session %s: %w", sessionId, ErrSessionNotFound)
		}
		return s, nil
	}
}

// ByCharacterProvider looks up the open session of a character
func (m *Mode) ByCharacterProvider(characterId uint32) model.Provider[*session.Session] {
	return func() (*session.Session, error) {
		for _, s := range m.sessions {
			if s.CharacterId() == characterId {
				return s, nil
			}
		}
		return nil, fmt.Errorf("character %d: %w", characterId, ErrSessionNotFound)
	}
}

// Controller returns the controller playing an open session
func (m *Mode) Controller(sessionId uuid.UUID) (*Controller, error) {
	c, ok := m.controllers[sessionId]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionId, ErrSessionNotFound)
	}
	return c, nil
}

// Sessions returns the open sessions ordered by start time
func (m *Mode) Sessions() []*session.Session {
	result := make([]*session.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartedAt().Equal(result[j].StartedAt()) {
			return result[i].Id().String() < result[j].Id().String()
		}
		return result[i].StartedAt().Before(result[j].StartedAt())
	})
	return result
}

// Shutdown ends every open session
func (m *Mode) Shutdown() {
	ss := m.Sessions()
	m.l.WithField("sessions", len(ss)).Info("Shutting down game mode.")
	for _, s := range ss {
		if err := m.Logout(s.Id()); err != nil {
			m.l.WithError(err).WithField("sessionId", s.Id()).Warn("Unable to end session during shutdown.")
		}
	}
}
