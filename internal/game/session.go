// internal/game/session.go
package game

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jason-s-yu/yukon/engine"
	"github.com/sirupsen/logrus"
)

// Session owns one Yukon game and serialises access to it. Front ends feed
// it input lines and draw it from View snapshots.
type Session struct {
	ID uuid.UUID // Unique identifier for this session, used in log fields.

	Mu     sync.Mutex // Protects engine.
	engine *engine.GameState

	log *logrus.Entry
}

// NewSession creates a session around a fresh game in the Startup phase.
// A nil logger falls back to the logrus standard logger.
func NewSession(seed uint64, rules engine.HouseRules, logger *logrus.Logger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id, _ := uuid.NewRandom()
	s := &Session{
		ID:     id,
		engine: engine.NewGame(seed, rules),
	}
	s.log = logger.WithField("session", id.String())
	s.log.WithFields(logrus.Fields{
		"strict_colors": rules.StrictColors,
		"deck_path":     rules.DefaultDeckPath,
	}).Info("Session started")
	return s
}

// Execute runs one line of input. It returns engine.OutcomeTerminate when the
// player asked to leave the application.
func (s *Session) Execute(line string) engine.Outcome {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	cmd := strings.TrimRight(line, "\r\n")
	entry := s.log.WithField("cmd", cmd)
	entry.Debug("Command received")

	before := s.engine.Phase()
	wasWon := s.engine.Won()
	out := s.engine.Execute(line)
	msg := s.engine.Message()

	if strings.HasPrefix(msg, "Error: ") && strings.TrimSpace(cmd) != "" {
		entry.WithField("error", strings.TrimPrefix(msg, "Error: ")).Info("Command rejected")
	}
	if after := s.engine.Phase(); after != before {
		entry.WithFields(logrus.Fields{"from": before, "to": after}).Info("Phase changed")
	}
	if !wasWon && s.engine.Won() {
		entry.Info("Game won")
	}
	if out == engine.OutcomeTerminate {
		s.log.Info("Session terminated")
	}
	return out
}

// View returns a snapshot of the game for rendering.
func (s *Session) View() BoardView {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.viewLocked()
}

// Phase returns the current phase of the underlying game.
func (s *Session) Phase() engine.Phase {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.engine.Phase()
}
