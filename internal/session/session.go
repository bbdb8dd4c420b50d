// Package session owns the mutable in-memory state of one app session: the
// acting user's profile snapshot, the latest match list, and the open
// conversations. Views receive a Session and call its operations; nothing
// reaches into shared globals.
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/skillswap-app/skillswap/internal/ai"
	"github.com/skillswap-app/skillswap/internal/skills"
)

// Session is safe for concurrent use. Overlapping match queries are
// allowed to race: whichever call completes last overwrites the visible
// list, regardless of issue order.
type Session struct {
	matchmaker ai.Matchmaker
	replier    ai.Replier
	directory  *skills.Directory
	logger     *zap.Logger

	mu            sync.Mutex
	profile       skills.UserProfile
	matches       []skills.MatchResult
	conversations map[string]*Conversation
}

func New(directory *skills.Directory, matchmaker ai.Matchmaker, replier ai.Replier, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		matchmaker:    matchmaker,
		replier:       replier,
		directory:     directory,
		logger:        logger,
		profile:       skills.DefaultUser(),
		conversations: make(map[string]*Conversation),
	}
}

// Profile returns the current immutable profile snapshot.
func (s *Session) Profile() skills.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// UpdateProfile swaps in the snapshot produced by apply and returns it.
func (s *Session) UpdateProfile(apply func(skills.UserProfile) skills.UserProfile) skills.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = apply(s.profile)
	return s.profile
}

// Directory returns the fixed candidate pool.
func (s *Session) Directory() *skills.Directory {
	return s.directory
}

// Matches returns the most recently completed match list.
func (s *Session) Matches() []skills.MatchResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches
}

// HasMatchBasis reports whether the profile gives the ranking anything to
// work with. Callers skip the query when it is false.
func (s *Session) HasMatchBasis() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profile.SkillsOffered) > 0 || len(s.profile.SkillsWanted) > 0
}

// RefreshMatches issues one ranking call against the current profile
// snapshot and stores the result when it completes. The call runs without
// holding the session lock, so concurrent refreshes race and the last one
// to complete wins.
func (s *Session) RefreshMatches(ctx context.Context) []skills.MatchResult {
	profile := s.Profile()

	matches := s.matchmaker.FindMatches(ctx, &profile)

	s.mu.Lock()
	s.matches = matches
	s.mu.Unlock()

	s.logger.Debug("match list updated", zap.Int("count", len(matches)))

	return matches
}

// OpenConversation starts (or restarts) the conversation with the given
// candidate. History does not survive re-entry: the returned conversation
// always begins with the scripted opener authored by the counterpart.
func (s *Session) OpenConversation(matchID string) (*Conversation, error) {
	match := s.directory.FindByID(matchID)
	if match == nil {
		return nil, fmt.Errorf("no such user: %s", matchID)
	}

	conv := newConversation(s, match)

	s.mu.Lock()
	s.conversations[matchID] = conv
	s.mu.Unlock()

	return conv, nil
}

// Conversation returns the open conversation with the given candidate, or
// nil when none has been opened.
func (s *Session) Conversation(matchID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversations[matchID]
}
