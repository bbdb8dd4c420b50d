package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillswap-app/skillswap/internal/skills"
)

// genericGoal stands in for the first wanted skill in the opener when the
// acting user has not listed any.
const genericGoal = "your goals"

var nowMillis = func() int64 { return time.Now().UnixMilli() }

// Conversation is the in-memory message history with one counterpart. It
// lives only as long as the session keeps it open; re-opening discards it.
type Conversation struct {
	session *Session
	match   *skills.UserProfile

	mu      sync.Mutex
	history []*skills.Message
}

func newConversation(s *Session, match *skills.UserProfile) *Conversation {
	conv := &Conversation{session: s, match: match}
	conv.history = []*skills.Message{conv.opener(s.Profile())}
	return conv
}

// opener is the scripted first line every conversation starts with,
// authored by the counterpart and referencing the acting user's first
// wanted skill.
func (c *Conversation) opener(user skills.UserProfile) *skills.Message {
	goal := genericGoal
	if len(user.SkillsWanted) > 0 {
		goal = user.SkillsWanted[0]
	}

	return &skills.Message{
		ID:        uuid.NewString(),
		SenderID:  c.match.ID,
		Text:      fmt.Sprintf("Hi %s! I noticed we matched. I'd love to help you with %s!", user.Name, goal),
		Timestamp: nowMillis(),
	}
}

// Match returns the counterpart profile.
func (c *Conversation) Match() *skills.UserProfile {
	return c.match
}

// History returns a copy of the message history in insertion order.
func (c *Conversation) History() []*skills.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := make([]*skills.Message, len(c.history))
	copy(history, c.history)
	return history
}

// Send appends the user's message, asks the replier for the counterpart's
// answer with the full transcript including the just-sent message, and
// appends the reply. Blank text is a no-op. The returned message is the
// counterpart's reply.
func (c *Conversation) Send(ctx context.Context, text string) *skills.Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	user := c.session.Profile()

	c.mu.Lock()
	c.history = append(c.history, &skills.Message{
		ID:        uuid.NewString(),
		SenderID:  user.ID,
		Text:      text,
		Timestamp: nowMillis(),
	})
	transcript := make([]*skills.Message, len(c.history))
	copy(transcript, c.history)
	c.mu.Unlock()

	replyText := c.session.replier.Reply(ctx, &user, c.match, transcript)

	reply := &skills.Message{
		ID:        uuid.NewString(),
		SenderID:  c.match.ID,
		Text:      replyText,
		Timestamp: nowMillis(),
	}

	c.mu.Lock()
	c.history = append(c.history, reply)
	c.mu.Unlock()

	return reply
}
