package ai

import (
	"context"

	"github.com/skillswap-app/skillswap/internal/skills"
)

// FallbackReply is appended to a conversation when reply generation fails
// for any reason. It is attributed to the counterpart like a normal line.
const FallbackReply = "Sorry, I'm having trouble connecting right now."

// Matchmaker ranks the candidate pool against the given user. The result is
// ordered as the ranking produced it, holds at most the requested top
// matches, and is empty when ranking fails for any reason. Failures never
// surface as errors; a caller cannot distinguish "no matches" from "service
// down".
type Matchmaker interface {
	FindMatches(ctx context.Context, user *skills.UserProfile) []skills.MatchResult
}

// Replier produces the counterpart's next line in a conversation. The
// transcript must include the message awaiting a reply. On any failure the
// returned text is FallbackReply.
type Replier interface {
	Reply(ctx context.Context, user, match *skills.UserProfile, transcript []*skills.Message) string
}
