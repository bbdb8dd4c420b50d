package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/skillswap-app/skillswap/internal/ai"
	"github.com/skillswap-app/skillswap/internal/skills"
	"github.com/skillswap-app/skillswap/internal/utils"
)

// The acting user's transcript label is fixed; the counterpart is labeled
// by display name.
const actingUserLabel = "Alex (Me)"

// Advisory cap on reply length. Not enforced on the response.
const replyMaxOutputTokens = 150

// Replier asks Gemini to role-play the matched user and produce the next
// line of the conversation.
type Replier struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewReplier(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Replier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Replier{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Reply generates the counterpart's answer to the transcript, which must
// already include the message awaiting a reply. Any failure returns
// ai.FallbackReply, indistinguishable from a normal persona line.
func (r *Replier) Reply(ctx context.Context, user, match *skills.UserProfile, transcript []*skills.Message) string {
	reply, err := r.reply(ctx, user, match, transcript)
	if err != nil {
		r.logger.Warn("reply generation failed", zap.Error(err))
		return ai.FallbackReply
	}

	return reply
}

func (r *Replier) reply(ctx context.Context, user, match *skills.UserProfile, transcript []*skills.Message) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user profile is required")
	}
	if match == nil {
		return "", fmt.Errorf("match profile is required")
	}

	system := personaInstruction(user, match)
	prompt := fmt.Sprintf(
		"Here is the conversation so far:\n%s\n\n%s just sent the last message. Respond as %s.",
		renderTranscript(user, match, transcript),
		user.Name,
		match.Name,
	)

	r.logger.Debug("gemini reply request",
		zap.String("match_id", match.ID),
		zap.Int("transcript_messages", len(transcript)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, r.maxLogLen)),
	)

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		MaxOutputTokens: replyMaxOutputTokens,
	}

	reply, err := r.generator.GenerateContent(ctx, config, prompt)
	if err != nil {
		return "", err
	}
	if reply = strings.TrimSpace(reply); reply == "" {
		return "", fmt.Errorf("empty reply")
	}

	r.logger.Debug("gemini reply response",
		zap.String("match_id", match.ID),
		zap.Int("response_length", utf8.RuneCountInString(reply)),
		zap.String("response_preview", utils.TruncateForLog(reply, r.maxLogLen)),
	)

	return reply, nil
}

// personaInstruction binds the model to the counterpart's identity and to
// the conversational register of the platform.
func personaInstruction(user, match *skills.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are roleplaying as %s.\n", match.Name)
	fmt.Fprintf(&b, "Your Bio: %s.\n", match.Bio)
	fmt.Fprintf(&b, "Skills you have: %s.\n", strings.Join(match.OfferedNames(), ", "))
	fmt.Fprintf(&b, "Skills you want: %s.\n\n", strings.Join(match.SkillsWanted, ", "))
	fmt.Fprintf(&b, "You are chatting with %s on the SkillSwap platform.\n", user.Name)
	b.WriteString("Goal: Discuss how you can exchange skills. Be friendly, helpful, and concise (max 2-3 sentences).\n")
	b.WriteString("Do not use hashtags or emojis excessively.")
	return b.String()
}

// renderTranscript formats the history as labeled lines in chronological
// order, the format the persona instruction tells the model to continue.
func renderTranscript(user, match *skills.UserProfile, transcript []*skills.Message) string {
	lines := make([]string, 0, len(transcript))
	for _, msg := range transcript {
		label := match.Name
		if msg.SenderID == user.ID {
			label = actingUserLabel
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Text))
	}

	return strings.Join(lines, "\n")
}
