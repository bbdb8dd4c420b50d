package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/skillswap-app/skillswap/internal/ai"
	"github.com/skillswap-app/skillswap/internal/skills"
)

func chatParticipants() (*skills.UserProfile, *skills.UserProfile) {
	user := &skills.UserProfile{
		ID:           "me",
		Name:         "Alex Doe",
		SkillsWanted: []string{"Spanish"},
	}
	match := &skills.UserProfile{
		ID:   "u2",
		Name: "Elena Rodriguez",
		Bio:  "Graphic designer looking to improve my Spanish conversation skills.",
		SkillsOffered: []skills.Skill{
			{ID: "s1", Name: "Adobe Photoshop", Level: skills.LevelExpert},
			{ID: "s2", Name: "UI Design", Level: skills.LevelIntermediate},
		},
		SkillsWanted: []string{"Spanish", "Cooking"},
	}
	return user, match
}

func chatTranscript(user, match *skills.UserProfile) []*skills.Message {
	return []*skills.Message{
		{ID: "m1", SenderID: match.ID, Text: "Hi Alex Doe! I noticed we matched.", Timestamp: 1},
		{ID: "m2", SenderID: user.ID, Text: "Hey! Can you teach me Photoshop?", Timestamp: 2},
	}
}

func TestReplyRendersTranscriptAndPersona(t *testing.T) {
	stub := &stubGenerator{response: "Of course, happy to help!"}
	replier := NewReplier(stub, zap.NewNop(), 0)

	user, match := chatParticipants()
	reply := replier.Reply(context.Background(), user, match, chatTranscript(user, match))

	if reply != "Of course, happy to help!" {
		t.Fatalf("unexpected reply: %q", reply)
	}

	prompt := stub.lastPrompt
	if !strings.Contains(prompt, "Elena Rodriguez: Hi Alex Doe! I noticed we matched.") {
		t.Fatalf("counterpart line not labeled by name: %s", prompt)
	}
	if !strings.Contains(prompt, "Alex (Me): Hey! Can you teach me Photoshop?") {
		t.Fatalf("acting user line not labeled: %s", prompt)
	}
	if !strings.Contains(prompt, "Alex Doe just sent the last message. Respond as Elena Rodriguez.") {
		t.Fatalf("missing reply directive: %s", prompt)
	}

	if stub.lastConfig == nil || stub.lastConfig.SystemInstruction == nil {
		t.Fatalf("expected a persona system instruction")
	}
	system := stub.lastConfig.SystemInstruction.Parts[0].Text
	for _, want := range []string{
		"roleplaying as Elena Rodriguez",
		"Graphic designer looking to improve my Spanish conversation skills.",
		"Adobe Photoshop, UI Design",
		"Spanish, Cooking",
		"chatting with Alex Doe on the SkillSwap platform",
		"max 2-3 sentences",
	} {
		if !strings.Contains(system, want) {
			t.Fatalf("system instruction missing %q: %s", want, system)
		}
	}

	if stub.lastConfig.MaxOutputTokens != replyMaxOutputTokens {
		t.Fatalf("expected max output tokens %d, got %d", replyMaxOutputTokens, stub.lastConfig.MaxOutputTokens)
	}
}

func TestReplyFallsBack(t *testing.T) {
	tests := []struct {
		name string
		stub *stubGenerator
	}{
		{name: "generator error", stub: &stubGenerator{err: errors.New("network down")}},
		{name: "empty response", stub: &stubGenerator{response: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replier := NewReplier(tt.stub, zap.NewNop(), 0)

			user, match := chatParticipants()
			reply := replier.Reply(context.Background(), user, match, chatTranscript(user, match))

			if reply != ai.FallbackReply {
				t.Fatalf("expected fallback reply, got %q", reply)
			}
		})
	}
}

func TestReplyRequiresProfiles(t *testing.T) {
	stub := &stubGenerator{response: "hi"}
	replier := NewReplier(stub, zap.NewNop(), 0)

	user, match := chatParticipants()

	if reply := replier.Reply(context.Background(), nil, match, nil); reply != ai.FallbackReply {
		t.Fatalf("expected fallback without a user profile, got %q", reply)
	}
	if reply := replier.Reply(context.Background(), user, nil, nil); reply != ai.FallbackReply {
		t.Fatalf("expected fallback without a match profile, got %q", reply)
	}
}
