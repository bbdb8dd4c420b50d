package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/skillswap-app/skillswap/internal/skills"
	"github.com/skillswap-app/skillswap/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, config *genai.GenerateContentConfig, prompt string) (string, error)
}

// Matcher asks Gemini to rank the candidate directory against a user and
// hydrates the structured response into match results.
type Matcher struct {
	generator contentGenerator
	directory *skills.Directory
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Low temperature keeps the ranking logic consistent between calls.
const matchTemperature = 0.2

// matchSchema constrains the response to an ordered array of
// {userId, matchScore, matchReason} objects, all fields required.
var matchSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"userId": {Type: genai.TypeString},
			"matchScore": {
				Type:        genai.TypeNumber,
				Description: "A score from 0 to 100 indicating match quality",
			},
			"matchReason": {
				Type:        genai.TypeString,
				Description: "A concise explanation of why this is a good match (e.g. 'You both want what the other has')",
			},
		},
		Required: []string{"userId", "matchScore", "matchReason"},
	},
}

// rawMatch mirrors one element of the structured ranking response.
type rawMatch struct {
	UserID string  `json:"userId"`
	Score  float64 `json:"matchScore"`
	Reason string  `json:"matchReason"`
}

// candidateSummary is the compact per-candidate record embedded in the
// ranking prompt.
type candidateSummary struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Offers []string `json:"offers"`
	Wants  []string `json:"wants"`
}

type userSummary struct {
	Offers []string `json:"offers"`
	Wants  []string `json:"wants"`
}

func NewMatcher(generator contentGenerator, directory *skills.Directory, logger *zap.Logger, maxLogLength int) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Matcher{
		generator: generator,
		directory: directory,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// FindMatches ranks the directory against the user. Every failure mode,
// from request construction to a malformed response, collapses into an
// empty result; the cause is only visible in the logs.
func (m *Matcher) FindMatches(ctx context.Context, user *skills.UserProfile) []skills.MatchResult {
	matches, err := m.findMatches(ctx, user)
	if err != nil {
		m.logger.Warn("match ranking failed", zap.Error(err))
		return nil
	}

	return matches
}

func (m *Matcher) findMatches(ctx context.Context, user *skills.UserProfile) ([]skills.MatchResult, error) {
	if user == nil {
		return nil, fmt.Errorf("user profile is required")
	}

	candidates := make([]candidateSummary, 0, m.directory.Len())
	for _, candidate := range m.directory.Items {
		candidates = append(candidates, candidateSummary{
			ID:     candidate.ID,
			Name:   candidate.Name,
			Offers: candidate.OfferedNames(),
			Wants:  candidate.SkillsWanted,
		})
	}

	candidatesJSON, err := json.Marshal(candidates)
	if err != nil {
		return nil, fmt.Errorf("marshal candidate summaries: %w", err)
	}

	currentUserJSON, err := json.Marshal(userSummary{
		Offers: user.OfferedNames(),
		Wants:  user.SkillsWanted,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal user summary: %w", err)
	}

	prompt := buildPrompt(string(currentUserJSON), string(candidatesJSON))

	m.logger.Debug("gemini match request",
		zap.String("user_id", user.ID),
		zap.Int("candidates", m.directory.Len()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, m.maxLogLen)),
	)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   matchSchema,
		Temperature:      genai.Ptr(float32(matchTemperature)),
	}

	raw, err := m.generator.GenerateContent(ctx, config, prompt)
	if err != nil {
		return nil, err
	}

	m.logger.Debug("gemini match response",
		zap.String("user_id", user.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, m.maxLogLen)),
	)

	rawMatches, err := parseMatches(raw)
	if err != nil {
		return nil, err
	}

	return m.hydrate(rawMatches), nil
}

// hydrate resolves userIds against the directory, preserving the ranking
// order. Unknown ids are dropped element-wise, never treated as a failure.
func (m *Matcher) hydrate(rawMatches []rawMatch) []skills.MatchResult {
	results := make([]skills.MatchResult, 0, len(rawMatches))
	for _, match := range rawMatches {
		user := m.directory.FindByID(match.UserID)
		if user == nil {
			m.logger.Debug("dropping match with unknown candidate id",
				zap.String("user_id", match.UserID),
			)
			continue
		}

		results = append(results, skills.MatchResult{
			User:   user,
			Score:  match.Score,
			Reason: match.Reason,
		})
	}

	return results
}

func buildPrompt(currentUserJSON, candidatesJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "User:\n{{CURRENT_USER_JSON}}\n\nCandidates:\n{{CANDIDATES_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{CURRENT_USER_JSON}}", currentUserJSON)
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATES_JSON}}", candidatesJSON)
	return prompt
}

func parseMatches(raw string) ([]rawMatch, error) {
	cleaned := extractJSON(raw)

	var data []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var matches []rawMatch
	cfg := &mapstructure.DecoderConfig{
		Result:           &matches,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("build match decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode match elements: %w", err)
	}

	return matches, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
