package skills

// Level describes the proficiency a user claims for an offered skill.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelExpert       Level = "Expert"
)

// Skill is a named capability a user can teach. Identity is the ID; names
// are free text and never canonicalized, so "Guitar" and "guitar" are
// distinct skills.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level Level  `json:"level"`
}

// UserProfile is an immutable snapshot of a user. Edits go through the
// profile operations in this package, each returning a new snapshot.
// SkillsWanted holds bare skill names without level or id.
type UserProfile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Bio           string   `json:"bio"`
	Avatar        string   `json:"avatar"`
	SkillsOffered []Skill  `json:"skillsOffered"`
	SkillsWanted  []string `json:"skillsWanted"`
	IsOnline      bool     `json:"isOnline,omitempty"`
}

// MatchResult pairs a candidate with the score and reasoning produced by a
// single ranking query. Results are transient and never persisted.
type MatchResult struct {
	User   *UserProfile `json:"user"`
	Score  float64      `json:"matchScore"`
	Reason string       `json:"matchReason"`
}

// Message is a single line in a conversation. Timestamp is epoch
// milliseconds; history order and timestamp order coincide.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// OfferedNames returns the names of the profile's offered skills in order.
func (p *UserProfile) OfferedNames() []string {
	names := make([]string, 0, len(p.SkillsOffered))
	for _, s := range p.SkillsOffered {
		names = append(names, s.Name)
	}

	return names
}

// WantsSkill reports whether name is already present in SkillsWanted.
// Comparison is an exact string match.
func (p *UserProfile) WantsSkill(name string) bool {
	for _, want := range p.SkillsWanted {
		if want == name {
			return true
		}
	}

	return false
}
