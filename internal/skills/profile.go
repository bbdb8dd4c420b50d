package skills

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultLevel is assigned to skills added through AddOffered. There is no
// level picker on the input path; users adjust nothing else about a skill.
const DefaultLevel = LevelIntermediate

// AddOffered returns a copy of the profile with a new offered skill
// appended. The name keeps its original spelling; a blank name (after
// trimming) is a no-op. Duplicate names are allowed since identity is the
// generated id.
func AddOffered(p UserProfile, name string) UserProfile {
	if strings.TrimSpace(name) == "" {
		return p
	}

	offered := make([]Skill, 0, len(p.SkillsOffered)+1)
	offered = append(offered, p.SkillsOffered...)
	offered = append(offered, Skill{
		ID:    uuid.NewString(),
		Name:  name,
		Level: DefaultLevel,
	})

	p.SkillsOffered = offered
	return p
}

// RemoveOffered returns a copy of the profile without the offered skill
// carrying the given id. A missing id is a no-op.
func RemoveOffered(p UserProfile, skillID string) UserProfile {
	offered := make([]Skill, 0, len(p.SkillsOffered))
	for _, s := range p.SkillsOffered {
		if s.ID == skillID {
			continue
		}
		offered = append(offered, s)
	}

	p.SkillsOffered = offered
	return p
}

// AddWanted returns a copy of the profile with name appended to the wanted
// list. Blank names and exact duplicates are no-ops, keeping the wanted
// list free of repeats.
func AddWanted(p UserProfile, name string) UserProfile {
	if strings.TrimSpace(name) == "" {
		return p
	}

	if p.WantsSkill(name) {
		return p
	}

	wanted := make([]string, 0, len(p.SkillsWanted)+1)
	wanted = append(wanted, p.SkillsWanted...)
	wanted = append(wanted, name)

	p.SkillsWanted = wanted
	return p
}

// RemoveWanted returns a copy of the profile without the first exact match
// of name in the wanted list. A missing name is a no-op.
func RemoveWanted(p UserProfile, name string) UserProfile {
	wanted := make([]string, 0, len(p.SkillsWanted))
	removed := false
	for _, want := range p.SkillsWanted {
		if !removed && want == name {
			removed = true
			continue
		}
		wanted = append(wanted, want)
	}

	p.SkillsWanted = wanted
	return p
}

// SetBio returns a copy of the profile with the bio replaced. No length
// limit and no content checks.
func SetBio(p UserProfile, text string) UserProfile {
	p.Bio = text
	return p
}
