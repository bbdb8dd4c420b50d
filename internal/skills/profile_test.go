package skills

import (
	"testing"
)

func testProfile() UserProfile {
	return UserProfile{
		ID:   "me",
		Name: "Alex Doe",
		SkillsOffered: []Skill{
			{ID: "s1", Name: "English", Level: LevelExpert},
		},
		SkillsWanted: []string{"Spanish"},
	}
}

func offeredIDs(p UserProfile) map[string]bool {
	ids := make(map[string]bool, len(p.SkillsOffered))
	for _, s := range p.SkillsOffered {
		ids[s.ID] = true
	}
	return ids
}

func TestAddOffered(t *testing.T) {
	p := testProfile()

	updated := AddOffered(p, "Guitar")
	if len(updated.SkillsOffered) != 2 {
		t.Fatalf("expected 2 offered skills, got %d", len(updated.SkillsOffered))
	}

	added := updated.SkillsOffered[1]
	if added.Name != "Guitar" {
		t.Fatalf("unexpected skill name: %q", added.Name)
	}
	if added.Level != DefaultLevel {
		t.Fatalf("expected default level %s, got %s", DefaultLevel, added.Level)
	}
	if added.ID == "" {
		t.Fatalf("expected a generated skill id")
	}

	// The input snapshot is untouched.
	if len(p.SkillsOffered) != 1 {
		t.Fatalf("input profile mutated: %d offered skills", len(p.SkillsOffered))
	}
}

func TestAddOfferedBlankIsNoOp(t *testing.T) {
	p := testProfile()

	for _, name := range []string{"", "   ", "\t\n"} {
		updated := AddOffered(p, name)
		if len(updated.SkillsOffered) != len(p.SkillsOffered) {
			t.Fatalf("expected no-op for name %q", name)
		}
	}
}

func TestAddOfferedAllowsDuplicateNames(t *testing.T) {
	p := AddOffered(testProfile(), "Guitar")
	p = AddOffered(p, "Guitar")

	if len(p.SkillsOffered) != 3 {
		t.Fatalf("expected duplicate names to be allowed, got %d skills", len(p.SkillsOffered))
	}
	if p.SkillsOffered[1].ID == p.SkillsOffered[2].ID {
		t.Fatalf("expected distinct ids for duplicate names")
	}
}

func TestAddThenRemoveOfferedRoundTrip(t *testing.T) {
	p := testProfile()
	before := offeredIDs(p)

	updated := AddOffered(p, "Guitar")
	addedID := updated.SkillsOffered[len(updated.SkillsOffered)-1].ID

	restored := RemoveOffered(updated, addedID)
	after := offeredIDs(restored)

	if len(after) != len(before) {
		t.Fatalf("expected %d offered skills, got %d", len(before), len(after))
	}
	for id := range before {
		if !after[id] {
			t.Fatalf("missing original skill id %q", id)
		}
	}
}

func TestRemoveOfferedAbsentIsNoOp(t *testing.T) {
	p := testProfile()

	updated := RemoveOffered(p, "nope")
	if len(updated.SkillsOffered) != len(p.SkillsOffered) {
		t.Fatalf("expected no-op for absent id")
	}
}

func TestAddWanted(t *testing.T) {
	tests := []struct {
		name   string
		add    string
		expect []string
	}{
		{
			name:   "appends new name",
			add:    "Guitar",
			expect: []string{"Spanish", "Guitar"},
		},
		{
			name:   "duplicate is a no-op",
			add:    "Spanish",
			expect: []string{"Spanish"},
		},
		{
			name:   "blank is a no-op",
			add:    "",
			expect: []string{"Spanish"},
		},
		{
			name:   "whitespace is a no-op",
			add:    "   ",
			expect: []string{"Spanish"},
		},
		{
			name:   "case differs from existing",
			add:    "spanish",
			expect: []string{"Spanish", "spanish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := AddWanted(testProfile(), tt.add)
			if len(updated.SkillsWanted) != len(tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, updated.SkillsWanted)
			}
			for i, want := range tt.expect {
				if updated.SkillsWanted[i] != want {
					t.Fatalf("expected %v, got %v", tt.expect, updated.SkillsWanted)
				}
			}
		})
	}
}

func TestRemoveWanted(t *testing.T) {
	p := testProfile()

	updated := RemoveWanted(p, "Spanish")
	if len(updated.SkillsWanted) != 0 {
		t.Fatalf("expected empty wanted list, got %v", updated.SkillsWanted)
	}

	unchanged := RemoveWanted(p, "French")
	if len(unchanged.SkillsWanted) != 1 {
		t.Fatalf("expected no-op for absent name, got %v", unchanged.SkillsWanted)
	}
}

func TestSetBio(t *testing.T) {
	p := testProfile()

	updated := SetBio(p, "New bio")
	if updated.Bio != "New bio" {
		t.Fatalf("unexpected bio: %q", updated.Bio)
	}

	cleared := SetBio(updated, "")
	if cleared.Bio != "" {
		t.Fatalf("expected bio replacement to be unconditional, got %q", cleared.Bio)
	}
}
