package skills

// DefaultPool returns the built-in candidate pool. The app ships with a
// fixed set of users to match against; there is no registration flow.
func DefaultPool() *Directory {
	return NewDirectory([]*UserProfile{
		{
			ID:     "u2",
			Name:   "Elena Rodriguez",
			Bio:    "Graphic designer looking to improve my Spanish conversation skills.",
			Avatar: "https://picsum.photos/seed/elena/200/200",
			SkillsOffered: []Skill{
				{ID: "s1", Name: "Adobe Photoshop", Level: LevelExpert},
				{ID: "s2", Name: "UI Design", Level: LevelIntermediate},
			},
			SkillsWanted: []string{"Spanish", "Cooking"},
			IsOnline:     true,
		},
		{
			ID:     "u3",
			Name:   "Kenji Sato",
			Bio:    "Software engineer who loves guitar. Wants to learn French.",
			Avatar: "https://picsum.photos/seed/kenji/200/200",
			SkillsOffered: []Skill{
				{ID: "s3", Name: "React", Level: LevelExpert},
				{ID: "s4", Name: "Guitar", Level: LevelIntermediate},
			},
			SkillsWanted: []string{"French", "Public Speaking"},
		},
		{
			ID:     "u4",
			Name:   "Sarah Jenkins",
			Bio:    "Chef based in NYC. I want to learn how to code a website.",
			Avatar: "https://picsum.photos/seed/sarah/200/200",
			SkillsOffered: []Skill{
				{ID: "s5", Name: "French Cooking", Level: LevelExpert},
				{ID: "s6", Name: "Baking", Level: LevelExpert},
			},
			SkillsWanted: []string{"Web Development", "React", "HTML/CSS"},
			IsOnline:     true,
		},
		{
			ID:     "u5",
			Name:   "David Chen",
			Bio:    "Native Mandarin speaker, looking for piano lessons.",
			Avatar: "https://picsum.photos/seed/david/200/200",
			SkillsOffered: []Skill{
				{ID: "s7", Name: "Mandarin", Level: LevelExpert},
				{ID: "s8", Name: "Math", Level: LevelExpert},
			},
			SkillsWanted: []string{"Piano", "Music Theory"},
			IsOnline:     true,
		},
		{
			ID:     "u6",
			Name:   "Aisha Osei",
			Bio:    "Digital marketer wanting to learn Python for data analysis.",
			Avatar: "https://picsum.photos/seed/aisha/200/200",
			SkillsOffered: []Skill{
				{ID: "s9", Name: "SEO", Level: LevelExpert},
				{ID: "s10", Name: "Content Marketing", Level: LevelIntermediate},
			},
			SkillsWanted: []string{"Python", "Data Science"},
		},
		{
			ID:     "u7",
			Name:   "Marco Rossi",
			Bio:    "Italian native, I can teach Italian language. I want to learn Guitar.",
			Avatar: "https://picsum.photos/seed/marco/200/200",
			SkillsOffered: []Skill{
				{ID: "s11", Name: "Italian", Level: LevelExpert},
			},
			SkillsWanted: []string{"Guitar", "Singing"},
			IsOnline:     true,
		},
	})
}

// DefaultUser returns the acting user seeded at session start.
func DefaultUser() UserProfile {
	return UserProfile{
		ID:     "me",
		Name:   "Alex Doe",
		Bio:    "Enthusiastic learner ready to swap skills!",
		Avatar: "https://picsum.photos/seed/alex/200/200",
		SkillsOffered: []Skill{
			{ID: "s_me_1", Name: "English", Level: LevelExpert},
		},
		SkillsWanted: []string{"Spanish"},
	}
}
