package skills

// Directory is the fixed pool of candidate users eligible for matching.
// It is seeded once at process start and never mutated afterwards.
type Directory struct {
	Items []*UserProfile
}

// NewDirectory builds a directory over the given candidates, preserving
// their order.
func NewDirectory(candidates []*UserProfile) *Directory {
	return &Directory{Items: candidates}
}

func (d *Directory) Len() int {
	return len(d.Items)
}

// FindByID returns the candidate with the given id, or nil when no such
// candidate exists.
func (d *Directory) FindByID(id string) *UserProfile {
	for _, user := range d.Items {
		if user.ID == id {
			return user
		}
	}

	return nil
}

// Names returns the display names of all candidates in directory order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.Items))
	for _, user := range d.Items {
		names = append(names, user.Name)
	}

	return names
}
