package editor

// Selection is the index of the mesh instance the panel edits.
type Selection struct {
	index int
}

// Index returns the selected instance.
func (s *Selection) Index() int { return s.index }

// Set selects i, clamped to [0, n-1]. An empty scene always selects 0.
func (s *Selection) Set(i, n int) {
	switch {
	case n <= 0 || i < 0:
		s.index = 0
	case i >= n:
		s.index = n - 1
	default:
		s.index = i
	}
}

// Clamp keeps the selection inside a scene of n instances.
func (s *Selection) Clamp(n int) { s.Set(s.index, n) }

// Deleted moves the selection back one after the selected instance was removed,
// leaving n instances.
func (s *Selection) Deleted(n int) { s.Set(s.index-1, n) }

// Added selects the newest of n instances.
func (s *Selection) Added(n int) { s.Set(n-1, n) }

// CycleTag returns the tag step places away from current in tags, wrapping at both ends.
// An unknown current tag starts from the first entry. Empty tags returns current.
func CycleTag(tags []string, current string, step int) string {
	n := len(tags)
	if n == 0 {
		return current
	}
	for i, t := range tags {
		if t == current {
			return tags[((i+step)%n+n)%n]
		}
	}
	return tags[0]
}
