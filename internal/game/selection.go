package game

// Selection buffers up to two tile picks.
type Selection struct {
	picks [2]Pos
	n     int
}

// Add records a pick. A third pick before Resolve replaces the second.
func (s *Selection) Add(p Pos) {
	if s.n == len(s.picks) {
		s.picks[1] = p
		return
	}
	s.picks[s.n] = p
	s.n++
}

// Resolve consumes a full pair. An adjacent pair is returned with ok set and
// the buffer emptied; a non-adjacent pair collapses to a single pending pick
// at the second position.
func (s *Selection) Resolve() (a, b Pos, ok bool) {
	if s.n < 2 {
		return Pos{}, Pos{}, false
	}
	a, b = s.picks[0], s.picks[1]
	if a.Adjacent(b) {
		s.n = 0
		return a, b, true
	}
	s.picks[0] = b
	s.n = 1
	return Pos{}, Pos{}, false
}

// Pending returns the picks currently buffered.
func (s *Selection) Pending() []Pos {
	out := make([]Pos, s.n)
	copy(out, s.picks[:s.n])
	return out
}

// Len is the number of buffered picks.
func (s *Selection) Len() int { return s.n }

// Clear drops all picks.
func (s *Selection) Clear() { s.n = 0 }
