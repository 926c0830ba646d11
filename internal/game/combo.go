package game

// Combo counts consecutive settles that produced matches.
type Combo struct {
	Count int
	Max   int
}

// Settle records one settled frame with the given match points. When a
// settle without matches ends a chain, the chain length is returned so the
// caller can announce it; otherwise 0.
func (c *Combo) Settle(points int) int {
	if points > 0 {
		c.Count++
		if c.Count > c.Max {
			c.Max = c.Count
		}
		return 0
	}
	ended := c.Count
	c.Count = 0
	return ended
}

// Reset clears both counters.
func (c *Combo) Reset() {
	*c = Combo{}
}
