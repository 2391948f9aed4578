package rhythm

import "go-cave-rhythm/internal/utils"

// Clock maps a running time onto a repeating cycle of LeadIn + SectionLength.
// The lead-in shows as negative time.
type Clock struct {
	SectionLength float64
	LeadIn        float64

	created bool
}

// Period is the full cycle length.
func (c *Clock) Period() float64 {
	return c.SectionLength + c.LeadIn
}

// Current returns the section time for the given elapsed time.
func (c *Clock) Current(elapsed float64) float64 {
	return utils.Mod(elapsed, c.Period()) - c.LeadIn
}

// Tick advances the created latch. fresh is true exactly once per cycle,
// on the first tick at or after section start.
func (c *Clock) Tick(elapsed float64) (current float64, fresh bool) {
	current = c.Current(elapsed)
	if current < 0 {
		c.created = false
		return current, false
	}
	if !c.created {
		c.created = true
		return current, true
	}
	return current, false
}

// Reset clears the latch.
func (c *Clock) Reset() {
	c.created = false
}
