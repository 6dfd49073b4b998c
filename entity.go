package keepsake

import "time"

// Clock is the time source handed to every entity on each tick. Entities
// never sample the wall clock themselves, so a run is fully determined by
// the sequence of clocks it receives.
type Clock struct {
	Frame   uint64        // ticks completed including this one, starting at 1
	Elapsed time.Duration // scene time at the end of this tick
	Delta   time.Duration // duration of one tick
}

// Millis returns Elapsed as fractional milliseconds.
func (c Clock) Millis() float64 {
	return float64(c.Elapsed) / float64(time.Millisecond)
}

// Entity is one independently phased visual element of the scene.
type Entity interface {
	// Update advances the entity's phase state by one tick.
	Update(c Clock)
	// Render draws the entity's current state without advancing it.
	Render(dst Surface)
}
