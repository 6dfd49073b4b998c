package keepsake

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// TweenTo or TweenBetween and call Update(dt) each tick; the group writes the
// current values into the fields.
//
// There is no global animation manager; callers call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenTo creates a TweenGroup that animates *field from its current value
// to the target over duration seconds.
func TweenTo(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenBetween(field, *field, to, duration, fn)
}

// TweenBetween creates a TweenGroup that animates *field from one value to
// another regardless of its value when the group starts.
func TweenBetween(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenPoint creates a TweenGroup that animates a Vec2 to the target.
func TweenPoint(p *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(p.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(p.Y), float32(to.Y), duration, fn)
	g.fields[0] = &p.X
	g.fields[1] = &p.Y
	return g
}

// TweenChain plays groups one after another. Time left over when a group
// finishes is not carried into the next one.
type TweenChain struct {
	groups []*TweenGroup
	cur    int
}

// NewTweenChain creates a chain over groups.
func NewTweenChain(groups ...*TweenGroup) *TweenChain {
	return &TweenChain{groups: groups}
}

// Append adds a group to the end of the chain.
func (c *TweenChain) Append(g *TweenGroup) {
	c.groups = append(c.groups, g)
}

// Update advances the current group by dt seconds.
func (c *TweenChain) Update(dt float32) {
	if c.Done() {
		return
	}
	g := c.groups[c.cur]
	g.Update(dt)
	if g.Done {
		c.cur++
	}
}

// Index returns the position of the group currently playing.
func (c *TweenChain) Index() int { return c.cur }

// Len returns the number of groups.
func (c *TweenChain) Len() int { return len(c.groups) }

// Done reports whether every group has finished.
func (c *TweenChain) Done() bool { return c.cur >= len(c.groups) }
