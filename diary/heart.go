package diary

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/keepsake"
)

// Heart animation timing, in seconds.
const (
	growSteps    = 20
	growStep     = 0.08
	pulseCount   = 10
	pulseStep    = 0.12
	pulsePeak    = 1.1
	heartOutline = 5 // curve scale of the diary heart at Scale 1
)

// HeartAnimation is the diary's heart: it grows from nothing, beats ten
// times and then rests at full size.
type HeartAnimation struct {
	// Scale is the current size relative to full size.
	Scale float64

	chain *keepsake.TweenChain
}

// NewHeartAnimation creates the animation at scale 0.
func NewHeartAnimation() *HeartAnimation {
	h := &HeartAnimation{}
	h.chain = keepsake.NewTweenChain(
		keepsake.TweenBetween(&h.Scale, 0, 1, growSteps*growStep, ease.Linear),
	)
	for i := 0; i < pulseCount; i++ {
		h.chain.Append(keepsake.TweenBetween(&h.Scale, 1, 1, pulseStep, ease.Linear))
		h.chain.Append(keepsake.TweenBetween(&h.Scale, 1, pulsePeak, pulseStep, ease.OutQuad))
		h.chain.Append(keepsake.TweenBetween(&h.Scale, pulsePeak, 1, pulseStep, ease.InQuad))
	}
	return h
}

// Update advances the animation by dt seconds.
func (h *HeartAnimation) Update(dt float32) {
	h.chain.Update(dt)
}

// Growing reports whether the heart has not yet reached full size.
func (h *HeartAnimation) Growing() bool {
	return h.chain.Index() == 0
}

// Done reports whether the heart has finished beating.
func (h *HeartAnimation) Done() bool {
	return h.chain.Done()
}

// Outline returns the heart's curve for drawing at center, with size scaling
// the whole animation.
func (h *HeartAnimation) Outline(buf []keepsake.Vec2, center keepsake.Vec2, size float64) []keepsake.Vec2 {
	return keepsake.AppendHeartPoints(buf, center, heartOutline*size*h.Scale, keepsake.FullSweep)
}
