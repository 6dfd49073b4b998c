// Package keepsake is a small animated greeting scene for [Ebitengine] and
// the terminal.
//
// The scene is a handful of independently phased entities drawn back to
// front each tick: drifting glow hearts, an envelope that opens and lets its
// letter slide out, a parametric heart that traces itself, grows and then
// pulses forever, a rotating flower, and a caption that fades in one
// character at a time while it waves.
//
// Clicking the heart or the envelope opens an overlay, the diary. The core
// never builds the overlay itself; it only holds an [Overlay] capability and
// an [OverlayGuard] that keeps at most one instance alive and polls its
// liveness once per tick.
//
// # Quick start
//
// The core draws onto any [Surface]. A [Loop] owns the tick order:
//
//	cfg := keepsake.DefaultConfig()
//	scene := keepsake.NewScene(cfg, nil, glyphs)
//	loop := keepsake.NewLoop(scene, keepsake.NewOverlayGuard(diary), events)
//	list := keepsake.NewDrawList()
//	for loop.Tick(list) {
//		list.Replay(screen)
//	}
//
// Package ebitensurface runs the loop inside an ebiten.Game; package
// termsurface runs it in a terminal with tcell.
//
// # Time
//
// Entities never read the wall clock. Each tick hands them a [Clock] with the
// frame number and the elapsed scene time, so a run is reproducible from its
// seed and tick count alone.
//
// # Hit testing
//
// The heart is hit-tested as a circle whose radius follows the current scale
// and the envelope as its body rectangle. Both only approximate the drawn
// shapes.
//
// # Automated runs
//
// [LoadTestScript] reads a JSON script of clicks, waits and screenshots that
// a [TestRunner] feeds into the loop one tick at a time:
//
//	{"steps": [
//		{"action": "wait", "frames": 400},
//		{"action": "click", "x": 400, "y": 300},
//		{"action": "screenshot", "label": "diary-open"},
//		{"action": "quit"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package keepsake
