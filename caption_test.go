package keepsake

import "testing"

// fixedGlyphs is a GlyphSource where every character is 10px wide.
type fixedGlyphs struct{}

func (fixedGlyphs) Glyphs(s string, size TextSize, c Color) []Glyph {
	chars := SplitGraphemes(s)
	out := make([]Glyph, len(chars))
	for i, ch := range chars {
		out[i] = Glyph{Text: ch, Size: size, Color: c, Width: 10, Height: size.Points()}
	}
	return out
}

func newTestCaption(text string, cadence int) *FadingCaption {
	cfg := DefaultConfig()
	cfg.RevealCadence = cadence
	return NewFadingCaption(&cfg, text, Vec2{100, 40}, fixedGlyphs{}.Glyphs(text, TextLarge, ColorWhite))
}

func TestFadingCaptionFiveCharsDoneAfter100Ticks(t *testing.T) {
	c := newTestCaption("hello", 20)
	for i := uint64(1); i < 100; i++ {
		c.Update(tickClock(i))
		if c.Done() {
			t.Fatalf("done early at tick %d", i)
		}
	}
	c.Update(tickClock(100))
	if c.Shown() != 5 {
		t.Errorf("Shown = %d, want 5", c.Shown())
	}
	for i := 0; i < c.Len(); i++ {
		if c.Alpha(i) != MaxAlpha {
			t.Errorf("Alpha(%d) = %d, want %d", i, c.Alpha(i), MaxAlpha)
		}
	}
	if !c.Done() {
		t.Error("expected done after 100 ticks")
	}
}

func TestFadingCaptionMonotonic(t *testing.T) {
	c := newTestCaption("From your Shreyash❤️😁", 20)
	prevShown := 0
	prev := make([]int, c.Len())
	wasDone := false
	for i := uint64(1); i <= 1000; i++ {
		c.Update(tickClock(i))
		if c.Shown() < prevShown || c.Shown() > c.Len() {
			t.Fatalf("tick %d: Shown = %d after %d", i, c.Shown(), prevShown)
		}
		allMax := true
		for j := 0; j < c.Len(); j++ {
			a := c.Alpha(j)
			if a < prev[j] || a > MaxAlpha {
				t.Fatalf("tick %d: Alpha(%d) = %d after %d", i, j, a, prev[j])
			}
			if j >= c.Shown() && a != 0 {
				t.Fatalf("tick %d: unrevealed char %d has alpha %d", i, j, a)
			}
			if a != MaxAlpha {
				allMax = false
			}
			prev[j] = a
		}
		want := c.Shown() == c.Len() && allMax
		if c.Done() != want {
			t.Fatalf("tick %d: Done = %v, want %v", i, c.Done(), want)
		}
		if wasDone && !c.Done() {
			t.Fatalf("tick %d: Done went back to false", i)
		}
		wasDone = c.Done()
		prevShown = c.Shown()
	}
	if !wasDone {
		t.Error("expected the caption to finish")
	}
}

func TestSplitGraphemes(t *testing.T) {
	got := SplitGraphemes("ab❤️😁")
	want := []string{"a", "b", "❤️", "😁"}
	if len(got) != len(want) {
		t.Fatalf("SplitGraphemes = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("char %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFadingCaptionRender(t *testing.T) {
	c := newTestCaption("abc", 20)
	dl := NewDrawList()

	c.Render(dl)
	if dl.Len() != 0 {
		t.Fatalf("unrevealed caption drew %d glyphs", dl.Len())
	}

	for i := uint64(1); i <= 21; i++ {
		c.Update(tickClock(i))
	}
	dl.Reset()
	c.Render(dl)
	cmds := dl.Commands()
	if len(cmds) != 2 {
		t.Fatalf("glyphs drawn = %d, want 2", len(cmds))
	}
	if cmds[0].Center.X != 100 || cmds[1].Center.X != 110 {
		t.Errorf("glyph x = %v, %v, want 100, 110", cmds[0].Center.X, cmds[1].Center.X)
	}
	if cmds[0].Alpha != 1 {
		t.Errorf("first glyph alpha = %v, want 1", cmds[0].Alpha)
	}
	if dy := cmds[0].Center.Y - 40; dy < -8 || dy > 8 {
		t.Errorf("wave offset = %v, want within ±8", dy)
	}
}

func TestFadingCaptionWithoutGlyphs(t *testing.T) {
	cfg := DefaultConfig()
	c := NewFadingCaption(&cfg, "hello", Vec2{}, nil)
	for i := uint64(1); i <= 200; i++ {
		c.Update(tickClock(i))
	}
	dl := NewDrawList()
	c.Render(dl)
	if dl.Len() != 0 {
		t.Errorf("drew %d commands without glyphs", dl.Len())
	}
	if !c.Done() {
		t.Error("timeline should still complete without glyphs")
	}
}
