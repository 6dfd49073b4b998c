package ebitensurface

import (
	"testing"

	"github.com/phanxgames/keepsake"
)

func TestFacesGlyphs(t *testing.T) {
	faces, err := LoadFaces()
	if err != nil {
		t.Fatalf("LoadFaces: %v", err)
	}
	glyphs := faces.Glyphs("Hi❤️", keepsake.TextLarge, keepsake.ColorWhite)
	if len(glyphs) != 3 {
		t.Fatalf("glyphs = %d, want 3", len(glyphs))
	}
	for i, g := range glyphs {
		// Go Bold has no emoji; only the Latin advances are checked.
		if i < 2 && g.Width <= 0 {
			t.Errorf("glyph %d (%q) width = %v, want > 0", i, g.Text, g.Width)
		}
		if g.Size != keepsake.TextLarge || g.Color != keepsake.ColorWhite {
			t.Errorf("glyph %d style = %v %v", i, g.Size, g.Color)
		}
	}
	if glyphs[2].Text != "❤️" {
		t.Errorf("last glyph = %q, want the heart cluster", glyphs[2].Text)
	}
}

func TestFacesSizes(t *testing.T) {
	faces, err := LoadFaces()
	if err != nil {
		t.Fatalf("LoadFaces: %v", err)
	}
	if got := faces.Face(keepsake.TextSmall).Size; got != 18 {
		t.Errorf("small face size = %v, want 18", got)
	}
	if got := faces.Face(keepsake.TextMedium).Size; got != 32 {
		t.Errorf("medium face size = %v, want 32", got)
	}
	if LineHeight(faces.Regular(14)) <= 0 {
		t.Error("expected a positive line height")
	}
}
