package termsurface

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/keepsake"
	"github.com/phanxgames/keepsake/diary"
)

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func newTestPrompt(t *testing.T) (*Prompt, *diary.FileStore) {
	t.Helper()
	store := diary.NewFileStore(filepath.Join(t.TempDir(), "entry.txt"))
	return NewPrompt(diary.NewHost(store), 60), store
}

// rowText concatenates the runes of one screen row.
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestPromptIgnoresKeysWhenClosed(t *testing.T) {
	p, _ := newTestPrompt(t)
	if p.HandleKey(runeKey('q')) {
		t.Error("key consumed with no session open")
	}
}

func TestPromptWriteSaveThanks(t *testing.T) {
	p, store := newTestPrompt(t)
	h, err := p.Spawn()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "hiq" {
		p.HandleKey(runeKey(r))
	}
	p.HandleKey(key(tcell.KeyBackspace2))
	if got := p.Entry(); got != "hi" {
		t.Fatalf("Entry = %q, want %q", got, "hi")
	}

	p.HandleKey(key(tcell.KeyEnter))
	if got, _ := store.Load(); got != "hi" {
		t.Errorf("saved %q, want %q", got, "hi")
	}
	if v := p.host.Current().View(); v != diary.ViewSaved {
		t.Fatalf("view = %v, want saved", v)
	}

	p.HandleKey(key(tcell.KeyEnter))
	if v := p.host.Current().View(); v != diary.ViewThanks {
		t.Fatalf("view = %v, want thanks", v)
	}
	p.HandleKey(key(tcell.KeyEnter))
	if st, _ := p.Poll(h); st != keepsake.OverlayClosed {
		t.Errorf("status = %v, want closed", st)
	}
}

func TestPromptSavedTimesOut(t *testing.T) {
	p, _ := newTestPrompt(t)
	h, _ := p.Spawn()
	p.HandleKey(key(tcell.KeyEnter))
	for i := 0; i < 40; i++ {
		p.Poll(h)
	}
	if v := p.host.Current().View(); v != diary.ViewThanks {
		t.Errorf("view after 40 polls = %v, want thanks", v)
	}
}

func TestPromptEscapeCloses(t *testing.T) {
	p, _ := newTestPrompt(t)
	h, _ := p.Spawn()
	if !p.HandleKey(key(tcell.KeyEscape)) {
		t.Fatal("Escape not consumed")
	}
	if st, _ := p.Poll(h); st != keepsake.OverlayClosed {
		t.Errorf("status = %v, want closed", st)
	}
}

func TestPromptCombiningMarks(t *testing.T) {
	p, _ := newTestPrompt(t)
	p.Spawn()
	p.HandleKey(runeKey('e'))
	p.HandleKey(runeKey('\u0301'))
	if len(p.entry) != 1 {
		t.Fatalf("graphemes = %d, want 1", len(p.entry))
	}
	p.HandleKey(key(tcell.KeyBackspace2))
	if p.Entry() != "" {
		t.Errorf("Entry = %q, want empty", p.Entry())
	}
}

func TestPromptRespawnClearsEntry(t *testing.T) {
	p, _ := newTestPrompt(t)
	p.Spawn()
	p.HandleKey(runeKey('x'))
	p.Spawn()
	if p.Entry() != "" {
		t.Errorf("Entry = %q after respawn", p.Entry())
	}
}

func TestPromptDraw(t *testing.T) {
	p, _ := newTestPrompt(t)
	s := newSimScreen(t, 80, 60)
	p.Draw(s)
	if strings.Contains(rowText(s, 0)+rowText(s, 30), "Diary") {
		t.Fatal("drew without a session")
	}

	p.Spawn()
	p.Draw(s)
	found := false
	for y := 0; y < 60 && !found; y++ {
		found = strings.Contains(rowText(s, y), diary.Title)
	}
	if !found {
		t.Error("title not drawn")
	}
}
