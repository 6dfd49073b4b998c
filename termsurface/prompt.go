package termsurface

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/phanxgames/keepsake"
	"github.com/phanxgames/keepsake/diary"
)

// Prompt box layout, in cells.
const (
	promptWidth = 60
	heartCols   = 16
	heartRows   = 8
	heartPixels = 120
	heartFit    = 0.65 // keeps the pulsing heart inside heartPixels
)

var (
	promptStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(26, 10, 16)).Foreground(tcell.ColorWhite)
	inputStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(245, 245, 245)).Foreground(tcell.ColorBlack)
	errorStyle  = promptStyle.Foreground(tcell.NewRGBColor(255, 176, 176))
	hintStyle   = promptStyle.Foreground(tcell.NewRGBColor(255, 182, 193))
)

// Prompt is the terminal diary. It implements keepsake.Overlay over a
// diary.Host and takes key presses while a session is open.
type Prompt struct {
	// Step is how far the session advances per poll.
	Step time.Duration

	host  *diary.Host
	entry []string // graphemes typed so far
	heart *Canvas
	pts   []keepsake.Vec2
}

// NewPrompt creates a prompt over host that advances by one tick at tps per
// poll.
func NewPrompt(host *diary.Host, tps int) *Prompt {
	p := &Prompt{
		Step:  time.Second / time.Duration(max(tps, 1)),
		host:  host,
		heart: NewCanvas(heartPixels, heartPixels, heartCols, heartRows),
	}
	host.OnSpawn = func(*diary.Session) { p.entry = p.entry[:0] }
	return p
}

// Spawn opens a new diary session.
func (p *Prompt) Spawn() (keepsake.OverlayHandle, error) {
	return p.host.Spawn()
}

// Poll advances the open session and reports whether it is still open.
func (p *Prompt) Poll(h keepsake.OverlayHandle) (keepsake.OverlayStatus, error) {
	if s := p.host.Current(); s != nil {
		s.Update(p.Step)
	}
	return p.host.Poll(h)
}

// Entry returns the text typed so far.
func (p *Prompt) Entry() string {
	return strings.Join(p.entry, "")
}

// HandleKey applies a key press to the open session. It returns false when
// no session is open so the key reaches the scene.
//
// Writing: typing edits the entry, Enter saves, Escape closes. Saved: Enter
// moves on to the thank-you note. Thanks: Enter or Escape closes.
func (p *Prompt) HandleKey(ev *tcell.EventKey) bool {
	s := p.host.Current()
	if s == nil {
		return false
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		s.Close()
		return true
	case tcell.KeyEnter:
		switch s.View() {
		case diary.ViewWriting:
			if err := s.Save(p.Entry()); err != nil {
				keepsake.Logf("termsurface: %v", err)
			}
		case diary.ViewSaved:
			s.Acknowledge()
		case diary.ViewThanks:
			s.Close()
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.View() == diary.ViewWriting && len(p.entry) > 0 {
			p.entry = p.entry[:len(p.entry)-1]
		}
		return true
	case tcell.KeyRune:
		if s.View() == diary.ViewWriting {
			p.appendRune(ev.Rune())
		}
		return true
	}
	return true
}

// appendRune adds r to the entry, joining it to the last grapheme when it
// extends that cluster.
func (p *Prompt) appendRune(r rune) {
	if n := len(p.entry); n > 0 {
		joined := p.entry[n-1] + string(r)
		if uniseg.GraphemeClusterCount(joined) == 1 {
			p.entry[n-1] = joined
			return
		}
	}
	p.entry = append(p.entry, string(r))
}

// Draw paints the open session centered on screen.
func (p *Prompt) Draw(screen tcell.Screen) {
	s := p.host.Current()
	if s == nil {
		return
	}
	sw, sh := screen.Size()
	width := min(promptWidth, sw-2)
	inner := width - 4

	var lines []promptLine
	add := func(style tcell.Style, text string) {
		for _, l := range diary.Wrap(text, inner) {
			lines = append(lines, promptLine{text: l, style: style})
		}
	}
	switch s.View() {
	case diary.ViewWriting:
		add(promptStyle.Bold(true), diary.Title)
		add(promptStyle, diary.Couplet)
		add(promptStyle, diary.ThoughtsText())
		lines = append(lines, promptLine{heart: true})
		lines = append(lines, promptLine{text: p.Entry() + "_", style: inputStyle, input: true})
		if err := s.Err(); err != nil {
			add(errorStyle, "Could not save: "+err.Error())
		}
		add(hintStyle, "Enter save · Esc close")
	case diary.ViewSaved:
		add(promptStyle.Bold(true), diary.SavedMessage)
		add(hintStyle, "Enter OK")
	case diary.ViewThanks:
		add(promptStyle.Bold(true), diary.ThanksMessage)
		add(hintStyle, "Enter close")
	}

	height := 2
	for _, l := range lines {
		if l.heart {
			height += heartRows
		} else {
			height++
		}
	}
	x0, y0 := max((sw-width)/2, 0), max((sh-height)/2, 0)
	fillBox(screen, x0, y0, width, height, promptStyle)

	y := y0 + 1
	for _, l := range lines {
		switch {
		case l.heart:
			p.drawHeart(s.Heart)
			p.heart.PresentAt(screen, x0+(width-heartCols)/2, y)
			y += heartRows
			continue
		case l.input:
			fillBox(screen, x0+2, y, inner, 1, inputStyle)
			putString(screen, x0+2, y, inner, l.text, l.style)
		default:
			putString(screen, x0+(width-uniseg.StringWidth(l.text))/2, y, inner, l.text, l.style)
		}
		y++
	}
}

func (p *Prompt) drawHeart(h *diary.HeartAnimation) {
	p.heart.Clear(keepsake.RGB(26, 10, 16))
	p.pts = h.Outline(p.pts[:0], keepsake.Vec2{X: heartPixels / 2, Y: heartPixels / 2}, heartFit)
	p.heart.FillPolygon(p.pts, keepsake.ColorRed, keepsake.BlendNormal)
}

type promptLine struct {
	text  string
	style tcell.Style
	heart bool
	input bool
}

func fillBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// putString writes s from (x, y), stopping before it exceeds limit columns.
func putString(screen tcell.Screen, x, y, limit int, s string, style tcell.Style) {
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := max(gr.Width(), 1)
		if used+w > limit {
			return
		}
		runes := gr.Runes()
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		used += w
	}
}
