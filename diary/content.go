// Package diary is the overlay opened by clicking the heart or the envelope:
// a short diary page with a couplet, a few thoughts, an animated heart and a
// free-text entry that is saved to a single file.
//
// The package holds the overlay's state and storage only. The ebiten panel
// lives in diaryui and the terminal prompt in termsurface; both drive a
// Session hosted by a Host, which is what the scene's OverlayGuard talks to.
package diary

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Title is the overlay's window title.
const Title = "Diary Entry"

// Couplet is shown at the top of the page.
const Couplet = "❤️❤️❤️\nEvery time I smile, believe me, you are the reason behind it...\n❤️❤️❤️"

// ThoughtsHeading introduces the list of thoughts.
const ThoughtsHeading = "❤️ Beautiful Thoughts:"

// Thoughts are listed below the couplet.
var Thoughts = []string{
	"Love is not about how many days, months, or years you have been together. Love is about how much you love each other every single day.",
	"You are the poem I never knew how to write, and this life is the story I have always wanted to tell.",
	"In you, I have found the love of my life and my closest, truest friend.",
	"Every moment spent with you is like a beautiful dream come true.",
	"I look at you and see the rest of my life in front of my eyes.",
}

// Messages shown after saving.
const (
	SavedMessage  = "Diary saved!"
	ThanksMessage = "Thank youu!\nYou are special."
)

// ThoughtsText returns the heading followed by one bulleted line per thought.
func ThoughtsText() string {
	var b strings.Builder
	b.WriteString(ThoughtsHeading)
	for _, t := range Thoughts {
		b.WriteString("\n• ")
		b.WriteString(t)
	}
	return b.String()
}

// Wrap breaks s into lines no wider than cols terminal columns, splitting on
// spaces. Existing newlines are kept. A word wider than cols gets its own
// line. Widths are measured with uniseg, so emoji count as two columns.
func Wrap(s string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		width := uniseg.StringWidth(line)
		for _, w := range words[1:] {
			ww := uniseg.StringWidth(w)
			if width+1+ww > cols {
				lines = append(lines, line)
				line, width = w, ww
				continue
			}
			line += " " + w
			width += 1 + ww
		}
		lines = append(lines, line)
	}
	return lines
}
