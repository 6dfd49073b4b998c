package ebitensurface

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Draw. The PNG is written to ScreenshotDir with a timestamped filename.
// Wire it to keepsake.Loop.OnScreenshot for scripted runs.
func (g *Game) Screenshot(label string) {
	g.shots = append(g.shots, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Game.Draw.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	if err := os.MkdirAll(g.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[keepsake] screenshot: mkdir %s: %v\n", g.ScreenshotDir, err)
		return
	}

	img := readNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range g.shots {
		path := filepath.Join(g.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[keepsake] screenshot: %v\n", err)
		}
	}
}

// readNRGBA copies screen into a straight-alpha image.
func readNRGBA(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	unpremultiply(img.Pix, pixels)
	return img
}

// unpremultiply converts premultiplied RGBA pixels into straight alpha.
func unpremultiply(dst, src []byte) {
	for i := 0; i+3 < len(src); i += 4 {
		r, g, b, a := src[i], src[i+1], src[i+2], src[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
