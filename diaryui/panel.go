// Package diaryui draws the diary overlay inside the ebiten window with
// ebitenui. A Panel wraps a diary.Host: the scene's OverlayGuard spawns and
// polls it like any other overlay, and each poll pumps the UI.
package diaryui

import (
	"image/color"
	"strings"
	"sync"
	"time"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"

	"github.com/phanxgames/keepsake"
	"github.com/phanxgames/keepsake/diary"
	"github.com/phanxgames/keepsake/ebitensurface"
)

// Panel layout.
const (
	panelWidth  = 520
	panelHeight = 560
	heartSize   = 120
	heartFit    = 0.65
	wrapColumns = 56
)

var (
	panelColor  = color.NRGBA{R: 0x1a, G: 0x0a, B: 0x10, A: 235}
	buttonColor = color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	pressColor  = color.NRGBA{R: 0xb7, G: 0x1c, B: 0x1c, A: 0xff}
	inputColor  = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	errorColor  = color.NRGBA{R: 0xff, G: 0xb0, B: 0xb0, A: 0xff}
)

var (
	clipboardOnce sync.Once
	clipboardOK   bool
)

func clipboardReady() bool {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			keepsake.Logf("diaryui: clipboard unavailable: %v", err)
			return
		}
		clipboardOK = true
	})
	return clipboardOK
}

// Panel is the in-window diary. It implements keepsake.Overlay.
type Panel struct {
	// Step is how far the session advances per poll. Defaults to one tick at
	// the current TPS.
	Step time.Duration

	host    *diary.Host
	faces   *ebitensurface.Faces
	surface *ebitensurface.Surface
	width   int
	height  int

	ui      *ebitenui.UI
	session *diary.Session
	views   [3]*widget.Container
	input   *widget.TextInput
	status  *widget.Text
	heart   *ebiten.Image
	outline []keepsake.Vec2
}

// New creates a panel over host, centered on a width×height canvas.
func New(host *diary.Host, faces *ebitensurface.Faces, width, height int) *Panel {
	p := &Panel{
		host:    host,
		faces:   faces,
		surface: ebitensurface.NewSurface(faces),
		width:   width,
		height:  height,
	}
	host.OnSpawn = p.build
	return p
}

// Spawn opens a new diary session.
func (p *Panel) Spawn() (keepsake.OverlayHandle, error) {
	return p.host.Spawn()
}

// Poll runs one UI update for the open session and reports whether it is
// still open.
func (p *Panel) Poll(h keepsake.OverlayHandle) (keepsake.OverlayStatus, error) {
	if s := p.host.Current(); s != nil && s == p.session {
		p.ui.Update()
		s.Update(p.step())
		p.sync()
	}
	return p.host.Poll(h)
}

// Draw draws the open session over the scene.
func (p *Panel) Draw(screen *ebiten.Image) {
	s := p.host.Current()
	if s == nil || s != p.session {
		return
	}
	p.drawHeart(s.Heart)
	p.ui.Draw(screen)
}

func (p *Panel) step() time.Duration {
	if p.Step > 0 {
		return p.Step
	}
	return time.Second / time.Duration(ebiten.TPS())
}

// sync shows the container for the session's current view.
func (p *Panel) sync() {
	view := p.session.View()
	for i, c := range p.views {
		if diary.View(i) == view {
			c.GetWidget().Visibility = widget.Visibility_Show
		} else {
			c.GetWidget().Visibility = widget.Visibility_Hide
		}
	}
	if err := p.session.Err(); err != nil {
		p.status.Label = "Could not save: " + err.Error()
	} else {
		p.status.Label = ""
	}
}

func (p *Panel) drawHeart(h *diary.HeartAnimation) {
	p.heart.Clear()
	c := keepsake.Vec2{X: heartSize / 2, Y: heartSize / 2}
	p.outline = h.Outline(p.outline[:0], c, heartFit)
	p.surface.SetTarget(p.heart)
	p.surface.FillPolygon(p.outline, keepsake.ColorRed, keepsake.BlendNormal)
}

// build creates the widgets for a freshly spawned session.
func (p *Panel) build(s *diary.Session) {
	p.session = s
	if p.heart == nil {
		p.heart = ebiten.NewImage(heartSize, heartSize)
	}

	var title text.Face = p.faces.Bold(24)
	var body text.Face = p.faces.Regular(15)
	btnImage := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Pressed: imageui.NewNineSliceColor(pressColor),
	}
	btnText := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	label := func(str string, face *text.Face, c color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(str, face, c),
			widget.TextOpts.WidgetOpts(center),
		)
	}
	button := func(str string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(btnImage),
			widget.ButtonOpts.Text(str, &body, btnText),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { onClick() }),
		)
	}
	column := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(10),
			)),
			widget.ContainerOpts.WidgetOpts(center),
		)
	}
	row := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(12),
			)),
			widget.ContainerOpts.WidgetOpts(center),
		)
	}

	// Writing view.
	writing := column()
	writing.AddChild(label(diary.Title, &title, textColor))
	writing.AddChild(label(diary.Couplet, &body, textColor))
	writing.AddChild(label(strings.Join(diary.Wrap(diary.ThoughtsText(), wrapColumns), "\n"), &body, textColor))
	writing.AddChild(widget.NewGraphic(
		widget.GraphicOpts.Image(p.heart),
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.MinSize(heartSize, heartSize), center),
	))

	p.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(panelWidth-80, 28), center),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     imageui.NewNineSliceColor(inputColor),
			Disabled: imageui.NewNineSliceColor(color.NRGBA{R: 200, G: 200, B: 200, A: 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{Idle: color.Black, Disabled: color.Gray{Y: 120}, Caret: color.Black}),
		widget.TextInputOpts.Face(&body),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			p.save(args.InputText)
		}),
	)
	writing.AddChild(p.input)

	p.status = label("", &body, errorColor)
	writing.AddChild(p.status)

	buttons := row()
	buttons.AddChild(button("Save", func() { p.save(p.input.GetText()) }))
	copyBtn := button("Copy", func() { p.copy(p.input.GetText()) })
	copyBtn.GetWidget().Disabled = !clipboardReady()
	buttons.AddChild(copyBtn)
	buttons.AddChild(button("Close", s.Close))
	writing.AddChild(buttons)

	// Saved view.
	saved := column()
	saved.AddChild(label(diary.SavedMessage, &title, textColor))
	saved.AddChild(button("OK", s.Acknowledge))

	// Thanks view.
	thanks := column()
	thanks.AddChild(label(diary.ThanksMessage, &title, textColor))
	thanks.AddChild(button("Close", s.Close))

	p.views = [3]*widget.Container{writing, saved, thanks}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(min(panelWidth, p.width), min(panelHeight, p.height)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, v := range p.views {
		panel.AddChild(v)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	p.ui = &ebitenui.UI{Container: root}
	p.sync()
}

func (p *Panel) save(entry string) {
	if err := p.session.Save(entry); err != nil {
		keepsake.Logf("diaryui: %v", err)
	}
	p.sync()
}

func (p *Panel) copy(entry string) {
	if !clipboardReady() {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(entry))
}
