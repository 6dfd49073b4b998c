package keepsake

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandClear          CommandType = iota // Surface.Clear
	CommandFillPolygon                       // Surface.FillPolygon
	CommandStrokePolyline                    // Surface.StrokePolyline
	CommandFillEllipse                       // Surface.FillEllipse
	CommandStrokeEllipse                     // Surface.StrokeEllipse
	CommandFillRect                          // Surface.FillRect
	CommandFillCircle                        // Surface.FillCircle
	CommandGlyph                             // Surface.DrawGlyph
	CommandText                              // Surface.DrawText
)

// RenderCommand is a single recorded draw instruction. Points is a window into
// the owning DrawList's point arena and is only valid until the next Reset.
type RenderCommand struct {
	Type      CommandType
	Points    []Vec2
	Bounds    Rect    // ellipse and rect bounds
	Center    Vec2    // circle center, glyph and text anchor
	Radius    float64 // circle radius, rect corner radius
	Width     float64 // stroke width
	Closed    bool
	Color     Color
	BlendMode BlendMode
	Alpha     float64 // glyph alpha
	Glyph     Glyph
	Text      string
	Style     TextStyle
}

const defaultCommandCap = 64

// DrawList is a Surface that records commands instead of drawing them. The
// loop renders a tick into a DrawList during Update and the backend replays it
// onto the real target when it presents.
type DrawList struct {
	commands []RenderCommand
	arena    []Vec2
}

// NewDrawList creates an empty draw list.
func NewDrawList() *DrawList {
	return &DrawList{
		commands: make([]RenderCommand, 0, defaultCommandCap),
		arena:    make([]Vec2, 0, 8*FullSweep),
	}
}

// Reset discards all recorded commands, keeping the buffers.
func (d *DrawList) Reset() {
	d.commands = d.commands[:0]
	d.arena = d.arena[:0]
}

// Commands returns the recorded commands. The returned slice MUST NOT be mutated.
func (d *DrawList) Commands() []RenderCommand {
	return d.commands
}

// Len returns the number of recorded commands.
func (d *DrawList) Len() int {
	return len(d.commands)
}

// Count returns how many recorded commands have the given type.
func (d *DrawList) Count(t CommandType) int {
	n := 0
	for i := range d.commands {
		if d.commands[i].Type == t {
			n++
		}
	}
	return n
}

// Replay submits every recorded command to dst in recording order.
func (d *DrawList) Replay(dst Surface) {
	for i := range d.commands {
		cmd := &d.commands[i]
		switch cmd.Type {
		case CommandClear:
			dst.Clear(cmd.Color)
		case CommandFillPolygon:
			dst.FillPolygon(cmd.Points, cmd.Color, cmd.BlendMode)
		case CommandStrokePolyline:
			dst.StrokePolyline(cmd.Points, cmd.Width, cmd.Closed, cmd.Color)
		case CommandFillEllipse:
			dst.FillEllipse(cmd.Bounds, cmd.Color)
		case CommandStrokeEllipse:
			dst.StrokeEllipse(cmd.Bounds, cmd.Width, cmd.Color)
		case CommandFillRect:
			dst.FillRect(cmd.Bounds, cmd.Radius, cmd.Color)
		case CommandFillCircle:
			dst.FillCircle(cmd.Center, cmd.Radius, cmd.Color, cmd.BlendMode)
		case CommandGlyph:
			dst.DrawGlyph(cmd.Glyph, cmd.Center, cmd.Alpha)
		case CommandText:
			dst.DrawText(cmd.Text, cmd.Center, cmd.Style)
		}
	}
}

// keep copies points into the arena so callers may reuse their buffers.
func (d *DrawList) keep(points []Vec2) []Vec2 {
	start := len(d.arena)
	if cap(d.arena)-start < len(points) {
		// Growing reallocates the arena; earlier commands keep their old
		// backing array, which stays valid until Reset.
		grown := make([]Vec2, start, 2*cap(d.arena)+len(points))
		copy(grown, d.arena)
		d.arena = grown
	}
	d.arena = append(d.arena, points...)
	return d.arena[start:len(d.arena):len(d.arena)]
}

func (d *DrawList) Clear(c Color) {
	d.commands = append(d.commands, RenderCommand{Type: CommandClear, Color: c})
}

func (d *DrawList) FillPolygon(points []Vec2, c Color, blend BlendMode) {
	d.commands = append(d.commands, RenderCommand{
		Type: CommandFillPolygon, Points: d.keep(points), Color: c, BlendMode: blend,
	})
}

func (d *DrawList) StrokePolyline(points []Vec2, width float64, closed bool, c Color) {
	d.commands = append(d.commands, RenderCommand{
		Type: CommandStrokePolyline, Points: d.keep(points), Width: width, Closed: closed, Color: c,
	})
}

func (d *DrawList) FillEllipse(bounds Rect, c Color) {
	d.commands = append(d.commands, RenderCommand{Type: CommandFillEllipse, Bounds: bounds, Color: c})
}

func (d *DrawList) StrokeEllipse(bounds Rect, width float64, c Color) {
	d.commands = append(d.commands, RenderCommand{Type: CommandStrokeEllipse, Bounds: bounds, Width: width, Color: c})
}

func (d *DrawList) FillRect(r Rect, radius float64, c Color) {
	d.commands = append(d.commands, RenderCommand{Type: CommandFillRect, Bounds: r, Radius: radius, Color: c})
}

func (d *DrawList) FillCircle(center Vec2, radius float64, c Color, blend BlendMode) {
	d.commands = append(d.commands, RenderCommand{
		Type: CommandFillCircle, Center: center, Radius: radius, Color: c, BlendMode: blend,
	})
}

func (d *DrawList) DrawGlyph(g Glyph, at Vec2, alpha float64) {
	d.commands = append(d.commands, RenderCommand{Type: CommandGlyph, Glyph: g, Center: at, Alpha: alpha})
}

func (d *DrawList) DrawText(s string, at Vec2, style TextStyle) {
	d.commands = append(d.commands, RenderCommand{Type: CommandText, Text: s, Center: at, Style: style})
}
