package parallax

// Surface is the raster target the engine paints into. Coordinates passed to
// the draw calls are offset by the accumulated Translate calls until
// ResetTransform.
type Surface interface {
	Clear()
	DrawImage(asset Asset, x, y, w, h, alpha float64)
	DrawRect(x, y, w, h float64, c Color)
	Translate(dx, dy float64)
	ResetTransform()
}

// CommandType identifies the kind of recorded paint command.
type CommandType uint8

const (
	CommandClear     CommandType = iota // Clear
	CommandImage                        // DrawImage
	CommandRect                         // DrawRect
	CommandTranslate                    // Translate
	CommandReset                        // ResetTransform
)

// PaintCommand is a single recorded surface call. X/Y include the
// translation active when the command was issued.
type PaintCommand struct {
	Type   CommandType
	X, Y   float64
	Width  float64
	Height float64
	Alpha  float64
	Color  Color
	Asset  Asset
}

// RecordingSurface is a Surface that records paint commands instead of
// rasterizing them. Clear discards the previous frame's commands.
type RecordingSurface struct {
	Commands []PaintCommand
	tx, ty   float64
}

func (s *RecordingSurface) Clear() {
	s.Commands = append(s.Commands[:0], PaintCommand{Type: CommandClear})
}

func (s *RecordingSurface) DrawImage(asset Asset, x, y, w, h, alpha float64) {
	s.Commands = append(s.Commands, PaintCommand{
		Type: CommandImage, X: x + s.tx, Y: y + s.ty, Width: w, Height: h,
		Alpha: alpha, Asset: asset,
	})
}

func (s *RecordingSurface) DrawRect(x, y, w, h float64, c Color) {
	s.Commands = append(s.Commands, PaintCommand{
		Type: CommandRect, X: x + s.tx, Y: y + s.ty, Width: w, Height: h,
		Alpha: c.A, Color: c,
	})
}

func (s *RecordingSurface) Translate(dx, dy float64) {
	s.tx += dx
	s.ty += dy
	s.Commands = append(s.Commands, PaintCommand{Type: CommandTranslate, X: dx, Y: dy})
}

func (s *RecordingSurface) ResetTransform() {
	s.tx, s.ty = 0, 0
	s.Commands = append(s.Commands, PaintCommand{Type: CommandReset})
}

// Draws returns only the image and rect commands, in paint order.
func (s *RecordingSurface) Draws() []PaintCommand {
	var out []PaintCommand
	for _, c := range s.Commands {
		if c.Type == CommandImage || c.Type == CommandRect {
			out = append(out, c)
		}
	}
	return out
}
