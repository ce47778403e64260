package core

// Align controls horizontal text anchoring relative to the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline controls vertical text anchoring relative to the y coordinate.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineBottom
)

// TextStyle carries the drawing options for a text command.
type TextStyle struct {
	Align    Align
	Baseline Baseline
	Color    Color
}

// Canvas is the drawing surface the engine paints to once per frame.
// Coordinates are world units; scaling to a device is the canvas' job.
type Canvas interface {
	// Clear paints the background over the whole surface.
	Clear()
	DrawSprite(name string, box RectF)
	DrawText(text string, x, y float64, style TextStyle)
}

// CommandKind distinguishes the entries of a display list.
type CommandKind int

const (
	CommandSprite CommandKind = iota
	CommandText
)

// DrawCommand is one recorded drawing call.
type DrawCommand struct {
	Kind  CommandKind
	Name  string // Sprite name (CommandSprite)
	Box   RectF  // Sprite placement (CommandSprite)
	Text  string // CommandText
	X, Y  float64
	Style TextStyle
}

// DisplayList is a Canvas that records commands so a frame can be replayed
// onto any device, or inspected in tests.
type DisplayList struct {
	commands []DrawCommand
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{commands: make([]DrawCommand, 0, 32)}
}

// DrawSprite records a sprite command.
func (d *DisplayList) DrawSprite(name string, box RectF) {
	d.commands = append(d.commands, DrawCommand{Kind: CommandSprite, Name: name, Box: box, X: box.X, Y: box.Y})
}

// DrawText records a text command.
func (d *DisplayList) DrawText(text string, x, y float64, style TextStyle) {
	d.commands = append(d.commands, DrawCommand{Kind: CommandText, Text: text, X: x, Y: y, Style: style})
}

// Clear drops all recorded commands, keeping the backing storage.
func (d *DisplayList) Clear() {
	d.commands = d.commands[:0]
}

// Commands returns the recorded commands in paint order.
func (d *DisplayList) Commands() []DrawCommand {
	return d.commands
}

// Sprites returns the sprite commands with the given name.
func (d *DisplayList) Sprites(name string) []DrawCommand {
	var out []DrawCommand
	for _, c := range d.commands {
		if c.Kind == CommandSprite && c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the text commands in paint order.
func (d *DisplayList) Texts() []DrawCommand {
	var out []DrawCommand
	for _, c := range d.commands {
		if c.Kind == CommandText {
			out = append(out, c)
		}
	}
	return out
}

// NopCanvas discards everything drawn to it.
type NopCanvas struct{}

// Clear does nothing.
func (NopCanvas) Clear() {}

// DrawSprite does nothing.
func (NopCanvas) DrawSprite(string, RectF) {}

// DrawText does nothing.
func (NopCanvas) DrawText(string, float64, float64, TextStyle) {}
