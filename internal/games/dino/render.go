package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type glyph struct {
	r     rune
	color core.Color
}

var spriteGlyphs = map[string]glyph{
	SpriteDino:             {'█', core.ColorBrightGreen},
	SpriteDinoLeftLeg:      {'█', core.ColorBrightGreen},
	SpriteDinoRightLeg:     {'█', core.ColorBrightGreen},
	SpriteDinoDuckLeftLeg:  {'▆', core.ColorBrightGreen},
	SpriteDinoDuckRightLeg: {'▆', core.ColorBrightGreen},
	SpriteCactus:           {'▓', core.ColorGreen},
	SpriteBirdUp:           {'▀', core.ColorMagenta},
	SpriteBirdDown:         {'▄', core.ColorMagenta},
	SpriteCloud:            {'░', core.ColorDarkGray},
	SpriteReplayIcon:       {'↻', core.ColorWhite},
}

// projection maps world units to screen cells.
type projection struct {
	sx, sy float64
}

func (p projection) rect(b core.RectF) core.Rect {
	x0 := int(math.Round(b.X * p.sx))
	y0 := int(math.Round(b.Y * p.sy))
	x1 := max(int(math.Round(b.Right()*p.sx)), x0+1)
	y1 := max(int(math.Round(b.Bottom()*p.sy)), y0+1)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render replays the last recorded frame onto dst, scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := g.cfg.Viewport
	p := projection{
		sx: float64(dst.Width()) / vp.Width,
		sy: float64(dst.Height()) / vp.Height,
	}

	for _, cmd := range g.canvas.Commands() {
		switch cmd.Kind {
		case core.CommandSprite:
			g.drawSprite(dst, p, cmd)
		case core.CommandText:
			drawText(dst, p, cmd)
		}
	}

	if lvl := g.engine.Level(); lvl > 0 {
		dst.DrawTextColored(1, 0, fmt.Sprintf("LV %d", lvl), core.ColorGray)
	}

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.engine.Phase() == PhaseIdle:
		dst.DrawTextCentered(dst.Height()/3, "Press SPACE to run")
	case g.engine.Phase() == PhaseGameOver:
		dst.DrawTextCentered(dst.Height()-1, fmt.Sprintf(" Score: %d  |  SPACE to play again ", g.engine.Score()))
	}
}

func (g *Game) drawSprite(dst *core.Screen, p projection, cmd core.DrawCommand) {
	r := p.rect(cmd.Box)

	if cmd.Name == SpriteGround {
		drawGround(dst, p, cmd.Box, r)
		return
	}

	gl, ok := spriteGlyphs[cmd.Name]
	if !ok {
		gl = glyph{'?', core.ColorDefault}
	}
	dst.DrawRect(r, gl.r, gl.color)

	// Alternate the feet on the bottom row of a running runner
	switch cmd.Name {
	case SpriteDinoLeftLeg, SpriteDinoRightLeg, SpriteDinoDuckLeftLeg, SpriteDinoDuckRightLeg:
		left := cmd.Name == SpriteDinoLeftLeg || cmd.Name == SpriteDinoDuckLeftLeg
		row := r.Bottom() - 1
		for i := 0; i < r.W; i++ {
			if (i%2 == 0) != left {
				dst.Set(r.X+i, row, ' ')
			}
		}
	}
}

// drawGround paints a horizon line with specks that move with the texture.
func drawGround(dst *core.Screen, p projection, box core.RectF, r core.Rect) {
	for cx := max(r.X, 0); cx < min(r.Right(), dst.Width()); cx++ {
		local := (float64(cx)+0.5)/p.sx - box.X
		dst.SetColored(cx, r.Y, '─', core.ColorGray)
		if int(local/7)%5 == 0 {
			dst.SetColored(cx, r.Y+1, '·', core.ColorDarkGray)
		}
	}
}

func drawText(dst *core.Screen, p projection, cmd core.DrawCommand) {
	n := len([]rune(cmd.Text))
	x := int(math.Round(cmd.X * p.sx))
	y := int(math.Round(cmd.Y * p.sy))

	switch cmd.Style.Align {
	case core.AlignCenter:
		x -= n / 2
	case core.AlignRight:
		x -= n
	}
	if cmd.Style.Baseline == core.BaselineBottom {
		y--
	}
	y = core.Clamp(y, 0, dst.Height()-1)

	dst.DrawTextColored(x, y, cmd.Text, cmd.Style.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
