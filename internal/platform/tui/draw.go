package tui

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tide-runner/internal/config"
	"github.com/vovakirdan/tide-runner/internal/core"
	"github.com/vovakirdan/tide-runner/internal/runner"
)

// Glyphs
const (
	PlayerChar   = '█'
	SlideChar    = '▄'
	SandChar     = '░'
	ParticleChar = '·'
)

// surf is the repeating pattern of the water line; it scrolls with the
// parallax offset.
var surf = []rune("~≈~~-~≈≈~-")

type glyph struct {
	Rune  rune
	Color core.Color
}

var obstacleGlyphs = map[runner.ObstacleType]glyph{
	runner.ObstacleRock:      {'▲', core.ColorMuted},
	runner.ObstacleWave:      {'≈', core.ColorBrightBlue},
	runner.ObstacleSeagull:   {'v', core.ColorBrightWhite},
	runner.ObstacleJellyfish: {'§', core.ColorBrightMagenta},
}

const (
	hudRows   = 1
	minViewW  = 24
	minViewH  = 8
	viewTitle = "TIDE RUNNER"
)

// View draws engine snapshots into a Screen.
// World coordinates are scaled to fit the screen below a one-row HUD.
type View struct {
	field  config.FieldConfig
	sx, sy float64 // cells per world unit, set on each Draw
}

// NewView creates a view for the given play field.
func NewView(field config.FieldConfig) *View {
	return &View{field: field}
}

// Draw renders a snapshot. paused adds the pause overlay.
func (v *View) Draw(dst *core.Screen, snap runner.Snapshot, paused bool) {
	dst.Clear()

	if dst.Width() < minViewW || dst.Height() < minViewH {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small")
		return
	}

	v.sx = float64(dst.Width()) / v.field.Width
	v.sy = float64(dst.Height()-hudRows) / v.field.Height

	v.drawGround(dst, snap.ScrollOffset)

	for _, o := range snap.Obstacles {
		g, ok := obstacleGlyphs[o.Type]
		if !ok {
			g = glyph{'?', core.ColorRed}
		}
		dst.DrawRect(v.cellRect(o.Rect()), g.Rune, g.Color)
	}

	v.drawPlayer(dst, snap)

	for _, p := range snap.Particles {
		x, y := v.cellX(p.X), v.cellY(p.Y)
		if y >= hudRows {
			dst.SetColored(x, y, ParticleChar, p.Color)
		}
	}

	v.drawHUD(dst, snap)

	switch {
	case snap.State == runner.StateMenu:
		v.drawMenu(dst, snap)
	case snap.State == runner.StateGameOver:
		v.drawGameOver(dst, snap)
	case paused:
		drawMessageBox(dst, "PAUSED", core.ColorBrightYellow, "Press P to resume")
	}
}

func (v *View) cellX(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v *View) cellY(y float64) int {
	return hudRows + int(math.Floor(y*v.sy))
}

// cellRect maps a world rectangle to screen cells. Anything with a
// positive world size covers at least one cell.
func (v *View) cellRect(r core.RectF) core.Rect {
	x0, y0 := v.cellX(r.X), v.cellY(r.Y)
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := hudRows + int(math.Ceil(r.Bottom()*v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// drawGround draws the water line at ground level and sand below it.
func (v *View) drawGround(dst *core.Screen, offset float64) {
	row := v.cellY(v.field.GroundY)
	shift := int(offset * v.sx)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, row, surf[(x+shift)%len(surf)], core.ColorSurf)
	}
	for y := row + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SandChar, core.ColorSand)
	}
}

func (v *View) drawPlayer(dst *core.Screen, snap runner.Snapshot) {
	char := PlayerChar
	if snap.Player.Stance == runner.StanceSliding {
		char = SlideChar
	}
	color := core.ColorSurfer
	if snap.State == runner.StateGameOver {
		color = core.ColorCrashed
	}
	dst.DrawRect(v.cellRect(snap.Hitbox), char, color)
}

func (v *View) drawHUD(dst *core.Screen, snap runner.Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	left := fmt.Sprintf(" Score: %d  Hi: %d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(1, 0, left, core.ColorHUD)

	right := fmt.Sprintf(" Spd: %.1f ", snap.ScrollSpeed)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-1, 0, right, core.ColorMuted)
}

func (v *View) drawMenu(dst *core.Screen, snap runner.Snapshot) {
	lines := []string{"Enter/Space to start  |  Q to quit"}
	if snap.HighScore > 0 {
		lines = append([]string{fmt.Sprintf("High score: %d", snap.HighScore)}, lines...)
	}
	lines = append(lines, "Jump: Space/W/Up   Slide: S/Down")
	drawMessageBox(dst, viewTitle, core.ColorSurfer, lines...)
}

func (v *View) drawGameOver(dst *core.Screen, snap runner.Snapshot) {
	lines := []string{fmt.Sprintf("Score: %d  |  Space to retry  |  M for menu", snap.Score)}
	if snap.NewHighScore {
		lines = append([]string{"NEW HIGH SCORE!"}, lines...)
	}
	drawMessageBox(dst, "GAME OVER", core.ColorCrashed, lines...)
}

// drawMessageBox draws a box with a title and lines in the center of the screen.
func drawMessageBox(dst *core.Screen, title string, titleColor core.Color, lines ...string) {
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = core.Max(boxW, utf8.RuneCountInString(l))
	}
	boxW = core.Min(boxW+4, dst.Width())
	boxH := core.Min(len(lines)+4, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	titleX := box.X + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColored(titleX, box.Y+1, title, titleColor)

	for i, l := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, box.Y+3+i, l)
	}
}
