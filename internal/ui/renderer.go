package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiquest/internal/assets"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/world"
)

// View is what the renderer needs from the simulation.
type View interface {
	Grid() *world.Grid
	Sheet() *assets.Sheet
	Camera() entity.Vec3
	MapVisible() bool
	Drawables() []*entity.Entity
}

// Renderer handles drawing the game to the screen.
// One terminal cell shows one tile; the camera sits in the middle of the
// screen above the status line.
type Renderer struct {
	screen *Screen
	fill   map[[2]int]tcell.Color // Background fills drawn this frame
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, fill: make(map[[2]int]tcell.Color)}
}

// Render draws the map, the visible entities and a status line.
func (r *Renderer) Render(v View, status string) {
	r.screen.Clear()
	clear(r.fill)

	width, height := r.screen.Size()
	grid, sheet, cam := v.Grid(), v.Sheet(), v.Camera()
	originX, originY := width/2, (height-1)/2

	toCell := func(x, y float64) (int, int) {
		return originX + int(math.Round((x-cam.X)/grid.TileSize)),
			originY - int(math.Round((y-cam.Y)/grid.TileSize))
	}

	if v.MapVisible() {
		for _, t := range grid.Tiles() {
			sp := sheet.TileSprite(t.Rune)
			cx, cy := toCell(grid.WorldPosition(t.Col, t.Row))
			r.draw(cx, cy, sheet.Glyph(sp.Index), sp)
		}
	}

	for _, e := range v.Drawables() {
		pos := e.WorldTransform()
		cx, cy := toCell(pos.X, pos.Y)
		r.draw(cx, cy, sheet.Glyph(e.Sprite.Index), *e.Sprite)
	}

	r.RenderMessage(status, height-1)
	r.screen.Show()
}

// draw puts one sprite in a cell. A blank glyph fills the cell with its tint
// and later glyphs in the same cell keep that fill.
func (r *Renderer) draw(x, y int, glyph rune, sp entity.Sprite) {
	color := ToColor(sp.Tint)
	if glyph == ' ' {
		r.fill[[2]int{x, y}] = color
		r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(color))
		return
	}

	style := tcell.StyleDefault.Foreground(color)
	if bg, ok := r.fill[[2]int{x, y}]; ok {
		style = style.Background(bg)
	}
	r.screen.SetContent(x, y, glyph, style)
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// ToColor converts a tint to a terminal color.
func ToColor(c entity.Color) tcell.Color {
	channel := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}
