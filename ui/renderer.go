package ui

import (
	"fmt"
	"image/color"

	"the-snake/game"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.NewColor(0, 0, 0, 255)
	borderColor     = rl.NewColor(93, 216, 228, 255)
	foodColor       = rl.NewColor(255, 0, 0, 255)
	snakeColor      = rl.NewColor(0, 255, 0, 255)
	textColor       = rl.NewColor(200, 200, 200, 255)
)

const fontSize = 16

// Renderer draws the board incrementally: cells are painted into a texture
// that persists between frames, so each frame only touches the cells that
// changed. Vacated cells are erased with the background colour.
type Renderer struct {
	grid   types.Grid
	canvas rl.RenderTexture2D
	width  int32
	height int32
	fresh  bool
}

// NewRenderer needs an open window
func NewRenderer(grid types.Grid) *Renderer {
	w := int32(grid.Width * grid.CellSize)
	h := int32(grid.Height * grid.CellSize)
	return &Renderer{
		grid:   grid,
		canvas: rl.LoadRenderTexture(w, h),
		width:  w,
		height: h,
		fresh:  true,
	}
}

func (r *Renderer) Close() {
	rl.UnloadRenderTexture(r.canvas)
}

func (r *Renderer) Draw(g *game.Game) {
	snake := g.GetSnake()
	food := g.GetFood()

	rl.BeginTextureMode(r.canvas)
	if r.fresh {
		rl.ClearBackground(backgroundColor)
		r.fresh = false
	}

	// Old body from before a reset, drawn once
	if prev, ok := snake.TakeLastReset(); ok {
		for _, p := range prev.Body {
			r.eraseCell(p)
		}
		if prev.RemovedTail != nil {
			r.eraseCell(*prev.RemovedTail)
		}
	}
	if p, ok := food.TakePrevious(); ok {
		r.eraseCell(p)
	}

	if tail, ok := snake.RemovedTail(); ok {
		r.eraseCell(tail)
	}

	// Erase before draw: the head may move into the cell the tail just left
	r.drawCell(food.GetPosition(), foodColor)
	for _, p := range snake.GetBody() {
		r.drawCell(p, snakeColor)
	}
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)
	// Render textures are stored upside down
	rl.DrawTextureRec(r.canvas.Texture,
		rl.NewRectangle(0, 0, float32(r.width), -float32(r.height)),
		rl.NewVector2(0, 0), rl.White)

	stats := g.GetStats()
	rl.DrawText(fmt.Sprintf("Score: %d  Best: %d  Deaths: %d",
		stats.GetScore(), stats.GetHighScore(), stats.GetDeaths()),
		4, 4, fontSize, textColor)
	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, col color.RGBA) {
	x, y := r.grid.ToPixels(p)
	size := int32(r.grid.CellSize)
	rl.DrawRectangle(int32(x), int32(y), size, size, col)
	rl.DrawRectangleLines(int32(x), int32(y), size, size, borderColor)
}

func (r *Renderer) eraseCell(p types.Point) {
	x, y := r.grid.ToPixels(p)
	size := int32(r.grid.CellSize)
	rl.DrawRectangle(int32(x), int32(y), size, size, backgroundColor)
}
