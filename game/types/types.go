package types

import "fmt"

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Grid represents the game grid dimensions. It is stateless: all positions
// live in [0, Width) x [0, Height) and wrap around at the edges.
type Grid struct {
	Width    int
	Height   int
	CellSize int // Pixels per cell, used only to convert for drawing
}

// NewGrid derives the grid from a pixel area and a cell size
func NewGrid(screenWidth, screenHeight, cellSize int) Grid {
	return Grid{
		Width:    screenWidth / cellSize,
		Height:   screenHeight / cellSize,
		CellSize: cellSize,
	}
}

// Cells returns the total number of cells on the board
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the board without wrapping
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap reduces p onto the torus
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Step moves p one cell in direction d, re-entering at the opposite edge
func (g Grid) Step(p Point, d Direction) Point {
	return g.Wrap(p.Add(d.ToPoint()))
}

// Center is where a new snake spawns
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// ToPixels returns the top-left pixel of the cell
func (g Grid) ToPixels(p Point) (int, int) {
	return p.X * g.CellSize, p.Y * g.CellSize
}

// Go's % keeps the sign of the dividend
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
