package ui

import (
	"the-snake/game"
	"the-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.UP,
	rl.KeyDown:  types.DOWN,
	rl.KeyLeft:  types.LEFT,
	rl.KeyRight: types.RIGHT,
	rl.KeyW:     types.UP,
	rl.KeyS:     types.DOWN,
	rl.KeyA:     types.LEFT,
	rl.KeyD:     types.RIGHT,
}

// KeyDirection maps a key code to a heading
func KeyDirection(key int32) (types.Direction, bool) {
	d, ok := keyDirections[key]
	return d, ok
}

// PollInput forwards every direction key pressed since the last frame. The
// snake keeps only the last acceptable one.
func PollInput(g *game.Game) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := KeyDirection(key); ok {
			g.RequestDirection(d)
		}
	}
}
