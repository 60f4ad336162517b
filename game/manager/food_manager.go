package manager

import (
	"errors"
	"fmt"

	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when every cell is forbidden and food has nowhere to go
var ErrBoardFull = errors.New("no free cell left for food")

// FoodManager owns the single food item on the board
type FoodManager struct {
	grid     types.Grid
	rng      *rand.Rand
	position types.Point
	previous *types.Point
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// Relocate moves the food to a uniformly random cell outside forbidden.
// Sampling is done over the explicit set of free cells, so it always
// terminates; with no free cell left it returns ErrBoardFull and the food
// stays where it is.
func (fm *FoodManager) Relocate(forbidden ...types.Point) error {
	occupied := make(map[types.Point]struct{}, len(forbidden))
	for _, p := range forbidden {
		if fm.grid.Contains(p) {
			occupied[p] = struct{}{}
		}
	}

	freeSpots := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				freeSpots = append(freeSpots, p)
			}
		}
	}
	if len(freeSpots) == 0 {
		return ErrBoardFull
	}

	prev := fm.position
	fm.previous = &prev
	fm.position = freeSpots[fm.rng.Intn(len(freeSpots))]
	return nil
}

// PlaceAt puts the food on a given cell
func (fm *FoodManager) PlaceAt(p types.Point) error {
	if !fm.grid.Contains(p) {
		return fmt.Errorf("food position %v outside %dx%d board", p, fm.grid.Width, fm.grid.Height)
	}
	fm.position = p
	fm.previous = nil
	return nil
}

func (fm *FoodManager) GetPosition() types.Point {
	return fm.position
}

// TakePrevious returns the cell the food left on its last relocation, once,
// so the renderer can clear it.
func (fm *FoodManager) TakePrevious() (types.Point, bool) {
	if fm.previous == nil {
		return types.Point{}, false
	}
	p := *fm.previous
	fm.previous = nil
	return p, true
}
