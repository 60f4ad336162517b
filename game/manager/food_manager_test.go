package manager

import (
	"errors"
	"testing"

	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

func newTestFood(w, h int, seed uint64) *FoodManager {
	grid := types.Grid{Width: w, Height: h, CellSize: 20}
	return NewFoodManager(grid, rand.New(rand.NewSource(seed)))
}

func TestRelocateAvoidsForbidden(t *testing.T) {
	fm := newTestFood(32, 24, 999)
	forbidden := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	for i := 0; i < 500; i++ {
		if err := fm.Relocate(forbidden...); err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		pos := fm.GetPosition()
		if !fm.grid.Contains(pos) {
			t.Fatalf("Food placed off the board at %v", pos)
		}
		for _, p := range forbidden {
			if pos == p {
				t.Fatalf("Food placed on forbidden cell %v", pos)
			}
		}
	}
}

func TestRelocateFindsLastFreeCell(t *testing.T) {
	fm := newTestFood(4, 3, 1)
	free := types.Point{X: 2, Y: 1}

	var forbidden []types.Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if p := (types.Point{X: x, Y: y}); p != free {
				forbidden = append(forbidden, p)
			}
		}
	}

	for i := 0; i < 20; i++ {
		if err := fm.Relocate(forbidden...); err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		if fm.GetPosition() != free {
			t.Fatalf("Expected the only free cell %v, got %v", free, fm.GetPosition())
		}
	}
}

func TestRelocateFullBoard(t *testing.T) {
	fm := newTestFood(2, 2, 1)
	if err := fm.PlaceAt(types.Point{X: 1, Y: 1}); err != nil {
		t.Fatal(err)
	}

	// Duplicates and off-board cells must not hide a free cell or fake a full board
	err := fm.Relocate(
		types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0},
		types.Point{X: 0, Y: 1}, types.Point{X: 1, Y: 1},
		types.Point{X: 0, Y: 0}, types.Point{X: 7, Y: 7},
	)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("Expected ErrBoardFull, got %v", err)
	}
	if fm.GetPosition() != (types.Point{X: 1, Y: 1}) {
		t.Errorf("A failed relocation moved the food to %v", fm.GetPosition())
	}
}

func TestRelocateWithoutForbiddenCells(t *testing.T) {
	fm := newTestFood(3, 3, 7)
	seen := make(map[types.Point]bool)
	for i := 0; i < 500; i++ {
		if err := fm.Relocate(); err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		seen[fm.GetPosition()] = true
	}
	if len(seen) != 9 {
		t.Errorf("Expected every cell to be reachable, saw %d of 9", len(seen))
	}
}

func TestRelocateIsDeterministicForSeed(t *testing.T) {
	a := newTestFood(32, 24, 12345)
	b := newTestFood(32, 24, 12345)
	body := []types.Point{{X: 16, Y: 12}}
	for i := 0; i < 50; i++ {
		if err := a.Relocate(body...); err != nil {
			t.Fatal(err)
		}
		if err := b.Relocate(body...); err != nil {
			t.Fatal(err)
		}
		if a.GetPosition() != b.GetPosition() {
			t.Fatalf("step %d: %v vs %v", i, a.GetPosition(), b.GetPosition())
		}
	}
}

func TestTakePrevious(t *testing.T) {
	fm := newTestFood(8, 8, 3)
	if err := fm.PlaceAt(types.Point{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if _, ok := fm.TakePrevious(); ok {
		t.Fatal("PlaceAt should not leave a previous cell")
	}

	if err := fm.Relocate(types.Point{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	prev, ok := fm.TakePrevious()
	if !ok || prev != (types.Point{X: 2, Y: 2}) {
		t.Errorf("Expected previous (2,2), got %v (%v)", prev, ok)
	}
	if _, ok := fm.TakePrevious(); ok {
		t.Error("Previous cell should only be returned once")
	}
}

func TestPlaceAtRejectsOffBoard(t *testing.T) {
	fm := newTestFood(8, 8, 3)
	if err := fm.PlaceAt(types.Point{X: 8, Y: 0}); err == nil {
		t.Error("Expected an error for a cell outside the board")
	}
}
