package manager

import (
	"testing"

	"the-snake/game/entity"
	"the-snake/game/types"
)

func TestStateManagerScores(t *testing.T) {
	sm := NewStateManager()
	sm.FoodEaten()
	sm.FoodEaten()
	sm.FoodEaten()
	sm.Died()
	sm.FoodEaten()

	if sm.GetScore() != 1 {
		t.Errorf("Expected score 1, got %d", sm.GetScore())
	}
	if sm.GetHighScore() != 3 {
		t.Errorf("Expected high score 3, got %d", sm.GetHighScore())
	}
	if sm.GetDeaths() != 1 {
		t.Errorf("Expected 1 death, got %d", sm.GetDeaths())
	}
	if h := sm.GetScoreHistory(); len(h) != 1 || h[0] != 3 {
		t.Errorf("Expected history [3], got %v", h)
	}
}

func TestCollisionManager(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)

	if !cm.IsFoodCollision(types.Point{X: 3, Y: 4}, types.Point{X: 3, Y: 4}) {
		t.Error("Expected food collision on the same cell")
	}
	if cm.IsFoodCollision(types.Point{X: 3, Y: 4}, types.Point{X: 4, Y: 4}) {
		t.Error("Unexpected food collision on a neighbouring cell")
	}

	s := entity.NewSnakeFromSnapshot(types.Point{}, entity.Snapshot{
		Body:      []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		Direction: types.DOWN,
		Length:    5,
	})
	s.Move(grid)
	if !cm.IsSelfCollision(s) {
		t.Errorf("Expected self collision for body %v", s.GetBody())
	}
}
