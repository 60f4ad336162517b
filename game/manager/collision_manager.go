package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsSelfCollision checks the head against every other segment of the same snake
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	return snake.HitsSelf()
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return cm.grid.Wrap(pos) == cm.grid.Wrap(food)
}
