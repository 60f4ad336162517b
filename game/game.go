package game

import (
	"errors"
	"fmt"
	"time"

	"the-snake/config"
	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is re-exported so callers don't need the manager package
var ErrBoardFull = manager.ErrBoardFull

// Event tells the loop what happened during a tick
type Event int

const (
	Moved Event = iota
	Ate
	Died
)

func (e Event) String() string {
	switch e {
	case Ate:
		return "ate"
	case Died:
		return "died"
	default:
		return "moved"
	}
}

type TickResult struct {
	Tick  int
	Event Event
	Head  types.Point
}

// Snapshot is a compact view of the session, for logging and tests
type Snapshot struct {
	Tick      int
	Score     int
	HighScore int
	Deaths    int
	Head      types.Point
	BodyLen   int
	Length    int
	Direction types.Direction
	Food      types.Point
}

type Game struct {
	UUID      string
	StartTime time.Time
	Grid      types.Grid

	snake           *entity.Snake
	food            *manager.FoodManager
	collisionMgr    *manager.CollisionManager
	stateMgr        *manager.StateManager
	immediateGrowth bool
}

// NewGame creates a session with the snake at the centre of the board and
// food placed outside it.
func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	grid := cfg.Grid()
	g := &Game{
		UUID:            uuid.New().String(),
		StartTime:       time.Now(),
		Grid:            grid,
		snake:           entity.NewSnake(grid.Center()),
		food:            manager.NewFoodManager(grid, rand.New(rand.NewSource(seed))),
		collisionMgr:    manager.NewCollisionManager(grid),
		stateMgr:        manager.NewStateManager(),
		immediateGrowth: cfg.ImmediateGrowth,
	}

	if err := g.food.Relocate(g.snake.GetBody()...); err != nil {
		return nil, fmt.Errorf("placing initial food: %w", err)
	}
	// Nothing to erase before the first frame
	g.food.TakePrevious()

	glog.V(1).Infof("game %s: %dx%d cells, spawn %v, food %v, seed %d",
		g.UUID, grid.Width, grid.Height, g.snake.Spawn(), g.food.GetPosition(), seed)
	return g, nil
}

// NewGameFromState resumes a session from a saved snake and food cell. The
// snake's spawn stays at the centre of the board.
func NewGameFromState(cfg config.Config, snake entity.Snapshot, food types.Point) (*Game, error) {
	g, err := NewGame(cfg)
	if err != nil {
		return nil, err
	}
	for _, p := range snake.Body {
		if !g.Grid.Contains(p) {
			return nil, fmt.Errorf("snake segment %v outside %dx%d board", p, g.Grid.Width, g.Grid.Height)
		}
	}
	g.snake = entity.NewSnakeFromSnapshot(g.Grid.Center(), snake)
	if err := g.food.PlaceAt(food); err != nil {
		return nil, err
	}
	return g, nil
}

// RequestDirection forwards a player's input to the snake
func (g *Game) RequestDirection(dir types.Direction) {
	g.snake.RequestDirection(dir)
}

// Tick advances the game by one step. The only error is ErrBoardFull, when
// the snake fills every cell and food can't be placed.
func (g *Game) Tick() (TickResult, error) {
	g.stateMgr.Tick()
	g.snake.UpdateDirection()
	g.snake.Move(g.Grid)

	res := TickResult{Tick: g.stateMgr.GetTicks(), Event: Moved, Head: g.snake.GetHead()}

	if g.collisionMgr.IsSelfCollision(g.snake) {
		glog.V(1).Infof("game %s: tick %d: self collision at %v, length %d",
			g.UUID, res.Tick, res.Head, g.snake.Length())
		g.stateMgr.Died()
		g.snake.Reset()
		res.Event = Died
		res.Head = g.snake.GetHead()
		if err := g.food.Relocate(g.snake.GetBody()...); err != nil {
			return res, fmt.Errorf("relocating food after reset: %w", err)
		}
		return res, nil
	}

	if g.collisionMgr.IsFoodCollision(res.Head, g.food.GetPosition()) {
		g.snake.Grow()
		if g.immediateGrowth {
			g.snake.RestoreTail()
		}
		g.stateMgr.FoodEaten()
		res.Event = Ate
		if err := g.food.Relocate(g.snake.GetBody()...); err != nil {
			if errors.Is(err, manager.ErrBoardFull) {
				glog.Infof("game %s: board full at tick %d", g.UUID, res.Tick)
			}
			return res, fmt.Errorf("relocating food: %w", err)
		}
		glog.V(1).Infof("game %s: tick %d: ate at %v, score %d, food now %v",
			g.UUID, res.Tick, res.Head, g.stateMgr.GetScore(), g.food.GetPosition())
	}

	glog.V(2).Infof("game %s: %+v", g.UUID, g.Snapshot())
	return res, nil
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.stateMgr.GetTicks(),
		Score:     g.stateMgr.GetScore(),
		HighScore: g.stateMgr.GetHighScore(),
		Deaths:    g.stateMgr.GetDeaths(),
		Head:      g.snake.GetHead(),
		BodyLen:   len(g.snake.GetBody()),
		Length:    g.snake.Length(),
		Direction: g.snake.Direction(),
		Food:      g.food.GetPosition(),
	}
}

// ElapsedTime returns the session duration in seconds
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *manager.FoodManager {
	return g.food
}

func (g *Game) GetStats() *manager.StateManager {
	return g.stateMgr
}
