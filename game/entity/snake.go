package entity

import (
	"the-snake/game/types"
)

// Snapshot is a copy of the snake's state. The renderer uses the one taken
// right before a reset to erase the old body.
type Snapshot struct {
	Body        []types.Point
	Direction   types.Direction
	Pending     types.Direction // NONE when nothing is buffered
	Length      int
	RemovedTail *types.Point
}

type Snake struct {
	body        []types.Point // head first
	direction   types.Direction
	pending     types.Direction
	length      int
	removedTail *types.Point
	spawn       types.Point
	lastReset   *Snapshot
}

func NewSnake(spawn types.Point) *Snake {
	return &Snake{
		body:      []types.Point{spawn},
		direction: types.RIGHT, // Start moving right
		pending:   types.NONE,
		length:    1,
		spawn:     spawn,
	}
}

// NewSnakeFromSnapshot rebuilds a snake mid-game. Reset still returns it to
// spawn, not to the snapshot.
func NewSnakeFromSnapshot(spawn types.Point, snap Snapshot) *Snake {
	s := &Snake{
		body:      make([]types.Point, len(snap.Body)),
		direction: snap.Direction,
		pending:   snap.Pending,
		length:    snap.Length,
		spawn:     spawn,
	}
	copy(s.body, snap.Body)
	if len(s.body) == 0 {
		s.body = []types.Point{spawn}
	}
	if !s.direction.Valid() {
		s.direction = types.RIGHT
	}
	if s.length < len(s.body) {
		s.length = len(s.body)
	}
	if snap.RemovedTail != nil {
		tail := *snap.RemovedTail
		s.removedTail = &tail
	}
	return s
}

// RequestDirection buffers a direction change for the next tick. A request to
// reverse the current heading is dropped; any other request replaces the one
// already pending.
func (s *Snake) RequestDirection(dir types.Direction) {
	if !dir.Valid() || dir == s.direction.Opposite() {
		return
	}
	s.pending = dir
}

// UpdateDirection applies the pending direction, if any
func (s *Snake) UpdateDirection() {
	if s.pending != types.NONE {
		s.direction = s.pending
		s.pending = types.NONE
	}
}

// Move advances the head one cell. The tail is dropped unless the snake still
// has growth owed from a previous Grow.
func (s *Snake) Move(grid types.Grid) {
	grown := len(s.body) < s.length
	newHead := grid.Step(s.GetHead(), s.direction)

	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if grown {
		s.removedTail = nil
		return
	}
	tail := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	s.removedTail = &tail
}

// Grow raises the target length. The body catches up on the next Move.
func (s *Snake) Grow() {
	s.length++
}

// RestoreTail puts back the tail dropped by the last Move, making a Grow
// visible on the same tick.
func (s *Snake) RestoreTail() {
	if s.removedTail == nil || len(s.body) >= s.length {
		return
	}
	s.body = append(s.body, *s.removedTail)
	s.removedTail = nil
}

// Reset returns the snake to a single cell at its spawn point. The state it
// had before is kept until TakeLastReset is called.
func (s *Snake) Reset() {
	snap := s.Snapshot()
	s.lastReset = &snap

	s.body = []types.Point{s.spawn}
	s.direction = types.RIGHT
	s.pending = types.NONE
	s.length = 1
	s.removedTail = nil
}

// TakeLastReset returns the state before the most recent Reset, once.
func (s *Snake) TakeLastReset() (Snapshot, bool) {
	if s.lastReset == nil {
		return Snapshot{}, false
	}
	snap := *s.lastReset
	s.lastReset = nil
	return snap, true
}

// HitsSelf reports whether the head overlaps any other segment
func (s *Snake) HitsSelf() bool {
	head := s.GetHead()
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

func (s *Snake) Snapshot() Snapshot {
	snap := Snapshot{
		Body:      s.GetBody(),
		Direction: s.direction,
		Pending:   s.pending,
		Length:    s.length,
	}
	if s.removedTail != nil {
		tail := *s.removedTail
		snap.RemovedTail = &tail
	}
	return snap
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

// GetBody returns a copy of the body, head first
func (s *Snake) GetBody() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) PendingDirection() (types.Direction, bool) {
	return s.pending, s.pending != types.NONE
}

func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) RemovedTail() (types.Point, bool) {
	if s.removedTail == nil {
		return types.Point{}, false
	}
	return *s.removedTail, true
}

func (s *Snake) Spawn() types.Point {
	return s.spawn
}
