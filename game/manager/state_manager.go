package manager

// StateManager keeps the score bookkeeping for one session. Nothing is
// written to disk: the session ends with the process.
type StateManager struct {
	score        int
	highScore    int
	deaths       int
	ticks        int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) Tick() {
	sm.ticks++
}

// FoodEaten adds one point to the current life
func (sm *StateManager) FoodEaten() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// Died closes the current life and records its score
func (sm *StateManager) Died() {
	sm.scoreHistory = append(sm.scoreHistory, sm.score)
	sm.deaths++
	sm.score = 0
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetDeaths() int {
	return sm.deaths
}

func (sm *StateManager) GetTicks() int {
	return sm.ticks
}

func (sm *StateManager) GetScoreHistory() []int {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}
