package session

import (
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer is told about every change to a session.
// Calls arrive in order, one at a time, with the session unlocked, so an observer may read
// Snapshot or call intents. A change made by another goroutine may be delivered on the
// goroutine that is already delivering, after that goroutine's own intent has returned.
type Observer interface {
	// Changed receives a copy of the state after every mutation.
	Changed(s state.Snapshot)
	// Rejected is called when a wrong answer or a spoiled brew was turned away.
	Rejected(n Notice)
}

// Notice describes a rejected attempt
type Notice struct {
	Puzzle  entities.PuzzleID
	Key     string
	Message string
}
