package core

// GameState represents the observable state of a session.
type GameState struct {
	Score  int  // Obstacles passed
	Paused bool // Set by the first collision; terminal for the session
	Frame  int  // Frames simulated while running
}

// StepResult is returned after each simulated frame.
// Contains the updated state and the events that fired during the frame.
type StepResult struct {
	State    GameState
	Scored   bool // An obstacle's trailing edge crossed the score line
	Collided bool // This frame moved the session into the paused state
}
