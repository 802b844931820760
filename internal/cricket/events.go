package cricket

import "fmt"

// EventKind identifies something that happened during a step.
type EventKind string

const (
	EventStart      EventKind = "start"      // Match (re)started
	EventMenu       EventKind = "menu"       // Returned to the menu
	EventPause      EventKind = "pause"      // Paused
	EventResume     EventKind = "resume"     // Unpaused
	EventDifficulty EventKind = "difficulty" // Difficulty changed from the menu
	EventBowl       EventKind = "bowl"       // Bowler started a run-up
	EventPowerUp    EventKind = "powerup"    // A special ball is on its way
	EventHit        EventKind = "hit"        // Bat contact
	EventWicket     EventKind = "wicket"     // Ball passed the batsman
	EventBoundary   EventKind = "boundary"   // Four
	EventSix        EventKind = "six"        // Six
	EventMilestone  EventKind = "milestone"  // Score milestone reached
	EventGameOver   EventKind = "gameover"   // Out of wickets
	EventHighScore  EventKind = "highscore"  // New session high score
	EventQuit       EventKind = "quit"       // Player asked to terminate
)

// Event records one thing that happened during a step, for audio and logs.
type Event struct {
	Kind   EventKind
	Runs   int    // Runs awarded by this event
	Score  int    // Score after the event
	Detail string // Extra context: stance, power-up, milestone or difficulty name
}

// String formats the event for logs.
func (e Event) String() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s(%s) +%d = %d", e.Kind, e.Detail, e.Runs, e.Score)
	}
	return fmt.Sprintf("%s +%d = %d", e.Kind, e.Runs, e.Score)
}
