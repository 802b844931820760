package cricket

import "math"

// Snapshot contains the observable game state for determinism tests and
// debugging. Uses primitive types only for stable comparison; positions are
// kept in thousandths of a world unit.
type Snapshot struct {
	Tick       uint64
	State      string
	Difficulty string
	Score      int
	Outs       int
	Boundaries int
	Sixes      int
	Streak     int
	Combo      int
	HighScore  int
	Milestone  int
	SpawnTimer int

	CelebrationKind  string
	CelebrationTimer int

	BallX, BallY   int
	BallVX, BallVY int
	PowerUp        int
	TrailLen       int

	BatsmanX   int
	Stance     int
	SwingTimer int

	BowlerFrame int
	Bowling     bool

	// Each fielder is 3 ints: X, Y, Chasing
	FielderData []int
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	fielderData := make([]int, 0, len(g.fielders)*3)
	for _, f := range g.fielders {
		chasing := 0
		if f.Chasing {
			chasing = 1
		}
		fielderData = append(fielderData, milli(f.Pos.X), milli(f.Pos.Y), chasing)
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:      g.state,
		Difficulty: g.difficulty.Name,
		Score:      g.score,
		Outs:       g.outs,
		Boundaries: g.boundaries,
		Sixes:      g.sixes,
		Streak:     g.streak,
		Combo:      g.combo,
		HighScore:  g.highScore,
		Milestone:  g.milestone,
		SpawnTimer: g.spawnTimer,

		CelebrationKind:  g.celebration.Kind,
		CelebrationTimer: g.celebration.Timer,

		BallX:    milli(g.ball.Pos.X),
		BallY:    milli(g.ball.Pos.Y),
		BallVX:   milli(g.ball.Vel.X),
		BallVY:   milli(g.ball.Vel.Y),
		PowerUp:  int(g.ball.PowerUp),
		TrailLen: len(g.ball.Trail),

		BatsmanX:   milli(g.batsman.Pos.X),
		Stance:     int(g.batsman.Stance),
		SwingTimer: g.batsman.SwingTimer,

		BowlerFrame: g.bowler.Frame,
		Bowling:     g.bowler.Bowling,

		FielderData: fielderData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = hashString(h, snap.State)
	h = hashString(h, snap.Difficulty)
	h = hashString(h, snap.CelebrationKind)

	ints := []int{
		snap.Score, snap.Outs, snap.Boundaries, snap.Sixes, snap.Streak, snap.Combo,
		snap.HighScore, snap.Milestone, snap.SpawnTimer, snap.CelebrationTimer,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PowerUp, snap.TrailLen,
		snap.BatsmanX, snap.Stance, snap.SwingTimer, snap.BowlerFrame,
	}
	for _, v := range ints {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if snap.Bowling {
		h = h*31 + 1
	}
	for _, v := range snap.FielderData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h*31 + uint64(len(s))
}
