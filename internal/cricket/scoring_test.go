package cricket

import (
	"testing"

	"github.com/vovakirdan/cricket-arcade/internal/config"
)

func TestComboMultiplier(t *testing.T) {
	tiers := config.DefaultCricketConfig().Scoring.Combo

	tests := []struct {
		streak int
		want   int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{40, 3},
	}

	for _, tt := range tests {
		if got := ComboMultiplier(tiers, tt.streak); got != tt.want {
			t.Errorf("ComboMultiplier(%d) = %d, expected %d", tt.streak, got, tt.want)
		}
	}

	if got := ComboMultiplier(nil, 10); got != 1 {
		t.Errorf("no tiers should score 1x, got %d", got)
	}
}

func TestNextMilestoneSequence(t *testing.T) {
	milestones := config.DefaultCricketConfig().Scoring.Milestones

	scores := []int{0, 10, 49, 50, 55, 99, 100, 120, 149, 150, 151, 400}
	var fired []string
	watermark := 0
	for _, score := range scores {
		if m, ok := NextMilestone(milestones, score, watermark); ok {
			fired = append(fired, m.Name)
			watermark = m.Score
		}
	}

	want := []string{"fifty", "century", "one_fifty"}
	if len(fired) != len(want) {
		t.Fatalf("fired %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("milestone %d = %s, expected %s", i, fired[i], want[i])
		}
	}
}

func TestNextMilestoneLeap(t *testing.T) {
	milestones := config.DefaultCricketConfig().Scoring.Milestones

	// 48 -> 104 crosses two thresholds; only the lower one fires first
	m, ok := NextMilestone(milestones, 104, 0)
	if !ok || m.Name != "fifty" {
		t.Fatalf("first = %v %v, expected fifty", m, ok)
	}
	m, ok = NextMilestone(milestones, 104, m.Score)
	if !ok || m.Name != "century" {
		t.Fatalf("second = %v %v, expected century", m, ok)
	}
	if _, ok = NextMilestone(milestones, 104, m.Score); ok {
		t.Error("nothing left below 104")
	}
}

func TestCelebrationLifecycle(t *testing.T) {
	var c Celebration
	if c.Active() || c.Milestone() {
		t.Fatal("zero celebration should be inactive")
	}

	c.Trigger(CelebrateSix, 3)
	if !c.Active() || c.Milestone() {
		t.Fatalf("six: active=%v milestone=%v", c.Active(), c.Milestone())
	}
	if c.Message() != "SIX! MAXIMUM!" {
		t.Errorf("Message() = %q", c.Message())
	}

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if c.Active() || c.Timer != 0 {
		t.Errorf("expected expiry, timer=%d", c.Timer)
	}

	c.Trigger("century", 180)
	if !c.Milestone() || c.Message() != "CENTURY! FANTASTIC!" {
		t.Errorf("century: milestone=%v message=%q", c.Milestone(), c.Message())
	}

	c.Clear()
	if c.Active() || c.Kind != "" {
		t.Error("Clear should reset the celebration")
	}
}

func TestCelebrationMessageFallback(t *testing.T) {
	c := Celebration{Kind: "double_century", Timer: 1}
	if got := c.Message(); got != "DOUBLE CENTURY!" {
		t.Errorf("Message() = %q, expected DOUBLE CENTURY!", got)
	}
}

func TestCelebrationFlashFades(t *testing.T) {
	var c Celebration
	c.Trigger(CelebrateBoundary, 180)

	prev := c.Flash()
	if prev != 100.0/255 {
		t.Errorf("initial flash = %v, expected %v", prev, 100.0/255)
	}
	for c.Active() {
		c.Tick()
		if f := c.Flash(); f > prev {
			t.Fatalf("flash grew from %v to %v", prev, f)
		}
		prev = c.Flash()
	}
	if prev != 0 {
		t.Errorf("final flash = %v, expected 0", prev)
	}
}

func TestCelebrationDraw(t *testing.T) {
	tests := []struct {
		kind  string
		tint  bool
		stars int
	}{
		{CelebrateBoundary, true, 0},
		{CelebrateSix, true, 0},
		{"fifty", true, 8},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			var c Celebration
			c.Trigger(tt.kind, 180)

			cv := &recordingCanvas{}
			c.Draw(cv, testStadium().Center)

			if (cv.index(func(op drawOp) bool { return op.op == "tint" }) == 0) != tt.tint {
				t.Error("flash should be the first layer")
			}
			stars := 0
			for _, op := range cv.ops {
				if op.op == "polygon" {
					stars++
				}
			}
			if stars != tt.stars {
				t.Errorf("drew %d stars, expected %d", stars, tt.stars)
			}
			texts := cv.texts()
			if len(texts) != 2 || texts[1] != c.Message() {
				t.Errorf("texts = %v, expected shadow and banner", texts)
			}
		})
	}

	var idle Celebration
	cv := &recordingCanvas{}
	idle.Draw(cv, testStadium().Center)
	if len(cv.ops) != 0 {
		t.Errorf("inactive celebration drew %d ops", len(cv.ops))
	}
}
