package core

// Sound names a sound effect the game can request.
type Sound string

// Sound effects.
const (
	SoundHit       Sound = "hit"
	SoundWicket    Sound = "wicket"
	SoundBoundary  Sound = "boundary"
	SoundMilestone Sound = "milestone"
	SoundPowerUp   Sound = "powerup"
)

// Sounds lists every sound effect.
var Sounds = []Sound{SoundHit, SoundWicket, SoundBoundary, SoundMilestone, SoundPowerUp}

// Player plays sound effects. Play must not block and must not fail loudly:
// a sound that cannot be produced is simply skipped.
type Player interface {
	Play(s Sound)
}

// NopPlayer is a Player that discards every request.
type NopPlayer struct{}

// Play implements Player.
func (NopPlayer) Play(Sound) {}
