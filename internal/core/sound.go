package core

// Sound identifies a fire-and-forget audio cue.
type Sound int

const (
	SoundJump Sound = iota
	SoundLand
	SoundBattery
	SoundDischarge
	SoundShoot
	SoundOvercharge
	SoundRearm
	SoundDeath
	SoundEnemyKill
	SoundWallBreak
	SoundMenu
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundBattery:
		return "battery"
	case SoundDischarge:
		return "discharge"
	case SoundShoot:
		return "shoot"
	case SoundOvercharge:
		return "overcharge"
	case SoundRearm:
		return "rearm"
	case SoundDeath:
		return "death"
	case SoundEnemyKill:
		return "enemy_kill"
	case SoundWallBreak:
		return "wall_break"
	case SoundMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// SoundPlayer plays audio cues. Implementations must not block the caller.
type SoundPlayer interface {
	Play(s Sound)
}

// NopSound is a SoundPlayer that discards every cue.
type NopSound struct{}

// Play implements SoundPlayer.
func (NopSound) Play(Sound) {}
