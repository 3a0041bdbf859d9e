package charge

// State is the game state the world is simulated under.
type State int

const (
	StateTitle State = iota
	StateInGame
	StatePaused
	StateGameOver
	StateOptions
	StateCredits
	StateTutorialJump
	StateTutorialDischarge
	StateTutorialShoot
	StateTutorialOvercharge
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateInGame:
		return "InGame"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateOptions:
		return "Options"
	case StateCredits:
		return "Credits"
	case StateTutorialJump:
		return "TutorialJump"
	case StateTutorialDischarge:
		return "TutorialDischarge"
	case StateTutorialShoot:
		return "TutorialShoot"
	case StateTutorialOvercharge:
		return "TutorialOvercharge"
	default:
		return "Unknown"
	}
}

// Scrolls reports whether the world moves in this state.
func (s State) Scrolls() bool {
	return s != StatePaused && s != StateGameOver
}

// Tutorial reports whether s is one of the tutorial stages.
func (s State) Tutorial() bool {
	return s >= StateTutorialJump && s <= StateTutorialOvercharge
}

// Playing reports whether a player exists and is simulated.
func (s State) Playing() bool {
	return s == StateInGame || s.Tutorial()
}

// Menu reports whether s is a menu backdrop with no player.
func (s State) Menu() bool {
	return s == StateTitle || s == StateOptions || s == StateCredits
}

// TutorialPrompt returns the instruction shown during a tutorial stage.
func (s State) TutorialPrompt() string {
	switch s {
	case StateTutorialJump:
		return "Press SPACE to jump. Press it again in the air to double jump."
	case StateTutorialDischarge:
		return "Press A to discharge. The blast destroys nearby enemies."
	case StateTutorialShoot:
		return "Press S to shoot. Shots cost charge."
	case StateTutorialOvercharge:
		return "Press D to overcharge. Overcharged, you smash through walls."
	default:
		return ""
	}
}

// nextTutorial returns the stage after s, or StateInGame after the last.
func (s State) nextTutorial() State {
	switch s {
	case StateTutorialJump:
		return StateTutorialDischarge
	case StateTutorialDischarge:
		return StateTutorialShoot
	case StateTutorialShoot:
		return StateTutorialOvercharge
	default:
		return StateInGame
	}
}
