package core

// Action is an abstract command, decoupled from the key that produced it.
// The game session only ever sees actions.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveLeft           // h, Left
	ActionMoveRight          // l, Right
	ActionSoftDrop           // j, Down - one row down, resets the gravity clock
	ActionHardDrop           // k, Up - drop and lock
	ActionRotateLeft         // z
	ActionRotateRight        // x
	ActionHold               // c, Space
	ActionPause              // p, Escape
	ActionRestart            // r - only after game over
	ActionQuit               // q, Ctrl+C

	// Menu navigation.
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionMoveLeft:    "MoveLeft",
	ActionMoveRight:   "MoveRight",
	ActionSoftDrop:    "SoftDrop",
	ActionHardDrop:    "HardDrop",
	ActionRotateLeft:  "RotateLeft",
	ActionRotateRight: "RotateRight",
	ActionHold:        "Hold",
	ActionPause:       "Pause",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Gameplay reports whether the action changes the falling piece. Gameplay
// actions are ignored while the game is paused or over.
func (a Action) Gameplay() bool {
	return a >= ActionMoveLeft && a <= ActionHold
}
