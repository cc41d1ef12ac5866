package components

import "github.com/yohamta/donburi"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionBlock
	ActionCount // Must be last - used for array sizing
)

// GlobalActionID represents an action that is not bound to a player
type GlobalActionID int

const (
	GlobalPause GlobalActionID = iota
	GlobalToggleHitboxes
	GlobalToggleFullscreen
	GlobalActionCount
)

// ControlSchemeID selects one half of the shared keyboard
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's global actions.
type InputData struct {
	Current  [GlobalActionCount]bool
	Previous [GlobalActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-player input state.
// Each fighter entity has its own PlayerInputData with a bound input device.
type PlayerInputData struct {
	PlayerIndex    int
	CurrentInput   [ActionCount]bool
	PreviousInput  [ActionCount]bool
	BoundGamepadID *int // ebiten gamepad ID, also polled when set
	ControlScheme  ControlSchemeID
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// Action returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func (p *PlayerInputData) Action(id ActionID) ActionState {
	curr := p.CurrentInput[id]
	prev := p.PreviousInput[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// AnyReleased reports whether any action was released this frame.
func (p *PlayerInputData) AnyReleased() bool {
	for id := ActionID(0); id < ActionCount; id++ {
		if p.Action(id).JustReleased {
			return true
		}
	}
	return false
}

// Action returns the ActionState for a global action.
func (i *InputData) Action(id GlobalActionID) ActionState {
	curr := i.Current[id]
	prev := i.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
