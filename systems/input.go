package systems

import (
	"github.com/automoto/swordduel/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Deadzone for analog stick input (0.0 to 1.0)
const analogDeadzone = 0.25

// Keyboard bindings for each half of the shared keyboard.
var controlSchemeBindings = map[components.ControlSchemeID]map[components.ActionID][]ebiten.Key{
	components.ControlSchemeWASD: {
		components.ActionMoveLeft:  {ebiten.KeyA},
		components.ActionMoveRight: {ebiten.KeyD},
		components.ActionJump:      {ebiten.KeyW},
		components.ActionAttack:    {ebiten.KeyF},
		components.ActionBlock:     {ebiten.KeyG},
	},
	components.ControlSchemeArrows: {
		components.ActionMoveLeft:  {ebiten.KeyLeft},
		components.ActionMoveRight: {ebiten.KeyRight},
		components.ActionJump:      {ebiten.KeyUp},
		components.ActionAttack:    {ebiten.KeyEnter, ebiten.KeyNumpad0},
		components.ActionBlock:     {ebiten.KeyShiftRight, ebiten.KeyNumpad1},
	},
}

var gamepadBindings = map[components.ActionID][]ebiten.StandardGamepadButton{
	components.ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	components.ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
	// A / Cross button
	components.ActionJump: {ebiten.StandardGamepadButtonRightBottom},
	// X / Square button
	components.ActionAttack: {ebiten.StandardGamepadButtonRightLeft},
	// B / Circle button, right shoulder
	components.ActionBlock: {ebiten.StandardGamepadButtonRightRight, ebiten.StandardGamepadButtonFrontTopRight},
}

var globalBindings = map[components.GlobalActionID][]ebiten.Key{
	components.GlobalPause:            {ebiten.KeyEscape, ebiten.KeyP},
	components.GlobalToggleHitboxes:   {ebiten.KeyF1},
	components.GlobalToggleFullscreen: {ebiten.KeyF11},
}

var globalGamepadBindings = map[components.GlobalActionID][]ebiten.StandardGamepadButton{
	// Start / Options button
	components.GlobalPause: {ebiten.StandardGamepadButtonCenterRight},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls global actions (pause, toggles) from every device.
// Must run BEFORE UpdatePause and UpdateSettings in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [components.GlobalActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, keys := range globalBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
	for actionID, buttons := range globalGamepadBindings {
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range buttons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

// UpdatePlayerInput polls input for every fighter from its control scheme
// and gamepad. Without an explicit binding, player N uses the Nth gamepad.
// Must run AFTER UpdateInput.
func UpdatePlayerInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		input.PreviousInput = input.CurrentInput
		input.CurrentInput = [components.ActionCount]bool{}

		pollControlSchemeForPlayer(input)

		switch {
		case input.BoundGamepadID != nil:
			pollGamepadForPlayer(input, ebiten.GamepadID(*input.BoundGamepadID))
		case input.PlayerIndex < len(gamepadIDs):
			pollGamepadForPlayer(input, gamepadIDs[input.PlayerIndex])
		}
	})
}

// pollControlSchemeForPlayer reads input from a control scheme into PlayerInputData.
func pollControlSchemeForPlayer(input *components.PlayerInputData) {
	for actionID, keys := range controlSchemeBindings[input.ControlScheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
			}
		}
	}
}

// pollGamepadForPlayer reads input from a specific gamepad into PlayerInputData.
func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, buttons := range gamepadBindings {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
			}
		}
	}

	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if horizontal < -analogDeadzone {
		input.CurrentInput[components.ActionMoveLeft] = true
	}
	if horizontal > analogDeadzone {
		input.CurrentInput[components.ActionMoveRight] = true
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
