package ebiten

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	engineinput "gridsnake/pkg/engine/input"
	"gridsnake/pkg/game/devtools"
)

// Update polls input and runs every fixed tick that is due (Ebiten interface).
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d), gamepads: %s", w, h, describeGamepads())
	}

	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	held := e.heldKeys()
	if held.ActionHeld(engineinput.ActionQuit) {
		return ebiten.Termination
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if engineinput.MapToIntent(keyCode(k)) == engineinput.ActionDumpField {
			e.dumpField()
		}
	}

	// The snapshot is taken once per frame and shared by every tick due in it.
	for due := e.step.Advance(frameTime()); due > 0; due-- {
		e.driver.Tick(held)
	}
	return nil
}

func (e *EbitenRenderer) dumpField() {
	g := e.driver.Game
	path, err := devtools.DumpFieldToFile(e.dumpDir, g)
	if err != nil {
		log.Printf("field dump failed: %v", err)
		return
	}
	log.Printf("field dumped to %s", path)
	g.AddMessage(gotext.Get("Field dumped to %s", path))

	shot, err := devtools.SaveScreenshotHTML(e.dumpDir, g, e.cfg.Title)
	if err != nil {
		log.Printf("screenshot failed: %v", err)
		return
	}
	log.Printf("screenshot saved to %s", shot)
}

// keyCode converts an Ebiten key to the raw code used by the bindings.
func keyCode(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return "arrow_up"
	case ebiten.KeyArrowDown:
		return "arrow_down"
	case ebiten.KeyArrowLeft:
		return "arrow_left"
	case ebiten.KeyArrowRight:
		return "arrow_right"
	}
	return strings.ToLower(k.String())
}

// heldKeys builds the input snapshot for this frame from keyboard and gamepads.
func (e *EbitenRenderer) heldKeys() engineinput.Snapshot {
	var codes []string
	for _, k := range inpututil.AppendPressedKeys(nil) {
		codes = append(codes, keyCode(k))
	}
	codes = appendGamepadCodes(codes)
	return engineinput.NewSnapshot(codes...)
}

// appendGamepadCodes adds d-pad, left stick and B button state of every
// connected gamepad.
func appendGamepadCodes(codes []string) []string {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		stickX := ebiten.GamepadAxisValue(id, gamepadAxisX)
		stickY := ebiten.GamepadAxisValue(id, gamepadAxisY)

		if stickX < -gamepadDeadZone || ebiten.IsGamepadButtonPressed(id, gamepadDPadLeft) {
			codes = append(codes, "gamepad_dpad_left")
		}
		if stickX > gamepadDeadZone || ebiten.IsGamepadButtonPressed(id, gamepadDPadRight) {
			codes = append(codes, "gamepad_dpad_right")
		}
		// Axis Y is negative when the stick is pushed up
		if stickY < -gamepadDeadZone || ebiten.IsGamepadButtonPressed(id, gamepadDPadUp) {
			codes = append(codes, "gamepad_dpad_up")
		}
		if stickY > gamepadDeadZone || ebiten.IsGamepadButtonPressed(id, gamepadDPadDown) {
			codes = append(codes, "gamepad_dpad_down")
		}
		if ebiten.IsGamepadButtonPressed(id, gamepadButtonB) {
			codes = append(codes, "gamepad_b")
		}
	}
	return codes
}

// describeGamepads lists connected gamepads for the startup log.
func describeGamepads() string {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])
	if len(ids) == 0 {
		return "none"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, fmt.Sprintf("%d:%s", id, ebiten.GamepadName(id)))
	}
	return strings.Join(names, ", ")
}
