package ebiten

import "image/color"

// Color palette
var (
	colorBackground = color.RGBA{26, 26, 26, 255} // Clear color (0.1, 0.1, 0.1)
	colorBorder     = color.RGBA{60, 60, 80, 255} // Field edge
	colorPanel      = color.RGBA{30, 30, 50, 200} // Semi-transparent HUD background
)

// HUD layout
const (
	hudMargin     = 4
	hudLineHeight = 16
)

// Gamepad handling. Button indices are tuned for common XInput-style
// controllers on Linux; mappings may vary between devices/platforms.
const (
	gamepadDeadZone  = 0.5
	gamepadAxisX     = 0
	gamepadAxisY     = 1
	gamepadDPadUp    = 11
	gamepadDPadRight = 12
	gamepadDPadDown  = 13
	gamepadDPadLeft  = 14
	gamepadButtonB   = 1
)
