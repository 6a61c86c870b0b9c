package terminal

// xterm 256-color palette indices
//
// System colors: indices 0-15, terminal-defined
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)

const (
	// --- System ---
	P256Black uint8 = 0
	P256White uint8 = 7 // Light gray on most terminals

	// --- Teal ---
	P256DeepTeal uint8 = 23 // (0,1,1)

	// --- Blue ---
	P256CobaltBlue uint8 = 33 // (0,2,5)
)

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	return grayscaleStart + min(step, 23)
}
