package terminal

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nearestCube returns the cube level 0-5 closest to v
func nearestCube(v uint8) uint8 {
	best := uint8(0)
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = uint8(j)
		}
	}
	return best
}

// RGBTo256 converts RGB to the nearest 256-color palette index
// Only the cube and grayscale ramp are candidates, the 16 system colors
// are user-configurable and never chosen
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B
	cr, cg, cb := nearestCube(r), nearestCube(g), nearestCube(b)
	cube := Cube256(cr, cg, cb)

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))
	if maxDiff >= 10 {
		return cube
	}
	if gray < 4 {
		return Cube256(0, 0, 0)
	}
	if gray > 243 {
		return Cube256(5, 5, 5)
	}

	step := min((max(gray-8, 0)+5)/10, 23)
	grayIdx := Gray256(uint8(step))
	grayLevel := 8 + int(grayIdx-grayscaleStart)*10
	grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)

	cubeDist := abs(int(r)-int(cubeValues[cr])) +
		abs(int(g)-int(cubeValues[cg])) +
		abs(int(b)-int(cubeValues[cb]))

	if grayDist < cubeDist {
		return grayIdx
	}
	return cube
}
