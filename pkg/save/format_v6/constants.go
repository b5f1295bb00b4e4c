package format_v6

// Core format constants that never change.
const (
	// SaveVersion is the only container version this package reads.
	SaveVersion = 6

	// teleportMarker as the first segment byte means the next Point is
	// an absolute wire end, not a run.
	teleportMarker = 0b0010_0000

	directionShift = 5
	runLengthMask  = 0b0001_1111

	pointSize = 4
)

// directions are the unit vectors selected by the top three bits of a
// segment byte: E, NE, N, NW, W, SW, S, SE.
var directions = [8]Point{
	{X: 1, Y: 0},
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
}
