// Package emitter executes cursor and keyboard commands decided by the
// gaze pipeline.
package emitter

// Direction names an arrow-key direction for key-press mode.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// Emitter is the command output surface. The pipeline selects between
// MoveRelative and PressKey via a static configuration flag, never both.
type Emitter interface {
	// Click performs a left mouse click at the current cursor position.
	Click() error

	// MoveRelative nudges the cursor by (dx, dy) pixels.
	MoveRelative(dx, dy int) error

	// PressKey taps the arrow key for the given direction.
	PressKey(d Direction) error
}
