package emitter

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// RobotGo drives the real cursor and keyboard through the OS input
// layer.
type RobotGo struct{}

// NewRobotGo creates the production emitter.
func NewRobotGo() *RobotGo {
	return &RobotGo{}
}

// Click performs a left mouse click.
func (r *RobotGo) Click() error {
	robotgo.Click("left", false)
	return nil
}

// MoveRelative nudges the cursor by (dx, dy) pixels.
func (r *RobotGo) MoveRelative(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

// PressKey taps the arrow key for the given direction.
func (r *RobotGo) PressKey(d Direction) error {
	if err := robotgo.KeyTap(string(d)); err != nil {
		return fmt.Errorf("key tap %s: %w", d, err)
	}
	return nil
}

// CenterCursor moves the cursor to the middle of the primary screen,
// the starting point for relative panning.
func (r *RobotGo) CenterCursor() {
	w, h := robotgo.GetScreenSize()
	robotgo.Move(w/2, h/2)
}
