package emitter

import (
	"errors"
	"testing"
)

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()

	m.Click()
	m.MoveRelative(-100, 0)
	m.PressKey(Right)

	if got := len(m.Calls()); got != 3 {
		t.Fatalf("Expected 3 recorded calls, got %d", got)
	}
	if m.CallCount("MoveRelative") != 1 {
		t.Errorf("Expected 1 MoveRelative, got %d", m.CallCount("MoveRelative"))
	}
	if c := m.Calls()[1]; c.DX != -100 || c.DY != 0 {
		t.Errorf("Expected recorded nudge (-100, 0), got (%d, %d)", c.DX, c.DY)
	}
	if c := m.Calls()[2]; c.Direction != Right {
		t.Errorf("Expected recorded direction right, got %v", c.Direction)
	}
}

func TestMock_CustomBehavior(t *testing.T) {
	m := NewMock()
	wantErr := errors.New("input blocked")
	m.ClickFunc = func() error { return wantErr }

	if err := m.Click(); !errors.Is(err, wantErr) {
		t.Errorf("Expected custom error, got %v", err)
	}
	// The failed call is still recorded.
	if m.CallCount("Click") != 1 {
		t.Errorf("Expected 1 recorded click, got %d", m.CallCount("Click"))
	}
}

func TestMock_Reset(t *testing.T) {
	m := NewMock()
	m.Click()
	m.Reset()

	if len(m.Calls()) != 0 {
		t.Errorf("Expected no calls after reset, got %d", len(m.Calls()))
	}
}
