package emitter

import "time"

// Mock implements Emitter for testing.
// All methods can be customized via function fields; by default they
// succeed and record the call.
type Mock struct {
	// ClickFunc is called when Click is invoked. If nil, returns nil.
	ClickFunc func() error

	// MoveFunc is called when MoveRelative is invoked. If nil, returns nil.
	MoveFunc func(dx, dy int) error

	// PressFunc is called when PressKey is invoked. If nil, returns nil.
	PressFunc func(d Direction) error

	// Tracking
	calls []MockCall
}

// MockCall records a method invocation for verification.
type MockCall struct {
	Method    string
	DX, DY    int
	Direction Direction
	Time      time.Time
}

// NewMock creates a new mock emitter.
func NewMock() *Mock {
	return &Mock{}
}

// Click records the call and runs ClickFunc when set.
func (m *Mock) Click() error {
	m.calls = append(m.calls, MockCall{Method: "Click", Time: time.Now()})
	if m.ClickFunc != nil {
		return m.ClickFunc()
	}
	return nil
}

// MoveRelative records the call and runs MoveFunc when set.
func (m *Mock) MoveRelative(dx, dy int) error {
	m.calls = append(m.calls, MockCall{Method: "MoveRelative", DX: dx, DY: dy, Time: time.Now()})
	if m.MoveFunc != nil {
		return m.MoveFunc(dx, dy)
	}
	return nil
}

// PressKey records the call and runs PressFunc when set.
func (m *Mock) PressKey(d Direction) error {
	m.calls = append(m.calls, MockCall{Method: "PressKey", Direction: d, Time: time.Now()})
	if m.PressFunc != nil {
		return m.PressFunc(d)
	}
	return nil
}

// Calls returns all recorded calls.
func (m *Mock) Calls() []MockCall {
	return m.calls
}

// CallCount returns the number of calls to the given method.
func (m *Mock) CallCount(method string) int {
	n := 0
	for _, c := range m.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Reset clears the recorded calls.
func (m *Mock) Reset() {
	m.calls = nil
}
