package display

import "fmt"

// FakePresenter is a test double that records display operations.
type FakePresenter struct {
	// Ops contains every operation in order, e.g. "init", "clear", "write 0,0 T:25.28".
	Ops []string

	// Screen maps "row,col" to the text last written there since the last Clear.
	Screen map[string]string

	// InitError, if set, will be returned by Init().
	InitError error

	// WriteError, if set, will be returned by WriteAt().
	WriteError error

	// Clears counts calls to Clear.
	Clears int
}

// NewFakePresenter creates a FakePresenter with an empty screen.
func NewFakePresenter() *FakePresenter {
	return &FakePresenter{Screen: make(map[string]string)}
}

// Init records the call.
func (f *FakePresenter) Init() error {
	if f.InitError != nil {
		return f.InitError
	}
	f.Ops = append(f.Ops, "init")
	return nil
}

// Clear records the call and empties Screen.
func (f *FakePresenter) Clear() error {
	f.Ops = append(f.Ops, "clear")
	f.Clears++
	f.Screen = make(map[string]string)
	return nil
}

// WriteAt records the write.
func (f *FakePresenter) WriteAt(row, col uint8, text string) error {
	if f.WriteError != nil {
		return f.WriteError
	}
	f.Ops = append(f.Ops, fmt.Sprintf("write %d,%d %s", row, col, text))
	if f.Screen == nil {
		f.Screen = make(map[string]string)
	}
	f.Screen[fmt.Sprintf("%d,%d", row, col)] = text
	return nil
}

// At returns the text last written at row, col.
func (f *FakePresenter) At(row, col uint8) string {
	return f.Screen[fmt.Sprintf("%d,%d", row, col)]
}

// Reset clears recorded operations.
func (f *FakePresenter) Reset() {
	f.Ops = nil
	f.Screen = make(map[string]string)
	f.Clears = 0
	f.InitError = nil
	f.WriteError = nil
}
